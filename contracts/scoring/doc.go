/*
Package scoring implements Scoring contract of the model marketplace.

Scoring contract keeps a cumulative correctness score per contributor
account. Scores are changed only by the single authorized oracle that
reports verdicts of the off-chain prediction service: a correct
contribution earns +1, an incorrect or missed one costs -2. The asymmetry
is deliberate marketplace policy.

The contract owner is fixed at deploy time and is the only identity
allowed to rotate the oracle. Score magnitude is unbounded; integer
arithmetic is done by the VM on 256-bit values and faults instead of
wrapping.

# Contract notifications

SetOracle notification. Produced on every oracle rotation.

	SetOracle:
	  - name: oracle
	    type: Hash160

UpdateScore notification. Produced on every applied verdict.

	UpdateScore:
	  - name: account
	    type: Hash160
	  - name: score
	    type: Integer
*/
package scoring

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'o' -> interop.Hash160
   owner of the contract
 - 'r' -> interop.Hash160
   authorized oracle, absent until set at deploy or with SetOracle
 - s<interop.Hash160> -> int
   cumulative correctness score per account
*/

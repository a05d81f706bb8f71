/*
Package weights implements Weights contract of the model marketplace.

Weights contract is an owner-gated mapping from a model content hash to an
integer ensemble weight. An external aggregator reads the weights when
combining registered models; the contract itself never talks to the
Registry contract, so a weight may be assigned to a hash the registry has
never seen.

# Contract notifications

SetWeight notification. Produced on every weight assignment.

	SetWeight:
	  - name: hash
	    type: Hash256
	  - name: weight
	    type: Integer
*/
package weights

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'o' -> interop.Hash160
   owner of the contract
 - w<interop.Hash256> -> int
   ensemble weight by content hash; key presence doubles as the exists flag
*/

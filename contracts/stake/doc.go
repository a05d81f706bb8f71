/*
Package stake implements Stake contract of the model marketplace.

Stake contract keeps collateral of model contributors in native GAS.
Contributors lock GAS with Stake and get it back with Unstake. The contract
owner accrues rewards for accepted contributions and forcibly reduces the
stake of misbehaving contributors with Slash. A slashed penalty is burned
from the ledger's point of view: it is debited from the account and from
totalStaked but credited nowhere, the GAS simply stays on the contract
account.

Unstake and ClaimReward transfer GAS out of the contract. Both commit all
bookkeeping before the transfer and hold a transfer guard for its duration,
so a nested call made from a recipient's OnNEP17Payment handler fails
instead of withdrawing the same funds twice.

# Contract notifications

Stake notification. Produced on every successful stake deposit.

	Stake:
	  - name: account
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: staked
	    type: Integer

Unstake notification. Produced on every successful stake withdrawal.

	Unstake:
	  - name: account
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: staked
	    type: Integer

Reward notification. Produced on every reward accrual.

	Reward:
	  - name: account
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: reward
	    type: Integer

Claim notification. Produced on every reward payout.

	Claim:
	  - name: account
	    type: Hash160
	  - name: amount
	    type: Integer

Slash notification. Produced on every applied penalty.

	Slash:
	  - name: account
	    type: Hash160
	  - name: penalty
	    type: Integer
	  - name: staked
	    type: Integer
*/
package stake

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'o' -> interop.Hash160
   owner of the contract, set at deploy and never rotated
 - 't' -> int
   sum of all accounts' stakes
 - 'p' -> int
   sum of all accounts' unclaimed rewards
 - 'busy' -> bool
   transfer guard flag, present only while a GAS payout is in progress
 - a<interop.Hash160> -> std.Serialize(Account)
   ledger sheet of all contributors (Account is a structure defined in
   current package)

# Accounting
totalStaked equals the sum of Staked over all accounts after every
transaction: both values are always mutated together and faulted
transactions roll back in full. Account records are created implicitly on
first reference and are never deleted.
*/

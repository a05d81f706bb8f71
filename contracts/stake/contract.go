package stake

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/modelnet/modelnet-contract/common"
)

// Account stores the ledger state of a single contributor.
type Account struct {
	// Staked is the amount of GAS currently locked as collateral.
	Staked int
	// Reward is the amount owed to the contributor but not yet withdrawn.
	Reward int
	// Slashed is set once the first penalty is applied and never cleared.
	Slashed bool
}

const (
	// ErrInvalidAmount is thrown on a non-positive amount argument.
	ErrInvalidAmount = "invalid amount"
	// ErrInsufficientStake is thrown when an account's stake does not
	// cover the requested decrease.
	ErrInsufficientStake = "insufficient stake"
	// ErrInsufficientBalance is thrown when the contract's GAS balance
	// cannot cover a reward payout.
	ErrInsufficientBalance = "insufficient contract balance"
	// ErrNoReward is thrown on an attempt to claim a zero reward.
	ErrNoReward = "no reward to claim"
)

const (
	accPrefix = 'a'

	ownerKey       = 'o'
	totalStakedKey = 't'
	rewardPoolKey  = 'p'
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	owner := common.CommitteeAddress()
	if data != nil {
		args := data.([]any)
		if len(args) > 0 && len(args[0].(interop.Hash160)) == interop.Hash160Len {
			owner = args[0].(interop.Hash160)
		}
	}

	storage.Put(ctx, ownerKey, owner)
	storage.Put(ctx, totalStakedKey, 0)
	storage.Put(ctx, rewardPoolKey, 0)

	runtime.Log("stake contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("stake contract updated")
}

// OnNEP17Payment is a callback for NEP-17 compatible native GAS contract.
// Plain GAS transfers to the contract account back the reward pool.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	caller := runtime.GetCallingScriptHash()
	if !caller.Equals(gas.Hash) {
		common.AbortWithMessage("stake contract accepts GAS only")
	}
}

// Stake locks amount of the caller's GAS in the contract as collateral. It
// can be invoked only by the account owner. Amount must be positive.
//
// It produces Stake notification.
func Stake(from interop.Hash160, amount int) {
	if amount <= 0 {
		panic(ErrInvalidAmount)
	}
	if !isUsableAddress(from) {
		panic(common.ErrWitnessFailed)
	}

	ctx := storage.GetContext()

	self := runtime.GetExecutingScriptHash()
	if !gas.Transfer(from, self, amount, nil) {
		panic("failed to transfer stake deposit")
	}

	acc := getAccount(ctx, from)
	acc.Staked += amount
	common.SetSerialized(ctx, accKey(from), acc)
	storage.Put(ctx, totalStakedKey, getTotalStaked(ctx)+amount)

	runtime.Notify("Stake", from, amount, acc.Staked)
}

// Unstake releases amount of the caller's staked GAS and transfers it back.
// It can be invoked only by the account owner and fails if the account's
// stake does not cover the amount. All internal bookkeeping is committed
// before the transfer; a reentrant invocation made from inside the transfer
// fails with ErrReentrant.
//
// It produces Unstake notification.
func Unstake(from interop.Hash160, amount int) {
	ctx := storage.GetContext()
	common.AcquireTransferGuard(ctx)

	if amount < 0 {
		panic(ErrInvalidAmount)
	}
	if !isUsableAddress(from) {
		panic(common.ErrWitnessFailed)
	}

	acc := getAccount(ctx, from)
	if acc.Staked < amount {
		panic(ErrInsufficientStake)
	}

	acc.Staked -= amount
	common.SetSerialized(ctx, accKey(from), acc)
	storage.Put(ctx, totalStakedKey, getTotalStaked(ctx)-amount)

	self := runtime.GetExecutingScriptHash()
	if !gas.Transfer(self, from, amount, nil) {
		panic("failed to return stake")
	}

	runtime.Notify("Unstake", from, amount, acc.Staked)
	common.ReleaseTransferGuard(ctx)
}

// Reward accrues amount to the account's unclaimed reward and to the reward
// pool. It can be invoked only by the contract owner.
//
// It produces Reward notification.
func Reward(to interop.Hash160, amount int) {
	if amount <= 0 {
		panic(ErrInvalidAmount)
	}

	ctx := storage.GetContext()
	common.CheckOwnerWitness(getOwner(ctx))

	acc := getAccount(ctx, to)
	acc.Reward += amount
	common.SetSerialized(ctx, accKey(to), acc)
	storage.Put(ctx, rewardPoolKey, getRewardPool(ctx)+amount)

	runtime.Notify("Reward", to, amount, acc.Reward)
}

// ClaimReward pays the caller's accrued reward out in GAS and zeroes the
// accrual. It can be invoked only by the account owner. The payout happens
// strictly after the accrual is zeroed; a reentrant invocation made from
// inside the transfer fails with ErrReentrant.
//
// It produces Claim notification.
func ClaimReward(from interop.Hash160) {
	ctx := storage.GetContext()
	common.AcquireTransferGuard(ctx)

	if !isUsableAddress(from) {
		panic(common.ErrWitnessFailed)
	}

	acc := getAccount(ctx, from)
	amount := acc.Reward
	if amount == 0 {
		panic(ErrNoReward)
	}

	self := runtime.GetExecutingScriptHash()
	if gas.BalanceOf(self) < amount {
		panic(ErrInsufficientBalance)
	}

	acc.Reward = 0
	common.SetSerialized(ctx, accKey(from), acc)
	storage.Put(ctx, rewardPoolKey, getRewardPool(ctx)-amount)

	if !gas.Transfer(self, from, amount, nil) {
		panic("failed to pay out reward")
	}

	runtime.Notify("Claim", from, amount)
	common.ReleaseTransferGuard(ctx)
}

// Slash forcibly reduces the account's stake by penalty and marks the
// account slashed. The penalty is not credited anywhere, it stays on the
// contract account outside of any ledger bookkeeping. It can be invoked
// only by the contract owner.
//
// It produces Slash notification.
func Slash(account interop.Hash160, penalty int) {
	if penalty <= 0 {
		panic(ErrInvalidAmount)
	}

	ctx := storage.GetContext()
	common.CheckOwnerWitness(getOwner(ctx))

	acc := getAccount(ctx, account)
	if acc.Staked < penalty {
		panic(ErrInsufficientStake)
	}

	acc.Staked -= penalty
	acc.Slashed = true
	common.SetSerialized(ctx, accKey(account), acc)
	storage.Put(ctx, totalStakedKey, getTotalStaked(ctx)-penalty)

	runtime.Notify("Slash", account, penalty, acc.Staked)
}

// StakeOf returns the amount currently staked by the specified account.
func StakeOf(account interop.Hash160) int {
	return getAccount(storage.GetReadOnlyContext(), account).Staked
}

// RewardOf returns the unclaimed reward of the specified account.
func RewardOf(account interop.Hash160) int {
	return getAccount(storage.GetReadOnlyContext(), account).Reward
}

// IsSlashed returns true if the specified account has ever been slashed.
func IsSlashed(account interop.Hash160) bool {
	return getAccount(storage.GetReadOnlyContext(), account).Slashed
}

// TotalStaked returns the sum of all accounts' stakes.
func TotalStaked() int {
	return getTotalStaked(storage.GetReadOnlyContext())
}

// RewardPool returns the total amount of unclaimed rewards.
func RewardPool() int {
	return getRewardPool(storage.GetReadOnlyContext())
}

// Owner returns the owner of the contract.
func Owner() interop.Hash160 {
	return getOwner(storage.GetReadOnlyContext())
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// isUsableAddress checks if the sender is either a correct NEO address or SC address.
func isUsableAddress(addr interop.Hash160) bool {
	if len(addr) == interop.Hash160Len {
		if runtime.CheckWitness(addr) {
			return true
		}

		// Check if a smart contract is calling script hash
		callingScriptHash := runtime.GetCallingScriptHash()
		if callingScriptHash.Equals(addr) {
			return true
		}
	}

	return false
}

func accKey(account interop.Hash160) []byte {
	return append([]byte{accPrefix}, account...)
}

func getAccount(ctx storage.Context, key interop.Hash160) Account {
	data := storage.Get(ctx, accKey(key))
	if data != nil {
		return std.Deserialize(data.([]byte)).(Account)
	}

	return Account{}
}

func getOwner(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, ownerKey).(interop.Hash160)
}

func getTotalStaked(ctx storage.Context) int {
	raw := storage.Get(ctx, totalStakedKey)
	if raw != nil {
		return raw.(int)
	}

	return 0
}

func getRewardPool(ctx storage.Context) int {
	raw := storage.Get(ctx, rewardPoolKey)
	if raw != nil {
		return raw.(int)
	}

	return 0
}

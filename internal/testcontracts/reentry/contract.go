// Package reentry is a probe for the stake contract's transfer guard. Its
// GAS payment callback calls back into the stake contract while a payout
// to this contract is still in progress.
package reentry

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	stakeKey = "stake"
	modeKey  = "mode"
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		return
	}
	args := data.([]any)
	storage.Put(storage.GetContext(), stakeKey, args[0].(interop.Hash160))
}

// Claim initiates a reward payout for this contract. A non-empty mode
// ("unstake" or "claim") arms the payment callback to call the named stake
// contract method again from inside the payout.
func Claim(mode string) {
	ctx := storage.GetContext()
	if len(mode) > 0 {
		storage.Put(ctx, modeKey, mode)
	}

	contract.Call(stakeContract(ctx), "claimReward", contract.All, runtime.GetExecutingScriptHash())

	storage.Delete(ctx, modeKey)
}

// OnNEP17Payment re-enters the stake contract if armed by Claim.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	ctx := storage.GetContext()
	raw := storage.Get(ctx, modeKey)
	if raw == nil {
		return
	}
	storage.Delete(ctx, modeKey)

	self := runtime.GetExecutingScriptHash()
	if raw.(string) == "unstake" {
		contract.Call(stakeContract(ctx), "unstake", contract.All, self, amount)
	} else {
		contract.Call(stakeContract(ctx), "claimReward", contract.All, self)
	}
}

func stakeContract(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, stakeKey).(interop.Hash160)
}

package scoring

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/modelnet/modelnet-contract/common"
)

const (
	// ErrOracleWitnessFailed is thrown when UpdateScore is called by
	// anybody but the authorized oracle.
	ErrOracleWitnessFailed = "oracle witness check failed"
	// ErrNoOracle is thrown when UpdateScore is called before any oracle
	// has been set.
	ErrNoOracle = "oracle is not set"
	// ErrInvalidOracle is thrown when the new oracle identity has invalid
	// format.
	ErrInvalidOracle = "invalid oracle"
)

// A missed or false verdict costs twice a correct one.
const (
	correctDelta   = 1
	incorrectDelta = -2
)

const (
	scorePrefix = 's'

	ownerKey  = 'o'
	oracleKey = 'r'
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	storage.Put(ctx, ownerKey, common.CommitteeAddress())

	if data != nil {
		args := data.([]any)
		if len(args) > 0 && len(args[0].(interop.Hash160)) == interop.Hash160Len {
			storage.Put(ctx, oracleKey, args[0].(interop.Hash160))
		}
	}

	runtime.Log("scoring contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("scoring contract updated")
}

// SetOracle replaces the single authorized oracle identity. It can be
// invoked only by the contract owner. A previously authorized oracle loses
// access immediately.
//
// It produces SetOracle notification.
func SetOracle(newOracle interop.Hash160) {
	if len(newOracle) != interop.Hash160Len {
		panic(ErrInvalidOracle)
	}

	ctx := storage.GetContext()
	common.CheckOwnerWitness(storage.Get(ctx, ownerKey).(interop.Hash160))

	storage.Put(ctx, oracleKey, newOracle)

	runtime.Notify("SetOracle", newOracle)
}

// UpdateScore converts the correctness verdict reported for the account's
// latest contribution into a score delta: +1 for a correct one, -2
// otherwise. It can be invoked only by the authorized oracle.
//
// It produces UpdateScore notification.
func UpdateScore(account interop.Hash160, isCorrect bool) {
	ctx := storage.GetContext()

	oracle := storage.Get(ctx, oracleKey)
	if oracle == nil {
		panic(ErrNoOracle)
	}
	if !runtime.CheckWitness(oracle.(interop.Hash160)) {
		panic(ErrOracleWitnessFailed)
	}

	score := getScore(ctx, account)
	if isCorrect {
		score += correctDelta
	} else {
		score += incorrectDelta
	}
	storage.Put(ctx, scoreKey(account), score)

	runtime.Notify("UpdateScore", account, score)
}

// ScoreOf returns the cumulative correctness score of the specified
// account. Unknown accounts have zero score.
func ScoreOf(account interop.Hash160) int {
	return getScore(storage.GetReadOnlyContext(), account)
}

// Oracle returns the authorized oracle identity or nil if none is set.
func Oracle() interop.Hash160 {
	oracle := storage.Get(storage.GetReadOnlyContext(), oracleKey)
	if oracle == nil {
		return nil
	}

	return oracle.(interop.Hash160)
}

// Owner returns the owner of the contract.
func Owner() interop.Hash160 {
	return storage.Get(storage.GetReadOnlyContext(), ownerKey).(interop.Hash160)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func scoreKey(account interop.Hash160) []byte {
	return append([]byte{scorePrefix}, account...)
}

func getScore(ctx storage.Context, account interop.Hash160) int {
	raw := storage.Get(ctx, scoreKey(account))
	if raw != nil {
		return raw.(int)
	}

	return 0
}

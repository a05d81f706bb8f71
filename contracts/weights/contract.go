package weights

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/modelnet/modelnet-contract/common"
)

const (
	// ErrNotFound is thrown on a weight lookup of an unknown content hash.
	ErrNotFound = "model not found"
	// ErrInvalidContentHash is thrown when the content hash is not a
	// 32-byte digest.
	ErrInvalidContentHash = "invalid content hash"
	// ErrInvalidWeight is thrown on a negative weight.
	ErrInvalidWeight = "invalid weight"
)

const (
	weightPrefix = 'w'

	ownerKey = 'o'
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

	runtime.Log("weights contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("weights contract updated")
}

// SetWeight assigns an ensemble weight to the specified content hash,
// overwriting any previous value. It can be invoked only by the contract
// owner. No check is made that the hash is known to the Registry contract:
// weighting is deliberately decoupled from registration.
//
// It produces SetWeight notification.
func SetWeight(hash interop.Hash256, weight int) {
	if len(hash) != interop.Hash256Len {
		panic(ErrInvalidContentHash)
	}
	if weight < 0 {
		panic(ErrInvalidWeight)
	}

	ctx := storage.GetContext()
	common.CheckOwnerWitness(storage.Get(ctx, ownerKey).(interop.Hash160))

	storage.Put(ctx, weightKey(hash), weight)

	runtime.Notify("SetWeight", hash, weight)
}

// GetWeight returns the ensemble weight assigned to the specified content
// hash.
func GetWeight(hash interop.Hash256) int {
	if len(hash) != interop.Hash256Len {
		panic(ErrInvalidContentHash)
	}

	raw := storage.Get(storage.GetReadOnlyContext(), weightKey(hash))
	if raw == nil {
		panic(ErrNotFound)
	}

	return raw.(int)
}

// IsSet returns true if a weight has been assigned to the specified
// content hash.
func IsSet(hash interop.Hash256) bool {
	if len(hash) != interop.Hash256Len {
		panic(ErrInvalidContentHash)
	}

	return storage.Get(storage.GetReadOnlyContext(), weightKey(hash)) != nil
}

// Owner returns the owner of the contract.
func Owner() interop.Hash160 {
	return storage.Get(storage.GetReadOnlyContext(), ownerKey).(interop.Hash160)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func weightKey(hash interop.Hash256) []byte {
	return append([]byte{weightPrefix}, hash...)
}

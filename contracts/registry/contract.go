package registry

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/ledger"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/modelnet/modelnet-contract/common"
	cst "github.com/modelnet/modelnet-contract/contracts/registry/registryconst"
)

// Model is a single entry of the append-only model log. It is immutable
// once created.
type Model struct {
	// Hash is the 32-byte content digest of the model artifact.
	Hash interop.Hash256
	// Contributor is the account that submitted the artifact.
	Contributor interop.Hash160
	// Submitted is the chain height at submission time.
	Submitted int
	// Metadata is free-form UTF-8 text attached by the contributor.
	Metadata string
}

const (
	countKey = 'c'

	modelPrefix = 'm'
	hashPrefix  = 'h'
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	storage.Put(ctx, countKey, 0)

	runtime.Log("registry contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("registry contract updated")
}

// Submit appends a new model entry to the log and returns its zero-based
// index. It can be invoked only by the contributor. A content hash that
// has ever been submitted before is rejected no matter who submits it or
// with what metadata.
//
// It produces Submit notification.
func Submit(contributor interop.Hash160, hash interop.Hash256, metadata string) int {
	if len(hash) != interop.Hash256Len {
		panic(cst.ErrInvalidContentHash)
	}

	common.CheckWitness(contributor)

	ctx := storage.GetContext()
	if storage.Get(ctx, hashKey(hash)) != nil {
		panic(cst.ErrAlreadyExists)
	}

	index := getCount(ctx)
	m := Model{
		Hash:        hash,
		Contributor: contributor,
		Submitted:   ledger.CurrentIndex(),
		Metadata:    metadata,
	}

	common.SetSerialized(ctx, modelKey(index), m)
	storage.Put(ctx, hashKey(hash), index)
	storage.Put(ctx, countKey, index+1)

	runtime.Notify("Submit", hash, index)

	return index
}

// Get returns the model entry stored at the specified index.
func Get(index int) Model {
	ctx := storage.GetReadOnlyContext()
	if index < 0 || index >= getCount(ctx) {
		panic(cst.ErrIndexOutOfRange)
	}

	return std.Deserialize(storage.Get(ctx, modelKey(index)).([]byte)).(Model)
}

// IndexOf returns the log index of the entry with the specified content
// hash.
func IndexOf(hash interop.Hash256) int {
	if len(hash) != interop.Hash256Len {
		panic(cst.ErrInvalidContentHash)
	}

	raw := storage.Get(storage.GetReadOnlyContext(), hashKey(hash))
	if raw == nil {
		panic(cst.ErrNotFound)
	}

	return raw.(int)
}

// Exists returns true if a model with the specified content hash has ever
// been submitted.
func Exists(hash interop.Hash256) bool {
	if len(hash) != interop.Hash256Len {
		panic(cst.ErrInvalidContentHash)
	}

	return storage.Get(storage.GetReadOnlyContext(), hashKey(hash)) != nil
}

// Count returns the number of entries in the log. It never decreases: the
// log is append-only and entries are never deleted.
func Count() int {
	return getCount(storage.GetReadOnlyContext())
}

// Iterate returns an iterator over all serialized model entries.
func Iterate() iterator.Iterator {
	return storage.Find(storage.GetReadOnlyContext(), []byte{modelPrefix}, storage.ValuesOnly|storage.DeserializeValues)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func modelKey(index int) []byte {
	return append([]byte{modelPrefix}, convert.ToBytes(index)...)
}

func hashKey(hash interop.Hash256) []byte {
	return append([]byte{hashPrefix}, hash...)
}

func getCount(ctx storage.Context) int {
	raw := storage.Get(ctx, countKey)
	if raw != nil {
		return raw.(int)
	}

	return 0
}

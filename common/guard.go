package common

import "github.com/nspcc-dev/neo-go/pkg/interop/storage"

// ErrReentrant appears when a method performing an external value
// transfer is entered again before the transfer of an in-progress
// invocation has finished.
const ErrReentrant = "reentrant call"

const transferGuardKey = "busy"

// AcquireTransferGuard marks contract storage busy with an external value
// transfer. It panics with ErrReentrant message if the mark is already
// there. Any method that both mutates contract state and transfers assets
// out must take the guard before doing anything else and drop it with
// ReleaseTransferGuard on the success path. Faulted invocations roll the
// mark back together with the rest of their writes.
func AcquireTransferGuard(ctx storage.Context) {
	if storage.Get(ctx, transferGuardKey) != nil {
		panic(ErrReentrant)
	}
	storage.Put(ctx, transferGuardKey, true)
}

// ReleaseTransferGuard drops the mark put by AcquireTransferGuard.
func ReleaseTransferGuard(ctx storage.Context) {
	storage.Delete(ctx, transferGuardKey)
}

package registry

import (
	"github.com/modelnet/modelnet-contract/contracts/registry/registryconst"
)

const (
	// ErrAlreadyExists is returned on a duplicate content hash submission.
	ErrAlreadyExists = registryconst.ErrAlreadyExists
	// ErrIndexOutOfRange is returned on a lookup past the end of the log.
	ErrIndexOutOfRange = registryconst.ErrIndexOutOfRange
	// ErrNotFound is returned if the content hash was never submitted.
	ErrNotFound = registryconst.ErrNotFound
	// ErrInvalidContentHash is returned on a malformed content hash.
	ErrInvalidContentHash = registryconst.ErrInvalidContentHash
)

// Package registryconst contains constants shared between the Registry
// contract and off-chain systems.
package registryconst

const (
	// ErrAlreadyExists is thrown on a repeated submission of a content hash.
	ErrAlreadyExists = "model already submitted"
	// ErrIndexOutOfRange is thrown when the requested entry index is past
	// the end of the log.
	ErrIndexOutOfRange = "model index out of range"
	// ErrNotFound is thrown on a lookup of an unknown content hash.
	ErrNotFound = "model not found"
	// ErrInvalidContentHash is thrown when the content hash is not a
	// 32-byte digest.
	ErrInvalidContentHash = "invalid content hash"
)

package registry

import (
	"fmt"

	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// ModelID returns the human-readable identifier of a model: the base58
// encoding of its content hash. It is the form used in CLI arguments and
// logs.
func ModelID(hash util.Uint256) string {
	return base58.Encode(hash.BytesBE())
}

// ParseModelID decodes a base58 model identifier back into the content
// hash.
func ParseModelID(id string) (util.Uint256, error) {
	data, err := base58.Decode(id)
	if err != nil {
		return util.Uint256{}, fmt.Errorf("invalid model ID: %w", err)
	}

	hash, err := util.Uint256DecodeBytesBE(data)
	if err != nil {
		return util.Uint256{}, fmt.Errorf("invalid model ID: %w", err)
	}

	return hash, nil
}

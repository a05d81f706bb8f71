package registry

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

func TestModelID(t *testing.T) {
	var hash util.Uint256
	for i := range hash {
		hash[i] = byte(i)
	}

	id := ModelID(hash)
	require.NotEmpty(t, id)

	back, err := ParseModelID(id)
	require.NoError(t, err)
	require.Equal(t, hash, back)

	_, err = ParseModelID("not-a-valid-id-0OIl")
	require.Error(t, err)

	_, err = ParseModelID("3mJr") // too short for a content hash
	require.Error(t, err)
}

package tests

import (
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/modelnet/modelnet-contract/common"
	cst "github.com/modelnet/modelnet-contract/contracts/registry/registryconst"
	"github.com/stretchr/testify/require"
)

const registryPath = "../contracts/registry"

func deployRegistryContract(t *testing.T, e *neotest.Executor) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, registryPath, path.Join(registryPath, "config.yml"))
	e.DeployContract(t, c, nil)
	return c.Hash
}

func newRegistryInvoker(t *testing.T) *neotest.ContractInvoker {
	e := newExecutor(t)
	return e.CommitteeInvoker(deployRegistryContract(t, e))
}

func TestRegistry_Version(t *testing.T) {
	c := newRegistryInvoker(t)
	c.Invoke(t, common.Version, "version")
}

func TestRegistry_Submit(t *testing.T) {
	c := newRegistryInvoker(t)

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)
	accH := acc.ScriptHash()

	hash := randomBytes(32)

	cAcc.InvokeFail(t, cst.ErrInvalidContentHash, "submit", accH, randomBytes(31), "m")
	c.InvokeFail(t, common.ErrWitnessFailed, "submit", accH, hash, "m")

	h := cAcc.Invoke(t, int64(0), "submit", accH, hash, "resnet-50 weights")
	aer := cAcc.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "Submit", aer.Events[0].Name)

	c.Invoke(t, int64(1), "count")
	c.Invoke(t, true, "exists", hash)
	c.Invoke(t, int64(0), "indexOf", hash)

	// same content, different metadata and contributor: still a duplicate
	other := c.NewAccount(t)
	cOther := c.WithSigners(other)
	cOther.InvokeFail(t, cst.ErrAlreadyExists, "submit", other.ScriptHash(), hash, "copy")
	c.Invoke(t, int64(1), "count")

	hash2 := randomBytes(32)
	cOther.Invoke(t, int64(1), "submit", other.ScriptHash(), hash2, "")
	c.Invoke(t, int64(2), "count")
}

func TestRegistry_Get(t *testing.T) {
	c := newRegistryInvoker(t)

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)
	accH := acc.ScriptHash()
	hash := randomBytes(32)

	cAcc.Invoke(t, int64(0), "submit", accH, hash, "checkpoint")

	s, err := c.TestInvoke(t, "get", int64(0))
	require.NoError(t, err)
	fields := s.Pop().Array()
	require.Equal(t, 4, len(fields))
	gotHash, err := fields[0].TryBytes()
	require.NoError(t, err)
	require.Equal(t, hash, gotHash)
	gotOwner, err := fields[1].TryBytes()
	require.NoError(t, err)
	require.Equal(t, accH.BytesBE(), gotOwner)
	submitted, err := fields[2].TryInteger()
	require.NoError(t, err)
	require.True(t, submitted.Sign() >= 0)
	meta, err := fields[3].TryBytes()
	require.NoError(t, err)
	require.Equal(t, "checkpoint", string(meta))

	c.InvokeFail(t, cst.ErrIndexOutOfRange, "get", int64(1))
	c.InvokeFail(t, cst.ErrIndexOutOfRange, "get", int64(-1))
	c.InvokeFail(t, cst.ErrNotFound, "indexOf", randomBytes(32))
}

func TestRegistry_Iterate(t *testing.T) {
	c := newRegistryInvoker(t)

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)
	accH := acc.ScriptHash()

	hashes := make([][]byte, 3)
	for i := range hashes {
		hashes[i] = randomBytes(32)
		cAcc.Invoke(t, int64(i), "submit", accH, hashes[i], "")
	}

	s, err := c.TestInvoke(t, "iterate")
	require.NoError(t, err)
	iter, ok := s.Pop().Interop().Value().(*storage.Iterator)
	require.True(t, ok)

	items := iteratorToArray(iter)
	require.Equal(t, len(hashes), len(items))
	for i, item := range items {
		fields := item.Value().([]stackitem.Item)
		gotHash, err := fields[0].TryBytes()
		require.NoError(t, err)
		require.Equal(t, hashes[i], gotHash)
	}
}

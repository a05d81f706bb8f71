package tests

import (
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/modelnet/modelnet-contract/common"
	"github.com/modelnet/modelnet-contract/contracts/weights"
	"github.com/stretchr/testify/require"
)

const weightsPath = "../contracts/weights"

func deployWeightsContract(t *testing.T, e *neotest.Executor) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, weightsPath, path.Join(weightsPath, "config.yml"))
	e.DeployContract(t, c, nil)
	return c.Hash
}

func newWeightsInvoker(t *testing.T) *neotest.ContractInvoker {
	e := newExecutor(t)
	return e.CommitteeInvoker(deployWeightsContract(t, e))
}

func TestWeights_Version(t *testing.T) {
	c := newWeightsInvoker(t)
	c.Invoke(t, common.Version, "version")
}

func TestWeights_SetGet(t *testing.T) {
	c := newWeightsInvoker(t)

	hash := randomBytes(32)

	c.InvokeFail(t, weights.ErrNotFound, "getWeight", hash)
	c.Invoke(t, false, "isSet", hash)

	c.InvokeFail(t, weights.ErrInvalidContentHash, "setWeight", randomBytes(31), int64(5))
	c.InvokeFail(t, weights.ErrInvalidWeight, "setWeight", hash, int64(-1))

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)
	cAcc.InvokeFail(t, common.ErrOwnerWitnessFailed, "setWeight", hash, int64(5))

	h := c.Invoke(t, stackitem.Null{}, "setWeight", hash, int64(5))
	aer := c.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "SetWeight", aer.Events[0].Name)

	c.Invoke(t, int64(5), "getWeight", hash)
	c.Invoke(t, true, "isSet", hash)

	// upsert: the old value is simply replaced
	c.Invoke(t, stackitem.Null{}, "setWeight", hash, int64(7))
	c.Invoke(t, int64(7), "getWeight", hash)

	// zero is a valid weight, it just mutes the model
	c.Invoke(t, stackitem.Null{}, "setWeight", hash, int64(0))
	c.Invoke(t, int64(0), "getWeight", hash)
	c.Invoke(t, true, "isSet", hash)
}

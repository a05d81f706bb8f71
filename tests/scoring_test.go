package tests

import (
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/modelnet/modelnet-contract/common"
	"github.com/modelnet/modelnet-contract/contracts/scoring"
	"github.com/stretchr/testify/require"
)

const scoringPath = "../contracts/scoring"

func deployScoringContract(t *testing.T, e *neotest.Executor, oracle util.Uint160) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, scoringPath, path.Join(scoringPath, "config.yml"))
	var args []any
	if !oracle.Equals(util.Uint160{}) {
		args = append(args, oracle)
	}
	e.DeployContract(t, c, args)
	return c.Hash
}

func TestScoring_Version(t *testing.T) {
	e := newExecutor(t)
	c := e.CommitteeInvoker(deployScoringContract(t, e, util.Uint160{}))
	c.Invoke(t, common.Version, "version")
}

func TestScoring_UpdateScore(t *testing.T) {
	e := newExecutor(t)

	oracle := e.NewAccount(t)
	oracleH := oracle.ScriptHash()
	c := e.CommitteeInvoker(deployScoringContract(t, e, oracleH))
	cOracle := c.WithSigners(oracle)

	subj := c.NewAccount(t).ScriptHash()
	c.Invoke(t, int64(0), "scoreOf", subj)

	// the committee owns the contract but it is not the oracle
	c.InvokeFail(t, scoring.ErrOracleWitnessFailed, "updateScore", subj, true)

	h := cOracle.Invoke(t, stackitem.Null{}, "updateScore", subj, true)
	aer := cOracle.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "UpdateScore", aer.Events[0].Name)
	c.Invoke(t, int64(1), "scoreOf", subj)

	// a single miss outweighs a single hit
	cOracle.Invoke(t, stackitem.Null{}, "updateScore", subj, false)
	c.Invoke(t, int64(-1), "scoreOf", subj)

	cOracle.Invoke(t, stackitem.Null{}, "updateScore", subj, false)
	c.Invoke(t, int64(-3), "scoreOf", subj)
}

func TestScoring_NoOracle(t *testing.T) {
	e := newExecutor(t)
	c := e.CommitteeInvoker(deployScoringContract(t, e, util.Uint160{}))

	subj := c.NewAccount(t).ScriptHash()
	c.InvokeFail(t, scoring.ErrNoOracle, "updateScore", subj, true)
}

func TestScoring_SetOracle(t *testing.T) {
	e := newExecutor(t)

	oldOracle := e.NewAccount(t)
	c := e.CommitteeInvoker(deployScoringContract(t, e, oldOracle.ScriptHash()))
	cOld := c.WithSigners(oldOracle)

	newOracle := c.NewAccount(t)
	newOracleH := newOracle.ScriptHash()
	cNew := c.WithSigners(newOracle)

	cOld.InvokeFail(t, common.ErrOwnerWitnessFailed, "setOracle", newOracleH)

	h := c.Invoke(t, stackitem.Null{}, "setOracle", newOracleH)
	aer := c.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "SetOracle", aer.Events[0].Name)

	s, err := c.TestInvoke(t, "oracle")
	require.NoError(t, err)
	got, err := s.Pop().Item().TryBytes()
	require.NoError(t, err)
	require.Equal(t, newOracleH.BytesBE(), got)

	subj := c.NewAccount(t).ScriptHash()
	cOld.InvokeFail(t, scoring.ErrOracleWitnessFailed, "updateScore", subj, true)
	cNew.Invoke(t, stackitem.Null{}, "updateScore", subj, true)
	c.Invoke(t, int64(1), "scoreOf", subj)
}

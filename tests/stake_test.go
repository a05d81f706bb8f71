package tests

import (
	"math/big"
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/modelnet/modelnet-contract/common"
	"github.com/modelnet/modelnet-contract/contracts/stake"
	"github.com/stretchr/testify/require"
)

const (
	stakePath   = "../contracts/stake"
	reentryPath = "../internal/testcontracts/reentry"
)

func deployStakeContract(t *testing.T, e *neotest.Executor) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, stakePath, path.Join(stakePath, "config.yml"))
	e.DeployContract(t, c, nil)
	return c.Hash
}

func newStakeInvoker(t *testing.T) *neotest.ContractInvoker {
	e := newExecutor(t)
	h := deployStakeContract(t, e)
	return e.CommitteeInvoker(h)
}

func stakeOf(t *testing.T, c *neotest.ContractInvoker, acc util.Uint160) int64 {
	s, err := c.TestInvoke(t, "stakeOf", acc)
	require.NoError(t, err)
	return s.Pop().BigInt().Int64()
}

func totalStaked(t *testing.T, c *neotest.ContractInvoker) int64 {
	s, err := c.TestInvoke(t, "totalStaked")
	require.NoError(t, err)
	return s.Pop().BigInt().Int64()
}

func TestStake_Version(t *testing.T) {
	c := newStakeInvoker(t)
	c.Invoke(t, common.Version, "version")
}

func TestStake_StakeUnstake(t *testing.T) {
	c := newStakeInvoker(t)

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)
	accH := acc.ScriptHash()

	cAcc.InvokeFail(t, stake.ErrInvalidAmount, "stake", accH, int64(0))
	cAcc.InvokeFail(t, stake.ErrInvalidAmount, "stake", accH, int64(-5))

	// the committee has no say over somebody else's funds
	c.InvokeFail(t, common.ErrWitnessFailed, "stake", accH, int64(5))

	h := cAcc.Invoke(t, stackitem.Null{}, "stake", accH, int64(1000))
	aer := cAcc.CheckHalt(t, h)
	ev := aer.Events[len(aer.Events)-1]
	require.Equal(t, "Stake", ev.Name)
	require.Equal(t, stackitem.NewArray([]stackitem.Item{
		stackitem.NewByteArray(accH.BytesBE()),
		stackitem.NewBigInteger(big.NewInt(1000)),
		stackitem.NewBigInteger(big.NewInt(1000)),
	}), ev.Item)

	c.Invoke(t, int64(1000), "stakeOf", accH)
	c.Invoke(t, int64(1000), "totalStaked")

	h = cAcc.Invoke(t, stackitem.Null{}, "unstake", accH, int64(400))
	aer = cAcc.CheckHalt(t, h)
	ev = aer.Events[len(aer.Events)-1]
	require.Equal(t, "Unstake", ev.Name)
	require.Equal(t, stackitem.NewArray([]stackitem.Item{
		stackitem.NewByteArray(accH.BytesBE()),
		stackitem.NewBigInteger(big.NewInt(400)),
		stackitem.NewBigInteger(big.NewInt(600)),
	}), ev.Item)

	c.Invoke(t, int64(600), "stakeOf", accH)
	c.Invoke(t, int64(600), "totalStaked")

	cAcc.InvokeFail(t, stake.ErrInsufficientStake, "unstake", accH, int64(700))
	c.Invoke(t, int64(600), "stakeOf", accH)
	c.Invoke(t, int64(600), "totalStaked")
}

func TestStake_SlashScenario(t *testing.T) {
	c := newStakeInvoker(t)

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)
	accH := acc.ScriptHash()

	cAcc.Invoke(t, stackitem.Null{}, "stake", accH, int64(1000))
	c.Invoke(t, int64(1000), "stakeOf", accH)
	c.Invoke(t, int64(1000), "totalStaked")
	c.Invoke(t, false, "isSlashed", accH)

	cAcc.InvokeFail(t, common.ErrOwnerWitnessFailed, "slash", accH, int64(500))

	h := c.Invoke(t, stackitem.Null{}, "slash", accH, int64(500))
	aer := c.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "Slash", aer.Events[0].Name)

	c.Invoke(t, int64(500), "stakeOf", accH)
	c.Invoke(t, true, "isSlashed", accH)
	c.Invoke(t, int64(500), "totalStaked")

	c.InvokeFail(t, stake.ErrInsufficientStake, "slash", accH, int64(600))
	c.Invoke(t, int64(500), "stakeOf", accH)
	c.Invoke(t, true, "isSlashed", accH)
	c.Invoke(t, int64(500), "totalStaked")

	// the flag is sticky
	cAcc.Invoke(t, stackitem.Null{}, "unstake", accH, int64(500))
	c.Invoke(t, true, "isSlashed", accH)
}

func TestStake_Conservation(t *testing.T) {
	c := newStakeInvoker(t)

	acc1 := c.NewAccount(t)
	acc2 := c.NewAccount(t)
	cAcc1 := c.WithSigners(acc1)
	cAcc2 := c.WithSigners(acc2)
	h1 := acc1.ScriptHash()
	h2 := acc2.ScriptHash()

	checkConserved := func() {
		require.Equal(t, stakeOf(t, c, h1)+stakeOf(t, c, h2), totalStaked(t, c))
	}

	cAcc1.Invoke(t, stackitem.Null{}, "stake", h1, int64(300))
	checkConserved()
	cAcc2.Invoke(t, stackitem.Null{}, "stake", h2, int64(700))
	checkConserved()
	cAcc1.Invoke(t, stackitem.Null{}, "unstake", h1, int64(100))
	checkConserved()
	c.Invoke(t, stackitem.Null{}, "slash", h2, int64(250))
	checkConserved()
	cAcc2.Invoke(t, stackitem.Null{}, "stake", h2, int64(50))
	checkConserved()
	cAcc1.Invoke(t, stackitem.Null{}, "unstake", h1, int64(200))
	checkConserved()

	require.EqualValues(t, 0, stakeOf(t, c, h1))
	require.EqualValues(t, 500, totalStaked(t, c))
}

func TestStake_RewardClaim(t *testing.T) {
	c := newStakeInvoker(t)

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)
	accH := acc.ScriptHash()

	cAcc.InvokeFail(t, common.ErrOwnerWitnessFailed, "reward", accH, int64(50))
	c.InvokeFail(t, stake.ErrInvalidAmount, "reward", accH, int64(0))
	cAcc.InvokeFail(t, stake.ErrNoReward, "claimReward", accH)

	h := c.Invoke(t, stackitem.Null{}, "reward", accH, int64(50))
	aer := c.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "Reward", aer.Events[0].Name)
	require.Equal(t, stackitem.NewArray([]stackitem.Item{
		stackitem.NewByteArray(accH.BytesBE()),
		stackitem.NewBigInteger(big.NewInt(50)),
		stackitem.NewBigInteger(big.NewInt(50)),
	}), aer.Events[0].Item)

	c.Invoke(t, int64(50), "rewardOf", accH)
	c.Invoke(t, int64(50), "rewardPool")

	// accrued but not backed by contract GAS yet
	cAcc.InvokeFail(t, stake.ErrInsufficientBalance, "claimReward", accH)
	c.Invoke(t, int64(50), "rewardOf", accH)

	transferGAS(t, c.Executor, c.Hash, 1_0000_0000)

	cAcc.Invoke(t, stackitem.Null{}, "claimReward", accH)
	c.Invoke(t, int64(0), "rewardOf", accH)
	c.Invoke(t, int64(0), "rewardPool")

	cAcc.InvokeFail(t, stake.ErrNoReward, "claimReward", accH)
}

func TestStake_Reentrancy(t *testing.T) {
	e := newExecutor(t)
	stakeHash := deployStakeContract(t, e)
	c := e.CommitteeInvoker(stakeHash)

	ctr := neotest.CompileFile(t, e.CommitteeHash, reentryPath, path.Join(reentryPath, "config.yml"))
	e.DeployContract(t, ctr, []any{stakeHash})
	probe := e.CommitteeInvoker(ctr.Hash)

	c.Invoke(t, stackitem.Null{}, "reward", ctr.Hash, int64(100))
	transferGAS(t, e, stakeHash, 1_0000_0000)

	// nested claimReward and unstake from inside the payout must both
	// be cut off by the transfer guard
	probe.InvokeFail(t, common.ErrReentrant, "claim", "claim")
	probe.InvokeFail(t, common.ErrReentrant, "claim", "unstake")

	// failed attempts left the accrual untouched
	c.Invoke(t, int64(100), "rewardOf", ctr.Hash)

	// an unarmed claim goes through
	probe.Invoke(t, stackitem.Null{}, "claim", "")
	c.Invoke(t, int64(0), "rewardOf", ctr.Hash)
}

package tests

import (
	"testing"

	"github.com/Nexsosphere-Technologies/rewards-contract/common"
	"github.com/Nexsosphere-Technologies/rewards-contract/contracts/farming"
	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const (
	// farFuture is far beyond any chain timestamp the test can reach, so
	// a [0, farFuture] farm window is always open.
	farFuture = 100_000_000_000

	// lowRate emits no integer reward for the small deposit within the
	// test duration, keeping claim payouts exact.
	lowRate    = 1
	lowDeposit = 100
)

func createOpenFarm(t *testing.T, c *neotest.ContractInvoker, rate, budget int64) int64 {
	stack, err := c.TestInvoke(t, "farmCount")
	require.NoError(t, err)
	id := stack.Pop().BigInt().Int64() + 1

	c.Invoke(t, id, "createFarm", "open", rate, 0, farFuture, 1, 10_000_000_000_000_000, budget)
	return id
}

func farmPosition(t *testing.T, c *neotest.ContractInvoker, account util.Uint160, farmID int64) (int64, int64) {
	stack, err := c.TestInvoke(t, "getUserFarmInfo", account, farmID)
	require.NoError(t, err)

	pos := stack.Pop().Array()
	amount, err := pos[0].TryInteger()
	require.NoError(t, err)
	lastClaim, err := pos[2].TryInteger()
	require.NoError(t, err)
	return amount.Int64(), lastClaim.Int64()
}

func farmBudget(t *testing.T, c *neotest.ContractInvoker, farmID int64) int64 {
	stack, err := c.TestInvoke(t, "getFarmInfo", farmID)
	require.NoError(t, err)

	farm := stack.Pop().Array()
	budget, err := farm[7].TryInteger()
	require.NoError(t, err)
	return budget.Int64()
}

func TestFarming_CalculateReward(t *testing.T) {
	s := newRewardsSuite(t)
	c := s.farming

	// per-second emission: amount * rate * elapsed / 10000
	c.Invoke(t, 20_000_000, "calculateReward", 1_000_000, 100, 1000, 3000, farFuture)

	t.Run("clipped at farm end", func(t *testing.T) {
		// accrual stops at endTime 3000 even when queried at 5000
		c.Invoke(t, 20_000_000, "calculateReward", 1_000_000, 100, 1000, 5000, 3000)
	})
	t.Run("zero elapsed", func(t *testing.T) {
		c.Invoke(t, 0, "calculateReward", 1_000_000, 100, 3000, 3000, farFuture)
	})
	t.Run("claim past farm end", func(t *testing.T) {
		// the window [endTime, at] accrues nothing
		c.Invoke(t, 0, "calculateReward", 1_000_000, 100, 3000, 5000, 3000)
	})
}

func TestFarming_CreateFarm(t *testing.T) {
	s := newRewardsSuite(t)
	c := s.farming

	const budget = 1_000_000
	c.Invoke(t, 1, "createFarm", "pair-a", 100, 0, farFuture, 1, 1_000_000_000, budget)
	c.Invoke(t, 1, "farmCount")
	require.EqualValues(t, budget, farmBudget(t, c, 1))

	t.Run("inverted window", func(t *testing.T) {
		c.InvokeFail(t, farming.ErrInvalidWindow, "createFarm", "bad", 100, 3000, 1000, 1, 100, 0)
	})
	t.Run("invalid bounds", func(t *testing.T) {
		c.InvokeFail(t, farming.ErrInvalidBounds, "createFarm", "bad", 100, 0, farFuture, 200, 100, 0)
	})
	t.Run("not an admin", func(t *testing.T) {
		acc := s.executor.NewAccount(t)
		s.executor.NewInvoker(s.farmingHash, acc).InvokeFail(t, common.ErrAdminWitnessFailed,
			"createFarm", "rogue", 100, 0, farFuture, 1, 100, 0)
	})
	t.Run("missing farm", func(t *testing.T) {
		c.InvokeFail(t, farming.ErrFarmNotFound, "getFarmInfo", 42)
	})
}

func TestFarming_DepositWindow(t *testing.T) {
	s := newRewardsSuite(t)
	c := s.farming
	admin := s.executor.CommitteeHash

	// already closed: the window [1, 2] is in the chain's past
	c.Invoke(t, 1, "createFarm", "closed", 100, 1, 2, 1, 1_000_000, 0)
	c.InvokeFail(t, farming.ErrFarmInactive, "depositLP", admin, 1, lowDeposit)

	// not yet open
	c.Invoke(t, 2, "createFarm", "pending", 100, farFuture, farFuture+1, 1, 1_000_000, 0)
	c.InvokeFail(t, farming.ErrFarmInactive, "depositLP", admin, 2, lowDeposit)

	t.Run("open farm accepts deposits", func(t *testing.T) {
		id := createOpenFarm(t, c, lowRate, 0)
		c.Invoke(t, stackitem.Null{}, "depositLP", admin, id, lowDeposit)
		c.Invoke(t, lowDeposit, "totalDepositOf", admin)
	})
}

func TestFarming_DepositAndWithdraw(t *testing.T) {
	s := newRewardsSuite(t)
	c := s.farming
	admin := s.executor.CommitteeHash

	id := createOpenFarm(t, c, lowRate, 0)
	c.Invoke(t, stackitem.Null{}, "depositLP", admin, id, lowDeposit)

	amount, _ := farmPosition(t, c, admin, id)
	require.EqualValues(t, lowDeposit, amount)

	t.Run("one position per farm", func(t *testing.T) {
		c.InvokeFail(t, farming.ErrPositionExists, "depositLP", admin, id, lowDeposit)
	})
	t.Run("deactivated farm rejects deposits", func(t *testing.T) {
		c.Invoke(t, stackitem.Null{}, "updateFarm", id, lowRate, 1, 10_000_000_000_000_000, false)
		acc := s.executor.NewAccount(t)
		s.executor.NewInvoker(s.farmingHash, acc).InvokeFail(t, farming.ErrFarmInactive,
			"depositLP", acc.ScriptHash(), id, lowDeposit)
		c.Invoke(t, stackitem.Null{}, "updateFarm", id, lowRate, 1, 10_000_000_000_000_000, true)
	})

	c.Invoke(t, 0, "claimFarmRewards", admin, id)
	c.Invoke(t, 0, "pendingRewards", admin, id)

	// LP withdrawal is never locked
	c.Invoke(t, stackitem.Null{}, "withdrawLP", admin, id)
	c.Invoke(t, 0, "totalDepositOf", admin)
	c.InvokeFail(t, farming.ErrPositionNotFound, "getUserFarmInfo", admin, id)
}

func TestFarming_BudgetExhaustion(t *testing.T) {
	s := newRewardsSuite(t)
	c := s.farming
	admin := s.executor.CommitteeHash

	// an aggressive emission rate accrues a positive reward after one
	// block while the farm budget stays at zero
	const bigDeposit = 1_000_000_000_000
	c.Invoke(t, 1, "createFarm", "unfunded", 10_000, 0, farFuture, 1, bigDeposit, 0)
	c.Invoke(t, stackitem.Null{}, "depositLP", admin, 1, bigDeposit)

	_, lastClaimBefore := farmPosition(t, c, admin, 1)

	c.InvokeFail(t, farming.ErrInsufficientBudget, "claimFarmRewards", admin, 1)

	_, lastClaimAfter := farmPosition(t, c, admin, 1)
	require.Equal(t, lastClaimBefore, lastClaimAfter)
	require.EqualValues(t, 0, farmBudget(t, c, 1))

	t.Run("funded budget accepts the claim", func(t *testing.T) {
		const budget = 1_000_000_000_000_000
		c.Invoke(t, stackitem.Null{}, "addFarmRewards", 1, budget)

		tx := c.PrepareInvoke(t, "claimFarmRewards", admin, 1)
		s.executor.AddNewBlock(t, tx)
		s.executor.CheckHalt(t, tx.Hash())

		require.Less(t, farmBudget(t, c, 1), int64(budget))
	})
}

func TestFarming_IterateFarms(t *testing.T) {
	s := newRewardsSuite(t)
	c := s.farming

	c.Invoke(t, 1, "createFarm", "pair-a", 100, 0, farFuture, 1, 1_000_000, 0)
	c.Invoke(t, 2, "createFarm", "pair-b", 200, 0, farFuture, 1, 1_000_000, 0)

	stack, err := c.TestInvoke(t, "iterateFarms")
	require.NoError(t, err)

	// the iterator yields exactly the farm records, singleton keys such
	// as the farm counter must not leak in
	farms := iteratorToArray(stack.Pop().Value().(*storage.Iterator))
	require.Len(t, farms, 2)

	for i, item := range farms {
		pair := item.Value().([]stackitem.Item)
		require.Len(t, pair, 2)

		id, err := pair[0].TryBytes()
		require.NoError(t, err)
		require.Equal(t, []byte{byte(i + 1)}, id)

		fields := pair[1].Value().([]stackitem.Item)
		name, err := fields[0].TryBytes()
		require.NoError(t, err)
		require.Equal(t, []string{"pair-a", "pair-b"}[i], string(name))
	}
}

func TestFarming_ReputationBonus(t *testing.T) {
	s := newRewardsSuite(t)
	c := s.farming
	admin := s.executor.CommitteeHash

	// credential 1000 weighted 3000/10000 totals 300 and earns a 600
	// basis-point bonus
	s.credOracle.Invoke(t, stackitem.Null{}, "setScore", admin, 1000)
	s.reputation.Invoke(t, stackitem.Null{}, "recomputeReputation", admin)
	s.reputation.Invoke(t, 10_600, "multiplierOf", admin)

	// the base reward is exactly 10 units per elapsed second, and the
	// deposit is too small to move the staking component
	const amount = 100_000
	c.Invoke(t, 1, "createFarm", "boosted", 1, 0, farFuture, 1, amount, 1_000_000_000)
	c.Invoke(t, stackitem.Null{}, "depositLP", admin, 1, amount)

	s.reputation.Invoke(t, 10_600, "multiplierOf", admin)

	_, lastBefore := farmPosition(t, c, admin, 1)

	tx := c.PrepareInvoke(t, "claimFarmRewards", admin, 1)
	s.executor.AddNewBlock(t, tx)
	aer := s.executor.CheckHalt(t, tx.Hash())
	payout, err := aer.Stack[0].TryInteger()
	require.NoError(t, err)

	_, lastAfter := farmPosition(t, c, admin, 1)
	elapsed := lastAfter - lastBefore
	require.Positive(t, elapsed)

	// the bonus is added on top of the base rather than scaling it
	base := 10 * elapsed
	require.EqualValues(t, base+base*600/10_000, payout.Int64())
	require.Greater(t, payout.Int64(), base)
}

func TestFarming_EmergencyWithdraw(t *testing.T) {
	s := newRewardsSuite(t)
	c := s.farming
	admin := s.executor.CommitteeHash

	id := createOpenFarm(t, c, lowRate, 0)
	c.Invoke(t, stackitem.Null{}, "depositLP", admin, id, lowDeposit)

	c.Invoke(t, stackitem.Null{}, "setPaused", true)
	c.InvokeFail(t, common.ErrPaused, "withdrawLP", admin, id)

	// emergency withdrawal works while paused and forfeits rewards
	c.Invoke(t, stackitem.Null{}, "emergencyWithdraw", admin, id)
	c.Invoke(t, stackitem.Null{}, "setPaused", false)

	c.Invoke(t, 0, "totalDepositOf", admin)
	c.InvokeFail(t, farming.ErrPositionNotFound, "getUserFarmInfo", admin, id)
}

func TestFarming_Version(t *testing.T) {
	s := newRewardsSuite(t)
	s.farming.Invoke(t, common.Version, "version")
}

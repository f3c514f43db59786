package tests

import (
	"testing"

	"github.com/Nexsosphere-Technologies/rewards-contract/common"
	"github.com/Nexsosphere-Technologies/rewards-contract/contracts/staking"
	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const (
	// yearSeconds matches the accrual denominator of the staking contract.
	yearSeconds = 31_536_000

	// lowYieldRate and lowYieldAmount accrue a zero integer reward for any
	// realistic test duration, which keeps claim payouts deterministic.
	lowYieldRate   = 100
	lowYieldAmount = 1000
)

func createLowYieldPool(t *testing.T, c *neotest.ContractInvoker) int64 {
	stack, err := c.TestInvoke(t, "poolCount")
	require.NoError(t, err)
	id := stack.Pop().BigInt().Int64() + 1

	c.Invoke(t, id, "createPool", "low", 0, lowYieldRate, 1, 1_000_000_000)
	return id
}

func stakePosition(t *testing.T, c *neotest.ContractInvoker, account util.Uint160, poolID int64) (int64, int64) {
	stack, err := c.TestInvoke(t, "getUserStakeInfo", account, poolID)
	require.NoError(t, err)

	pos := stack.Pop().Array()
	amount, err := pos[0].TryInteger()
	require.NoError(t, err)
	lastClaim, err := pos[2].TryInteger()
	require.NoError(t, err)
	return amount.Int64(), lastClaim.Int64()
}

func poolBudget(t *testing.T, c *neotest.ContractInvoker, poolID int64) int64 {
	stack, err := c.TestInvoke(t, "getPoolInfo", poolID)
	require.NoError(t, err)

	pool := stack.Pop().Array()
	budget, err := pool[6].TryInteger()
	require.NoError(t, err)
	return budget.Int64()
}

func TestStaking_CalculateReward(t *testing.T) {
	s := newRewardsSuite(t)
	c := s.staking

	// 100 tokens (8 decimals) at 10% APY over exactly one year yield
	// exactly 10 tokens.
	c.Invoke(t, 10_000000, "calculateReward", 100_000000, 1000, 0, yearSeconds)

	t.Run("zero elapsed", func(t *testing.T) {
		c.Invoke(t, 0, "calculateReward", 100_000000, 1000, yearSeconds, yearSeconds)
	})
	t.Run("negative elapsed", func(t *testing.T) {
		c.Invoke(t, 0, "calculateReward", 100_000000, 1000, yearSeconds, yearSeconds-1)
	})
	t.Run("proportional to time", func(t *testing.T) {
		c.Invoke(t, 5_000000, "calculateReward", 100_000000, 1000, 0, yearSeconds/2)
	})
	t.Run("truncates toward zero", func(t *testing.T) {
		// 1000 units at 1% for one second is far below one integer unit.
		c.Invoke(t, 0, "calculateReward", 1000, 100, 0, 1)
	})
}

func TestStaking_CreatePool(t *testing.T) {
	s := newRewardsSuite(t)
	c := s.staking

	c.Invoke(t, 1, "createPool", "flexible", 0, 500, 100, 1_000_000)
	c.Invoke(t, 2, "createPool", "locked", 3600, 1500, 100, 1_000_000)
	c.Invoke(t, 2, "poolCount")

	t.Run("not an admin", func(t *testing.T) {
		acc := s.executor.NewAccount(t)
		s.executor.NewInvoker(s.stakingHash, acc).InvokeFail(t, common.ErrAdminWitnessFailed,
			"createPool", "rogue", 0, 500, 100, 1_000_000)
	})
	t.Run("invalid bounds", func(t *testing.T) {
		c.InvokeFail(t, staking.ErrInvalidBounds, "createPool", "bad", 0, 500, 1_000_000, 100)
	})
	t.Run("invalid rate", func(t *testing.T) {
		c.InvokeFail(t, staking.ErrInvalidInput, "createPool", "bad", 0, 0, 100, 1_000_000)
	})
	t.Run("missing pool", func(t *testing.T) {
		c.InvokeFail(t, staking.ErrPoolNotFound, "getPoolInfo", 42)
	})
}

func TestStaking_Stake(t *testing.T) {
	s := newRewardsSuite(t)
	c := s.staking
	admin := s.executor.CommitteeHash

	id := createLowYieldPool(t, c)

	c.Invoke(t, stackitem.Null{}, "stake", admin, id, lowYieldAmount)
	c.Invoke(t, lowYieldAmount, "totalStakeOf", admin)

	amount, _ := stakePosition(t, c, admin, id)
	require.EqualValues(t, lowYieldAmount, amount)

	t.Run("one position per pool", func(t *testing.T) {
		c.InvokeFail(t, staking.ErrPositionExists, "stake", admin, id, lowYieldAmount)
	})
	t.Run("missing pool", func(t *testing.T) {
		c.InvokeFail(t, staking.ErrPoolNotFound, "stake", admin, id+100, lowYieldAmount)
	})
	t.Run("amount out of bounds", func(t *testing.T) {
		c.Invoke(t, 2, "createPool", "narrow", 0, lowYieldRate, 100, 200)
		c.InvokeFail(t, staking.ErrAmountBounds, "stake", admin, 2, 201)
	})
	t.Run("inactive pool", func(t *testing.T) {
		c.Invoke(t, stackitem.Null{}, "updatePool", 2, lowYieldRate, 100, 200, false)
		c.InvokeFail(t, staking.ErrPoolInactive, "stake", admin, 2, 100)
	})
	t.Run("not the owner", func(t *testing.T) {
		acc := s.executor.NewAccount(t)
		c.InvokeFail(t, common.ErrOwnerWitnessFailed, "stake", acc.ScriptHash(), id, lowYieldAmount)
	})
}

func TestStaking_ClaimAndUnstake(t *testing.T) {
	s := newRewardsSuite(t)
	c := s.staking
	admin := s.executor.CommitteeHash

	id := createLowYieldPool(t, c)
	c.Invoke(t, stackitem.Null{}, "stake", admin, id, lowYieldAmount)

	// the low-yield position accrues a zero integer reward within the
	// test, so the claim result is exact
	c.Invoke(t, 0, "claimRewards", admin, id)
	c.Invoke(t, 0, "pendingRewards", admin, id)

	c.Invoke(t, stackitem.Null{}, "unstake", admin, id)
	c.Invoke(t, 0, "totalStakeOf", admin)
	c.InvokeFail(t, staking.ErrPositionNotFound, "getUserStakeInfo", admin, id)

	t.Run("claim without position", func(t *testing.T) {
		c.InvokeFail(t, staking.ErrPositionNotFound, "claimRewards", admin, id)
	})
	t.Run("unstake without position", func(t *testing.T) {
		c.InvokeFail(t, staking.ErrPositionNotFound, "unstake", admin, id)
	})
}

func TestStaking_BudgetExhaustion(t *testing.T) {
	s := newRewardsSuite(t)
	c := s.staking
	admin := s.executor.CommitteeHash

	// maximum rate and a huge stake make the accrued reward positive
	// after a single block, while the pool budget stays at zero
	const bigStake = 1_000_000_000_000_000
	c.Invoke(t, 1, "createPool", "unfunded", 0, 10_000, 1, bigStake)
	c.Invoke(t, stackitem.Null{}, "stake", admin, 1, bigStake)

	_, lastClaimBefore := stakePosition(t, c, admin, 1)

	c.InvokeFail(t, staking.ErrInsufficientBudget, "claimRewards", admin, 1)

	// the failed claim must leave the position and the budget untouched
	_, lastClaimAfter := stakePosition(t, c, admin, 1)
	require.Equal(t, lastClaimBefore, lastClaimAfter)
	require.EqualValues(t, 0, poolBudget(t, c, 1))

	t.Run("funded budget accepts the claim", func(t *testing.T) {
		const budget = 10_000_000_000
		c.Invoke(t, stackitem.Null{}, "addPoolRewards", 1, budget)
		require.EqualValues(t, budget, poolBudget(t, c, 1))

		tx := c.PrepareInvoke(t, "claimRewards", admin, 1)
		s.executor.AddNewBlock(t, tx)
		s.executor.CheckHalt(t, tx.Hash())

		require.Less(t, poolBudget(t, c, 1), int64(budget))
	})
}

func TestStaking_LockPeriod(t *testing.T) {
	s := newRewardsSuite(t)
	c := s.staking
	admin := s.executor.CommitteeHash

	const lock = 1_000_000 // far beyond the test duration
	c.Invoke(t, 1, "createPool", "locked", lock, lowYieldRate, 1, 1_000_000_000)
	c.Invoke(t, stackitem.Null{}, "stake", admin, 1, lowYieldAmount)

	c.InvokeFail(t, staking.ErrStillLocked, "unstake", admin, 1)

	// rewards stay claimable while the principal is locked
	c.Invoke(t, 0, "claimRewards", admin, 1)

	t.Run("emergency withdrawal bypasses the lock", func(t *testing.T) {
		c.Invoke(t, stackitem.Null{}, "setPaused", true)
		c.Invoke(t, true, "isPaused")
		c.InvokeFail(t, common.ErrPaused, "claimRewards", admin, 1)

		c.Invoke(t, stackitem.Null{}, "emergencyWithdraw", admin, 1)
		c.Invoke(t, stackitem.Null{}, "setPaused", false)

		c.Invoke(t, 0, "totalStakeOf", admin)
		c.InvokeFail(t, staking.ErrPositionNotFound, "getUserStakeInfo", admin, 1)
	})
}

func TestStaking_IteratePools(t *testing.T) {
	s := newRewardsSuite(t)
	c := s.staking

	c.Invoke(t, 1, "createPool", "first", 0, 500, 100, 1_000_000)
	c.Invoke(t, 2, "createPool", "second", 3600, 1500, 100, 1_000_000)

	stack, err := c.TestInvoke(t, "iteratePools")
	require.NoError(t, err)

	// the iterator yields exactly the pool records, singleton keys such
	// as the pool counter must not leak in
	pools := iteratorToArray(stack.Pop().Value().(*storage.Iterator))
	require.Len(t, pools, 2)

	for i, item := range pools {
		pair := item.Value().([]stackitem.Item)
		require.Len(t, pair, 2)

		id, err := pair[0].TryBytes()
		require.NoError(t, err)
		require.Equal(t, []byte{byte(i + 1)}, id)

		fields := pair[1].Value().([]stackitem.Item)
		name, err := fields[0].TryBytes()
		require.NoError(t, err)
		require.Equal(t, []string{"first", "second"}[i], string(name))
	}
}

func TestStaking_ReputationBonus(t *testing.T) {
	s := newRewardsSuite(t)
	c := s.staking
	admin := s.executor.CommitteeHash

	// credential 1000 weighted 3000/10000 totals 300 and earns a 600
	// basis-point bonus
	s.credOracle.Invoke(t, stackitem.Null{}, "setScore", admin, 1000)
	s.reputation.Invoke(t, stackitem.Null{}, "recomputeReputation", admin)
	s.reputation.Invoke(t, 10_600, "multiplierOf", admin)

	// amount and rate cancel the accrual denominator: the base reward is
	// exactly 10 units per elapsed second
	const amount = 315_360_000
	c.Invoke(t, 1, "createPool", "boosted", 0, 10_000, 1, amount)
	c.Invoke(t, stackitem.Null{}, "stake", admin, 1, amount)
	c.Invoke(t, stackitem.Null{}, "addPoolRewards", 1, 1_000_000_000)

	// the deposit itself lifts the staking component: 315 points weighted
	// 2000/10000 raise the total to 363
	s.reputation.Invoke(t, 10_726, "multiplierOf", admin)

	_, lastBefore := stakePosition(t, c, admin, 1)

	tx := c.PrepareInvoke(t, "claimRewards", admin, 1)
	s.executor.AddNewBlock(t, tx)
	aer := s.executor.CheckHalt(t, tx.Hash())
	payout, err := aer.Stack[0].TryInteger()
	require.NoError(t, err)

	_, lastAfter := stakePosition(t, c, admin, 1)
	elapsed := lastAfter - lastBefore
	require.Positive(t, elapsed)

	// the payout scales the whole base by the multiplier
	base := 10 * elapsed
	require.EqualValues(t, base*10_726/10_000, payout.Int64())
	require.Greater(t, payout.Int64(), base)
}

func TestStaking_Pause(t *testing.T) {
	s := newRewardsSuite(t)
	c := s.staking
	admin := s.executor.CommitteeHash

	c.Invoke(t, false, "isPaused")
	c.Invoke(t, stackitem.Null{}, "setPaused", true)

	c.InvokeFail(t, common.ErrPaused, "createPool", "p", 0, 500, 1, 100)
	c.InvokeFail(t, common.ErrPaused, "stake", admin, 1, 100)

	c.Invoke(t, stackitem.Null{}, "setPaused", false)
	c.Invoke(t, 1, "createPool", "p", 0, 500, 1, 100)

	t.Run("not an admin", func(t *testing.T) {
		acc := s.executor.NewAccount(t)
		s.executor.NewInvoker(s.stakingHash, acc).InvokeFail(t, common.ErrAdminWitnessFailed,
			"setPaused", true)
	})
}

func TestStaking_Version(t *testing.T) {
	s := newRewardsSuite(t)
	s.staking.Invoke(t, common.Version, "version")
}

package tests

import (
	"testing"

	"github.com/Nexsosphere-Technologies/rewards-contract/common"
	"github.com/Nexsosphere-Technologies/rewards-contract/contracts/reputation"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func reputationRecord(t *testing.T, c *neotest.ContractInvoker, account util.Uint160) []int64 {
	stack, err := c.TestInvoke(t, "getUserReputation", account)
	require.NoError(t, err)

	items := stack.Pop().Array()
	record := make([]int64, len(items))
	for i := range items {
		v, err := items[i].TryInteger()
		require.NoError(t, err)
		record[i] = v.Int64()
	}
	return record
}

func reputationTotal(t *testing.T, c *neotest.ContractInvoker, account util.Uint160) int64 {
	return reputationRecord(t, c, account)[5]
}

// attest issues an attestation signed by the attester and returns its id.
func attest(t *testing.T, s *rewardsSuite, attester neotest.Signer, subject util.Uint160, weight int64) []byte {
	inv := s.executor.NewInvoker(s.reputationHash, attester)

	tx := inv.PrepareInvoke(t, "attest", attester.ScriptHash(), subject, weight, []byte("review"))
	s.executor.AddNewBlock(t, tx)
	aer := s.executor.CheckHalt(t, tx.Hash())

	id, err := aer.Stack[0].TryBytes()
	require.NoError(t, err)
	require.Len(t, id, 32)
	return id
}

func TestReputation_Recompute(t *testing.T) {
	s := newRewardsSuite(t)
	c := s.reputation
	admin := s.executor.CommitteeHash

	t.Run("record is created on first touch", func(t *testing.T) {
		c.InvokeFail(t, reputation.ErrRecordNotFound, "getUserReputation", admin)

		c.Invoke(t, stackitem.Null{}, "recomputeReputation", admin)

		record := reputationRecord(t, c, admin)
		require.EqualValues(t, 0, record[5]) // total
		require.NotZero(t, record[7])        // first activity
	})

	t.Run("idempotent at one timestamp", func(t *testing.T) {
		tx1 := c.PrepareInvoke(t, "recomputeReputation", admin)
		tx2 := c.PrepareInvoke(t, "recomputeReputation", admin)
		s.executor.AddNewBlock(t, tx1, tx2)
		s.executor.CheckHalt(t, tx1.Hash(), stackitem.Null{})
		s.executor.CheckHalt(t, tx2.Hash(), stackitem.Null{})
	})
}

func TestReputation_Attest(t *testing.T) {
	s := newRewardsSuite(t)
	c := s.reputation
	attester := s.executor.NewAccount(t)
	subject := s.executor.NewAccount(t).ScriptHash()

	id := attest(t, s, attester, subject, 80)

	// a zero-reputation attester contributes 80*(0+10)/110 = 7 to the
	// attestation score, weighted 2500/10000 into the total
	record := reputationRecord(t, c, subject)
	require.EqualValues(t, 7, record[1])
	require.EqualValues(t, 1, record[5])

	c.Invoke(t, 10_002, "multiplierOf", subject)
	c.Invoke(t, 1, "attestationsGivenBy", attester.ScriptHash())

	t.Run("stored attestation", func(t *testing.T) {
		stack, err := c.TestInvoke(t, "getAttestation", id)
		require.NoError(t, err)

		att := stack.Pop().Array()
		attesterBytes, err := att[0].TryBytes()
		require.NoError(t, err)
		require.Equal(t, attester.ScriptHash().BytesBE(), attesterBytes)

		revoked, err := att[5].TryBool()
		require.NoError(t, err)
		require.False(t, revoked)
	})

	t.Run("self-attestation", func(t *testing.T) {
		inv := s.executor.NewInvoker(s.reputationHash, attester)
		inv.InvokeFail(t, reputation.ErrSelfAttestation, "attest",
			attester.ScriptHash(), attester.ScriptHash(), 50, []byte{})
	})
	t.Run("weight out of range", func(t *testing.T) {
		inv := s.executor.NewInvoker(s.reputationHash, attester)
		inv.InvokeFail(t, reputation.ErrInvalidWeight, "attest", attester.ScriptHash(), subject, 0, []byte{})
		inv.InvokeFail(t, reputation.ErrInvalidWeight, "attest", attester.ScriptHash(), subject, 101, []byte{})
	})
	t.Run("not the attester", func(t *testing.T) {
		c.InvokeFail(t, common.ErrOwnerWitnessFailed, "attest",
			attester.ScriptHash(), subject, 50, []byte{})
	})
}

func TestReputation_Revoke(t *testing.T) {
	s := newRewardsSuite(t)
	c := s.reputation
	attester := s.executor.NewAccount(t)
	subject := s.executor.NewAccount(t).ScriptHash()

	id := attest(t, s, attester, subject, 80)
	require.EqualValues(t, 1, reputationTotal(t, c, subject))

	t.Run("stranger cannot revoke", func(t *testing.T) {
		stranger := s.executor.NewAccount(t)
		s.executor.NewInvoker(s.reputationHash, stranger).InvokeFail(t,
			reputation.ErrRevokeForbidden, "revoke", id)
	})

	s.executor.NewInvoker(s.reputationHash, attester).Invoke(t, stackitem.Null{}, "revoke", id)

	// the revoked attestation no longer contributes, but stays readable
	require.EqualValues(t, 0, reputationTotal(t, c, subject))
	stack, err := c.TestInvoke(t, "getAttestation", id)
	require.NoError(t, err)
	revoked, err := stack.Pop().Array()[5].TryBool()
	require.NoError(t, err)
	require.True(t, revoked)

	// cumulative participation is not rolled back
	c.Invoke(t, 1, "attestationsGivenBy", attester.ScriptHash())

	t.Run("revocation is one-way", func(t *testing.T) {
		s.executor.NewInvoker(s.reputationHash, attester).InvokeFail(t,
			reputation.ErrAlreadyRevoked, "revoke", id)
	})
	t.Run("missing attestation", func(t *testing.T) {
		c.InvokeFail(t, reputation.ErrAttestationNotFound, "revoke", randomBytes(32))
	})
}

func TestReputation_CredentialScore(t *testing.T) {
	s := newRewardsSuite(t)
	c := s.reputation
	subject := s.executor.NewAccount(t).ScriptHash()

	s.credOracle.Invoke(t, stackitem.Null{}, "setScore", subject, 500)
	c.Invoke(t, stackitem.Null{}, "recomputeReputation", subject)

	// 500 * 3000 / 10000
	record := reputationRecord(t, c, subject)
	require.EqualValues(t, 500, record[0])
	require.EqualValues(t, 150, record[5])

	t.Run("oracle scores are clamped", func(t *testing.T) {
		s.credOracle.Invoke(t, stackitem.Null{}, "setScore", subject, 5000)
		c.Invoke(t, stackitem.Null{}, "recomputeReputation", subject)
		require.EqualValues(t, 1000, reputationRecord(t, c, subject)[0])
	})
}

func TestReputation_Weights(t *testing.T) {
	s := newRewardsSuite(t)
	c := s.reputation

	expected := stackitem.NewArray([]stackitem.Item{
		stackitem.Make(3000), stackitem.Make(2500), stackitem.Make(2000),
		stackitem.Make(1500), stackitem.Make(1000),
	})
	c.Invoke(t, expected, "getWeights")

	t.Run("sum below 10000", func(t *testing.T) {
		c.InvokeFail(t, reputation.ErrWeightSum, "updateWeights", 3000, 2500, 2000, 1500, 999)
	})
	t.Run("sum above 10000", func(t *testing.T) {
		c.InvokeFail(t, reputation.ErrWeightSum, "updateWeights", 3000, 2500, 2000, 1500, 1001)
	})
	t.Run("negative weight", func(t *testing.T) {
		c.InvokeFail(t, reputation.ErrInvalidInput, "updateWeights", 11000, 2500, 2000, 1500, -7000)
	})

	c.Invoke(t, stackitem.Null{}, "updateWeights", 2000, 2000, 2000, 2000, 2000)
	expected = stackitem.NewArray([]stackitem.Item{
		stackitem.Make(2000), stackitem.Make(2000), stackitem.Make(2000),
		stackitem.Make(2000), stackitem.Make(2000),
	})
	c.Invoke(t, expected, "getWeights")

	t.Run("not an admin", func(t *testing.T) {
		acc := s.executor.NewAccount(t)
		s.executor.NewInvoker(s.reputationHash, acc).InvokeFail(t, common.ErrAdminWitnessFailed,
			"updateWeights", 2000, 2000, 2000, 2000, 2000)
	})
}

func TestReputation_DecayRate(t *testing.T) {
	s := newRewardsSuite(t)
	c := s.reputation

	c.Invoke(t, reputation.DefaultDecayRateBp, "decayRate")
	c.Invoke(t, stackitem.Null{}, "setDecayRate", 50)
	c.Invoke(t, 50, "decayRate")

	c.InvokeFail(t, reputation.ErrInvalidInput, "setDecayRate", -1)
	c.InvokeFail(t, reputation.ErrInvalidInput, "setDecayRate", 10_000)
}

func TestReputation_Badges(t *testing.T) {
	s := newRewardsSuite(t)
	c := s.reputation
	subject := s.executor.NewAccount(t).ScriptHash()

	c.Invoke(t, 1, "createBadge", "contributor", "scored 100 points", 100)
	c.Invoke(t, 1, "badgeCount")

	// push the subject's score over the requirement through the oracle:
	// credential 1000 weighted 3000/10000 totals 300
	s.credOracle.Invoke(t, stackitem.Null{}, "setScore", subject, 1000)
	c.Invoke(t, stackitem.Null{}, "recomputeReputation", subject)
	require.EqualValues(t, 300, reputationTotal(t, c, subject))

	earned := stackitem.NewArray([]stackitem.Item{stackitem.Make(1)})
	c.Invoke(t, earned, "getUserBadges", subject)

	t.Run("sweep never double-awards", func(t *testing.T) {
		c.Invoke(t, stackitem.Null{}, "recomputeReputation", subject)
		c.Invoke(t, earned, "getUserBadges", subject)
	})

	t.Run("manual award", func(t *testing.T) {
		c.Invoke(t, 2, "createBadge", "founder", "hand-picked", 1000)
		c.Invoke(t, stackitem.Null{}, "awardBadge", subject, 2)
		// a second award is a no-op
		c.Invoke(t, stackitem.Null{}, "awardBadge", subject, 2)

		both := stackitem.NewArray([]stackitem.Item{stackitem.Make(1), stackitem.Make(2)})
		c.Invoke(t, both, "getUserBadges", subject)
	})

	t.Run("inactive badge is not swept", func(t *testing.T) {
		fresh := s.executor.NewAccount(t).ScriptHash()
		c.Invoke(t, 3, "createBadge", "retired", "no longer awarded", 0)
		c.Invoke(t, stackitem.Null{}, "updateBadge", 3, 0, false)

		s.credOracle.Invoke(t, stackitem.Null{}, "setScore", fresh, 1000)
		c.Invoke(t, stackitem.Null{}, "recomputeReputation", fresh)

		// only badge 1 is active with a met requirement
		earned := stackitem.NewArray([]stackitem.Item{stackitem.Make(1)})
		c.Invoke(t, earned, "getUserBadges", fresh)
	})

	t.Run("missing badge", func(t *testing.T) {
		c.InvokeFail(t, reputation.ErrBadgeNotFound, "getBadge", 42)
		c.InvokeFail(t, reputation.ErrBadgeNotFound, "awardBadge", subject, 42)
	})
	t.Run("invalid requirement", func(t *testing.T) {
		c.InvokeFail(t, reputation.ErrInvalidInput, "createBadge", "bad", "", 1001)
	})
}

func TestReputation_ActivityFromSuiteContracts(t *testing.T) {
	s := newRewardsSuite(t)
	c := s.reputation
	admin := s.executor.CommitteeHash

	t.Run("direct call is rejected", func(t *testing.T) {
		c.InvokeFail(t, reputation.ErrSuiteCallerOnly, "recordActivity", admin)
	})

	// a stake deposit opens the reputation record through the staking
	// contract
	s.staking.Invoke(t, 1, "createPool", "entry", 0, 100, 1, 1_000_000)
	s.staking.Invoke(t, stackitem.Null{}, "stake", admin, 1, 1000)

	record := reputationRecord(t, c, admin)
	require.NotZero(t, record[7]) // first activity is set
}

func TestReputation_MultiplierOf(t *testing.T) {
	s := newRewardsSuite(t)
	c := s.reputation

	t.Run("neutral for unknown accounts", func(t *testing.T) {
		c.Invoke(t, 10_000, "multiplierOf", util.Uint160{1, 2, 3})
	})

	subject := s.executor.NewAccount(t).ScriptHash()
	s.credOracle.Invoke(t, stackitem.Null{}, "setScore", subject, 1000)
	c.Invoke(t, stackitem.Null{}, "recomputeReputation", subject)

	// total 300 of 1000 earns 600 of the 2000 basis-point bonus cap
	c.Invoke(t, 10_600, "multiplierOf", subject)
}

func TestReputation_Pause(t *testing.T) {
	s := newRewardsSuite(t)
	c := s.reputation
	admin := s.executor.CommitteeHash

	c.Invoke(t, stackitem.Null{}, "setPaused", true)
	c.Invoke(t, true, "isPaused")

	c.InvokeFail(t, common.ErrPaused, "recomputeReputation", admin)
	c.InvokeFail(t, common.ErrPaused, "attest", admin, util.Uint160{1}, 50, []byte{})
	c.InvokeFail(t, common.ErrPaused, "createBadge", "b", "", 0)

	// reads stay available while paused
	c.Invoke(t, 10_000, "multiplierOf", admin)

	c.Invoke(t, stackitem.Null{}, "setPaused", false)
	c.Invoke(t, stackitem.Null{}, "recomputeReputation", admin)
}

func TestReputation_Version(t *testing.T) {
	s := newRewardsSuite(t)
	s.reputation.Invoke(t, common.Version, "version")
}

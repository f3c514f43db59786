package reputation

import (
	"github.com/Nexsosphere-Technologies/rewards-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

type (
	// Record keeps the reputation state of one account. Component scores
	// are bounded to [0, MaxScore] independently, TotalScore is their
	// weighted aggregation. Records are created on first activity and
	// never deleted.
	Record struct {
		CredentialScore    int
		AttestationScore   int
		StakingScore       int
		ParticipationScore int
		TimeScore          int
		TotalScore         int
		LastUpdate         int
		FirstActivity      int
	}

	// Attestation is a peer-issued weighted endorsement. Attestations are
	// never physically deleted; revocation is one-way and keeps the
	// record for audit.
	Attestation struct {
		Attester  interop.Hash160
		Subject   interop.Hash160
		Weight    int
		Timestamp int
		Metadata  []byte
		Revoked   bool
	}

	// Badge is an award tier granted automatically when an account's
	// total score reaches Requirement.
	Badge struct {
		Name        string
		Description string
		Requirement int
		Active      bool
	}

	// Weights holds the aggregation weights of the five score components
	// in basis points. The five values always sum to exactly common.Bps.
	Weights struct {
		Credential    int
		Attestation   int
		Staking       int
		Participation int
		Time          int
	}
)

const (
	// MaxScore bounds every component score and the total score.
	MaxScore = 1000
	// MaxBonusBp is the reward bonus in basis points granted at MaxScore;
	// the bonus scales linearly with the total score below that.
	MaxBonusBp = 2000

	// DefaultDecayRateBp is the default daily score decay in basis points.
	DefaultDecayRateBp = 10

	// secondsPerDay is the decay and tenure accounting unit.
	secondsPerDay = 86_400
	// tenureScoreDays is the number of tenure days worth one time-score
	// point.
	tenureScoreDays = 30
	// stakeScoreUnit is the amount of staked tokens worth one
	// staking-score point.
	stakeScoreUnit = 1_000_000
	// attesterSmoothing and attesterDivisor shape the attester-reputation
	// weighting of attestations, (rep + 10) / 110: a zero-reputation
	// attester still contributes instead of starving the signal.
	attesterSmoothing = 10
	attesterDivisor   = 110
)

const (
	// ErrRecordNotFound is thrown when the account has no reputation
	// record yet.
	ErrRecordNotFound = "reputation record not found"
	// ErrSelfAttestation is thrown when attester and subject coincide.
	ErrSelfAttestation = "self-attestation is not allowed"
	// ErrInvalidWeight is thrown when the attestation weight is outside
	// [1, 100].
	ErrInvalidWeight = "attestation weight out of range"
	// ErrAttestationExists is thrown on attestation id collision.
	ErrAttestationExists = "attestation already exists"
	// ErrAttestationNotFound is thrown when the attestation id is absent.
	ErrAttestationNotFound = "attestation not found"
	// ErrAlreadyRevoked is thrown on revocation of a revoked attestation.
	// Revocation is one-way and permanent.
	ErrAlreadyRevoked = "attestation already revoked"
	// ErrRevokeForbidden is thrown when the revocation transaction is
	// witnessed neither by the attester, nor the subject, nor the
	// administrator.
	ErrRevokeForbidden = "revocation not permitted"
	// ErrWeightSum is thrown when updated aggregation weights do not sum
	// to exactly 10000.
	ErrWeightSum = "weights must sum to 10000"
	// ErrBadgeNotFound is thrown when the badge id is absent.
	ErrBadgeNotFound = "badge not found"
	// ErrSuiteCallerOnly is thrown when recordActivity is invoked by
	// anything but the staking or farming contract of the suite.
	ErrSuiteCallerOnly = "caller is not a suite contract"
	// ErrInvalidInput is thrown on malformed arguments.
	ErrInvalidInput = "invalid input"
)

const (
	recordPrefix       = 'r'
	attestationPrefix  = 'a'
	subjectIndexPrefix = 'i'
	givenCountPrefix   = 'g'
	badgePrefix        = 'b'
	userBadgePrefix    = 'u'

	// badgeCountKey must not start with any of the single-byte prefixes
	// above, the attestation index and user badges are scanned by prefix.
	badgeCountKey   = "countBadges"
	weightsKey      = "weights"
	decayRateKey    = "decayRate"
	credContractKey = "credentialContract"
	stakingKey      = "stakingContract"
	farmingKey      = "farmingContract"
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()

	if isUpdate {
		args := data.([]any)
		version := args[len(args)-1].(int)

		common.CheckVersion(version)
		return
	}

	args := data.(struct {
		admin      interop.Hash160
		credential interop.Hash160
		staking    interop.Hash160
		farming    interop.Hash160
	})

	if len(args.credential) != interop.Hash160Len {
		panic("invalid credential contract")
	}
	if len(args.staking) != interop.Hash160Len {
		panic("invalid staking contract")
	}
	if len(args.farming) != interop.Hash160Len {
		panic("invalid farming contract")
	}

	common.SetAdmin(ctx, args.admin)
	storage.Put(ctx, credContractKey, args.credential)
	storage.Put(ctx, stakingKey, args.staking)
	storage.Put(ctx, farmingKey, args.farming)
	storage.Put(ctx, badgeCountKey, 0)
	storage.Put(ctx, decayRateKey, DefaultDecayRateBp)
	common.SetSerialized(ctx, weightsKey, Weights{
		Credential:    3000,
		Attestation:   2500,
		Staking:       2000,
		Participation: 1500,
		Time:          1000,
	})

	runtime.Log("reputation contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the suite administrator.
func Update(script []byte, manifest []byte, data any) {
	ctx := storage.GetContext()
	common.CheckAdminWitness(ctx)

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("reputation contract updated")
}

// RecordActivity registers account activity coming from the staking or
// farming contract and refreshes the account's scores. It can be invoked
// only by the suite contracts; deposits call it so that tenure accounting
// starts at the first deposit even for accounts that never attested.
func RecordActivity(account interop.Hash160) {
	ctx := storage.GetContext()

	common.CheckNotPaused(ctx)

	caller := runtime.GetCallingScriptHash()
	staking := storage.Get(ctx, stakingKey).(interop.Hash160)
	farming := storage.Get(ctx, farmingKey).(interop.Hash160)
	if !caller.Equals(staking) && !caller.Equals(farming) {
		panic(ErrSuiteCallerOnly)
	}

	recompute(ctx, account)
}

// RecomputeReputation refreshes the account's reputation record: applies
// score decay for whole elapsed days, recomputes the five component scores,
// aggregates them with the configured weights and sweeps badge awards. It
// never fails on a valid account and is a safe no-op when nothing changed,
// so it can be called by anyone at any frequency. The record is created on
// first touch.
func RecomputeReputation(account interop.Hash160) {
	ctx := storage.GetContext()

	common.CheckNotPaused(ctx)

	if len(account) != interop.Hash160Len {
		panic(ErrInvalidInput)
	}

	recompute(ctx, account)
}

// Attest issues a weighted endorsement of the subject by the attester. Call
// transaction MUST be signed by the attester. Weight is bounded to
// [1, 100]; self-attestation is rejected. The attestation id is the SHA-256
// hash of attester, subject and the ledger timestamp, an id collision is
// rejected rather than overwritten. The subject's reputation is recomputed
// in the same transaction.
func Attest(attester, subject interop.Hash160, weight int, metadata []byte) interop.Hash256 {
	ctx := storage.GetContext()

	common.CheckNotPaused(ctx)
	common.CheckOwnerWitness(attester)

	if len(attester) != interop.Hash160Len || len(subject) != interop.Hash160Len {
		panic(ErrInvalidInput)
	}
	if attester.Equals(subject) {
		panic(ErrSelfAttestation)
	}
	if weight < 1 || weight > 100 {
		panic(ErrInvalidWeight)
	}

	t := now()
	id := attestationID(attester, subject, t)

	key := attestationKey(id)
	if storage.Get(ctx, key) != nil {
		panic(ErrAttestationExists)
	}

	common.SetSerialized(ctx, key, Attestation{
		Attester:  attester,
		Subject:   subject,
		Weight:    weight,
		Timestamp: t,
		Metadata:  metadata,
		Revoked:   false,
	})
	storage.Put(ctx, subjectIndexKey(subject, id), id)

	givenKey := append([]byte{givenCountPrefix}, attester...)
	given := 0
	if raw := storage.Get(ctx, givenKey); raw != nil {
		given = raw.(int)
	}
	storage.Put(ctx, givenKey, given+1)

	recompute(ctx, subject)

	runtime.Notify("Attest", id, attester, subject, weight)
	return id
}

// Revoke marks the attestation as revoked. Call transaction MUST be signed
// by the attester, the subject or the administrator. Revocation is one-way:
// a revoked attestation can never be reinstated, and the record stays in
// storage for audit. The subject's reputation is recomputed in the same
// transaction.
//
// The attester's given-attestation counter is cumulative activity and is
// not decremented by revocation.
func Revoke(id interop.Hash256) {
	ctx := storage.GetContext()

	common.CheckNotPaused(ctx)

	att := getAttestation(ctx, id)
	if att.Revoked {
		panic(ErrAlreadyRevoked)
	}

	if !runtime.CheckWitness(att.Attester) && !runtime.CheckWitness(att.Subject) &&
		!runtime.CheckWitness(common.Admin(ctx)) {
		panic(ErrRevokeForbidden)
	}

	att.Revoked = true
	common.SetSerialized(ctx, attestationKey(id), att)

	recompute(ctx, att.Subject)

	runtime.Notify("Revoke", id, att.Attester, att.Subject)
}

// UpdateWeights replaces the component aggregation weights. It can be
// invoked only by the suite administrator. The five weights are basis
// points and must sum to exactly 10000, anything else is rejected.
func UpdateWeights(credential, attestation, staking, participation, time int) {
	ctx := storage.GetContext()

	common.CheckNotPaused(ctx)
	common.CheckAdminWitness(ctx)

	if credential < 0 || attestation < 0 || staking < 0 || participation < 0 || time < 0 {
		panic(ErrInvalidInput)
	}
	if credential+attestation+staking+participation+time != common.Bps {
		panic(ErrWeightSum)
	}

	common.SetSerialized(ctx, weightsKey, Weights{
		Credential:    credential,
		Attestation:   attestation,
		Staking:       staking,
		Participation: participation,
		Time:          time,
	})

	runtime.Notify("WeightsUpdated", credential, attestation, staking, participation, time)
}

// SetDecayRate replaces the daily decay rate, in basis points within
// [0, 10000). It can be invoked only by the suite administrator.
func SetDecayRate(rateBp int) {
	ctx := storage.GetContext()

	common.CheckNotPaused(ctx)
	common.CheckAdminWitness(ctx)

	if rateBp < 0 || rateBp >= common.Bps {
		panic(ErrInvalidInput)
	}
	storage.Put(ctx, decayRateKey, rateBp)
}

// CreateBadge registers a new badge tier and returns its sequential id. It
// can be invoked only by the suite administrator. Requirement is the
// minimum total score earning the badge automatically during recompute.
func CreateBadge(name, description string, requirement int) int {
	ctx := storage.GetContext()

	common.CheckNotPaused(ctx)
	common.CheckAdminWitness(ctx)

	if len(name) == 0 || requirement < 0 || requirement > MaxScore {
		panic(ErrInvalidInput)
	}

	id := storage.Get(ctx, badgeCountKey).(int) + 1
	storage.Put(ctx, badgeCountKey, id)

	common.SetSerialized(ctx, badgeKey(id), Badge{
		Name:        name,
		Description: description,
		Requirement: requirement,
		Active:      true,
	})

	runtime.Notify("BadgeCreated", id, name)
	return id
}

// UpdateBadge changes the requirement and active flag of an existing badge.
// It can be invoked only by the suite administrator. Already earned badges
// are not affected: the earned relation is set once and never cleared.
func UpdateBadge(id, requirement int, active bool) {
	ctx := storage.GetContext()

	common.CheckNotPaused(ctx)
	common.CheckAdminWitness(ctx)

	if requirement < 0 || requirement > MaxScore {
		panic(ErrInvalidInput)
	}

	badge := getBadge(ctx, id)
	badge.Requirement = requirement
	badge.Active = active
	common.SetSerialized(ctx, badgeKey(id), badge)
}

// AwardBadge grants the badge to the account without a score check. It can
// be invoked only by the suite administrator. Awarding an already earned
// badge is a no-op, the original earn timestamp is kept.
func AwardBadge(account interop.Hash160, badgeID int) {
	ctx := storage.GetContext()

	common.CheckNotPaused(ctx)
	common.CheckAdminWitness(ctx)

	getBadge(ctx, badgeID)

	key := userBadgeKey(account, badgeID)
	if storage.Get(ctx, key) != nil {
		return
	}
	storage.Put(ctx, key, now())

	runtime.Notify("BadgeAwarded", account, badgeID)
}

// SetPaused toggles the contract-wide pause. It can be invoked only by the
// suite administrator.
func SetPaused(paused bool) {
	ctx := storage.GetContext()
	common.CheckAdminWitness(ctx)
	common.SetPaused(ctx, paused)
}

// IsPaused returns the contract-wide pause flag.
func IsPaused() bool {
	return common.Paused(storage.GetReadOnlyContext())
}

// MultiplierOf returns the reward bonus multiplier of the account in basis
// points: 10000 is neutral, MaxBonusBp above neutral is granted at
// MaxScore, linearly in between. Accounts without a reputation record are
// neutral. The staking and farming contracts read it on every claim.
func MultiplierOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()

	data := storage.Get(ctx, recordKey(account))
	if data == nil {
		return common.Bps
	}
	rec := std.Deserialize(data.([]byte)).(Record)

	return common.Bps + common.MulDiv(rec.TotalScore, MaxBonusBp, MaxScore)
}

// GetUserReputation returns the reputation record of the account as of its
// last recompute.
func GetUserReputation(account interop.Hash160) Record {
	ctx := storage.GetReadOnlyContext()

	data := storage.Get(ctx, recordKey(account))
	if data == nil {
		panic(ErrRecordNotFound)
	}
	return std.Deserialize(data.([]byte)).(Record)
}

// GetAttestation returns the attestation by id.
func GetAttestation(id interop.Hash256) Attestation {
	return getAttestation(storage.GetReadOnlyContext(), id)
}

// IterateAttestationsOf returns an iterator over ids of all attestations,
// revoked included, where the account is the subject.
func IterateAttestationsOf(subject interop.Hash160) iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, append([]byte{subjectIndexPrefix}, subject...), storage.ValuesOnly)
}

// AttestationsGivenBy returns the cumulative number of attestations ever
// issued by the account. Revocations do not decrease it.
func AttestationsGivenBy(attester interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()

	raw := storage.Get(ctx, append([]byte{givenCountPrefix}, attester...))
	if raw == nil {
		return 0
	}
	return raw.(int)
}

// GetBadge returns the badge by id.
func GetBadge(id int) Badge {
	return getBadge(storage.GetReadOnlyContext(), id)
}

// BadgeCount returns the number of badges ever created. Badge ids are
// sequential starting from 1.
func BadgeCount() int {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, badgeCountKey).(int)
}

// GetUserBadges returns ids of all badges earned by the account.
func GetUserBadges(account interop.Hash160) []int {
	ctx := storage.GetReadOnlyContext()

	var ids []int

	it := storage.Find(ctx, append([]byte{userBadgePrefix}, account...), storage.KeysOnly|storage.RemovePrefix)
	for iterator.Next(it) {
		key := iterator.Value(it).([]byte) // iterator MUST BE `storage.KeysOnly`
		ids = append(ids, convert.ToInteger(key))
	}
	return ids
}

// GetWeights returns the current component aggregation weights.
func GetWeights() Weights {
	ctx := storage.GetReadOnlyContext()
	return std.Deserialize(storage.Get(ctx, weightsKey).([]byte)).(Weights)
}

// DecayRate returns the current daily decay rate in basis points.
func DecayRate() int {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, decayRateKey).(int)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func now() int {
	return runtime.GetTime() / 1000
}

func recordKey(account interop.Hash160) []byte {
	return append([]byte{recordPrefix}, account...)
}

func attestationKey(id interop.Hash256) []byte {
	return append([]byte{attestationPrefix}, id...)
}

func subjectIndexKey(subject interop.Hash160, id interop.Hash256) []byte {
	return append(append([]byte{subjectIndexPrefix}, subject...), id...)
}

func badgeKey(id int) []byte {
	return append([]byte{badgePrefix}, convert.ToBytes(id)...)
}

func userBadgeKey(account interop.Hash160, id int) []byte {
	return append(append([]byte{userBadgePrefix}, account...), convert.ToBytes(id)...)
}

func attestationID(attester, subject interop.Hash160, t int) interop.Hash256 {
	data := append(append([]byte{}, attester...), subject...)
	data = append(data, convert.ToBytes(t)...)
	return crypto.Sha256(data)
}

func getAttestation(ctx storage.Context, id interop.Hash256) Attestation {
	data := storage.Get(ctx, attestationKey(id))
	if data == nil {
		panic(ErrAttestationNotFound)
	}
	return std.Deserialize(data.([]byte)).(Attestation)
}

func getBadge(ctx storage.Context, id int) Badge {
	data := storage.Get(ctx, badgeKey(id))
	if data == nil {
		panic(ErrBadgeNotFound)
	}
	return std.Deserialize(data.([]byte)).(Badge)
}

// recompute is the single write path of reputation records: decay, the five
// components, weighted aggregation, badge sweep. Run twice at the same
// ledger timestamp, the second run reproduces the first bit for bit.
func recompute(ctx storage.Context, account interop.Hash160) {
	t := now()

	var rec Record
	data := storage.Get(ctx, recordKey(account))
	if data == nil {
		rec = Record{
			LastUpdate:    t,
			FirstActivity: t,
		}
	} else {
		rec = std.Deserialize(data.([]byte)).(Record)
	}

	// decay whole elapsed days; LastUpdate advances only by the decayed
	// days so that frequent recomputes cannot indefinitely defer decay
	days := (t - rec.LastUpdate) / secondsPerDay
	if days > 0 {
		rate := storage.Get(ctx, decayRateKey).(int)
		rec.CredentialScore = decayScore(rec.CredentialScore, rate, days)
		rec.AttestationScore = decayScore(rec.AttestationScore, rate, days)
		rec.StakingScore = decayScore(rec.StakingScore, rate, days)
		rec.ParticipationScore = decayScore(rec.ParticipationScore, rate, days)
		rec.TimeScore = decayScore(rec.TimeScore, rate, days)
		rec.LastUpdate += days * secondsPerDay
	}

	rec.CredentialScore = common.Clamp(credentialScore(ctx, account), MaxScore)
	rec.AttestationScore = common.Clamp(attestationScore(ctx, account), MaxScore)
	rec.StakingScore = common.Clamp(stakingScore(ctx, account), MaxScore)
	rec.ParticipationScore = common.Clamp(participationScore(ctx, account), MaxScore)
	rec.TimeScore = common.Clamp(timeScore(rec.FirstActivity, t), MaxScore)

	w := std.Deserialize(storage.Get(ctx, weightsKey).([]byte)).(Weights)
	rec.TotalScore = (rec.CredentialScore*w.Credential +
		rec.AttestationScore*w.Attestation +
		rec.StakingScore*w.Staking +
		rec.ParticipationScore*w.Participation +
		rec.TimeScore*w.Time) / common.Bps

	common.SetSerialized(ctx, recordKey(account), rec)

	sweepBadges(ctx, account, rec.TotalScore, t)

	runtime.Notify("ReputationUpdated", account, rec.TotalScore)
}

// decayScore multiplies the score by (1 - rate/10000) once per elapsed day.
// The exponentiation is repeated integer multiplication, bit-reproducible
// on every replica; it short-circuits at zero.
func decayScore(score, rate, days int) int {
	for i := 0; i < days; i++ {
		if score == 0 {
			return 0
		}
		score = score * (common.Bps - rate) / common.Bps
	}
	return score
}

func credentialScore(ctx storage.Context, account interop.Hash160) int {
	oracle := storage.Get(ctx, credContractKey).(interop.Hash160)
	return contract.Call(oracle, "credentialScore", contract.ReadOnly, account).(int)
}

// attestationScore averages the weights of all non-revoked attestations of
// the subject, each scaled by the attester's own reputation with the
// (rep + 10) / 110 smoothing. No valid attestations mean score 0.
func attestationScore(ctx storage.Context, subject interop.Hash160) int {
	sum := 0
	count := 0

	it := storage.Find(ctx, append([]byte{subjectIndexPrefix}, subject...), storage.ValuesOnly)
	for iterator.Next(it) {
		id := iterator.Value(it).([]byte)
		att := getAttestation(ctx, id)
		if att.Revoked {
			continue
		}

		attesterRep := 0
		if data := storage.Get(ctx, recordKey(att.Attester)); data != nil {
			attesterRep = std.Deserialize(data.([]byte)).(Record).TotalScore
		}

		sum += att.Weight * (attesterRep + attesterSmoothing) / attesterDivisor
		count++
	}

	if count == 0 {
		return 0
	}
	return sum / count
}

func stakingScore(ctx storage.Context, account interop.Hash160) int {
	staking := storage.Get(ctx, stakingKey).(interop.Hash160)
	farming := storage.Get(ctx, farmingKey).(interop.Hash160)

	total := contract.Call(staking, "totalStakeOf", contract.ReadOnly, account).(int)
	total += contract.Call(farming, "totalDepositOf", contract.ReadOnly, account).(int)

	return total / stakeScoreUnit
}

func participationScore(ctx storage.Context, account interop.Hash160) int {
	raw := storage.Get(ctx, append([]byte{givenCountPrefix}, account...))
	if raw == nil {
		return 0
	}
	return raw.(int) * 2
}

func timeScore(firstActivity, t int) int {
	return (t - firstActivity) / secondsPerDay / tenureScoreDays
}

// sweepBadges awards every active badge whose requirement the total score
// meets. Earned badges are set once; re-sweeping never double-awards.
func sweepBadges(ctx storage.Context, account interop.Hash160, total, t int) {
	count := storage.Get(ctx, badgeCountKey).(int)
	for id := 1; id <= count; id++ {
		badge := getBadge(ctx, id)
		if !badge.Active || badge.Requirement > total {
			continue
		}

		key := userBadgeKey(account, id)
		if storage.Get(ctx, key) != nil {
			continue
		}
		storage.Put(ctx, key, t)

		runtime.Notify("BadgeAwarded", account, id)
	}
}

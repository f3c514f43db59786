package staking

import (
	"github.com/Nexsosphere-Technologies/rewards-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

type (
	// Pool describes a single staking pool. Rate is expressed in basis
	// points of yearly yield, accrued linearly per second.
	Pool struct {
		Name           string
		RateBp         int
		LockPeriod     int
		MinStake       int
		MaxStake       int
		TotalDeposited int
		RewardBudget   int
		Active         bool
	}

	// Position is an open deposit of one account into one pool.
	Position struct {
		Amount        int
		DepositTime   int
		LastClaimTime int
	}
)

const (
	// ErrPoolNotFound is thrown when the requested pool id is absent.
	ErrPoolNotFound = "pool not found"
	// ErrPositionNotFound is thrown when the account has no open position
	// in the requested pool.
	ErrPositionNotFound = "position not found"
	// ErrPositionExists is thrown on a second deposit into the same pool
	// before the first one is withdrawn.
	ErrPositionExists = "position already exists"
	// ErrPoolInactive is thrown on deposit into a deactivated pool.
	ErrPoolInactive = "pool is not active"
	// ErrAmountBounds is thrown when the deposit amount is outside the
	// pool's [minStake, maxStake] range.
	ErrAmountBounds = "deposit amount out of bounds"
	// ErrStillLocked is thrown on withdrawal before the lock period
	// has elapsed.
	ErrStillLocked = "stake is still locked"
	// ErrInsufficientBudget is thrown when the pool reward budget cannot
	// cover a claim in full. Claims are never paid partially.
	ErrInsufficientBudget = "insufficient reward budget"
	// ErrTransferFailed is thrown when the token contract rejects a
	// transfer required by the operation.
	ErrTransferFailed = "token transfer failed"
	// ErrInvalidBounds is thrown when minStake exceeds maxStake.
	ErrInvalidBounds = "min stake exceeds max stake"
	// ErrInvalidInput is thrown on malformed arguments: non-positive
	// amounts or rates, negative lock periods, empty names.
	ErrInvalidInput = "invalid input"
)

const (
	poolPrefix     = 'p'
	positionPrefix = 's'

	// poolCountKey must not start with poolPrefix or positionPrefix,
	// IteratePools and TotalStakeOf scan those keyspaces.
	poolCountKey     = "countPools"
	tokenContractKey = "tokenContract"
	repContractKey   = "reputationContract"
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
		token      interop.Hash160
		reputation interop.Hash160
	})

	if len(args.token) != interop.Hash160Len {
		panic("invalid token contract")
	}
	if len(args.reputation) != interop.Hash160Len {
		panic("invalid reputation contract")
	}

	common.SetAdmin(ctx, args.admin)
	storage.Put(ctx, tokenContractKey, args.token)
	storage.Put(ctx, repContractKey, args.reputation)
	storage.Put(ctx, poolCountKey, 0)

	runtime.Log("staking contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the suite administrator.
func Update(script []byte, manifest []byte, data any) {
	ctx := storage.GetContext()
	common.CheckAdminWitness(ctx)

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("staking contract updated")
}

// CreatePool registers a new staking pool and returns its sequential id.
// It can be invoked only by the suite administrator.
//
// Rate is a yearly yield in basis points, lockPeriod is in seconds (0 means
// no lock). Pools are never deleted, only deactivated with UpdatePool, so
// ids of historical claims stay resolvable.
func CreatePool(name string, lockPeriod, rateBp, minStake, maxStake int) int {
	ctx := storage.GetContext()

	common.CheckNotPaused(ctx)
	common.CheckAdminWitness(ctx)

	if len(name) == 0 || lockPeriod < 0 || rateBp <= 0 || minStake <= 0 {
		panic(ErrInvalidInput)
	}
	if minStake > maxStake {
		panic(ErrInvalidBounds)
	}

	id := storage.Get(ctx, poolCountKey).(int) + 1
	storage.Put(ctx, poolCountKey, id)

	common.SetSerialized(ctx, poolKey(id), Pool{
		Name:           name,
		RateBp:         rateBp,
		LockPeriod:     lockPeriod,
		MinStake:       minStake,
		MaxStake:       maxStake,
		TotalDeposited: 0,
		RewardBudget:   0,
		Active:         true,
	})

	runtime.Notify("PoolCreated", id, name)
	return id
}

// UpdatePool changes mutable parameters of an existing pool. It can be
// invoked only by the suite administrator. Lock period is fixed at creation
// so positions opened under it keep their terms.
func UpdatePool(id, rateBp, minStake, maxStake int, active bool) {
	ctx := storage.GetContext()

	common.CheckNotPaused(ctx)
	common.CheckAdminWitness(ctx)

	if rateBp <= 0 || minStake <= 0 {
		panic(ErrInvalidInput)
	}
	if minStake > maxStake {
		panic(ErrInvalidBounds)
	}

	pool := getPool(ctx, id)
	pool.RateBp = rateBp
	pool.MinStake = minStake
	pool.MaxStake = maxStake
	pool.Active = active
	common.SetSerialized(ctx, poolKey(id), pool)

	runtime.Notify("PoolUpdated", id)
}

// AddPoolRewards tops up the reward budget of the pool. It can be invoked
// only by the suite administrator and moves the matching token amount from
// the administrator account to the contract within the same transaction.
func AddPoolRewards(id, amount int) {
	ctx := storage.GetContext()

	common.CheckNotPaused(ctx)
	common.CheckAdminWitness(ctx)

	if amount <= 0 {
		panic(ErrInvalidInput)
	}

	pool := getPool(ctx, id)

	transferTokens(ctx, common.Admin(ctx), runtime.GetExecutingScriptHash(), amount)

	pool.RewardBudget += amount
	common.SetSerialized(ctx, poolKey(id), pool)

	runtime.Notify("RewardsAdded", id, amount)
}

// Stake opens a position of the account in the pool. Call transaction MUST
// be signed by the account. The deposit amount is transferred from the
// account to the contract within the same transaction; if the transfer
// fails, the whole operation is reverted.
//
// An account can hold at most one open position per pool; a second deposit
// before withdrawal is rejected.
func Stake(account interop.Hash160, poolID, amount int) {
	ctx := storage.GetContext()

	common.CheckNotPaused(ctx)
	common.CheckOwnerWitness(account)

	pool := getPool(ctx, poolID)
	if !pool.Active {
		panic(ErrPoolInactive)
	}
	if amount < pool.MinStake || amount > pool.MaxStake {
		panic(ErrAmountBounds)
	}

	posKey := positionKey(account, poolID)
	if storage.Get(ctx, posKey) != nil {
		panic(ErrPositionExists)
	}

	transferTokens(ctx, account, runtime.GetExecutingScriptHash(), amount)

	t := now()
	common.SetSerialized(ctx, posKey, Position{
		Amount:        amount,
		DepositTime:   t,
		LastClaimTime: t,
	})

	pool.TotalDeposited += amount
	common.SetSerialized(ctx, poolKey(poolID), pool)

	recordActivity(ctx, account)

	runtime.Notify("Stake", account, poolID, amount)
}

// CalculateReward returns the base reward of a position of the given amount
// in a pool with the given yearly rate for the [lastClaimTime, at] window.
// It is a pure function of its arguments: simple interest, no compounding,
// truncating division performed after the full multiplication.
func CalculateReward(amount, rateBp, lastClaimTime, at int) int {
	if at <= lastClaimTime {
		return 0
	}
	elapsed := at - lastClaimTime
	return amount * rateBp * elapsed / (common.SecondsPerYear * common.Bps)
}

// PendingRewards returns the base reward the account would accrue by now in
// the given pool, before the reputation bonus is applied.
func PendingRewards(account interop.Hash160, poolID int) int {
	ctx := storage.GetReadOnlyContext()

	pool := getPool(ctx, poolID)
	pos := getPosition(ctx, account, poolID)

	return CalculateReward(pos.Amount, pool.RateBp, pos.LastClaimTime, now())
}

// ClaimRewards pays out the reward accrued by the account's position since
// the previous claim and returns the paid amount. Call transaction MUST be
// signed by the account.
//
// The base reward is scaled by the account's reputation multiplier
// (multiplierOf of the reputation contract, 10000 is neutral): the payout
// is base * multiplier / 10000. The payout is deducted from the pool reward
// budget in full or not at all. Zero elapsed time yields a zero reward and
// is not an error.
func ClaimRewards(account interop.Hash160, poolID int) int {
	ctx := storage.GetContext()

	common.CheckNotPaused(ctx)
	common.CheckOwnerWitness(account)

	return claim(ctx, account, poolID)
}

// Unstake closes the position of the account in the pool: claims accrued
// rewards first, then returns the principal and deletes the position. Call
// transaction MUST be signed by the account. Fails while the pool lock
// period has not elapsed since the deposit.
func Unstake(account interop.Hash160, poolID int) {
	ctx := storage.GetContext()

	common.CheckNotPaused(ctx)
	common.CheckOwnerWitness(account)

	pool := getPool(ctx, poolID)
	pos := getPosition(ctx, account, poolID)

	if pool.LockPeriod > 0 && now() < pos.DepositTime+pool.LockPeriod {
		panic(ErrStillLocked)
	}

	// settle rewards before the position record is removed, nothing may
	// be stranded across the delete boundary
	claim(ctx, account, poolID)

	storage.Delete(ctx, positionKey(account, poolID))

	pool = getPool(ctx, poolID)
	pool.TotalDeposited -= pos.Amount
	common.SetSerialized(ctx, poolKey(poolID), pool)

	transferTokens(ctx, runtime.GetExecutingScriptHash(), account, pos.Amount)

	runtime.Notify("Unstake", account, poolID, pos.Amount)
}

// EmergencyWithdraw force-closes the position returning the principal only.
// It can be invoked only by the suite administrator, works while the
// contract is paused and bypasses the lock period. Unclaimed rewards are
// forfeited irrecoverably; this is an escape hatch for stuck positions,
// not a regular withdrawal path.
func EmergencyWithdraw(account interop.Hash160, poolID int) {
	ctx := storage.GetContext()

	common.CheckAdminWitness(ctx)

	pool := getPool(ctx, poolID)
	pos := getPosition(ctx, account, poolID)

	storage.Delete(ctx, positionKey(account, poolID))

	pool.TotalDeposited -= pos.Amount
	common.SetSerialized(ctx, poolKey(poolID), pool)

	transferTokens(ctx, runtime.GetExecutingScriptHash(), account, pos.Amount)

	runtime.Log("emergency withdrawal, accrued rewards forfeited")
	runtime.Notify("EmergencyWithdraw", account, poolID, pos.Amount)
}

// SetPaused toggles the contract-wide pause. It can be invoked only by the
// suite administrator. While paused, every state-changing method except
// EmergencyWithdraw is rejected.
func SetPaused(paused bool) {
	ctx := storage.GetContext()
	common.CheckAdminWitness(ctx)
	common.SetPaused(ctx, paused)
}

// IsPaused returns the contract-wide pause flag.
func IsPaused() bool {
	return common.Paused(storage.GetReadOnlyContext())
}

// GetPoolInfo returns the pool by id.
func GetPoolInfo(id int) Pool {
	return getPool(storage.GetReadOnlyContext(), id)
}

// GetUserStakeInfo returns the open position of the account in the pool.
func GetUserStakeInfo(account interop.Hash160, poolID int) Position {
	return getPosition(storage.GetReadOnlyContext(), account, poolID)
}

// PoolCount returns the number of pools ever created. Pool ids are
// sequential starting from 1.
func PoolCount() int {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, poolCountKey).(int)
}

// TotalStakeOf returns the sum of all open positions of the account across
// pools. The reputation contract reads it when recomputing the staking
// component of the account's score.
func TotalStakeOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()

	total := 0
	it := storage.Find(ctx, append([]byte{positionPrefix}, account...), storage.ValuesOnly)
	for iterator.Next(it) {
		pos := std.Deserialize(iterator.Value(it).([]byte)).(Position)
		total += pos.Amount
	}
	return total
}

// IteratePools returns an iterator over all pools. Keys are little-endian
// pool ids with the storage prefix removed.
func IteratePools() iterator.Iterator {
	return storage.Find(storage.GetReadOnlyContext(), []byte{poolPrefix}, storage.RemovePrefix|storage.DeserializeValues)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func now() int {
	return runtime.GetTime() / 1000
}

func poolKey(id int) []byte {
	return append([]byte{poolPrefix}, convert.ToBytes(id)...)
}

func positionKey(account interop.Hash160, poolID int) []byte {
	return append(append([]byte{positionPrefix}, account...), convert.ToBytes(poolID)...)
}

func getPool(ctx storage.Context, id int) Pool {
	data := storage.Get(ctx, poolKey(id))
	if data == nil {
		panic(ErrPoolNotFound)
	}
	return std.Deserialize(data.([]byte)).(Pool)
}

func getPosition(ctx storage.Context, account interop.Hash160, poolID int) Position {
	data := storage.Get(ctx, positionKey(account, poolID))
	if data == nil {
		panic(ErrPositionNotFound)
	}
	return std.Deserialize(data.([]byte)).(Position)
}

// claim settles accrued rewards of the position, persisting the advanced
// lastClaimTime atomically with the payout so the same window can never be
// paid twice. Returns the paid amount, 0 when nothing has accrued.
func claim(ctx storage.Context, account interop.Hash160, poolID int) int {
	pool := getPool(ctx, poolID)
	pos := getPosition(ctx, account, poolID)

	t := now()
	base := CalculateReward(pos.Amount, pool.RateBp, pos.LastClaimTime, t)
	if base == 0 {
		return 0
	}

	mult := multiplierOf(ctx, account)
	payout := common.MulDiv(base, mult, common.Bps)

	if pool.RewardBudget < payout {
		panic(ErrInsufficientBudget)
	}
	pool.RewardBudget -= payout
	common.SetSerialized(ctx, poolKey(poolID), pool)

	pos.LastClaimTime = t
	common.SetSerialized(ctx, positionKey(account, poolID), pos)

	transferTokens(ctx, runtime.GetExecutingScriptHash(), account, payout)

	runtime.Notify("Claim", account, poolID, payout)
	return payout
}

func transferTokens(ctx storage.Context, from, to interop.Hash160, amount int) {
	token := storage.Get(ctx, tokenContractKey).(interop.Hash160)
	ok := contract.Call(token, "transfer", contract.All, from, to, amount, nil).(bool)
	if !ok {
		panic(ErrTransferFailed)
	}
}

func multiplierOf(ctx storage.Context, account interop.Hash160) int {
	rep := storage.Get(ctx, repContractKey).(interop.Hash160)
	return contract.Call(rep, "multiplierOf", contract.ReadOnly, account).(int)
}

func recordActivity(ctx storage.Context, account interop.Hash160) {
	rep := storage.Get(ctx, repContractKey).(interop.Hash160)
	contract.Call(rep, "recordActivity", contract.All, account)
}

package farming

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
	// Farm describes a single liquidity farm. Rate is the reward amount
	// accrued per second per deposited unit, scaled by common.Bps.
	// Rewards accrue only within the [StartTime, EndTime] window.
	Farm struct {
		Name           string
		Rate           int
		StartTime      int
		EndTime        int
		MinDeposit     int
		MaxDeposit     int
		TotalDeposited int
		RewardBudget   int
		Active         bool
	}

	// Position is an open LP deposit of one account into one farm.
	Position struct {
		Amount        int
		DepositTime   int
		LastClaimTime int
	}
)

const (
	// ErrFarmNotFound is thrown when the requested farm id is absent.
	ErrFarmNotFound = "farm not found"
	// ErrPositionNotFound is thrown when the account has no open position
	// in the requested farm.
	ErrPositionNotFound = "position not found"
	// ErrPositionExists is thrown on a second deposit into the same farm
	// before the first one is withdrawn.
	ErrPositionExists = "position already exists"
	// ErrFarmInactive is thrown on deposit into a deactivated farm or
	// outside the farm's time window.
	ErrFarmInactive = "farm is not active"
	// ErrAmountBounds is thrown when the deposit amount is outside the
	// farm's [minDeposit, maxDeposit] range.
	ErrAmountBounds = "deposit amount out of bounds"
	// ErrInsufficientBudget is thrown when the farm reward budget cannot
	// cover a claim in full. Claims are never paid partially.
	ErrInsufficientBudget = "insufficient reward budget"
	// ErrTransferFailed is thrown when the token contract rejects a
	// transfer required by the operation.
	ErrTransferFailed = "token transfer failed"
	// ErrInvalidBounds is thrown when minDeposit exceeds maxDeposit.
	ErrInvalidBounds = "min deposit exceeds max deposit"
	// ErrInvalidWindow is thrown when startTime is not before endTime.
	ErrInvalidWindow = "farm start time must precede end time"
	// ErrInvalidInput is thrown on malformed arguments: non-positive
	// amounts, negative rates, empty names.
	ErrInvalidInput = "invalid input"
)

const (
	farmPrefix     = 'f'
	positionPrefix = 'l'

	// farmCountKey must not start with farmPrefix or positionPrefix,
	// IterateFarms and TotalDepositOf scan those keyspaces.
	farmCountKey     = "countFarms"
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
	storage.Put(ctx, farmCountKey, 0)

	runtime.Log("farming contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the suite administrator.
func Update(script []byte, manifest []byte, data any) {
	ctx := storage.GetContext()
	common.CheckAdminWitness(ctx)

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("farming contract updated")
}

// CreateFarm registers a new farm and returns its sequential id. It can be
// invoked only by the suite administrator. The initial reward budget
// rewardPool is transferred from the administrator account within the same
// transaction. Farms are never deleted, only deactivated with UpdateFarm.
func CreateFarm(name string, rate, startTime, endTime, minDeposit, maxDeposit, rewardPool int) int {
	ctx := storage.GetContext()

	common.CheckNotPaused(ctx)
	common.CheckAdminWitness(ctx)

	if len(name) == 0 || rate <= 0 || minDeposit <= 0 || rewardPool < 0 {
		panic(ErrInvalidInput)
	}
	if minDeposit > maxDeposit {
		panic(ErrInvalidBounds)
	}
	if startTime >= endTime {
		panic(ErrInvalidWindow)
	}

	if rewardPool > 0 {
		transferTokens(ctx, common.Admin(ctx), runtime.GetExecutingScriptHash(), rewardPool)
	}

	id := storage.Get(ctx, farmCountKey).(int) + 1
	storage.Put(ctx, farmCountKey, id)

	common.SetSerialized(ctx, farmKey(id), Farm{
		Name:           name,
		Rate:           rate,
		StartTime:      startTime,
		EndTime:        endTime,
		MinDeposit:     minDeposit,
		MaxDeposit:     maxDeposit,
		TotalDeposited: 0,
		RewardBudget:   rewardPool,
		Active:         true,
	})

	runtime.Notify("FarmCreated", id, name)
	return id
}

// UpdateFarm changes mutable parameters of an existing farm. It can be
// invoked only by the suite administrator. The time window is fixed at
// creation.
func UpdateFarm(id, rate, minDeposit, maxDeposit int, active bool) {
	ctx := storage.GetContext()

	common.CheckNotPaused(ctx)
	common.CheckAdminWitness(ctx)

	if rate <= 0 || minDeposit <= 0 {
		panic(ErrInvalidInput)
	}
	if minDeposit > maxDeposit {
		panic(ErrInvalidBounds)
	}

	farm := getFarm(ctx, id)
	farm.Rate = rate
	farm.MinDeposit = minDeposit
	farm.MaxDeposit = maxDeposit
	farm.Active = active
	common.SetSerialized(ctx, farmKey(id), farm)

	runtime.Notify("FarmUpdated", id)
}

// AddFarmRewards tops up the reward budget of the farm. It can be invoked
// only by the suite administrator and moves the matching token amount from
// the administrator account to the contract within the same transaction.
func AddFarmRewards(id, amount int) {
	ctx := storage.GetContext()

	common.CheckNotPaused(ctx)
	common.CheckAdminWitness(ctx)

	if amount <= 0 {
		panic(ErrInvalidInput)
	}

	farm := getFarm(ctx, id)

	transferTokens(ctx, common.Admin(ctx), runtime.GetExecutingScriptHash(), amount)

	farm.RewardBudget += amount
	common.SetSerialized(ctx, farmKey(id), farm)

	runtime.Notify("RewardsAdded", id, amount)
}

// DepositLP opens a position of the account in the farm. Call transaction
// MUST be signed by the account. Deposits are accepted only within the
// farm's [startTime, endTime] window. The deposit amount is transferred
// from the account to the contract within the same transaction.
//
// An account can hold at most one open position per farm.
func DepositLP(account interop.Hash160, farmID, amount int) {
	ctx := storage.GetContext()

	common.CheckNotPaused(ctx)
	common.CheckOwnerWitness(account)

	farm := getFarm(ctx, farmID)
	t := now()
	if !farm.Active || t < farm.StartTime || t > farm.EndTime {
		panic(ErrFarmInactive)
	}
	if amount < farm.MinDeposit || amount > farm.MaxDeposit {
		panic(ErrAmountBounds)
	}

	posKey := positionKey(account, farmID)
	if storage.Get(ctx, posKey) != nil {
		panic(ErrPositionExists)
	}

	transferTokens(ctx, account, runtime.GetExecutingScriptHash(), amount)

	common.SetSerialized(ctx, posKey, Position{
		Amount:        amount,
		DepositTime:   t,
		LastClaimTime: t,
	})

	farm.TotalDeposited += amount
	common.SetSerialized(ctx, farmKey(farmID), farm)

	recordActivity(ctx, account)

	runtime.Notify("Deposit", account, farmID, amount)
}

// CalculateReward returns the base reward of a position of the given amount
// in a farm with the given per-second rate for the [lastClaimTime, at]
// window clipped by the farm's endTime. It is a pure function of its
// arguments: accrual stops at endTime, division truncates toward zero and
// is performed after the full multiplication.
func CalculateReward(amount, rate, lastClaimTime, at, endTime int) int {
	if at > endTime {
		at = endTime
	}
	if at <= lastClaimTime {
		return 0
	}
	elapsed := at - lastClaimTime
	return amount * rate * elapsed / common.Bps
}

// PendingRewards returns the base reward the account would accrue by now in
// the given farm, before the reputation bonus is applied.
func PendingRewards(account interop.Hash160, farmID int) int {
	ctx := storage.GetReadOnlyContext()

	farm := getFarm(ctx, farmID)
	pos := getPosition(ctx, account, farmID)

	return CalculateReward(pos.Amount, farm.Rate, pos.LastClaimTime, now(), farm.EndTime)
}

// ClaimFarmRewards pays out the reward accrued by the account's position
// since the previous claim and returns the paid amount. Call transaction
// MUST be signed by the account.
//
// On top of the base reward the account receives a reputation bonus of
// base * (multiplier - 10000) / 10000 where multiplier comes from the
// reputation contract and 10000 is neutral. The staking contract instead
// scales the whole base by the multiplier; the two forms coincide for
// multipliers at or above neutral but are kept as distinct strategies.
// The full payout is deducted from the farm reward budget or the claim
// fails.
func ClaimFarmRewards(account interop.Hash160, farmID int) int {
	ctx := storage.GetContext()

	common.CheckNotPaused(ctx)
	common.CheckOwnerWitness(account)

	return claim(ctx, account, farmID)
}

// WithdrawLP closes the position of the account in the farm: claims accrued
// rewards first, then returns the principal and deletes the position. Call
// transaction MUST be signed by the account. Farms have no lock period,
// withdrawal is available at any time including after endTime.
func WithdrawLP(account interop.Hash160, farmID int) {
	ctx := storage.GetContext()

	common.CheckNotPaused(ctx)
	common.CheckOwnerWitness(account)

	pos := getPosition(ctx, account, farmID)

	// settle rewards before the position record is removed, nothing may
	// be stranded across the delete boundary
	claim(ctx, account, farmID)

	storage.Delete(ctx, positionKey(account, farmID))

	farm := getFarm(ctx, farmID)
	farm.TotalDeposited -= pos.Amount
	common.SetSerialized(ctx, farmKey(farmID), farm)

	transferTokens(ctx, runtime.GetExecutingScriptHash(), account, pos.Amount)

	runtime.Notify("Withdraw", account, farmID, pos.Amount)
}

// EmergencyWithdraw force-closes the position returning the principal only.
// It can be invoked only by the suite administrator and works while the
// contract is paused. Unclaimed rewards are forfeited irrecoverably.
func EmergencyWithdraw(account interop.Hash160, farmID int) {
	ctx := storage.GetContext()

	common.CheckAdminWitness(ctx)

	farm := getFarm(ctx, farmID)
	pos := getPosition(ctx, account, farmID)

	storage.Delete(ctx, positionKey(account, farmID))

	farm.TotalDeposited -= pos.Amount
	common.SetSerialized(ctx, farmKey(farmID), farm)

	transferTokens(ctx, runtime.GetExecutingScriptHash(), account, pos.Amount)

	runtime.Log("emergency withdrawal, accrued rewards forfeited")
	runtime.Notify("EmergencyWithdraw", account, farmID, pos.Amount)
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

// GetFarmInfo returns the farm by id.
func GetFarmInfo(id int) Farm {
	return getFarm(storage.GetReadOnlyContext(), id)
}

// GetUserFarmInfo returns the open position of the account in the farm.
func GetUserFarmInfo(account interop.Hash160, farmID int) Position {
	return getPosition(storage.GetReadOnlyContext(), account, farmID)
}

// FarmCount returns the number of farms ever created. Farm ids are
// sequential starting from 1.
func FarmCount() int {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, farmCountKey).(int)
}

// TotalDepositOf returns the sum of all open positions of the account
// across farms.
func TotalDepositOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()

	total := 0
	it := storage.Find(ctx, append([]byte{positionPrefix}, account...), storage.ValuesOnly)
	for iterator.Next(it) {
		pos := std.Deserialize(iterator.Value(it).([]byte)).(Position)
		total += pos.Amount
	}
	return total
}

// IterateFarms returns an iterator over all farms. Keys are little-endian
// farm ids with the storage prefix removed.
func IterateFarms() iterator.Iterator {
	return storage.Find(storage.GetReadOnlyContext(), []byte{farmPrefix}, storage.RemovePrefix|storage.DeserializeValues)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func now() int {
	return runtime.GetTime() / 1000
}

func farmKey(id int) []byte {
	return append([]byte{farmPrefix}, convert.ToBytes(id)...)
}

func positionKey(account interop.Hash160, farmID int) []byte {
	return append(append([]byte{positionPrefix}, account...), convert.ToBytes(farmID)...)
}

func getFarm(ctx storage.Context, id int) Farm {
	data := storage.Get(ctx, farmKey(id))
	if data == nil {
		panic(ErrFarmNotFound)
	}
	return std.Deserialize(data.([]byte)).(Farm)
}

func getPosition(ctx storage.Context, account interop.Hash160, farmID int) Position {
	data := storage.Get(ctx, positionKey(account, farmID))
	if data == nil {
		panic(ErrPositionNotFound)
	}
	return std.Deserialize(data.([]byte)).(Position)
}

// claim settles accrued rewards of the position, persisting the advanced
// lastClaimTime atomically with the payout so the same window can never be
// paid twice. Returns the paid amount, 0 when nothing has accrued.
func claim(ctx storage.Context, account interop.Hash160, farmID int) int {
	farm := getFarm(ctx, farmID)
	pos := getPosition(ctx, account, farmID)

	t := now()
	base := CalculateReward(pos.Amount, farm.Rate, pos.LastClaimTime, t, farm.EndTime)
	if base == 0 {
		return 0
	}

	mult := multiplierOf(ctx, account)
	bonus := common.MulDiv(base, mult-common.Bps, common.Bps)
	payout := base + bonus

	if farm.RewardBudget < payout {
		panic(ErrInsufficientBudget)
	}
	farm.RewardBudget -= payout
	common.SetSerialized(ctx, farmKey(farmID), farm)

	pos.LastClaimTime = t
	common.SetSerialized(ctx, positionKey(account, farmID), pos)

	transferTokens(ctx, runtime.GetExecutingScriptHash(), account, payout)

	runtime.Notify("Claim", account, farmID, payout)
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

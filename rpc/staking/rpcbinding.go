// Package staking contains RPC wrappers for Nexsosphere Staking contract.
package staking

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
	"unicode/utf8"
)

// StakingPool is a contract-specific staking.Pool type used by its methods.
type StakingPool struct {
	Name string
	RateBp *big.Int
	LockPeriod *big.Int
	MinStake *big.Int
	MaxStake *big.Int
	TotalDeposited *big.Int
	RewardBudget *big.Int
	Active bool
}

// StakingPosition is a contract-specific staking.Position type used by its methods.
type StakingPosition struct {
	Amount *big.Int
	DepositTime *big.Int
	LastClaimTime *big.Int
}

// PoolCreatedEvent represents "PoolCreated" event emitted by the contract.
type PoolCreatedEvent struct {
	ID *big.Int
	Name string
}

// PoolUpdatedEvent represents "PoolUpdated" event emitted by the contract.
type PoolUpdatedEvent struct {
	ID *big.Int
}

// RewardsAddedEvent represents "RewardsAdded" event emitted by the contract.
type RewardsAddedEvent struct {
	ID *big.Int
	Amount *big.Int
}

// StakeEvent represents "Stake" event emitted by the contract.
type StakeEvent struct {
	Account util.Uint160
	PoolID *big.Int
	Amount *big.Int
}

// UnstakeEvent represents "Unstake" event emitted by the contract.
type UnstakeEvent struct {
	Account util.Uint160
	PoolID *big.Int
	Amount *big.Int
}

// ClaimEvent represents "Claim" event emitted by the contract.
type ClaimEvent struct {
	Account util.Uint160
	PoolID *big.Int
	Amount *big.Int
}

// EmergencyWithdrawEvent represents "EmergencyWithdraw" event emitted by the contract.
type EmergencyWithdrawEvent struct {
	Account util.Uint160
	PoolID *big.Int
	Amount *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// CalculateReward invokes `calculateReward` method of contract.
func (c *ContractReader) CalculateReward(amount *big.Int, rateBp *big.Int, lastClaimTime *big.Int, at *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "calculateReward", amount, rateBp, lastClaimTime, at))
}

// GetPoolInfo invokes `getPoolInfo` method of contract.
func (c *ContractReader) GetPoolInfo(id *big.Int) (*StakingPool, error) {
	return itemToStakingPool(unwrap.Item(c.invoker.Call(c.hash, "getPoolInfo", id)))
}

// GetUserStakeInfo invokes `getUserStakeInfo` method of contract.
func (c *ContractReader) GetUserStakeInfo(account util.Uint160, poolID *big.Int) (*StakingPosition, error) {
	return itemToStakingPosition(unwrap.Item(c.invoker.Call(c.hash, "getUserStakeInfo", account, poolID)))
}

// IsPaused invokes `isPaused` method of contract.
func (c *ContractReader) IsPaused() (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isPaused"))
}

// IteratePools invokes `iteratePools` method of contract.
func (c *ContractReader) IteratePools() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "iteratePools"))
}

// IteratePoolsExpanded is similar to IteratePools (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) IteratePoolsExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "iteratePools", _numOfIteratorItems))
}

// PendingRewards invokes `pendingRewards` method of contract.
func (c *ContractReader) PendingRewards(account util.Uint160, poolID *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "pendingRewards", account, poolID))
}

// PoolCount invokes `poolCount` method of contract.
func (c *ContractReader) PoolCount() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "poolCount"))
}

// TotalStakeOf invokes `totalStakeOf` method of contract.
func (c *ContractReader) TotalStakeOf(account util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "totalStakeOf", account))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// AddPoolRewards creates a transaction invoking `addPoolRewards` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AddPoolRewards(id *big.Int, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "addPoolRewards", id, amount)
}

// AddPoolRewardsTransaction creates a transaction invoking `addPoolRewards` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AddPoolRewardsTransaction(id *big.Int, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "addPoolRewards", id, amount)
}

// AddPoolRewardsUnsigned creates a transaction invoking `addPoolRewards` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AddPoolRewardsUnsigned(id *big.Int, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "addPoolRewards", nil, id, amount)
}

// ClaimRewards creates a transaction invoking `claimRewards` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ClaimRewards(account util.Uint160, poolID *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "claimRewards", account, poolID)
}

// ClaimRewardsTransaction creates a transaction invoking `claimRewards` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ClaimRewardsTransaction(account util.Uint160, poolID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "claimRewards", account, poolID)
}

// ClaimRewardsUnsigned creates a transaction invoking `claimRewards` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ClaimRewardsUnsigned(account util.Uint160, poolID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "claimRewards", nil, account, poolID)
}

// CreatePool creates a transaction invoking `createPool` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CreatePool(name string, lockPeriod *big.Int, rateBp *big.Int, minStake *big.Int, maxStake *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "createPool", name, lockPeriod, rateBp, minStake, maxStake)
}

// CreatePoolTransaction creates a transaction invoking `createPool` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CreatePoolTransaction(name string, lockPeriod *big.Int, rateBp *big.Int, minStake *big.Int, maxStake *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "createPool", name, lockPeriod, rateBp, minStake, maxStake)
}

// CreatePoolUnsigned creates a transaction invoking `createPool` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CreatePoolUnsigned(name string, lockPeriod *big.Int, rateBp *big.Int, minStake *big.Int, maxStake *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "createPool", nil, name, lockPeriod, rateBp, minStake, maxStake)
}

// EmergencyWithdraw creates a transaction invoking `emergencyWithdraw` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) EmergencyWithdraw(account util.Uint160, poolID *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "emergencyWithdraw", account, poolID)
}

// EmergencyWithdrawTransaction creates a transaction invoking `emergencyWithdraw` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) EmergencyWithdrawTransaction(account util.Uint160, poolID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "emergencyWithdraw", account, poolID)
}

// EmergencyWithdrawUnsigned creates a transaction invoking `emergencyWithdraw` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) EmergencyWithdrawUnsigned(account util.Uint160, poolID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "emergencyWithdraw", nil, account, poolID)
}

// SetPaused creates a transaction invoking `setPaused` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetPaused(paused bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setPaused", paused)
}

// SetPausedTransaction creates a transaction invoking `setPaused` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetPausedTransaction(paused bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setPaused", paused)
}

// SetPausedUnsigned creates a transaction invoking `setPaused` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetPausedUnsigned(paused bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setPaused", nil, paused)
}

// Stake creates a transaction invoking `stake` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Stake(account util.Uint160, poolID *big.Int, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "stake", account, poolID, amount)
}

// StakeTransaction creates a transaction invoking `stake` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) StakeTransaction(account util.Uint160, poolID *big.Int, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "stake", account, poolID, amount)
}

// StakeUnsigned creates a transaction invoking `stake` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) StakeUnsigned(account util.Uint160, poolID *big.Int, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "stake", nil, account, poolID, amount)
}

// Unstake creates a transaction invoking `unstake` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Unstake(account util.Uint160, poolID *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "unstake", account, poolID)
}

// UnstakeTransaction creates a transaction invoking `unstake` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UnstakeTransaction(account util.Uint160, poolID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "unstake", account, poolID)
}

// UnstakeUnsigned creates a transaction invoking `unstake` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UnstakeUnsigned(account util.Uint160, poolID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "unstake", nil, account, poolID)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}

// UpdatePool creates a transaction invoking `updatePool` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdatePool(id *big.Int, rateBp *big.Int, minStake *big.Int, maxStake *big.Int, active bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updatePool", id, rateBp, minStake, maxStake, active)
}

// UpdatePoolTransaction creates a transaction invoking `updatePool` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdatePoolTransaction(id *big.Int, rateBp *big.Int, minStake *big.Int, maxStake *big.Int, active bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updatePool", id, rateBp, minStake, maxStake, active)
}

// UpdatePoolUnsigned creates a transaction invoking `updatePool` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdatePoolUnsigned(id *big.Int, rateBp *big.Int, minStake *big.Int, maxStake *big.Int, active bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updatePool", nil, id, rateBp, minStake, maxStake, active)
}

// itemToStakingPool converts stack item into *StakingPool.
func itemToStakingPool(item stackitem.Item, err error) (*StakingPool, error) {
	if err != nil {
		return nil, err
	}
	var res = new(StakingPool)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of StakingPool from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *StakingPool) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 8 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Name, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Name: %w", err)
	}

	index++
	res.RateBp, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RateBp: %w", err)
	}

	index++
	res.LockPeriod, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field LockPeriod: %w", err)
	}

	index++
	res.MinStake, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field MinStake: %w", err)
	}

	index++
	res.MaxStake, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field MaxStake: %w", err)
	}

	index++
	res.TotalDeposited, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TotalDeposited: %w", err)
	}

	index++
	res.RewardBudget, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RewardBudget: %w", err)
	}

	index++
	res.Active, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Active: %w", err)
	}

	return nil
}

// itemToStakingPosition converts stack item into *StakingPosition.
func itemToStakingPosition(item stackitem.Item, err error) (*StakingPosition, error) {
	if err != nil {
		return nil, err
	}
	var res = new(StakingPosition)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of StakingPosition from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *StakingPosition) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	res.DepositTime, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field DepositTime: %w", err)
	}

	index++
	res.LastClaimTime, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field LastClaimTime: %w", err)
	}

	return nil
}

// StakeEventsFromApplicationLog retrieves a set of all emitted events
// with "Stake" name from the provided [result.ApplicationLog].
func StakeEventsFromApplicationLog(log *result.ApplicationLog) ([]*StakeEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*StakeEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Stake" {
				continue
			}
			event := new(StakeEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize StakeEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to StakeEvent or
// returns an error if it's not possible to do to so.
func (e *StakeEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Account, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Account: %w", err)
	}

	index++
	e.PoolID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field PoolID: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// ClaimEventsFromApplicationLog retrieves a set of all emitted events
// with "Claim" name from the provided [result.ApplicationLog].
func ClaimEventsFromApplicationLog(log *result.ApplicationLog) ([]*ClaimEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ClaimEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Claim" {
				continue
			}
			event := new(ClaimEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ClaimEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ClaimEvent or
// returns an error if it's not possible to do to so.
func (e *ClaimEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Account, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Account: %w", err)
	}

	index++
	e.PoolID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field PoolID: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// PoolCreatedEventsFromApplicationLog retrieves a set of all emitted events
// with "PoolCreated" name from the provided [result.ApplicationLog].
func PoolCreatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*PoolCreatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*PoolCreatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "PoolCreated" {
				continue
			}
			event := new(PoolCreatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize PoolCreatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to PoolCreatedEvent or
// returns an error if it's not possible to do to so.
func (e *PoolCreatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.Name, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Name: %w", err)
	}

	return nil
}

// PoolUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "PoolUpdated" name from the provided [result.ApplicationLog].
func PoolUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*PoolUpdatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*PoolUpdatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "PoolUpdated" {
				continue
			}
			event := new(PoolUpdatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize PoolUpdatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to PoolUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *PoolUpdatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	return nil
}

// RewardsAddedEventsFromApplicationLog retrieves a set of all emitted events
// with "RewardsAdded" name from the provided [result.ApplicationLog].
func RewardsAddedEventsFromApplicationLog(log *result.ApplicationLog) ([]*RewardsAddedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RewardsAddedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RewardsAdded" {
				continue
			}
			event := new(RewardsAddedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RewardsAddedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RewardsAddedEvent or
// returns an error if it's not possible to do to so.
func (e *RewardsAddedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// UnstakeEventsFromApplicationLog retrieves a set of all emitted events
// with "Unstake" name from the provided [result.ApplicationLog].
func UnstakeEventsFromApplicationLog(log *result.ApplicationLog) ([]*UnstakeEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*UnstakeEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Unstake" {
				continue
			}
			event := new(UnstakeEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize UnstakeEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to UnstakeEvent or
// returns an error if it's not possible to do to so.
func (e *UnstakeEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Account, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Account: %w", err)
	}

	index++
	e.PoolID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field PoolID: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// EmergencyWithdrawEventsFromApplicationLog retrieves a set of all emitted events
// with "EmergencyWithdraw" name from the provided [result.ApplicationLog].
func EmergencyWithdrawEventsFromApplicationLog(log *result.ApplicationLog) ([]*EmergencyWithdrawEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*EmergencyWithdrawEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "EmergencyWithdraw" {
				continue
			}
			event := new(EmergencyWithdrawEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize EmergencyWithdrawEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to EmergencyWithdrawEvent or
// returns an error if it's not possible to do to so.
func (e *EmergencyWithdrawEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Account, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Account: %w", err)
	}

	index++
	e.PoolID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field PoolID: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// Package farming contains RPC wrappers for Nexsosphere Farming contract.
package farming

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

// FarmingFarm is a contract-specific farming.Farm type used by its methods.
type FarmingFarm struct {
	Name string
	Rate *big.Int
	StartTime *big.Int
	EndTime *big.Int
	MinDeposit *big.Int
	MaxDeposit *big.Int
	TotalDeposited *big.Int
	RewardBudget *big.Int
	Active bool
}

// FarmingPosition is a contract-specific farming.Position type used by its methods.
type FarmingPosition struct {
	Amount *big.Int
	DepositTime *big.Int
	LastClaimTime *big.Int
}

// FarmCreatedEvent represents "FarmCreated" event emitted by the contract.
type FarmCreatedEvent struct {
	ID *big.Int
	Name string
}

// FarmUpdatedEvent represents "FarmUpdated" event emitted by the contract.
type FarmUpdatedEvent struct {
	ID *big.Int
}

// RewardsAddedEvent represents "RewardsAdded" event emitted by the contract.
type RewardsAddedEvent struct {
	ID *big.Int
	Amount *big.Int
}

// DepositEvent represents "Deposit" event emitted by the contract.
type DepositEvent struct {
	Account util.Uint160
	FarmID *big.Int
	Amount *big.Int
}

// WithdrawEvent represents "Withdraw" event emitted by the contract.
type WithdrawEvent struct {
	Account util.Uint160
	FarmID *big.Int
	Amount *big.Int
}

// ClaimEvent represents "Claim" event emitted by the contract.
type ClaimEvent struct {
	Account util.Uint160
	FarmID *big.Int
	Amount *big.Int
}

// EmergencyWithdrawEvent represents "EmergencyWithdraw" event emitted by the contract.
type EmergencyWithdrawEvent struct {
	Account util.Uint160
	FarmID *big.Int
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
func (c *ContractReader) CalculateReward(amount *big.Int, rate *big.Int, lastClaimTime *big.Int, at *big.Int, endTime *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "calculateReward", amount, rate, lastClaimTime, at, endTime))
}

// FarmCount invokes `farmCount` method of contract.
func (c *ContractReader) FarmCount() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "farmCount"))
}

// GetFarmInfo invokes `getFarmInfo` method of contract.
func (c *ContractReader) GetFarmInfo(id *big.Int) (*FarmingFarm, error) {
	return itemToFarmingFarm(unwrap.Item(c.invoker.Call(c.hash, "getFarmInfo", id)))
}

// GetUserFarmInfo invokes `getUserFarmInfo` method of contract.
func (c *ContractReader) GetUserFarmInfo(account util.Uint160, farmID *big.Int) (*FarmingPosition, error) {
	return itemToFarmingPosition(unwrap.Item(c.invoker.Call(c.hash, "getUserFarmInfo", account, farmID)))
}

// IsPaused invokes `isPaused` method of contract.
func (c *ContractReader) IsPaused() (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isPaused"))
}

// IterateFarms invokes `iterateFarms` method of contract.
func (c *ContractReader) IterateFarms() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "iterateFarms"))
}

// IterateFarmsExpanded is similar to IterateFarms (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) IterateFarmsExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "iterateFarms", _numOfIteratorItems))
}

// PendingRewards invokes `pendingRewards` method of contract.
func (c *ContractReader) PendingRewards(account util.Uint160, farmID *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "pendingRewards", account, farmID))
}

// TotalDepositOf invokes `totalDepositOf` method of contract.
func (c *ContractReader) TotalDepositOf(account util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "totalDepositOf", account))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// AddFarmRewards creates a transaction invoking `addFarmRewards` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AddFarmRewards(id *big.Int, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "addFarmRewards", id, amount)
}

// AddFarmRewardsTransaction creates a transaction invoking `addFarmRewards` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AddFarmRewardsTransaction(id *big.Int, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "addFarmRewards", id, amount)
}

// AddFarmRewardsUnsigned creates a transaction invoking `addFarmRewards` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AddFarmRewardsUnsigned(id *big.Int, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "addFarmRewards", nil, id, amount)
}

// ClaimFarmRewards creates a transaction invoking `claimFarmRewards` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ClaimFarmRewards(account util.Uint160, farmID *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "claimFarmRewards", account, farmID)
}

// ClaimFarmRewardsTransaction creates a transaction invoking `claimFarmRewards` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ClaimFarmRewardsTransaction(account util.Uint160, farmID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "claimFarmRewards", account, farmID)
}

// ClaimFarmRewardsUnsigned creates a transaction invoking `claimFarmRewards` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ClaimFarmRewardsUnsigned(account util.Uint160, farmID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "claimFarmRewards", nil, account, farmID)
}

// CreateFarm creates a transaction invoking `createFarm` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CreateFarm(name string, rate *big.Int, startTime *big.Int, endTime *big.Int, minDeposit *big.Int, maxDeposit *big.Int, rewardPool *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "createFarm", name, rate, startTime, endTime, minDeposit, maxDeposit, rewardPool)
}

// CreateFarmTransaction creates a transaction invoking `createFarm` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CreateFarmTransaction(name string, rate *big.Int, startTime *big.Int, endTime *big.Int, minDeposit *big.Int, maxDeposit *big.Int, rewardPool *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "createFarm", name, rate, startTime, endTime, minDeposit, maxDeposit, rewardPool)
}

// CreateFarmUnsigned creates a transaction invoking `createFarm` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CreateFarmUnsigned(name string, rate *big.Int, startTime *big.Int, endTime *big.Int, minDeposit *big.Int, maxDeposit *big.Int, rewardPool *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "createFarm", nil, name, rate, startTime, endTime, minDeposit, maxDeposit, rewardPool)
}

// DepositLP creates a transaction invoking `depositLP` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) DepositLP(account util.Uint160, farmID *big.Int, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "depositLP", account, farmID, amount)
}

// DepositLPTransaction creates a transaction invoking `depositLP` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) DepositLPTransaction(account util.Uint160, farmID *big.Int, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "depositLP", account, farmID, amount)
}

// DepositLPUnsigned creates a transaction invoking `depositLP` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) DepositLPUnsigned(account util.Uint160, farmID *big.Int, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "depositLP", nil, account, farmID, amount)
}

// EmergencyWithdraw creates a transaction invoking `emergencyWithdraw` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) EmergencyWithdraw(account util.Uint160, farmID *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "emergencyWithdraw", account, farmID)
}

// EmergencyWithdrawTransaction creates a transaction invoking `emergencyWithdraw` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) EmergencyWithdrawTransaction(account util.Uint160, farmID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "emergencyWithdraw", account, farmID)
}

// EmergencyWithdrawUnsigned creates a transaction invoking `emergencyWithdraw` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) EmergencyWithdrawUnsigned(account util.Uint160, farmID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "emergencyWithdraw", nil, account, farmID)
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

// UpdateFarm creates a transaction invoking `updateFarm` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateFarm(id *big.Int, rate *big.Int, minDeposit *big.Int, maxDeposit *big.Int, active bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateFarm", id, rate, minDeposit, maxDeposit, active)
}

// UpdateFarmTransaction creates a transaction invoking `updateFarm` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateFarmTransaction(id *big.Int, rate *big.Int, minDeposit *big.Int, maxDeposit *big.Int, active bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateFarm", id, rate, minDeposit, maxDeposit, active)
}

// UpdateFarmUnsigned creates a transaction invoking `updateFarm` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateFarmUnsigned(id *big.Int, rate *big.Int, minDeposit *big.Int, maxDeposit *big.Int, active bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateFarm", nil, id, rate, minDeposit, maxDeposit, active)
}

// WithdrawLP creates a transaction invoking `withdrawLP` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) WithdrawLP(account util.Uint160, farmID *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "withdrawLP", account, farmID)
}

// WithdrawLPTransaction creates a transaction invoking `withdrawLP` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) WithdrawLPTransaction(account util.Uint160, farmID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "withdrawLP", account, farmID)
}

// WithdrawLPUnsigned creates a transaction invoking `withdrawLP` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) WithdrawLPUnsigned(account util.Uint160, farmID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "withdrawLP", nil, account, farmID)
}

// itemToFarmingFarm converts stack item into *FarmingFarm.
func itemToFarmingFarm(item stackitem.Item, err error) (*FarmingFarm, error) {
	if err != nil {
		return nil, err
	}
	var res = new(FarmingFarm)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of FarmingFarm from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *FarmingFarm) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 9 {
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
	res.Rate, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Rate: %w", err)
	}

	index++
	res.StartTime, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field StartTime: %w", err)
	}

	index++
	res.EndTime, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field EndTime: %w", err)
	}

	index++
	res.MinDeposit, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field MinDeposit: %w", err)
	}

	index++
	res.MaxDeposit, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field MaxDeposit: %w", err)
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

// itemToFarmingPosition converts stack item into *FarmingPosition.
func itemToFarmingPosition(item stackitem.Item, err error) (*FarmingPosition, error) {
	if err != nil {
		return nil, err
	}
	var res = new(FarmingPosition)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of FarmingPosition from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *FarmingPosition) FromStackItem(item stackitem.Item) error {
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

// FarmCreatedEventsFromApplicationLog retrieves a set of all emitted events
// with "FarmCreated" name from the provided [result.ApplicationLog].
func FarmCreatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*FarmCreatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*FarmCreatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "FarmCreated" {
				continue
			}
			event := new(FarmCreatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize FarmCreatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to FarmCreatedEvent or
// returns an error if it's not possible to do to so.
func (e *FarmCreatedEvent) FromStackItem(item *stackitem.Array) error {
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

// FarmUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "FarmUpdated" name from the provided [result.ApplicationLog].
func FarmUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*FarmUpdatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*FarmUpdatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "FarmUpdated" {
				continue
			}
			event := new(FarmUpdatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize FarmUpdatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to FarmUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *FarmUpdatedEvent) FromStackItem(item *stackitem.Array) error {
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

// DepositEventsFromApplicationLog retrieves a set of all emitted events
// with "Deposit" name from the provided [result.ApplicationLog].
func DepositEventsFromApplicationLog(log *result.ApplicationLog) ([]*DepositEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*DepositEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Deposit" {
				continue
			}
			event := new(DepositEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize DepositEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to DepositEvent or
// returns an error if it's not possible to do to so.
func (e *DepositEvent) FromStackItem(item *stackitem.Array) error {
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
	e.FarmID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field FarmID: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// WithdrawEventsFromApplicationLog retrieves a set of all emitted events
// with "Withdraw" name from the provided [result.ApplicationLog].
func WithdrawEventsFromApplicationLog(log *result.ApplicationLog) ([]*WithdrawEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*WithdrawEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Withdraw" {
				continue
			}
			event := new(WithdrawEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize WithdrawEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to WithdrawEvent or
// returns an error if it's not possible to do to so.
func (e *WithdrawEvent) FromStackItem(item *stackitem.Array) error {
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
	e.FarmID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field FarmID: %w", err)
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
	e.FarmID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field FarmID: %w", err)
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
	e.FarmID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field FarmID: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// Package reputation contains RPC wrappers for Nexsosphere Reputation contract.
package reputation

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

// ReputationRecord is a contract-specific reputation.Record type used by its methods.
type ReputationRecord struct {
	CredentialScore *big.Int
	AttestationScore *big.Int
	StakingScore *big.Int
	ParticipationScore *big.Int
	TimeScore *big.Int
	TotalScore *big.Int
	LastUpdate *big.Int
	FirstActivity *big.Int
}

// ReputationAttestation is a contract-specific reputation.Attestation type used by its methods.
type ReputationAttestation struct {
	Attester util.Uint160
	Subject util.Uint160
	Weight *big.Int
	Timestamp *big.Int
	Metadata []byte
	Revoked bool
}

// ReputationBadge is a contract-specific reputation.Badge type used by its methods.
type ReputationBadge struct {
	Name string
	Description string
	Requirement *big.Int
	Active bool
}

// ReputationWeights is a contract-specific reputation.Weights type used by its methods.
type ReputationWeights struct {
	Credential *big.Int
	Attestation *big.Int
	Staking *big.Int
	Participation *big.Int
	Time *big.Int
}

// ReputationUpdatedEvent represents "ReputationUpdated" event emitted by the contract.
type ReputationUpdatedEvent struct {
	Account util.Uint160
	Total *big.Int
}

// AttestEvent represents "Attest" event emitted by the contract.
type AttestEvent struct {
	ID util.Uint256
	Attester util.Uint160
	Subject util.Uint160
	Weight *big.Int
}

// RevokeEvent represents "Revoke" event emitted by the contract.
type RevokeEvent struct {
	ID util.Uint256
	Attester util.Uint160
	Subject util.Uint160
}

// WeightsUpdatedEvent represents "WeightsUpdated" event emitted by the contract.
type WeightsUpdatedEvent struct {
	Credential *big.Int
	Attestation *big.Int
	Staking *big.Int
	Participation *big.Int
	Time *big.Int
}

// BadgeCreatedEvent represents "BadgeCreated" event emitted by the contract.
type BadgeCreatedEvent struct {
	ID *big.Int
	Name string
}

// BadgeAwardedEvent represents "BadgeAwarded" event emitted by the contract.
type BadgeAwardedEvent struct {
	Account util.Uint160
	ID *big.Int
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

// AttestationsGivenBy invokes `attestationsGivenBy` method of contract.
func (c *ContractReader) AttestationsGivenBy(attester util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "attestationsGivenBy", attester))
}

// BadgeCount invokes `badgeCount` method of contract.
func (c *ContractReader) BadgeCount() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "badgeCount"))
}

// DecayRate invokes `decayRate` method of contract.
func (c *ContractReader) DecayRate() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "decayRate"))
}

// GetAttestation invokes `getAttestation` method of contract.
func (c *ContractReader) GetAttestation(id util.Uint256) (*ReputationAttestation, error) {
	return itemToReputationAttestation(unwrap.Item(c.invoker.Call(c.hash, "getAttestation", id)))
}

// GetBadge invokes `getBadge` method of contract.
func (c *ContractReader) GetBadge(id *big.Int) (*ReputationBadge, error) {
	return itemToReputationBadge(unwrap.Item(c.invoker.Call(c.hash, "getBadge", id)))
}

// GetUserBadges invokes `getUserBadges` method of contract.
func (c *ContractReader) GetUserBadges(account util.Uint160) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.Call(c.hash, "getUserBadges", account))
}

// GetUserReputation invokes `getUserReputation` method of contract.
func (c *ContractReader) GetUserReputation(account util.Uint160) (*ReputationRecord, error) {
	return itemToReputationRecord(unwrap.Item(c.invoker.Call(c.hash, "getUserReputation", account)))
}

// GetWeights invokes `getWeights` method of contract.
func (c *ContractReader) GetWeights() (*ReputationWeights, error) {
	return itemToReputationWeights(unwrap.Item(c.invoker.Call(c.hash, "getWeights")))
}

// IsPaused invokes `isPaused` method of contract.
func (c *ContractReader) IsPaused() (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isPaused"))
}

// IterateAttestationsOf invokes `iterateAttestationsOf` method of contract.
func (c *ContractReader) IterateAttestationsOf(subject util.Uint160) (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "iterateAttestationsOf", subject))
}

// IterateAttestationsOfExpanded is similar to IterateAttestationsOf (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) IterateAttestationsOfExpanded(subject util.Uint160, _numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "iterateAttestationsOf", _numOfIteratorItems, subject))
}

// MultiplierOf invokes `multiplierOf` method of contract.
func (c *ContractReader) MultiplierOf(account util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "multiplierOf", account))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// Attest creates a transaction invoking `attest` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Attest(attester util.Uint160, subject util.Uint160, weight *big.Int, metadata []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "attest", attester, subject, weight, metadata)
}

// AttestTransaction creates a transaction invoking `attest` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AttestTransaction(attester util.Uint160, subject util.Uint160, weight *big.Int, metadata []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "attest", attester, subject, weight, metadata)
}

// AttestUnsigned creates a transaction invoking `attest` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AttestUnsigned(attester util.Uint160, subject util.Uint160, weight *big.Int, metadata []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "attest", nil, attester, subject, weight, metadata)
}

// AwardBadge creates a transaction invoking `awardBadge` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AwardBadge(account util.Uint160, badgeID *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "awardBadge", account, badgeID)
}

// AwardBadgeTransaction creates a transaction invoking `awardBadge` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AwardBadgeTransaction(account util.Uint160, badgeID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "awardBadge", account, badgeID)
}

// AwardBadgeUnsigned creates a transaction invoking `awardBadge` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AwardBadgeUnsigned(account util.Uint160, badgeID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "awardBadge", nil, account, badgeID)
}

// CreateBadge creates a transaction invoking `createBadge` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CreateBadge(name string, description string, requirement *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "createBadge", name, description, requirement)
}

// CreateBadgeTransaction creates a transaction invoking `createBadge` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CreateBadgeTransaction(name string, description string, requirement *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "createBadge", name, description, requirement)
}

// CreateBadgeUnsigned creates a transaction invoking `createBadge` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CreateBadgeUnsigned(name string, description string, requirement *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "createBadge", nil, name, description, requirement)
}

// RecomputeReputation creates a transaction invoking `recomputeReputation` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RecomputeReputation(account util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "recomputeReputation", account)
}

// RecomputeReputationTransaction creates a transaction invoking `recomputeReputation` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RecomputeReputationTransaction(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "recomputeReputation", account)
}

// RecomputeReputationUnsigned creates a transaction invoking `recomputeReputation` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RecomputeReputationUnsigned(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "recomputeReputation", nil, account)
}

// RecordActivity creates a transaction invoking `recordActivity` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RecordActivity(account util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "recordActivity", account)
}

// RecordActivityTransaction creates a transaction invoking `recordActivity` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RecordActivityTransaction(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "recordActivity", account)
}

// RecordActivityUnsigned creates a transaction invoking `recordActivity` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RecordActivityUnsigned(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "recordActivity", nil, account)
}

// Revoke creates a transaction invoking `revoke` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Revoke(id util.Uint256) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "revoke", id)
}

// RevokeTransaction creates a transaction invoking `revoke` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RevokeTransaction(id util.Uint256) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "revoke", id)
}

// RevokeUnsigned creates a transaction invoking `revoke` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RevokeUnsigned(id util.Uint256) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "revoke", nil, id)
}

// SetDecayRate creates a transaction invoking `setDecayRate` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetDecayRate(rateBp *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setDecayRate", rateBp)
}

// SetDecayRateTransaction creates a transaction invoking `setDecayRate` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetDecayRateTransaction(rateBp *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setDecayRate", rateBp)
}

// SetDecayRateUnsigned creates a transaction invoking `setDecayRate` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetDecayRateUnsigned(rateBp *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setDecayRate", nil, rateBp)
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

// UpdateBadge creates a transaction invoking `updateBadge` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateBadge(id *big.Int, requirement *big.Int, active bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateBadge", id, requirement, active)
}

// UpdateBadgeTransaction creates a transaction invoking `updateBadge` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateBadgeTransaction(id *big.Int, requirement *big.Int, active bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateBadge", id, requirement, active)
}

// UpdateBadgeUnsigned creates a transaction invoking `updateBadge` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateBadgeUnsigned(id *big.Int, requirement *big.Int, active bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateBadge", nil, id, requirement, active)
}

// UpdateWeights creates a transaction invoking `updateWeights` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateWeights(credential *big.Int, attestation *big.Int, staking *big.Int, participation *big.Int, time *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateWeights", credential, attestation, staking, participation, time)
}

// UpdateWeightsTransaction creates a transaction invoking `updateWeights` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateWeightsTransaction(credential *big.Int, attestation *big.Int, staking *big.Int, participation *big.Int, time *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateWeights", credential, attestation, staking, participation, time)
}

// UpdateWeightsUnsigned creates a transaction invoking `updateWeights` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateWeightsUnsigned(credential *big.Int, attestation *big.Int, staking *big.Int, participation *big.Int, time *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateWeights", nil, credential, attestation, staking, participation, time)
}

// itemToReputationRecord converts stack item into *ReputationRecord.
func itemToReputationRecord(item stackitem.Item, err error) (*ReputationRecord, error) {
	if err != nil {
		return nil, err
	}
	var res = new(ReputationRecord)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of ReputationRecord from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *ReputationRecord) FromStackItem(item stackitem.Item) error {
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
	res.CredentialScore, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field CredentialScore: %w", err)
	}

	index++
	res.AttestationScore, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field AttestationScore: %w", err)
	}

	index++
	res.StakingScore, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field StakingScore: %w", err)
	}

	index++
	res.ParticipationScore, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ParticipationScore: %w", err)
	}

	index++
	res.TimeScore, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TimeScore: %w", err)
	}

	index++
	res.TotalScore, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TotalScore: %w", err)
	}

	index++
	res.LastUpdate, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field LastUpdate: %w", err)
	}

	index++
	res.FirstActivity, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field FirstActivity: %w", err)
	}

	return nil
}

// itemToReputationAttestation converts stack item into *ReputationAttestation.
func itemToReputationAttestation(item stackitem.Item, err error) (*ReputationAttestation, error) {
	if err != nil {
		return nil, err
	}
	var res = new(ReputationAttestation)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of ReputationAttestation from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *ReputationAttestation) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 6 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Attester, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Attester: %w", err)
	}

	index++
	res.Subject, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Subject: %w", err)
	}

	index++
	res.Weight, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Weight: %w", err)
	}

	index++
	res.Timestamp, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Timestamp: %w", err)
	}

	index++
	res.Metadata, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field Metadata: %w", err)
	}

	index++
	res.Revoked, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Revoked: %w", err)
	}

	return nil
}

// itemToReputationBadge converts stack item into *ReputationBadge.
func itemToReputationBadge(item stackitem.Item, err error) (*ReputationBadge, error) {
	if err != nil {
		return nil, err
	}
	var res = new(ReputationBadge)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of ReputationBadge from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *ReputationBadge) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
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
	res.Description, err = func (item stackitem.Item) (string, error) {
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
		return fmt.Errorf("field Description: %w", err)
	}

	index++
	res.Requirement, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Requirement: %w", err)
	}

	index++
	res.Active, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Active: %w", err)
	}

	return nil
}

// itemToReputationWeights converts stack item into *ReputationWeights.
func itemToReputationWeights(item stackitem.Item, err error) (*ReputationWeights, error) {
	if err != nil {
		return nil, err
	}
	var res = new(ReputationWeights)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of ReputationWeights from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *ReputationWeights) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Credential, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Credential: %w", err)
	}

	index++
	res.Attestation, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Attestation: %w", err)
	}

	index++
	res.Staking, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Staking: %w", err)
	}

	index++
	res.Participation, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Participation: %w", err)
	}

	index++
	res.Time, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Time: %w", err)
	}

	return nil
}

// ReputationUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "ReputationUpdated" name from the provided [result.ApplicationLog].
func ReputationUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ReputationUpdatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ReputationUpdatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ReputationUpdated" {
				continue
			}
			event := new(ReputationUpdatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ReputationUpdatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ReputationUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *ReputationUpdatedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.Total, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Total: %w", err)
	}

	return nil
}

// AttestEventsFromApplicationLog retrieves a set of all emitted events
// with "Attest" name from the provided [result.ApplicationLog].
func AttestEventsFromApplicationLog(log *result.ApplicationLog) ([]*AttestEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*AttestEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Attest" {
				continue
			}
			event := new(AttestEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize AttestEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to AttestEvent or
// returns an error if it's not possible to do to so.
func (e *AttestEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ID, err = func (item stackitem.Item) (util.Uint256, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint256{}, err
		}
		u, err := util.Uint256DecodeBytesBE(b)
		if err != nil {
			return util.Uint256{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.Attester, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Attester: %w", err)
	}

	index++
	e.Subject, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Subject: %w", err)
	}

	index++
	e.Weight, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Weight: %w", err)
	}

	return nil
}

// RevokeEventsFromApplicationLog retrieves a set of all emitted events
// with "Revoke" name from the provided [result.ApplicationLog].
func RevokeEventsFromApplicationLog(log *result.ApplicationLog) ([]*RevokeEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RevokeEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Revoke" {
				continue
			}
			event := new(RevokeEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RevokeEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RevokeEvent or
// returns an error if it's not possible to do to so.
func (e *RevokeEvent) FromStackItem(item *stackitem.Array) error {
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
	e.ID, err = func (item stackitem.Item) (util.Uint256, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint256{}, err
		}
		u, err := util.Uint256DecodeBytesBE(b)
		if err != nil {
			return util.Uint256{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.Attester, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Attester: %w", err)
	}

	index++
	e.Subject, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Subject: %w", err)
	}

	return nil
}

// WeightsUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "WeightsUpdated" name from the provided [result.ApplicationLog].
func WeightsUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*WeightsUpdatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*WeightsUpdatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "WeightsUpdated" {
				continue
			}
			event := new(WeightsUpdatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize WeightsUpdatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to WeightsUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *WeightsUpdatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Credential, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Credential: %w", err)
	}

	index++
	e.Attestation, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Attestation: %w", err)
	}

	index++
	e.Staking, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Staking: %w", err)
	}

	index++
	e.Participation, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Participation: %w", err)
	}

	index++
	e.Time, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Time: %w", err)
	}

	return nil
}

// BadgeCreatedEventsFromApplicationLog retrieves a set of all emitted events
// with "BadgeCreated" name from the provided [result.ApplicationLog].
func BadgeCreatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*BadgeCreatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*BadgeCreatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "BadgeCreated" {
				continue
			}
			event := new(BadgeCreatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize BadgeCreatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to BadgeCreatedEvent or
// returns an error if it's not possible to do to so.
func (e *BadgeCreatedEvent) FromStackItem(item *stackitem.Array) error {
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

// BadgeAwardedEventsFromApplicationLog retrieves a set of all emitted events
// with "BadgeAwarded" name from the provided [result.ApplicationLog].
func BadgeAwardedEventsFromApplicationLog(log *result.ApplicationLog) ([]*BadgeAwardedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*BadgeAwardedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "BadgeAwarded" {
				continue
			}
			event := new(BadgeAwardedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize BadgeAwardedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to BadgeAwardedEvent or
// returns an error if it's not possible to do to so.
func (e *BadgeAwardedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	return nil
}

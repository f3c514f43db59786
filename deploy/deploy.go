// Package deploy provides the procedure deploying the rewards contract suite
// to a Neo blockchain network.
package deploy

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"go.uber.org/zap"

	"github.com/Nexsosphere-Technologies/rewards-contract/contracts"
)

// Blockchain groups services provided by particular Neo blockchain network
// that are required for the suite deployment.
type Blockchain interface {
	// RPCActor groups functions needed to compose and send transactions to
	// the blockchain.
	actor.RPCActor

	// GetContractStateByHash returns network state of the smart contract
	// by its address. GetContractStateByHash returns an error with
	// 'Unknown contract' substring if the requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// Prm groups all parameters of the rewards suite deployment procedure.
type Prm struct {
	// Writes progress of the procedure. Optional, progress is not logged
	// when unset.
	Logger *zap.Logger

	// Particular Neo blockchain instance to be used as the target network.
	Blockchain Blockchain

	// Account of the suite administrator. Signs all deployment
	// transactions and becomes the admin of every deployed contract.
	LocalAccount *wallet.Account

	// Address of the NEP-17 token paying out rewards.
	TokenContract util.Uint160

	// Address of the credential registry the reputation contract consults.
	CredentialContract util.Uint160

	// Compiled contracts of the suite.
	Reputation contracts.Contract
	Staking    contracts.Contract
	Farming    contracts.Contract
}

// Addresses carries the addresses of the deployed suite contracts.
type Addresses struct {
	Reputation util.Uint160
	Staking    util.Uint160
	Farming    util.Uint160
}

// Deploy deploys the rewards contract suite to the Neo network represented
// by the given Prm.Blockchain. The procedure is idempotent: contracts
// already present on the chain are left as they are.
//
// Contract addresses depend only on the deployer account and the compiled
// artifacts, so all of them are computed up front and every contract
// receives its collaborators' addresses as deployment parameters, the
// circular references between the reputation contract and the yield
// contracts notwithstanding.
func Deploy(ctx context.Context, prm Prm) (Addresses, error) {
	var res Addresses

	if prm.Logger == nil {
		prm.Logger = zap.NewNop()
	}
	if prm.LocalAccount == nil {
		return res, errors.New("missing deployer account")
	}
	if prm.TokenContract.Equals(util.Uint160{}) {
		return res, errors.New("missing reward token contract")
	}

	deployer := prm.LocalAccount.ScriptHash()
	res = SuiteAddresses(deployer, prm)

	act, err := actor.NewSimple(prm.Blockchain, prm.LocalAccount)
	if err != nil {
		return res, fmt.Errorf("init transaction sender from the local account: %w", err)
	}

	mgmt := management.New(act)

	for _, c := range []struct {
		name string
		ctr  contracts.Contract
		hash util.Uint160
		data []any
	}{
		{"reputation", prm.Reputation, res.Reputation,
			[]any{deployer, prm.CredentialContract, res.Staking, res.Farming}},
		{"staking", prm.Staking, res.Staking,
			[]any{deployer, prm.TokenContract, res.Reputation}},
		{"farming", prm.Farming, res.Farming,
			[]any{deployer, prm.TokenContract, res.Reputation}},
	} {
		select {
		case <-ctx.Done():
			return res, fmt.Errorf("deployment interrupted: %w", ctx.Err())
		default:
		}

		err = deployContract(prm, act, mgmt, c.name, c.ctr, c.hash, c.data)
		if err != nil {
			return res, fmt.Errorf("deploy %s contract: %w", c.name, err)
		}
	}

	return res, nil
}

// SuiteAddresses computes the addresses the suite contracts get once
// deployed by the given account.
func SuiteAddresses(deployer util.Uint160, prm Prm) Addresses {
	return Addresses{
		Reputation: state.CreateContractHash(deployer, prm.Reputation.NEF.Checksum, prm.Reputation.Manifest.Name),
		Staking:    state.CreateContractHash(deployer, prm.Staking.NEF.Checksum, prm.Staking.Manifest.Name),
		Farming:    state.CreateContractHash(deployer, prm.Farming.NEF.Checksum, prm.Farming.Manifest.Name),
	}
}

func deployContract(prm Prm, act *actor.Actor, mgmt *management.Contract,
	name string, ctr contracts.Contract, hash util.Uint160, data []any) error {
	l := prm.Logger.With(zap.String("contract", name), zap.Stringer("address", hash))

	onChain, err := prm.Blockchain.GetContractStateByHash(hash)
	if err != nil && !strings.Contains(err.Error(), "Unknown contract") {
		return fmt.Errorf("read on-chain state: %w", err)
	}
	if onChain != nil {
		l.Info("contract is already on the chain, skip")
		return nil
	}

	l.Info("contract is missing on the chain, deploying...")

	txHash, vub, err := mgmt.Deploy(&ctr.NEF, &ctr.Manifest, data)
	if err != nil {
		return fmt.Errorf("send deployment transaction: %w", err)
	}

	aer, err := act.Wait(txHash, vub, nil)
	if err != nil {
		return fmt.Errorf("wait for deployment transaction %s: %w", txHash.StringLE(), err)
	}
	if aer.VMState != vmstate.Halt {
		return fmt.Errorf("deployment transaction %s failed: %s", txHash.StringLE(), aer.FaultException)
	}

	l.Info("contract successfully deployed", zap.Stringer("tx", txHash))
	return nil
}

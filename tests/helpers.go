package tests

import (
	"math/rand"
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/core/native/nativenames"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

const (
	stakingPath    = "../contracts/staking"
	farmingPath    = "../contracts/farming"
	reputationPath = "../contracts/reputation"
	credOraclePath = "../internal/testcontracts/credoracle"
)

// rewardsSuite is the fully wired contract suite deployed on a fresh chain.
// The committee account doubles as the suite administrator and the reward
// token is native GAS.
type rewardsSuite struct {
	executor *neotest.Executor

	staking    *neotest.ContractInvoker
	farming    *neotest.ContractInvoker
	reputation *neotest.ContractInvoker
	credOracle *neotest.ContractInvoker

	stakingHash    util.Uint160
	farmingHash    util.Uint160
	reputationHash util.Uint160
	gasHash        util.Uint160
}

func iteratorToArray(iter *storage.Iterator) []stackitem.Item {
	stackItems := make([]stackitem.Item, 0)
	for iter.Next() {
		stackItems = append(stackItems, iter.Value())
	}
	return stackItems
}

func randomBytes(n int) []byte {
	a := make([]byte, n)
	rand.Read(a) //nolint:staticcheck // SA1019: deterministic bytes are fine here
	return a
}

func compileContract(t *testing.T, e *neotest.Executor, ctrPath string) *neotest.Contract {
	return neotest.CompileFile(t, e.CommitteeHash, ctrPath, path.Join(ctrPath, "config.yml"))
}

// newRewardsSuite compiles and deploys the whole suite. Contract hashes are
// known before deployment, which resolves the circular wiring between the
// reputation contract and the yield contracts: every contract receives its
// collaborators' addresses as deployment parameters.
func newRewardsSuite(t *testing.T) *rewardsSuite {
	bc, acc := chain.NewSingle(t)
	e := neotest.NewExecutor(t, bc, acc, acc)

	stakingCtr := compileContract(t, e, stakingPath)
	farmingCtr := compileContract(t, e, farmingPath)
	reputationCtr := compileContract(t, e, reputationPath)
	credOracleCtr := compileContract(t, e, credOraclePath)

	gasHash := e.NativeHash(t, nativenames.Gas)

	e.DeployContract(t, credOracleCtr, nil)
	e.DeployContract(t, reputationCtr, []any{
		e.CommitteeHash, credOracleCtr.Hash, stakingCtr.Hash, farmingCtr.Hash,
	})
	e.DeployContract(t, stakingCtr, []any{
		e.CommitteeHash, gasHash, reputationCtr.Hash,
	})
	e.DeployContract(t, farmingCtr, []any{
		e.CommitteeHash, gasHash, reputationCtr.Hash,
	})

	return &rewardsSuite{
		executor:       e,
		staking:        e.CommitteeInvoker(stakingCtr.Hash),
		farming:        e.CommitteeInvoker(farmingCtr.Hash),
		reputation:     e.CommitteeInvoker(reputationCtr.Hash),
		credOracle:     e.CommitteeInvoker(credOracleCtr.Hash),
		stakingHash:    stakingCtr.Hash,
		farmingHash:    farmingCtr.Hash,
		reputationHash: reputationCtr.Hash,
		gasHash:        gasHash,
	}
}

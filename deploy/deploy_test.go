package deploy

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"

	"github.com/Nexsosphere-Technologies/rewards-contract/contracts"
)

func anyContract(t *testing.T, name string) contracts.Contract {
	ne, err := nef.NewFile([]byte(name))
	require.NoError(t, err)

	return contracts.Contract{
		NEF:      *ne,
		Manifest: *manifest.NewManifest(name),
	}
}

func TestSuiteAddresses(t *testing.T) {
	prm := Prm{
		Reputation: anyContract(t, "Nexsosphere Reputation"),
		Staking:    anyContract(t, "Nexsosphere Staking"),
		Farming:    anyContract(t, "Nexsosphere Farming"),
	}

	deployer := util.Uint160{1, 2, 3}

	a := SuiteAddresses(deployer, prm)
	require.NotEqual(t, a.Reputation, a.Staking)
	require.NotEqual(t, a.Staking, a.Farming)

	// addresses are a pure function of the deployer and the artifacts
	require.Equal(t, a, SuiteAddresses(deployer, prm))

	b := SuiteAddresses(util.Uint160{4, 5, 6}, prm)
	require.NotEqual(t, a.Reputation, b.Reputation)
}

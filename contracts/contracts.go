/*
Package contracts provides access to compiled rewards suite contracts.
*/
package contracts

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/nspcc-dev/neo-go/pkg/io"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
)

const (
	stakingDir    = "staking"
	farmingDir    = "farming"
	reputationDir = "reputation"

	nefName      = "contract.nef"
	manifestName = "manifest.json"
)

// Contract groups information about a compiled Neo contract.
type Contract struct {
	NEF      nef.File
	Manifest manifest.Manifest
}

var (
	errInvalidNEF      = errors.New("invalid NEF")
	errInvalidManifest = errors.New("invalid manifest")

	suiteContracts = []string{
		reputationDir,
		stakingDir,
		farmingDir,
	}
)

// GetSuite returns the rewards suite contracts read from the given
// filesystem, usually the contracts directory populated by the build. They
// are returned in the order they are supposed to be deployed starting from
// the reputation contract, although any order works: the suite is wired
// through hashes known before deployment.
func GetSuite(fsys fs.FS) ([]Contract, error) {
	var res = make([]Contract, 0, len(suiteContracts))

	for i := range suiteContracts {
		c, err := readContractFromDir(fsys, suiteContracts[i])
		if err != nil {
			return nil, fmt.Errorf("read contract %s: %w", suiteContracts[i], err)
		}

		res = append(res, c)
	}

	return res, nil
}

func readContractFromDir(fsys fs.FS, dir string) (Contract, error) {
	var c Contract

	// fs.FS always uses "/", even on Windows, so filepath.Join() is not
	// applicable.
	fNEF, err := fsys.Open(dir + "/" + nefName)
	if err != nil {
		return c, fmt.Errorf("open NEF: %w", err)
	}
	defer fNEF.Close()

	fManifest, err := fsys.Open(dir + "/" + manifestName)
	if err != nil {
		return c, fmt.Errorf("open manifest: %w", err)
	}
	defer fManifest.Close()

	bReader := io.NewBinReaderFromIO(fNEF)
	c.NEF.DecodeBinary(bReader)
	if bReader.Err != nil {
		return c, fmt.Errorf("%w: %w", errInvalidNEF, bReader.Err)
	}

	err = json.NewDecoder(fManifest).Decode(&c.Manifest)
	if err != nil {
		return c, fmt.Errorf("%w: %w", errInvalidManifest, err)
	}

	return c, nil
}

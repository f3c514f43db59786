// Command dump saves storage of the deployed rewards suite contracts into a
// local JSON file for inspection and migration testing.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

type storageItem struct {
	Key   string `json:"key"`   // base58
	Value string `json:"value"` // base58
}

type contractDump struct {
	Name    string        `json:"name"`
	Hash    string        `json:"hash"`
	Storage []storageItem `json:"storage"`
}

type chainDump struct {
	Label     string         `json:"label"`
	Block     uint32         `json:"block"`
	Contracts []contractDump `json:"contracts"`
}

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	chainLabel := flag.String("label", "", "Label of the blockchain environment (e.g. 'testnet')")
	stakingAddr := flag.String("staking", "", "LE address of the staking contract")
	farmingAddr := flag.String("farming", "", "LE address of the farming contract")
	reputationAddr := flag.String("reputation", "", "LE address of the reputation contract")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *chainLabel == "":
		log.Fatal("missing blockchain label")
	}

	const rootDir = "testdata"

	err := os.MkdirAll(rootDir, 0700)
	if err != nil {
		log.Fatal(fmt.Errorf("create root dir: %w", err))
	}

	contracts := map[string]string{
		"staking":    *stakingAddr,
		"farming":    *farmingAddr,
		"reputation": *reputationAddr,
	}

	err = _dump(*neoRPCEndpoint, rootDir, *chainLabel, contracts)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("rewards suite contracts are successfully dumped to '%s/'\n", rootDir)
}

func _dump(neoBlockchainRPCEndpoint, rootDir, label string, contracts map[string]string) error {
	b, err := newRemoteBlockChain(neoBlockchainRPCEndpoint)
	if err != nil {
		return fmt.Errorf("init remote blockchain: %w", err)
	}

	defer b.close()

	res := chainDump{
		Label: label,
		Block: b.currentBlock,
	}

	for _, name := range []string{"staking", "farming", "reputation"} {
		addr := contracts[name]
		if addr == "" {
			continue
		}

		log.Printf("Processing contract '%s'...\n", name)

		h, err := util.Uint160DecodeStringLE(addr)
		if err != nil {
			return fmt.Errorf("decode '%s' contract address: %w", name, err)
		}

		c := contractDump{
			Name: name,
			Hash: h.StringLE(),
		}

		err = b.iterateContractStorage(h, func(key, value []byte) error {
			c.Storage = append(c.Storage, storageItem{
				Key:   base58.Encode(key),
				Value: base58.Encode(value),
			})
			return nil
		})
		if err != nil {
			return fmt.Errorf("iterate '%s' contract storage: %w", name, err)
		}

		res.Contracts = append(res.Contracts, c)
	}

	if len(res.Contracts) == 0 {
		return fmt.Errorf("no contract addresses given")
	}

	f, err := os.Create(filepath.Join(rootDir, label+".json"))
	if err != nil {
		return fmt.Errorf("create dump file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", " ")

	err = enc.Encode(res)
	if err != nil {
		return fmt.Errorf("encode dump: %w", err)
	}

	return nil
}

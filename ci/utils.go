//go:build !not_ci

package ci

import (
	"encoding/json"
	"flag"
	"testing"

	ac "github.com/cordialsys/addrcheck"
	"github.com/sirupsen/logrus"
)

var (
	chain   string
	address string
)

// Funded mainnet addresses used when --address is not given
var knownAddresses = map[ac.ChainType]ac.Address{
	ac.Bitcoin:     "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa",
	ac.Ethereum:    "0xde0B295669a9FD93d5F28D9Ec85E40f4cb697BAe",
	ac.Litecoin:    "LaMT348PWRnrqeeWArpwQPbuanpXDZGEUz",
	ac.Dogecoin:    "DH5yaieqoZN36fDVciNyRueRGvGLR3mr7L",
	ac.BitcoinCash: "bitcoincash:qpm2qsznhks23z7629mms6s4cwef74vcwvy22gdx6a",
}

func init() {
	flag.StringVar(&chain, "chain", "", "Chain to query")
	flag.StringVar(&address, "address", "", "Address to query, defaults to a known address of the chain")

	logrus.SetLevel(logrus.DebugLevel)
}

func validateCLIInputs(t *testing.T) (ac.ChainType, ac.Address) {
	if chain == "" {
		t.Fatal("--chain is required")
	}
	chainType, err := ac.ParseChainType(chain)
	if err != nil {
		t.Fatal(err)
	}
	if address != "" {
		return chainType, ac.Address(address)
	}
	return chainType, knownAddresses[chainType]
}

func asJson(data any) string {
	bz, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		panic(err)
	}
	return string(bz)
}

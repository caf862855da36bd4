package drivers

import (
	ac "github.com/cordialsys/addrcheck"
	xclient "github.com/cordialsys/addrcheck/client"
	"github.com/cordialsys/addrcheck/client/blockchair"
	"github.com/cordialsys/addrcheck/client/blockchaininfo"
	"github.com/cordialsys/addrcheck/client/blockcypher"
	"github.com/cordialsys/addrcheck/client/errors"
	"github.com/cordialsys/addrcheck/client/etherscan"
)

// NewBalanceClient creates the client of the explorer the chain is configured with.
func NewBalanceClient(cfg *ac.ChainClientConfig) (xclient.BalanceClient, error) {
	switch cfg.Provider {
	case ac.BlockchainInfo:
		return blockchaininfo.NewClient(cfg)
	case ac.Etherscan:
		return etherscan.NewClient(cfg)
	case ac.Blockcypher:
		return blockcypher.NewClient(cfg)
	case ac.Blockchair:
		return blockchair.NewBlockchairClient(cfg)
	}
	return nil, errors.Unsupportedf("no balance client for provider %q (chain %s)", cfg.Provider, cfg.Chain)
}

// Providers that can serve a chain. All of the bitcoin-family explorers are generic,
// while etherscan only serves ethereum.
func SupportsChain(provider ac.Provider, chain ac.ChainType) bool {
	switch provider {
	case ac.BlockchainInfo:
		return chain == ac.Bitcoin
	case ac.Etherscan:
		return chain == ac.Ethereum
	case ac.Blockcypher:
		return chain == ac.Bitcoin || chain == ac.Litecoin || chain == ac.Dogecoin || chain == ac.Ethereum
	case ac.Blockchair:
		return chain.Valid()
	}
	return false
}

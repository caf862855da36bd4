package defaults

import (
	"github.com/cordialsys/addrcheck/codec/eip55"
	factoryconfig "github.com/cordialsys/addrcheck/factory/config"
	"github.com/cordialsys/addrcheck/factory/defaults/chains"
)

var Mainnet = factoryconfig.Config{
	EthereumChecksumHash: eip55.Keccak256,
	HttpTimeout:          factoryconfig.DefaultHttpTimeout,
	BalanceCacheTTL:      factoryconfig.DefaultBalanceCacheTTL,
	Chains:               chains.Mainnet,
}

package validator

import (
	ac "github.com/cordialsys/addrcheck"
	"github.com/cordialsys/addrcheck/chain/bitcoin"
	"github.com/cordialsys/addrcheck/chain/bitcoin/params"
	"github.com/cordialsys/addrcheck/chain/dogecoin"
	"github.com/cordialsys/addrcheck/chain/ethereum"
	"github.com/cordialsys/addrcheck/chain/litecoin"
	"github.com/cordialsys/addrcheck/codec/bech32"
	"github.com/sirupsen/logrus"
)

// Length of a 0x address
const ethereumAddressLength = 42

// DetectChain guesses the chain of an address from its shape, returning ac.Unknown if
// nothing matches. It does not validate the address.
//
// 1... and 3... addresses are reported as bitcoin even though bitcoin cash legacy
// addresses look the same.
func (v *Validator) DetectChain(address ac.Address) ac.ChainType {
	chain := detect(address.Normalize())
	logrus.WithField("chain", chain).Debug("detected chain")
	v.metrics.observeDetection(chain)
	return chain
}

func detect(address ac.Address) ac.ChainType {
	switch {
	case address.HasPrefix(ethereum.Prefix) && len(address) == ethereumAddressLength:
		return ac.Ethereum
	case address.HasPrefix(bitcoin.PrefixP2PKH), address.HasPrefix(bitcoin.PrefixP2SH):
		return ac.Bitcoin
	case address.HasPrefixFold(bitcoin.PrefixSegwit):
		return ac.Bitcoin
	case address.HasPrefix(litecoin.PrefixP2PKH), address.HasPrefix(litecoin.PrefixP2SH):
		return ac.Litecoin
	case address.HasPrefixFold(litecoin.PrefixSegwit):
		return ac.Litecoin
	case address.HasPrefixFold(params.BchCashAddrPrefix + string(bech32.CashAddrSeparator)), address.HasPrefix("q"):
		return ac.BitcoinCash
	case address.HasPrefix(dogecoin.Prefix):
		return ac.Dogecoin
	default:
		return ac.Unknown
	}
}

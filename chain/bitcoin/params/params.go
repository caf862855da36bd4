package params

import (
	"errors"

	"github.com/btcsuite/btcd/chaincfg"
	ac "github.com/cordialsys/addrcheck"
)

// Prefix of Bitcoin Cash CashAddr addresses on mainnet
const BchCashAddrPrefix = "bitcoincash"

// GetParams returns the mainnet parameters of a UTXO chain.
func GetParams(chain ac.ChainType) (*chaincfg.Params, error) {
	switch chain {
	case ac.Bitcoin, ac.BitcoinCash:
		// legacy bitcoin cash addresses share bitcoin's version bytes
		return &BtcParams, nil
	case ac.Litecoin:
		return &LtcParams, nil
	case ac.Dogecoin:
		return &DogeParams, nil
	}
	return nil, errors.New("unsupported utxo chain: " + string(chain))
}

// MustGetParams is GetParams for chains known at compile time.
func MustGetParams(chain ac.ChainType) *chaincfg.Params {
	params, err := GetParams(chain)
	if err != nil {
		panic(err)
	}
	return params
}

var BtcParams = chaincfg.MainNetParams

var LtcParams = chaincfg.Params{
	Name: "litecoin",
	Net:  0xfbc0b6db,

	// Address encoding magics
	PubKeyHashAddrID: 48,
	ScriptHashAddrID: 50,
	PrivateKeyID:     176,

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID: [4]byte{0x04, 0x88, 0xAD, 0xE4}, // starts with xprv
	HDPublicKeyID:  [4]byte{0x04, 0x88, 0xB2, 0x1E}, // starts with xpub

	Bech32HRPSegwit: "ltc",
}

var DogeParams = chaincfg.Params{
	Name: "dogecoin",
	Net:  0xc0c0c0c0,

	// Address encoding magics
	PubKeyHashAddrID: 30,
	ScriptHashAddrID: 22,
	PrivateKeyID:     158,

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID: [4]byte{0x02, 0xfa, 0xc3, 0x98}, // starts with xprv
	HDPublicKeyID:  [4]byte{0x02, 0xfa, 0xca, 0xfd}, // starts with xpub

	// Dogecoin does not support segwit, but we do not want to
	// collide with real addresses, so we specify it.
	Bech32HRPSegwit: "doge",
}

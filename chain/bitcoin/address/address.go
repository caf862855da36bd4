// Package address decodes the two address forms shared by bitcoin-family chains:
// Base58Check legacy addresses and Bech32/Bech32m segwit addresses.
package address

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/btcsuite/btcd/chaincfg"
	ac "github.com/cordialsys/addrcheck"
	"github.com/cordialsys/addrcheck/codec/base58check"
	addrbech32 "github.com/cordialsys/addrcheck/codec/bech32"
	"github.com/cordialsys/addrcheck/errors"
)

type AddressType string

const (
	P2PKH  AddressType = "p2pkh"
	P2SH   AddressType = "p2sh"
	P2WPKH AddressType = "p2wpkh"
	P2WSH  AddressType = "p2wsh"
	P2TR   AddressType = "p2tr"
	// future witness versions and program sizes
	WitnessUnknown AddressType = "witness_unknown"
)

const EncodingBase58Check = "base58check"

// Legacy base58 address length window. A 25 byte payload encodes to at most 34 characters.
const (
	MinLegacyLength = 26
	MaxLegacyLength = 34
)

// CheckLegacyLength rejects a base58 address outside of the length window before any decoding.
func CheckLegacyLength(address ac.Address, minLength int, maxLength int) error {
	if len(address) < minLength || len(address) > maxLength {
		return errors.InvalidLengthf("address must be %d-%d characters, got %d", minLength, maxLength, len(address))
	}
	return nil
}

// DecodeLegacy verifies a Base58Check address and that its version byte belongs to params.
func DecodeLegacy(address ac.Address, params *chaincfg.Params) (ac.Details, error) {
	payload, err := base58check.DecodeAndVerify(string(address))
	if err != nil {
		return nil, err
	}
	var addressType AddressType
	switch payload[0] {
	case params.PubKeyHashAddrID:
		addressType = P2PKH
	case params.ScriptHashAddrID:
		addressType = P2SH
	default:
		return nil, errors.InvalidVersionf("version byte %d is not used by %s addresses", payload[0], params.Name)
	}
	return ac.NewDetails(
		ac.DetailEncoding, EncodingBase58Check,
		ac.DetailType, string(addressType),
		ac.DetailVersion, fmt.Sprint(payload[0]),
	), nil
}

// DecodeSegwit verifies a segwit address against the params' human-readable part and
// enforces the BIP-141 witness program rules and the BIP-350 checksum selection.
func DecodeSegwit(address ac.Address, params *chaincfg.Params) (ac.Details, error) {
	decoded, err := addrbech32.DecodeAndVerify(string(address), params.Bech32HRPSegwit)
	if err != nil {
		return nil, err
	}
	if len(decoded.Data) < 1 {
		return nil, errors.InvalidWitnessProgramf("missing witness version")
	}
	witnessVersion := decoded.Data[0]
	if witnessVersion > 16 {
		return nil, errors.InvalidWitnessProgramf("invalid witness version %d", witnessVersion)
	}
	program, err := bech32.ConvertBits(decoded.Data[1:], 5, 8, false)
	if err != nil {
		return nil, errors.InvalidWitnessProgramf("invalid witness program padding: %v", err)
	}
	if len(program) < 2 || len(program) > 40 {
		return nil, errors.InvalidWitnessProgramf("witness program must be 2-40 bytes, got %d", len(program))
	}

	var addressType AddressType
	if witnessVersion == 0 {
		if decoded.Encoding != addrbech32.Bech32 {
			return nil, errors.ChecksumMismatchf("witness version 0 requires a bech32 checksum")
		}
		switch len(program) {
		case 20:
			addressType = P2WPKH
		case 32:
			addressType = P2WSH
		default:
			return nil, errors.InvalidWitnessProgramf("witness version 0 program must be 20 or 32 bytes, got %d", len(program))
		}
	} else {
		if decoded.Encoding != addrbech32.Bech32m {
			return nil, errors.ChecksumMismatchf("witness version %d requires a bech32m checksum", witnessVersion)
		}
		addressType = WitnessUnknown
		if witnessVersion == 1 && len(program) == 32 {
			addressType = P2TR
		}
	}

	return ac.NewDetails(
		ac.DetailEncoding, string(decoded.Encoding),
		ac.DetailHrp, decoded.Hrp,
		ac.DetailType, string(addressType),
		ac.DetailWitnessVersion, fmt.Sprint(witnessVersion),
	), nil
}

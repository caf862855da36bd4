package ethereum

import (
	"fmt"
	"strings"

	ac "github.com/cordialsys/addrcheck"
	"github.com/cordialsys/addrcheck/codec/eip55"
	"github.com/cordialsys/addrcheck/errors"
	"github.com/ethereum/go-ethereum/common"
)

const Prefix = "0x"

const (
	FormatChecksum  = "checksum"
	FormatLowercase = "lowercase"
	// Only externally owned accounts can be told apart by shape
	TypeEOA = "EOA"
)

const hexDigits = "0123456789abcdefABCDEF"

// ValidateAddress validates a 0x address and reports its EIP-55 checksum status.
func ValidateAddress(addr ac.Address) (ac.Details, error) {
	return ValidateAddressWithHash(addr, eip55.Keccak256)
}

// ValidateAddressWithHash is ValidateAddress with the hash the checksum status is derived from.
// Casing never makes an address invalid; it only changes the reported format.
func ValidateAddressWithHash(addr ac.Address, hash eip55.Hash) (ac.Details, error) {
	details, err := validate(addr, hash)
	if err != nil {
		return nil, fmt.Errorf("invalid ethereum address %s: %w", addr, err)
	}
	return details, nil
}

func validate(addr ac.Address, hash eip55.Hash) (ac.Details, error) {
	if !addr.HasPrefix(Prefix) {
		return nil, errors.InvalidPrefixf("must start with %s", Prefix)
	}
	body := strings.TrimPrefix(string(addr), Prefix)

	// 20 bytes
	if len(body) != common.AddressLength*2 {
		return nil, errors.InvalidLengthf("must be %d hex characters after %s, got %d", common.AddressLength*2, Prefix, len(body))
	}
	if idx := strings.IndexFunc(body, func(r rune) bool { return !strings.ContainsRune(hexDigits, r) }); idx >= 0 {
		return nil, errors.InvalidCharacterf("invalid hex character %q at position %d", []rune(body[idx:])[0], idx+len(Prefix))
	}

	format := FormatLowercase
	if eip55.IsChecksummed(body, hash) {
		format = FormatChecksum
	}
	return ac.NewDetails(
		ac.DetailFormat, format,
		ac.DetailType, TypeEOA,
		ac.DetailChecksumHash, string(hash),
	), nil
}

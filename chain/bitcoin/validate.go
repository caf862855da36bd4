package bitcoin

import (
	"fmt"

	ac "github.com/cordialsys/addrcheck"
	"github.com/cordialsys/addrcheck/chain/bitcoin/address"
	"github.com/cordialsys/addrcheck/chain/bitcoin/params"
	"github.com/cordialsys/addrcheck/errors"
)

const (
	PrefixP2PKH  = "1"
	PrefixP2SH   = "3"
	PrefixSegwit = "bc1"
)

// ValidateAddress accepts P2PKH (1...), P2SH (3...) and segwit (bc1...) mainnet addresses.
func ValidateAddress(addr ac.Address) (ac.Details, error) {
	var details ac.Details
	var err error
	switch {
	case addr.HasPrefix(PrefixP2PKH), addr.HasPrefix(PrefixP2SH):
		details, err = ValidateLegacyAddress(addr)
	case addr.HasPrefixFold(PrefixSegwit):
		details, err = address.DecodeSegwit(addr, params.MustGetParams(ac.Bitcoin))
	default:
		err = errors.InvalidPrefixf("must start with %s, %s or %s", PrefixP2PKH, PrefixP2SH, PrefixSegwit)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid bitcoin address %s: %w", addr, err)
	}
	return details, nil
}

// ValidateLegacyAddress checks the length window, Base58Check and version byte of a
// 1... or 3... address.
func ValidateLegacyAddress(addr ac.Address) (ac.Details, error) {
	if err := address.CheckLegacyLength(addr, address.MinLegacyLength, address.MaxLegacyLength); err != nil {
		return nil, err
	}
	return address.DecodeLegacy(addr, params.MustGetParams(ac.Bitcoin))
}

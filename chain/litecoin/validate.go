package litecoin

import (
	"fmt"

	ac "github.com/cordialsys/addrcheck"
	"github.com/cordialsys/addrcheck/chain/bitcoin/address"
	"github.com/cordialsys/addrcheck/chain/bitcoin/params"
	"github.com/cordialsys/addrcheck/errors"
)

const (
	PrefixP2PKH  = "L"
	PrefixP2SH   = "M"
	PrefixSegwit = "ltc1"
)

// ValidateAddress accepts L..., M... and ltc1... mainnet addresses.
func ValidateAddress(addr ac.Address) (ac.Details, error) {
	ltcParams := params.MustGetParams(ac.Litecoin)
	var details ac.Details
	var err error
	switch {
	// upper case LTC1... also starts with L; no Base58 address is that long
	case addr.HasPrefixFold(PrefixSegwit) && len(addr) > address.MaxLegacyLength:
		details, err = address.DecodeSegwit(addr, ltcParams)
	case addr.HasPrefix(PrefixP2PKH), addr.HasPrefix(PrefixP2SH):
		err = address.CheckLegacyLength(addr, address.MinLegacyLength, address.MaxLegacyLength)
		if err == nil {
			details, err = address.DecodeLegacy(addr, ltcParams)
		}
	case addr.HasPrefixFold(PrefixSegwit):
		details, err = address.DecodeSegwit(addr, ltcParams)
	default:
		err = errors.InvalidPrefixf("must start with %s, %s or %s", PrefixP2PKH, PrefixP2SH, PrefixSegwit)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid litecoin address %s: %w", addr, err)
	}
	return details, nil
}

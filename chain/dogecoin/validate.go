package dogecoin

import (
	"fmt"

	ac "github.com/cordialsys/addrcheck"
	"github.com/cordialsys/addrcheck/chain/bitcoin/address"
	"github.com/cordialsys/addrcheck/chain/bitcoin/params"
	"github.com/cordialsys/addrcheck/errors"
)

const Prefix = "D"

// ValidateAddress accepts D... mainnet P2PKH addresses.
func ValidateAddress(addr ac.Address) (ac.Details, error) {
	details, err := validate(addr)
	if err != nil {
		return nil, fmt.Errorf("invalid dogecoin address %s: %w", addr, err)
	}
	return details, nil
}

func validate(addr ac.Address) (ac.Details, error) {
	if !addr.HasPrefix(Prefix) {
		return nil, errors.InvalidPrefixf("must start with %s", Prefix)
	}
	if err := address.CheckLegacyLength(addr, address.MinLegacyLength, address.MaxLegacyLength); err != nil {
		return nil, err
	}
	return address.DecodeLegacy(addr, params.MustGetParams(ac.Dogecoin))
}

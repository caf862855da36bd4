package bitcoin_cash

import (
	"fmt"
	"strings"

	ac "github.com/cordialsys/addrcheck"
	"github.com/cordialsys/addrcheck/chain/bitcoin"
	"github.com/cordialsys/addrcheck/chain/bitcoin/address"
	"github.com/cordialsys/addrcheck/chain/bitcoin/params"
	"github.com/cordialsys/addrcheck/codec/bech32"
	"github.com/cordialsys/addrcheck/errors"
)

const (
	VariantCashAddr = "cashaddr"
	VariantLegacy   = "legacy"
)

// ValidateAddress accepts bitcoincash:... CashAddr addresses, the same without the prefix
// (q... or p...), and legacy 1.../3... addresses.
func ValidateAddress(addr ac.Address) (ac.Details, error) {
	details, err := validate(addr)
	if err != nil {
		return nil, fmt.Errorf("invalid bitcoin cash address %s: %w", addr, err)
	}
	return details, nil
}

func validate(addr ac.Address) (ac.Details, error) {
	prefix := params.BchCashAddrPrefix
	switch {
	case addr.HasPrefixFold(prefix + string(bech32.CashAddrSeparator)):
		return validateCashAddr(addr)
	case addr.HasPrefix(bitcoin.PrefixP2PKH), addr.HasPrefix(bitcoin.PrefixP2SH):
		details, err := bitcoin.ValidateLegacyAddress(addr)
		if err != nil {
			return nil, err
		}
		return details.With(ac.DetailVariant, VariantLegacy), nil
	case addr.HasPrefixFold("q"), addr.HasPrefixFold("p"):
		return validateCashAddr(WithPrefix(addr))
	default:
		return nil, errors.InvalidPrefixf("must start with %s:, q, p, 1 or 3", prefix)
	}
}

// WithPrefix adds the bitcoincash: prefix to a bare CashAddr payload, in upper
// case if the payload is upper case.
func WithPrefix(addr ac.Address) ac.Address {
	prefix := params.BchCashAddrPrefix + string(bech32.CashAddrSeparator)
	if strings.ToUpper(string(addr)) == string(addr) {
		prefix = strings.ToUpper(prefix)
	}
	return ac.Address(prefix) + addr
}

func validateCashAddr(addr ac.Address) (ac.Details, error) {
	decoded, err := bech32.DecodeCashAddr(string(addr), params.BchCashAddrPrefix)
	if err != nil {
		return nil, err
	}
	addressType := address.P2PKH
	if decoded.Type == bech32.CashAddrP2SH {
		addressType = address.P2SH
	}
	return ac.NewDetails(
		ac.DetailEncoding, string(bech32.Bech32),
		ac.DetailVariant, VariantCashAddr,
		ac.DetailHrp, decoded.Prefix,
		ac.DetailType, string(addressType),
	), nil
}

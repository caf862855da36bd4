// Package normalize puts addresses in the form used to compare them and to key the balance cache.
package normalize

import (
	"strings"

	ac "github.com/cordialsys/addrcheck"
	"github.com/cordialsys/addrcheck/chain/bitcoin/params"
)

type NormalizeOptions struct {
	// Drop the 0x or bitcoincash: prefix
	NoPrefix bool
}

// Normalize returns the canonical spelling of an address for a chain.  Only parts of an address
// that are case-insensitive by encoding are lowercased; Base58 addresses are returned trimmed
// but otherwise unchanged.  No validation is done.
func Normalize(address ac.Address, chain ac.ChainType, optionsMaybe ...*NormalizeOptions) ac.Address {
	address = address.Normalize()
	if address == "" {
		return ""
	}
	options := &NormalizeOptions{}
	if len(optionsMaybe) > 0 && optionsMaybe[0] != nil {
		options = optionsMaybe[0]
	}

	switch chain {
	case ac.Ethereum:
		prefix := "0x"
		hexPart := strings.TrimPrefix(strings.TrimPrefix(string(address), "0x"), "0X")
		if !isHex(hexPart) {
			return address
		}
		if options.NoPrefix {
			prefix = ""
		}
		return ac.Address(prefix + strings.ToLower(hexPart))

	case ac.Bitcoin, ac.Litecoin:
		hrp := params.MustGetParams(chain).Bech32HRPSegwit
		if address.HasPrefixFold(hrp + "1") {
			// bech32 is case-insensitive, lowercase is canonical
			return ac.Address(strings.ToLower(string(address)))
		}
		return address

	case ac.BitcoinCash:
		prefix := params.BchCashAddrPrefix + ":"
		payload := string(address)
		if address.HasPrefixFold(prefix) {
			payload = payload[len(prefix):]
		} else if !isCashAddrPayload(payload) {
			// legacy base58 address
			return address
		}
		payload = strings.ToLower(payload)
		if options.NoPrefix {
			return ac.Address(payload)
		}
		return ac.Address(prefix + payload)

	default:
		return address
	}
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return false
		}
	}
	return true
}

// CashAddr payloads start with the type character, q (p2pkh) or p (p2sh), in either case.
func isCashAddrPayload(s string) bool {
	if s == "" {
		return false
	}
	switch s[0] {
	case 'q', 'p', 'Q', 'P':
		return true
	}
	return false
}

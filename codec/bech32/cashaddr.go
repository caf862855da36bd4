package bech32

import (
	"strings"

	"github.com/cordialsys/addrcheck/errors"
	cosmosbech32 "github.com/cosmos/btcutil/bech32"
)

const CashAddrSeparator = ':'

// checksum is 40 bits, 8 characters
const cashAddrChecksumLength = 8

// CashAddr types, the high bits of the version byte
const (
	CashAddrP2PKH byte = 0
	CashAddrP2SH  byte = 1
)

// hash sizes indexed by the low 3 bits of the version byte
var cashAddrHashSizes = []int{20, 24, 28, 32, 40, 48, 56, 64}

var charsetReverseLookup = func() map[rune]byte {
	lookup := map[rune]byte{}
	for i, char := range Charset {
		lookup[char] = byte(i)
	}
	return lookup
}()

// CashAddr is a verified Bitcoin Cash address.
type CashAddr struct {
	Prefix string
	Type   byte
	Hash   []byte
}

// DecodeCashAddr verifies a "prefix:payload" CashAddr string. Like DecodeAndVerify, the
// prefix comparison and case rules are case-insensitive but the string may not mix case.
func DecodeCashAddr(s string, expectedPrefix string) (*CashAddr, error) {
	if expectedPrefix == "" {
		panic("cashaddr: expected prefix must be set")
	}
	if hasMixedCase(s) {
		return nil, errors.Errorf(errors.MixedCase, "cashaddr string must not mix upper and lower case")
	}
	lower := strings.ToLower(s)
	if count := strings.Count(lower, string(CashAddrSeparator)); count != 1 {
		return nil, errors.Errorf(errors.InvalidSeparator, "cashaddr string must contain exactly one separator '%c', found %d", CashAddrSeparator, count)
	}
	parts := strings.SplitN(lower, string(CashAddrSeparator), 2)
	prefix, payload := parts[0], parts[1]
	if prefix != strings.ToLower(expectedPrefix) {
		return nil, errors.Errorf(errors.WrongHumanReadablePart, "expected prefix %q, got %q", strings.ToLower(expectedPrefix), prefix)
	}

	values := make([]byte, 0, len(payload))
	for i, c := range payload {
		value, ok := charsetReverseLookup[c]
		if !ok {
			return nil, errors.InvalidCharacterf("invalid cashaddr character %q at position %d", c, len(prefix)+1+i)
		}
		values = append(values, value)
	}
	if len(values) <= cashAddrChecksumLength {
		return nil, errors.InvalidLengthf("cashaddr payload is too short")
	}
	if !VerifyCashAddrChecksum(prefix, values) {
		return nil, errors.ChecksumMismatchf("cashaddr checksum does not match")
	}

	addrBytes, err := cosmosbech32.ConvertBits(values[:len(values)-cashAddrChecksumLength], 5, 8, false)
	if err != nil {
		return nil, errors.InvalidLengthf("invalid cashaddr payload: %v", err)
	}
	if len(addrBytes) == 0 {
		return nil, errors.InvalidLengthf("cashaddr payload is empty")
	}
	version := addrBytes[0]
	hash := addrBytes[1:]
	if version&0x80 != 0 {
		return nil, errors.InvalidVersionf("cashaddr version byte %d has the reserved bit set", version)
	}
	if size := cashAddrHashSizes[version&0x07]; size != len(hash) {
		return nil, errors.InvalidLengthf("cashaddr version %d requires a %d byte hash, got %d", version, size, len(hash))
	}
	addrType := (version >> 3) & 0x0f
	if addrType != CashAddrP2PKH && addrType != CashAddrP2SH {
		return nil, errors.InvalidVersionf("unknown cashaddr type %d", addrType)
	}
	return &CashAddr{
		Prefix: prefix,
		Type:   addrType,
		Hash:   hash,
	}, nil
}

// VerifyCashAddrChecksum checks 5-bit payload values, checksum included, against the prefix.
func VerifyCashAddrChecksum(prefix string, values []byte) bool {
	return CashAddrPolyMod(append(encodePrefix(prefix), values...)) == 0
}

// CashAddrPolyMod is the 40-bit BCH code checksum of CashAddr.
// https://github.com/bitcoincashorg/bitcoincash.org/blob/master/spec/cashaddr.md
func CashAddrPolyMod(v []byte) uint64 {
	c := uint64(1)
	for _, d := range v {
		c0 := byte(c >> 35)
		c = ((c & 0x07ffffffff) << 5) ^ uint64(d)

		if c0&0x01 > 0 {
			c ^= 0x98f2bc8e61
		}
		if c0&0x02 > 0 {
			c ^= 0x79b76d99e2
		}
		if c0&0x04 > 0 {
			c ^= 0xf33e5fb3c4
		}
		if c0&0x08 > 0 {
			c ^= 0xae2eabe2a8
		}
		if c0&0x10 > 0 {
			c ^= 0x1e4f43e470
		}
	}
	return c ^ 1
}

// EncodeCashAddr builds a CashAddr string, used to produce test fixtures and canonical forms.
func EncodeCashAddr(prefix string, addrType byte, hash []byte) (string, error) {
	sizeBits := -1
	for i, size := range cashAddrHashSizes {
		if size == len(hash) {
			sizeBits = i
		}
	}
	if sizeBits < 0 {
		return "", errors.InvalidLengthf("no cashaddr size for a %d byte hash", len(hash))
	}
	version := addrType<<3 | byte(sizeBits)
	values, err := cosmosbech32.ConvertBits(append([]byte{version}, hash...), 8, 5, true)
	if err != nil {
		return "", err
	}
	prefix = strings.ToLower(prefix)
	withChecksum := appendCashAddrChecksum(prefix, values)
	encoded := strings.Builder{}
	encoded.WriteString(prefix)
	encoded.WriteByte(CashAddrSeparator)
	for _, d := range withChecksum {
		encoded.WriteByte(Charset[d])
	}
	return encoded.String(), nil
}

// https://github.com/bitcoincashorg/bitcoincash.org/blob/master/spec/cashaddr.md#checksum
func encodePrefix(prefix string) []byte {
	prefixBytes := make([]byte, len(prefix)+1)
	for i := 0; i < len(prefix); i++ {
		prefixBytes[i] = prefix[i] & 0x1f
	}
	prefixBytes[len(prefix)] = 0
	return prefixBytes
}

func appendCashAddrChecksum(prefix string, payload []byte) []byte {
	prefixed := append(encodePrefix(prefix), payload...)
	prefixed = append(prefixed, 0, 0, 0, 0, 0, 0, 0, 0)
	mod := CashAddrPolyMod(prefixed)

	out := make([]byte, len(payload), len(payload)+cashAddrChecksumLength)
	copy(out, payload)
	for i := 0; i < cashAddrChecksumLength; i++ {
		out = append(out, byte((mod>>uint(5*(7-i)))&0x1f))
	}
	return out
}

// Package bech32 verifies Bech32 and Bech32m strings against an expected
// human-readable part, and decodes the CashAddr variant used by Bitcoin Cash.
package bech32

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/cordialsys/addrcheck/errors"
)

// Charset is the 32 character data alphabet shared by Bech32 and CashAddr.
const Charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

const Separator = '1'

// MaxLength is the BIP-173 limit for segwit addresses.
const MaxLength = 90

// Encoding is the checksum constant the string was created with.
type Encoding string

const (
	// BIP-173, polymod constant 1
	Bech32 Encoding = "bech32"
	// BIP-350, polymod constant 0x2bc830a3
	Bech32m Encoding = "bech32m"
)

// Decoded is a verified Bech32 string.
type Decoded struct {
	// Always lowercase
	Hrp string
	// 5-bit values, checksum removed
	Data     []byte
	Encoding Encoding
}

// DecodeAndVerify checks case consistency, the separator, the human-readable part and the checksum
// of s. expectedHrp is a constant of the caller; an empty one is a programming error.
func DecodeAndVerify(s string, expectedHrp string) (*Decoded, error) {
	if expectedHrp == "" {
		panic("bech32: expected human-readable part must be set")
	}
	if len(s) > MaxLength {
		return nil, errors.InvalidLengthf("bech32 string must be at most %d characters, got %d", MaxLength, len(s))
	}
	if hasMixedCase(s) {
		return nil, errors.Errorf(errors.MixedCase, "bech32 string must not mix upper and lower case")
	}
	lower := strings.ToLower(s)
	if count := strings.Count(lower, string(Separator)); count != 1 {
		return nil, errors.Errorf(errors.InvalidSeparator, "bech32 string must contain exactly one separator '%c', found %d", Separator, count)
	}
	hrp := lower[:strings.IndexByte(lower, Separator)]
	if hrp != strings.ToLower(expectedHrp) {
		return nil, errors.Errorf(errors.WrongHumanReadablePart, "expected human-readable part %q, got %q", strings.ToLower(expectedHrp), hrp)
	}

	hrp, data, version, err := bech32.DecodeGeneric(s)
	if err != nil {
		return nil, mapError(err)
	}
	encoding := Bech32
	if version == bech32.VersionM {
		encoding = Bech32m
	}
	return &Decoded{
		Hrp:      hrp,
		Data:     data,
		Encoding: encoding,
	}, nil
}

func hasMixedCase(s string) bool {
	return strings.ToLower(s) != s && strings.ToUpper(s) != s
}

func mapError(err error) error {
	switch e := err.(type) {
	case bech32.ErrMixedCase:
		return errors.Errorf(errors.MixedCase, "%v", e)
	case bech32.ErrInvalidLength:
		return errors.InvalidLengthf("invalid bech32 string length %d", int(e))
	case bech32.ErrInvalidCharacter:
		return errors.InvalidCharacterf("invalid character in bech32 string: %q", rune(e))
	case bech32.ErrNonCharsetChar:
		return errors.InvalidCharacterf("invalid bech32 data character %q", rune(e))
	case bech32.ErrInvalidSeparatorIndex:
		return errors.Errorf(errors.InvalidSeparator, "invalid separator index %d", int(e))
	case bech32.ErrInvalidChecksum:
		return errors.ChecksumMismatchf("bech32 checksum does not match (got %s)", e.Actual)
	default:
		return errors.InvalidCharacterf("invalid bech32 string: %v", fmt.Sprint(err))
	}
}

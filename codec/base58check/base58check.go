// Package base58check decodes and verifies the Base58Check encoding used by legacy
// bitcoin-family addresses: a version byte, a 20 byte hash and a 4 byte double SHA-256 checksum.
package base58check

import (
	"bytes"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/cordialsys/addrcheck/errors"
)

// Alphabet is the bitcoin Base58 alphabet, which omits 0, O, I and l.
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

const (
	ChecksumLength = 4
	// version byte + hash160 + checksum
	DecodedLength = 1 + 20 + ChecksumLength
)

type decodedPayload struct {
	body     []byte
	checksum []byte
}

func split(decoded []byte) decodedPayload {
	return decodedPayload{
		body:     decoded[:len(decoded)-ChecksumLength],
		checksum: decoded[len(decoded)-ChecksumLength:],
	}
}

func (p decodedPayload) verify() bool {
	return bytes.Equal(Checksum(p.body), p.checksum)
}

// Checksum is the first 4 bytes of SHA-256(SHA-256(body)).
func Checksum(body []byte) []byte {
	return chainhash.DoubleHashB(body)[:ChecksumLength]
}

// DecodeAndVerify decodes s and verifies its checksum. It returns the version byte
// followed by the 20 byte payload.
func DecodeAndVerify(s string) ([]byte, error) {
	if idx := strings.IndexFunc(s, func(r rune) bool { return !strings.ContainsRune(Alphabet, r) }); idx >= 0 {
		return nil, errors.InvalidCharacterf("invalid base58 character %q at position %d", s[idx:idx+1], idx)
	}
	decoded := base58.Decode(s)
	if len(decoded) != DecodedLength {
		return nil, errors.InvalidLengthf("decoded base58 payload must be %d bytes, got %d", DecodedLength, len(decoded))
	}
	payload := split(decoded)
	if !payload.verify() {
		return nil, errors.ChecksumMismatchf("base58check checksum does not match")
	}
	return payload.body, nil
}

// Encode encodes a version byte followed by its payload and appends the checksum.
func Encode(versionAndPayload []byte) string {
	if len(versionAndPayload) == 0 {
		panic("base58check: cannot encode empty payload")
	}
	return base58.CheckEncode(versionAndPayload[1:], versionAndPayload[0])
}

// Package eip55 implements the mixed-case checksum of Ethereum addresses.
//
// Each letter of the 40 character hex body is upper case when the matching nibble
// of the hash of the lower case body is 8 or more.
package eip55

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"
)

// BodyLength is the number of hex characters of an address without 0x.
const BodyLength = 40

// Hash selects the hash the checksum is derived from.
type Hash string

const (
	// Keccak256 is the EIP-55 standard, used by wallets and explorers
	Keccak256 Hash = "keccak256"
	// Sha256 only exists for parity with systems that checksummed with SHA-256
	Sha256 Hash = "sha256"
)

var HashList = []Hash{Keccak256, Sha256}

func (h Hash) Valid() bool {
	return h == Keccak256 || h == Sha256
}

func ParseHash(s string) (Hash, error) {
	h := Hash(strings.ToLower(strings.TrimSpace(s)))
	if !h.Valid() {
		return "", fmt.Errorf("unknown checksum hash %q, expected one of %v", s, HashList)
	}
	return h, nil
}

// Sum hashes data. An unknown hash is a programming error.
func (h Hash) Sum(data []byte) []byte {
	switch h {
	case Keccak256:
		hasher := sha3.NewLegacyKeccak256()
		hasher.Write(data)
		return hasher.Sum(nil)
	case Sha256:
		sum := sha256.Sum256(data)
		return sum[:]
	default:
		panic(fmt.Sprintf("eip55: unknown hash %q", string(h)))
	}
}

func isHexBody(body string) bool {
	if len(body) != BodyLength {
		return false
	}
	_, err := hex.DecodeString(body)
	return err == nil
}

// Checksum returns the checksummed casing of a 40 character hex body.
func Checksum(body string, h Hash) (string, error) {
	if !isHexBody(body) {
		return "", fmt.Errorf("address body must be %d hex characters", BodyLength)
	}
	lower := strings.ToLower(body)
	digest := hex.EncodeToString(h.Sum([]byte(lower)))

	out := []byte(lower)
	for i, c := range out {
		if c >= 'a' && c <= 'f' && digest[i] >= '8' {
			out[i] = c - 'a' + 'A'
		}
	}
	return string(out), nil
}

// IsChecksummed reports whether the casing of body matches its checksum. It never
// panics; malformed input or an unknown hash is simply not checksummed.
func IsChecksummed(body string, h Hash) bool {
	if !h.Valid() {
		return false
	}
	expected, err := Checksum(body, h)
	if err != nil {
		return false
	}
	return expected == body
}

package ethereum_test

import (
	"testing"

	ac "github.com/cordialsys/addrcheck"
	"github.com/cordialsys/addrcheck/chain/ethereum"
	"github.com/cordialsys/addrcheck/codec/eip55"
	"github.com/cordialsys/addrcheck/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestValidateAddress(t *testing.T) {
	tests := []struct {
		name    string
		address ac.Address
		hash    eip55.Hash
		format  string
		kind    errors.Kind
	}{
		{
			name:    "checksummed",
			address: "0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B",
			hash:    eip55.Keccak256,
			format:  "checksum",
		},
		{
			name:    "checksummed under sha256",
			address: "0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B",
			hash:    eip55.Sha256,
			format:  "lowercase",
		},
		{
			name:    "lowercase",
			address: "0xab5801a7d398351b8be11c439e05c5b3259aec9b",
			hash:    eip55.Keccak256,
			format:  "lowercase",
		},
		{
			name:    "uppercase",
			address: "0xAB5801A7D398351B8BE11C439E05C5B3259AEC9B",
			hash:    eip55.Keccak256,
			format:  "lowercase",
		},
		{
			name:    "wrong casing is still valid",
			address: "0xaB5801a7D398351b8bE11C439e05C5B3259aeC9B",
			hash:    eip55.Keccak256,
			format:  "lowercase",
		},
		{
			name:    "all zeros",
			address: "0x0000000000000000000000000000000000000000",
			hash:    eip55.Keccak256,
			format:  "checksum",
		},
		{name: "missing 0x", address: "Ab5801a7D398351b8bE11C439e05C5B3259aeC9B00", hash: eip55.Keccak256, kind: errors.InvalidPrefix},
		{name: "uppercase 0X", address: "0XAb5801a7D398351b8bE11C439e05C5B3259aeC9B", hash: eip55.Keccak256, kind: errors.InvalidPrefix},
		{name: "too short", address: "0xAb5801a7D398351b8bE11C439e05C5B3259aeC9", hash: eip55.Keccak256, kind: errors.InvalidLength},
		{name: "too long", address: "0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B0", hash: eip55.Keccak256, kind: errors.InvalidLength},
		{name: "not hex", address: "0xAb5801a7D398351b8bE11C439e05C5B3259aeC9G", hash: eip55.Keccak256, kind: errors.InvalidCharacter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			details, err := ethereum.ValidateAddressWithHash(tt.address, tt.hash)
			if tt.kind != "" {
				require.Error(err)
				require.Equal(tt.kind, errors.KindOf(err), err.Error())
				require.ErrorContains(err, "invalid ethereum address")
				return
			}
			require.NoError(err)
			require.Equal(ac.NewDetails("format", tt.format, "type", "EOA", "checksum_hash", string(tt.hash)), details)
		})
	}
}

func TestValidateAddressAgreesWithGeth(t *testing.T) {
	for _, lower := range []string{
		"0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed",
		"0xfb6916095ca1df60bb79ce92ce3ea74c37c5d359",
		"0xdbf03b407c01e7cd3cbea99509d93f8dddc8c6fb",
	} {
		t.Run(lower, func(t *testing.T) {
			require := require.New(t)
			checksummed := common.HexToAddress(lower).Hex()
			details, err := ethereum.ValidateAddress(ac.Address(checksummed))
			require.NoError(err)
			format, _ := details.Get(ac.DetailFormat)
			require.Equal("checksum", format)
		})
	}
}

func TestInvalidCharacterPosition(t *testing.T) {
	_, err := ethereum.ValidateAddress("0xZb5801a7D398351b8bE11C439e05C5B3259aeC9B")
	require.ErrorContains(t, err, `invalid hex character 'Z' at position 2`)
}

package bitcoin_test

import (
	"strings"
	"testing"

	ac "github.com/cordialsys/addrcheck"
	"github.com/cordialsys/addrcheck/chain/bitcoin"
	"github.com/cordialsys/addrcheck/errors"
	"github.com/stretchr/testify/require"
)

func TestValidateAddress(t *testing.T) {
	tests := []struct {
		name     string
		address  ac.Address
		encoding string
		addrType string
		kind     errors.Kind
		errorMsg string
	}{
		{
			name:     "p2pkh",
			address:  "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa",
			encoding: "base58check",
			addrType: "p2pkh",
		},
		{
			name:     "p2sh",
			address:  "3FZbgi29cpjq2GjdwV8eyHuJJnkLtktZc5",
			encoding: "base58check",
			addrType: "p2sh",
		},
		{
			name:     "shortest legacy address",
			address:  "11111111111111111111BZbvjr",
			encoding: "base58check",
			addrType: "p2pkh",
		},
		{
			name:     "p2wpkh",
			address:  "bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq",
			encoding: "bech32",
			addrType: "p2wpkh",
		},
		{
			name:     "p2wpkh uppercase",
			address:  "BC1QAR0SRRR7XFKVY5L643LYDNW9RE59GTZZWF5MDQ",
			encoding: "bech32",
			addrType: "p2wpkh",
		},
		{
			name:     "taproot",
			address:  "bc1p5d7rjq7g6rdk2yhzks9smlaqtedr4dekq08ge8ztwac72sfr9rusxg3297",
			encoding: "bech32m",
			addrType: "p2tr",
		},
		{
			name:     "one character too long",
			address:  "1BoatSLRHtKNngkdXEeobR76b53LETtpyT1",
			kind:     errors.InvalidLength,
			errorMsg: "got 35",
		},
		{
			name:     "25 characters",
			address:  "1111111111111111111BZbvjr",
			kind:     errors.InvalidLength,
			errorMsg: "got 25",
		},
		{
			name:    "checksum",
			address: "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNb",
			kind:    errors.ChecksumMismatch,
		},
		{
			name:    "invalid base58 character",
			address: "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfN0",
			kind:    errors.InvalidCharacter,
		},
		{
			name:    "testnet segwit",
			address: "tb1qar0srrr7xfkvy5l643lydnw9re59gtzzy00gkn",
			kind:    errors.InvalidPrefix,
		},
		{
			name:    "segwit checksum",
			address: "bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdr",
			kind:    errors.ChecksumMismatch,
		},
		{
			name:    "mixed case segwit",
			address: "bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwF5mdq",
			kind:    errors.MixedCase,
		},
		{
			name:    "litecoin address",
			address: "LaMT348PWRnrqeeWArpwQPbuanpXDZGEUz",
			kind:    errors.InvalidPrefix,
		},
		{
			name:    "ethereum address",
			address: "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
			kind:    errors.InvalidPrefix,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			details, err := bitcoin.ValidateAddress(tt.address)
			if tt.kind != "" {
				require.Error(err)
				require.Nil(details)
				require.Equal(tt.kind, errors.KindOf(err), err.Error())
				require.True(strings.HasPrefix(err.Error(), "invalid bitcoin address "+string(tt.address)))
				if tt.errorMsg != "" {
					require.ErrorContains(err, tt.errorMsg)
				}
				return
			}
			require.NoError(err)
			encoding, _ := details.Get(ac.DetailEncoding)
			require.Equal(tt.encoding, encoding)
			addrType, _ := details.Get(ac.DetailType)
			require.Equal(tt.addrType, addrType)
		})
	}
}

func TestValidateAddressBech32Hrp(t *testing.T) {
	require := require.New(t)
	details, err := bitcoin.ValidateAddress("bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq")
	require.NoError(err)
	hrp, ok := details.Get(ac.DetailHrp)
	require.True(ok)
	require.Equal("bc", hrp)
}

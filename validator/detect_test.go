package validator_test

import (
	"testing"

	ac "github.com/cordialsys/addrcheck"
	"github.com/cordialsys/addrcheck/validator"
	"github.com/stretchr/testify/require"
)

func TestDetectChain(t *testing.T) {
	tests := []struct {
		name    string
		address ac.Address
		chain   ac.ChainType
	}{
		{name: "ethereum", address: "0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B", chain: ac.Ethereum},
		{name: "0x with wrong length", address: "0xAb5801a7D398351b8bE11C439e05C5B3259aeC9", chain: ac.Unknown},
		{name: "bitcoin p2pkh", address: "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", chain: ac.Bitcoin},
		{name: "bitcoin p2sh", address: "3FZbgi29cpjq2GjdwV8eyHuJJnkLtktZc5", chain: ac.Bitcoin},
		{name: "bitcoin cash legacy looks like bitcoin", address: "1BpEi6DfDAUFd7GtittLSdBeYJvcoaVggu", chain: ac.Bitcoin},
		{name: "bitcoin segwit", address: "bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq", chain: ac.Bitcoin},
		{name: "bitcoin segwit uppercase", address: "BC1QAR0SRRR7XFKVY5L643LYDNW9RE59GTZZWF5MDQ", chain: ac.Bitcoin},
		{name: "litecoin L", address: "LaMT348PWRnrqeeWArpwQPbuanpXDZGEUz", chain: ac.Litecoin},
		{name: "litecoin M", address: "MVcg9uEvtWuP5N6V48EHfEtbz48qR8TKZ9", chain: ac.Litecoin},
		{name: "litecoin segwit", address: "ltc1qar0srrr7xfkvy5l643lydnw9re59gtzz24wl4s", chain: ac.Litecoin},
		{name: "litecoin segwit uppercase", address: "LTC1QAR0SRRR7XFKVY5L643LYDNW9RE59GTZZ24WL4S", chain: ac.Litecoin},
		{name: "bitcoin cash prefixed", address: "bitcoincash:qpm2qsznhks23z7629mms6s4cwef74vcwvy22gdx6a", chain: ac.BitcoinCash},
		{name: "bitcoin cash prefixed uppercase", address: "BITCOINCASH:QPM2QSZNHKS23Z7629MMS6S4CWEF74VCWVY22GDX6A", chain: ac.BitcoinCash},
		{name: "bitcoin cash bare", address: "qpm2qsznhks23z7629mms6s4cwef74vcwvy22gdx6a", chain: ac.BitcoinCash},
		{name: "bitcoin cash bare p is not detected", address: "ppm2qsznhks23z7629mms6s4cwef74vcwvn0h829pq", chain: ac.Unknown},
		{name: "dogecoin", address: "DH5yaieqoZN36fDVciNyRueRGvGLR3mr7L", chain: ac.Dogecoin},
		{name: "surrounding whitespace", address: " DH5yaieqoZN36fDVciNyRueRGvGLR3mr7L ", chain: ac.Dogecoin},
		{name: "empty", address: "", chain: ac.Unknown},
		{name: "unknown", address: "addr1qx2fxv2umyhttkxyxp8x0dlpdt3k6cwng5pxj3jhsydzer", chain: ac.Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.chain, validator.DetectChain(tt.address))
		})
	}
}

func TestDetectedChainValidates(t *testing.T) {
	for _, address := range []ac.Address{
		"0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B",
		"1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa",
		"bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq",
		"LaMT348PWRnrqeeWArpwQPbuanpXDZGEUz",
		"ltc1qar0srrr7xfkvy5l643lydnw9re59gtzz24wl4s",
		"bitcoincash:qpm2qsznhks23z7629mms6s4cwef74vcwvy22gdx6a",
		"DH5yaieqoZN36fDVciNyRueRGvGLR3mr7L",
	} {
		t.Run(string(address), func(t *testing.T) {
			result := validator.ValidateAddress(address, validator.DetectChain(address))
			require.True(t, result.IsValid, result.ErrorMessage)
		})
	}
}

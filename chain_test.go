package addrcheck_test

import (
	. "github.com/cordialsys/addrcheck"
)

func (s *AddrcheckTestSuite) TestParseChainType() {
	vectors := []struct {
		input string
		chain ChainType
		err   bool
	}{
		{"bitcoin", Bitcoin, false},
		{"BTC", Bitcoin, false},
		{"  Ethereum ", Ethereum, false},
		{"ltc", Litecoin, false},
		{"bitcoin_cash", BitcoinCash, false},
		{"Bitcoin Cash", BitcoinCash, false},
		{"bitcoin-cash", BitcoinCash, false},
		{"BCH", BitcoinCash, false},
		{"doge", Dogecoin, false},
		{"solana", Unknown, true},
		{"", Unknown, true},
	}
	for _, v := range vectors {
		s.Run(v.input, func() {
			chain, err := ParseChainType(v.input)
			if v.err {
				s.Require().ErrorContains(err, "unsupported chain")
			} else {
				s.Require().NoError(err)
			}
			s.Require().Equal(v.chain, chain)
		})
	}
}

func (s *AddrcheckTestSuite) TestChainInfo() {
	require := s.Require()
	for _, chain := range ChainTypeList {
		require.True(chain.Valid())
		info, ok := chain.Info()
		require.True(ok, chain)
		require.Equal(chain, info.Chain)
		require.NotEmpty(info.Prefixes)
		require.NotEmpty(info.ExplorerURL)
	}
	require.False(ChainType("solana").Valid())
	_, ok := ChainType("solana").Info()
	require.False(ok)

	info, _ := Ethereum.Info()
	require.EqualValues(18, info.Decimals)
	require.Equal(
		"https://etherscan.io/address/0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		info.ExplorerAddressURL(" 0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed "),
	)
}

func (s *AddrcheckTestSuite) TestAddressPrefixes() {
	require := s.Require()
	address := Address("BitcoinCash:qpm2qsznhks23z7629mms6s4cwef74vcwvy22gdx6a")
	require.True(address.HasPrefixFold("bitcoincash:"))
	require.False(address.HasPrefix("bitcoincash:"))
	require.False(Address("bc").HasPrefixFold("bc1"))
	require.Equal(Address("abc"), Address("\t abc \n").Normalize())
}

package addrcheck_test

import (
	. "github.com/cordialsys/addrcheck"
	"github.com/cordialsys/addrcheck/config"
)

func (s *AddrcheckTestSuite) TestChainClientConfigString() {
	require := s.Require()
	cfg := ChainClientConfig{Chain: Ethereum, Provider: Etherscan, URL: "https://api.etherscan.io/api"}
	require.Equal("ChainClientConfig(chain=ethereum provider=etherscan url=https://api.etherscan.io/api auth=)", cfg.String())

	cfg.Auth = config.Secret("env:ETHERSCAN_API_KEY")
	require.Contains(cfg.String(), "auth=env:ETHERSCAN_API_KEY)")

	cfg.Auth = config.NewRawSecret("my-key")
	require.Contains(cfg.String(), "auth=<REDACTED>)")
	require.NotContains(cfg.String(), "my-key")
}

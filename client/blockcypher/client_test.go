package blockcypher_test

import (
	"context"
	"testing"

	ac "github.com/cordialsys/addrcheck"
	"github.com/cordialsys/addrcheck/client/blockcypher"
	"github.com/cordialsys/addrcheck/config"
	"github.com/cordialsys/addrcheck/testutil"
	"github.com/stretchr/testify/require"
)

func TestFetchBalance(t *testing.T) {
	vectors := []struct {
		name     string
		chain    ac.ChainType
		address  ac.Address
		auth     config.Secret
		response string
		balance  string
		human    string
		txCount  uint64
		request  string
	}{
		{
			name:     "litecoin",
			chain:    ac.Litecoin,
			address:  "LaMT348PWRnrqeeWArpwQPbuanpXDZGEUz",
			response: `{"address":"LaMT348PWRnrqeeWArpwQPbuanpXDZGEUz","total_received":2500000000,"total_sent":0,"balance":2500000000,"unconfirmed_balance":0,"final_balance":2500000000,"n_tx":2,"unconfirmed_n_tx":0,"final_n_tx":2}`,
			balance:  "2500000000",
			human:    "25",
			txCount:  2,
			request:  "/addrs/LaMT348PWRnrqeeWArpwQPbuanpXDZGEUz/balance",
		},
		{
			name:     "dogecoin with token",
			chain:    ac.Dogecoin,
			address:  "DH5yaieqoZN36fDVciNyRueRGvGLR3mr7L",
			auth:     config.NewRawSecret("abc"),
			response: `{"address":"DH5yaieqoZN36fDVciNyRueRGvGLR3mr7L","balance":1050000000,"n_tx":7}`,
			balance:  "1050000000",
			human:    "10.5",
			txCount:  7,
			request:  "/addrs/DH5yaieqoZN36fDVciNyRueRGvGLR3mr7L/balance?token=abc",
		},
		{
			name:     "empty address",
			chain:    ac.Dogecoin,
			address:  "DH5yaieqoZN36fDVciNyRueRGvGLR3mr7L",
			response: `{"address":"DH5yaieqoZN36fDVciNyRueRGvGLR3mr7L"}`,
			balance:  "0",
			human:    "0",
			txCount:  0,
			request:  "/addrs/DH5yaieqoZN36fDVciNyRueRGvGLR3mr7L/balance",
		},
	}
	for _, v := range vectors {
		t.Run(v.name, func(t *testing.T) {
			require := require.New(t)
			server, close := testutil.MockHTTP(t, v.response, 200)
			defer close()

			client, err := blockcypher.NewClient(&ac.ChainClientConfig{Chain: v.chain, URL: server.URL, Auth: v.auth})
			require.NoError(err)

			balance, err := client.FetchBalance(context.Background(), v.address)
			require.NoError(err)
			require.Equal(v.chain, balance.Chain)
			require.Equal(v.balance, balance.Balance.String())
			require.Equal(v.human, balance.BalanceHuman.String())
			require.Equal(v.txCount, balance.TransactionCount)
			require.Equal(v.request, server.Request(0))
		})
	}
}

func TestNewClientBadSecret(t *testing.T) {
	_, err := blockcypher.NewClient(&ac.ChainClientConfig{Chain: ac.Litecoin, URL: "http://localhost", Auth: "nope"})
	require.ErrorContains(t, err, "could not load blockcypher token")
}

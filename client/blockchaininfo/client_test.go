package blockchaininfo_test

import (
	"context"
	"testing"

	ac "github.com/cordialsys/addrcheck"
	"github.com/cordialsys/addrcheck/client/blockchaininfo"
	"github.com/cordialsys/addrcheck/client/errors"
	"github.com/cordialsys/addrcheck/testutil"
	"github.com/stretchr/testify/require"
)

func TestFetchBalance(t *testing.T) {
	require := require.New(t)
	address := ac.Address("1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa")
	server, close := testutil.MockHTTP(t, `{"hash160":"62e907b15cbf27d5425399ebf6f0fb50ebb88f18","address":"1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa","n_tx":3955,"n_unredeemed":3955,"total_received":10412543478,"total_sent":0,"final_balance":10412543478,"txs":[]}`, 200)
	defer close()

	client, err := blockchaininfo.NewClient(&ac.ChainClientConfig{Chain: ac.Bitcoin, URL: server.URL})
	require.NoError(err)

	balance, err := client.FetchBalance(context.Background(), address)
	require.NoError(err)
	require.Equal(address, balance.Address)
	require.Equal(ac.Bitcoin, balance.Chain)
	require.Equal("10412543478", balance.Balance.String())
	require.Equal("104.12543478", balance.BalanceHuman.String())
	require.EqualValues(3955, balance.TransactionCount)
	require.Equal("/rawaddr/1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa?limit=0", server.Request(0))
}

func TestFetchBalanceError(t *testing.T) {
	require := require.New(t)
	server, close := testutil.MockHTTP(t, `{"error":"not-found-or-invalid-arg","message":"Item not found or argument invalid"}`, 404)
	defer close()

	client, err := blockchaininfo.NewClient(&ac.ChainClientConfig{Chain: ac.Bitcoin, URL: server.URL})
	require.NoError(err)

	_, err = client.FetchBalance(context.Background(), "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa")
	require.Error(err)
	require.Equal(errors.AddressNotFound, errors.StatusOf(err))
}

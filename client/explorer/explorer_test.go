package explorer_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	ac "github.com/cordialsys/addrcheck"
	"github.com/cordialsys/addrcheck/client/errors"
	"github.com/cordialsys/addrcheck/client/explorer"
	"github.com/cordialsys/addrcheck/testutil"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Value int `json:"value"`
}

func TestNewClientRequiresUrl(t *testing.T) {
	_, err := explorer.NewClient(&ac.ChainClientConfig{Chain: ac.Bitcoin})
	require.ErrorContains(t, err, "url required for bitcoin")
}

func TestGet(t *testing.T) {
	tests := []struct {
		name      string
		response  string
		status    int
		value     int
		errStatus errors.Status
	}{
		{name: "ok", response: `{"value": 5}`, status: 200, value: 5},
		{name: "not found", response: `not found`, status: 404, errStatus: errors.AddressNotFound},
		{name: "rate limited", response: `slow down`, status: 429, errStatus: errors.RateLimited},
		{name: "server error", response: `oops`, status: 500, errStatus: errors.BadResponse},
		{name: "bad json", response: `{"value": "x"}`, status: 200, errStatus: errors.BadResponse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			server, close := testutil.MockHTTP(t, tt.response, tt.status)
			defer close()

			client, err := explorer.NewClient(&ac.ChainClientConfig{Chain: ac.Bitcoin, URL: server.URL + "/"})
			require.NoError(err)

			var resp payload
			err = client.Get(context.Background(), "/path", nil, &resp)
			if tt.errStatus != "" {
				require.Error(err)
				require.Equal(tt.errStatus, errors.StatusOf(err), err.Error())
				return
			}
			require.NoError(err)
			require.Equal(tt.value, resp.Value)
			require.Equal("/path", server.Request(0))
		})
	}
}

func TestGetRetries(t *testing.T) {
	require := require.New(t)
	server, close := testutil.MockHTTP(t, `{}`, http.StatusBadGateway)
	defer close()

	client, err := explorer.NewClient(&ac.ChainClientConfig{
		Chain:      ac.Bitcoin,
		URL:        server.URL,
		MaxRetries: 2,
	})
	require.NoError(err)

	var resp payload
	err = client.Get(context.Background(), "/retry", nil, &resp)
	require.Error(err)
	require.Equal(errors.BadResponse, errors.StatusOf(err))
	require.Equal(3, server.RequestCount())
}

func TestGetTimeout(t *testing.T) {
	require := require.New(t)
	server, close := testutil.MockHTTP(t, `{}`, 200)
	defer close()

	client, err := explorer.NewClient(&ac.ChainClientConfig{Chain: ac.Bitcoin, URL: server.URL})
	require.NoError(err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()
	var resp payload
	err = client.Get(ctx, "/slow", nil, &resp)
	require.Error(err)
	require.Equal(errors.Timeout, errors.StatusOf(err), err.Error())
}

func TestGetQuery(t *testing.T) {
	require := require.New(t)
	server, close := testutil.MockHTTP(t, `{"value": 1}`, 200)
	defer close()

	client, err := explorer.NewClient(&ac.ChainClientConfig{Chain: ac.Ethereum, URL: server.URL + "/api"})
	require.NoError(err)

	var resp payload
	err = client.Get(context.Background(), "", map[string][]string{"module": {"account"}, "action": {"balance"}}, &resp)
	require.NoError(err)
	require.Equal("/api?action=balance&module=account", server.Request(0))
}

package blockcypher

import (
	"context"
	"fmt"
	"net/url"

	ac "github.com/cordialsys/addrcheck"
	xclient "github.com/cordialsys/addrcheck/client"
	"github.com/cordialsys/addrcheck/client/explorer"
)

// Client for the BlockCypher API, e.g. https://api.blockcypher.com/v1/ltc/main
type Client struct {
	explorer *explorer.Client
	token    string
}

var _ xclient.BalanceClient = &Client{}

type addressBalance struct {
	Address      string `json:"address"`
	Balance      uint64 `json:"balance"`
	FinalBalance uint64 `json:"final_balance"`
	NTx          uint64 `json:"n_tx"`
	FinalNTx     uint64 `json:"final_n_tx"`
}

// NewClient creates a client; an auth token is optional on BlockCypher.
func NewClient(cfg *ac.ChainClientConfig) (*Client, error) {
	explorerClient, err := explorer.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	token := ""
	if cfg.Auth != "" {
		token, err = cfg.Auth.Load()
		if err != nil {
			return nil, fmt.Errorf("could not load blockcypher token: %v", err)
		}
	}
	return &Client{explorerClient, token}, nil
}

func (client *Client) FetchBalance(ctx context.Context, address ac.Address) (*ac.Balance, error) {
	var resp addressBalance
	query := url.Values{}
	if client.token != "" {
		query.Set("token", client.token)
	}
	path := fmt.Sprintf("/addrs/%s/balance", url.PathEscape(string(address)))
	if err := client.explorer.Get(ctx, path, query, &resp); err != nil {
		return nil, err
	}
	return ac.NewBalance(address, client.explorer.Chain, ac.NewAmountBlockchainFromUint64(resp.Balance), resp.NTx), nil
}

package blockchaininfo

import (
	"context"
	"net/url"

	ac "github.com/cordialsys/addrcheck"
	xclient "github.com/cordialsys/addrcheck/client"
	"github.com/cordialsys/addrcheck/client/explorer"
)

// Client for the blockchain.info API
type Client struct {
	explorer *explorer.Client
}

var _ xclient.BalanceClient = &Client{}

type rawAddr struct {
	Address       string `json:"address"`
	FinalBalance  uint64 `json:"final_balance"`
	TotalReceived uint64 `json:"total_received"`
	NTx           uint64 `json:"n_tx"`
}

func NewClient(cfg *ac.ChainClientConfig) (*Client, error) {
	explorerClient, err := explorer.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return &Client{explorerClient}, nil
}

func (client *Client) FetchBalance(ctx context.Context, address ac.Address) (*ac.Balance, error) {
	var resp rawAddr
	// the transaction list is not needed
	query := url.Values{"limit": []string{"0"}}
	if err := client.explorer.Get(ctx, "/rawaddr/"+url.PathEscape(string(address)), query, &resp); err != nil {
		return nil, err
	}
	return ac.NewBalance(address, client.explorer.Chain, ac.NewAmountBlockchainFromUint64(resp.FinalBalance), resp.NTx), nil
}

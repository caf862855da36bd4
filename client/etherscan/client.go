package etherscan

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/url"
	"strings"

	ac "github.com/cordialsys/addrcheck"
	xclient "github.com/cordialsys/addrcheck/client"
	"github.com/cordialsys/addrcheck/client/errors"
	"github.com/cordialsys/addrcheck/client/explorer"
	"github.com/ethereum/go-ethereum/common"
)

// Largest page etherscan returns from txlist
const MaxPageSize = 10000

const statusOk = "1"

const messageNoTransactions = "No transactions found"

// Client for the Etherscan account API, e.g. https://api.etherscan.io/api
type Client struct {
	explorer *explorer.Client
	ApiKey   string
}

var _ xclient.BalanceClient = &Client{}

type response struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

func NewClient(cfg *ac.ChainClientConfig) (*Client, error) {
	explorerClient, err := explorer.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	apiKey, err := cfg.Auth.Load()
	if err != nil || apiKey == "" {
		return nil, fmt.Errorf("api key required for etherscan client (set .auth reference)")
	}
	return &Client{explorerClient, apiKey}, nil
}

func (client *Client) FetchBalance(ctx context.Context, address ac.Address) (*ac.Balance, error) {
	hexAddress := strings.ToLower(common.HexToAddress(string(address)).Hex())

	balanceResp, err := client.call(ctx, url.Values{
		"action":  []string{"balance"},
		"address": []string{hexAddress},
		"tag":     []string{"latest"},
	})
	if err != nil {
		return nil, err
	}
	if balanceResp.Status != statusOk {
		return nil, balanceResp.statusError("balance")
	}
	var weiStr string
	if err := json.Unmarshal(balanceResp.Result, &weiStr); err != nil {
		return nil, errors.BadResponsef("etherscan balance result: %v", err)
	}
	wei, ok := new(big.Int).SetString(weiStr, 10)
	if !ok {
		return nil, errors.BadResponsef("etherscan balance is not an integer: %q", weiStr)
	}

	txCount, err := client.fetchTransactionCount(ctx, hexAddress)
	if err != nil {
		return nil, err
	}
	return ac.NewBalance(address, client.explorer.Chain, ac.AmountBlockchain(*wei), txCount), nil
}

// Counts the first page of the normal transaction list; addresses with more transactions
// report MaxPageSize.
func (client *Client) fetchTransactionCount(ctx context.Context, hexAddress string) (uint64, error) {
	txResp, err := client.call(ctx, url.Values{
		"action":     []string{"txlist"},
		"address":    []string{hexAddress},
		"startblock": []string{"0"},
		"endblock":   []string{"99999999"},
		"page":       []string{"1"},
		"offset":     []string{fmt.Sprint(MaxPageSize)},
		"sort":       []string{"asc"},
	})
	if err != nil {
		return 0, err
	}
	if txResp.Status != statusOk {
		// an address without history comes back with status 0
		if txResp.Message == messageNoTransactions {
			return 0, nil
		}
		return 0, txResp.statusError("txlist")
	}
	var txs []json.RawMessage
	if err := json.Unmarshal(txResp.Result, &txs); err != nil {
		return 0, errors.BadResponsef("etherscan txlist result: %v", err)
	}
	return uint64(len(txs)), nil
}

// statusError maps a status 0 reply, e.g. {"status":"0","message":"NOTOK","result":"Max rate limit reached"}.
func (resp *response) statusError(action string) error {
	var result string
	if err := json.Unmarshal(resp.Result, &result); err != nil {
		result = string(resp.Result)
	}
	if strings.Contains(strings.ToLower(result), "rate limit") {
		return errors.Errorf(errors.RateLimited, "etherscan %s: %s: %s", action, resp.Message, result)
	}
	return errors.BadResponsef("etherscan %s: %s: %s", action, resp.Message, result)
}

func (client *Client) call(ctx context.Context, query url.Values) (*response, error) {
	query.Set("module", "account")
	query.Set("apikey", client.ApiKey)
	var resp response
	if err := client.explorer.Get(ctx, "", query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

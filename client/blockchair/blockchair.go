package blockchair

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	ac "github.com/cordialsys/addrcheck"
	xclient "github.com/cordialsys/addrcheck/client"
	"github.com/cordialsys/addrcheck/client/errors"
	"github.com/cordialsys/addrcheck/client/explorer"
	log "github.com/sirupsen/logrus"
)

// Client for the Blockchair API, e.g. https://api.blockchair.com/bitcoin-cash
type BlockchairClient struct {
	explorer *explorer.Client
	ApiKey   string
}

var _ xclient.BalanceClient = &BlockchairClient{}

// NewBlockchairClient creates a client; the api key is optional for low request volumes.
func NewBlockchairClient(cfg *ac.ChainClientConfig) (*BlockchairClient, error) {
	explorerClient, err := explorer.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	apiKey := ""
	if cfg.Auth != "" {
		apiKey, err = cfg.Auth.Load()
		if err != nil {
			return nil, fmt.Errorf("could not load blockchair api key: %v", err)
		}
	}
	return &BlockchairClient{
		explorer: explorerClient,
		ApiKey:   apiKey,
	}, nil
}

func (client *BlockchairClient) FetchBalance(ctx context.Context, address ac.Address) (*ac.Balance, error) {
	var data blockchairAddressData
	if err := client.send(ctx, &data, "/dashboards/address", string(address)); err != nil {
		return nil, err
	}
	balance := ac.NewAmountBlockchainFromUint64(data.Address.Balance)
	return ac.NewBalance(address, client.explorer.Chain, balance, data.Address.TransactionCount), nil
}

// send unwraps data[value] of a dashboard response into resp.
func (client *BlockchairClient) send(ctx context.Context, resp interface{}, method string, value string) error {
	query := url.Values{}
	if client.ApiKey != "" {
		query.Set("key", client.ApiKey)
	}

	var raw json.RawMessage
	if err := client.explorer.Get(ctx, fmt.Sprintf("%s/%s", method, url.PathEscape(value)), query, &raw); err != nil {
		return err
	}

	var apiData blockchairData
	err := json.Unmarshal(raw, &apiData)
	if err != nil {
		var notFound blockchairNotFoundData
		if err2 := json.Unmarshal(raw, &notFound); err2 == nil {
			return errors.Errorf(errors.AddressNotFound, "could not find a result on blockchair")
		}
		return errors.BadResponsef("could not decode blockchair response: %v", err)
	}

	if apiData.Context.Code != 200 {
		return errors.BadResponsef("error code failure: %d: %s", apiData.Context.Code, apiData.Context.Error)
	}

	innerData, found := apiData.Data[value]
	if !found {
		log.WithField("keys", len(apiData.Data)).Debug("blockchair response is missing the address")
		return errors.Errorf(errors.AddressNotFound, "blockchair response has no entry for %s", value)
	}
	if err := json.Unmarshal(innerData, resp); err != nil {
		return errors.BadResponsef("could not decode blockchair %s: %v", method, err)
	}
	return nil
}

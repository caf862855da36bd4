// Package factory wires configuration into the validator and the balance clients.
package factory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/allegro/bigcache/v3"
	ac "github.com/cordialsys/addrcheck"
	xclient "github.com/cordialsys/addrcheck/client"
	"github.com/cordialsys/addrcheck/config"
	"github.com/cordialsys/addrcheck/config/constants"
	factoryconfig "github.com/cordialsys/addrcheck/factory/config"
	"github.com/cordialsys/addrcheck/factory/defaults"
	"github.com/cordialsys/addrcheck/factory/drivers"
	"github.com/cordialsys/addrcheck/normalize"
	"github.com/cordialsys/addrcheck/validator"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

type FactoryOptions struct {
	// Count validations on this registerer, if set
	Metrics prometheus.Registerer
}

// Factory is the entry point used by the CLI: it owns the validator built from the
// config, one balance client per chain and the balance cache.
type Factory struct {
	Config *factoryconfig.Config

	// Replaces drivers.NewBalanceClient when set
	NewBalanceClientFunc func(cfg *ac.ChainClientConfig) (xclient.BalanceClient, error)

	validator *validator.Validator
	cache     *bigcache.BigCache
	clients   sync.Map
}

// LoadConfig reads the addrcheck section of the config file over the embedded defaults.
func LoadConfig() (*factoryconfig.Config, error) {
	cfg := factoryconfig.Config{}
	err := config.RequireConfig(constants.ConfigSection, &cfg, defaults.Mainnet)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func NewFactory(options *FactoryOptions) (*Factory, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return NewDefaultFactoryWithConfig(cfg, options)
}

// NewDefaultFactory loads the config file (or the embedded defaults if there is none).
func NewDefaultFactory() (*Factory, error) {
	return NewFactory(&FactoryOptions{})
}

// NewDefaultFactoryWithConfig creates a new Factory given a config
func NewDefaultFactoryWithConfig(cfg *factoryconfig.Config, options *FactoryOptions) (*Factory, error) {
	if options == nil {
		options = &FactoryOptions{}
	}
	cfg.Parse()
	if !cfg.EthereumChecksumHash.Valid() {
		return nil, fmt.Errorf("invalid ethereum_checksum_hash %q", cfg.EthereumChecksumHash)
	}

	validatorOptions := []validator.Option{validator.WithChecksumHash(cfg.EthereumChecksumHash)}
	if options.Metrics != nil {
		validatorOptions = append(validatorOptions, validator.WithMetrics(options.Metrics))
	}

	factory := &Factory{
		Config:    cfg,
		validator: validator.New(validatorOptions...),
	}
	if cfg.BalanceCacheTTL > 0 {
		cache, err := newBalanceCache(cfg)
		if err != nil {
			return nil, err
		}
		factory.cache = cache
	}
	return factory, nil
}

func newBalanceCache(cfg *factoryconfig.Config) (*bigcache.BigCache, error) {
	cacheConfig := bigcache.DefaultConfig(cfg.BalanceCacheTTL)
	cacheConfig.Shards = 64
	cacheConfig.MaxEntriesInWindow = 10_000
	cacheConfig.MaxEntrySize = 512
	cacheConfig.CleanWindow = cfg.BalanceCacheTTL
	cacheConfig.Verbose = false
	cache, err := bigcache.New(context.Background(), cacheConfig)
	if err != nil {
		return nil, fmt.Errorf("could not create balance cache: %v", err)
	}
	return cache, nil
}

func (f *Factory) Validator() *validator.Validator {
	return f.validator
}

func (f *Factory) ValidateAddress(address ac.Address, chain ac.ChainType) *ac.ValidationResult {
	return f.validator.ValidateAddress(address, chain)
}

func (f *Factory) DetectChain(address ac.Address) ac.ChainType {
	return f.validator.DetectChain(address)
}

func (f *Factory) GetChainConfig(chain ac.ChainType) (*ac.ChainClientConfig, error) {
	chainCfg, ok := f.Config.GetChain(chain)
	if !ok {
		return nil, fmt.Errorf("no explorer is configured for chain %q", chain)
	}
	return chainCfg, nil
}

// NewBalanceClient returns the balance client of the chain, reusing it across calls so that
// its rate limiter is shared.
func (f *Factory) NewBalanceClient(chain ac.ChainType) (xclient.BalanceClient, error) {
	if client, ok := f.clients.Load(chain); ok {
		return client.(xclient.BalanceClient), nil
	}
	chainCfg, err := f.GetChainConfig(chain)
	if err != nil {
		return nil, err
	}
	newClient := drivers.NewBalanceClient
	if f.NewBalanceClientFunc != nil {
		newClient = f.NewBalanceClientFunc
	}
	client, err := newClient(chainCfg)
	if err != nil {
		return nil, err
	}
	actual, _ := f.clients.LoadOrStore(chain, client)
	return actual.(xclient.BalanceClient), nil
}

// FetchBalance queries the chain's explorer, or the cache.
func (f *Factory) FetchBalance(ctx context.Context, address ac.Address, chain ac.ChainType) (*ac.Balance, error) {
	address = normalize.Normalize(address, chain)
	key := cacheKey(address, chain)
	if balance, ok := f.cachedBalance(key); ok {
		return balance, nil
	}

	client, err := f.NewBalanceClient(chain)
	if err != nil {
		return nil, err
	}
	balance, err := client.FetchBalance(ctx, address)
	if err != nil {
		return nil, err
	}
	f.cacheBalance(key, balance)
	return balance, nil
}

// GetBalance is FetchBalance that never fails: any error is logged and reported as a zero
// balance with no transactions.
func (f *Factory) GetBalance(ctx context.Context, address ac.Address, chain ac.ChainType) *ac.Balance {
	balance, err := f.FetchBalance(ctx, address, chain)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"chain":   chain,
			"address": address,
		}).Warn("could not fetch balance")
		return ac.ZeroBalance(normalize.Normalize(address, chain), chain)
	}
	return balance
}

func cacheKey(address ac.Address, chain ac.ChainType) string {
	return string(chain) + "/" + string(address)
}

func (f *Factory) cachedBalance(key string) (*ac.Balance, bool) {
	if f.cache == nil {
		return nil, false
	}
	bz, err := f.cache.Get(key)
	if err != nil {
		if err != bigcache.ErrEntryNotFound {
			logrus.WithError(err).Debug("balance cache")
		}
		return nil, false
	}
	var balance ac.Balance
	if err := json.Unmarshal(bz, &balance); err != nil {
		logrus.WithError(err).Debug("could not decode cached balance")
		return nil, false
	}
	return &balance, true
}

func (f *Factory) cacheBalance(key string, balance *ac.Balance) {
	if f.cache == nil {
		return
	}
	bz, err := json.Marshal(balance)
	if err != nil {
		return
	}
	if err := f.cache.Set(key, bz); err != nil {
		logrus.WithError(err).Debug("could not cache balance")
	}
}

// Close releases the balance cache.
func (f *Factory) Close() error {
	if f.cache == nil {
		return nil
	}
	return f.cache.Close()
}

package config

import (
	"sort"
	"time"

	ac "github.com/cordialsys/addrcheck"
	"github.com/cordialsys/addrcheck/codec/eip55"
)

const DefaultHttpTimeout = 30 * time.Second
const DefaultBalanceCacheTTL = 60 * time.Second

// Config is the "addrcheck" section of the config file
type Config struct {
	// Hash used to report Ethereum checksum casing: keccak256 (default) or sha256
	EthereumChecksumHash eip55.Hash    `yaml:"ethereum_checksum_hash,omitempty"`
	HttpTimeout          time.Duration `yaml:"http_timeout,omitempty"`
	// How long balances are cached, a negative value disables the cache
	BalanceCacheTTL time.Duration `yaml:"balance_cache_ttl,omitempty"`

	// map of chain -> explorer settings
	Chains map[ac.ChainType]*ac.ChainClientConfig `yaml:"chains"`

	// Has this been parsed already
	parsed bool `yaml:"-"`
}

// MigrateFields fills in what may be left out of a chain entry: the chain id from its
// key, the http timeout and the rate limiter.
func (cfg *Config) MigrateFields() {
	if cfg.HttpTimeout == 0 {
		cfg.HttpTimeout = DefaultHttpTimeout
	}
	for chain, chainCfg := range cfg.Chains {
		if chainCfg == nil {
			chainCfg = &ac.ChainClientConfig{}
			cfg.Chains[chain] = chainCfg
		}
		if chainCfg.Chain == "" {
			chainCfg.Chain = chain
		}
		if chainCfg.Timeout == 0 {
			chainCfg.Timeout = cfg.HttpTimeout
		}
		chainCfg.Configure()
	}
}

func (cfg *Config) Parse() {
	if cfg.EthereumChecksumHash == "" {
		cfg.EthereumChecksumHash = eip55.Keccak256
	}
	if cfg.BalanceCacheTTL == 0 {
		cfg.BalanceCacheTTL = DefaultBalanceCacheTTL
	}
	cfg.MigrateFields()

	cfg.parsed = true
}

func (cfg *Config) IsParsed() bool {
	return cfg.parsed
}

func (cfg *Config) GetChain(chain ac.ChainType) (*ac.ChainClientConfig, bool) {
	chainCfg, ok := cfg.Chains[chain]
	return chainCfg, ok && chainCfg != nil
}

func (cfg *Config) GetChains() []*ac.ChainClientConfig {
	slice := make([]*ac.ChainClientConfig, 0, len(cfg.Chains))
	for _, chainCfg := range cfg.Chains {
		slice = append(slice, chainCfg)
	}
	sort.Slice(slice, func(i, j int) bool {
		// need to be sorted deterministically
		return slice[i].Chain < slice[j].Chain
	})
	return slice
}

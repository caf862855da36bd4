package addrcheck

import (
	"fmt"
	"time"

	"github.com/cordialsys/addrcheck/config"
	"golang.org/x/time/rate"
)

// Provider names the explorer API a chain's balance client talks to.
type Provider string

const (
	BlockchainInfo = Provider("blockchain-info")
	Etherscan      = Provider("etherscan")
	Blockcypher    = Provider("blockcypher")
	Blockchair     = Provider("blockchair")
)

var ProviderList = []Provider{
	BlockchainInfo,
	Etherscan,
	Blockcypher,
	Blockchair,
}

func (p Provider) Valid() bool {
	for _, provider := range ProviderList {
		if provider == p {
			return true
		}
	}
	return false
}

// ChainClientConfig configures the explorer used to look up balances of a chain.
type ChainClientConfig struct {
	Chain ChainType `yaml:"chain,omitempty"`
	URL   string    `yaml:"url,omitempty"`

	// Set a secret reference, see config/secret.go.  Used for setting an API keys.
	Auth config.Secret `yaml:"auth,omitempty"`

	Provider Provider `yaml:"provider,omitempty"`

	// Per request timeout; the factory default applies when unset
	Timeout time.Duration `yaml:"timeout,omitempty"`
	// Retries on connection errors and 5xx responses
	MaxRetries int `yaml:"max_retries,omitempty"`

	// Rate limit setting on requests for client, in requests/second.
	RateLimit rate.Limit `yaml:"rate_limit,omitempty"`
	// Period between requests (alternative to `rate_limit`)
	PeriodLimit time.Duration `yaml:"period_limit,omitempty"`
	// Number of requests to permit in burst
	Burst int `yaml:"burst,omitempty"`

	// Rate limiter configured from `rate_limit`, `period_limit`, `burst` (requires calling .Configure after loading from config)
	Limiter *rate.Limiter `yaml:"-" mapstructure:"-"`
}

func (chain *ChainClientConfig) NewClientLimiter() *rate.Limiter {
	// default no limit
	burst := chain.Burst
	if burst == 0 {
		burst = 1
	}
	var limiter = rate.NewLimiter(rate.Inf, burst)
	if chain.PeriodLimit != 0 {
		limiter = rate.NewLimiter(rate.Every(chain.PeriodLimit), burst)
	}
	if chain.RateLimit != 0 {
		limiter = rate.NewLimiter(chain.RateLimit, burst)
	}
	return limiter
}

func (chain *ChainClientConfig) Configure() {
	chain.Limiter = chain.NewClientLimiter()
}

func (c ChainClientConfig) String() string {
	return fmt.Sprintf(
		"ChainClientConfig(chain=%s provider=%s url=%s auth=%s)",
		c.Chain, c.Provider, c.URL, c.Auth.Redacted(),
	)
}

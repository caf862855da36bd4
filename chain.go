package addrcheck

import (
	"fmt"
	"strings"
)

// ChainType identifies one of the supported chains.
type ChainType string

const (
	Bitcoin     = ChainType("bitcoin")
	Ethereum    = ChainType("ethereum")
	Litecoin    = ChainType("litecoin")
	BitcoinCash = ChainType("bitcoin_cash")
	Dogecoin    = ChainType("dogecoin")
)

// Unknown is returned by chain detection when no heuristic matched.
const Unknown = ChainType("")

var ChainTypeList = []ChainType{
	Bitcoin,
	Ethereum,
	Litecoin,
	BitcoinCash,
	Dogecoin,
}

func (chain ChainType) Valid() bool {
	for _, c := range ChainTypeList {
		if c == chain {
			return true
		}
	}
	return false
}

func (chain ChainType) String() string {
	return string(chain)
}

// Info returns the static metadata of the chain.
func (chain ChainType) Info() (ChainInfo, bool) {
	info, ok := chainInfos[chain]
	return info, ok
}

// ParseChainType accepts a chain id ("bitcoin_cash"), a symbol ("BCH") or a display name
// ("Bitcoin Cash"), case-insensitively.
func ParseChainType(s string) (ChainType, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer(" ", "_", "-", "_").Replace(normalized)
	for _, chain := range ChainTypeList {
		info := chainInfos[chain]
		if normalized == string(chain) || normalized == strings.ToLower(info.Symbol) {
			return chain, nil
		}
	}
	return Unknown, fmt.Errorf("unsupported chain: %s", s)
}

// ChainInfo is display and explorer metadata for a chain.
type ChainInfo struct {
	Chain    ChainType `json:"chain" yaml:"chain"`
	Name     string    `json:"name" yaml:"name"`
	Symbol   string    `json:"symbol" yaml:"symbol"`
	Decimals int32     `json:"decimals" yaml:"decimals"`
	// Leading characters an address of this chain may start with.
	Prefixes    []string `json:"prefixes" yaml:"prefixes"`
	ExplorerURL string   `json:"explorer_url" yaml:"explorer_url"`
}

// ExplorerAddressURL links to the address page on the chain's explorer.
func (info ChainInfo) ExplorerAddressURL(address Address) string {
	return fmt.Sprintf("%s/address/%s", strings.TrimSuffix(info.ExplorerURL, "/"), address.Normalize())
}

var chainInfos = map[ChainType]ChainInfo{
	Bitcoin: {
		Chain:       Bitcoin,
		Name:        "Bitcoin",
		Symbol:      "BTC",
		Decimals:    8,
		Prefixes:    []string{"1", "3", "bc1"},
		ExplorerURL: "https://blockchain.info",
	},
	Ethereum: {
		Chain:       Ethereum,
		Name:        "Ethereum",
		Symbol:      "ETH",
		Decimals:    18,
		Prefixes:    []string{"0x"},
		ExplorerURL: "https://etherscan.io",
	},
	Litecoin: {
		Chain:       Litecoin,
		Name:        "Litecoin",
		Symbol:      "LTC",
		Decimals:    8,
		Prefixes:    []string{"L", "M", "ltc1"},
		ExplorerURL: "https://blockchair.com/litecoin",
	},
	BitcoinCash: {
		Chain:       BitcoinCash,
		Name:        "Bitcoin Cash",
		Symbol:      "BCH",
		Decimals:    8,
		Prefixes:    []string{"bitcoincash:", "1", "3", "q", "p"},
		ExplorerURL: "https://blockchair.com/bitcoin-cash",
	},
	Dogecoin: {
		Chain:       Dogecoin,
		Name:        "Dogecoin",
		Symbol:      "DOGE",
		Decimals:    8,
		Prefixes:    []string{"D"},
		ExplorerURL: "https://blockchair.com/dogecoin",
	},
}

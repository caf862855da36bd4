package common

import (
	"strings"

	ac "github.com/cordialsys/addrcheck"
	"github.com/cordialsys/addrcheck/factory/config"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// viper will always lowercase the keys in maps,
// whereas unmarshaling "natively" will preserve case.
// So we need to do an extra step here to lowercase all of the keys
func lowercaseMap(list map[ac.ChainType]*ac.ChainClientConfig) map[ac.ChainType]*ac.ChainClientConfig {
	toMap := map[ac.ChainType]*ac.ChainClientConfig{}
	for key, item := range list {
		if item == nil {
			item = &ac.ChainClientConfig{}
		}
		if item.Chain == "" {
			item.Chain = key
		}
		chain := ac.ChainType(strings.ToLower(string(item.Chain)))
		if _, ok := toMap[chain]; ok {
			logrus.Warnf("multiple entries for %s", chain)
		}
		item.Chain = chain
		toMap[chain] = item
	}
	return toMap
}

func Unmarshal(data string) *config.Config {
	cfg := &config.Config{}
	err := yaml.Unmarshal([]byte(data), cfg)
	if err != nil {
		panic(err)
	}
	cfg.Chains = lowercaseMap(cfg.Chains)

	return cfg
}

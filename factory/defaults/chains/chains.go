package chains

import (
	_ "embed"

	ac "github.com/cordialsys/addrcheck"
	"github.com/cordialsys/addrcheck/factory/defaults/common"
)

//go:embed mainnet.yaml
var mainnetData string

var Mainnet map[ac.ChainType]*ac.ChainClientConfig

func init() {
	maincfg := common.Unmarshal(mainnetData)
	Mainnet = maincfg.Chains
}

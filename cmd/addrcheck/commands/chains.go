package commands

import (
	ac "github.com/cordialsys/addrcheck"
	"github.com/cordialsys/addrcheck/cmd/addrcheck/setup"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type chainEntry struct {
	ac.ChainInfo `yaml:",inline"`
	Provider     ac.Provider `json:"provider,omitempty" yaml:"provider,omitempty"`
	ExplorerAPI  string      `json:"explorer_api,omitempty" yaml:"explorer_api,omitempty"`
}

func CmdChains() *cobra.Command {
	return &cobra.Command{
		Use:   "chains",
		Short: "List information on all supported chains.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := setup.UnwrapFactory(cmd.Context())
			entries := []*chainEntry{}
			for _, chain := range ac.ChainTypeList {
				info, _ := chain.Info()
				entry := &chainEntry{ChainInfo: info}
				if chainCfg, ok := f.Config.GetChain(chain); ok {
					entry.Provider = chainCfg.Provider
					entry.ExplorerAPI = chainCfg.URL
				} else {
					logrus.WithField("chain", chain).Info("no explorer configured")
				}
				entries = append(entries, entry)
			}
			return printOutput(cmd, entries)
		},
	}
}

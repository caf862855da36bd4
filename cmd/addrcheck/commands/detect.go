package commands

import (
	ac "github.com/cordialsys/addrcheck"
	"github.com/cordialsys/addrcheck/cmd/addrcheck/setup"
	"github.com/spf13/cobra"
)

type detection struct {
	Address  ac.Address   `json:"address" yaml:"address"`
	Chain    ac.ChainType `json:"chain,omitempty" yaml:"chain,omitempty"`
	Detected bool         `json:"detected" yaml:"detected"`
	Explorer string       `json:"explorer,omitempty" yaml:"explorer,omitempty"`
}

func CmdDetect() *cobra.Command {
	return &cobra.Command{
		Use:   "detect [address]",
		Short: "Guess the chain of an address from its prefix and length. The address is not validated.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := setup.UnwrapFactory(cmd.Context())
			address := ac.Address(args[0])
			chain := f.DetectChain(address)
			result := &detection{
				Address:  address,
				Chain:    chain,
				Detected: chain != ac.Unknown,
			}
			if info, ok := chain.Info(); ok {
				result.Explorer = info.ExplorerAddressURL(address)
			}
			return printOutput(cmd, result)
		},
	}
}

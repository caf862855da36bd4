package commands

import (
	"fmt"

	ac "github.com/cordialsys/addrcheck"
	"github.com/cordialsys/addrcheck/cmd/addrcheck/setup"
	"github.com/spf13/cobra"
)

func CmdBalance() *cobra.Command {
	var degrade bool
	cmd := &cobra.Command{
		Use:   "balance [address]",
		Short: "Look up the balance and transaction count of a valid address on the chain's explorer.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := setup.UnwrapFactory(cmd.Context())
			chain := setup.UnwrapArgs(cmd.Context()).Chain
			address := ac.Address(args[0])
			if chain == "" {
				chain = f.DetectChain(address)
				if chain == ac.Unknown {
					return fmt.Errorf("could not detect the chain of %q, set --chain", args[0])
				}
			}

			result := f.ValidateAddress(address, chain)
			if !result.IsValid {
				return fmt.Errorf("invalid %s address: %s", chain, result.ErrorMessage)
			}

			if degrade {
				return printOutput(cmd, f.GetBalance(cmd.Context(), address, chain))
			}
			balance, err := f.FetchBalance(cmd.Context(), address, chain)
			if err != nil {
				return fmt.Errorf("could not fetch balance for address %s: %v", address.Normalize(), err)
			}
			return printOutput(cmd, balance)
		},
	}
	cmd.Flags().BoolVar(&degrade, "zero-on-error", false, "Report a zero balance instead of failing when the explorer cannot be reached.")
	return cmd
}

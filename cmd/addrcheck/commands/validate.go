package commands

import (
	"fmt"

	ac "github.com/cordialsys/addrcheck"
	"github.com/cordialsys/addrcheck/cmd/addrcheck/setup"
	"github.com/cordialsys/addrcheck/validator"
	"github.com/spf13/cobra"
)

func CmdValidate() *cobra.Command {
	var concurrency int
	var strict bool
	cmd := &cobra.Command{
		Use:   "validate [address...]",
		Short: "Validate one or more addresses. The chain is detected from each address when --chain is not set.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := setup.UnwrapFactory(cmd.Context())
			chain := setup.UnwrapArgs(cmd.Context()).Chain

			if len(args) == 1 {
				address := ac.Address(args[0])
				if chain == "" {
					chain = f.DetectChain(address)
					if chain == ac.Unknown {
						return fmt.Errorf("could not detect the chain of %q, set --chain", args[0])
					}
				}
				result := f.ValidateAddress(address, chain)
				if err := printOutput(cmd, result); err != nil {
					return err
				}
				if strict && !result.IsValid {
					return fmt.Errorf("invalid %s address: %s", chain, result.ErrorMessage)
				}
				return nil
			}

			requests := make([]validator.Request, len(args))
			for i, arg := range args {
				requests[i] = validator.Request{Address: ac.Address(arg), Chain: chain}
			}
			results, err := f.Validator().ValidateAll(cmd.Context(), requests, concurrency)
			if err != nil {
				return err
			}
			if err := printOutput(cmd, results); err != nil {
				return err
			}
			if strict {
				invalid := 0
				for _, result := range results {
					if !result.IsValid {
						invalid++
					}
				}
				if invalid > 0 {
					return fmt.Errorf("%d of %d addresses are invalid", invalid, len(results))
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&concurrency, "concurrency", validator.DefaultConcurrency, "Addresses validated in parallel.")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when an address is invalid.")
	return cmd
}

package main

import (
	"os"

	"github.com/cordialsys/addrcheck/cmd/addrcheck/commands"
	"github.com/cordialsys/addrcheck/cmd/addrcheck/setup"
	"github.com/cordialsys/addrcheck/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func CmdAddrcheck() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "addrcheck",
		Short:        "Validate cryptocurrency addresses and look up their balances",
		Args:         cobra.ExactArgs(0),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			args, err := setup.ArgsFromCmd(cmd)
			if err != nil {
				return err
			}
			setup.ConfigureLogger(args)

			if err := config.LoadEnvFiles(args.EnvFiles...); err != nil {
				return err
			}
			f, err := setup.LoadFactory(args)
			if err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"chain":         args.Chain,
				"checksum_hash": f.Config.EthereumChecksumHash,
			}).Info("addrcheck")
			cmd.SetContext(setup.CreateContext(cmd.Context(), f, args))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return setup.UnwrapFactory(cmd.Context()).Close()
		},
	}
	setup.AddArgs(cmd)

	cmd.AddCommand(commands.CmdValidate())
	cmd.AddCommand(commands.CmdDetect())
	cmd.AddCommand(commands.CmdBalance())
	cmd.AddCommand(commands.CmdChains())

	return cmd
}

func main() {
	rootCmd := CmdAddrcheck()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

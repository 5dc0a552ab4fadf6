package main

import (
	"os"

	"github.com/cordialsys/walletfee/cmd/walletfee/commands"
	"github.com/cordialsys/walletfee/cmd/walletfee/setup"
	"github.com/cordialsys/walletfee/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func CmdWalletfee() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "walletfee",
		Short:        "Explain what a transfer or swap will cost, and whether it can be paid",
		Args:         cobra.ExactArgs(0),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			args, err := setup.ArgsFromCmd(cmd)
			if err != nil {
				return err
			}
			config.ConfigureLogger(config.LevelFromVerbosity(args.VerbosityCount))

			cat, err := setup.LoadCatalog(args)
			if err != nil {
				return err
			}
			ctx := setup.CreateContext(cmd.Context(), cat)
			switch cmd.Name() {
			case "chains":
				// the only command that works without a chain
				cmd.SetContext(ctx)
				return nil
			}

			chainConfig, err := setup.LoadChain(cat, args.Chain)
			if err != nil {
				return err
			}
			logrus.WithFields(logrus.Fields{
				"chain":   chainConfig.Chain,
				"driver":  chainConfig.Driver,
				"gasless": chainConfig.SupportsGasless(),
			}).Info("chain")
			cmd.SetContext(setup.WrapChain(ctx, chainConfig))
			return nil
		},
	}
	setup.AddArgs(cmd)

	cmd.AddCommand(commands.CmdTransfer())
	cmd.AddCommand(commands.CmdSwap())
	cmd.AddCommand(commands.CmdCheck())
	cmd.AddCommand(commands.CmdChains())
	cmd.AddCommand(commands.CmdTokens())

	return cmd
}

func main() {
	rootCmd := CmdWalletfee()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

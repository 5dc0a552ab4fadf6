package setup

import (
	"fmt"
	"os"

	"github.com/cordialsys/walletfee/config/constants"
	"github.com/spf13/cobra"
)

const ChainEnv = "WALLETFEE_CHAIN"

type Args struct {
	Chain          string
	ConfigPath     string
	VerbosityCount int
}

func AddArgs(cmd *cobra.Command) {
	cmd.PersistentFlags().String("chain", os.Getenv(ChainEnv), fmt.Sprintf("Chain to use (may set %s env var).", ChainEnv))
	cmd.PersistentFlags().String("config", "", fmt.Sprintf("Path to a config.yaml overriding the chain and token catalog (may set %s).", constants.ConfigEnv))
	cmd.PersistentFlags().CountP("verbose", "v", "Set verbosity.")
}

func ArgsFromCmd(cmd *cobra.Command) (*Args, error) {
	chain, err := cmd.Flags().GetString("chain")
	if err != nil {
		return nil, err
	}
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	count, _ := cmd.Flags().GetCount("verbose")

	return &Args{
		Chain:          chain,
		ConfigPath:     configPath,
		VerbosityCount: count,
	}, nil
}

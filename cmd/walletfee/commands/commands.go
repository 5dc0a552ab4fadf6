package commands

import (
	"encoding/json"
	"fmt"

	"github.com/cordialsys/walletfee/cmd/walletfee/setup"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func asJson(data any) string {
	bz, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		panic(err)
	}
	return string(bz)
}

func CmdChains() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chains",
		Short: "List all chains in the catalog.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := setup.UnwrapCatalog(cmd.Context())
			chains := cat.Chains()
			logrus.WithField("count", len(chains)).Info("listing chains")
			fmt.Println(asJson(chains))
			return nil
		},
	}
	return cmd
}

func CmdTokens() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "List the tokens of a chain in the catalog.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := setup.UnwrapCatalog(cmd.Context())
			chainConfig := setup.UnwrapChain(cmd.Context())
			fmt.Println(asJson(cat.Tokens(chainConfig.Chain)))
			return nil
		},
	}
	return cmd
}

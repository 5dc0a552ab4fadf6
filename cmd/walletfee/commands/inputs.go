package commands

import (
	"fmt"
	"strings"

	wf "github.com/cordialsys/walletfee"
	"github.com/cordialsys/walletfee/catalog"
	"github.com/cordialsys/walletfee/cmd/walletfee/setup"
	"github.com/cordialsys/walletfee/quote"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// feeInputs are the resolved inputs of a fee command.
type feeInputs struct {
	chain *wf.ChainConfig
	// nil when sending the native asset
	token *wf.TokenAssetConfig
	quote *quote.Quote
}

func (in *feeInputs) tokenIsNative() bool {
	return in.token == nil
}

func (in *feeInputs) tokenDecimals() int32 {
	if in.token == nil {
		return in.chain.Decimals
	}
	return in.token.Decimals
}

func (in *feeInputs) starsDecimals() int32 {
	if in.chain.Gasless == nil {
		return 0
	}
	return in.chain.Gasless.StarsDecimals
}

func (in *feeInputs) assetName() string {
	if in.token == nil {
		return string(in.chain.Chain)
	}
	if in.token.Symbol != "" {
		return in.token.Symbol
	}
	return string(in.token.Contract)
}

type amountFlag struct {
	name     string
	dst      **wf.AmountBlockchain
	decimals int32
}

// amountFlags must be listed after the diesel status and service fee
// denomination are known, since they decide some of the decimals.
func (in *feeInputs) amountFlags() []amountFlag {
	q := in.quote
	dieselDecimals := in.tokenDecimals()
	if q.DieselStatus.IsStars() {
		dieselDecimals = in.starsDecimals()
	}
	serviceDecimals := in.tokenDecimals()
	if q.ServiceFeeIsNative {
		serviceDecimals = in.chain.Decimals
	}
	return []amountFlag{
		{"amount", &q.Amount, in.tokenDecimals()},
		{"network-fee", &q.NetworkFee, in.chain.Decimals},
		{"real-network-fee", &q.RealNetworkFee, in.chain.Decimals},
		{"diesel-fee", &q.DieselFee, dieselDecimals},
		{"native-balance", &q.NativeBalance, in.chain.Decimals},
		{"token-balance", &q.TokenBalance, in.tokenDecimals()},
		{"stars-balance", &q.StarsBalance, in.starsDecimals()},
		{"service-fee", &q.ServiceFee, serviceDecimals},
	}
}

func addFeeFlags(cmd *cobra.Command) {
	cmd.Flags().String("token", "", "Symbol or contract of the token being sent. Default is the native asset.")
	cmd.Flags().String("quote", "", "Path to a yaml, json or toml quote. Flags override its values.")
	cmd.Flags().Bool("decimal", false, "Amounts are decimal amounts instead of big integers.")
	cmd.Flags().String("network-fee", "", "Quoted network fee, in the native asset.")
	cmd.Flags().String("real-network-fee", "", "Expected actual network fee, in the native asset.")
	cmd.Flags().String("diesel-fee", "", "Diesel fee, in the token, or in stars when the diesel status is stars-fee.")
	cmd.Flags().String("diesel-status", "", fmt.Sprintf("Diesel status of the token (options: %v).", wf.DieselStatusList))
	cmd.Flags().String("native-balance", "", "Native balance of the wallet.")
	cmd.Flags().String("token-balance", "", "Token balance of the wallet.")
	cmd.Flags().String("stars-balance", "", "Stars balance of the wallet.")
	cmd.Flags().String("service-fee", "", "Service fee of a swap, in the token unless --service-fee-native is set.")
	cmd.Flags().Bool("service-fee-native", false, "The service fee is in the native asset.")
}

func parseAmount(value string, decimals int32, isDecimal bool) (wf.AmountBlockchain, error) {
	if isDecimal {
		human, err := wf.NewAmountHumanReadableFromStr(value)
		if err != nil {
			return wf.AmountBlockchain{}, fmt.Errorf("not a valid decimal amount: %s", value)
		}
		return human.ToBlockchainExact(decimals)
	}
	return wf.ParseAmountBlockchain(value)
}

// resolveToken returns nil for the native asset.
func resolveToken(cat *catalog.Catalog, chain *wf.ChainConfig, input string) (*wf.TokenAssetConfig, error) {
	if wf.IsNativeContract(chain.Chain, wf.ContractAddress(input)) {
		return nil, nil
	}
	if token, ok := cat.TokenBySymbol(chain.Chain, strings.ToUpper(input)); ok {
		return token, nil
	}
	if token, ok := cat.Token(chain.Chain, wf.ContractAddress(input)); ok {
		return token, nil
	}
	return nil, fmt.Errorf("token %q not found on chain %s, see the tokens command", input, chain.Chain)
}

func loadFeeInputs(cmd *cobra.Command) (*feeInputs, error) {
	cat := setup.UnwrapCatalog(cmd.Context())
	chainConfig := setup.UnwrapChain(cmd.Context())

	tokenInput, err := cmd.Flags().GetString("token")
	if err != nil {
		return nil, err
	}
	token, err := resolveToken(cat, chainConfig, tokenInput)
	if err != nil {
		return nil, err
	}

	q := &quote.Quote{}
	quotePath, err := cmd.Flags().GetString("quote")
	if err != nil {
		return nil, err
	}
	if quotePath != "" {
		q, err = quote.Load(quotePath)
		if err != nil {
			return nil, err
		}
		logrus.WithField("quote", quotePath).Debug("loaded quote")
	}

	if cmd.Flags().Changed("diesel-status") {
		status, _ := cmd.Flags().GetString("diesel-status")
		q.DieselStatus = wf.DieselStatus(status)
	}
	if cmd.Flags().Changed("service-fee-native") {
		q.ServiceFeeIsNative, _ = cmd.Flags().GetBool("service-fee-native")
	}

	in := &feeInputs{
		chain: chainConfig,
		token: token,
		quote: q,
	}
	isDecimal, _ := cmd.Flags().GetBool("decimal")
	for _, flag := range in.amountFlags() {
		if cmd.Flags().Lookup(flag.name) == nil || !cmd.Flags().Changed(flag.name) {
			continue
		}
		value, _ := cmd.Flags().GetString(flag.name)
		amount, err := parseAmount(value, flag.decimals, isDecimal)
		if err != nil {
			return nil, fmt.Errorf("invalid --%s: %v", flag.name, err)
		}
		*flag.dst = &amount
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}

	if token != nil && q.DieselStatus.IsAvailable() && (!chainConfig.SupportsGasless() || !token.SupportsGasless()) {
		logrus.WithFields(logrus.Fields{
			"chain":         chainConfig.Chain,
			"asset":         in.assetName(),
			"diesel_status": q.DieselStatus,
		}).Warn("diesel is not supported for this asset, ignoring diesel status")
		q.DieselStatus = wf.DieselNotAvailable
	}
	return in, nil
}

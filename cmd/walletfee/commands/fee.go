package commands

import (
	"fmt"

	wf "github.com/cordialsys/walletfee"
	"github.com/cordialsys/walletfee/errors"
	"github.com/cordialsys/walletfee/explain"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type HumanFee struct {
	Full   *wf.FeeTermsHuman       `json:"full,omitempty"`
	Real   *wf.FeeTermsHuman       `json:"real,omitempty"`
	Excess *wf.AmountHumanReadable `json:"excess,omitempty"`
}

type FeeReport struct {
	Chain wf.NativeAsset `json:"chain"`
	Asset string         `json:"asset"`
	Fee   any            `json:"fee"`
	Human HumanFee       `json:"human"`
}

type CheckReport struct {
	FeeReport
	// "ok" or the reason the transfer cannot go ahead
	FeeLimit  string               `json:"fee_limit"`
	Balance   string               `json:"balance"`
	MaxAmount *wf.AmountBlockchain `json:"max_amount,omitempty"`
}

func (in *feeInputs) report(fee wf.ExplainedFee, data any) FeeReport {
	human := HumanFee{}
	convert := func(breakdown *wf.FeeBreakdown) *wf.FeeTermsHuman {
		if breakdown == nil {
			return nil
		}
		terms := breakdown.Terms.ToHuman(in.tokenDecimals(), in.chain.Decimals, in.starsDecimals())
		return &terms
	}
	human.Full = convert(fee.FullFee)
	human.Real = convert(fee.RealFee)
	if fee.Excess != nil {
		excess := fee.Excess.ToHuman(in.chain.Decimals)
		human.Excess = &excess
	}
	return FeeReport{
		Chain: in.chain.Chain,
		Asset: in.assetName(),
		Fee:   data,
		Human: human,
	}
}

func logFee(in *feeInputs, fee wf.ExplainedFee) {
	logrus.WithFields(logrus.Fields{
		"asset":         in.assetName(),
		"diesel_status": in.quote.DieselStatus,
		"gasless":       fee.IsGasless,
		"quoted":        fee.FullFee != nil,
	}).Info("explained fee")
}

func explainTransfer(in *feeInputs) wf.ExplainedFee {
	fee := explain.ExplainTransferFee(in.quote.FeeArgs(in.tokenIsNative()))
	logFee(in, fee)
	return fee
}

func statusOrOk(err error) string {
	if err == nil {
		return "ok"
	}
	return err.Error()
}

func CmdTransfer() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transfer",
		Aliases: []string{"tf"},
		Short:   "Explain the fee of a transfer.",
		Args:    cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := loadFeeInputs(cmd)
			if err != nil {
				return err
			}
			fee := explainTransfer(in)
			fmt.Println(asJson(in.report(fee, fee)))
			return nil
		},
	}
	addFeeFlags(cmd)
	return cmd
}

func CmdSwap() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap",
		Short: "Explain the fee of a swap, including its service fee.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := loadFeeInputs(cmd)
			if err != nil {
				return err
			}
			venue, err := cmd.Flags().GetString("venue")
			if err != nil {
				return err
			}
			switch wf.SwapVenue(venue) {
			case wf.SwapVenueOnChain, wf.SwapVenueCex:
			default:
				return fmt.Errorf("invalid venue %q, options: %v", venue, []wf.SwapVenue{wf.SwapVenueOnChain, wf.SwapVenueCex})
			}

			fee := explain.ExplainSwapFee(explain.SwapArgs{
				FeeArgs: in.quote.FeeArgs(in.tokenIsNative()),
				Venue:   wf.SwapVenue(venue),
			})
			logFee(in, fee.ExplainedFee)
			fmt.Println(asJson(in.report(fee.ExplainedFee, fee)))
			return nil
		},
	}
	addFeeFlags(cmd)
	cmd.Flags().String("venue", string(wf.SwapVenueOnChain), "Where the swap is executed (onchain or cex).")
	return cmd
}

func CmdCheck() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that a transfer is within the fee limits and that the wallet can pay for it.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := loadFeeInputs(cmd)
			if err != nil {
				return err
			}
			fee := explainTransfer(in)

			limitErr := wf.CheckFeeLimit(fee, in.chain, in.token)
			balanceErr := explain.CheckBalance(fee, in.quote.SentAmount(), in.tokenIsNative(), in.quote.Balances())
			report := CheckReport{
				FeeReport: in.report(fee, fee),
				FeeLimit:  statusOrOk(limitErr),
				Balance:   statusOrOk(balanceErr),
				MaxAmount: explain.MaxTransferAmount(fee, in.tokenIsNative(), in.quote.Balances()),
			}
			fmt.Println(asJson(report))

			if limitErr != nil {
				return limitErr
			}
			if balanceErr != nil {
				logrus.WithField("status", errors.StatusOf(balanceErr)).Debug("insufficient balance")
				return balanceErr
			}
			return nil
		},
	}
	addFeeFlags(cmd)
	cmd.Flags().String("amount", "", "Amount being sent, in the token.")
	return cmd
}

package explain

import (
	wf "github.com/cordialsys/walletfee"
)

type NativeGasArgs struct {
	// Upper bound quoted for the network fee
	NetworkFee *wf.AmountBlockchain
	// Realistic network fee, usually lower than NetworkFee
	RealNetworkFee     *wf.AmountBlockchain
	ServiceFee         *wf.AmountBlockchain
	ServiceFeeIsNative bool
}

// CalculateNativeGas explains a fee paid entirely from the native balance.
func CalculateNativeGas(args NativeGasArgs) Breakdowns {
	networkFee := nonNegative(args.NetworkFee)
	realNetworkFee := nonNegative(args.RealNetworkFee)
	serviceFee := nonNegative(args.ServiceFee)

	var result Breakdowns
	if networkFee != nil {
		precision := fullPrecision(networkFee, realNetworkFee)
		terms := wf.FeeTerms{Native: networkFee}
		result.FullFee = &wf.FeeBreakdown{
			Precision: precision,
			Terms:     MergeServiceFee(terms, serviceFee, args.ServiceFeeIsNative),
		}
		result.FullNetworkFee = networkBreakdown(precision, terms, networkFee)
	}
	if realNetworkFee != nil {
		precision := realPrecision(networkFee, realNetworkFee)
		terms := wf.FeeTerms{Native: realNetworkFee}
		result.RealFee = &wf.FeeBreakdown{
			Precision: precision,
			Terms:     MergeServiceFee(terms, serviceFee, args.ServiceFeeIsNative),
		}
		result.RealNetworkFee = networkBreakdown(precision, terms, realNetworkFee)
	}
	result.Excess = excess(networkFee, realNetworkFee)
	return result
}

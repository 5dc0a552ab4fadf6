package explain

import (
	wf "github.com/cordialsys/walletfee"
)

// FeeArgs are the quoted values a fee is explained from.
// Any amount may be nil when it has not been quoted yet.
type FeeArgs struct {
	TokenIsNative  bool
	NetworkFee     *wf.AmountBlockchain
	RealNetworkFee *wf.AmountBlockchain
	DieselFee      *wf.AmountBlockchain
	DieselStatus   wf.DieselStatus
	NativeBalance  *wf.AmountBlockchain
	// Wallet service fee, payable in the native asset or in the token
	ServiceFee         *wf.AmountBlockchain
	ServiceFeeIsNative bool
}

type SwapArgs struct {
	FeeArgs
	Venue wf.SwapVenue
}

// ExplainTransferFee turns the quotes of a transfer into the fee shown to the user
// and checked against their balance.
func ExplainTransferFee(args FeeArgs) wf.ExplainedFee {
	return explainFee(OperationTransfer, args)
}

// ExplainSwapFee is ExplainTransferFee for swaps. Swaps settled by a CEX
// never pay through diesel and have the service fee priced into the rate.
func ExplainSwapFee(args SwapArgs) wf.ExplainedSwapFee {
	op := OperationForVenue(args.Venue)
	feeArgs := args.FeeArgs
	if !op.IsOnChain() {
		feeArgs.ServiceFee = nil
	}
	explained := explainFee(op, feeArgs)
	explained.ShowServiceFeeSeparately = op.IsOnChain() &&
		args.ServiceFee != nil && args.ServiceFee.Sign() > 0

	venue := args.Venue
	if venue == "" {
		venue = wf.SwapVenueOnChain
	}
	return wf.ExplainedSwapFee{
		ExplainedFee: explained,
		Venue:        venue,
		ServiceFee:   nonNegative(args.ServiceFee),
	}
}

func explainFee(op Operation, args FeeArgs) wf.ExplainedFee {
	isGasless := ShouldUseGasless(GaslessArgs{
		Operation:     op,
		TokenIsNative: args.TokenIsNative,
		DieselStatus:  args.DieselStatus,
		NetworkFee:    args.NetworkFee,
		NativeBalance: args.NativeBalance,
	})

	var breakdowns Breakdowns
	if isGasless {
		breakdowns = CalculateDiesel(DieselArgs{
			NetworkFee:         args.NetworkFee,
			RealNetworkFee:     args.RealNetworkFee,
			DieselFee:          args.DieselFee,
			NativeBalance:      args.NativeBalance,
			ServiceFee:         args.ServiceFee,
			ServiceFeeIsNative: args.ServiceFeeIsNative,
			IsStarsDiesel:      args.DieselStatus.IsStars(),
		})
	} else {
		breakdowns = CalculateNativeGas(NativeGasArgs{
			NetworkFee:         args.NetworkFee,
			RealNetworkFee:     args.RealNetworkFee,
			ServiceFee:         args.ServiceFee,
			ServiceFeeIsNative: args.ServiceFeeIsNative,
		})
	}

	return wf.ExplainedFee{
		IsGasless:      isGasless,
		FullFee:        breakdowns.FullFee,
		RealFee:        breakdowns.RealFee,
		FullNetworkFee: breakdowns.FullNetworkFee,
		RealNetworkFee: breakdowns.RealNetworkFee,
		Excess:         breakdowns.Excess,
	}
}

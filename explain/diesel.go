package explain

import (
	wf "github.com/cordialsys/walletfee"
)

type DieselArgs struct {
	NetworkFee     *wf.AmountBlockchain
	RealNetworkFee *wf.AmountBlockchain
	// Quoted cost of the diesel part, in token or stars units
	DieselFee *wf.AmountBlockchain
	// Native balance still spent toward the fee
	NativeBalance      *wf.AmountBlockchain
	ServiceFee         *wf.AmountBlockchain
	ServiceFeeIsNative bool
	IsStarsDiesel      bool
}

// CalculateDiesel explains a fee where the part the native balance cannot cover
// is advanced by a relayer and paid back in the token (or in stars).
//
// The realistic diesel amount is converted at the exchange rate implied by the
// original quote: realNetworkFee * dieselFee / coveredByDiesel.
func CalculateDiesel(args DieselArgs) Breakdowns {
	networkFee := nonNegative(args.NetworkFee)
	realNetworkFee := nonNegative(args.RealNetworkFee)
	dieselFee := nonNegative(args.DieselFee)
	nativeBalance := nonNegative(args.NativeBalance)
	serviceFee := nonNegative(args.ServiceFee)

	result := Breakdowns{
		Excess: excess(networkFee, realNetworkFee),
	}
	if networkFee == nil || dieselFee == nil || nativeBalance == nil {
		return result
	}

	coveredByDiesel := networkFee.SubClamped(nativeBalance)

	fullPrec := fullPrecision(networkFee, realNetworkFee)
	fullTerms := dieselTerms(*dieselFee, *nativeBalance, args.IsStarsDiesel)
	result.FullFee = &wf.FeeBreakdown{
		Precision: fullPrec,
		Terms:     MergeServiceFee(fullTerms, serviceFee, args.ServiceFeeIsNative),
	}
	result.FullNetworkFee = networkBreakdown(fullPrec, fullTerms, networkFee)

	if realNetworkFee != nil {
		// zero coveredByDiesel means no diesel part, and MulDiv yields zero
		realFeeInDiesel := realNetworkFee.MulDiv(dieselFee, &coveredByDiesel)
		dieselRealFee := wf.MinAmount(*dieselFee, realFeeInDiesel)
		nativeRealFee := realNetworkFee.SubClamped(&coveredByDiesel)

		realPrec := realPrecision(networkFee, realNetworkFee)
		realTerms := dieselTerms(dieselRealFee, nativeRealFee, args.IsStarsDiesel)
		result.RealFee = &wf.FeeBreakdown{
			Precision: realPrec,
			Terms:     MergeServiceFee(realTerms, serviceFee, args.ServiceFeeIsNative),
		}
		result.RealNetworkFee = networkBreakdown(realPrec, realTerms, realNetworkFee)
	}
	return result
}

func dieselTerms(diesel wf.AmountBlockchain, native wf.AmountBlockchain, isStars bool) wf.FeeTerms {
	terms := wf.FeeTerms{Native: wf.AmountPtr(native)}
	if isStars {
		terms.Stars = wf.AmountPtr(diesel)
	} else {
		terms.Token = wf.AmountPtr(diesel)
	}
	return terms
}

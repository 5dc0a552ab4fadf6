package explain

import (
	wf "github.com/cordialsys/walletfee"
)

// Breakdowns is what either regime calculator produces.
// A field is nil when an input it depends on was not quoted.
type Breakdowns struct {
	FullFee        *wf.FeeBreakdown
	RealFee        *wf.FeeBreakdown
	FullNetworkFee *wf.NetworkFeeBreakdown
	RealNetworkFee *wf.NetworkFeeBreakdown
	Excess         *wf.AmountBlockchain
}

func fullPrecision(networkFee, realNetworkFee *wf.AmountBlockchain) wf.Precision {
	if wf.OptionalEqual(networkFee, realNetworkFee) {
		return wf.PrecisionExact
	}
	return wf.PrecisionLessThan
}

func realPrecision(networkFee, realNetworkFee *wf.AmountBlockchain) wf.Precision {
	if wf.OptionalEqual(networkFee, realNetworkFee) {
		return wf.PrecisionExact
	}
	return wf.PrecisionApproximate
}

// excess is the part of the quoted ceiling expected to be refunded.
func excess(networkFee, realNetworkFee *wf.AmountBlockchain) *wf.AmountBlockchain {
	if networkFee == nil || realNetworkFee == nil {
		return nil
	}
	return wf.AmountPtr(networkFee.SubClamped(realNetworkFee))
}

// nonNegative clamps a malformed negative quote to zero, keeping absence.
func nonNegative(amount *wf.AmountBlockchain) *wf.AmountBlockchain {
	if amount == nil {
		return nil
	}
	return wf.AmountPtr(amount.ClampZero())
}

func networkBreakdown(precision wf.Precision, terms wf.FeeTerms, nativeSum *wf.AmountBlockchain) *wf.NetworkFeeBreakdown {
	return &wf.NetworkFeeBreakdown{
		FeeBreakdown: wf.FeeBreakdown{
			Precision: precision,
			Terms:     terms,
		},
		NativeEquivalentSum: *nativeSum,
	}
}

package explain

import (
	wf "github.com/cordialsys/walletfee"
)

// MergeServiceFee adds the service fee to the component it is denominated in.
// A non-native service fee lands in whichever of token/stars is already set.
func MergeServiceFee(terms wf.FeeTerms, serviceFee *wf.AmountBlockchain, serviceFeeIsNative bool) wf.FeeTerms {
	if serviceFee == nil || serviceFee.IsZero() {
		return terms
	}
	merged := terms
	switch {
	case serviceFeeIsNative:
		merged.Native = addOptional(terms.Native, serviceFee)
	case terms.Stars != nil:
		merged.Stars = addOptional(terms.Stars, serviceFee)
	default:
		merged.Token = addOptional(terms.Token, serviceFee)
	}
	return merged
}

func addOptional(existing *wf.AmountBlockchain, add *wf.AmountBlockchain) *wf.AmountBlockchain {
	if existing == nil {
		return wf.AmountPtr(*add)
	}
	return wf.AmountPtr(existing.Add(add))
}

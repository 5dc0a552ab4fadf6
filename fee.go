package walletfee

import (
	"errors"
	"fmt"
)

// Precision tells how a displayed fee relates to the real charge.
type Precision string

const (
	// The shown number equals the real charge
	PrecisionExact Precision = "exact"
	// The shown number is an estimate of the real charge
	PrecisionApproximate Precision = "approximate"
	// The shown number is a ceiling, the difference gets refunded
	PrecisionLessThan Precision = "lessThan"
)

// DieselStatus is reported by the pricing service for a token.
// Only "not available" vs anything else matters for fee math.
type DieselStatus string

const (
	DieselNotAvailable    DieselStatus = "not-available"
	DieselNotAuthorized   DieselStatus = "not-authorized"
	DieselPendingPrevious DieselStatus = "pending-previous"
	DieselAvailable       DieselStatus = "available"
	DieselStarsFee        DieselStatus = "stars-fee"
)

var DieselStatusList = []DieselStatus{
	DieselNotAvailable,
	DieselNotAuthorized,
	DieselPendingPrevious,
	DieselAvailable,
	DieselStarsFee,
}

func (status DieselStatus) IsValid() bool {
	for _, s := range DieselStatusList {
		if s == status {
			return true
		}
	}
	return false
}

// An empty status has not been quoted and counts as not available.
func (status DieselStatus) IsAvailable() bool {
	return status != "" && status != DieselNotAvailable
}

// IsStars reports whether the diesel fee is denominated in stars rather than the token.
func (status DieselStatus) IsStars() bool {
	return status == DieselStarsFee
}

// FeeTerms is a fee payable as the sum of its components.
// Token and Stars are alternative denominations and are never both set.
type FeeTerms struct {
	Token  *AmountBlockchain `json:"token,omitempty" yaml:"token,omitempty"`
	Native *AmountBlockchain `json:"native,omitempty" yaml:"native,omitempty"`
	Stars  *AmountBlockchain `json:"stars,omitempty" yaml:"stars,omitempty"`
}

func (terms FeeTerms) IsEmpty() bool {
	return terms.Token == nil && terms.Native == nil && terms.Stars == nil
}

func (terms FeeTerms) Equal(other FeeTerms) bool {
	return OptionalEqual(terms.Token, other.Token) &&
		OptionalEqual(terms.Native, other.Native) &&
		OptionalEqual(terms.Stars, other.Stars)
}

var ErrTokenAndStars = errors.New("fee terms cannot be payable in both token and stars")

func (terms FeeTerms) Validate() error {
	if terms.Token != nil && terms.Stars != nil {
		return ErrTokenAndStars
	}
	names := []string{"token", "native", "stars"}
	for i, amount := range []*AmountBlockchain{terms.Token, terms.Native, terms.Stars} {
		if amount != nil && amount.Sign() < 0 {
			return fmt.Errorf("%s fee component is negative: %s", names[i], amount.String())
		}
	}
	return nil
}

// FeeTermsHuman is FeeTerms converted to decimals for display.
type FeeTermsHuman struct {
	Token  *AmountHumanReadable `json:"token,omitempty"`
	Native *AmountHumanReadable `json:"native,omitempty"`
	Stars  *AmountHumanReadable `json:"stars,omitempty"`
}

func (terms FeeTerms) ToHuman(tokenDecimals, nativeDecimals, starsDecimals int32) FeeTermsHuman {
	convert := func(amount *AmountBlockchain, decimals int32) *AmountHumanReadable {
		if amount == nil {
			return nil
		}
		human := amount.ToHuman(decimals)
		return &human
	}
	return FeeTermsHuman{
		Token:  convert(terms.Token, tokenDecimals),
		Native: convert(terms.Native, nativeDecimals),
		Stars:  convert(terms.Stars, starsDecimals),
	}
}

type FeeBreakdown struct {
	Precision Precision `json:"precision"`
	Terms     FeeTerms  `json:"terms"`
}

// NetworkFeeBreakdown is the network fee alone, without any service fee.
type NetworkFeeBreakdown struct {
	FeeBreakdown
	// The same fee expressed purely in the native asset
	NativeEquivalentSum AmountBlockchain `json:"native_equivalent_sum"`
}

// ExplainedFee is what a transfer (or swap) will cost.
type ExplainedFee struct {
	IsGasless bool `json:"is_gasless"`
	// Upper bound of the charge
	FullFee *FeeBreakdown `json:"full_fee,omitempty"`
	// Realistic charge
	RealFee        *FeeBreakdown        `json:"real_fee,omitempty"`
	FullNetworkFee *NetworkFeeBreakdown `json:"full_network_fee,omitempty"`
	RealNetworkFee *NetworkFeeBreakdown `json:"real_network_fee,omitempty"`
	// Native amount expected to be refunded
	Excess                   *AmountBlockchain `json:"excess,omitempty"`
	ShowServiceFeeSeparately bool              `json:"show_service_fee_separately"`
}

type SwapVenue string

const (
	SwapVenueOnChain SwapVenue = "onchain"
	SwapVenueCex     SwapVenue = "cex"
)

type ExplainedSwapFee struct {
	ExplainedFee
	Venue      SwapVenue         `json:"venue"`
	ServiceFee *AmountBlockchain `json:"service_fee,omitempty"`
}

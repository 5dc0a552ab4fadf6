package walletfee

import (
	"github.com/cordialsys/walletfee/errors"
)

// CheckFeeLimit compares the upper bound of a fee against the limits in the configuration.
// Protects against fee griefing by a malicious or broken quote provider.
// The token and stars limits are only consulted when part of the fee is payable in them.
func CheckFeeLimit(fee ExplainedFee, chain *ChainConfig, token *TokenAssetConfig) error {
	if fee.FullFee == nil {
		return nil
	}
	terms := fee.FullFee.Terms
	if terms.Native != nil && !chain.FeeLimit.IsZero() {
		limit := chain.FeeLimit.ToBlockchain(chain.Decimals)
		if terms.Native.Cmp(&limit) > 0 {
			return errors.FeeLimitExceededf(
				"transaction fee may cost up to %s %s, which is greater than the current limit of %s",
				terms.Native.ToHuman(chain.Decimals).String(),
				chain.Chain,
				chain.FeeLimit.String(),
			)
		}
	}
	if terms.Token != nil && terms.Token.Sign() > 0 {
		if token == nil || token.FeeLimit.IsZero() {
			return errors.FeeLimitExceededf("fee is partly payable in a token, but there is no max-limit configured for it")
		}
		limit := token.FeeLimit.ToBlockchain(token.Decimals)
		if terms.Token.Cmp(&limit) > 0 {
			return errors.FeeLimitExceededf(
				"transaction fee may cost up to %s %s, which is greater than the current limit of %s",
				terms.Token.ToHuman(token.Decimals).String(),
				token.Symbol,
				token.FeeLimit.String(),
			)
		}
	}
	if terms.Stars != nil && terms.Stars.Sign() > 0 {
		if chain.Gasless == nil || chain.Gasless.StarsFeeLimit.IsZero() {
			return errors.FeeLimitExceededf("fee is partly payable in stars, but there is no max-limit configured for them")
		}
		limit := chain.Gasless.StarsFeeLimit.ToBlockchain(chain.Gasless.StarsDecimals)
		if terms.Stars.Cmp(&limit) > 0 {
			return errors.FeeLimitExceededf(
				"transaction fee may cost up to %s stars, which is greater than the current limit of %s",
				terms.Stars.ToHuman(chain.Gasless.StarsDecimals).String(),
				chain.Gasless.StarsFeeLimit.String(),
			)
		}
	}
	return nil
}

package walletfee_test

import (
	. "github.com/cordialsys/walletfee"
	"github.com/cordialsys/walletfee/errors"
	"github.com/cordialsys/walletfee/testutil"
)

func (s *WalletfeeTestSuite) TestCheckFeeLimit() {
	require := s.Require()
	chain := &ChainConfig{Chain: TON, Decimals: 9, FeeLimit: testutil.Human("1")}
	token := &TokenAssetConfig{Chain: TON, Symbol: "USDT", Decimals: 6, FeeLimit: testutil.Human("5")}

	feeOf := func(terms FeeTerms) ExplainedFee {
		return ExplainedFee{FullFee: &FeeBreakdown{Precision: PrecisionExact, Terms: terms}}
	}

	// not quoted yet
	require.NoError(CheckFeeLimit(ExplainedFee{}, chain, token))

	atLimit := testutil.HumanToBlockchain("1", 9)
	require.NoError(CheckFeeLimit(feeOf(FeeTerms{Native: &atLimit}), chain, nil))
	err := CheckFeeLimit(feeOf(FeeTerms{Native: testutil.Amount(1_000_000_001)}), chain, nil)
	require.Equal(errors.FeeLimitExceeded, errors.StatusOf(err))
	require.ErrorContains(err, "1.000000001 TON")

	require.NoError(CheckFeeLimit(feeOf(FeeTerms{Token: testutil.Amount(5_000_000), Native: testutil.Amount(100)}), chain, token))
	err = CheckFeeLimit(feeOf(FeeTerms{Token: testutil.Amount(5_000_001), Native: testutil.Amount(100)}), chain, token)
	require.Equal(errors.FeeLimitExceeded, errors.StatusOf(err))
	require.ErrorContains(err, "USDT")

	// a token fee without a configured limit is refused
	err = CheckFeeLimit(feeOf(FeeTerms{Token: testutil.Amount(1)}), chain, nil)
	require.Equal(errors.FeeLimitExceeded, errors.StatusOf(err))
	require.NoError(CheckFeeLimit(feeOf(FeeTerms{Token: testutil.Amount(0)}), chain, nil))

	// no native limit configured
	unlimited := &ChainConfig{Chain: TON, Decimals: 9}
	require.NoError(CheckFeeLimit(feeOf(FeeTerms{Native: testutil.Amount(1 << 62)}), unlimited, nil))
}

func (s *WalletfeeTestSuite) TestCheckFeeLimitStars() {
	require := s.Require()
	enabled := true
	chain := &ChainConfig{
		Chain:    TON,
		Decimals: 9,
		FeeLimit: testutil.Human("1"),
		Gasless:  &GaslessConfig{Enabled: &enabled, StarsFeeLimit: testutil.Human("500")},
	}
	feeOf := func(terms FeeTerms) ExplainedFee {
		return ExplainedFee{FullFee: &FeeBreakdown{Precision: PrecisionExact, Terms: terms}, IsGasless: true}
	}

	require.NoError(CheckFeeLimit(feeOf(FeeTerms{Native: testutil.Amount(0), Stars: testutil.Amount(500)}), chain, nil))
	err := CheckFeeLimit(feeOf(FeeTerms{Native: testutil.Amount(0), Stars: testutil.Amount(501)}), chain, nil)
	require.Equal(errors.FeeLimitExceeded, errors.StatusOf(err))
	require.ErrorContains(err, "501 stars")
	err = CheckFeeLimit(feeOf(FeeTerms{Native: testutil.Amount(0), Stars: testutil.Amount(1_000_000_000_000)}), chain, nil)
	require.Equal(errors.FeeLimitExceeded, errors.StatusOf(err))

	// the native limit does not cover stars
	noStarsLimit := &ChainConfig{Chain: TON, Decimals: 9, FeeLimit: testutil.Human("1")}
	err = CheckFeeLimit(feeOf(FeeTerms{Native: testutil.Amount(0), Stars: testutil.Amount(1_000_000_000_000)}), noStarsLimit, nil)
	require.Equal(errors.FeeLimitExceeded, errors.StatusOf(err))
	require.ErrorContains(err, "no max-limit")
	require.NoError(CheckFeeLimit(feeOf(FeeTerms{Native: testutil.Amount(0), Stars: testutil.Amount(0)}), noStarsLimit, nil))
}

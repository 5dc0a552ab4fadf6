package explain_test

import (
	wf "github.com/cordialsys/walletfee"
	"github.com/cordialsys/walletfee/explain"
)

func (s *ExplainTestSuite) TestNativeGasExact() {
	require := s.Require()
	result := explain.CalculateNativeGas(explain.NativeGasArgs{
		NetworkFee:     amt(1000),
		RealNetworkFee: amt(1000),
		ServiceFee:     amt(0),
	})
	require.Equal(wf.PrecisionExact, result.FullFee.Precision)
	require.Equal(wf.PrecisionExact, result.RealFee.Precision)
	s.requireTerms(terms(-1, 1000, -1), result.FullFee.Terms)
	s.requireTerms(terms(-1, 1000, -1), result.RealFee.Terms)
	require.EqualValues(0, result.Excess.Uint64())
	require.EqualValues("1000", result.FullNetworkFee.NativeEquivalentSum.String())
	require.EqualValues("1000", result.RealNetworkFee.NativeEquivalentSum.String())
}

func (s *ExplainTestSuite) TestNativeGasApproximateWithServiceFee() {
	require := s.Require()
	result := explain.CalculateNativeGas(explain.NativeGasArgs{
		NetworkFee:         amt(1000),
		RealNetworkFee:     amt(600),
		ServiceFee:         amt(50),
		ServiceFeeIsNative: true,
	})
	require.Equal(wf.PrecisionLessThan, result.FullFee.Precision)
	s.requireTerms(terms(-1, 1050, -1), result.FullFee.Terms)
	require.Equal(wf.PrecisionApproximate, result.RealFee.Precision)
	s.requireTerms(terms(-1, 650, -1), result.RealFee.Terms)
	require.EqualValues(400, result.Excess.Uint64())

	// network fee only, without the service fee
	require.Equal(wf.PrecisionLessThan, result.FullNetworkFee.Precision)
	s.requireTerms(terms(-1, 1000, -1), result.FullNetworkFee.Terms)
	require.Equal(wf.PrecisionApproximate, result.RealNetworkFee.Precision)
	s.requireTerms(terms(-1, 600, -1), result.RealNetworkFee.Terms)
	require.EqualValues(600, result.RealNetworkFee.NativeEquivalentSum.Uint64())
}

func (s *ExplainTestSuite) TestNativeGasTokenServiceFee() {
	require := s.Require()
	result := explain.CalculateNativeGas(explain.NativeGasArgs{
		NetworkFee:     amt(1000),
		RealNetworkFee: amt(1000),
		ServiceFee:     amt(25),
	})
	require.Equal(wf.PrecisionExact, result.FullFee.Precision)
	s.requireTerms(terms(25, 1000, -1), result.FullFee.Terms)
	s.requireTerms(terms(-1, 1000, -1), result.FullNetworkFee.Terms)
}

func (s *ExplainTestSuite) TestNativeGasMissingInputs() {
	require := s.Require()

	result := explain.CalculateNativeGas(explain.NativeGasArgs{})
	require.Nil(result.FullFee)
	require.Nil(result.RealFee)
	require.Nil(result.FullNetworkFee)
	require.Nil(result.RealNetworkFee)
	require.Nil(result.Excess)

	result = explain.CalculateNativeGas(explain.NativeGasArgs{NetworkFee: amt(1000)})
	require.NotNil(result.FullFee)
	require.Equal(wf.PrecisionLessThan, result.FullFee.Precision)
	require.Nil(result.RealFee)
	require.Nil(result.Excess)

	result = explain.CalculateNativeGas(explain.NativeGasArgs{RealNetworkFee: amt(600)})
	require.Nil(result.FullFee)
	require.Equal(wf.PrecisionApproximate, result.RealFee.Precision)
	s.requireTerms(terms(-1, 600, -1), result.RealFee.Terms)
	require.Nil(result.Excess)
}

func (s *ExplainTestSuite) TestNativeGasMalformedQuote() {
	require := s.Require()
	// real fee above the ceiling
	result := explain.CalculateNativeGas(explain.NativeGasArgs{
		NetworkFee:     amt(600),
		RealNetworkFee: amt(1000),
	})
	require.EqualValues(0, result.Excess.Sign())
	require.Equal(wf.PrecisionLessThan, result.FullFee.Precision)

	// negative values are clamped
	result = explain.CalculateNativeGas(explain.NativeGasArgs{
		NetworkFee:     neg(-5),
		RealNetworkFee: neg(-10),
		ServiceFee:     neg(-3),
	})
	require.NoError(result.FullFee.Terms.Validate())
	require.NoError(result.RealFee.Terms.Validate())
	require.EqualValues(0, result.FullFee.Terms.Native.Sign())
	require.EqualValues(0, result.Excess.Sign())
}

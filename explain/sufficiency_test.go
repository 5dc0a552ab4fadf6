package explain_test

import (
	wf "github.com/cordialsys/walletfee"
	"github.com/cordialsys/walletfee/errors"
	"github.com/cordialsys/walletfee/explain"
)

func (s *ExplainTestSuite) TestCheckBalance() {
	nativeFee := explain.ExplainTransferFee(explain.FeeArgs{
		NetworkFee:     amt(1000),
		RealNetworkFee: amt(600),
		NativeBalance:  amt(5000),
	})
	dieselFee := explain.ExplainTransferFee(explain.FeeArgs{
		NetworkFee:     amt(1000),
		RealNetworkFee: amt(800),
		DieselStatus:   wf.DieselAvailable,
		DieselFee:      amt(300),
		NativeBalance:  amt(200),
	})
	starsFee := explain.ExplainTransferFee(explain.FeeArgs{
		NetworkFee:     amt(1000),
		RealNetworkFee: amt(800),
		DieselStatus:   wf.DieselStarsFee,
		DieselFee:      amt(300),
		NativeBalance:  amt(200),
	})

	type testcase struct {
		name          string
		fee           wf.ExplainedFee
		amount        uint64
		tokenIsNative bool
		balances      explain.Balances
		status        errors.Status
	}
	vectors := []testcase{
		{
			name: "native enough", fee: nativeFee, amount: 4000, tokenIsNative: true,
			balances: explain.Balances{Native: amt(5000)},
		},
		{
			name: "native short by one", fee: nativeFee, amount: 4001, tokenIsNative: true,
			balances: explain.Balances{Native: amt(5000)}, status: errors.NoBalance,
		},
		{
			name: "token with native gas", fee: nativeFee, amount: 100,
			balances: explain.Balances{Token: amt(100), Native: amt(1000)},
		},
		{
			name: "token without gas", fee: nativeFee, amount: 100,
			balances: explain.Balances{Token: amt(100), Native: amt(999)}, status: errors.NoBalanceForGas,
		},
		{
			name: "token amount too high", fee: nativeFee, amount: 101,
			balances: explain.Balances{Token: amt(100), Native: amt(1000)}, status: errors.NoBalance,
		},
		{
			name: "diesel covered", fee: dieselFee, amount: 700,
			balances: explain.Balances{Token: amt(1000), Native: amt(200)},
		},
		{
			name: "diesel not covered", fee: dieselFee, amount: 701,
			balances: explain.Balances{Token: amt(1000), Native: amt(200)}, status: errors.NoBalanceForDiesel,
		},
		{
			name: "stars covered", fee: starsFee, amount: 1000,
			balances: explain.Balances{Token: amt(1000), Native: amt(200), Stars: amt(300)},
		},
		{
			name: "stars missing", fee: starsFee, amount: 1000,
			balances: explain.Balances{Token: amt(1000), Native: amt(200)}, status: errors.NoBalanceForStars,
		},
		{
			name: "fee unknown", fee: wf.ExplainedFee{}, amount: 1,
			balances: explain.Balances{Native: amt(5000)}, status: errors.FeeUnknown,
		},
	}
	for _, v := range vectors {
		s.Run(v.name, func() {
			require := s.Require()
			err := explain.CheckBalance(v.fee, wf.NewAmountBlockchainFromUint64(v.amount), v.tokenIsNative, v.balances)
			if v.status == "" {
				require.NoError(err)
			} else {
				require.Error(err)
				require.Equal(v.status, errors.StatusOf(err))
			}
		})
	}
}

func (s *ExplainTestSuite) TestMaxTransferAmount() {
	require := s.Require()
	nativeFee := explain.ExplainTransferFee(explain.FeeArgs{
		NetworkFee:    amt(1000),
		NativeBalance: amt(5000),
	})
	dieselFee := explain.ExplainTransferFee(explain.FeeArgs{
		NetworkFee:    amt(1000),
		DieselStatus:  wf.DieselAvailable,
		DieselFee:     amt(300),
		NativeBalance: amt(200),
	})

	maxAmount := explain.MaxTransferAmount(nativeFee, true, explain.Balances{Native: amt(5000)})
	require.EqualValues(4000, maxAmount.Uint64())

	// the network fee is paid from another balance
	maxAmount = explain.MaxTransferAmount(nativeFee, false, explain.Balances{Token: amt(70), Native: amt(5000)})
	require.EqualValues(70, maxAmount.Uint64())

	maxAmount = explain.MaxTransferAmount(dieselFee, false, explain.Balances{Token: amt(1000), Native: amt(200)})
	require.EqualValues(700, maxAmount.Uint64())

	maxAmount = explain.MaxTransferAmount(dieselFee, false, explain.Balances{Token: amt(100)})
	require.EqualValues(0, maxAmount.Sign())

	maxAmount = explain.MaxTransferAmount(wf.ExplainedFee{}, true, explain.Balances{Native: amt(10)})
	require.EqualValues(10, maxAmount.Uint64())

	require.Nil(explain.MaxTransferAmount(nativeFee, true, explain.Balances{}))
}

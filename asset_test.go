package walletfee_test

import (
	"fmt"

	. "github.com/cordialsys/walletfee"
)

func (s *WalletfeeTestSuite) TestTypesAssetVsNativeAsset() {
	require := s.Require()
	require.Equal(NativeAsset("SOL"), SOL)
	require.NotEqual("SOL", SOL)
}

func (s *WalletfeeTestSuite) TestAssetDriver() {
	require := s.Require()
	require.Equal(DriverBitcoin, NativeAsset(BTC).Driver())
	require.Equal(DriverEVM, NativeAsset(ETH).Driver())
	require.Equal(DriverEVM, NativeAsset(BNB).Driver())
	require.Equal(DriverSolana, NativeAsset(SOL).Driver())
	require.Equal(DriverTron, NativeAsset(TRX).Driver())
	require.Equal(DriverTon, NativeAsset(TON).Driver())

	drivers := map[Driver]bool{}
	for _, driver := range SupportedDrivers {
		if _, ok := drivers[driver]; ok {
			require.Fail("duplicate driver %s", driver)
		}
		drivers[driver] = true
	}
}

func (s *WalletfeeTestSuite) TestChainType() {
	require := s.Require()
	for _, na := range NativeAssetList {
		require.True(na.IsValid(), fmt.Sprintf("%s should have a driver", na))
	}
	require.True(NativeAsset("ETH").IsValid())
	require.True(NativeAsset("ArbETH").IsValid())

	require.False(NativeAsset("xxx").IsValid())
	require.False(NativeAsset("eth").IsValid())
}

func (s *WalletfeeTestSuite) TestLookupNativeAsset() {
	require := s.Require()
	native, ok := LookupNativeAsset("ton")
	require.True(ok)
	require.Equal(TON, native)

	native, ok = LookupNativeAsset("arbeth")
	require.True(ok)
	require.Equal(ArbETH, native)

	_, ok = LookupNativeAsset("doge")
	require.False(ok)
}

func (s *WalletfeeTestSuite) TestIsNativeContract() {
	require := s.Require()
	require.True(IsNativeContract(TON, ""))
	require.True(IsNativeContract(TON, "ton"))
	require.True(IsNativeContract(TON, "TON"))
	require.False(IsNativeContract(TON, "EQCxE6mUtQJKFnGfaROTKOt1lZbDiiX1kCixRv7Nw2Id_sDs"))
}

func (s *WalletfeeTestSuite) TestSupportsGasless() {
	require := s.Require()
	require.False((&ChainConfig{}).SupportsGasless())
	require.False((&ChainConfig{Gasless: &GaslessConfig{}}).SupportsGasless())
	enabled, disabled := true, false
	require.False((&ChainConfig{Gasless: &GaslessConfig{Enabled: &disabled}}).SupportsGasless())
	require.True((&ChainConfig{Gasless: &GaslessConfig{Enabled: &enabled}}).SupportsGasless())

	require.False((&TokenAssetConfig{}).SupportsGasless())
	require.False((&TokenAssetConfig{Gasless: &disabled}).SupportsGasless())
	require.True((&TokenAssetConfig{Gasless: &enabled}).SupportsGasless())
}

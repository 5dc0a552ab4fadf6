package walletfee

import (
	"strings"
)

// NativeAsset is an asset on a blockchain used to pay gas fees.
// For simplicity, a NativeAsset represents a chain.
type NativeAsset string

// List of supported NativeAsset
const (
	ETH    = NativeAsset("ETH")    // Ethereum
	BNB    = NativeAsset("BNB")    // Binance Coin
	MATIC  = NativeAsset("MATIC")  // Polygon
	BASE   = NativeAsset("BASE")   // BASE
	SOL    = NativeAsset("SOL")    // Solana
	TON    = NativeAsset("TON")    // TON
	TRX    = NativeAsset("TRX")    // TRON
	BTC    = NativeAsset("BTC")    // Bitcoin
	ArbETH = NativeAsset("ArbETH") // Arbitrum
)

var NativeAssetList []NativeAsset = []NativeAsset{
	ArbETH,
	BASE,
	BNB,
	BTC,
	ETH,
	MATIC,
	SOL,
	TON,
	TRX,
}

// Driver is the type of a chain
type Driver string

// List of supported Driver
const (
	DriverBitcoin = Driver("bitcoin")
	DriverEVM     = Driver("evm")
	DriverSolana  = Driver("solana")
	DriverTron    = Driver("tron")
	DriverTon     = Driver("ton")
)

var SupportedDrivers = []Driver{
	DriverBitcoin,
	DriverEVM,
	DriverSolana,
	DriverTron,
	DriverTon,
}

func (native NativeAsset) IsValid() bool {
	return NativeAsset(native).Driver() != ""
}

func (native NativeAsset) Driver() Driver {
	switch native {
	case BTC:
		return DriverBitcoin
	case ETH, BNB, MATIC, BASE, ArbETH:
		return DriverEVM
	case SOL:
		return DriverSolana
	case TRX:
		return DriverTron
	case TON:
		return DriverTon
	}
	return ""
}

// LookupNativeAsset matches a chain case-insensitively.
func LookupNativeAsset(chain string) (NativeAsset, bool) {
	for _, option := range NativeAssetList {
		if strings.EqualFold(string(option), chain) {
			return option, true
		}
	}
	return "", false
}

// ContractAddress is a smart contract address
type ContractAddress string

// GaslessConfig describes whether a chain supports paying network fees
// through the diesel mechanism, and the denomination of the stars balance.
// Switches are pointers so that a config override can turn them off.
type GaslessConfig struct {
	Enabled *bool `yaml:"enabled,omitempty" json:"enabled,omitempty"`
	// Address of the relayer that advances the network fee
	RelayAddress string `yaml:"relay_address,omitempty" json:"relay_address,omitempty"`
	// Stars are an alternate fee balance some chains can spend instead of the token
	StarsDecimals int32 `yaml:"stars_decimals,omitempty" json:"stars_decimals,omitempty"`
	// Maximum diesel fee payable in stars, in human units of stars
	StarsFeeLimit AmountHumanReadable `yaml:"stars_fee_limit,omitempty" json:"stars_fee_limit,omitempty"`
}

type ChainConfig struct {
	Chain     NativeAsset `yaml:"chain,omitempty" json:"chain"`
	Driver    Driver      `yaml:"driver,omitempty" json:"driver"`
	ChainName string      `yaml:"chain_name,omitempty" json:"chain_name,omitempty"`
	Decimals  int32       `yaml:"decimals,omitempty" json:"decimals"`
	// Maximum total network fee, in human units of the native asset
	FeeLimit AmountHumanReadable `yaml:"fee_limit,omitempty" json:"fee_limit,omitempty"`
	Gasless  *GaslessConfig      `yaml:"gasless,omitempty" json:"gasless,omitempty"`
}

func (c *ChainConfig) SupportsGasless() bool {
	return c.Gasless != nil && isSet(c.Gasless.Enabled)
}

func isSet(flag *bool) bool {
	return flag != nil && *flag
}

// TokenAssetConfig is the static metadata of a token (non-native) asset.
type TokenAssetConfig struct {
	Chain    NativeAsset     `yaml:"chain,omitempty" json:"chain"`
	Contract ContractAddress `yaml:"contract,omitempty" json:"contract"`
	Symbol   string          `yaml:"symbol,omitempty" json:"symbol,omitempty"`
	Decimals int32           `yaml:"decimals,omitempty" json:"decimals"`
	// Maximum fee payable in this token through diesel, in human units
	FeeLimit AmountHumanReadable `yaml:"fee_limit,omitempty" json:"fee_limit,omitempty"`
	// Can this token be used to pay diesel fees
	Gasless *bool `yaml:"gasless,omitempty" json:"gasless,omitempty"`
}

func (c *TokenAssetConfig) SupportsGasless() bool {
	return isSet(c.Gasless)
}

// IsNativeContract reports whether a contract refers to the chain's native asset.
// An empty contract, or one equal to the chain symbol, is the native asset.
func IsNativeContract(chain NativeAsset, contract ContractAddress) bool {
	return contract == "" || strings.EqualFold(string(contract), string(chain))
}

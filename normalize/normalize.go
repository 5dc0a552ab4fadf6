package normalize

import (
	"strings"

	wf "github.com/cordialsys/walletfee"
	"github.com/ethereum/go-ethereum/common"
	"github.com/xssnick/tonutils-go/address"
)

// Normalize a token contract so that different spellings of the
// same contract map to the same catalog entry.
// The native asset itself (empty or equal to the chain) is returned untouched.
func Normalize(contract string, nativeAsset wf.NativeAsset) string {
	contract = strings.TrimSpace(contract)
	if contract == "" || contract == string(nativeAsset) {
		return contract
	}
	if nativeAsset == "" && strings.HasPrefix(contract, "0x") {
		nativeAsset = wf.ETH
	}

	switch nativeAsset.Driver() {
	case wf.DriverEVM:
		if common.IsHexAddress(contract) {
			return strings.ToLower(common.HexToAddress(contract).Hex())
		}
		return "0x" + strings.ToLower(strings.TrimPrefix(contract, "0x"))
	case wf.DriverTon:
		normalized, err := NormalizeTon(contract)
		if err != nil {
			return contract
		}
		return normalized
	case wf.DriverSolana, wf.DriverTron, wf.DriverBitcoin:
		// nothing to do, base58
	}
	return contract
}

// NormalizeTon renders a raw ("0:abcd...") or user friendly TON address in its
// bounceable, mainnet, user friendly form.
func NormalizeTon(contract string) (string, error) {
	var addr *address.Address
	var err error
	if len(strings.Split(contract, ":")) == 2 {
		addr, err = address.ParseRawAddr(contract)
	} else {
		addr, err = address.ParseAddr(contract)
	}
	if err != nil {
		return contract, err
	}
	addr.SetBounce(true)
	addr.SetTestnetOnly(false)
	return addr.String(), nil
}

func ContractEqual(contract1 string, contract2 string, nativeAsset wf.NativeAsset) bool {
	return Normalize(contract1, nativeAsset) == Normalize(contract2, nativeAsset)
}

package explain

import (
	wf "github.com/cordialsys/walletfee"
)

type Operation string

const (
	OperationTransfer    Operation = "transfer"
	OperationSwapOnChain Operation = "swap-onchain"
	OperationSwapCex     Operation = "swap-cex"
)

// IsOnChain is false only for swaps settled by a CEX, which never use diesel.
func (op Operation) IsOnChain() bool {
	return op != OperationSwapCex
}

func OperationForVenue(venue wf.SwapVenue) Operation {
	if venue == wf.SwapVenueCex {
		return OperationSwapCex
	}
	return OperationSwapOnChain
}

type GaslessArgs struct {
	Operation     Operation
	TokenIsNative bool
	DieselStatus  wf.DieselStatus
	NetworkFee    *wf.AmountBlockchain
	NativeBalance *wf.AmountBlockchain
}

// ShouldUseGasless decides whether the network fee gets paid through diesel.
// Anything unknown falls back to paying with the native balance.
func ShouldUseGasless(args GaslessArgs) bool {
	if !args.Operation.IsOnChain() || args.TokenIsNative {
		return false
	}
	if !args.DieselStatus.IsAvailable() {
		return false
	}
	if args.NetworkFee == nil || args.NativeBalance == nil {
		return false
	}
	return args.NativeBalance.Cmp(args.NetworkFee) < 0
}

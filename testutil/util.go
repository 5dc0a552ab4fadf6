package testutil

import (
	wf "github.com/cordialsys/walletfee"
)

// Amount is an optional blockchain amount, for building fee inputs.
func Amount(u uint64) *wf.AmountBlockchain {
	return wf.AmountPtr(wf.NewAmountBlockchainFromUint64(u))
}

// Signed keeps the sign, for malformed quotes with negative amounts.
func Signed(i int64) *wf.AmountBlockchain {
	return wf.AmountPtr(wf.NewAmountBlockchainFromInt64(i))
}

func Human(amount string) wf.AmountHumanReadable {
	h, err := wf.NewAmountHumanReadableFromStr(amount)
	if err != nil {
		panic(err)
	}
	return h
}

func HumanToBlockchain(amount string, decimals int32) wf.AmountBlockchain {
	return Human(amount).ToBlockchain(decimals)
}

package explain

import (
	wf "github.com/cordialsys/walletfee"
	"github.com/cordialsys/walletfee/errors"
)

// Balances are the current wallet balances. A nil balance is treated as empty.
type Balances struct {
	Token  *wf.AmountBlockchain
	Native *wf.AmountBlockchain
	Stars  *wf.AmountBlockchain
}

// CheckBalance decides if the wallet can afford sending amount plus the upper
// bound of the fee. It returns a status error naming what is missing.
func CheckBalance(fee wf.ExplainedFee, amount wf.AmountBlockchain, tokenIsNative bool, balances Balances) error {
	if fee.FullFee == nil {
		return errors.Errorf(errors.FeeUnknown, "the network fee has not been quoted yet")
	}
	terms := fee.FullFee.Terms
	amount = amount.ClampZero()

	nativeNeeded := orZero(terms.Native)
	if tokenIsNative {
		nativeNeeded = nativeNeeded.Add(&amount)
		nativeBalance := orZero(balances.Native)
		if nativeBalance.Cmp(&nativeNeeded) < 0 {
			return errors.Errorf(errors.NoBalance,
				"need %s to cover amount and fee, have %s", nativeNeeded.String(), nativeBalance.String())
		}
	} else {
		tokenBalance := orZero(balances.Token)
		if tokenBalance.Cmp(&amount) < 0 {
			return errors.Errorf(errors.NoBalance,
				"need %s to cover amount, have %s", amount.String(), tokenBalance.String())
		}
		tokenNeeded := amount.Add(wf.AmountPtr(orZero(terms.Token)))
		if tokenBalance.Cmp(&tokenNeeded) < 0 {
			return errors.Errorf(errors.NoBalanceForDiesel,
				"need %s to cover amount and fee, have %s", tokenNeeded.String(), tokenBalance.String())
		}
		nativeBalance := orZero(balances.Native)
		if nativeBalance.Cmp(&nativeNeeded) < 0 {
			return errors.NoBalanceForGasf(
				"need %s to cover the network fee, have %s", nativeNeeded.String(), nativeBalance.String())
		}
	}

	starsNeeded := orZero(terms.Stars)
	starsBalance := orZero(balances.Stars)
	if starsBalance.Cmp(&starsNeeded) < 0 {
		return errors.Errorf(errors.NoBalanceForStars,
			"need %s stars to cover the fee, have %s", starsNeeded.String(), starsBalance.String())
	}
	return nil
}

// MaxTransferAmount is the balance of the sent asset minus the part of the fee
// payable in that same asset. Unknown balance gives nil; an unknown fee counts as none.
func MaxTransferAmount(fee wf.ExplainedFee, tokenIsNative bool, balances Balances) *wf.AmountBlockchain {
	balance := balances.Token
	if tokenIsNative {
		balance = balances.Native
	}
	if balance == nil {
		return nil
	}
	feePart := wf.NewAmountBlockchainFromUint64(0)
	if fee.FullFee != nil {
		if tokenIsNative {
			feePart = orZero(fee.FullFee.Terms.Native)
		} else {
			feePart = orZero(fee.FullFee.Terms.Token)
		}
	}
	return wf.AmountPtr(balance.SubClamped(&feePart))
}

func orZero(amount *wf.AmountBlockchain) wf.AmountBlockchain {
	if amount == nil {
		return wf.NewAmountBlockchainFromUint64(0)
	}
	return *amount
}

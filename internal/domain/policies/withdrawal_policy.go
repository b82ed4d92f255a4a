package policies

import (
	"math/big"

	"alphtip/internal/domain/entities"
	valueobjects "alphtip/internal/domain/value_objects"
	apperrors "alphtip/internal/shared_kernel/errors"
)

// DustAmount is the ALPH attached to every token output (0.001 ALPH).
var DustAmount = big.NewInt(1_000_000_000_000_000)

type WithdrawalPolicy struct {
	MinWithdrawal *big.Int
	MinSweepAll   *big.Int
}

// CheckWithdrawal rejects native withdrawals at or below the configured minimum.
// Token withdrawals are not bounded here; the node rejects unaffordable outputs.
func (p WithdrawalPolicy) CheckWithdrawal(amount entities.TokenAmount) *apperrors.AppError {
	if !amount.Token.IsNative() || p.MinWithdrawal == nil {
		return nil
	}
	if amount.Amount.Cmp(p.MinWithdrawal) <= 0 {
		return apperrors.NewTooSmallWithdrawal(
			amount.String(),
			entities.NewTokenAmount(amount.Token, p.MinWithdrawal).String(),
		)
	}
	return nil
}

// CheckSweepAll requires the native balance to stay above the sweep-all minimum so
// the final sweep can pay its own gas.
func (p WithdrawalPolicy) CheckSweepAll(native entities.TokenAmount) *apperrors.AppError {
	if p.MinSweepAll == nil {
		return nil
	}
	if native.Amount.Cmp(p.MinSweepAll) <= 0 {
		return apperrors.NewTooSmallWithdrawal(
			native.String(),
			entities.NewTokenAmount(native.Token, p.MinSweepAll).String(),
		)
	}
	return nil
}

// OutputAmounts returns the ALPH and token amounts of a single output carrying amount.
func OutputAmounts(amount entities.TokenAmount) (*big.Int, *big.Int) {
	if amount.Token.IsNative() {
		return new(big.Int).Set(amount.Amount), nil
	}
	return new(big.Int).Set(DustAmount), new(big.Int).Set(amount.Amount)
}

// FeeGroupAddress picks the fee collection address for a wallet group. Addresses are
// indexed by group; a single configured address serves every group.
func FeeGroupAddress(addresses []string, group int) (string, bool) {
	switch {
	case len(addresses) == 0:
		return "", false
	case len(addresses) == 1:
		return addresses[0], true
	case group >= 0 && group < len(addresses) && group < valueobjects.GroupCount:
		return addresses[group], true
	default:
		return "", false
	}
}

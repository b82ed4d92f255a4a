package entities

import (
	"math/big"

	valueobjects "alphtip/internal/domain/value_objects"
)

// TokenAmount is a non-negative amount of one token in its smallest unit.
type TokenAmount struct {
	Token  Token
	Amount *big.Int
}

func NewTokenAmount(token Token, amount *big.Int) TokenAmount {
	value := new(big.Int)
	if amount != nil && amount.Sign() > 0 {
		value.Set(amount)
	}
	return TokenAmount{Token: token, Amount: value}
}

func ZeroTokenAmount(token Token) TokenAmount {
	return NewTokenAmount(token, nil)
}

func (a TokenAmount) IsZero() bool {
	return a.Amount == nil || a.Amount.Sign() == 0
}

func (a TokenAmount) Add(other *big.Int) TokenAmount {
	sum := new(big.Int)
	if a.Amount != nil {
		sum.Set(a.Amount)
	}
	if other != nil {
		sum.Add(sum, other)
	}
	return NewTokenAmount(a.Token, sum)
}

// SubtractPercentage splits the amount into (remainder, fee) where
// fee = floor(amount * rate) and fee + remainder == amount.
func (a TokenAmount) SubtractPercentage(rate valueobjects.FeeRate) (TokenAmount, TokenAmount) {
	amount := new(big.Int)
	if a.Amount != nil {
		amount.Set(a.Amount)
	}

	fee := new(big.Int).Mul(amount, big.NewInt(rate.BasisPoints()))
	fee.Quo(fee, big.NewInt(valueobjects.BasisPointsDenominator))
	remainder := new(big.Int).Sub(amount, fee)

	return NewTokenAmount(a.Token, remainder), NewTokenAmount(a.Token, fee)
}

func (a TokenAmount) String() string {
	return valueobjects.FormatDecimalAmount(a.Amount, a.Token.Decimals) + " " + a.Token.Symbol
}

package entities

import (
	"math/big"
	"strings"
)

// UserBalance holds one entry per asset. The native asset is always present.
type UserBalance []TokenAmount

func NewUserBalance(amounts ...TokenAmount) UserBalance {
	balance := UserBalance{ZeroTokenAmount(NativeToken())}
	return balance.Merge(amounts)
}

// Merge sums amounts per asset id. Assets present on one side only pass through.
func (b UserBalance) Merge(other []TokenAmount) UserBalance {
	out := make(UserBalance, 0, len(b)+len(other))
	index := make(map[string]int, len(b)+len(other))

	for _, group := range [][]TokenAmount{b, other} {
		for _, amount := range group {
			key := strings.ToLower(amount.Token.ID)
			if position, exists := index[key]; exists {
				out[position] = out[position].Add(amount.Amount)
				continue
			}
			index[key] = len(out)
			out = append(out, NewTokenAmount(amount.Token, amount.Amount))
		}
	}

	if _, exists := index[NativeTokenID]; !exists {
		out = append(UserBalance{ZeroTokenAmount(NativeToken())}, out...)
	}
	return out
}

func (b UserBalance) Native() TokenAmount {
	if amount, ok := b.Find(NativeTokenID); ok {
		return amount
	}
	return ZeroTokenAmount(NativeToken())
}

func (b UserBalance) Find(tokenID string) (TokenAmount, bool) {
	for _, amount := range b {
		if strings.EqualFold(amount.Token.ID, tokenID) {
			return amount, true
		}
	}
	return TokenAmount{}, false
}

// Filter keeps only the given asset, reporting a zero amount when it is not held.
func (b UserBalance) Filter(token Token) UserBalance {
	if amount, ok := b.Find(token.ID); ok {
		return UserBalance{amount}
	}
	return UserBalance{ZeroTokenAmount(token)}
}

func (b UserBalance) AmountOf(tokenID string) *big.Int {
	if amount, ok := b.Find(tokenID); ok {
		return new(big.Int).Set(amount.Amount)
	}
	return new(big.Int)
}

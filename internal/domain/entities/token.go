package entities

import "strings"

// NativeTokenID is the asset id the node reports for ALPH.
const NativeTokenID = "0000000000000000000000000000000000000000000000000000000000000000"

const NativeTokenSymbol = "ALPH"

type Token struct {
	ID       string
	Symbol   string
	Name     string
	Decimals int
}

func NativeToken() Token {
	return Token{
		ID:       NativeTokenID,
		Symbol:   NativeTokenSymbol,
		Name:     "Alephium",
		Decimals: 18,
	}
}

func (t Token) IsNative() bool {
	return strings.EqualFold(t.ID, NativeTokenID)
}

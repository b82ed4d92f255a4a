package dto

// ResolveTokenAmountQuery names a token by symbol and an optional decimal amount.
// An empty symbol means the native asset.
type ResolveTokenAmountQuery struct {
	Symbol string
	Amount string
}

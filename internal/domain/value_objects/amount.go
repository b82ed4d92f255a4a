package valueobjects

import (
	"math/big"
	"strings"

	apperrors "alphtip/internal/shared_kernel/errors"
)

// MaxU256 is the largest amount a node will accept in any amount field.
var MaxU256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

// ParseDecimalAmount converts a human decimal string ("1.25") into the smallest unit
// for a token with the given precision.
func ParseDecimalAmount(raw string, decimals int) (*big.Int, *apperrors.AppError) {
	value := strings.TrimSpace(raw)
	if value == "" || decimals < 0 {
		return nil, invalidAmount(raw, "amount is required")
	}
	if strings.HasPrefix(value, "-") || strings.HasPrefix(value, "+") {
		return nil, invalidAmount(raw, "amount must be a positive decimal")
	}

	whole, frac, hasPoint := strings.Cut(value, ".")
	if whole == "" {
		whole = "0"
	}
	if hasPoint && frac == "" {
		return nil, invalidAmount(raw, "amount has an empty fractional part")
	}
	if len(frac) > decimals {
		return nil, invalidAmount(raw, "amount has more fractional digits than the token supports")
	}
	if !isDigits(whole) || !isDigits(frac) {
		return nil, invalidAmount(raw, "amount must be a positive decimal")
	}

	combined := whole + frac + strings.Repeat("0", decimals-len(frac))
	out, ok := new(big.Int).SetString(combined, 10)
	if !ok {
		return nil, invalidAmount(raw, "amount must be a positive decimal")
	}
	if out.Cmp(MaxU256) > 0 {
		return nil, apperrors.NewValidation(
			apperrors.CodeAmountOverflow,
			"amount exceeds the representable range",
			map[string]any{"amount": raw},
		)
	}

	return out, nil
}

// FormatDecimalAmount renders a smallest-unit amount with trailing zeros trimmed.
func FormatDecimalAmount(amount *big.Int, decimals int) string {
	if amount == nil {
		return "0"
	}
	digits := new(big.Int).Abs(amount).String()
	sign := ""
	if amount.Sign() < 0 {
		sign = "-"
	}
	if decimals <= 0 {
		return sign + digits
	}

	if len(digits) <= decimals {
		digits = strings.Repeat("0", decimals-len(digits)+1) + digits
	}
	whole := digits[:len(digits)-decimals]
	frac := strings.TrimRight(digits[len(digits)-decimals:], "0")
	if frac == "" {
		return sign + whole
	}
	return sign + whole + "." + frac
}

func isDigits(value string) bool {
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func invalidAmount(raw, message string) *apperrors.AppError {
	return apperrors.NewValidation(
		"invalid_amount",
		message,
		map[string]any{"amount": raw},
	)
}

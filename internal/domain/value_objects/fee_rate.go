package valueobjects

import (
	"strconv"
	"strings"

	apperrors "alphtip/internal/shared_kernel/errors"
)

const BasisPointsDenominator int64 = 10_000

// FeeRate is an operator fee expressed in basis points of the moved amount.
type FeeRate struct {
	basisPoints int64
}

// ParseFeePercent accepts a percentage with at most two fractional digits ("0.5", "10").
func ParseFeePercent(raw string) (FeeRate, *apperrors.AppError) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return FeeRate{}, nil
	}

	whole, frac, _ := strings.Cut(value, ".")
	if whole == "" || len(frac) > 2 || !isDigits(whole) || !isDigits(frac) {
		return FeeRate{}, invalidFeePercent(raw)
	}
	frac += strings.Repeat("0", 2-len(frac))

	bps, err := strconv.ParseInt(whole+frac, 10, 64)
	if err != nil {
		return FeeRate{}, invalidFeePercent(raw)
	}
	return NewFeeRate(bps)
}

func NewFeeRate(basisPoints int64) (FeeRate, *apperrors.AppError) {
	if basisPoints < 0 || basisPoints > BasisPointsDenominator {
		return FeeRate{}, apperrors.NewValidation(
			"invalid_fee_percent",
			"fee percent must be between 0 and 100",
			map[string]any{"basis_points": basisPoints},
		)
	}
	return FeeRate{basisPoints: basisPoints}, nil
}

func (r FeeRate) BasisPoints() int64 {
	return r.basisPoints
}

func (r FeeRate) IsZero() bool {
	return r.basisPoints == 0
}

func (r FeeRate) String() string {
	whole := r.basisPoints / 100
	frac := r.basisPoints % 100
	if frac == 0 {
		return strconv.FormatInt(whole, 10) + "%"
	}
	return strconv.FormatInt(whole, 10) + "." + strings.TrimRight(twoDigits(frac), "0") + "%"
}

func twoDigits(value int64) string {
	if value < 10 {
		return "0" + strconv.FormatInt(value, 10)
	}
	return strconv.FormatInt(value, 10)
}

func invalidFeePercent(raw string) *apperrors.AppError {
	return apperrors.NewValidation(
		"invalid_fee_percent",
		"fee percent must be a decimal with at most two fractional digits",
		map[string]any{"fee_percent": raw},
	)
}

//go:build !integration

package valueobjects

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecimalAmount(t *testing.T) {
	testCases := []struct {
		raw      string
		decimals int
		expected string
	}{
		{raw: "1", decimals: 18, expected: "1000000000000000000"},
		{raw: "0.001", decimals: 18, expected: "1000000000000000"},
		{raw: ".5", decimals: 2, expected: "50"},
		{raw: " 12.34 ", decimals: 2, expected: "1234"},
		{raw: "7", decimals: 0, expected: "7"},
	}

	for _, testCase := range testCases {
		amount, appErr := ParseDecimalAmount(testCase.raw, testCase.decimals)
		require.Nil(t, appErr, testCase.raw)
		assert.Equal(t, testCase.expected, amount.String(), testCase.raw)
	}
}

func TestParseDecimalAmountRejectsInvalidInput(t *testing.T) {
	for _, raw := range []string{"", "-1", "1.", "1.234", "1e5", "abc", "1.2.3"} {
		_, appErr := ParseDecimalAmount(raw, 2)
		require.NotNil(t, appErr, raw)
		assert.Equal(t, "invalid_amount", appErr.Code, raw)
	}

	_, appErr := ParseDecimalAmount("1"+strings.Repeat("0", 80), 0)
	require.NotNil(t, appErr)
	assert.Equal(t, "amount_overflow", appErr.Code)
}

func TestFormatDecimalAmount(t *testing.T) {
	assert.Equal(t, "1.5", FormatDecimalAmount(big.NewInt(1500), 3))
	assert.Equal(t, "0.001", FormatDecimalAmount(big.NewInt(1), 3))
	assert.Equal(t, "2", FormatDecimalAmount(big.NewInt(2000), 3))
	assert.Equal(t, "0", FormatDecimalAmount(big.NewInt(0), 18))
	assert.Equal(t, "42", FormatDecimalAmount(big.NewInt(42), 0))
	assert.Equal(t, "0", FormatDecimalAmount(nil, 18))
}

func TestParseFeePercentAmountCases(t *testing.T) {
	testCases := map[string]int64{
		"":     0,
		"0":    0,
		"10":   1000,
		"0.5":  50,
		"2.25": 225,
		"100":  10000,
	}
	for raw, expected := range testCases {
		rate, appErr := ParseFeePercent(raw)
		require.Nil(t, appErr, raw)
		assert.Equal(t, expected, rate.BasisPoints(), raw)
	}

	for _, raw := range []string{"-1", "100.01", "1.234", "abc", ".5"} {
		_, appErr := ParseFeePercent(raw)
		require.NotNil(t, appErr, raw)
	}

	rate, _ := ParseFeePercent("2.5")
	assert.Equal(t, "2.5%", rate.String())
}

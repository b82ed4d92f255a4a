//go:build !integration

package bootstrap

import (
	"testing"

	"alphtip/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateNativeTokenRow(t *testing.T) {
	cases := []struct {
		name    string
		row     tokenRow
		wantErr bool
	}{
		{"seeded row", tokenRow{ID: entities.NativeTokenID, Symbol: "ALPH", Decimals: 18}, false},
		{"symbol case", tokenRow{ID: entities.NativeTokenID, Symbol: " alph ", Decimals: 18}, false},
		{"wrong symbol", tokenRow{ID: entities.NativeTokenID, Symbol: "ETH", Decimals: 18}, true},
		{"wrong decimals", tokenRow{ID: entities.NativeTokenID, Symbol: "ALPH", Decimals: 8}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appErr := validateNativeTokenRow(tc.row)
			if !tc.wantErr {
				assert.Nil(t, appErr)
				return
			}
			require.NotNil(t, appErr)
			assert.Equal(t, "invalid_configuration", appErr.Code)
			assert.Equal(t, tc.row.Decimals, appErr.Details["decimals"])
		})
	}
}

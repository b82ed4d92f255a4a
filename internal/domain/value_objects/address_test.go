//go:build !integration

package valueobjects

import (
	"testing"

	apperrors "alphtip/internal/shared_kernel/errors"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHash() []byte {
	hash := make([]byte, 32)
	for i := range hash {
		hash[i] = byte(i + 1)
	}
	return hash
}

func TestParseAddressAcceptsKnownShapes(t *testing.T) {
	hash := testHash()

	p2pkh := base58.Encode(append([]byte{byte(AddressTypeP2PKH)}, hash...))
	address, appErr := ParseAddress(" " + p2pkh + " ")
	require.Nil(t, appErr)
	assert.Equal(t, p2pkh, address.String())
	assert.Equal(t, AddressTypeP2PKH, address.Type())
	assert.Equal(t, GroupOfLockupHash(hash), address.Group())

	contract := base58.Encode(append([]byte{byte(AddressTypeP2C)}, hash...))
	address, appErr = ParseAddress(contract)
	require.Nil(t, appErr)
	assert.Equal(t, int(hash[31])%GroupCount, address.Group())

	multisig := []byte{byte(AddressTypeP2MPKH), 2}
	multisig = append(multisig, hash...)
	multisig = append(multisig, make([]byte, 32)...)
	multisig = append(multisig, 1)
	address, appErr = ParseAddress(base58.Encode(multisig))
	require.Nil(t, appErr)
	assert.Equal(t, AddressTypeP2MPKH, address.Type())
	assert.Equal(t, GroupOfLockupHash(hash), address.Group())
}

func TestParseAddressRejectsMalformedInput(t *testing.T) {
	hash := testHash()
	testCases := map[string]string{
		"empty":               "",
		"outside alphabet":    "1DrDyTr9RpRsQnDnXo2YRiPzPW4ooHX5LLoqXrqfMrpQH0",
		"ethereum style":      "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed",
		"unknown type":        base58.Encode(append([]byte{0x07}, hash...)),
		"short payload":       base58.Encode(append([]byte{byte(AddressTypeP2PKH)}, hash[:20]...)),
		"multisig bad m":      base58.Encode(append(append([]byte{byte(AddressTypeP2MPKH), 1}, hash...), 3)),
		"multisig bad length": base58.Encode(append(append([]byte{byte(AddressTypeP2MPKH), 1}, hash[:31]...), 1)),
	}

	for name, raw := range testCases {
		t.Run(name, func(t *testing.T) {
			_, appErr := ParseAddress(raw)
			require.NotNil(t, appErr)
			assert.Equal(t, apperrors.CodeInvalidAddress, appErr.Code)
			assert.Equal(t, apperrors.TypeValidation, appErr.Type)
		})
	}
}

func TestGroupOfLockupHashStaysInRange(t *testing.T) {
	seen := map[int]bool{}
	hash := testHash()
	for i := 0; i < 256; i++ {
		hash[0] = byte(i)
		group := GroupOfLockupHash(hash)
		require.GreaterOrEqual(t, group, 0)
		require.Less(t, group, GroupCount)
		seen[group] = true
	}
	assert.Len(t, seen, GroupCount)
}

func TestDJB2ReferenceValues(t *testing.T) {
	assert.Equal(t, uint32(5381), djb2(nil))
	assert.Equal(t, uint32(5381*33+'a'), djb2([]byte("a")))
	assert.Equal(t, byte(0x01^0x02^0x03^0x04), xorBytes(0x01020304))
}

package valueobjects

import (
	"bytes"
	"strings"

	apperrors "alphtip/internal/shared_kernel/errors"

	"github.com/btcsuite/btcd/btcutil/base58"
)

type AddressType byte

const (
	AddressTypeP2PKH  AddressType = 0x00
	AddressTypeP2MPKH AddressType = 0x01
	AddressTypeP2SH   AddressType = 0x02
	AddressTypeP2C    AddressType = 0x03
)

const (
	GroupCount        = 4
	addressHashLength = 32
)

// Address is a syntactically valid Alephium address.
type Address struct {
	raw     string
	kind    AddressType
	payload []byte
}

func ParseAddress(raw string) (Address, *apperrors.AppError) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Address{}, apperrors.NewInvalidAddress(raw)
	}

	decoded := base58.Decode(trimmed)
	// base58.Decode yields nothing for characters outside the alphabet
	if len(decoded) == 0 || base58.Encode(decoded) != trimmed {
		return Address{}, apperrors.NewInvalidAddress(raw)
	}

	kind := AddressType(decoded[0])
	payload := decoded[1:]
	switch kind {
	case AddressTypeP2PKH, AddressTypeP2SH, AddressTypeP2C:
		if len(payload) != addressHashLength {
			return Address{}, apperrors.NewInvalidAddress(raw)
		}
	case AddressTypeP2MPKH:
		// key count, key hashes, threshold
		if len(decoded) < 3+addressHashLength || (len(decoded)-3)%addressHashLength != 0 {
			return Address{}, apperrors.NewInvalidAddress(raw)
		}
		keys := int(payload[0])
		threshold := int(payload[len(payload)-1])
		if keys != (len(decoded)-3)/addressHashLength || threshold == 0 || threshold > keys {
			return Address{}, apperrors.NewInvalidAddress(raw)
		}
	default:
		return Address{}, apperrors.NewInvalidAddress(raw)
	}

	return Address{raw: trimmed, kind: kind, payload: bytes.Clone(payload)}, nil
}

func (a Address) String() string {
	return a.raw
}

func (a Address) Type() AddressType {
	return a.kind
}

// Group reports the shard group the address belongs to.
func (a Address) Group() int {
	switch a.kind {
	case AddressTypeP2C:
		return int(a.payload[len(a.payload)-1]) % GroupCount
	case AddressTypeP2MPKH:
		return GroupOfLockupHash(a.payload[1 : 1+addressHashLength])
	default:
		return GroupOfLockupHash(a.payload)
	}
}

func GroupOfLockupHash(hash []byte) int {
	hint := djb2(hash) | 1
	return int(xorBytes(hint)) % GroupCount
}

func djb2(data []byte) uint32 {
	hash := uint32(5381)
	for _, b := range data {
		hash = (hash << 5) + hash + uint32(b)
	}
	return hash
}

func xorBytes(value uint32) byte {
	return byte(value>>24) ^ byte(value>>16) ^ byte(value>>8) ^ byte(value)
}

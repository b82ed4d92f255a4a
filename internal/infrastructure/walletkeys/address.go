package walletkeys

import (
	valueobjects "alphtip/internal/domain/value_objects"

	"github.com/btcsuite/btcd/btcutil/base58"
	"golang.org/x/crypto/blake2b"
)

// EncodeP2PKH renders the base58 address of a compressed secp256k1 public key.
func EncodeP2PKH(compressedPublicKey []byte) (string, int) {
	hash := blake2b.Sum256(compressedPublicKey)
	raw := make([]byte, 0, 1+len(hash))
	raw = append(raw, byte(valueobjects.AddressTypeP2PKH))
	raw = append(raw, hash[:]...)
	return base58.Encode(raw), valueobjects.GroupOfLockupHash(hash[:])
}

package walletkeys

import (
	"encoding/hex"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

// Wallet is a derived per-user keypair. It is never persisted.
type Wallet struct {
	privateKey   *btcec.PrivateKey
	address      string
	publicKeyHex string
	group        int
}

func newWallet(privateKey *btcec.PrivateKey) *Wallet {
	compressed := privateKey.PubKey().SerializeCompressed()
	address, group := EncodeP2PKH(compressed)

	return &Wallet{
		privateKey:   privateKey,
		address:      address,
		publicKeyHex: hex.EncodeToString(compressed),
		group:        group,
	}
}

func (w *Wallet) Address() string {
	return w.address
}

func (w *Wallet) PublicKeyHex() string {
	return w.publicKeyHex
}

func (w *Wallet) Group() int {
	return w.group
}

// Sign signs a hex transaction id and returns the 64-byte r||s signature as hex.
func (w *Wallet) Sign(txID string) (string, *KeyError) {
	digest, err := hex.DecodeString(strings.TrimSpace(txID))
	if err != nil {
		return "", wrapKeyError(CodeInvalidTransactionID, "transaction id is not hex", err)
	}
	if len(digest) != 32 {
		return "", wrapKeyError(CodeInvalidTransactionID, "transaction id must be 32 bytes", nil)
	}

	compact, err := ecdsa.SignCompact(w.privateKey, digest, true)
	if err != nil {
		return "", wrapKeyError(CodeSigningFailed, "failed to sign transaction", err)
	}
	if len(compact) != 65 {
		return "", wrapKeyError(CodeSigningFailed, "unexpected signature length", nil)
	}

	// drop the recovery header byte
	return hex.EncodeToString(compact[1:]), nil
}

package walletkeys

import (
	"math"
	"strings"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/tyler-smith/go-bip39"
)

// Alephium BIP44 coin type.
const CoinType uint32 = 1234

// MasterKey holds the BIP32 root of the custodial wallet tree. It is built once at
// startup from the operator mnemonic and only used to derive per-user wallets.
type MasterKey struct {
	account *hdkeychain.ExtendedKey
}

func NewMasterKey(mnemonic string, passphrase string) (*MasterKey, *KeyError) {
	normalized := strings.Join(strings.Fields(mnemonic), " ")
	if normalized == "" {
		return nil, wrapKeyError(CodeInvalidMnemonic, "wallet mnemonic is required", nil)
	}
	if !bip39.IsMnemonicValid(normalized) {
		return nil, wrapKeyError(CodeInvalidMnemonic, "wallet mnemonic is not a valid bip39 phrase", nil)
	}

	seed, err := bip39.NewSeedWithErrorChecking(normalized, passphrase)
	if err != nil {
		return nil, wrapKeyError(CodeInvalidMnemonic, "failed to expand wallet mnemonic", err)
	}

	root, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, wrapKeyError(CodeInvalidKeyMaterial, "failed to build master key", err)
	}

	// m/44'/1234'/0'/0
	account := root
	for _, child := range []uint32{
		hdkeychain.HardenedKeyStart + 44,
		hdkeychain.HardenedKeyStart + CoinType,
		hdkeychain.HardenedKeyStart,
		0,
	} {
		account, err = account.Derive(child)
		if err != nil {
			return nil, wrapKeyError(CodeDerivationFailed, "failed to derive account key", err)
		}
	}

	return &MasterKey{account: account}, nil
}

// DeriveWallet returns the wallet at m/44'/1234'/0'/0/{index}.
func (m *MasterKey) DeriveWallet(index int64) (*Wallet, *KeyError) {
	if m == nil || m.account == nil {
		return nil, wrapKeyError(CodeInvalidKeyMaterial, "master key is not initialized", nil)
	}
	if index < 0 {
		return nil, wrapKeyError(CodeDerivationFailed, "derivation index must be non-negative", nil)
	}
	if index >= math.MaxInt32 {
		return nil, wrapKeyError(CodeDerivationFailed, "derivation index exceeds non-hardened BIP32 range", nil)
	}

	child, err := m.account.Derive(uint32(index))
	if err != nil {
		return nil, wrapKeyError(CodeDerivationFailed, "failed to derive wallet key", err)
	}
	privateKey, err := child.ECPrivKey()
	if err != nil {
		return nil, wrapKeyError(CodeDerivationFailed, "failed to extract wallet private key", err)
	}

	return newWallet(privateKey), nil
}

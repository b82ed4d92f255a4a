package deterministic

import (
	portsout "alphtip/internal/application/ports/out"
	"alphtip/internal/infrastructure/walletkeys"
)

// Deriver hands out per-user signing wallets from a single master seed.
type Deriver struct {
	master *walletkeys.MasterKey
}

var _ portsout.WalletDeriver = (*Deriver)(nil)

func NewDeriver(master *walletkeys.MasterKey) *Deriver {
	return &Deriver{master: master}
}

func (d *Deriver) Derive(index int64) (portsout.WalletHandle, error) {
	wallet, keyErr := d.master.DeriveWallet(index)
	if keyErr != nil {
		return nil, keyErr
	}
	return walletHandle{wallet: wallet}, nil
}

type walletHandle struct {
	wallet *walletkeys.Wallet
}

func (h walletHandle) Address() string      { return h.wallet.Address() }
func (h walletHandle) PublicKeyHex() string { return h.wallet.PublicKeyHex() }
func (h walletHandle) Group() int           { return h.wallet.Group() }

func (h walletHandle) Sign(txID string) (string, error) {
	signature, keyErr := h.wallet.Sign(txID)
	if keyErr != nil {
		return "", keyErr
	}
	return signature, nil
}

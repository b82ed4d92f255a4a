package out

// WalletHandle is a per-call signing capability. Callers must not retain it.
type WalletHandle interface {
	Address() string
	PublicKeyHex() string
	Group() int
	Sign(txID string) (string, error)
}

type WalletDeriver interface {
	Derive(index int64) (WalletHandle, error)
}

package out

import (
	"context"
	"math/big"
	"time"
)

type AssetBalance struct {
	ID     string
	Amount *big.Int
}

type AddressBalance struct {
	Balance       *big.Int
	LockedBalance *big.Int
	Tokens        []AssetBalance
	UTXOCount     int
}

// Spendable is the ALPH balance minus the part locked by time-locked outputs.
func (b AddressBalance) Spendable() *big.Int {
	if b.Balance == nil {
		return big.NewInt(0)
	}
	if b.LockedBalance == nil {
		return new(big.Int).Set(b.Balance)
	}
	spendable := new(big.Int).Sub(b.Balance, b.LockedBalance)
	if spendable.Sign() < 0 {
		return big.NewInt(0)
	}
	return spendable
}

type TransferDestination struct {
	Address        string
	AttoAlphAmount *big.Int
	Tokens         []AssetBalance
}

// NodeGateway talks to the full node. Errors are returned as the node reported them;
// interpretation belongs to ErrorClassifier.
type NodeGateway interface {
	GetAddressBalance(ctx context.Context, address string, includeMempool bool) (AddressBalance, error)
	TransferAndSubmit(ctx context.Context, wallet WalletHandle, destinations []TransferDestination) (string, error)
	SweepAndSubmit(ctx context.Context, wallet WalletHandle, toAddress string) ([]string, error)
	WaitForConfirmation(ctx context.Context, txID string, confirmations int, pollInterval time.Duration) error
}

type ErrorClassifier interface {
	Classify(err error) error
}

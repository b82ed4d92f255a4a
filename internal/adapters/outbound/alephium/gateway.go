package alephium

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	portsout "alphtip/internal/application/ports/out"
	apperrors "alphtip/internal/shared_kernel/errors"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

const defaultPollInterval = time.Second

var errNotConfirmed = errors.New("transaction not confirmed yet")

type Gateway struct {
	client *Client
	logger *zap.Logger
}

var (
	_ portsout.NodeGateway    = (*Gateway)(nil)
	_ portsout.ReadinessProbe = (*Gateway)(nil)
)

func NewGateway(client *Client, logger *zap.Logger) *Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gateway{client: client, logger: logger}
}

// CheckReadiness asks the node for its build info.
func (g *Gateway) CheckReadiness(ctx context.Context) *apperrors.AppError {
	if _, err := g.client.NodeInfo(ctx); err != nil {
		g.logger.Warn("node readiness check failed", zap.Error(err))
		return apperrors.NewUnavailable(
			apperrors.CodeNetworkError,
			"alephium node is unreachable",
			nil,
		).WithCause(err)
	}
	return nil
}

func (g *Gateway) GetAddressBalance(ctx context.Context, address string, includeMempool bool) (portsout.AddressBalance, error) {
	raw, err := g.client.AddressBalance(ctx, address, includeMempool)
	if err != nil {
		return portsout.AddressBalance{}, err
	}

	balance, err := parseAmount("balance", raw.Balance)
	if err != nil {
		return portsout.AddressBalance{}, err
	}
	locked := big.NewInt(0)
	if raw.LockedBalance != "" {
		if locked, err = parseAmount("lockedBalance", raw.LockedBalance); err != nil {
			return portsout.AddressBalance{}, err
		}
	}

	tokens := make([]portsout.AssetBalance, 0, len(raw.TokenBalances))
	for _, token := range raw.TokenBalances {
		amount, err := parseAmount("tokenBalances.amount", token.Amount)
		if err != nil {
			return portsout.AddressBalance{}, err
		}
		tokens = append(tokens, portsout.AssetBalance{ID: token.ID, Amount: amount})
	}

	return portsout.AddressBalance{
		Balance:       balance,
		LockedBalance: locked,
		Tokens:        tokens,
		UTXOCount:     raw.UTXONum,
	}, nil
}

func (g *Gateway) TransferAndSubmit(
	ctx context.Context,
	wallet portsout.WalletHandle,
	destinations []portsout.TransferDestination,
) (string, error) {
	request := buildTransferRequest{
		FromPublicKey: wallet.PublicKeyHex(),
		Destinations:  make([]destinationJSON, 0, len(destinations)),
	}
	for _, destination := range destinations {
		request.Destinations = append(request.Destinations, toDestinationJSON(destination))
	}

	built, err := g.client.BuildTransfer(ctx, request)
	if err != nil {
		return "", err
	}
	return g.signAndSubmit(ctx, wallet, built.unsignedTxJSON)
}

// SweepAndSubmit moves every UTXO of wallet to toAddress. The node may split the sweep
// into several transactions, or none when the address is empty.
func (g *Gateway) SweepAndSubmit(ctx context.Context, wallet portsout.WalletHandle, toAddress string) ([]string, error) {
	built, err := g.client.BuildSweep(ctx, buildSweepRequest{
		FromPublicKey: wallet.PublicKeyHex(),
		ToAddress:     toAddress,
	})
	if err != nil {
		return nil, err
	}

	txIDs := make([]string, 0, len(built.UnsignedTxs))
	for _, unsigned := range built.UnsignedTxs {
		txID, err := g.signAndSubmit(ctx, wallet, unsigned)
		if err != nil {
			return txIDs, err
		}
		txIDs = append(txIDs, txID)
	}
	return txIDs, nil
}

// WaitForConfirmation polls the node until txID has at least confirmations chain
// confirmations. Only ctx bounds the wait.
func (g *Gateway) WaitForConfirmation(
	ctx context.Context,
	txID string,
	confirmations int,
	pollInterval time.Duration,
) error {
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	confirmations = max(confirmations, 1)

	policy := backoff.NewConstantBackOff(pollInterval)
	return backoff.Retry(func() error {
		status, err := g.client.TransactionStatus(ctx, txID)
		if err != nil {
			var transportErr *TransportError
			if errors.As(err, &transportErr) {
				g.logger.Warn("transaction status poll failed", zap.String("tx_id", txID), zap.Error(err))
				return err
			}
			return backoff.Permanent(err)
		}
		switch status.Type {
		case txStatusConfirmed:
			if status.ChainConfirmations >= confirmations {
				return nil
			}
		case txStatusMemPooled, txStatusTxNotFound:
			g.logger.Debug("transaction pending", zap.String("tx_id", txID), zap.String("status", status.Type))
		default:
			g.logger.Warn("unexpected transaction status", zap.String("tx_id", txID), zap.String("status", status.Type))
		}
		return errNotConfirmed
	}, backoff.WithContext(policy, ctx))
}

func (g *Gateway) signAndSubmit(ctx context.Context, wallet portsout.WalletHandle, unsigned unsignedTxJSON) (string, error) {
	signature, err := wallet.Sign(unsigned.TxID)
	if err != nil {
		return "", err
	}

	submitted, err := g.client.Submit(ctx, submitRequest{UnsignedTx: unsigned.UnsignedTx, Signature: signature})
	if err != nil {
		return "", err
	}
	g.logger.Info("transaction submitted",
		zap.String("address", wallet.Address()),
		zap.String("tx_id", submitted.TxID),
	)
	return submitted.TxID, nil
}

func toDestinationJSON(destination portsout.TransferDestination) destinationJSON {
	out := destinationJSON{
		Address:        destination.Address,
		AttoAlphAmount: "0",
	}
	if destination.AttoAlphAmount != nil {
		out.AttoAlphAmount = destination.AttoAlphAmount.String()
	}
	for _, token := range destination.Tokens {
		if token.Amount == nil || token.Amount.Sign() == 0 {
			continue
		}
		out.Tokens = append(out.Tokens, tokenJSON{ID: token.ID, Amount: token.Amount.String()})
	}
	return out
}

func parseAmount(field string, raw string) (*big.Int, error) {
	amount, ok := new(big.Int).SetString(raw, 10)
	if !ok || amount.Sign() < 0 {
		return nil, fmt.Errorf("node returned malformed %s %q", field, raw)
	}
	return amount, nil
}

package use_cases

import (
	"context"
	"sync"

	"alphtip/internal/application/dto"
	portsin "alphtip/internal/application/ports/in"
	portsout "alphtip/internal/application/ports/out"
	"alphtip/internal/domain/entities"
	"alphtip/internal/domain/policies"
	valueobjects "alphtip/internal/domain/value_objects"
	apperrors "alphtip/internal/shared_kernel/errors"

	"go.uber.org/zap"
)

// WalletDependencies are the collaborators shared by every wallet use case.
type WalletDependencies struct {
	Deriver    portsout.WalletDeriver
	Gateway    portsout.NodeGateway
	Classifier portsout.ErrorClassifier
	Logger     *zap.Logger
}

type walletOperations struct {
	deriver    portsout.WalletDeriver
	gateway    portsout.NodeGateway
	classifier portsout.ErrorClassifier
	settings   dto.WalletSettings
	logger     *zap.Logger
}

func newWalletOperations(deps WalletDependencies, settings dto.WalletSettings) walletOperations {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return walletOperations{
		deriver:    deps.Deriver,
		gateway:    deps.Gateway,
		classifier: deps.Classifier,
		settings:   settings,
		logger:     logger,
	}
}

func (o walletOperations) validate() *apperrors.AppError {
	switch {
	case o.deriver == nil:
		return apperrors.NewInternal("wallet_deriver_missing", "wallet deriver is required", nil)
	case o.gateway == nil:
		return apperrors.NewInternal("node_gateway_missing", "node gateway is required", nil)
	case o.classifier == nil:
		return apperrors.NewInternal("error_classifier_missing", "error classifier is required", nil)
	default:
		return nil
	}
}

func (o walletOperations) wallet(user entities.User) (portsout.WalletHandle, error) {
	if !user.IsPersisted() {
		return nil, apperrors.NewValidation(
			"user_not_persisted",
			"user must be registered before using its wallet",
			map[string]any{"identity": user.Identity},
		)
	}
	wallet, err := o.deriver.Derive(user.ID)
	if err != nil {
		return nil, apperrors.NewInternal(
			"wallet_derivation_failed",
			"failed to derive user wallet",
			map[string]any{"user_id": user.ID},
		).WithCause(err)
	}
	return wallet, nil
}

// reject translates a node failure. Failures that match no known shape are logged
// in full and returned unchanged.
func (o walletOperations) reject(operation string, err error) error {
	classified := o.classifier.Classify(err)
	if _, ok := apperrors.As(classified); !ok {
		o.logger.Error("unclassified node failure",
			zap.String("operation", operation),
			zap.Error(err),
		)
	}
	return classified
}

func (o walletOperations) waitForConfirmation(ctx context.Context, txID string, confirmations int) error {
	return o.gateway.WaitForConfirmation(ctx, txID, confirmations, o.settings.Confirmations.PollInterval)
}

// statusQueueSize bounds the renderings waiting for a slow sink. An operation
// produces at most a handful.
const statusQueueSize = 16

// newStatus builds the operation tracker. Renderings reach the sink in order on a
// dedicated goroutine that exits after the terminal rendering. Against a dev
// network only the terminal rendering is published.
func (o walletOperations) newStatus(
	ctx context.Context,
	title string,
	steps []valueobjects.TransactionStep,
	sink portsout.StatusSink,
) *valueobjects.TransactionStatus {
	if sink == nil {
		return valueobjects.NewTransactionStatus(title, steps, nil)
	}

	updates := newStatusQueue(statusQueueSize)
	var status *valueobjects.TransactionStatus
	status = valueobjects.NewTransactionStatus(title, steps, func(rendered string) {
		if !updates.push(rendered, status.IsTerminal()) {
			o.logger.Debug("status update dropped",
				zap.String("operation_id", status.OperationID()),
				zap.String("reason", "queue full"),
			)
		}
	})
	if o.settings.DevNetwork {
		status.Quiet()
	}

	detached := context.WithoutCancel(ctx)
	go func() {
		for rendered := range updates.items {
			if err := sink.OnUpdate(detached, rendered); err != nil {
				o.logger.Debug("status update dropped",
					zap.String("operation_id", status.OperationID()),
					zap.Error(err),
				)
			}
		}
	}()
	return status
}

// statusQueue is an ordered, non-blocking hand-off closed by the last rendering.
type statusQueue struct {
	mu     sync.Mutex
	items  chan string
	closed bool
}

func newStatusQueue(size int) *statusQueue {
	return &statusQueue{items: make(chan string, size)}
}

func (q *statusQueue) push(rendered string, last bool) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return true
	}

	accepted := true
	select {
	case q.items <- rendered:
	default:
		accepted = false
	}
	if last {
		q.closed = true
		close(q.items)
	}
	return accepted
}

func (o walletOperations) feeAddress(wallet portsout.WalletHandle) (string, *apperrors.AppError) {
	address, ok := policies.FeeGroupAddress(o.settings.FeeAddresses, wallet.Group())
	if !ok {
		return "", apperrors.NewInternal(
			"fee_address_missing",
			"no operator fee address is configured for the wallet group",
			map[string]any{"group": wallet.Group()},
		)
	}
	return address, nil
}

func destinationFor(address string, amount entities.TokenAmount) portsout.TransferDestination {
	alph, tokens := policies.OutputAmounts(amount)
	destination := portsout.TransferDestination{
		Address:        address,
		AttoAlphAmount: alph,
	}
	if tokens != nil {
		destination.Tokens = []portsout.AssetBalance{{ID: amount.Token.ID, Amount: tokens}}
	}
	return destination
}

// consolidateInBackground runs consolidation checks detached from the caller. Their
// outcome never reaches the caller.
func (o walletOperations) consolidateInBackground(
	ctx context.Context,
	consolidate portsin.ConsolidateUseCase,
	users ...entities.User,
) {
	if consolidate == nil {
		return
	}

	detached := context.WithoutCancel(ctx)
	for _, user := range users {
		go func() {
			output, err := consolidate.Execute(detached, dto.ConsolidateCommand{User: user})
			if err != nil {
				o.logger.Warn("background consolidation failed",
					zap.Int64("user_id", user.ID),
					zap.String("address", user.Address),
					zap.Error(err),
				)
				return
			}
			if output.Consolidated {
				o.logger.Info("wallet consolidated",
					zap.Int64("user_id", user.ID),
					zap.Int("utxo_count", output.UTXOCount),
					zap.Strings("tx_ids", output.TransactionIDs),
				)
			}
		}()
	}
}

package use_cases

import (
	"context"

	"alphtip/internal/application/dto"
	portsin "alphtip/internal/application/ports/in"
	portsout "alphtip/internal/application/ports/out"
	valueobjects "alphtip/internal/domain/value_objects"
	apperrors "alphtip/internal/shared_kernel/errors"

	"go.uber.org/zap"
)

type transferUseCase struct {
	walletOperations
	consolidate portsin.ConsolidateUseCase
}

// NewTransferUseCase moves tokens between two custodial wallets.
func NewTransferUseCase(
	deps WalletDependencies,
	settings dto.WalletSettings,
	consolidate portsin.ConsolidateUseCase,
) portsin.TransferUseCase {
	return &transferUseCase{
		walletOperations: newWalletOperations(deps, settings),
		consolidate:      consolidate,
	}
}

func (u *transferUseCase) Execute(ctx context.Context, command dto.TransferCommand) (dto.TransactionOutput, error) {
	if appErr := u.validate(); appErr != nil {
		return dto.TransactionOutput{}, appErr
	}
	if command.Receiver.Address == "" {
		return dto.TransactionOutput{}, apperrors.NewValidation(
			"receiver_address_missing",
			"receiver has no wallet address",
			map[string]any{"identity": command.Receiver.Identity},
		)
	}
	if command.Amount.IsZero() {
		return dto.TransactionOutput{}, apperrors.NewValidation(
			"invalid_amount",
			"transfer amount must be greater than zero",
			nil,
		)
	}

	status := u.newStatus(ctx, "Tip of "+command.Amount.String(), []valueobjects.TransactionStep{valueobjects.StepTransfer}, command.StatusSink)
	output := dto.TransactionOutput{OperationID: status.OperationID()}
	status.Start()

	wallet, err := u.wallet(command.Sender)
	if err != nil {
		status.Fail(err.Error())
		return output, err
	}

	destination := destinationFor(command.Receiver.Address, command.Amount)
	txID, err := u.gateway.TransferAndSubmit(ctx, wallet, []portsout.TransferDestination{destination})
	if err != nil {
		rejected := u.reject("transfer", err)
		status.Fail(rejected.Error())
		return output, rejected
	}
	status.SetTransactionID(txID)

	if err := u.waitForConfirmation(ctx, txID, u.settings.Confirmations.Internal); err != nil {
		rejected := u.reject("transfer", err)
		status.Fail(rejected.Error())
		return output, rejected
	}
	status.Confirm()

	u.logger.Info("transfer confirmed",
		zap.String("operation_id", output.OperationID),
		zap.Int64("user_id", command.Sender.ID),
		zap.String("tx_id", txID),
	)

	u.consolidateInBackground(ctx, u.consolidate, command.Sender, command.Receiver)

	output.TransactionID = txID
	return output, nil
}

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

type withdrawUseCase struct {
	walletOperations
	consolidate portsin.ConsolidateUseCase
}

// NewWithdrawUseCase sends an amount from a custodial wallet to an external address,
// taking the operator fee out of the requested amount.
func NewWithdrawUseCase(
	deps WalletDependencies,
	settings dto.WalletSettings,
	consolidate portsin.ConsolidateUseCase,
) portsin.WithdrawUseCase {
	return &withdrawUseCase{
		walletOperations: newWalletOperations(deps, settings),
		consolidate:      consolidate,
	}
}

func (u *withdrawUseCase) Execute(ctx context.Context, command dto.WithdrawCommand) (dto.TransactionOutput, error) {
	if appErr := u.validate(); appErr != nil {
		return dto.TransactionOutput{}, appErr
	}

	destinationAddress, appErr := valueobjects.ParseAddress(command.DestinationAddress)
	if appErr != nil {
		return dto.TransactionOutput{}, appErr
	}
	if command.Amount.IsZero() {
		return dto.TransactionOutput{}, apperrors.NewValidation(
			"invalid_amount",
			"withdrawal amount must be greater than zero",
			nil,
		)
	}
	if appErr := u.settings.Withdrawal.CheckWithdrawal(command.Amount); appErr != nil {
		return dto.TransactionOutput{}, appErr
	}

	status := u.newStatus(ctx, "Withdrawal of "+command.Amount.String(), []valueobjects.TransactionStep{valueobjects.StepWithdraw}, command.StatusSink)
	output := dto.TransactionOutput{OperationID: status.OperationID()}
	status.Start()

	wallet, err := u.wallet(command.User)
	if err != nil {
		status.Fail(err.Error())
		return output, err
	}

	destinations, appErr := u.buildDestinations(wallet, command, destinationAddress.String())
	if appErr != nil {
		status.Fail(appErr.Error())
		return output, appErr
	}

	txID, err := u.gateway.TransferAndSubmit(ctx, wallet, destinations)
	if err != nil {
		rejected := u.reject("withdraw", err)
		status.Fail(rejected.Error())
		return output, rejected
	}
	status.SetTransactionID(txID)

	if err := u.waitForConfirmation(ctx, txID, u.settings.Confirmations.External); err != nil {
		rejected := u.reject("withdraw", err)
		status.Fail(rejected.Error())
		return output, rejected
	}
	status.Confirm()

	u.logger.Info("withdrawal confirmed",
		zap.String("operation_id", output.OperationID),
		zap.Int64("user_id", command.User.ID),
		zap.String("tx_id", txID),
	)

	u.consolidateInBackground(ctx, u.consolidate, command.User)

	output.TransactionID = txID
	return output, nil
}

func (u *withdrawUseCase) buildDestinations(
	wallet portsout.WalletHandle,
	command dto.WithdrawCommand,
	destinationAddress string,
) ([]portsout.TransferDestination, *apperrors.AppError) {
	if u.settings.FeeRate.IsZero() {
		return []portsout.TransferDestination{destinationFor(destinationAddress, command.Amount)}, nil
	}

	remainder, fee := command.Amount.SubtractPercentage(u.settings.FeeRate)
	destinations := make([]portsout.TransferDestination, 0, 2)
	if !fee.IsZero() {
		feeAddress, appErr := u.feeAddress(wallet)
		if appErr != nil {
			return nil, appErr
		}
		destinations = append(destinations, destinationFor(feeAddress, fee))
	}
	destinations = append(destinations, destinationFor(destinationAddress, remainder))
	return destinations, nil
}

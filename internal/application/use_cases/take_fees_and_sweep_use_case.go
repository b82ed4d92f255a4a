package use_cases

import (
	"context"

	"alphtip/internal/application/dto"
	portsin "alphtip/internal/application/ports/in"
	portsout "alphtip/internal/application/ports/out"
	"alphtip/internal/domain/entities"
	valueobjects "alphtip/internal/domain/value_objects"

	"go.uber.org/zap"
)

type takeFeesAndSweepUseCase struct {
	walletOperations
}

// NewTakeFeesAndSweepUseCase withdraws a whole wallet in two stages: one transaction
// paying the operator fee on every held asset, then a sweep of what is left.
// A failed sweep does not undo a confirmed fee stage.
func NewTakeFeesAndSweepUseCase(deps WalletDependencies, settings dto.WalletSettings) portsin.TakeFeesAndSweepUseCase {
	return &takeFeesAndSweepUseCase{walletOperations: newWalletOperations(deps, settings)}
}

func (u *takeFeesAndSweepUseCase) Execute(ctx context.Context, command dto.TakeFeesAndSweepCommand) (dto.TransactionOutput, error) {
	if appErr := u.validate(); appErr != nil {
		return dto.TransactionOutput{}, appErr
	}

	destinationAddress, appErr := valueobjects.ParseAddress(command.DestinationAddress)
	if appErr != nil {
		return dto.TransactionOutput{}, appErr
	}

	status := u.newStatus(
		ctx,
		"Withdrawal of all funds",
		[]valueobjects.TransactionStep{valueobjects.StepTakeFees, valueobjects.StepSendFunds},
		command.StatusSink,
	)
	output := dto.TransactionOutput{OperationID: status.OperationID()}

	wallet, err := u.wallet(command.User)
	if err != nil {
		status.Fail(err.Error())
		return output, err
	}

	if !u.settings.FeeRate.IsZero() {
		if err := u.takeFees(ctx, wallet, status); err != nil {
			status.Fail(err.Error())
			return output, err
		}
	}
	status.NextStep()

	txIDs, err := u.gateway.SweepAndSubmit(ctx, wallet, destinationAddress.String())
	if err != nil {
		rejected := u.reject("sweep", err)
		status.Fail(rejected.Error())
		return output, rejected
	}
	if len(txIDs) == 0 {
		status.Confirm()
		return output, nil
	}
	status.SetTransactionID(txIDs[0])

	if err := u.waitForConfirmation(ctx, txIDs[0], u.settings.Confirmations.External); err != nil {
		rejected := u.reject("sweep", err)
		status.Fail(rejected.Error())
		return output, rejected
	}
	status.Confirm()

	u.logger.Info("wallet swept",
		zap.String("operation_id", output.OperationID),
		zap.Int64("user_id", command.User.ID),
		zap.Strings("tx_ids", txIDs),
	)

	output.TransactionID = txIDs[0]
	return output, nil
}

func (u *takeFeesAndSweepUseCase) takeFees(
	ctx context.Context,
	wallet portsout.WalletHandle,
	status *valueobjects.TransactionStatus,
) error {
	status.Start()

	balance, err := u.gateway.GetAddressBalance(ctx, wallet.Address(), false)
	if err != nil {
		return u.reject("take_fees", err)
	}

	native := entities.NewTokenAmount(entities.NativeToken(), balance.Spendable())
	if appErr := u.settings.Withdrawal.CheckSweepAll(native); appErr != nil {
		return appErr
	}

	feeAddress, appErr := u.feeAddress(wallet)
	if appErr != nil {
		return appErr
	}
	destinations := feeDestinations(feeAddress, native, balance.Tokens, u.settings.FeeRate)
	if len(destinations) == 0 {
		return nil
	}

	txID, err := u.gateway.TransferAndSubmit(ctx, wallet, destinations)
	if err != nil {
		return u.reject("take_fees", err)
	}
	status.SetTransactionID(txID)

	if err := u.waitForConfirmation(ctx, txID, u.settings.Confirmations.InterStage); err != nil {
		return u.reject("take_fees", err)
	}

	u.logger.Info("operator fees taken",
		zap.String("operation_id", status.OperationID()),
		zap.String("tx_id", txID),
	)
	return nil
}

// feeDestinations builds one output per held asset with a non-zero fee.
func feeDestinations(
	feeAddress string,
	native entities.TokenAmount,
	tokens []portsout.AssetBalance,
	rate valueobjects.FeeRate,
) []portsout.TransferDestination {
	destinations := make([]portsout.TransferDestination, 0, 1+len(tokens))

	if _, fee := native.SubtractPercentage(rate); !fee.IsZero() {
		destinations = append(destinations, destinationFor(feeAddress, fee))
	}
	for _, token := range tokens {
		held := entities.NewTokenAmount(entities.Token{ID: token.ID}, token.Amount)
		if _, fee := held.SubtractPercentage(rate); !fee.IsZero() {
			destinations = append(destinations, destinationFor(feeAddress, fee))
		}
	}
	return destinations
}

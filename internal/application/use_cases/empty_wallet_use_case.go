package use_cases

import (
	"context"

	"alphtip/internal/application/dto"
	portsin "alphtip/internal/application/ports/in"
	apperrors "alphtip/internal/shared_kernel/errors"

	"go.uber.org/zap"
)

type emptyWalletUseCase struct {
	walletOperations
}

// NewEmptyWalletUseCase sweeps a wallet to the operator collection address ahead of
// deleting its user. No fee is taken and confirmations are not awaited.
func NewEmptyWalletUseCase(deps WalletDependencies, settings dto.WalletSettings) portsin.EmptyWalletUseCase {
	return &emptyWalletUseCase{walletOperations: newWalletOperations(deps, settings)}
}

func (u *emptyWalletUseCase) Execute(ctx context.Context, command dto.EmptyWalletCommand) (dto.EmptyWalletOutput, error) {
	if appErr := u.validate(); appErr != nil {
		return dto.EmptyWalletOutput{}, appErr
	}
	if u.settings.OperatorAddress == "" {
		return dto.EmptyWalletOutput{}, apperrors.NewInternal(
			"operator_address_missing",
			"operator wallet address is required to empty wallets",
			nil,
		)
	}

	wallet, err := u.wallet(command.User)
	if err != nil {
		return dto.EmptyWalletOutput{}, err
	}

	txIDs, err := u.gateway.SweepAndSubmit(ctx, wallet, u.settings.OperatorAddress)
	if err != nil {
		return dto.EmptyWalletOutput{}, u.reject("empty_wallet", err)
	}

	u.logger.Info("wallet emptied",
		zap.Int64("user_id", command.User.ID),
		zap.Strings("tx_ids", txIDs),
	)
	return dto.EmptyWalletOutput{TransactionIDs: txIDs}, nil
}

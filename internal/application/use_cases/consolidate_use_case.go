package use_cases

import (
	"context"

	"alphtip/internal/application/dto"
	portsin "alphtip/internal/application/ports/in"
)

type consolidateUseCase struct {
	walletOperations
}

// NewConsolidateUseCase sweeps a wallet to itself once its UTXO count reaches the
// configured threshold. Sweeps are submitted, not awaited.
func NewConsolidateUseCase(deps WalletDependencies, settings dto.WalletSettings) portsin.ConsolidateUseCase {
	return &consolidateUseCase{walletOperations: newWalletOperations(deps, settings)}
}

func (u *consolidateUseCase) Execute(ctx context.Context, command dto.ConsolidateCommand) (dto.ConsolidateOutput, error) {
	if appErr := u.validate(); appErr != nil {
		return dto.ConsolidateOutput{}, appErr
	}
	threshold := u.settings.Consolidation.UTXOThreshold
	if threshold <= 0 || command.User.Address == "" {
		return dto.ConsolidateOutput{}, nil
	}

	balance, err := u.gateway.GetAddressBalance(ctx, command.User.Address, u.settings.Consolidation.IncludeMempool)
	if err != nil {
		return dto.ConsolidateOutput{}, u.reject("consolidate", err)
	}
	output := dto.ConsolidateOutput{UTXOCount: balance.UTXOCount}
	if balance.UTXOCount < threshold {
		return output, nil
	}

	wallet, err := u.wallet(command.User)
	if err != nil {
		return output, err
	}
	txIDs, err := u.gateway.SweepAndSubmit(ctx, wallet, wallet.Address())
	if err != nil {
		return output, u.reject("consolidate", err)
	}

	output.Consolidated = len(txIDs) > 0
	output.TransactionIDs = txIDs
	return output, nil
}

package use_cases

import (
	"context"

	"alphtip/internal/application/dto"
	portsin "alphtip/internal/application/ports/in"
	apperrors "alphtip/internal/shared_kernel/errors"
)

type getUserBalanceUseCase struct {
	balanceReader
}

func NewGetUserBalanceUseCase(deps BalanceDependencies) portsin.GetUserBalanceUseCase {
	return &getUserBalanceUseCase{balanceReader: newBalanceReader(deps)}
}

func (u *getUserBalanceUseCase) Execute(ctx context.Context, query dto.GetUserBalanceQuery) (dto.BalanceOutput, error) {
	if appErr := u.validate(); appErr != nil {
		return dto.BalanceOutput{}, appErr
	}
	if query.User.Address == "" {
		return dto.BalanceOutput{}, apperrors.NewValidation(
			"user_address_missing",
			"user has no wallet address",
			map[string]any{"identity": query.User.Identity},
		)
	}

	balance, err := u.addressBalance(ctx, query.User.Address)
	if err != nil {
		return dto.BalanceOutput{}, err
	}
	if query.Token != nil {
		balance = balance.Filter(*query.Token)
	}
	return dto.BalanceOutput{Balance: balance}, nil
}

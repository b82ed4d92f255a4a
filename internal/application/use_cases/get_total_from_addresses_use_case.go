package use_cases

import (
	"context"

	"alphtip/internal/application/dto"
	portsin "alphtip/internal/application/ports/in"
	"alphtip/internal/domain/entities"
)

type getTotalFromAddressesUseCase struct {
	balanceReader
}

func NewGetTotalFromAddressesUseCase(deps BalanceDependencies) portsin.GetTotalFromAddressesUseCase {
	return &getTotalFromAddressesUseCase{balanceReader: newBalanceReader(deps)}
}

func (u *getTotalFromAddressesUseCase) Execute(ctx context.Context, query dto.GetTotalFromAddressesQuery) (dto.BalanceOutput, error) {
	if appErr := u.validate(); appErr != nil {
		return dto.BalanceOutput{}, appErr
	}

	total := entities.NewUserBalance()
	for _, address := range query.Addresses {
		balance, err := u.addressBalance(ctx, address)
		if err != nil {
			return dto.BalanceOutput{}, err
		}
		total = total.Merge(balance)
	}
	return dto.BalanceOutput{Balance: total}, nil
}

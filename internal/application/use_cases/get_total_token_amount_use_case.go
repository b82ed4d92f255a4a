package use_cases

import (
	"context"

	"alphtip/internal/application/dto"
	portsin "alphtip/internal/application/ports/in"
	portsout "alphtip/internal/application/ports/out"
	"alphtip/internal/domain/entities"
	apperrors "alphtip/internal/shared_kernel/errors"
)

type getTotalTokenAmountUseCase struct {
	balanceReader
	users portsout.UserRepository
}

// NewGetTotalTokenAmountUseCase sums the balances of every registered user, reading
// users in pages of roughly a tenth of the user base.
func NewGetTotalTokenAmountUseCase(deps BalanceDependencies, users portsout.UserRepository) portsin.GetTotalTokenAmountUseCase {
	return &getTotalTokenAmountUseCase{balanceReader: newBalanceReader(deps), users: users}
}

func (u *getTotalTokenAmountUseCase) Execute(ctx context.Context, _ dto.GetTotalTokenAmountQuery) (dto.BalanceOutput, error) {
	if appErr := u.validate(); appErr != nil {
		return dto.BalanceOutput{}, appErr
	}
	if u.users == nil {
		return dto.BalanceOutput{}, apperrors.NewInternal("user_repository_missing", "user repository is required", nil)
	}

	count, appErr := u.users.Count(ctx)
	if appErr != nil {
		return dto.BalanceOutput{}, appErr
	}

	total := entities.NewUserBalance()
	batch := totalBatchSize(count)
	for skip := 0; skip < count; skip += batch {
		users, appErr := u.users.Find(ctx, skip, batch)
		if appErr != nil {
			return dto.BalanceOutput{}, appErr
		}
		if len(users) == 0 {
			break
		}

		for _, user := range users {
			if user.Address == "" {
				continue
			}
			balance, err := u.addressBalance(ctx, user.Address)
			if err != nil {
				return dto.BalanceOutput{}, err
			}
			total = total.Merge(balance)
		}
	}

	return dto.BalanceOutput{Balance: total}, nil
}

func totalBatchSize(count int) int {
	return max(1, count/10)
}

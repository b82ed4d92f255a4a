package in

import (
	"context"

	"alphtip/internal/application/dto"
)

type GetUserBalanceUseCase interface {
	Execute(ctx context.Context, query dto.GetUserBalanceQuery) (dto.BalanceOutput, error)
}

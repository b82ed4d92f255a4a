package in

import (
	"context"

	"alphtip/internal/application/dto"
)

type GetTotalTokenAmountUseCase interface {
	Execute(ctx context.Context, query dto.GetTotalTokenAmountQuery) (dto.BalanceOutput, error)
}

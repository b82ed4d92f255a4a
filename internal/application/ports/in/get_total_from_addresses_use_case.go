package in

import (
	"context"

	"alphtip/internal/application/dto"
)

type GetTotalFromAddressesUseCase interface {
	Execute(ctx context.Context, query dto.GetTotalFromAddressesQuery) (dto.BalanceOutput, error)
}

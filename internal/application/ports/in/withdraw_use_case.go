package in

import (
	"context"

	"alphtip/internal/application/dto"
)

type WithdrawUseCase interface {
	Execute(ctx context.Context, command dto.WithdrawCommand) (dto.TransactionOutput, error)
}

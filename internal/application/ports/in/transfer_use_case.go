package in

import (
	"context"

	"alphtip/internal/application/dto"
)

type TransferUseCase interface {
	Execute(ctx context.Context, command dto.TransferCommand) (dto.TransactionOutput, error)
}

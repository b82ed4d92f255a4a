package in

import (
	"context"

	"alphtip/internal/application/dto"
)

type TakeFeesAndSweepUseCase interface {
	Execute(ctx context.Context, command dto.TakeFeesAndSweepCommand) (dto.TransactionOutput, error)
}

package in

import (
	"context"

	"alphtip/internal/application/dto"
)

type ConsolidateUseCase interface {
	Execute(ctx context.Context, command dto.ConsolidateCommand) (dto.ConsolidateOutput, error)
}

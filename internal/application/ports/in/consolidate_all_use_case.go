package in

import (
	"context"

	"alphtip/internal/application/dto"
	apperrors "alphtip/internal/shared_kernel/errors"
)

type ConsolidateAllUseCase interface {
	Execute(ctx context.Context, command dto.ConsolidateAllCommand) (dto.ConsolidateAllOutput, *apperrors.AppError)
}

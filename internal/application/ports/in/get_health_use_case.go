package in

import (
	"context"

	"alphtip/internal/application/dto"
	apperrors "alphtip/internal/shared_kernel/errors"
)

type GetHealthUseCase interface {
	Execute(ctx context.Context, command dto.GetHealthCommand) (dto.HealthOutput, *apperrors.AppError)
}

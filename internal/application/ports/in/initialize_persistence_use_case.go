package in

import (
	"context"

	"alphtip/internal/application/dto"
	apperrors "alphtip/internal/shared_kernel/errors"
)

type InitializePersistenceUseCase interface {
	Execute(ctx context.Context, command dto.InitializePersistenceCommand) *apperrors.AppError
}

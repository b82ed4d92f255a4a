package in

import (
	"context"

	"alphtip/internal/application/dto"
	"alphtip/internal/domain/entities"
	apperrors "alphtip/internal/shared_kernel/errors"
)

type GetUserUseCase interface {
	Execute(ctx context.Context, query dto.GetUserQuery) (entities.User, *apperrors.AppError)
}

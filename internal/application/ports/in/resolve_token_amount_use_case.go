package in

import (
	"context"

	"alphtip/internal/application/dto"
	"alphtip/internal/domain/entities"
	apperrors "alphtip/internal/shared_kernel/errors"
)

type ResolveTokenAmountUseCase interface {
	Execute(ctx context.Context, query dto.ResolveTokenAmountQuery) (entities.TokenAmount, *apperrors.AppError)
}

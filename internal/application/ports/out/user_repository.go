package out

//go:generate mockgen -source=user_repository.go -destination=mocks/user_repository_mock.go -package=mocks

import (
	"context"

	"alphtip/internal/domain/entities"
	apperrors "alphtip/internal/shared_kernel/errors"
)

// UserRepository persists chat users. Save inserts when ID is zero and otherwise
// updates the stored address.
type UserRepository interface {
	ExistsByIdentity(ctx context.Context, identity string) (bool, *apperrors.AppError)
	FindByIdentity(ctx context.Context, identity string) (entities.User, *apperrors.AppError)
	Save(ctx context.Context, user entities.User) (entities.User, *apperrors.AppError)
	Remove(ctx context.Context, user entities.User) *apperrors.AppError
	Count(ctx context.Context) (int, *apperrors.AppError)
	Find(ctx context.Context, skip int, take int) ([]entities.User, *apperrors.AppError)
}

package use_cases

import (
	"context"
	"strings"

	"alphtip/internal/application/dto"
	portsin "alphtip/internal/application/ports/in"
	portsout "alphtip/internal/application/ports/out"
	"alphtip/internal/domain/entities"
	apperrors "alphtip/internal/shared_kernel/errors"
)

type getUserUseCase struct {
	users portsout.UserRepository
}

func NewGetUserUseCase(users portsout.UserRepository) portsin.GetUserUseCase {
	return &getUserUseCase{users: users}
}

func (u *getUserUseCase) Execute(ctx context.Context, query dto.GetUserQuery) (entities.User, *apperrors.AppError) {
	identity := strings.TrimSpace(query.Identity)
	if identity == "" {
		return entities.User{}, apperrors.NewValidation(
			"invalid_request",
			"identity is required",
			map[string]any{"field": "identity"},
		)
	}

	return u.users.FindByIdentity(ctx, identity)
}

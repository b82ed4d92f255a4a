package in

import (
	"context"

	"alphtip/internal/application/dto"
	"alphtip/internal/domain/entities"
)

type RegisterUserUseCase interface {
	Execute(ctx context.Context, command dto.RegisterUserCommand) (entities.User, error)
}

package in

import (
	"context"

	"alphtip/internal/application/dto"
)

type DeleteUserUseCase interface {
	Execute(ctx context.Context, command dto.DeleteUserCommand) error
}

package use_cases

import (
	"context"
	"sync"

	"alphtip/internal/application/dto"
	portsin "alphtip/internal/application/ports/in"
	portsout "alphtip/internal/application/ports/out"
	apperrors "alphtip/internal/shared_kernel/errors"
)

type deleteUserUseCase struct {
	deletionMu sync.Mutex
	users      portsout.UserRepository
}

// NewDeleteUserUseCase removes a user record. The wallet must already be empty.
func NewDeleteUserUseCase(users portsout.UserRepository) portsin.DeleteUserUseCase {
	return &deleteUserUseCase{users: users}
}

func (u *deleteUserUseCase) Execute(ctx context.Context, command dto.DeleteUserCommand) error {
	if u.users == nil {
		return apperrors.NewInternal("user_repository_missing", "user repository is required", nil)
	}

	u.deletionMu.Lock()
	defer u.deletionMu.Unlock()

	if appErr := u.users.Remove(ctx, command.User); appErr != nil {
		return appErr
	}
	return nil
}

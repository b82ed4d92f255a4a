package use_cases

import (
	"context"
	"sync"

	"alphtip/internal/application/dto"
	portsin "alphtip/internal/application/ports/in"
	portsout "alphtip/internal/application/ports/out"
	"alphtip/internal/domain/entities"
	apperrors "alphtip/internal/shared_kernel/errors"

	"go.uber.org/zap"
)

type registerUserUseCase struct {
	// registrationMu serializes the exists-check, insert and address assignment of
	// every registration in the process.
	registrationMu sync.Mutex

	users   portsout.UserRepository
	deriver portsout.WalletDeriver
	logger  *zap.Logger
}

func NewRegisterUserUseCase(
	users portsout.UserRepository,
	deriver portsout.WalletDeriver,
	logger *zap.Logger,
) portsin.RegisterUserUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &registerUserUseCase{users: users, deriver: deriver, logger: logger}
}

func (u *registerUserUseCase) Execute(ctx context.Context, command dto.RegisterUserCommand) (entities.User, error) {
	if u.users == nil || u.deriver == nil {
		return entities.User{}, apperrors.NewInternal(
			"registration_dependencies_missing",
			"user repository and wallet deriver are required",
			nil,
		)
	}

	user, appErr := entities.NewUser(command.Identity, command.Username)
	if appErr != nil {
		return entities.User{}, appErr
	}

	u.registrationMu.Lock()
	defer u.registrationMu.Unlock()

	exists, appErr := u.users.ExistsByIdentity(ctx, user.Identity)
	if appErr != nil {
		return entities.User{}, appErr
	}
	if exists {
		return entities.User{}, apperrors.NewAlreadyRegistered(user.Identity)
	}

	saved, appErr := u.users.Save(ctx, user)
	if appErr != nil {
		return entities.User{}, appErr
	}

	registered, err := u.assignAddress(ctx, saved)
	if err != nil {
		// a user without an address must not survive a failed registration
		if removeErr := u.users.Remove(ctx, saved); removeErr != nil {
			u.logger.Error("failed to roll back partial registration",
				zap.Int64("user_id", saved.ID),
				zap.Error(removeErr),
			)
		}
		return entities.User{}, err
	}

	u.logger.Info("user registered",
		zap.Int64("user_id", registered.ID),
		zap.String("address", registered.Address),
	)
	return registered, nil
}

func (u *registerUserUseCase) assignAddress(ctx context.Context, user entities.User) (entities.User, error) {
	wallet, err := u.deriver.Derive(user.ID)
	if err != nil {
		return entities.User{}, apperrors.NewInternal(
			"wallet_derivation_failed",
			"failed to derive user wallet",
			map[string]any{"user_id": user.ID},
		).WithCause(err)
	}

	withAddress, appErr := user.AssignAddress(wallet.Address())
	if appErr != nil {
		return entities.User{}, appErr
	}

	saved, appErr := u.users.Save(ctx, withAddress)
	if appErr != nil {
		return entities.User{}, appErr
	}
	return saved, nil
}

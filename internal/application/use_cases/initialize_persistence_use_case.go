package use_cases

import (
	"context"
	"strconv"

	"alphtip/internal/application/dto"
	portsin "alphtip/internal/application/ports/in"
	portsout "alphtip/internal/application/ports/out"
	apperrors "alphtip/internal/shared_kernel/errors"

	"github.com/cenkalti/backoff/v4"
)

type initializePersistenceUseCase struct {
	gateway portsout.PersistenceBootstrapGateway
}

func NewInitializePersistenceUseCase(gateway portsout.PersistenceBootstrapGateway) portsin.InitializePersistenceUseCase {
	return &initializePersistenceUseCase{
		gateway: gateway,
	}
}

func (u *initializePersistenceUseCase) Execute(ctx context.Context, command dto.InitializePersistenceCommand) *apperrors.AppError {
	if u.gateway == nil {
		return apperrors.NewInternal(
			"PERSISTENCE_GATEWAY_MISSING",
			"persistence gateway is required",
			nil,
		)
	}

	if command.ReadinessTimeout <= 0 {
		return apperrors.NewValidation(
			"READINESS_TIMEOUT_INVALID",
			"readiness timeout must be greater than zero",
			nil,
		)
	}

	if command.ReadinessRetryInterval <= 0 {
		return apperrors.NewValidation(
			"READINESS_RETRY_INTERVAL_INVALID",
			"readiness retry interval must be greater than zero",
			nil,
		)
	}

	readinessCtx, cancel := context.WithTimeout(ctx, command.ReadinessTimeout)
	defer cancel()

	attempts := 0
	var lastErr *apperrors.AppError
	retry := backoff.WithContext(backoff.NewConstantBackOff(command.ReadinessRetryInterval), readinessCtx)
	err := backoff.Retry(func() error {
		attempts++
		lastErr = u.gateway.CheckReadiness(readinessCtx)
		if lastErr != nil {
			return lastErr
		}
		return nil
	}, retry)
	if err != nil {
		details := map[string]any{
			"attempts": strconv.Itoa(attempts),
			"timeout":  command.ReadinessTimeout.String(),
		}
		if lastErr != nil {
			details["last_code"] = lastErr.Code
		}
		return apperrors.NewInternal(
			"DB_READINESS_TIMEOUT",
			"database readiness check timed out",
			details,
		)
	}

	if migrationErr := u.gateway.RunMigrations(ctx); migrationErr != nil {
		return migrationErr
	}

	return u.gateway.ValidateTokenRegistryIntegrity(ctx)
}

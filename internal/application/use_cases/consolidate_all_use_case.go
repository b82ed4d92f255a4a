package use_cases

import (
	"context"

	"alphtip/internal/application/dto"
	portsin "alphtip/internal/application/ports/in"
	portsout "alphtip/internal/application/ports/out"
	apperrors "alphtip/internal/shared_kernel/errors"

	"go.uber.org/zap"
)

type consolidateAllUseCase struct {
	users       portsout.UserRepository
	consolidate portsin.ConsolidateUseCase
	logger      *zap.Logger
}

func NewConsolidateAllUseCase(
	users portsout.UserRepository,
	consolidate portsin.ConsolidateUseCase,
	logger *zap.Logger,
) portsin.ConsolidateAllUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &consolidateAllUseCase{users: users, consolidate: consolidate, logger: logger}
}

func (u *consolidateAllUseCase) Execute(
	ctx context.Context,
	command dto.ConsolidateAllCommand,
) (dto.ConsolidateAllOutput, *apperrors.AppError) {
	if u.users == nil || u.consolidate == nil {
		return dto.ConsolidateAllOutput{}, apperrors.NewInternal(
			"consolidation_dependencies_missing",
			"user repository and consolidate use case are required",
			nil,
		)
	}
	if command.BatchSize <= 0 {
		return dto.ConsolidateAllOutput{}, apperrors.NewValidation(
			"consolidation_batch_size_invalid",
			"consolidation batch size must be greater than zero",
			map[string]any{"batch_size": command.BatchSize},
		)
	}

	output := dto.ConsolidateAllOutput{}
	for skip := 0; ; skip += command.BatchSize {
		if err := ctx.Err(); err != nil {
			return output, nil
		}

		users, appErr := u.users.Find(ctx, skip, command.BatchSize)
		if appErr != nil {
			return output, appErr
		}

		for _, user := range users {
			output.Scanned++
			result, err := u.consolidate.Execute(ctx, dto.ConsolidateCommand{User: user})
			if err != nil {
				output.Failed++
				u.logger.Warn("consolidation failed",
					zap.Int64("user_id", user.ID),
					zap.Error(err),
				)
				continue
			}
			if result.Consolidated {
				output.Consolidated++
			}
		}

		if len(users) < command.BatchSize {
			return output, nil
		}
	}
}

package use_cases

import (
	"context"
	"strings"

	"alphtip/internal/application/dto"
	portsin "alphtip/internal/application/ports/in"
	portsout "alphtip/internal/application/ports/out"
	"alphtip/internal/domain/entities"
	valueobjects "alphtip/internal/domain/value_objects"
	apperrors "alphtip/internal/shared_kernel/errors"
)

type resolveTokenAmountUseCase struct {
	registry portsout.TokenRegistry
}

func NewResolveTokenAmountUseCase(registry portsout.TokenRegistry) portsin.ResolveTokenAmountUseCase {
	return &resolveTokenAmountUseCase{registry: registry}
}

func (u *resolveTokenAmountUseCase) Execute(
	ctx context.Context,
	query dto.ResolveTokenAmountQuery,
) (entities.TokenAmount, *apperrors.AppError) {
	symbol := strings.TrimSpace(query.Symbol)
	if symbol == "" {
		symbol = entities.NativeTokenSymbol
	}

	token, appErr := u.registry.GetBySymbol(ctx, symbol)
	if appErr != nil {
		return entities.TokenAmount{}, appErr
	}
	if strings.TrimSpace(query.Amount) == "" {
		return entities.ZeroTokenAmount(token), nil
	}

	amount, appErr := valueobjects.ParseDecimalAmount(query.Amount, token.Decimals)
	if appErr != nil {
		return entities.TokenAmount{}, appErr
	}
	return entities.NewTokenAmount(token, amount), nil
}

package use_cases

import (
	"context"

	portsout "alphtip/internal/application/ports/out"
	"alphtip/internal/domain/entities"
	apperrors "alphtip/internal/shared_kernel/errors"

	"go.uber.org/zap"
)

// BalanceDependencies are the collaborators of the balance use cases.
type BalanceDependencies struct {
	Gateway    portsout.NodeGateway
	Registry   portsout.TokenRegistry
	Classifier portsout.ErrorClassifier
	Logger     *zap.Logger
}

type balanceReader struct {
	gateway    portsout.NodeGateway
	registry   portsout.TokenRegistry
	classifier portsout.ErrorClassifier
	logger     *zap.Logger
}

func newBalanceReader(deps BalanceDependencies) balanceReader {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return balanceReader{
		gateway:    deps.Gateway,
		registry:   deps.Registry,
		classifier: deps.Classifier,
		logger:     logger,
	}
}

func (r balanceReader) validate() *apperrors.AppError {
	if r.gateway == nil || r.registry == nil || r.classifier == nil {
		return apperrors.NewInternal(
			"balance_dependencies_missing",
			"node gateway, token registry and error classifier are required",
			nil,
		)
	}
	return nil
}

// addressBalance converts the node balance of an address into registered tokens.
// Assets the registry does not know are dropped.
func (r balanceReader) addressBalance(ctx context.Context, address string) (entities.UserBalance, error) {
	raw, err := r.gateway.GetAddressBalance(ctx, address, false)
	if err != nil {
		classified := r.classifier.Classify(err)
		if _, ok := apperrors.As(classified); !ok {
			r.logger.Error("unclassified node failure", zap.String("address", address), zap.Error(err))
		}
		return nil, classified
	}

	amounts := make([]entities.TokenAmount, 0, 1+len(raw.Tokens))
	native, appErr := r.registry.GetByAssetID(ctx, entities.NativeTokenID, raw.Balance)
	if appErr != nil {
		native = entities.NewTokenAmount(entities.NativeToken(), raw.Balance)
	}
	amounts = append(amounts, native)

	for _, token := range raw.Tokens {
		amount, appErr := r.registry.GetByAssetID(ctx, token.ID, token.Amount)
		if appErr != nil {
			r.logger.Info("skipping unregistered asset",
				zap.String("address", address),
				zap.String("asset_id", token.ID),
				zap.String("code", appErr.Code),
			)
			continue
		}
		amounts = append(amounts, amount)
	}

	return entities.NewUserBalance(amounts...), nil
}

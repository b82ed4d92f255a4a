package out

//go:generate mockgen -source=token_registry.go -destination=mocks/token_registry_mock.go -package=mocks

import (
	"context"
	"math/big"

	"alphtip/internal/domain/entities"
	apperrors "alphtip/internal/shared_kernel/errors"
)

// TokenRegistry resolves registered tokens. Unknown symbols and asset ids are
// rejected with a not_found error.
type TokenRegistry interface {
	GetBySymbol(ctx context.Context, symbol string) (entities.Token, *apperrors.AppError)
	GetByAssetID(ctx context.Context, assetID string, amount *big.Int) (entities.TokenAmount, *apperrors.AppError)
}

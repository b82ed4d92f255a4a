package token

import (
	"context"
	"database/sql"
	stderrors "errors"
	"math/big"
	"strings"
	"sync"

	portsout "alphtip/internal/application/ports/out"
	"alphtip/internal/domain/entities"
	apperrors "alphtip/internal/shared_kernel/errors"

	"go.uber.org/zap"
)

// Registry resolves tokens from app.tokens. Rows are immutable once seeded, so hits
// are cached for the life of the process.
type Registry struct {
	db     *sql.DB
	logger *zap.Logger

	mu       sync.RWMutex
	byID     map[string]entities.Token
	bySymbol map[string]entities.Token
}

var _ portsout.TokenRegistry = (*Registry)(nil)

func NewRegistry(db *sql.DB, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		db:       db,
		logger:   logger,
		byID:     map[string]entities.Token{},
		bySymbol: map[string]entities.Token{},
	}
}

func (r *Registry) GetBySymbol(ctx context.Context, symbol string) (entities.Token, *apperrors.AppError) {
	key := strings.ToUpper(strings.TrimSpace(symbol))
	if key == "" {
		return entities.Token{}, tokenNotFound("symbol", symbol)
	}

	r.mu.RLock()
	token, ok := r.bySymbol[key]
	r.mu.RUnlock()
	if ok {
		return token, nil
	}

	token, appErr := r.load(ctx, `SELECT id, symbol, name, decimals FROM app.tokens WHERE upper(symbol) = $1`, key)
	if appErr != nil {
		if appErr.Code == apperrors.CodeTokenNotFound {
			return entities.Token{}, tokenNotFound("symbol", symbol)
		}
		return entities.Token{}, appErr
	}
	return token, nil
}

func (r *Registry) GetByAssetID(ctx context.Context, assetID string, amount *big.Int) (entities.TokenAmount, *apperrors.AppError) {
	key := strings.ToLower(strings.TrimSpace(assetID))

	r.mu.RLock()
	token, ok := r.byID[key]
	r.mu.RUnlock()
	if !ok {
		var appErr *apperrors.AppError
		token, appErr = r.load(ctx, `SELECT id, symbol, name, decimals FROM app.tokens WHERE id = $1`, key)
		if appErr != nil {
			if appErr.Code == apperrors.CodeTokenNotFound {
				return entities.TokenAmount{}, tokenNotFound("token_id", assetID)
			}
			return entities.TokenAmount{}, appErr
		}
	}
	return entities.NewTokenAmount(token, amount), nil
}

func (r *Registry) load(ctx context.Context, query string, arg string) (entities.Token, *apperrors.AppError) {
	token := entities.Token{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&token.ID, &token.Symbol, &token.Name, &token.Decimals)
	if stderrors.Is(err, sql.ErrNoRows) {
		return entities.Token{}, apperrors.NewNotFound(apperrors.CodeTokenNotFound, "token not found", nil)
	}
	if err != nil {
		r.logger.Error("token registry query failed", zap.Error(err))
		return entities.Token{}, apperrors.NewInternal(
			"token_lookup_failed",
			"token registry query failed",
			map[string]any{"error": err.Error()},
		).WithCause(err)
	}

	token.ID = strings.ToLower(token.ID)
	r.mu.Lock()
	r.byID[token.ID] = token
	r.bySymbol[strings.ToUpper(token.Symbol)] = token
	r.mu.Unlock()
	return token, nil
}

func tokenNotFound(field string, value string) *apperrors.AppError {
	return apperrors.NewNotFound(apperrors.CodeTokenNotFound, "token not found", map[string]any{field: value})
}

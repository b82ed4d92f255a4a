package bootstrap

import (
	"context"
	"database/sql"
	stderrors "errors"
	"path/filepath"
	"strings"

	portsout "alphtip/internal/application/ports/out"
	"alphtip/internal/domain/entities"
	apperrors "alphtip/internal/shared_kernel/errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
)

type Gateway struct {
	databaseURL    string
	databaseTarget string
	migrationsPath string
	logger         *zap.Logger
}

var _ portsout.PersistenceBootstrapGateway = (*Gateway)(nil)

func NewGateway(databaseURL string, databaseTarget string, migrationsPath string, logger *zap.Logger) *Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gateway{
		databaseURL:    databaseURL,
		databaseTarget: databaseTarget,
		migrationsPath: migrationsPath,
		logger:         logger.With(zap.String("database_target", databaseTarget)),
	}
}

func (g *Gateway) CheckReadiness(ctx context.Context) *apperrors.AppError {
	db, appErr := g.open()
	if appErr != nil {
		return appErr
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		g.logger.Warn("database readiness check failed", zap.Error(err))
		return apperrors.NewInternal(
			"DB_CONNECT_FAILED",
			"failed to connect to database",
			map[string]any{"database_target": g.databaseTarget},
		).WithCause(err)
	}

	g.logger.Info("database readiness check succeeded")
	return nil
}

func (g *Gateway) RunMigrations(ctx context.Context) *apperrors.AppError {
	if err := ctx.Err(); err != nil {
		return apperrors.NewInternal(
			"DB_MIGRATION_CONTEXT_CANCELED",
			"migration context canceled",
			map[string]any{"database_target": g.databaseTarget},
		)
	}

	migrationsAbsPath, err := filepath.Abs(g.migrationsPath)
	if err != nil {
		return apperrors.NewInternal(
			"DB_MIGRATION_PATH_RESOLVE_FAILED",
			"failed to resolve migration path",
			map[string]any{"migrations_path": g.migrationsPath},
		)
	}

	runner, err := migrate.New("file://"+filepath.ToSlash(migrationsAbsPath), g.databaseURL)
	if err != nil {
		return apperrors.NewInternal(
			"DB_MIGRATION_SETUP_FAILED",
			"failed to initialize migration runner",
			map[string]any{
				"database_target": g.databaseTarget,
				"migrations_path": g.migrationsPath,
			},
		).WithCause(err)
	}
	defer func() {
		sourceErr, dbErr := runner.Close()
		if sourceErr != nil {
			g.logger.Warn("migration source close failed", zap.String("migrations_path", g.migrationsPath), zap.Error(sourceErr))
		}
		if dbErr != nil {
			g.logger.Warn("migration database close failed", zap.Error(dbErr))
		}
	}()

	err = runner.Up()
	switch {
	case stderrors.Is(err, migrate.ErrNoChange):
		g.logger.Info("database migrations up to date")
	case err != nil:
		g.logger.Error("database migrations failed", zap.Error(err))
		return apperrors.NewInternal(
			"DB_MIGRATION_APPLY_FAILED",
			"failed to apply migrations",
			map[string]any{
				"database_target": g.databaseTarget,
				"migrations_path": g.migrationsPath,
			},
		).WithCause(err)
	default:
		g.logger.Info("database migrations applied")
	}
	return nil
}

// ValidateTokenRegistryIntegrity checks that the native asset row exists and matches
// the chain's fixed metadata. Balances and fees are computed against it.
func (g *Gateway) ValidateTokenRegistryIntegrity(ctx context.Context) *apperrors.AppError {
	db, appErr := g.open()
	if appErr != nil {
		return appErr
	}
	defer db.Close()

	row := tokenRow{}
	err := db.QueryRowContext(
		ctx,
		`SELECT id, symbol, decimals FROM app.tokens WHERE id = $1`,
		entities.NativeTokenID,
	).Scan(&row.ID, &row.Symbol, &row.Decimals)
	if stderrors.Is(err, sql.ErrNoRows) {
		return apperrors.NewInternal(
			"invalid_configuration",
			"native token is missing from the token registry",
			map[string]any{"token_id": entities.NativeTokenID},
		)
	}
	if err != nil {
		return apperrors.NewInternal(
			"invalid_configuration",
			"failed to query the token registry during startup validation",
			map[string]any{"error": err.Error()},
		)
	}

	var duplicates int
	if err := db.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM app.tokens WHERE upper(symbol) = $1 AND id <> $2`,
		entities.NativeTokenSymbol,
		entities.NativeTokenID,
	).Scan(&duplicates); err != nil {
		return apperrors.NewInternal(
			"invalid_configuration",
			"failed to query the token registry during startup validation",
			map[string]any{"error": err.Error()},
		)
	}
	if duplicates > 0 {
		return apperrors.NewInternal(
			"invalid_configuration",
			"native token symbol is claimed by another token",
			map[string]any{"symbol": entities.NativeTokenSymbol},
		)
	}

	if appErr := validateNativeTokenRow(row); appErr != nil {
		return appErr
	}

	g.logger.Info("token registry startup validation passed")
	return nil
}

type tokenRow struct {
	ID       string
	Symbol   string
	Decimals int
}

func validateNativeTokenRow(row tokenRow) *apperrors.AppError {
	native := entities.NativeToken()
	details := map[string]any{
		"token_id": row.ID,
		"symbol":   row.Symbol,
		"decimals": row.Decimals,
	}

	if !strings.EqualFold(strings.TrimSpace(row.Symbol), native.Symbol) {
		return apperrors.NewInternal("invalid_configuration", "native token symbol must be "+native.Symbol, details)
	}
	if row.Decimals != native.Decimals {
		return apperrors.NewInternal("invalid_configuration", "native token decimals do not match the chain", details)
	}
	return nil
}

func (g *Gateway) open() (*sql.DB, *apperrors.AppError) {
	db, err := sql.Open("pgx", g.databaseURL)
	if err != nil {
		g.logger.Error("database connection initialization failed", zap.Error(err))
		return nil, apperrors.NewInternal(
			"DB_CONNECT_INIT_FAILED",
			"failed to initialize database connection",
			map[string]any{"database_target": g.databaseTarget},
		)
	}
	return db, nil
}

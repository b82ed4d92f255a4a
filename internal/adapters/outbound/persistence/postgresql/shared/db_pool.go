package shared

import (
	"context"
	"database/sql"
	stderrors "errors"
	"time"

	apperrors "alphtip/internal/shared_kernel/errors"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
)

const uniqueViolationCode = "23505"

func NewDatabasePool(databaseURL string, logger *zap.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(20)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	if logger != nil {
		logger.Info("database pool initialized")
	}
	return db, nil
}

// UniqueViolation returns the violated constraint name when err is a unique violation.
func UniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if !stderrors.As(err, &pgErr) || pgErr.Code != uniqueViolationCode {
		return "", false
	}
	return pgErr.ConstraintName, true
}

// PoolProbe pings an open pool.
type PoolProbe struct {
	db *sql.DB
}

func NewPoolProbe(db *sql.DB) *PoolProbe {
	return &PoolProbe{db: db}
}

func (p *PoolProbe) CheckReadiness(ctx context.Context) *apperrors.AppError {
	if err := p.db.PingContext(ctx); err != nil {
		return apperrors.NewUnavailable(
			"DB_UNAVAILABLE",
			"database is unavailable",
			nil,
		).WithCause(err)
	}
	return nil
}

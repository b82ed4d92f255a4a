package user

import (
	"context"
	"database/sql"
	stderrors "errors"

	"alphtip/internal/adapters/outbound/persistence/postgresql/shared"
	portsout "alphtip/internal/application/ports/out"
	"alphtip/internal/domain/entities"
	apperrors "alphtip/internal/shared_kernel/errors"

	"go.uber.org/zap"
)

const (
	identityConstraint = "users_identity_unique"
	addressConstraint  = "users_address_unique"
)

type Repository struct {
	db     *sql.DB
	logger *zap.Logger
}

var _ portsout.UserRepository = (*Repository)(nil)

func NewRepository(db *sql.DB, logger *zap.Logger) *Repository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Repository{db: db, logger: logger}
}

func (r *Repository) ExistsByIdentity(ctx context.Context, identity string) (bool, *apperrors.AppError) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM app.users WHERE identity = $1)`, identity).Scan(&exists)
	if err != nil {
		return false, queryFailed("user_lookup_failed", err)
	}
	return exists, nil
}

func (r *Repository) FindByIdentity(ctx context.Context, identity string) (entities.User, *apperrors.AppError) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, identity, username, COALESCE(address, '')
FROM app.users
WHERE identity = $1
`, identity)

	user := entities.User{}
	err := row.Scan(&user.ID, &user.Identity, &user.Username, &user.Address)
	if stderrors.Is(err, sql.ErrNoRows) {
		return entities.User{}, apperrors.NewNotFound(
			apperrors.CodeUserNotFound,
			"user not found",
			map[string]any{"identity": identity},
		)
	}
	if err != nil {
		return entities.User{}, queryFailed("user_lookup_failed", err)
	}
	return user, nil
}

func (r *Repository) Save(ctx context.Context, user entities.User) (entities.User, *apperrors.AppError) {
	if user.ID == 0 {
		return r.insert(ctx, user)
	}

	result, err := r.db.ExecContext(ctx, `
UPDATE app.users
SET username = $2, address = NULLIF($3, ''), updated_at = now()
WHERE id = $1
`, user.ID, user.Username, user.Address)
	if err != nil {
		return entities.User{}, r.writeFailed(user, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return entities.User{}, queryFailed("user_save_failed", err)
	}
	if affected == 0 {
		return entities.User{}, apperrors.NewNotFound(
			apperrors.CodeUserNotFound,
			"user not found",
			map[string]any{"user_id": user.ID},
		)
	}
	return user, nil
}

func (r *Repository) insert(ctx context.Context, user entities.User) (entities.User, *apperrors.AppError) {
	err := r.db.QueryRowContext(ctx, `
INSERT INTO app.users (identity, username, address)
VALUES ($1, $2, NULLIF($3, ''))
RETURNING id
`, user.Identity, user.Username, user.Address).Scan(&user.ID)
	if err != nil {
		return entities.User{}, r.writeFailed(user, err)
	}

	r.logger.Debug("user inserted", zap.Int64("user_id", user.ID))
	return user, nil
}

func (r *Repository) Remove(ctx context.Context, user entities.User) *apperrors.AppError {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM app.users WHERE id = $1`, user.ID); err != nil {
		return queryFailed("user_remove_failed", err)
	}
	return nil
}

func (r *Repository) Count(ctx context.Context) (int, *apperrors.AppError) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM app.users`).Scan(&count); err != nil {
		return 0, queryFailed("user_count_failed", err)
	}
	return count, nil
}

func (r *Repository) Find(ctx context.Context, skip int, take int) ([]entities.User, *apperrors.AppError) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, identity, username, COALESCE(address, '')
FROM app.users
ORDER BY id
OFFSET $1
LIMIT $2
`, max(skip, 0), max(take, 0))
	if err != nil {
		return nil, queryFailed("user_list_failed", err)
	}
	defer rows.Close()

	users := []entities.User{}
	for rows.Next() {
		user := entities.User{}
		if err := rows.Scan(&user.ID, &user.Identity, &user.Username, &user.Address); err != nil {
			return nil, queryFailed("user_list_failed", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, queryFailed("user_list_failed", err)
	}
	return users, nil
}

func (r *Repository) writeFailed(user entities.User, err error) *apperrors.AppError {
	constraint, unique := shared.UniqueViolation(err)
	switch {
	case unique && constraint == identityConstraint:
		return apperrors.NewAlreadyRegistered(user.Identity).WithCause(err)
	case unique && constraint == addressConstraint:
		return apperrors.NewConflict(
			"address_already_assigned",
			"address already belongs to another user",
			map[string]any{"address": user.Address},
		).WithCause(err)
	}
	return queryFailed("user_save_failed", err)
}

func queryFailed(code string, err error) *apperrors.AppError {
	return apperrors.NewInternal(code, "user store query failed", map[string]any{"error": err.Error()}).WithCause(err)
}

//go:build integration

package user

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"alphtip/internal/adapters/outbound/persistence/postgresql/bootstrap"
	"alphtip/internal/domain/entities"
	apperrors "alphtip/internal/shared_kernel/errors"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newIntegrationRepository(t *testing.T) (*Repository, context.Context) {
	t.Helper()
	databaseURL := os.Getenv("TEST_DATABASE_URL")
	if databaseURL == "" {
		t.Skip("set TEST_DATABASE_URL to run integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	gateway := bootstrap.NewGateway(databaseURL, "integration-target", filepath.Join("..", "migrations"), zap.NewNop())
	require.Nil(t, gateway.RunMigrations(ctx))

	db, err := sql.Open("pgx", databaseURL)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.ExecContext(ctx, `TRUNCATE app.users RESTART IDENTITY`)
	require.NoError(t, err)

	return NewRepository(db, zap.NewNop()), ctx
}

func TestRepositoryLifecycle(t *testing.T) {
	repository, ctx := newIntegrationRepository(t)

	created, appErr := repository.Save(ctx, entities.User{Identity: "discord:1", Username: "alice"})
	require.Nil(t, appErr)
	assert.Equal(t, int64(1), created.ID)

	exists, appErr := repository.ExistsByIdentity(ctx, "discord:1")
	require.Nil(t, appErr)
	assert.True(t, exists)

	created.Address = "1DrDyTr9RpRsQnDnXo2YRiPzPW4ooHX5LLoqXrqfMrpQH"
	_, appErr = repository.Save(ctx, created)
	require.Nil(t, appErr)

	found, appErr := repository.FindByIdentity(ctx, "discord:1")
	require.Nil(t, appErr)
	assert.Equal(t, created, found)

	require.Nil(t, repository.Remove(ctx, found))
	_, appErr = repository.FindByIdentity(ctx, "discord:1")
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.CodeUserNotFound, appErr.Code)
}

func TestRepositoryRejectsDuplicateIdentity(t *testing.T) {
	repository, ctx := newIntegrationRepository(t)

	_, appErr := repository.Save(ctx, entities.User{Identity: "discord:1"})
	require.Nil(t, appErr)

	_, appErr = repository.Save(ctx, entities.User{Identity: "discord:1"})
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.CodeAlreadyRegistered, appErr.Code)
}

func TestRepositoryPagesInIDOrder(t *testing.T) {
	repository, ctx := newIntegrationRepository(t)
	for _, identity := range []string{"a", "b", "c", "d", "e"} {
		_, appErr := repository.Save(ctx, entities.User{Identity: identity})
		require.Nil(t, appErr)
	}

	count, appErr := repository.Count(ctx)
	require.Nil(t, appErr)
	assert.Equal(t, 5, count)

	page, appErr := repository.Find(ctx, 2, 2)
	require.Nil(t, appErr)
	require.Len(t, page, 2)
	assert.Equal(t, "c", page[0].Identity)
	assert.Equal(t, "d", page[1].Identity)

	tail, appErr := repository.Find(ctx, 4, 10)
	require.Nil(t, appErr)
	require.Len(t, tail, 1)
}

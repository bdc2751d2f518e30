package account

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTestDatabase(t *testing.T) (*pgxpool.Pool, func()) {
	ctx := context.Background()

	dbName := "todo_db"
	dbUser := "todo"
	dbPassword := "pwd"

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithInitScripts(filepath.Join("../../migrations", "todo_db.sql")),
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	require.NoError(t, err)

	connString, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	poolConfig, err := pgxpool.ParseConfig(connString)
	require.NoError(t, err)

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	require.NoError(t, err)

	cleanup := func() {
		pool.Close()
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return pool, cleanup
}

func TestPostgresAccountLifecycle(t *testing.T) {
	ctx := context.Background()

	pool, cleanup := setupTestDatabase(t)
	defer cleanup()

	repo := NewPostgresAccountRepository(pool)

	id, err := repo.Create(ctx, CreateAccountParams{
		Email:           "a@x.com",
		PermissionLevel: PermissionLevelUser,
	})
	require.NoError(t, err)
	assert.NotZero(t, id)

	acct, err := repo.GetActive(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, acct.ID)
	assert.Equal(t, "a@x.com", acct.Email)
	assert.Equal(t, PermissionLevelUser, acct.PermissionLevel)
	assert.False(t, acct.CreatedAt.IsZero())
	assert.Nil(t, acct.DeletedAt)

	adminID, err := repo.Create(ctx, CreateAccountParams{
		Email:           "admin@x.com",
		PermissionLevel: PermissionLevelAdmin,
	})
	require.NoError(t, err)

	admin, err := repo.GetActive(ctx, adminID)
	require.NoError(t, err)
	assert.Equal(t, PermissionLevelAdmin, admin.PermissionLevel)

	accounts, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, id, accounts[0].ID)
	assert.Equal(t, adminID, accounts[1].ID)
}

func TestPostgresAccountUpdateEmail(t *testing.T) {
	ctx := context.Background()

	pool, cleanup := setupTestDatabase(t)
	defer cleanup()

	repo := NewPostgresAccountRepository(pool)

	id, err := repo.Create(ctx, CreateAccountParams{
		Email:           "old@x.com",
		PermissionLevel: PermissionLevelUser,
	})
	require.NoError(t, err)

	updatedAt := time.Now().UTC()
	require.NoError(t, repo.UpdateEmail(ctx, id, "new@x.com", updatedAt))

	acct, err := repo.GetActive(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "new@x.com", acct.Email)
	assert.WithinDuration(t, updatedAt, acct.UpdatedAt, time.Second)
}

func TestPostgresAccountSoftDelete(t *testing.T) {
	ctx := context.Background()

	pool, cleanup := setupTestDatabase(t)
	defer cleanup()

	repo := NewPostgresAccountRepository(pool)

	id, err := repo.Create(ctx, CreateAccountParams{
		Email:           "a@x.com",
		PermissionLevel: PermissionLevelUser,
	})
	require.NoError(t, err)

	require.NoError(t, repo.SoftDelete(ctx, id, time.Now().UTC()))

	_, err = repo.GetActive(ctx, id)
	assert.ErrorIs(t, err, ErrAccountNotFound)

	accounts, err := repo.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, accounts)

	// the row itself persists
	var count int
	err = pool.QueryRow(ctx, "SELECT count(*) FROM accounts WHERE id = $1", id).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPostgresAccountGetMissing(t *testing.T) {
	ctx := context.Background()

	pool, cleanup := setupTestDatabase(t)
	defer cleanup()

	repo := NewPostgresAccountRepository(pool)

	_, err := repo.GetActive(ctx, 12345)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

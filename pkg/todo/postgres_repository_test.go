package todo

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

func TestPostgresTodoLifecycle(t *testing.T) {
	ctx := context.Background()

	pool, cleanup := setupTestDatabase(t)
	defer cleanup()

	repo := NewPostgresTodoRepository(pool)

	id, err := repo.Create(ctx, "write report", false)
	require.NoError(t, err)
	assert.NotZero(t, id)

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, Todo{ID: id, Title: "write report", Done: false}, got)

	second, err := repo.Create(ctx, "send report", true)
	require.NoError(t, err)

	todos, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 2)
	assert.Equal(t, id, todos[0].ID)
	assert.Equal(t, second, todos[1].ID)
	assert.True(t, todos[1].Done)
}

func TestPostgresTodoUpdate(t *testing.T) {
	ctx := context.Background()

	pool, cleanup := setupTestDatabase(t)
	defer cleanup()

	repo := NewPostgresTodoRepository(pool)

	id, err := repo.Create(ctx, "draft", false)
	require.NoError(t, err)

	require.NoError(t, repo.Update(ctx, Todo{ID: id, Title: "final", Done: true}))

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "final", got.Title)
	assert.True(t, got.Done)
}

func TestPostgresTodoDelete(t *testing.T) {
	ctx := context.Background()

	pool, cleanup := setupTestDatabase(t)
	defer cleanup()

	repo := NewPostgresTodoRepository(pool)

	id, err := repo.Create(ctx, "temp", false)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, id))

	_, err = repo.Get(ctx, id)
	assert.ErrorIs(t, err, ErrTodoNotFound)

	// deleting an absent id succeeds
	require.NoError(t, repo.Delete(ctx, id))

	todos, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, todos)
}

func TestPostgresTodoGetMissing(t *testing.T) {
	ctx := context.Background()

	pool, cleanup := setupTestDatabase(t)
	defer cleanup()

	repo := NewPostgresTodoRepository(pool)

	_, err := repo.Get(ctx, 9999)
	assert.ErrorIs(t, err, ErrTodoNotFound)
}

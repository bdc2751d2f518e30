package todo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// PostgresTodoRepository implements TodoRepository using PostgreSQL
type PostgresTodoRepository struct {
	db DBTX
}

// NewPostgresTodoRepository creates a new PostgreSQL todo repository
func NewPostgresTodoRepository(db DBTX) *PostgresTodoRepository {
	return &PostgresTodoRepository{
		db: db,
	}
}

// Create inserts a todo row and returns the generated id
func (r *PostgresTodoRepository) Create(ctx context.Context, title string, done bool) (int32, error) {
	query := `INSERT INTO todos (title, done) VALUES ($1, $2) RETURNING id`

	var id int32
	err := r.db.QueryRow(ctx, query, title, done).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create todo: %w", err)
	}

	return id, nil
}

// Get retrieves a todo by id
func (r *PostgresTodoRepository) Get(ctx context.Context, id int32) (Todo, error) {
	query := `SELECT id, title, done FROM todos WHERE id = $1`

	var t Todo
	err := r.db.QueryRow(ctx, query, id).Scan(&t.ID, &t.Title, &t.Done)
	if errors.Is(err, pgx.ErrNoRows) {
		return Todo{}, ErrTodoNotFound
	}
	if err != nil {
		return Todo{}, fmt.Errorf("failed to get todo: %w", err)
	}

	return t, nil
}

// List lists all todos, in insertion order
func (r *PostgresTodoRepository) List(ctx context.Context) ([]Todo, error) {
	query := `SELECT id, title, done FROM todos ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	defer rows.Close()

	todos := []Todo{}
	for rows.Next() {
		var t Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Done); err != nil {
			return nil, fmt.Errorf("failed to scan todo: %w", err)
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}

	return todos, nil
}

// Update persists the full row
func (r *PostgresTodoRepository) Update(ctx context.Context, todo Todo) error {
	query := `UPDATE todos SET title = $1, done = $2 WHERE id = $3`

	_, err := r.db.Exec(ctx, query, todo.Title, todo.Done, todo.ID)
	if err != nil {
		return fmt.Errorf("failed to update todo: %w", err)
	}

	return nil
}

// Delete removes a row by id. No existence check: deleting an absent id is
// indistinguishable from success.
func (r *PostgresTodoRepository) Delete(ctx context.Context, id int32) error {
	query := `DELETE FROM todos WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}

	return nil
}

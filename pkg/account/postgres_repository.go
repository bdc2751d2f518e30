package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// PostgresAccountRepository implements AccountRepository using PostgreSQL
type PostgresAccountRepository struct {
	db DBTX
}

// NewPostgresAccountRepository creates a new PostgreSQL account repository
func NewPostgresAccountRepository(db DBTX) *PostgresAccountRepository {
	return &PostgresAccountRepository{
		db: db,
	}
}

// Create inserts an account row and returns the generated id
func (r *PostgresAccountRepository) Create(ctx context.Context, params CreateAccountParams) (int32, error) {
	query := `
		INSERT INTO accounts (email, permission_level)
		VALUES ($1, $2::permission_level_enum)
		RETURNING id
	`

	var id int32
	err := r.db.QueryRow(ctx, query, params.Email, string(params.PermissionLevel)).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create account: %w", err)
	}

	return id, nil
}

// GetActive retrieves an account by id, excluding soft-deleted rows
func (r *PostgresAccountRepository) GetActive(ctx context.Context, id int32) (Account, error) {
	query := `
		SELECT id, email, permission_level::text, created_at, updated_at, deleted_at
		FROM accounts
		WHERE id = $1 AND deleted_at IS NULL
	`

	acct, err := scanAccount(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Account{}, ErrAccountNotFound
	}
	if err != nil {
		return Account{}, fmt.Errorf("failed to get account: %w", err)
	}

	return acct, nil
}

// ListActive lists all accounts that are not soft-deleted, in insertion order
func (r *PostgresAccountRepository) ListActive(ctx context.Context) ([]Account, error) {
	query := `
		SELECT id, email, permission_level::text, created_at, updated_at, deleted_at
		FROM accounts
		WHERE deleted_at IS NULL
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	accounts := []Account{}
	for rows.Next() {
		acct, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, acct)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	return accounts, nil
}

// UpdateEmail persists a new email and updated_at timestamp
func (r *PostgresAccountRepository) UpdateEmail(ctx context.Context, id int32, email string, updatedAt time.Time) error {
	query := `UPDATE accounts SET email = $1, updated_at = $2 WHERE id = $3`

	_, err := r.db.Exec(ctx, query, email, updatedAt, id)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}

	return nil
}

// SoftDelete stamps deleted_at on the row. The row persists; active reads
// stop seeing it.
func (r *PostgresAccountRepository) SoftDelete(ctx context.Context, id int32, deletedAt time.Time) error {
	query := `UPDATE accounts SET deleted_at = $1 WHERE id = $2`

	_, err := r.db.Exec(ctx, query, deletedAt, id)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	return nil
}

func scanAccount(row pgx.Row) (Account, error) {
	var acct Account
	var level string

	err := row.Scan(
		&acct.ID,
		&acct.Email,
		&level,
		&acct.CreatedAt,
		&acct.UpdatedAt,
		&acct.DeletedAt,
	)
	if err != nil {
		return Account{}, err
	}

	acct.PermissionLevel = PermissionLevel(level)
	return acct, nil
}

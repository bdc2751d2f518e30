package account

import (
	"context"
	"errors"
	"time"
)

// ErrAccountNotFound is returned when no active account matches
var ErrAccountNotFound = errors.New("account not found")

// CreateAccountParams holds the fields required to create an account
type CreateAccountParams struct {
	Email           string
	PermissionLevel PermissionLevel
}

// AccountRepository defines persistence for account rows. Every read
// excludes soft-deleted rows; only SoftDelete and UpdateEmail mutate.
type AccountRepository interface {
	Create(ctx context.Context, params CreateAccountParams) (int32, error)
	GetActive(ctx context.Context, id int32) (Account, error)
	ListActive(ctx context.Context) ([]Account, error)
	UpdateEmail(ctx context.Context, id int32, email string, updatedAt time.Time) error
	SoftDelete(ctx context.Context, id int32, deletedAt time.Time) error
}

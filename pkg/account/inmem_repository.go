package account

import (
	"context"
	"sync"
	"time"
)

// InMemoryAccountRepository implements AccountRepository using in-memory
// storage. Intended for tests and demos.
type InMemoryAccountRepository struct {
	mu       sync.RWMutex
	accounts map[int32]Account
	nextID   int32
}

// NewInMemoryAccountRepository creates a new in-memory account repository
func NewInMemoryAccountRepository() *InMemoryAccountRepository {
	return &InMemoryAccountRepository{
		accounts: make(map[int32]Account),
		nextID:   1,
	}
}

// Create inserts an account and returns the generated id
func (r *InMemoryAccountRepository) Create(ctx context.Context, params CreateAccountParams) (int32, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	acct := Account{
		ID:              r.nextID,
		Email:           params.Email,
		PermissionLevel: params.PermissionLevel,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	r.accounts[acct.ID] = acct
	r.nextID++

	return acct.ID, nil
}

// GetActive gets an account by id, excluding soft-deleted rows
func (r *InMemoryAccountRepository) GetActive(ctx context.Context, id int32) (Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	acct, ok := r.accounts[id]
	if !ok || acct.DeletedAt != nil {
		return Account{}, ErrAccountNotFound
	}

	return acct, nil
}

// ListActive lists accounts that are not soft-deleted, in insertion order
func (r *InMemoryAccountRepository) ListActive(ctx context.Context) ([]Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := []Account{}
	for id := int32(1); id < r.nextID; id++ {
		if acct, ok := r.accounts[id]; ok && acct.DeletedAt == nil {
			accounts = append(accounts, acct)
		}
	}

	return accounts, nil
}

// UpdateEmail persists a new email and updated_at timestamp
func (r *InMemoryAccountRepository) UpdateEmail(ctx context.Context, id int32, email string, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	acct, ok := r.accounts[id]
	if !ok {
		return nil
	}
	acct.Email = email
	acct.UpdatedAt = updatedAt
	r.accounts[id] = acct

	return nil
}

// SoftDelete stamps deleted_at on the account
func (r *InMemoryAccountRepository) SoftDelete(ctx context.Context, id int32, deletedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	acct, ok := r.accounts[id]
	if !ok {
		return nil
	}
	acct.DeletedAt = &deletedAt
	r.accounts[id] = acct

	return nil
}

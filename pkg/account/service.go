package account

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/tendant/simple-todo/pkg/apierror"
	"github.com/tendant/simple-todo/pkg/notification"
)

// UpdateAccountParams is a partial patch: only present fields are applied.
// The permission level is immutable through this path.
type UpdateAccountParams struct {
	Email *string
}

// AccountService provides the account lifecycle: create, list, read,
// partial update and soft delete. Multi-step flows (insert-then-reread,
// read-merge-write) are deliberately not wrapped in a transaction; the
// database's per-statement guarantees are the only isolation in play.
type AccountService struct {
	repo     AccountRepository
	notifier notification.Notifier
}

// NewAccountService creates a new account service
func NewAccountService(repo AccountRepository) *AccountService {
	return &AccountService{
		repo: repo,
	}
}

// WithNotifier enables a best-effort welcome notification on account creation
func (s *AccountService) WithNotifier(notifier notification.Notifier) *AccountService {
	s.notifier = notifier
	return s
}

// FindAccounts lists all active accounts
func (s *AccountService) FindAccounts(ctx context.Context) ([]Account, error) {
	accounts, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, apierror.InternalWrap(err, "failed to find accounts")
	}
	return accounts, nil
}

// GetAccount returns an active account by id
func (s *AccountService) GetAccount(ctx context.Context, id int32) (Account, error) {
	acct, err := s.repo.GetActive(ctx, id)
	if errors.Is(err, ErrAccountNotFound) {
		return Account{}, apierror.NotFound("account", id)
	}
	if err != nil {
		return Account{}, apierror.InternalWrap(err, "failed to get account")
	}
	return acct, nil
}

// CreateAccount inserts a new account and re-reads the full row to pick up
// generated id and timestamps
func (s *AccountService) CreateAccount(ctx context.Context, params CreateAccountParams) (Account, error) {
	if params.Email == "" {
		return Account{}, apierror.InvalidInput("email is required")
	}
	if !params.PermissionLevel.Valid() {
		return Account{}, apierror.InvalidInput("permission level is required")
	}

	id, err := s.repo.Create(ctx, params)
	if err != nil {
		return Account{}, apierror.InternalWrap(err, "failed to create account")
	}

	acct, err := s.repo.GetActive(ctx, id)
	if err != nil {
		return Account{}, apierror.InternalWrap(err, "failed to read created account")
	}

	if s.notifier != nil {
		err = s.notifier.Send(notification.NotificationData{
			To:      acct.Email,
			Subject: "Account created",
			Body:    "Your account is ready.",
		})
		if err != nil {
			slog.Warn("Failed sending account notification", "accountId", acct.ID, "err", err)
		}
	}

	return acct, nil
}

// UpdateAccount applies a partial patch to an active account, refreshes
// updated_at and returns the merged row. Caller is responsible for the
// admin gate.
func (s *AccountService) UpdateAccount(ctx context.Context, id int32, params UpdateAccountParams) (Account, error) {
	acct, err := s.GetAccount(ctx, id)
	if err != nil {
		return Account{}, err
	}

	if params.Email != nil {
		acct.Email = *params.Email
	}
	acct.UpdatedAt = time.Now().UTC()

	err = s.repo.UpdateEmail(ctx, id, acct.Email, acct.UpdatedAt)
	if err != nil {
		return Account{}, apierror.InternalWrap(err, "failed to update account")
	}

	return acct, nil
}

// DeleteAccount soft-deletes an active account. Deleting an id that is
// already soft-deleted surfaces as not found, since the active read
// excludes it.
func (s *AccountService) DeleteAccount(ctx context.Context, id int32) error {
	acct, err := s.GetAccount(ctx, id)
	if err != nil {
		return err
	}

	err = s.repo.SoftDelete(ctx, acct.ID, time.Now().UTC())
	if err != nil {
		return apierror.InternalWrap(err, "failed to delete account")
	}

	return nil
}

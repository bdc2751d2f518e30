package auth

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/tendant/simple-todo/pkg/account"
	"github.com/tendant/simple-todo/pkg/apierror"
)

const bearerPrefix = "Bearer "

// AccountSource is the narrow read contract the resolver needs. It never
// creates or mutates accounts.
type AccountSource interface {
	GetActive(ctx context.Context, id int32) (account.Account, error)
}

// SystemIdentity is a configuration-driven identity that resolves without a
// store lookup. It is not a stored row: the configured token maps to a
// fixed admin account.
type SystemIdentity struct {
	Token int32
	Email string
}

// DefaultSystemIdentity matches the historical wire behavior: token 0
// resolves to an admin named "superuser".
func DefaultSystemIdentity() SystemIdentity {
	return SystemIdentity{
		Token: 0,
		Email: "superuser",
	}
}

// Account materializes the system identity as an account value
func (s SystemIdentity) Account() account.Account {
	now := time.Now().UTC()
	return account.Account{
		ID:              s.Token,
		Email:           s.Email,
		PermissionLevel: account.PermissionLevelAdmin,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Resolver maps an Authorization header value to an authenticated account
type Resolver struct {
	accounts AccountSource
	system   SystemIdentity
}

// NewResolver creates a resolver with the default system identity
func NewResolver(accounts AccountSource) *Resolver {
	return NewResolverWithSystemIdentity(accounts, DefaultSystemIdentity())
}

// NewResolverWithSystemIdentity creates a resolver with an explicit system
// identity configuration
func NewResolverWithSystemIdentity(accounts AccountSource, system SystemIdentity) *Resolver {
	return &Resolver{
		accounts: accounts,
		system:   system,
	}
}

// Resolve turns a raw Authorization header value into an active account.
// The bearer value is an opaque integer token. The configured system token
// short-circuits to the system identity with zero store reads; every other
// token must match an active account id.
func (rs *Resolver) Resolve(ctx context.Context, headerValue string) (account.Account, error) {
	if headerValue == "" {
		return account.Account{}, apierror.Unauthorized("missing authorization")
	}
	if !strings.HasPrefix(headerValue, bearerPrefix) {
		return account.Account{}, apierror.Unauthorized("invalid authorization header")
	}

	token := strings.TrimSpace(strings.TrimPrefix(headerValue, bearerPrefix))
	id64, err := strconv.ParseInt(token, 10, 32)
	if err != nil {
		return account.Account{}, apierror.Unauthorized("invalid token")
	}
	id := int32(id64)

	if id == rs.system.Token {
		return rs.system.Account(), nil
	}

	acct, err := rs.accounts.GetActive(ctx, id)
	if errors.Is(err, account.ErrAccountNotFound) {
		return account.Account{}, apierror.Unauthorized("account not found")
	}
	if err != nil {
		return account.Account{}, apierror.InternalWrap(err, "failed to resolve account")
	}

	return acct, nil
}

// RequirePermission is the pure permission gate: the resolved account must
// carry at least the min level.
func RequirePermission(acct account.Account, min account.PermissionLevel) error {
	if !acct.PermissionLevel.Satisfies(min) {
		return apierror.Forbidden("insufficient permissions")
	}
	return nil
}

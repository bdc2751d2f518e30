package auth

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/tendant/simple-todo/pkg/account"
	"github.com/tendant/simple-todo/pkg/apierror"
)

// contextKey is a value for use with context.WithValue. It's used as a
// pointer so it fits in an interface{} without allocation.
type contextKey struct {
	name string
}

var authAccountKey = &contextKey{"AuthAccount"}

// AccountFromContext returns the account resolved by RequireLevel
func AccountFromContext(ctx context.Context) (account.Account, bool) {
	acct, ok := ctx.Value(authAccountKey).(account.Account)
	return acct, ok
}

// RequireLevel resolves the bearer credential and gates on the min
// permission level. Unresolvable credentials get 401, resolved accounts
// below the required level get 403. The resolved account is stashed in the
// request context for handlers that want it.
func RequireLevel(resolver *Resolver, min account.PermissionLevel) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			acct, err := resolver.Resolve(r.Context(), r.Header.Get("Authorization"))
			if err != nil {
				apierror.Render(w, r, err)
				return
			}

			if err := RequirePermission(acct, min); err != nil {
				slog.Warn("Account lacks required level",
					"accountId", acct.ID,
					"level", acct.PermissionLevel,
					"requiredLevel", min)
				apierror.Render(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), authAccountKey, acct)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

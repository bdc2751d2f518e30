package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/jinzhu/copier"

	"github.com/tendant/simple-todo/pkg/account"
	"github.com/tendant/simple-todo/pkg/apierror"
	"github.com/tendant/simple-todo/pkg/auth"
)

// Handle serves the account routes
type Handle struct {
	accountService *account.AccountService
	resolver       *auth.Resolver
}

func NewHandle(accountService *account.AccountService, resolver *auth.Resolver) Handle {
	return Handle{
		accountService: accountService,
		resolver:       resolver,
	}
}

type CreateAccountRequest struct {
	Email           string                  `json:"email"`
	PermissionLevel account.PermissionLevel `json:"permissionLevel"`
}

type UpdateAccountRequest struct {
	Email *string `json:"email"`
}

// Routes mounts the account endpoints. Listing and creation are
// unauthenticated; update and soft delete require an admin bearer
// credential.
func (h Handle) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireLevel(h.resolver, account.PermissionLevelAdmin))
		r.Patch("/{accountId}", h.Update)
		r.Delete("/{accountId}", h.Delete)
	})
}

// List all active accounts
// (GET /accounts)
func (h Handle) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accountService.FindAccounts(r.Context())
	if err != nil {
		apierror.Render(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, accounts)
}

// Create a new account
// (POST /accounts)
func (h Handle) Create(w http.ResponseWriter, r *http.Request) {
	var request CreateAccountRequest
	if err := decodeJSON(r, &request); err != nil {
		apierror.Render(w, r, err)
		return
	}

	params := account.CreateAccountParams{}
	copier.Copy(&params, &request)

	acct, err := h.accountService.CreateAccount(r.Context(), params)
	if err != nil {
		apierror.Render(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, acct)
}

// Apply a partial patch to an account
// (PATCH /accounts/{accountId})
func (h Handle) Update(w http.ResponseWriter, r *http.Request) {
	id, err := accountID(r)
	if err != nil {
		apierror.Render(w, r, err)
		return
	}

	var request UpdateAccountRequest
	if err := decodeJSON(r, &request); err != nil {
		apierror.Render(w, r, err)
		return
	}

	acct, err := h.accountService.UpdateAccount(r.Context(), id, account.UpdateAccountParams{
		Email: request.Email,
	})
	if err != nil {
		apierror.Render(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, acct)
}

// Soft-delete an account
// (DELETE /accounts/{accountId})
func (h Handle) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := accountID(r)
	if err != nil {
		apierror.Render(w, r, err)
		return
	}

	if err := h.accountService.DeleteAccount(r.Context(), id); err != nil {
		apierror.Render(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func accountID(r *http.Request) (int32, error) {
	id64, err := strconv.ParseInt(chi.URLParam(r, "accountId"), 10, 32)
	if err != nil {
		return 0, apierror.InvalidInput("invalid account id")
	}
	return int32(id64), nil
}

func decodeJSON(r *http.Request, v interface{}) error {
	if ct := r.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		return apierror.New(apierror.ErrCodeUnsupported, "expected application/json content type")
	}
	if err := render.DecodeJSON(r.Body, v); err != nil {
		return apierror.InvalidInput("unable to parse body")
	}
	return nil
}

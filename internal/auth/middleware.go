package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/tna-office/backoffice/internal/platform/httpx"
	"github.com/tna-office/backoffice/internal/shared"
)

// AccountSource loads the account behind a verified token.
type AccountSource interface {
	GetByID(ctx context.Context, id string) (User, error)
}

// Middleware authenticates requests via a bearer token, reloads the account
// and stores the resulting identity in the request context. Deleted accounts
// get 401 and deactivated accounts 403, regardless of token validity.
func Middleware(tokens *TokenManager, accounts AccountSource) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			const prefix = "Bearer "
			if !strings.HasPrefix(header, prefix) {
				httpx.Problem(w, http.StatusUnauthorized, "Unauthorized", "missing bearer token")
				return
			}
			claims, err := tokens.Verify(strings.TrimPrefix(header, prefix))
			if err != nil {
				httpx.Problem(w, http.StatusUnauthorized, "Unauthorized", "invalid or expired token")
				return
			}
			user, err := accounts.GetByID(r.Context(), claims.UserID)
			if errors.Is(err, shared.ErrNotFound) {
				httpx.Problem(w, http.StatusUnauthorized, "Unauthorized", "account no longer exists")
				return
			}
			if err != nil {
				httpx.RespondError(w, err)
				return
			}
			if !user.IsActive {
				httpx.Problem(w, http.StatusForbidden, "Forbidden", "account is inactive")
				return
			}
			identity := shared.Identity{
				UserID: user.ID,
				Email:  user.Email,
				Name:   user.Name,
				Role:   user.Role,
			}
			next.ServeHTTP(w, r.WithContext(shared.ContextWithIdentity(r.Context(), identity)))
		})
	}
}

// RequireRole rejects requests whose identity does not carry one of the
// given roles.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := shared.IdentityFromContext(r.Context())
			if !ok {
				httpx.Problem(w, http.StatusUnauthorized, "Unauthorized", "authentication required")
				return
			}
			if _, ok := allowed[identity.Role]; !ok {
				httpx.Problem(w, http.StatusForbidden, "Forbidden", "insufficient permissions")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

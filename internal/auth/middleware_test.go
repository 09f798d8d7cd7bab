package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tna-office/backoffice/internal/shared"
)

func authedRequest(t *testing.T, tokens *TokenManager, user User) *http.Request {
	t.Helper()
	signed, err := tokens.Generate(user.ID, user.Email, user.Name, user.Role)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	return req
}

func TestMiddlewareInjectsFreshIdentity(t *testing.T) {
	repo := newFakeRepo()
	user := repo.add(t, "admin@tnaoffice.cl", "admin123", true)
	tokens := NewTokenManager("test-secret", time.Hour)

	var got shared.Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := shared.IdentityFromContext(r.Context())
		require.True(t, ok)
		got = identity
	})

	rec := httptest.NewRecorder()
	Middleware(tokens, repo)(next).ServeHTTP(rec, authedRequest(t, tokens, user))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, user.ID, got.UserID)
	require.Equal(t, shared.RoleAdmin, got.Role)
}

func TestMiddlewareRejectsDeactivatedAccount(t *testing.T) {
	repo := newFakeRepo()
	user := repo.add(t, "gone@tnaoffice.cl", "secret1", true)
	tokens := NewTokenManager("test-secret", time.Hour)
	req := authedRequest(t, tokens, user)

	user.IsActive = false
	repo.byID[user.ID] = user
	repo.byEmail[user.Email] = user

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	rec := httptest.NewRecorder()
	Middleware(tokens, repo)(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	require.False(t, called)
}

func TestMiddlewareRejectsDeletedAccount(t *testing.T) {
	repo := newFakeRepo()
	user := repo.add(t, "borrado@tnaoffice.cl", "secret1", true)
	tokens := NewTokenManager("test-secret", time.Hour)
	req := authedRequest(t, tokens, user)

	delete(repo.byID, user.ID)
	delete(repo.byEmail, user.Email)

	rec := httptest.NewRecorder()
	Middleware(tokens, repo)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddlewareRejectsMissingToken(t *testing.T) {
	repo := newFakeRepo()
	tokens := NewTokenManager("test-secret", time.Hour)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	Middleware(tokens, repo)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

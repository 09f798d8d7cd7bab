package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tna-office/backoffice/internal/shared"
)

type fakeRepo struct {
	byEmail        map[string]User
	byID           map[string]User
	profileModules map[string][]string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		byEmail:        make(map[string]User),
		byID:           make(map[string]User),
		profileModules: make(map[string][]string),
	}
}

func (f *fakeRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return User{}, shared.ErrNotFound
	}
	return u, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (User, error) {
	u, ok := f.byID[id]
	if !ok {
		return User{}, shared.ErrNotFound
	}
	return u, nil
}

func (f *fakeRepo) Create(ctx context.Context, u User) (User, error) {
	f.byEmail[u.Email] = u
	f.byID[u.ID] = u
	return u, nil
}

func (f *fakeRepo) GetProfileModules(ctx context.Context, profileID string) ([]string, error) {
	return f.profileModules[profileID], nil
}

func (f *fakeRepo) add(t *testing.T, email, password string, active bool) User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := User{
		ID:           "user-" + email,
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Test User",
		Role:         shared.RoleAdmin,
		IsActive:     active,
	}
	f.byEmail[email] = u
	f.byID[u.ID] = u
	return u
}

func newTestService(repo *fakeRepo) *Service {
	return NewService(repo, NewTokenManager("test-secret", time.Hour))
}

func TestLoginIssuesToken(t *testing.T) {
	repo := newFakeRepo()
	user := repo.add(t, "admin@tnaoffice.cl", "admin123", true)
	svc := newTestService(repo)

	session, err := svc.Login(context.Background(), LoginInput{
		Email:    "admin@tnaoffice.cl",
		Password: "admin123",
	})
	require.NoError(t, err)
	require.Equal(t, "bearer", session.TokenType)
	require.Equal(t, user.ID, session.User.ID)
	require.NotEmpty(t, session.AccessToken)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeRepo()
	repo.add(t, "admin@tnaoffice.cl", "admin123", true)
	svc := newTestService(repo)

	_, err := svc.Login(context.Background(), LoginInput{
		Email:    "admin@tnaoffice.cl",
		Password: "wrong",
	})
	require.ErrorIs(t, err, shared.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestService(newFakeRepo())

	_, err := svc.Login(context.Background(), LoginInput{
		Email:    "nobody@tnaoffice.cl",
		Password: "whatever",
	})
	require.ErrorIs(t, err, shared.ErrInvalidCredentials)
}

func TestLoginInactiveUser(t *testing.T) {
	repo := newFakeRepo()
	repo.add(t, "gone@tnaoffice.cl", "secret1", false)
	svc := newTestService(repo)

	_, err := svc.Login(context.Background(), LoginInput{
		Email:    "gone@tnaoffice.cl",
		Password: "secret1",
	})
	require.ErrorIs(t, err, shared.ErrInactiveUser)
}

func TestRegisterDefaultsRoleAndHashes(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	session, err := svc.Register(context.Background(), RegisterInput{
		Email:    "nuevo@example.com",
		Password: "secret1",
		Name:     "Nuevo Cliente",
	})
	require.NoError(t, err)
	require.Equal(t, shared.RoleCliente, session.User.Role)
	require.True(t, session.User.IsActive)

	stored := repo.byEmail["nuevo@example.com"]
	require.NotEqual(t, "secret1", stored.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeRepo()
	repo.add(t, "taken@example.com", "secret1", true)
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:    "taken@example.com",
		Password: "secret1",
		Name:     "Otro",
	})
	require.ErrorIs(t, err, shared.ErrDuplicate)
}

func TestRegisterShortPassword(t *testing.T) {
	svc := newTestService(newFakeRepo())

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:    "nuevo@example.com",
		Password: "abc",
		Name:     "Nuevo",
	})
	require.ErrorIs(t, err, shared.ErrValidation)
}

func TestMeResolvesModules(t *testing.T) {
	repo := newFakeRepo()
	admin := repo.add(t, "admin@tnaoffice.cl", "admin123", true)
	svc := newTestService(repo)

	me, err := svc.Me(context.Background(), admin.ID)
	require.NoError(t, err)
	require.Equal(t, shared.AvailableModules, me.AllowedModules)

	profileID := "profile-ventas"
	repo.profileModules[profileID] = []string{"quotes", "clients"}
	seller := repo.add(t, "ventas@tnaoffice.cl", "secret1", true)
	seller.Role = shared.RoleComisionista
	seller.ProfileID = &profileID
	repo.byID[seller.ID] = seller

	me, err = svc.Me(context.Background(), seller.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"quotes", "clients"}, me.AllowedModules)

	orphanID := "profile-missing"
	lone := repo.add(t, "solo@tnaoffice.cl", "secret1", true)
	lone.Role = shared.RoleCliente
	lone.ProfileID = &orphanID
	repo.byID[lone.ID] = lone

	me, err = svc.Me(context.Background(), lone.ID)
	require.NoError(t, err)
	require.Empty(t, me.AllowedModules)
	require.NotNil(t, me.AllowedModules)
}

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokenManager("test-secret", time.Hour)

	signed, err := tokens.Generate("user-1", "admin@tnaoffice.cl", "Admin", shared.RoleAdmin)
	require.NoError(t, err)

	claims, err := tokens.Verify(signed)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, "admin@tnaoffice.cl", claims.Email)
	require.Equal(t, shared.RoleAdmin, claims.Role)
}

func TestTokenExpires(t *testing.T) {
	tokens := NewTokenManager("test-secret", time.Hour)
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	tokens.WithNow(func() time.Time { return base })

	signed, err := tokens.Generate("user-1", "admin@tnaoffice.cl", "Admin", shared.RoleAdmin)
	require.NoError(t, err)

	tokens.WithNow(func() time.Time { return base.Add(2 * time.Hour) })
	_, err = tokens.Verify(signed)
	require.Error(t, err)
}

func TestTokenWrongSecret(t *testing.T) {
	tokens := NewTokenManager("test-secret", time.Hour)
	other := NewTokenManager("other-secret", time.Hour)

	signed, err := tokens.Generate("user-1", "admin@tnaoffice.cl", "Admin", shared.RoleAdmin)
	require.NoError(t, err)

	_, err = other.Verify(signed)
	require.Error(t, err)
}

package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tna-office/backoffice/internal/shared"
)

type fakeRepo struct {
	users  map[string]User
	hashes map[string]string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[string]User), hashes: make(map[string]string)}
}

func (f *fakeRepo) List(ctx context.Context) ([]User, error) {
	out := make([]User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeRepo) ListComisionistas(ctx context.Context) ([]User, error) {
	var out []User
	for _, u := range f.users {
		if u.Role == shared.RoleComisionista && u.IsActive {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeRepo) Get(ctx context.Context, id string) (User, error) {
	u, ok := f.users[id]
	if !ok {
		return User{}, shared.ErrNotFound
	}
	return u, nil
}

func (f *fakeRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) Create(ctx context.Context, u User, passwordHash string) (User, error) {
	f.users[u.ID] = u
	f.hashes[u.ID] = passwordHash
	return u, nil
}

func (f *fakeRepo) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	u := f.users[id]
	if v, ok := updates["email"]; ok {
		u.Email = v.(string)
	}
	if v, ok := updates["password_hash"]; ok {
		f.hashes[id] = v.(string)
	}
	if v, ok := updates["name"]; ok {
		u.Name = v.(string)
	}
	if v, ok := updates["role"]; ok {
		u.Role = v.(string)
	}
	if v, ok := updates["profile_id"]; ok {
		pid := v.(string)
		u.ProfileID = &pid
	}
	if v, ok := updates["commission_percentage"]; ok {
		u.CommissionPercentage = v.(float64)
	}
	if v, ok := updates["is_active"]; ok {
		u.IsActive = v.(bool)
	}
	f.users[id] = u
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	delete(f.users, id)
	return nil
}

func TestCreateHashesPassword(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	user, err := svc.Create(context.Background(), CreateUserRequest{
		Email:                "carlos@tnaoffice.cl",
		Password:             "secret1",
		Name:                 "Carlos Diaz",
		Role:                 shared.RoleComisionista,
		CommissionPercentage: 10,
	})
	require.NoError(t, err)
	require.True(t, user.IsActive)

	hash := repo.hashes[user.ID]
	require.NotEqual(t, "secret1", hash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret1")))
}

func TestCreateDuplicateEmail(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	req := CreateUserRequest{
		Email:    "carlos@tnaoffice.cl",
		Password: "secret1",
		Name:     "Carlos Diaz",
		Role:     shared.RoleAdmin,
	}
	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), req)
	require.ErrorIs(t, err, shared.ErrDuplicate)
}

func TestCreateRejectsCommissionOverHundred(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Create(context.Background(), CreateUserRequest{
		Email:                "carlos@tnaoffice.cl",
		Password:             "secret1",
		Name:                 "Carlos Diaz",
		Role:                 shared.RoleComisionista,
		CommissionPercentage: 150,
	})
	require.ErrorIs(t, err, shared.ErrValidation)
}

func TestUpdateEmailConflict(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	first, err := svc.Create(context.Background(), CreateUserRequest{
		Email:    "uno@tnaoffice.cl",
		Password: "secret1",
		Name:     "Uno",
		Role:     shared.RoleAdmin,
	})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), CreateUserRequest{
		Email:    "dos@tnaoffice.cl",
		Password: "secret1",
		Name:     "Dos",
		Role:     shared.RoleAdmin,
	})
	require.NoError(t, err)

	taken := "dos@tnaoffice.cl"
	_, err = svc.Update(context.Background(), first.ID, UpdateUserRequest{Email: &taken})
	require.ErrorIs(t, err, shared.ErrDuplicate)

	// Keeping the current email is not a conflict.
	same := "uno@tnaoffice.cl"
	_, err = svc.Update(context.Background(), first.ID, UpdateUserRequest{Email: &same})
	require.NoError(t, err)
}

func TestUpdateRehashesPassword(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	user, err := svc.Create(context.Background(), CreateUserRequest{
		Email:    "carlos@tnaoffice.cl",
		Password: "secret1",
		Name:     "Carlos Diaz",
		Role:     shared.RoleAdmin,
	})
	require.NoError(t, err)
	oldHash := repo.hashes[user.ID]

	newPass := "secret2"
	_, err = svc.Update(context.Background(), user.ID, UpdateUserRequest{Password: &newPass})
	require.NoError(t, err)
	require.NotEqual(t, oldHash, repo.hashes[user.ID])
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.hashes[user.ID]), []byte("secret2")))
}

func TestListComisionistasFiltersRoleAndActive(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	agent, err := svc.Create(context.Background(), CreateUserRequest{
		Email:                "carlos@tnaoffice.cl",
		Password:             "secret1",
		Name:                 "Carlos Diaz",
		Role:                 shared.RoleComisionista,
		CommissionPercentage: 10,
	})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), CreateUserRequest{
		Email:    "admin@tnaoffice.cl",
		Password: "secret1",
		Name:     "Admin",
		Role:     shared.RoleAdmin,
	})
	require.NoError(t, err)

	agents, err := svc.ListComisionistas(context.Background())
	require.NoError(t, err)
	require.Len(t, agents, 1)
	require.Equal(t, agent.ID, agents[0].ID)

	inactive := false
	_, err = svc.Update(context.Background(), agent.ID, UpdateUserRequest{IsActive: &inactive})
	require.NoError(t, err)

	agents, err = svc.ListComisionistas(context.Background())
	require.NoError(t, err)
	require.Empty(t, agents)
}

func TestDeactivate(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	user, err := svc.Create(context.Background(), CreateUserRequest{
		Email:    "carlos@tnaoffice.cl",
		Password: "secret1",
		Name:     "Carlos Diaz",
		Role:     shared.RoleAdmin,
	})
	require.NoError(t, err)

	inactive := false
	updated, err := svc.Update(context.Background(), user.ID, UpdateUserRequest{IsActive: &inactive})
	require.NoError(t, err)
	require.False(t, updated.IsActive)
}

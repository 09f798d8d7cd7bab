package requests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tna-office/backoffice/internal/shared"
)

type fakeRepo struct {
	requests map[string]Request
	nextNum  int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{requests: make(map[string]Request), nextNum: 1}
}

func (f *fakeRepo) List(ctx context.Context) ([]Request, error) {
	out := make([]Request, 0, len(f.requests))
	for _, r := range f.requests {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRepo) Get(ctx context.Context, id string) (Request, error) {
	r, ok := f.requests[id]
	if !ok {
		return Request{}, shared.ErrNotFound
	}
	return r, nil
}

func (f *fakeRepo) Create(ctx context.Context, req *Request) error {
	req.RequestNumber = f.nextNum
	f.nextNum++
	f.requests[req.ID] = *req
	return nil
}

func (f *fakeRepo) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	r := f.requests[id]
	if v, ok := updates["status"]; ok {
		r.Status = v.(string)
	}
	if v, ok := updates["priority"]; ok {
		r.Priority = v.(string)
	}
	if v, ok := updates["assigned_to"]; ok {
		s := v.(string)
		r.AssignedTo = &s
	}
	if v, ok := updates["notes"]; ok {
		r.Notes = v.(string)
	}
	if v, ok := updates["updated_at"]; ok {
		r.UpdatedAt = v.(time.Time)
	}
	f.requests[id] = r
	return nil
}

func (f *fakeRepo) CountNew(ctx context.Context) (int, error) {
	n := 0
	for _, r := range f.requests {
		if r.Status == StatusNew {
			n++
		}
	}
	return n, nil
}

func strPtr(s string) *string { return &s }

func TestCreateMirrorsContactColumns(t *testing.T) {
	svc := NewService(newFakeRepo())

	// Legacy family in, client_* mirrored.
	req, err := svc.Create(context.Background(), CreateRequestRequest{
		Name:  "Maria Soto",
		Email: "maria@example.com",
		Phone: "+56 9 1234 5678",
	})
	require.NoError(t, err)
	require.Equal(t, "Maria Soto", req.ClientName)
	require.Equal(t, "maria@example.com", req.ClientEmail)
	require.Equal(t, "+56 9 1234 5678", req.ClientPhone)

	// client_* family in, legacy mirrored.
	req, err = svc.Create(context.Background(), CreateRequestRequest{
		ClientName:  "Pedro Rojas",
		ClientEmail: "pedro@example.com",
		CompanyName: "Rojas SpA",
	})
	require.NoError(t, err)
	require.Equal(t, "Pedro Rojas", req.Name)
	require.Equal(t, "pedro@example.com", req.Email)
	require.Equal(t, "Rojas SpA", req.Company)
}

func TestCreateDefaults(t *testing.T) {
	svc := NewService(newFakeRepo())

	req, err := svc.Create(context.Background(), CreateRequestRequest{Name: "Maria Soto"})
	require.NoError(t, err)
	require.Equal(t, "contact", req.Type)
	require.Equal(t, "contact", req.RequestType)
	require.Equal(t, StatusNew, req.Status)
	require.Equal(t, "medium", req.Priority)
	require.Equal(t, int64(1), req.RequestNumber)
}

func TestCreateKeepsExplicitType(t *testing.T) {
	svc := NewService(newFakeRepo())

	req, err := svc.Create(context.Background(), CreateRequestRequest{
		Name:        "Maria Soto",
		Type:        "quote",
		RequestType: "quote",
		Source:      "fanpage",
	})
	require.NoError(t, err)
	require.Equal(t, "quote", req.Type)
	require.Equal(t, "quote", req.RequestType)
	require.Equal(t, "fanpage", req.Source)
}

func TestCreateRejectsBadEmail(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Create(context.Background(), CreateRequestRequest{Email: "not-an-email"})
	require.ErrorIs(t, err, shared.ErrValidation)
}

func TestUpdateStampsUpdatedAt(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }

	req, err := svc.Create(context.Background(), CreateRequestRequest{Name: "Maria Soto"})
	require.NoError(t, err)

	later := base.Add(48 * time.Hour)
	svc.now = func() time.Time { return later }

	updated, err := svc.Update(context.Background(), req.ID, UpdateRequestRequest{
		Status:     strPtr(StatusInProgress),
		AssignedTo: strPtr("user-1"),
	})
	require.NoError(t, err)
	require.Equal(t, StatusInProgress, updated.Status)
	require.Equal(t, later, updated.UpdatedAt)
}

func TestUpdateRejectsBadStatus(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Update(context.Background(), "any", UpdateRequestRequest{Status: strPtr("archived")})
	require.ErrorIs(t, err, shared.ErrValidation)
}

func TestCountNew(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	first, err := svc.Create(context.Background(), CreateRequestRequest{Name: "Uno"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), CreateRequestRequest{Name: "Dos"})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), first.ID, UpdateRequestRequest{Status: strPtr(StatusResolved)})
	require.NoError(t, err)

	n, err := svc.CountNew(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

package quotes

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tna-office/backoffice/internal/shared"
)

type fakeRepo struct {
	quotes    map[string]Quote
	templates map[string]Template
	enquiries []PublicQuoteRequest
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		quotes:    make(map[string]Quote),
		templates: make(map[string]Template),
	}
}

func (f *fakeRepo) List(ctx context.Context) ([]Quote, error) {
	out := make([]Quote, 0, len(f.quotes))
	for _, q := range f.quotes {
		out = append(out, q)
	}
	return out, nil
}

func (f *fakeRepo) Get(ctx context.Context, id string) (Quote, error) {
	q, ok := f.quotes[id]
	if !ok {
		return Quote{}, shared.ErrNotFound
	}
	return q, nil
}

func (f *fakeRepo) Create(ctx context.Context, q *Quote) error {
	q.QuoteNumber = int64(len(f.quotes) + 1)
	f.quotes[q.ID] = *q
	return nil
}

func (f *fakeRepo) CreateWithRequest(ctx context.Context, q *Quote, req PublicQuoteRequest) error {
	if err := f.Create(ctx, q); err != nil {
		return err
	}
	f.enquiries = append(f.enquiries, req)
	return nil
}

func (f *fakeRepo) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	q, ok := f.quotes[id]
	if !ok {
		return shared.ErrNotFound
	}
	if v, ok := updates["status"]; ok {
		q.Status = v.(string)
	}
	if v, ok := updates["total"]; ok {
		q.Total = v.(float64)
	}
	f.quotes[id] = q
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	delete(f.quotes, id)
	return nil
}

func (f *fakeRepo) CountByStatus(ctx context.Context, statuses []string) (int, error) {
	n := 0
	for _, q := range f.quotes {
		for _, s := range statuses {
			if q.Status == s {
				n++
			}
		}
	}
	return n, nil
}

func (f *fakeRepo) ListTemplates(ctx context.Context) ([]Template, error) {
	out := make([]Template, 0, len(f.templates))
	for _, t := range f.templates {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeRepo) GetTemplate(ctx context.Context, id string) (Template, error) {
	t, ok := f.templates[id]
	if !ok {
		return Template{}, shared.ErrNotFound
	}
	return t, nil
}

func (f *fakeRepo) CreateTemplate(ctx context.Context, t Template) error {
	f.templates[t.ID] = t
	return nil
}

func (f *fakeRepo) UpdateTemplate(ctx context.Context, id string, updates map[string]interface{}) error {
	t, ok := f.templates[id]
	if !ok {
		return shared.ErrNotFound
	}
	if v, ok := updates["name"]; ok {
		t.Name = v.(string)
	}
	if v, ok := updates["is_default"]; ok {
		t.IsDefault = v.(bool)
	}
	f.templates[id] = t
	return nil
}

func (f *fakeRepo) DeleteTemplate(ctx context.Context, id string) error {
	delete(f.templates, id)
	return nil
}

func strPtr(s string) *string { return &s }

func TestCreateDefaultsToDraft(t *testing.T) {
	svc := NewService(newFakeRepo())

	q, err := svc.Create(context.Background(), CreateQuoteRequest{ClientName: "Rojas SpA"}, nil)
	require.NoError(t, err)
	require.Equal(t, StatusDraft, q.Status)
	require.Equal(t, int64(1), q.QuoteNumber)
}

func TestCreatePublicCreatesQuoteAndEnquiry(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	q, err := svc.CreatePublic(context.Background(), PublicQuoteRequest{
		ClientName:    "Maria Soto",
		ClientEmail:   "maria@example.com",
		ClientCompany: "Soto Ltda",
		Message:       "Necesito 3 puestos",
	})
	require.NoError(t, err)
	require.Equal(t, StatusPreCotizacion, q.Status)
	require.Equal(t, "Soto Ltda", q.CompanyName)
	require.Equal(t, "Necesito 3 puestos", q.Notes)
	require.Len(t, repo.enquiries, 1)
	require.Equal(t, "Maria Soto", repo.enquiries[0].ClientName)
}

func TestCreatePublicRequiresName(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.CreatePublic(context.Background(), PublicQuoteRequest{Message: "hola"})
	require.ErrorIs(t, err, shared.ErrValidation)
}

func TestPendingCountsIncludePreQuotes(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateQuoteRequest{ClientName: "Uno"}, nil)
	require.NoError(t, err)
	_, err = svc.CreatePublic(context.Background(), PublicQuoteRequest{ClientName: "Dos"})
	require.NoError(t, err)
	sent, err := svc.Create(context.Background(), CreateQuoteRequest{ClientName: "Tres"}, nil)
	require.NoError(t, err)
	_, err = svc.Update(context.Background(), sent.ID, UpdateQuoteRequest{Status: strPtr(StatusSent)})
	require.NoError(t, err)

	drafts, err := svc.CountDraft(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, drafts)

	pending, err := svc.CountPending(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, pending)
}

func TestUpdateStatus(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	q, err := svc.Create(context.Background(), CreateQuoteRequest{ClientName: "Rojas SpA"}, nil)
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), q.ID, UpdateQuoteRequest{Status: strPtr(StatusAccepted)})
	require.NoError(t, err)
	require.Equal(t, StatusAccepted, updated.Status)

	_, err = svc.Update(context.Background(), q.ID, UpdateQuoteRequest{Status: strPtr("bogus")})
	require.ErrorIs(t, err, shared.ErrValidation)
}

func TestTemplateLifecycle(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	tpl, err := svc.CreateTemplate(context.Background(), CreateTemplateRequest{
		Name:    "Oferta estandar",
		Content: "Estimado {{client_name}}",
	})
	require.NoError(t, err)
	require.NotEmpty(t, tpl.ID)

	isDefault := true
	updated, err := svc.UpdateTemplate(context.Background(), tpl.ID, UpdateTemplateRequest{IsDefault: &isDefault})
	require.NoError(t, err)
	require.True(t, updated.IsDefault)

	require.NoError(t, svc.DeleteTemplate(context.Background(), tpl.ID))
	_, err = svc.GetTemplate(context.Background(), tpl.ID)
	require.ErrorIs(t, err, shared.ErrNotFound)
}

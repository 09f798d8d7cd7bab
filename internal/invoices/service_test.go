package invoices

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tna-office/backoffice/internal/shared"
)

type fakeRepo struct {
	invoices map[string]Invoice
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{invoices: make(map[string]Invoice)}
}

func (f *fakeRepo) List(ctx context.Context) ([]Invoice, error) {
	out := make([]Invoice, 0, len(f.invoices))
	for _, inv := range f.invoices {
		out = append(out, inv)
	}
	return out, nil
}

func (f *fakeRepo) ListPending(ctx context.Context) ([]Invoice, error) {
	var out []Invoice
	for _, inv := range f.invoices {
		switch inv.Status {
		case StatusDraft, StatusPending, StatusSent:
			out = append(out, inv)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListHistory(ctx context.Context) ([]Invoice, error) {
	var out []Invoice
	for _, inv := range f.invoices {
		if inv.Status == StatusInvoiced {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (f *fakeRepo) Get(ctx context.Context, id string) (Invoice, error) {
	inv, ok := f.invoices[id]
	if !ok {
		return Invoice{}, shared.ErrNotFound
	}
	return inv, nil
}

func (f *fakeRepo) Create(ctx context.Context, inv Invoice) error {
	f.invoices[inv.ID] = inv
	return nil
}

func (f *fakeRepo) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	inv, ok := f.invoices[id]
	if !ok {
		return shared.ErrNotFound
	}
	if v, ok := updates["status"]; ok {
		inv.Status = v.(string)
	}
	if v, ok := updates["invoiced_at"]; ok {
		ts := v.(time.Time)
		inv.InvoicedAt = &ts
	}
	f.invoices[id] = inv
	return nil
}

func TestCreateGeneratesNumber(t *testing.T) {
	svc := NewService(newFakeRepo())
	svc.now = func() time.Time { return time.Date(2026, 3, 15, 14, 30, 45, 0, time.UTC) }

	inv, err := svc.Create(context.Background(), CreateInvoiceRequest{
		ClientName:  "Rojas SpA",
		TotalAmount: 119000,
	})
	require.NoError(t, err)
	require.Equal(t, "INV-20260315143045", inv.InvoiceNumber)
	require.Equal(t, StatusPending, inv.Status)
}

func TestCreateKeepsExplicitNumberAndStatus(t *testing.T) {
	svc := NewService(newFakeRepo())

	inv, err := svc.Create(context.Background(), CreateInvoiceRequest{
		InvoiceNumber: "F-0042",
		Status:        StatusDraft,
	})
	require.NoError(t, err)
	require.Equal(t, "F-0042", inv.InvoiceNumber)
	require.Equal(t, StatusDraft, inv.Status)
}

func TestCreateRejectsNegativeTotal(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Create(context.Background(), CreateInvoiceRequest{TotalAmount: -1})
	require.ErrorIs(t, err, shared.ErrValidation)
}

func TestUpdateStatusInvoicedStampsTimestamp(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	inv, err := svc.Create(context.Background(), CreateInvoiceRequest{ClientName: "Rojas SpA"})
	require.NoError(t, err)
	require.Nil(t, inv.InvoicedAt)

	stamp := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return stamp }

	updated, err := svc.UpdateStatus(context.Background(), inv.ID, StatusRequest{Status: StatusInvoiced})
	require.NoError(t, err)
	require.Equal(t, StatusInvoiced, updated.Status)
	require.NotNil(t, updated.InvoicedAt)
	require.Equal(t, stamp, *updated.InvoicedAt)
}

func TestUpdateStatusOtherTransitionsDoNotStamp(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	inv, err := svc.Create(context.Background(), CreateInvoiceRequest{})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), inv.ID, StatusRequest{Status: StatusSent})
	require.NoError(t, err)
	require.Equal(t, StatusSent, updated.Status)
	require.Nil(t, updated.InvoicedAt)
}

func TestUpdateStatusRejectsUnknown(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.UpdateStatus(context.Background(), "any", StatusRequest{Status: "archived"})
	require.ErrorIs(t, err, shared.ErrValidation)
}

func TestPendingAndHistorySplit(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	pending, err := svc.Create(context.Background(), CreateInvoiceRequest{ClientName: "Pendiente"})
	require.NoError(t, err)
	billed, err := svc.Create(context.Background(), CreateInvoiceRequest{ClientName: "Facturada"})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), billed.ID, StatusRequest{Status: StatusInvoiced})
	require.NoError(t, err)

	open, err := svc.ListPending(context.Background())
	require.NoError(t, err)
	require.Len(t, open, 1)
	require.Equal(t, pending.ID, open[0].ID)

	history, err := svc.ListHistory(context.Background())
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Equal(t, billed.ID, history[0].ID)
}

package tickets

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tna-office/backoffice/internal/shared"
)

type fakeUser struct {
	name string
	pct  float64
}

type fakeProduct struct {
	name     string
	category string
	price    float64
}

type fakeRepo struct {
	tickets  map[string]Ticket
	items    map[string][]Item
	users    map[string]fakeUser
	products map[string]fakeProduct
	nextNum  int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		tickets:  map[string]Ticket{},
		items:    map[string][]Item{},
		users:    map[string]fakeUser{},
		products: map[string]fakeProduct{},
	}
}

func (f *fakeRepo) WithTx(ctx context.Context, fn func(RepositoryPort) error) error {
	return fn(f)
}

func (f *fakeRepo) List(ctx context.Context) ([]Ticket, error) {
	out := make([]Ticket, 0, len(f.tickets))
	for id, t := range f.tickets {
		t.Items = f.items[id]
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeRepo) Get(ctx context.Context, id string) (Ticket, error) {
	t, ok := f.tickets[id]
	if !ok {
		return Ticket{}, shared.ErrNotFound
	}
	t.Items = f.items[id]
	if t.Items == nil {
		t.Items = []Item{}
	}
	return t, nil
}

func (f *fakeRepo) CreateTicket(ctx context.Context, t *Ticket) error {
	f.nextNum++
	t.TicketNumber = f.nextNum
	stored := *t
	stored.Items = nil
	f.tickets[t.ID] = stored
	return nil
}

func (f *fakeRepo) CreateItem(ctx context.Context, it Item) error {
	f.items[it.TicketID] = append(f.items[it.TicketID], it)
	return nil
}

func (f *fakeRepo) DeleteItems(ctx context.Context, ticketID string) error {
	delete(f.items, ticketID)
	return nil
}

func (f *fakeRepo) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	t, ok := f.tickets[id]
	if !ok {
		return shared.ErrNotFound
	}
	for key, value := range updates {
		switch key {
		case "client_name":
			t.ClientName = value.(string)
		case "client_email":
			t.ClientEmail = value.(string)
		case "notes":
			t.Notes = value.(string)
		case "status":
			t.Status = value.(string)
		case "comisionista_id":
			t.ComisionistaID = optString(value)
		case "comisionista_name":
			t.ComisionistaName = optString(value)
		case "subtotal":
			t.Subtotal = value.(float64)
		case "total_amount":
			t.TotalAmount = value.(float64)
		case "total_commission":
			t.TotalCommission = value.(float64)
		case "payment_status":
			t.PaymentStatus = value.(string)
		case "payment_method":
			method := value.(string)
			t.PaymentMethod = &method
		case "payment_date":
			date := value.(time.Time)
			t.PaymentDate = &date
		case "commission_status":
			t.CommissionStatus = value.(string)
		case "commission_paid_date":
			date := value.(time.Time)
			t.CommissionPaidDate = &date
		}
	}
	f.tickets[id] = t
	return nil
}

func optString(value interface{}) *string {
	if value == nil {
		return nil
	}
	s := value.(string)
	return &s
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.tickets[id]; !ok {
		return shared.ErrNotFound
	}
	delete(f.tickets, id)
	delete(f.items, id)
	return nil
}

func (f *fakeRepo) GetComisionista(ctx context.Context, userID string) (string, float64, bool, error) {
	u, ok := f.users[userID]
	if !ok {
		return "", 0, false, nil
	}
	return u.name, u.pct, true, nil
}

func (f *fakeRepo) GetProductSnapshot(ctx context.Context, productID string) (string, string, float64, bool, error) {
	p, ok := f.products[productID]
	if !ok {
		return "", "", 0, false, nil
	}
	return p.name, p.category, p.price, true, nil
}

func strPtr(s string) *string { return &s }

func TestCreateComputesTotalsAndCommission(t *testing.T) {
	repo := newFakeRepo()
	repo.users["u1"] = fakeUser{name: "Maria", pct: 10}
	repo.products["p1"] = fakeProduct{name: "Cafe", category: "cafeteria", price: 1500}

	svc := NewService(repo)
	ticket, err := svc.Create(context.Background(), CreateTicketRequest{
		ClientName:     "Acme",
		ComisionistaID: strPtr("u1"),
		Items: []ItemInput{
			{ProductID: strPtr("p1"), Quantity: 2, UnitPrice: 9999},
			{ProductName: "Impresion", Quantity: 0, UnitPrice: 500},
		},
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(1), ticket.TicketNumber)
	require.Len(t, ticket.Items, 2)

	// catalog price wins over the caller supplied one
	assert.Equal(t, "Cafe", ticket.Items[0].ProductName)
	assert.Equal(t, 1500.0, ticket.Items[0].UnitPrice)
	assert.Equal(t, 3000.0, ticket.Items[0].Subtotal)

	// free-form line with zero quantity defaults to 1
	assert.Equal(t, 1, ticket.Items[1].Quantity)
	assert.Equal(t, 500.0, ticket.Items[1].Subtotal)

	assert.Equal(t, 3500.0, ticket.Subtotal)
	assert.Equal(t, 3500.0, ticket.TotalAmount)
	assert.Equal(t, 350.0, ticket.TotalCommission)
	require.NotNil(t, ticket.ComisionistaName)
	assert.Equal(t, "Maria", *ticket.ComisionistaName)
	assert.Equal(t, StatusPending, ticket.Status)
	assert.Equal(t, PaymentPending, ticket.PaymentStatus)
}

func TestCreateUnknownComisionistaKeepsIDWithoutSnapshot(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	ticket, err := svc.Create(context.Background(), CreateTicketRequest{
		ClientName:     "Acme",
		ComisionistaID: strPtr("ghost"),
		Items:          []ItemInput{{ProductName: "Sala", Quantity: 1, UnitPrice: 1000}},
	}, nil)
	require.NoError(t, err)

	require.NotNil(t, ticket.ComisionistaID)
	assert.Equal(t, "ghost", *ticket.ComisionistaID)
	assert.Nil(t, ticket.ComisionistaName)
	assert.Zero(t, ticket.TotalCommission)
}

func TestCreateRequiresItemsAndClientName(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Create(context.Background(), CreateTicketRequest{ClientName: "Acme"}, nil)
	assert.ErrorIs(t, err, shared.ErrValidation)

	_, err = svc.Create(context.Background(), CreateTicketRequest{
		Items: []ItemInput{{ProductName: "Sala", UnitPrice: 100}},
	}, nil)
	assert.ErrorIs(t, err, shared.ErrValidation)
}

func TestCreateTrimsClientNameAndRejectsBlank(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateTicketRequest{
		ClientName: "   ",
		Items:      []ItemInput{{ProductName: "Sala", Quantity: 1, UnitPrice: 1000}},
	}, nil)
	assert.ErrorIs(t, err, shared.ErrValidation)
	assert.Empty(t, repo.tickets)

	ticket, err := svc.Create(context.Background(), CreateTicketRequest{
		ClientName: "  Acme  ",
		Items:      []ItemInput{{ProductName: "Sala", Quantity: 1, UnitPrice: 1000}},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Acme", ticket.ClientName)
	assert.Equal(t, "Acme", repo.tickets[ticket.ID].ClientName)
}

func TestCreateUnnamedFreeFormLineGetsDefaultName(t *testing.T) {
	svc := NewService(newFakeRepo())

	ticket, err := svc.Create(context.Background(), CreateTicketRequest{
		ClientName: "Acme",
		Items:      []ItemInput{{Quantity: 1, UnitPrice: 100}},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Producto", ticket.Items[0].ProductName)
}

func TestUpdateReplacesItemsAndRecomputes(t *testing.T) {
	repo := newFakeRepo()
	repo.users["u1"] = fakeUser{name: "Maria", pct: 20}
	svc := NewService(repo)

	ticket, err := svc.Create(context.Background(), CreateTicketRequest{
		ClientName:     "Acme",
		ComisionistaID: strPtr("u1"),
		Items:          []ItemInput{{ProductName: "Sala", Quantity: 1, UnitPrice: 1000}},
	}, nil)
	require.NoError(t, err)

	items := []ItemInput{
		{ProductName: "Sala grande", Quantity: 2, UnitPrice: 2000},
	}
	updated, err := svc.Update(context.Background(), ticket.ID, UpdateTicketRequest{
		Notes: strPtr("upgraded"),
		Items: &items,
	})
	require.NoError(t, err)

	require.Len(t, updated.Items, 1)
	assert.Equal(t, "Sala grande", updated.Items[0].ProductName)
	assert.Equal(t, 4000.0, updated.Subtotal)
	assert.Equal(t, 4000.0, updated.TotalAmount)
	assert.Equal(t, 800.0, updated.TotalCommission)
	assert.Equal(t, "upgraded", updated.Notes)
}

func TestUpdateEmptyClientNameIgnored(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	ticket, err := svc.Create(context.Background(), CreateTicketRequest{
		ClientName: "Acme",
		Items:      []ItemInput{{ProductName: "Sala", Quantity: 1, UnitPrice: 1000}},
	}, nil)
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), ticket.ID, UpdateTicketRequest{
		ClientName: strPtr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme", updated.ClientName)

	updated, err = svc.Update(context.Background(), ticket.ID, UpdateTicketRequest{
		ClientName: strPtr("  \t "),
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme", updated.ClientName)
}

func TestUpdateRejectsNegativeItemPrice(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	ticket, err := svc.Create(context.Background(), CreateTicketRequest{
		ClientName: "Acme",
		Items:      []ItemInput{{ProductName: "Sala", Quantity: 1, UnitPrice: 1000}},
	}, nil)
	require.NoError(t, err)

	items := []ItemInput{{ProductName: "Sala", Quantity: 1, UnitPrice: -500}}
	_, err = svc.Update(context.Background(), ticket.ID, UpdateTicketRequest{
		Items: &items,
	})
	assert.ErrorIs(t, err, shared.ErrValidation)

	kept, err := svc.Get(context.Background(), ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, kept.TotalAmount)
	assert.Equal(t, 1000.0, kept.Items[0].UnitPrice)
}

func TestUpdateClearsComisionista(t *testing.T) {
	repo := newFakeRepo()
	repo.users["u1"] = fakeUser{name: "Maria", pct: 10}
	svc := NewService(repo)

	ticket, err := svc.Create(context.Background(), CreateTicketRequest{
		ClientName:     "Acme",
		ComisionistaID: strPtr("u1"),
		Items:          []ItemInput{{ProductName: "Sala", Quantity: 1, UnitPrice: 1000}},
	}, nil)
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), ticket.ID, UpdateTicketRequest{
		ComisionistaID: strPtr(""),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.ComisionistaID)
	assert.Nil(t, updated.ComisionistaName)
}

func TestUpdatePaymentPaidStampsDateAndCompletes(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	stamp := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return stamp }

	ticket, err := svc.Create(context.Background(), CreateTicketRequest{
		ClientName: "Acme",
		Items:      []ItemInput{{ProductName: "Sala", Quantity: 1, UnitPrice: 1000}},
	}, nil)
	require.NoError(t, err)

	method := "transferencia"
	updated, err := svc.UpdatePayment(context.Background(), ticket.ID, PaymentRequest{
		PaymentStatus: PaymentPaid,
		PaymentMethod: &method,
	})
	require.NoError(t, err)

	assert.Equal(t, PaymentPaid, updated.PaymentStatus)
	assert.Equal(t, StatusCompleted, updated.Status)
	require.NotNil(t, updated.PaymentDate)
	assert.Equal(t, stamp, *updated.PaymentDate)
	require.NotNil(t, updated.PaymentMethod)
	assert.Equal(t, "transferencia", *updated.PaymentMethod)
}

func TestUpdatePaymentRejectsUnknownStatus(t *testing.T) {
	svc := NewService(newFakeRepo())
	_, err := svc.UpdatePayment(context.Background(), "t1", PaymentRequest{PaymentStatus: "maybe"})
	assert.ErrorIs(t, err, shared.ErrValidation)
}

func TestUpdateCommissionPaidStampsDate(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	stamp := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return stamp }

	ticket, err := svc.Create(context.Background(), CreateTicketRequest{
		ClientName: "Acme",
		Items:      []ItemInput{{ProductName: "Sala", Quantity: 1, UnitPrice: 1000}},
	}, nil)
	require.NoError(t, err)

	updated, err := svc.UpdateCommission(context.Background(), ticket.ID, CommissionRequest{
		CommissionStatus: CommissionPaid,
	})
	require.NoError(t, err)
	assert.Equal(t, CommissionPaid, updated.CommissionStatus)
	require.NotNil(t, updated.CommissionPaidDate)
	assert.Equal(t, stamp, *updated.CommissionPaidDate)
}

func TestDeleteRemovesTicketAndItems(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	ticket, err := svc.Create(context.Background(), CreateTicketRequest{
		ClientName: "Acme",
		Items:      []ItemInput{{ProductName: "Sala", Quantity: 1, UnitPrice: 1000}},
	}, nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), ticket.ID))
	_, err = svc.Get(context.Background(), ticket.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), ticket.ID), shared.ErrNotFound)
}

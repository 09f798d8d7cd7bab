package sales

import (
	"context"
	"testing"
	"time"

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
	sales    map[string]Sale
	users    map[string]fakeUser
	products map[string]fakeProduct
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		sales:    make(map[string]Sale),
		users:    make(map[string]fakeUser),
		products: make(map[string]fakeProduct),
	}
}

func (f *fakeRepo) List(ctx context.Context) ([]Sale, error) {
	out := make([]Sale, 0, len(f.sales))
	for _, s := range f.sales {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeRepo) Get(ctx context.Context, id string) (Sale, error) {
	s, ok := f.sales[id]
	if !ok {
		return Sale{}, shared.ErrNotFound
	}
	return s, nil
}

func (f *fakeRepo) Create(ctx context.Context, s Sale) error {
	f.sales[s.ID] = s
	return nil
}

func (f *fakeRepo) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	s, ok := f.sales[id]
	if !ok {
		return shared.ErrNotFound
	}
	if v, ok := updates["payment_status"]; ok {
		s.PaymentStatus = v.(string)
	}
	if v, ok := updates["commission_status"]; ok {
		s.CommissionStatus = v.(string)
	}
	f.sales[id] = s
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

func TestCreateUsesCatalogSnapshot(t *testing.T) {
	repo := newFakeRepo()
	repo.products["prod-1"] = fakeProduct{name: "Café Premium", category: "cafeteria", price: 3500}
	svc := NewService(repo)

	sale, err := svc.Create(context.Background(), CreateSaleRequest{
		ProductID:   strPtr("prod-1"),
		ProductName: "ignored",
		UnitPrice:   1,
		Quantity:    2,
	}, nil)
	require.NoError(t, err)
	require.Equal(t, "Café Premium", sale.ProductName)
	require.Equal(t, "cafeteria", sale.Category)
	require.Equal(t, 3500.0, sale.UnitPrice)
	require.Equal(t, 7000.0, sale.TotalAmount)
}

func TestCreateFallsBackToCallerValues(t *testing.T) {
	svc := NewService(newFakeRepo())

	sale, err := svc.Create(context.Background(), CreateSaleRequest{
		ProductID:   strPtr("missing"),
		ProductName: "Arriendo proyector",
		UnitPrice:   15000,
	}, nil)
	require.NoError(t, err)
	require.Equal(t, "Arriendo proyector", sale.ProductName)
	require.Equal(t, 1, sale.Quantity)
	require.Equal(t, 15000.0, sale.TotalAmount)
}

func TestCreateDefaultsProductName(t *testing.T) {
	svc := NewService(newFakeRepo())

	sale, err := svc.Create(context.Background(), CreateSaleRequest{UnitPrice: 100}, nil)
	require.NoError(t, err)
	require.Equal(t, "Producto", sale.ProductName)
}

func TestCreateComputesCommission(t *testing.T) {
	repo := newFakeRepo()
	repo.users["user-1"] = fakeUser{name: "Carlos Diaz", pct: 10}
	svc := NewService(repo)

	sale, err := svc.Create(context.Background(), CreateSaleRequest{
		ProductName:    "Sala por hora",
		UnitPrice:      20000,
		Quantity:       3,
		ComisionistaID: strPtr("user-1"),
	}, nil)
	require.NoError(t, err)
	require.NotNil(t, sale.ComisionistaName)
	require.Equal(t, "Carlos Diaz", *sale.ComisionistaName)
	require.Equal(t, 10.0, sale.CommissionPercentage)
	require.Equal(t, 6000.0, sale.CommissionAmount)
}

func TestCreateUnknownComisionistaKeepsID(t *testing.T) {
	svc := NewService(newFakeRepo())

	sale, err := svc.Create(context.Background(), CreateSaleRequest{
		UnitPrice:      100,
		ComisionistaID: strPtr("ghost"),
	}, nil)
	require.NoError(t, err)
	require.NotNil(t, sale.ComisionistaID)
	require.Equal(t, "ghost", *sale.ComisionistaID)
	require.Nil(t, sale.ComisionistaName)
	require.Zero(t, sale.CommissionAmount)
}

func TestCreateStampsSaleDate(t *testing.T) {
	svc := NewService(newFakeRepo())
	svc.now = func() time.Time { return time.Date(2026, 3, 15, 16, 20, 0, 0, time.UTC) }

	sale, err := svc.Create(context.Background(), CreateSaleRequest{UnitPrice: 100}, nil)
	require.NoError(t, err)
	require.NotNil(t, sale.SaleDate)
	require.Equal(t, "2026-03-15", sale.SaleDate.String())
	require.Equal(t, "pending", sale.PaymentStatus)
	require.Equal(t, "pending", sale.CommissionStatus)
}

func TestUpdatePaymentStatusOnly(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	sale, err := svc.Create(context.Background(), CreateSaleRequest{UnitPrice: 100}, nil)
	require.NoError(t, err)

	updated, err := svc.UpdatePayment(context.Background(), sale.ID, PaymentRequest{PaymentStatus: "paid"})
	require.NoError(t, err)
	require.Equal(t, "paid", updated.PaymentStatus)

	_, err = svc.UpdatePayment(context.Background(), sale.ID, PaymentRequest{PaymentStatus: "invoiced"})
	require.ErrorIs(t, err, shared.ErrValidation)
}

func TestUpdateCommissionStatusOnly(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	sale, err := svc.Create(context.Background(), CreateSaleRequest{UnitPrice: 100}, nil)
	require.NoError(t, err)

	updated, err := svc.UpdateCommission(context.Background(), sale.ID, CommissionRequest{CommissionStatus: "paid"})
	require.NoError(t, err)
	require.Equal(t, "paid", updated.CommissionStatus)
}

package sales

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tna-office/backoffice/internal/shared"
)

type RepositoryPort interface {
	List(ctx context.Context) ([]Sale, error)
	Get(ctx context.Context, id string) (Sale, error)
	Create(ctx context.Context, s Sale) error
	Update(ctx context.Context, id string, updates map[string]interface{}) error
	GetComisionista(ctx context.Context, userID string) (name string, pct float64, found bool, err error)
	GetProductSnapshot(ctx context.Context, productID string) (name, category string, price float64, found bool, err error)
}

type Service struct {
	repo RepositoryPort
	now  func() time.Time
}

func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]Sale, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, req CreateSaleRequest, createdBy *string) (Sale, error) {
	if err := shared.ValidateStruct(req); err != nil {
		return Sale{}, err
	}

	name := req.ProductName
	category := req.Category
	price := req.UnitPrice
	if req.ProductID != nil && *req.ProductID != "" {
		pName, pCategory, pPrice, found, err := s.repo.GetProductSnapshot(ctx, *req.ProductID)
		if err != nil {
			return Sale{}, err
		}
		if found {
			name, category, price = pName, pCategory, pPrice
		}
	}
	if name == "" {
		name = "Producto"
	}

	qty := req.Quantity
	if qty <= 0 {
		qty = 1
	}
	total := float64(qty) * price

	sale := Sale{
		ID:               uuid.NewString(),
		ProductID:        req.ProductID,
		ProductName:      name,
		Category:         category,
		Quantity:         qty,
		UnitPrice:        price,
		TotalAmount:      total,
		ClientName:       req.ClientName,
		ClientEmail:      req.ClientEmail,
		ComisionistaID:   req.ComisionistaID,
		PaymentStatus:    "pending",
		CommissionStatus: "pending",
		Notes:            req.Notes,
		CreatedBy:        createdBy,
		CreatedAt:        s.now(),
	}
	today := shared.NewDate(s.now())
	sale.SaleDate = &today

	if req.ComisionistaID != nil && *req.ComisionistaID != "" {
		uName, pct, found, err := s.repo.GetComisionista(ctx, *req.ComisionistaID)
		if err != nil {
			return Sale{}, err
		}
		if found {
			sale.ComisionistaName = &uName
			sale.CommissionPercentage = pct
			sale.CommissionAmount = total * pct / 100
		}
	}

	if err := s.repo.Create(ctx, sale); err != nil {
		return Sale{}, err
	}
	return sale, nil
}

func (s *Service) UpdatePayment(ctx context.Context, id string, req PaymentRequest) (Sale, error) {
	if err := shared.ValidateStruct(req); err != nil {
		return Sale{}, err
	}
	if err := s.repo.Update(ctx, id, map[string]interface{}{"payment_status": req.PaymentStatus}); err != nil {
		return Sale{}, err
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) UpdateCommission(ctx context.Context, id string, req CommissionRequest) (Sale, error) {
	if err := shared.ValidateStruct(req); err != nil {
		return Sale{}, err
	}
	if err := s.repo.Update(ctx, id, map[string]interface{}{"commission_status": req.CommissionStatus}); err != nil {
		return Sale{}, err
	}
	return s.repo.Get(ctx, id)
}

package tickets

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tna-office/backoffice/internal/shared"
)

// RepositoryPort is the storage contract the service depends on.
type RepositoryPort interface {
	WithTx(ctx context.Context, fn func(RepositoryPort) error) error
	List(ctx context.Context) ([]Ticket, error)
	Get(ctx context.Context, id string) (Ticket, error)
	CreateTicket(ctx context.Context, t *Ticket) error
	CreateItem(ctx context.Context, it Item) error
	DeleteItems(ctx context.Context, ticketID string) error
	Update(ctx context.Context, id string, updates map[string]interface{}) error
	Delete(ctx context.Context, id string) error
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

func (s *Service) List(ctx context.Context) ([]Ticket, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Ticket, error) {
	return s.repo.Get(ctx, id)
}

// buildItem resolves one ticket line. Catalog products override the caller
// supplied price and naming; free-form lines keep what the caller sent.
func buildItem(ctx context.Context, repo RepositoryPort, ticketID string, in ItemInput, pct float64, now time.Time) (Item, error) {
	qty := in.Quantity
	if qty <= 0 {
		qty = 1
	}
	name := in.ProductName
	category := in.Category
	price := in.UnitPrice
	if in.ProductID != nil && *in.ProductID != "" {
		pName, pCategory, pPrice, found, err := repo.GetProductSnapshot(ctx, *in.ProductID)
		if err != nil {
			return Item{}, err
		}
		if found {
			name, category, price = pName, pCategory, pPrice
		}
	}
	if name == "" {
		name = "Producto"
	}
	subtotal := price * float64(qty)
	return Item{
		ID:                   uuid.NewString(),
		TicketID:             ticketID,
		ProductID:            in.ProductID,
		ProductName:          name,
		Category:             category,
		Quantity:             qty,
		UnitPrice:            price,
		Subtotal:             subtotal,
		CommissionPercentage: pct,
		CommissionAmount:     subtotal * pct / 100,
		CreatedAt:            now,
	}, nil
}

func (s *Service) Create(ctx context.Context, req CreateTicketRequest, createdBy *string) (Ticket, error) {
	if err := shared.ValidateStruct(req); err != nil {
		return Ticket{}, err
	}
	req.ClientName = strings.TrimSpace(req.ClientName)
	if req.ClientName == "" {
		return Ticket{}, shared.Validationf("client_name is required")
	}

	now := s.now()
	t := Ticket{
		ID:               uuid.NewString(),
		ClientID:         req.ClientID,
		ClientName:       req.ClientName,
		ClientEmail:      req.ClientEmail,
		TicketDate:       now,
		ComisionistaID:   req.ComisionistaID,
		PaymentStatus:    PaymentPending,
		CommissionStatus: CommissionPending,
		Status:           StatusPending,
		Notes:            req.Notes,
		CreatedBy:        createdBy,
		CreatedAt:        now,
	}

	err := s.repo.WithTx(ctx, func(repo RepositoryPort) error {
		var pct float64
		if req.ComisionistaID != nil && *req.ComisionistaID != "" {
			name, userPct, found, err := repo.GetComisionista(ctx, *req.ComisionistaID)
			if err != nil {
				return err
			}
			if found {
				t.ComisionistaName = &name
				pct = userPct
			}
		}

		items := make([]Item, 0, len(req.Items))
		for _, in := range req.Items {
			it, err := buildItem(ctx, repo, t.ID, in, pct, now)
			if err != nil {
				return err
			}
			t.Subtotal += it.Subtotal
			t.TotalCommission += it.CommissionAmount
			items = append(items, it)
		}
		t.TotalAmount = t.Subtotal + t.Tax

		if err := repo.CreateTicket(ctx, &t); err != nil {
			return err
		}
		for _, it := range items {
			if err := repo.CreateItem(ctx, it); err != nil {
				return err
			}
		}
		t.Items = items
		return nil
	})
	if err != nil {
		return Ticket{}, fmt.Errorf("create ticket: %w", err)
	}
	return t, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateTicketRequest) (Ticket, error) {
	if err := shared.ValidateStruct(req); err != nil {
		return Ticket{}, err
	}

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return Ticket{}, err
	}

	err = s.repo.WithTx(ctx, func(repo RepositoryPort) error {
		updates := map[string]interface{}{}
		if req.ClientName != nil {
			if name := strings.TrimSpace(*req.ClientName); name != "" {
				updates["client_name"] = name
			}
		}
		if req.ClientEmail != nil {
			updates["client_email"] = *req.ClientEmail
		}
		if req.Notes != nil {
			updates["notes"] = *req.Notes
		}
		if req.Status != nil {
			updates["status"] = *req.Status
		}

		effectiveComisionista := current.ComisionistaID
		if req.ComisionistaID != nil {
			if *req.ComisionistaID != "" {
				name, _, found, err := repo.GetComisionista(ctx, *req.ComisionistaID)
				if err != nil {
					return err
				}
				if found {
					updates["comisionista_id"] = *req.ComisionistaID
					updates["comisionista_name"] = name
					effectiveComisionista = req.ComisionistaID
				}
			} else {
				updates["comisionista_id"] = nil
				updates["comisionista_name"] = nil
				effectiveComisionista = nil
			}
		}

		if req.Items != nil && len(*req.Items) > 0 {
			var pct float64
			if effectiveComisionista != nil && *effectiveComisionista != "" {
				_, userPct, found, err := repo.GetComisionista(ctx, *effectiveComisionista)
				if err != nil {
					return err
				}
				if found {
					pct = userPct
				}
			}

			if err := repo.DeleteItems(ctx, id); err != nil {
				return err
			}
			now := s.now()
			var subtotal, commission float64
			for _, in := range *req.Items {
				it, err := buildItem(ctx, repo, id, in, pct, now)
				if err != nil {
					return err
				}
				subtotal += it.Subtotal
				commission += it.CommissionAmount
				if err := repo.CreateItem(ctx, it); err != nil {
					return err
				}
			}
			updates["subtotal"] = subtotal
			updates["total_amount"] = subtotal + current.Tax
			updates["total_commission"] = commission
		}

		return repo.Update(ctx, id, updates)
	})
	if err != nil {
		return Ticket{}, err
	}
	return s.repo.Get(ctx, id)
}

// UpdatePayment records a payment state change. A paid ticket is stamped
// with the payment date and moved to completed.
func (s *Service) UpdatePayment(ctx context.Context, id string, req PaymentRequest) (Ticket, error) {
	if err := shared.ValidateStruct(req); err != nil {
		return Ticket{}, err
	}
	updates := map[string]interface{}{"payment_status": req.PaymentStatus}
	if req.PaymentMethod != nil {
		updates["payment_method"] = *req.PaymentMethod
	}
	if req.PaymentStatus == PaymentPaid {
		updates["payment_date"] = s.now()
		updates["status"] = StatusCompleted
	}
	if err := s.repo.Update(ctx, id, updates); err != nil {
		return Ticket{}, err
	}
	return s.repo.Get(ctx, id)
}

// UpdateCommission records a commission payout state change.
func (s *Service) UpdateCommission(ctx context.Context, id string, req CommissionRequest) (Ticket, error) {
	if err := shared.ValidateStruct(req); err != nil {
		return Ticket{}, err
	}
	updates := map[string]interface{}{"commission_status": req.CommissionStatus}
	if req.CommissionStatus == CommissionPaid {
		updates["commission_paid_date"] = s.now()
	}
	if err := s.repo.Update(ctx, id, updates); err != nil {
		return Ticket{}, err
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

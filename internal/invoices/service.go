package invoices

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tna-office/backoffice/internal/shared"
)

type RepositoryPort interface {
	List(ctx context.Context) ([]Invoice, error)
	ListPending(ctx context.Context) ([]Invoice, error)
	ListHistory(ctx context.Context) ([]Invoice, error)
	Get(ctx context.Context, id string) (Invoice, error)
	Create(ctx context.Context, inv Invoice) error
	Update(ctx context.Context, id string, updates map[string]interface{}) error
}

type Service struct {
	repo RepositoryPort
	now  func() time.Time
}

func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]Invoice, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListPending(ctx context.Context) ([]Invoice, error) {
	return s.repo.ListPending(ctx)
}

func (s *Service) ListHistory(ctx context.Context) ([]Invoice, error) {
	return s.repo.ListHistory(ctx)
}

func (s *Service) Create(ctx context.Context, req CreateInvoiceRequest) (Invoice, error) {
	if err := shared.ValidateStruct(req); err != nil {
		return Invoice{}, err
	}

	now := s.now()
	number := req.InvoiceNumber
	if number == "" {
		number = "INV-" + now.Format("20060102150405")
	}
	status := req.Status
	if status == "" {
		status = StatusPending
	}
	inv := Invoice{
		ID:            uuid.NewString(),
		InvoiceNumber: number,
		TicketID:      req.TicketID,
		ClientID:      req.ClientID,
		ClientName:    req.ClientName,
		Items:         req.Items,
		SalesIDs:      req.SalesIDs,
		IssueDate:     req.IssueDate,
		DueDate:       req.DueDate,
		Subtotal:      req.Subtotal,
		Tax:           req.Tax,
		TotalAmount:   req.TotalAmount,
		Status:        status,
		Notes:         req.Notes,
		CreatedAt:     now,
	}
	if err := s.repo.Create(ctx, inv); err != nil {
		return Invoice{}, err
	}
	return inv, nil
}

// UpdateStatus moves an invoice through its lifecycle. Reaching invoiced
// stamps the issue timestamp.
func (s *Service) UpdateStatus(ctx context.Context, id string, req StatusRequest) (Invoice, error) {
	if err := shared.ValidateStruct(req); err != nil {
		return Invoice{}, err
	}
	updates := map[string]interface{}{"status": req.Status}
	if req.Status == StatusInvoiced {
		updates["invoiced_at"] = s.now()
	}
	if err := s.repo.Update(ctx, id, updates); err != nil {
		return Invoice{}, err
	}
	return s.repo.Get(ctx, id)
}

package quotes

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tna-office/backoffice/internal/shared"
)

type RepositoryPort interface {
	List(ctx context.Context) ([]Quote, error)
	Get(ctx context.Context, id string) (Quote, error)
	Create(ctx context.Context, q *Quote) error
	CreateWithRequest(ctx context.Context, q *Quote, req PublicQuoteRequest) error
	Update(ctx context.Context, id string, updates map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context, statuses []string) (int, error)

	ListTemplates(ctx context.Context) ([]Template, error)
	GetTemplate(ctx context.Context, id string) (Template, error)
	CreateTemplate(ctx context.Context, t Template) error
	UpdateTemplate(ctx context.Context, id string, updates map[string]interface{}) error
	DeleteTemplate(ctx context.Context, id string) error
}

type Service struct {
	repo RepositoryPort
	now  func() time.Time
}

func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]Quote, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Quote, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateQuoteRequest, createdBy *string) (Quote, error) {
	if err := shared.ValidateStruct(req); err != nil {
		return Quote{}, err
	}

	status := req.Status
	if status == "" {
		status = StatusDraft
	}
	q := Quote{
		ID:          uuid.NewString(),
		ClientID:    req.ClientID,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		CompanyName: req.CompanyName,
		Items:       req.Items,
		Subtotal:    req.Subtotal,
		Tax:         req.Tax,
		Total:       req.Total,
		Status:      status,
		ValidUntil:  req.ValidUntil,
		Notes:       req.Notes,
		CreatedBy:   createdBy,
		CreatedAt:   s.now(),
	}
	if err := s.repo.Create(ctx, &q); err != nil {
		return Quote{}, err
	}
	return q, nil
}

// CreatePublic turns a fanpage form submission into a pre-cotizacion quote
// plus a matching enquiry for the follow-up queue.
func (s *Service) CreatePublic(ctx context.Context, req PublicQuoteRequest) (Quote, error) {
	if err := shared.ValidateStruct(req); err != nil {
		return Quote{}, err
	}

	q := Quote{
		ID:          uuid.NewString(),
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		CompanyName: req.ClientCompany,
		Status:      StatusPreCotizacion,
		Notes:       req.Message,
		CreatedAt:   s.now(),
	}
	if err := s.repo.CreateWithRequest(ctx, &q, req); err != nil {
		return Quote{}, err
	}
	return q, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateQuoteRequest) (Quote, error) {
	if err := shared.ValidateStruct(req); err != nil {
		return Quote{}, err
	}

	updates := map[string]interface{}{}
	if req.ClientName != nil {
		updates["client_name"] = *req.ClientName
	}
	if req.ClientEmail != nil {
		updates["client_email"] = *req.ClientEmail
	}
	if req.ClientPhone != nil {
		updates["client_phone"] = *req.ClientPhone
	}
	if req.CompanyName != nil {
		updates["company_name"] = *req.CompanyName
	}
	if req.Items != nil {
		updates["items"] = *req.Items
	}
	if req.Subtotal != nil {
		updates["subtotal"] = *req.Subtotal
	}
	if req.Tax != nil {
		updates["tax"] = *req.Tax
	}
	if req.Total != nil {
		updates["total"] = *req.Total
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.ValidUntil != nil {
		updates["valid_until"] = *req.ValidUntil
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			return Quote{}, err
		}
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// CountDraft backs the pending badge that only counts drafts.
func (s *Service) CountDraft(ctx context.Context) (int, error) {
	return s.repo.CountByStatus(ctx, []string{StatusDraft})
}

// CountPending counts drafts plus fanpage pre-quotes.
func (s *Service) CountPending(ctx context.Context) (int, error) {
	return s.repo.CountByStatus(ctx, []string{StatusDraft, StatusPreCotizacion})
}

// Templates.

func (s *Service) ListTemplates(ctx context.Context) ([]Template, error) {
	return s.repo.ListTemplates(ctx)
}

func (s *Service) GetTemplate(ctx context.Context, id string) (Template, error) {
	return s.repo.GetTemplate(ctx, id)
}

func (s *Service) CreateTemplate(ctx context.Context, req CreateTemplateRequest) (Template, error) {
	if err := shared.ValidateStruct(req); err != nil {
		return Template{}, err
	}
	t := Template{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Content:   req.Content,
		Variables: req.Variables,
		IsDefault: req.IsDefault,
		CreatedAt: s.now(),
	}
	if err := s.repo.CreateTemplate(ctx, t); err != nil {
		return Template{}, err
	}
	return t, nil
}

func (s *Service) UpdateTemplate(ctx context.Context, id string, req UpdateTemplateRequest) (Template, error) {
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.Variables != nil {
		updates["variables"] = *req.Variables
	}
	if req.IsDefault != nil {
		updates["is_default"] = *req.IsDefault
	}
	if len(updates) > 0 {
		if err := s.repo.UpdateTemplate(ctx, id, updates); err != nil {
			return Template{}, err
		}
	}
	return s.repo.GetTemplate(ctx, id)
}

func (s *Service) DeleteTemplate(ctx context.Context, id string) error {
	return s.repo.DeleteTemplate(ctx, id)
}

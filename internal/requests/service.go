package requests

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tna-office/backoffice/internal/shared"
)

type RepositoryPort interface {
	List(ctx context.Context) ([]Request, error)
	Get(ctx context.Context, id string) (Request, error)
	Create(ctx context.Context, req *Request) error
	Update(ctx context.Context, id string, updates map[string]interface{}) error
	CountNew(ctx context.Context) (int, error)
}

type Service struct {
	repo RepositoryPort
	now  func() time.Time
}

func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]Request, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Request, error) {
	return s.repo.Get(ctx, id)
}

func coalesce(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

// Create stores a public enquiry. The legacy and client_* contact columns
// are mirrored so both column families always carry the same values.
func (s *Service) Create(ctx context.Context, in CreateRequestRequest) (Request, error) {
	if err := shared.ValidateStruct(in); err != nil {
		return Request{}, err
	}

	reqType := in.Type
	if reqType == "" {
		reqType = "contact"
	}
	requestType := in.RequestType
	if requestType == "" {
		requestType = "contact"
	}

	now := s.now()
	req := Request{
		ID:          uuid.NewString(),
		Type:        reqType,
		Name:        coalesce(in.Name, in.ClientName),
		ClientName:  coalesce(in.ClientName, in.Name),
		Email:       coalesce(in.Email, in.ClientEmail),
		ClientEmail: coalesce(in.ClientEmail, in.Email),
		Phone:       coalesce(in.Phone, in.ClientPhone),
		ClientPhone: coalesce(in.ClientPhone, in.Phone),
		Company:     coalesce(in.Company, in.CompanyName),
		CompanyName: coalesce(in.CompanyName, in.Company),
		Message:     in.Message,
		RequestType: requestType,
		Description: in.Description,
		Source:      in.Source,
		Status:      StatusNew,
		Priority:    "medium",
		Notes:       in.Notes,
		Details:     in.Details,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, &req); err != nil {
		return Request{}, err
	}
	return req, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateRequestRequest) (Request, error) {
	if err := shared.ValidateStruct(in); err != nil {
		return Request{}, err
	}

	updates := map[string]interface{}{}
	if in.Status != nil {
		updates["status"] = *in.Status
	}
	if in.Priority != nil {
		updates["priority"] = *in.Priority
	}
	if in.AssignedTo != nil {
		updates["assigned_to"] = *in.AssignedTo
	}
	if in.Notes != nil {
		updates["notes"] = *in.Notes
	}
	if in.Message != nil {
		updates["message"] = *in.Message
	}
	if len(updates) > 0 {
		updates["updated_at"] = s.now()
		if err := s.repo.Update(ctx, id, updates); err != nil {
			return Request{}, err
		}
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) CountNew(ctx context.Context) (int, error) {
	return s.repo.CountNew(ctx)
}

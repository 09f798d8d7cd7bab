package monthly

import (
	"context"

	"github.com/google/uuid"

	"github.com/tna-office/backoffice/internal/shared"
)

// RepositoryPort defines data access methods for monthly services.
type RepositoryPort interface {
	ListCatalog(ctx context.Context) ([]CatalogItem, error)
	GetCatalogItem(ctx context.Context, id string) (CatalogItem, error)
	CreateCatalogItem(ctx context.Context, c CatalogItem) (CatalogItem, error)
	UpdateCatalogItem(ctx context.Context, id string, updates map[string]interface{}) error
	DeleteCatalogItem(ctx context.Context, id string) error

	ListServices(ctx context.Context, clientID string) ([]ClientService, error)
	GetService(ctx context.Context, id string) (ClientService, error)
	CreateService(ctx context.Context, s ClientService) (ClientService, error)
	UpdateService(ctx context.Context, id string, updates map[string]interface{}) error
	DeleteService(ctx context.Context, id string) error
}

// Service handles monthly service business logic.
type Service struct {
	repo RepositoryPort
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// ListCatalog returns all catalog entries.
func (s *Service) ListCatalog(ctx context.Context) ([]CatalogItem, error) {
	return s.repo.ListCatalog(ctx)
}

// CreateCatalogItem stores a new catalog entry.
func (s *Service) CreateCatalogItem(ctx context.Context, req CreateCatalogItemRequest) (CatalogItem, error) {
	if err := shared.ValidateStruct(req); err != nil {
		return CatalogItem{}, err
	}
	return s.repo.CreateCatalogItem(ctx, CatalogItem{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		BasePriceUF: req.BasePriceUF,
		SaleValueUF: req.SaleValueUF,
		IsActive:    true,
	})
}

// UpdateCatalogItem applies a partial catalog update.
func (s *Service) UpdateCatalogItem(ctx context.Context, id string, req UpdateCatalogItemRequest) (CatalogItem, error) {
	if err := shared.ValidateStruct(req); err != nil {
		return CatalogItem{}, err
	}
	existing, err := s.repo.GetCatalogItem(ctx, id)
	if err != nil {
		return CatalogItem{}, err
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.BasePriceUF != nil {
		updates["base_price_uf"] = *req.BasePriceUF
	}
	if req.SaleValueUF != nil {
		updates["sale_value_uf"] = *req.SaleValueUF
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		return existing, nil
	}
	if err := s.repo.UpdateCatalogItem(ctx, id, updates); err != nil {
		return CatalogItem{}, err
	}
	return s.repo.GetCatalogItem(ctx, id)
}

// DeleteCatalogItem removes a catalog entry.
func (s *Service) DeleteCatalogItem(ctx context.Context, id string) error {
	if _, err := s.repo.GetCatalogItem(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteCatalogItem(ctx, id)
}

// ListServices returns contracted services, optionally for one client.
func (s *Service) ListServices(ctx context.Context, clientID string) ([]ClientService, error) {
	return s.repo.ListServices(ctx, clientID)
}

// GetService returns one contracted service.
func (s *Service) GetService(ctx context.Context, id string) (ClientService, error) {
	return s.repo.GetService(ctx, id)
}

// CreateService stores a new contracted service.
func (s *Service) CreateService(ctx context.Context, req CreateClientServiceRequest) (ClientService, error) {
	if err := shared.ValidateStruct(req); err != nil {
		return ClientService{}, err
	}
	return s.repo.CreateService(ctx, ClientService{
		ID:            uuid.NewString(),
		ServiceName:   req.ServiceName,
		Category:      req.Category,
		ClientID:      req.ClientID,
		SaleValueUF:   req.SaleValueUF,
		BilledValueUF: req.BilledValueUF,
		CostUF:        req.CostUF,
		Status:        StatusActive,
		StartDate:     req.StartDate,
		Notes:         req.Notes,
	})
}

// UpdateService applies a partial contracted service update.
func (s *Service) UpdateService(ctx context.Context, id string, req UpdateClientServiceRequest) (ClientService, error) {
	if err := shared.ValidateStruct(req); err != nil {
		return ClientService{}, err
	}
	existing, err := s.repo.GetService(ctx, id)
	if err != nil {
		return ClientService{}, err
	}

	updates := make(map[string]interface{})
	if req.ServiceName != nil {
		updates["service_name"] = *req.ServiceName
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.ClientID != nil {
		if *req.ClientID == "" {
			updates["client_id"] = nil
		} else {
			updates["client_id"] = *req.ClientID
		}
	}
	if req.SaleValueUF != nil {
		updates["sale_value_uf"] = *req.SaleValueUF
	}
	if req.BilledValueUF != nil {
		updates["billed_value_uf"] = *req.BilledValueUF
	}
	if req.CostUF != nil {
		updates["cost_uf"] = *req.CostUF
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.StartDate != nil {
		updates["start_date"] = *req.StartDate
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if len(updates) == 0 {
		return existing, nil
	}
	if err := s.repo.UpdateService(ctx, id, updates); err != nil {
		return ClientService{}, err
	}
	return s.repo.GetService(ctx, id)
}

// DeleteService removes a contracted service.
func (s *Service) DeleteService(ctx context.Context, id string) error {
	if _, err := s.repo.GetService(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteService(ctx, id)
}

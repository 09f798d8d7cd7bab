package parking

import (
	"context"

	"github.com/google/uuid"

	"github.com/tna-office/backoffice/internal/shared"
)

// RepositoryPort defines data access methods for units.
type RepositoryPort interface {
	List(ctx context.Context, unitType string) ([]Unit, error)
	Get(ctx context.Context, id string) (Unit, error)
	Create(ctx context.Context, u Unit) (Unit, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

// Service handles parking and storage business logic.
type Service struct {
	repo RepositoryPort
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// List returns units, optionally filtered by type.
func (s *Service) List(ctx context.Context, unitType string) ([]Unit, error) {
	if unitType != "" && unitType != TypeParking && unitType != TypeStorage {
		return nil, shared.Validationf("unknown unit type %q", unitType)
	}
	return s.repo.List(ctx, unitType)
}

// Get returns one unit.
func (s *Service) Get(ctx context.Context, id string) (Unit, error) {
	return s.repo.Get(ctx, id)
}

// Create stores a new unit. Status follows the client assignment.
func (s *Service) Create(ctx context.Context, req CreateUnitRequest) (Unit, error) {
	if err := shared.ValidateStruct(req); err != nil {
		return Unit{}, err
	}
	status := StatusAvailable
	if req.ClientID != nil && *req.ClientID != "" {
		status = StatusOccupied
	}
	return s.repo.Create(ctx, Unit{
		ID:            uuid.NewString(),
		Number:        req.Number,
		Type:          req.Type,
		Location:      req.Location,
		Status:        status,
		ClientID:      req.ClientID,
		SaleValueUF:   req.SaleValueUF,
		BilledValueUF: req.BilledValueUF,
		CostUF:        req.CostUF,
		Notes:         req.Notes,
	})
}

// Update applies a partial unit update, re-deriving status when the
// client assignment changes.
func (s *Service) Update(ctx context.Context, id string, req UpdateUnitRequest) (Unit, error) {
	if err := shared.ValidateStruct(req); err != nil {
		return Unit{}, err
	}
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return Unit{}, err
	}

	updates := make(map[string]interface{})
	if req.Number != nil {
		updates["number"] = *req.Number
	}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.ClearClient {
		updates["client_id"] = nil
		updates["status"] = StatusAvailable
	} else if req.ClientID != nil {
		if *req.ClientID == "" {
			updates["client_id"] = nil
			updates["status"] = StatusAvailable
		} else {
			updates["client_id"] = *req.ClientID
			updates["status"] = StatusOccupied
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
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if len(updates) == 0 {
		return existing, nil
	}
	if err := s.repo.Update(ctx, id, updates); err != nil {
		return Unit{}, err
	}
	return s.repo.Get(ctx, id)
}

// Delete removes a unit.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

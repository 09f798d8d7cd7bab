package offices

import (
	"context"

	"github.com/google/uuid"

	"github.com/tna-office/backoffice/internal/shared"
)

// RepositoryPort defines data access methods for offices.
type RepositoryPort interface {
	List(ctx context.Context) ([]Office, error)
	Get(ctx context.Context, id string) (Office, error)
	Create(ctx context.Context, o Office) (Office, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) error
	Delete(ctx context.Context, id string) error

	ListCoordinates(ctx context.Context) ([]FloorPlanCoordinate, error)
	UpsertCoordinate(ctx context.Context, c FloorPlanCoordinate) (FloorPlanCoordinate, error)
	ReplaceCoordinates(ctx context.Context, coords []FloorPlanCoordinate) error
	DeleteCoordinate(ctx context.Context, id string) error
}

// Service handles office business logic.
type Service struct {
	repo RepositoryPort
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// List returns all offices with derived margins.
func (s *Service) List(ctx context.Context) ([]Office, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].ComputeMargin()
	}
	return items, nil
}

// Get returns one office with its derived margin.
func (s *Service) Get(ctx context.Context, id string) (Office, error) {
	office, err := s.repo.Get(ctx, id)
	if err != nil {
		return Office{}, err
	}
	office.ComputeMargin()
	return office, nil
}

// PublicList returns the unauthenticated office listing.
func (s *Service) PublicList(ctx context.Context) ([]PublicOffice, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]PublicOffice, 0, len(items))
	for _, o := range items {
		out = append(out, PublicOffice{
			ID:           o.ID,
			OfficeNumber: o.OfficeNumber,
			Floor:        o.Floor,
			SquareMeters: o.SquareMeters,
			Capacity:     o.Capacity,
			Status:       o.Status,
		})
	}
	return out, nil
}

// Create stores a new office. Status follows the client assignment.
func (s *Service) Create(ctx context.Context, req CreateOfficeRequest) (Office, error) {
	if err := shared.ValidateStruct(req); err != nil {
		return Office{}, err
	}
	status := StatusAvailable
	if req.ClientID != nil && *req.ClientID != "" {
		status = StatusOccupied
	}
	office, err := s.repo.Create(ctx, Office{
		ID:            uuid.NewString(),
		OfficeNumber:  req.OfficeNumber,
		Floor:         req.Floor,
		Location:      req.Location,
		SquareMeters:  req.SquareMeters,
		Capacity:      req.Capacity,
		Status:        status,
		ClientID:      req.ClientID,
		SaleValueUF:   req.SaleValueUF,
		BilledValueUF: req.BilledValueUF,
		CostUF:        req.CostUF,
		ContractStart: req.ContractStart,
		ContractEnd:   req.ContractEnd,
		Notes:         req.Notes,
	})
	if err != nil {
		return Office{}, err
	}
	office.ComputeMargin()
	return office, nil
}

// Update applies a partial office update. Assigning a client marks the
// office occupied; clearing it marks the office available again.
func (s *Service) Update(ctx context.Context, id string, req UpdateOfficeRequest) (Office, error) {
	if err := shared.ValidateStruct(req); err != nil {
		return Office{}, err
	}
	if _, err := s.repo.Get(ctx, id); err != nil {
		return Office{}, err
	}

	updates := make(map[string]interface{})
	if req.OfficeNumber != nil {
		updates["office_number"] = *req.OfficeNumber
	}
	if req.Floor != nil {
		updates["floor"] = *req.Floor
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.SquareMeters != nil {
		updates["square_meters"] = *req.SquareMeters
	}
	if req.Capacity != nil {
		updates["capacity"] = *req.Capacity
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
	if req.ContractStart != nil {
		updates["contract_start"] = *req.ContractStart
	}
	if req.ContractEnd != nil {
		updates["contract_end"] = *req.ContractEnd
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			return Office{}, err
		}
	}
	return s.Get(ctx, id)
}

// Delete removes an office.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// FloorPlan returns all floor plan rectangles.
func (s *Service) FloorPlan(ctx context.Context) ([]FloorPlanCoordinate, error) {
	return s.repo.ListCoordinates(ctx)
}

// SaveCoordinate stores a floor plan rectangle.
func (s *Service) SaveCoordinate(ctx context.Context, id string, req SaveCoordinateRequest) (FloorPlanCoordinate, error) {
	if err := shared.ValidateStruct(req); err != nil {
		return FloorPlanCoordinate{}, err
	}
	if id == "" {
		id = uuid.NewString()
	}
	return s.repo.UpsertCoordinate(ctx, FloorPlanCoordinate{
		ID:           id,
		OfficeID:     req.OfficeID,
		OfficeNumber: req.OfficeNumber,
		X:            req.X,
		Y:            req.Y,
		Width:        req.Width,
		Height:       req.Height,
	})
}

// DeleteCoordinate removes a floor plan rectangle.
// ReplaceFloorPlan swaps every rectangle for the submitted set.
func (s *Service) ReplaceFloorPlan(ctx context.Context, reqs []SaveCoordinateRequest) ([]FloorPlanCoordinate, error) {
	coords := make([]FloorPlanCoordinate, 0, len(reqs))
	for _, req := range reqs {
		if err := shared.ValidateStruct(req); err != nil {
			return nil, err
		}
		coords = append(coords, FloorPlanCoordinate{
			ID:           uuid.NewString(),
			OfficeID:     req.OfficeID,
			OfficeNumber: req.OfficeNumber,
			X:            req.X,
			Y:            req.Y,
			Width:        req.Width,
			Height:       req.Height,
		})
	}
	if err := s.repo.ReplaceCoordinates(ctx, coords); err != nil {
		return nil, err
	}
	return s.repo.ListCoordinates(ctx)
}

func (s *Service) DeleteCoordinate(ctx context.Context, id string) error {
	return s.repo.DeleteCoordinate(ctx, id)
}

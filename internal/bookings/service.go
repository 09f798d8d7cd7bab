package bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/tna-office/backoffice/internal/resources"
	"github.com/tna-office/backoffice/internal/shared"
)

// RepositoryPort defines data access methods for bookings.
type RepositoryPort interface {
	List(ctx context.Context) ([]Booking, error)
	ListByResource(ctx context.Context, resourceType, resourceID string) ([]Booking, error)
	Get(ctx context.Context, id string) (Booking, error)
	Create(ctx context.Context, b Booking) (Booking, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

// ResourceCatalog resolves the rooms and booths a booking can target.
type ResourceCatalog interface {
	GetRoom(ctx context.Context, id string) (resources.Room, error)
	GetBooth(ctx context.Context, id string) (resources.Booth, error)
}

// Service handles booking business logic.
type Service struct {
	repo    RepositoryPort
	catalog ResourceCatalog
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort, catalog ResourceCatalog) *Service {
	return &Service{repo: repo, catalog: catalog}
}

func withDatetimes(items []Booking) []Booking {
	for i := range items {
		items[i].ComputeDatetimes()
	}
	return items
}

// List returns all bookings.
func (s *Service) List(ctx context.Context) ([]Booking, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return withDatetimes(items), nil
}

// Get returns one booking.
func (s *Service) Get(ctx context.Context, id string) (Booking, error) {
	b, err := s.repo.Get(ctx, id)
	if err != nil {
		return Booking{}, err
	}
	b.ComputeDatetimes()
	return b, nil
}

// PublicSlots returns the occupied, non-cancelled slots of one resource
// without client details.
func (s *Service) PublicSlots(ctx context.Context, resourceType, resourceID string) ([]PublicSlot, error) {
	if resourceType != ResourceRoom && resourceType != ResourceBooth {
		return nil, shared.Validationf("unknown resource type %q", resourceType)
	}
	items, err := s.repo.ListByResource(ctx, resourceType, resourceID)
	if err != nil {
		return nil, err
	}
	out := make([]PublicSlot, 0, len(items))
	for _, b := range items {
		out = append(out, PublicSlot{
			ID:          b.ID,
			BookingDate: b.BookingDate,
			StartTime:   b.StartTime,
			EndTime:     b.EndTime,
			Status:      b.Status,
		})
	}
	return out, nil
}

// Create stores a booking. The resource must exist and its display name
// is snapshotted on the booking.
func (s *Service) Create(ctx context.Context, req CreateBookingRequest, createdBy *string) (Booking, error) {
	if err := shared.ValidateStruct(req); err != nil {
		return Booking{}, err
	}
	var resourceName string
	switch req.ResourceType {
	case ResourceRoom:
		room, err := s.catalog.GetRoom(ctx, req.ResourceID)
		if err != nil {
			return Booking{}, err
		}
		resourceName = room.Name
	case ResourceBooth:
		booth, err := s.catalog.GetBooth(ctx, req.ResourceID)
		if err != nil {
			return Booking{}, err
		}
		resourceName = booth.Name
	}
	booking, err := s.repo.Create(ctx, Booking{
		ID:            uuid.NewString(),
		ResourceType:  req.ResourceType,
		ResourceID:    req.ResourceID,
		ResourceName:  resourceName,
		ClientID:      req.ClientID,
		ClientName:    req.ClientName,
		ClientEmail:   req.ClientEmail,
		ClientPhone:   req.ClientPhone,
		BookingDate:   req.BookingDate,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		DurationHours: req.DurationHours,
		TotalPrice:    req.TotalPrice,
		Status:        StatusPending,
		Notes:         req.Notes,
		CreatedBy:     createdBy,
	})
	if err != nil {
		return Booking{}, err
	}
	booking.ComputeDatetimes()
	return booking, nil
}

// Update applies a partial booking update.
func (s *Service) Update(ctx context.Context, id string, req UpdateBookingRequest) (Booking, error) {
	if err := shared.ValidateStruct(req); err != nil {
		return Booking{}, err
	}
	if _, err := s.repo.Get(ctx, id); err != nil {
		return Booking{}, err
	}

	updates := make(map[string]interface{})
	if req.ClientID != nil {
		updates["client_id"] = *req.ClientID
	}
	if req.ClientName != nil {
		updates["client_name"] = *req.ClientName
	}
	if req.ClientEmail != nil {
		updates["client_email"] = *req.ClientEmail
	}
	if req.ClientPhone != nil {
		updates["client_phone"] = *req.ClientPhone
	}
	if req.BookingDate != nil {
		updates["booking_date"] = *req.BookingDate
	}
	if req.StartTime != nil {
		updates["start_time"] = *req.StartTime
	}
	if req.EndTime != nil {
		updates["end_time"] = *req.EndTime
	}
	if req.DurationHours != nil {
		updates["duration_hours"] = *req.DurationHours
	}
	if req.TotalPrice != nil {
		updates["total_price"] = *req.TotalPrice
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			return Booking{}, err
		}
	}
	return s.Get(ctx, id)
}

// Cancel marks a booking cancelled, freeing its slot.
func (s *Service) Cancel(ctx context.Context, id string) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, map[string]interface{}{"status": StatusCancelled})
}

// Delete removes a booking permanently.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

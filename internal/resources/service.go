package resources

import (
	"context"

	"github.com/google/uuid"

	"github.com/tna-office/backoffice/internal/shared"
)

// RepositoryPort defines data access methods for rooms and booths.
type RepositoryPort interface {
	ListRooms(ctx context.Context, activeOnly bool) ([]Room, error)
	GetRoom(ctx context.Context, id string) (Room, error)
	CreateRoom(ctx context.Context, rm Room) (Room, error)
	UpdateRoom(ctx context.Context, id string, updates map[string]interface{}) error

	ListBooths(ctx context.Context, activeOnly bool) ([]Booth, error)
	GetBooth(ctx context.Context, id string) (Booth, error)
	CreateBooth(ctx context.Context, b Booth) (Booth, error)
	UpdateBooth(ctx context.Context, id string, updates map[string]interface{}) error
}

// Service handles room and booth business logic.
type Service struct {
	repo RepositoryPort
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

func emptyIfNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

// ListRooms returns all rooms.
func (s *Service) ListRooms(ctx context.Context) ([]Room, error) {
	return s.repo.ListRooms(ctx, false)
}

// ListActiveRooms returns only active rooms, used by the public site.
func (s *Service) ListActiveRooms(ctx context.Context) ([]Room, error) {
	return s.repo.ListRooms(ctx, true)
}

// GetRoom returns one room.
func (s *Service) GetRoom(ctx context.Context, id string) (Room, error) {
	return s.repo.GetRoom(ctx, id)
}

// CreateRoom stores a new room.
func (s *Service) CreateRoom(ctx context.Context, req CreateRoomRequest) (Room, error) {
	if err := shared.ValidateStruct(req); err != nil {
		return Room{}, err
	}
	return s.repo.CreateRoom(ctx, Room{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Capacity:     req.Capacity,
		HourlyRate:   req.HourlyRate,
		HalfDayRate:  req.HalfDayRate,
		FullDayRate:  req.FullDayRate,
		Amenities:    emptyIfNil(req.Amenities),
		Color:        req.Color,
		Status:       StatusActive,
		BlocksRooms:  emptyIfNil(req.BlocksRooms),
		RelatedRooms: emptyIfNil(req.RelatedRooms),
		ImageURL:     req.ImageURL,
		Description:  req.Description,
	})
}

// UpdateRoom applies a partial room update.
func (s *Service) UpdateRoom(ctx context.Context, id string, req UpdateRoomRequest) (Room, error) {
	if err := shared.ValidateStruct(req); err != nil {
		return Room{}, err
	}
	existing, err := s.repo.GetRoom(ctx, id)
	if err != nil {
		return Room{}, err
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Capacity != nil {
		updates["capacity"] = *req.Capacity
	}
	if req.HourlyRate != nil {
		updates["hourly_rate"] = *req.HourlyRate
	}
	if req.HalfDayRate != nil {
		updates["half_day_rate"] = *req.HalfDayRate
	}
	if req.FullDayRate != nil {
		updates["full_day_rate"] = *req.FullDayRate
	}
	if req.Amenities != nil {
		updates["amenities"] = *req.Amenities
	}
	if req.Color != nil {
		updates["color"] = *req.Color
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.BlocksRooms != nil {
		updates["blocks_rooms"] = *req.BlocksRooms
	}
	if req.RelatedRooms != nil {
		updates["related_rooms"] = *req.RelatedRooms
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if len(updates) == 0 {
		return existing, nil
	}
	if err := s.repo.UpdateRoom(ctx, id, updates); err != nil {
		return Room{}, err
	}
	return s.repo.GetRoom(ctx, id)
}

// DeactivateRoom marks a room inactive instead of deleting it, keeping
// its booking history intact.
func (s *Service) DeactivateRoom(ctx context.Context, id string) error {
	if _, err := s.repo.GetRoom(ctx, id); err != nil {
		return err
	}
	return s.repo.UpdateRoom(ctx, id, map[string]interface{}{"status": StatusInactive})
}

// ListBooths returns all booths.
func (s *Service) ListBooths(ctx context.Context) ([]Booth, error) {
	return s.repo.ListBooths(ctx, false)
}

// ListActiveBooths returns only active booths, used by the public site.
func (s *Service) ListActiveBooths(ctx context.Context) ([]Booth, error) {
	return s.repo.ListBooths(ctx, true)
}

// GetBooth returns one booth.
func (s *Service) GetBooth(ctx context.Context, id string) (Booth, error) {
	return s.repo.GetBooth(ctx, id)
}

// CreateBooth stores a new booth.
func (s *Service) CreateBooth(ctx context.Context, req CreateBoothRequest) (Booth, error) {
	if err := shared.ValidateStruct(req); err != nil {
		return Booth{}, err
	}
	return s.repo.CreateBooth(ctx, Booth{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Capacity:    req.Capacity,
		HourlyRate:  req.HourlyRate,
		HalfDayRate: req.HalfDayRate,
		FullDayRate: req.FullDayRate,
		Color:       req.Color,
		Status:      StatusActive,
		ImageURL:    req.ImageURL,
		Description: req.Description,
	})
}

// UpdateBooth applies a partial booth update.
func (s *Service) UpdateBooth(ctx context.Context, id string, req UpdateBoothRequest) (Booth, error) {
	if err := shared.ValidateStruct(req); err != nil {
		return Booth{}, err
	}
	existing, err := s.repo.GetBooth(ctx, id)
	if err != nil {
		return Booth{}, err
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Capacity != nil {
		updates["capacity"] = *req.Capacity
	}
	if req.HourlyRate != nil {
		updates["hourly_rate"] = *req.HourlyRate
	}
	if req.HalfDayRate != nil {
		updates["half_day_rate"] = *req.HalfDayRate
	}
	if req.FullDayRate != nil {
		updates["full_day_rate"] = *req.FullDayRate
	}
	if req.Color != nil {
		updates["color"] = *req.Color
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if len(updates) == 0 {
		return existing, nil
	}
	if err := s.repo.UpdateBooth(ctx, id, updates); err != nil {
		return Booth{}, err
	}
	return s.repo.GetBooth(ctx, id)
}

// DeactivateBooth marks a booth inactive instead of deleting it.
func (s *Service) DeactivateBooth(ctx context.Context, id string) error {
	if _, err := s.repo.GetBooth(ctx, id); err != nil {
		return err
	}
	return s.repo.UpdateBooth(ctx, id, map[string]interface{}{"status": StatusInactive})
}

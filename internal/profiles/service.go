package profiles

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/tna-office/backoffice/internal/shared"
)

// RepositoryPort defines data access methods for profiles.
type RepositoryPort interface {
	List(ctx context.Context) ([]Profile, error)
	Get(ctx context.Context, id string) (Profile, error)
	GetByName(ctx context.Context, name string) (Profile, error)
	Create(ctx context.Context, p Profile) (Profile, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

// Service handles profile business logic.
type Service struct {
	repo RepositoryPort
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// List returns all profiles.
func (s *Service) List(ctx context.Context) ([]Profile, error) {
	return s.repo.List(ctx)
}

// Get returns one profile.
func (s *Service) Get(ctx context.Context, id string) (Profile, error) {
	return s.repo.Get(ctx, id)
}

// Create stores a new profile. Names are unique.
func (s *Service) Create(ctx context.Context, req CreateProfileRequest) (Profile, error) {
	if err := shared.ValidateStruct(req); err != nil {
		return Profile{}, err
	}
	if _, err := s.repo.GetByName(ctx, req.Name); err == nil {
		return Profile{}, fmt.Errorf("%w: profile name already exists", shared.ErrDuplicate)
	} else if !errors.Is(err, shared.ErrNotFound) {
		return Profile{}, err
	}
	modules := req.AllowedModules
	if modules == nil {
		modules = []string{}
	}
	return s.repo.Create(ctx, Profile{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Description:    req.Description,
		AllowedModules: modules,
	})
}

// Update applies a partial update. System profiles reject renames.
func (s *Service) Update(ctx context.Context, id string, req UpdateProfileRequest) (Profile, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return Profile{}, err
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		if existing.IsSystem && *req.Name != existing.Name {
			return Profile{}, shared.Validationf("system profiles cannot be renamed")
		}
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.AllowedModules != nil {
		updates["allowed_modules"] = *req.AllowedModules
	}
	if len(updates) == 0 {
		return existing, nil
	}
	if err := s.repo.Update(ctx, id, updates); err != nil {
		return Profile{}, err
	}
	return s.repo.Get(ctx, id)
}

// Delete removes a profile. System profiles cannot be deleted.
func (s *Service) Delete(ctx context.Context, id string) error {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if existing.IsSystem {
		return shared.Validationf("system profiles cannot be deleted")
	}
	return s.repo.Delete(ctx, id)
}

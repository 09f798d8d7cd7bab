package users

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tna-office/backoffice/internal/shared"
)

// RepositoryPort defines data access methods for users.
type RepositoryPort interface {
	List(ctx context.Context) ([]User, error)
	ListComisionistas(ctx context.Context) ([]User, error)
	Get(ctx context.Context, id string) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, u User, passwordHash string) (User, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

// Service handles user management business logic.
type Service struct {
	repo RepositoryPort
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// List returns all users.
func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

// ListComisionistas returns active commission agents.
func (s *Service) ListComisionistas(ctx context.Context) ([]User, error) {
	return s.repo.ListComisionistas(ctx)
}

// Get returns one user.
func (s *Service) Get(ctx context.Context, id string) (User, error) {
	return s.repo.Get(ctx, id)
}

// Create stores a new account. Emails are unique.
func (s *Service) Create(ctx context.Context, req CreateUserRequest) (User, error) {
	if err := shared.ValidateStruct(req); err != nil {
		return User{}, err
	}
	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return User{}, err
	}
	if exists {
		return User{}, fmt.Errorf("%w: email already registered", shared.ErrDuplicate)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("users: hash password: %w", err)
	}
	return s.repo.Create(ctx, User{
		ID:                   uuid.NewString(),
		Email:                req.Email,
		Name:                 req.Name,
		Role:                 req.Role,
		ProfileID:            req.ProfileID,
		CommissionPercentage: req.CommissionPercentage,
		IsActive:             true,
	}, string(hash))
}

// Update applies a partial account update.
func (s *Service) Update(ctx context.Context, id string, req UpdateUserRequest) (User, error) {
	if err := shared.ValidateStruct(req); err != nil {
		return User{}, err
	}
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return User{}, err
	}

	updates := make(map[string]interface{})
	if req.Email != nil && *req.Email != existing.Email {
		exists, err := s.repo.ExistsByEmail(ctx, *req.Email)
		if err != nil {
			return User{}, err
		}
		if exists {
			return User{}, fmt.Errorf("%w: email already registered", shared.ErrDuplicate)
		}
		updates["email"] = *req.Email
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return User{}, fmt.Errorf("users: hash password: %w", err)
		}
		updates["password_hash"] = string(hash)
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.ProfileID != nil {
		updates["profile_id"] = *req.ProfileID
	}
	if req.CommissionPercentage != nil {
		updates["commission_percentage"] = *req.CommissionPercentage
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		return existing, nil
	}
	if err := s.repo.Update(ctx, id, updates); err != nil {
		return User{}, err
	}
	return s.repo.Get(ctx, id)
}

// Delete removes an account.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tna-office/backoffice/internal/shared"
)

// RepositoryPort defines data access methods for accounts.
type RepositoryPort interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetProfileModules(ctx context.Context, profileID string) ([]string, error)
	Create(ctx context.Context, u User) (User, error)
}

// Service handles authentication business logic.
type Service struct {
	repo   RepositoryPort
	tokens *TokenManager
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort, tokens *TokenManager) *Service {
	return &Service{repo: repo, tokens: tokens}
}

// Login verifies credentials and issues a bearer token.
func (s *Service) Login(ctx context.Context, input LoginInput) (Session, error) {
	if err := shared.ValidateStruct(input); err != nil {
		return Session{}, err
	}
	user, err := s.repo.GetByEmail(ctx, input.Email)
	if errors.Is(err, shared.ErrNotFound) {
		return Session{}, shared.ErrInvalidCredentials
	}
	if err != nil {
		return Session{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return Session{}, shared.ErrInvalidCredentials
	}
	if !user.IsActive {
		return Session{}, shared.ErrInactiveUser
	}
	token, err := s.tokens.Generate(user.ID, user.Email, user.Name, user.Role)
	if err != nil {
		return Session{}, err
	}
	return Session{AccessToken: token, TokenType: "bearer", User: user}, nil
}

// Register creates a new account and logs it in.
func (s *Service) Register(ctx context.Context, input RegisterInput) (Session, error) {
	if err := shared.ValidateStruct(input); err != nil {
		return Session{}, err
	}
	if _, err := s.repo.GetByEmail(ctx, input.Email); err == nil {
		return Session{}, fmt.Errorf("%w: email already registered", shared.ErrDuplicate)
	} else if !errors.Is(err, shared.ErrNotFound) {
		return Session{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return Session{}, fmt.Errorf("auth: hash password: %w", err)
	}
	role := input.Role
	if role == "" {
		role = shared.RoleCliente
	}
	user, err := s.repo.Create(ctx, User{
		ID:           uuid.NewString(),
		Email:        input.Email,
		PasswordHash: string(hash),
		Name:         input.Name,
		Role:         role,
		IsActive:     true,
	})
	if err != nil {
		return Session{}, err
	}
	token, err := s.tokens.Generate(user.ID, user.Email, user.Name, user.Role)
	if err != nil {
		return Session{}, err
	}
	return Session{AccessToken: token, TokenType: "bearer", User: user}, nil
}

// Me returns the account behind an authenticated identity with its resolved
// module access. Admins see every module; other roles see their profile's
// allow-list.
func (s *Service) Me(ctx context.Context, userID string) (MeResponse, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return MeResponse{}, err
	}
	modules := []string{}
	switch {
	case user.Role == shared.RoleAdmin:
		modules = append(modules, shared.AvailableModules...)
	case user.ProfileID != nil:
		modules, err = s.repo.GetProfileModules(ctx, *user.ProfileID)
		if err != nil {
			return MeResponse{}, err
		}
		if modules == nil {
			modules = []string{}
		}
	}
	return MeResponse{User: user, AllowedModules: modules}, nil
}

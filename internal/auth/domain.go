package auth

import "time"

// User is the account record used for authentication.
type User struct {
	ID                   string    `json:"id"`
	Email                string    `json:"email"`
	PasswordHash         string    `json:"-"`
	Name                 string    `json:"name"`
	Role                 string    `json:"role"`
	ProfileID            *string   `json:"profile_id"`
	CommissionPercentage float64   `json:"commission_percentage"`
	IsActive             bool      `json:"is_active"`
	CreatedAt            time.Time `json:"created_at"`
}

// LoginInput carries login credentials.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterInput carries a self-service registration request.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=admin comisionista cliente"`
}

// MeResponse is the current-account payload with resolved module access.
type MeResponse struct {
	User
	AllowedModules []string `json:"allowed_modules"`
}

// Session is the login response payload.
type Session struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

package users

import "time"

// User is a back-office account.
type User struct {
	ID                   string    `json:"id"`
	Email                string    `json:"email"`
	Name                 string    `json:"name"`
	Role                 string    `json:"role"`
	ProfileID            *string   `json:"profile_id"`
	CommissionPercentage float64   `json:"commission_percentage"`
	IsActive             bool      `json:"is_active"`
	CreatedAt            time.Time `json:"created_at"`
}

// CreateUserRequest carries a new account created by an administrator.
type CreateUserRequest struct {
	Email                string  `json:"email" validate:"required,email"`
	Password             string  `json:"password" validate:"required,min=6"`
	Name                 string  `json:"name" validate:"required"`
	Role                 string  `json:"role" validate:"required,oneof=admin comisionista cliente"`
	ProfileID            *string `json:"profile_id"`
	CommissionPercentage float64 `json:"commission_percentage" validate:"gte=0,lte=100"`
}

// UpdateUserRequest carries a partial account update.
type UpdateUserRequest struct {
	Email                *string  `json:"email" validate:"omitempty,email"`
	Password             *string  `json:"password" validate:"omitempty,min=6"`
	Name                 *string  `json:"name"`
	Role                 *string  `json:"role" validate:"omitempty,oneof=admin comisionista cliente"`
	ProfileID            *string  `json:"profile_id"`
	CommissionPercentage *float64 `json:"commission_percentage" validate:"omitempty,gte=0,lte=100"`
	IsActive             *bool    `json:"is_active"`
}

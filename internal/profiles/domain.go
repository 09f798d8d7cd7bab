package profiles

import "time"

// Profile groups module permissions assignable to users.
type Profile struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	AllowedModules []string  `json:"allowed_modules"`
	IsSystem       bool      `json:"is_system"`
	CreatedAt      time.Time `json:"created_at"`
}

// CreateProfileRequest carries a new profile.
type CreateProfileRequest struct {
	Name           string   `json:"name" validate:"required"`
	Description    string   `json:"description"`
	AllowedModules []string `json:"allowed_modules"`
}

// UpdateProfileRequest carries a partial profile update.
type UpdateProfileRequest struct {
	Name           *string   `json:"name"`
	Description    *string   `json:"description"`
	AllowedModules *[]string `json:"allowed_modules"`
}

package monthly

import (
	"time"

	"github.com/tna-office/backoffice/internal/shared"
)

// Service statuses.
const (
	StatusActive    = "active"
	StatusSuspended = "suspended"
	StatusEnded     = "ended"
)

// CatalogItem is a template for a recurring monthly service.
type CatalogItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	BasePriceUF float64   `json:"base_price_uf"`
	SaleValueUF float64   `json:"sale_value_uf"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// ClientService is a recurring service contracted by a client. Values
// are denominated in UF.
type ClientService struct {
	ID            string       `json:"id"`
	ServiceName   string       `json:"service_name"`
	Category      string       `json:"category"`
	ClientID      *string      `json:"client_id"`
	SaleValueUF   float64      `json:"sale_value_uf"`
	BilledValueUF float64      `json:"billed_value_uf"`
	CostUF        float64      `json:"cost_uf"`
	Status        string       `json:"status"`
	StartDate     *shared.Date `json:"start_date"`
	Notes         string       `json:"notes"`
	CreatedAt     time.Time    `json:"created_at"`
}

// CreateCatalogItemRequest carries a new catalog entry.
type CreateCatalogItemRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	BasePriceUF float64 `json:"base_price_uf" validate:"gte=0"`
	SaleValueUF float64 `json:"sale_value_uf" validate:"gte=0"`
}

// UpdateCatalogItemRequest carries a partial catalog update.
type UpdateCatalogItemRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	BasePriceUF *float64 `json:"base_price_uf" validate:"omitempty,gte=0"`
	SaleValueUF *float64 `json:"sale_value_uf" validate:"omitempty,gte=0"`
	IsActive    *bool    `json:"is_active"`
}

// CreateClientServiceRequest carries a new contracted service.
type CreateClientServiceRequest struct {
	ServiceName   string       `json:"service_name" validate:"required"`
	Category      string       `json:"category"`
	ClientID      *string      `json:"client_id"`
	SaleValueUF   float64      `json:"sale_value_uf" validate:"gte=0"`
	BilledValueUF float64      `json:"billed_value_uf" validate:"gte=0"`
	CostUF        float64      `json:"cost_uf" validate:"gte=0"`
	StartDate     *shared.Date `json:"start_date"`
	Notes         string       `json:"notes"`
}

// UpdateClientServiceRequest carries a partial contracted service update.
type UpdateClientServiceRequest struct {
	ServiceName   *string      `json:"service_name"`
	Category      *string      `json:"category"`
	ClientID      *string      `json:"client_id"`
	SaleValueUF   *float64     `json:"sale_value_uf" validate:"omitempty,gte=0"`
	BilledValueUF *float64     `json:"billed_value_uf" validate:"omitempty,gte=0"`
	CostUF        *float64     `json:"cost_uf" validate:"omitempty,gte=0"`
	Status        *string      `json:"status" validate:"omitempty,oneof=active suspended ended"`
	StartDate     *shared.Date `json:"start_date"`
	Notes         *string      `json:"notes"`
}

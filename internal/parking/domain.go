package parking

import "time"

// Unit types.
const (
	TypeParking = "parking"
	TypeStorage = "storage"
)

// Unit statuses derived from assignment.
const (
	StatusAvailable = "available"
	StatusOccupied  = "occupied"
)

// Unit is a parking spot or storage room. Monetary values are in UF.
type Unit struct {
	ID            string    `json:"id"`
	Number        string    `json:"number"`
	Type          string    `json:"type"`
	Location      string    `json:"location"`
	Status        string    `json:"status"`
	ClientID      *string   `json:"client_id"`
	SaleValueUF   float64   `json:"sale_value_uf"`
	BilledValueUF float64   `json:"billed_value_uf"`
	CostUF        float64   `json:"cost_uf"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateUnitRequest carries a new parking or storage unit.
type CreateUnitRequest struct {
	Number        string  `json:"number" validate:"required"`
	Type          string  `json:"type" validate:"required,oneof=parking storage"`
	Location      string  `json:"location"`
	ClientID      *string `json:"client_id"`
	SaleValueUF   float64 `json:"sale_value_uf" validate:"gte=0"`
	BilledValueUF float64 `json:"billed_value_uf" validate:"gte=0"`
	CostUF        float64 `json:"cost_uf" validate:"gte=0"`
	Notes         string  `json:"notes"`
}

// UpdateUnitRequest carries a partial unit update.
type UpdateUnitRequest struct {
	Number        *string  `json:"number"`
	Type          *string  `json:"type" validate:"omitempty,oneof=parking storage"`
	Location      *string  `json:"location"`
	ClientID      *string  `json:"client_id"`
	ClearClient   bool     `json:"clear_client"`
	SaleValueUF   *float64 `json:"sale_value_uf" validate:"omitempty,gte=0"`
	BilledValueUF *float64 `json:"billed_value_uf" validate:"omitempty,gte=0"`
	CostUF        *float64 `json:"cost_uf" validate:"omitempty,gte=0"`
	Notes         *string  `json:"notes"`
}

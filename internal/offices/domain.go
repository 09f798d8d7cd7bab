package offices

import (
	"time"

	"github.com/tna-office/backoffice/internal/shared"
)

// Office statuses derived from assignment.
const (
	StatusAvailable = "available"
	StatusOccupied  = "occupied"
)

// Office is a rentable office unit. Monetary values are denominated in UF.
type Office struct {
	ID               string       `json:"id"`
	OfficeNumber     string       `json:"office_number"`
	Floor            *int         `json:"floor"`
	Location         string       `json:"location"`
	SquareMeters     *float64     `json:"square_meters"`
	Capacity         *int         `json:"capacity"`
	Status           string       `json:"status"`
	ClientID         *string      `json:"client_id"`
	SaleValueUF      float64      `json:"sale_value_uf"`
	BilledValueUF    float64      `json:"billed_value_uf"`
	CostUF           float64      `json:"cost_uf"`
	MarginPercentage float64      `json:"margin_percentage"`
	ContractStart    *shared.Date `json:"contract_start"`
	ContractEnd      *shared.Date `json:"contract_end"`
	Notes            string       `json:"notes"`
	CreatedAt        time.Time    `json:"created_at"`
}

// ComputeMargin fills the derived margin percentage from billed and cost
// values. A zero billed value yields a zero margin.
func (o *Office) ComputeMargin() {
	if o.BilledValueUF > 0 {
		o.MarginPercentage = (o.BilledValueUF - o.CostUF) / o.BilledValueUF * 100
	} else {
		o.MarginPercentage = 0
	}
}

// PublicOffice is the reduced shape exposed without authentication.
type PublicOffice struct {
	ID           string   `json:"id"`
	OfficeNumber string   `json:"office_number"`
	Floor        *int     `json:"floor"`
	SquareMeters *float64 `json:"square_meters"`
	Capacity     *int     `json:"capacity"`
	Status       string   `json:"status"`
}

// CreateOfficeRequest carries a new office.
type CreateOfficeRequest struct {
	OfficeNumber  string       `json:"office_number" validate:"required"`
	Floor         *int         `json:"floor"`
	Location      string       `json:"location"`
	SquareMeters  *float64     `json:"square_meters"`
	Capacity      *int         `json:"capacity"`
	ClientID      *string      `json:"client_id"`
	SaleValueUF   float64      `json:"sale_value_uf" validate:"gte=0"`
	BilledValueUF float64      `json:"billed_value_uf" validate:"gte=0"`
	CostUF        float64      `json:"cost_uf" validate:"gte=0"`
	ContractStart *shared.Date `json:"contract_start"`
	ContractEnd   *shared.Date `json:"contract_end"`
	Notes         string       `json:"notes"`
}

// UpdateOfficeRequest carries a partial office update. Assigning or
// clearing client_id re-derives the status.
type UpdateOfficeRequest struct {
	OfficeNumber  *string      `json:"office_number"`
	Floor         *int         `json:"floor"`
	Location      *string      `json:"location"`
	SquareMeters  *float64     `json:"square_meters"`
	Capacity      *int         `json:"capacity"`
	ClientID      *string      `json:"client_id"`
	ClearClient   bool         `json:"clear_client"`
	SaleValueUF   *float64     `json:"sale_value_uf" validate:"omitempty,gte=0"`
	BilledValueUF *float64     `json:"billed_value_uf" validate:"omitempty,gte=0"`
	CostUF        *float64     `json:"cost_uf" validate:"omitempty,gte=0"`
	ContractStart *shared.Date `json:"contract_start"`
	ContractEnd   *shared.Date `json:"contract_end"`
	Notes         *string      `json:"notes"`
}

// FloorPlanCoordinate positions an office on the floor plan drawing.
type FloorPlanCoordinate struct {
	ID           string    `json:"id"`
	OfficeID     *string   `json:"office_id"`
	OfficeNumber string    `json:"office_number"`
	X            float64   `json:"x"`
	Y            float64   `json:"y"`
	Width        float64   `json:"width"`
	Height       float64   `json:"height"`
	CreatedAt    time.Time `json:"created_at"`
}

// SaveCoordinateRequest carries a floor plan rectangle.
type SaveCoordinateRequest struct {
	OfficeID     *string `json:"office_id"`
	OfficeNumber string  `json:"office_number" validate:"required"`
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
}

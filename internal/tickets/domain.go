package tickets

import "time"

// Payment statuses.
const (
	PaymentPending  = "pending"
	PaymentPartial  = "partial"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
)

// Commission statuses.
const (
	CommissionPending = "pending"
	CommissionPaid    = "paid"
)

// Ticket statuses.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Ticket is a point-of-sale receipt. Client and agent details are
// snapshotted so later edits to those records do not rewrite history.
type Ticket struct {
	ID                 string     `json:"id"`
	TicketNumber       int64      `json:"ticket_number"`
	ClientID           *string    `json:"client_id"`
	ClientName         string     `json:"client_name"`
	ClientEmail        string     `json:"client_email"`
	TicketDate         time.Time  `json:"ticket_date"`
	Subtotal           float64    `json:"subtotal"`
	Tax                float64    `json:"tax"`
	TotalAmount        float64    `json:"total_amount"`
	TotalCommission    float64    `json:"total_commission"`
	ComisionistaID     *string    `json:"comisionista_id"`
	ComisionistaName   *string    `json:"comisionista_name"`
	PaymentStatus      string     `json:"payment_status"`
	PaymentMethod      *string    `json:"payment_method"`
	PaymentDate        *time.Time `json:"payment_date"`
	CommissionStatus   string     `json:"commission_status"`
	CommissionPaidDate *time.Time `json:"commission_paid_date"`
	Status             string     `json:"status"`
	Notes              string     `json:"notes"`
	CreatedBy          *string    `json:"created_by"`
	CreatedAt          time.Time  `json:"created_at"`
	Items              []Item     `json:"items"`
}

// Item is one ticket line. Product details are snapshotted at sale time.
type Item struct {
	ID                   string    `json:"id"`
	TicketID             string    `json:"ticket_id"`
	ProductID            *string   `json:"product_id"`
	ProductName          string    `json:"product_name"`
	Category             string    `json:"category"`
	Quantity             int       `json:"quantity"`
	UnitPrice            float64   `json:"unit_price"`
	Subtotal             float64   `json:"subtotal"`
	CommissionPercentage float64   `json:"commission_percentage"`
	CommissionAmount     float64   `json:"commission_amount"`
	CreatedAt            time.Time `json:"created_at"`
}

// ItemInput is a requested ticket line. When product_id resolves, the
// catalog price and name win over the caller supplied values.
type ItemInput struct {
	ProductID   *string `json:"product_id"`
	ProductName string  `json:"product_name"`
	Category    string  `json:"category"`
	Quantity    int     `json:"quantity" validate:"omitempty,gte=1"`
	UnitPrice   float64 `json:"unit_price" validate:"gte=0"`
}

// CreateTicketRequest carries a new ticket with its lines.
type CreateTicketRequest struct {
	ClientID       *string     `json:"client_id"`
	ClientName     string      `json:"client_name" validate:"required"`
	ClientEmail    string      `json:"client_email" validate:"omitempty,email"`
	ComisionistaID *string     `json:"comisionista_id"`
	Notes          string      `json:"notes"`
	Items          []ItemInput `json:"items" validate:"required,min=1,dive"`
}

// UpdateTicketRequest carries a partial ticket update. A non-nil empty
// comisionista_id clears the agent snapshot; non-nil non-empty items
// replace every line and recompute the totals.
type UpdateTicketRequest struct {
	ClientName     *string      `json:"client_name"`
	ClientEmail    *string      `json:"client_email"`
	Notes          *string      `json:"notes"`
	Status         *string      `json:"status" validate:"omitempty,oneof=pending completed cancelled"`
	ComisionistaID *string      `json:"comisionista_id"`
	Items          *[]ItemInput `json:"items" validate:"omitempty,min=1,dive"`
}

// PaymentRequest updates the payment state of a ticket.
type PaymentRequest struct {
	PaymentStatus string  `json:"payment_status" validate:"required,oneof=pending partial paid refunded"`
	PaymentMethod *string `json:"payment_method"`
}

// CommissionRequest updates the commission state of a ticket.
type CommissionRequest struct {
	CommissionStatus string `json:"commission_status" validate:"required,oneof=pending paid"`
}

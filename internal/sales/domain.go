package sales

import (
	"time"

	"github.com/tna-office/backoffice/internal/shared"
)

// Sale is a single-line quick sale. Unlike tickets there is no item list;
// the product and agent details are flattened into the record itself.
type Sale struct {
	ID                   string       `json:"id"`
	TicketID             *string      `json:"ticket_id"`
	ProductID            *string      `json:"product_id"`
	ProductName          string       `json:"product_name"`
	Category             string       `json:"category"`
	Quantity             int          `json:"quantity"`
	UnitPrice            float64      `json:"unit_price"`
	TotalAmount          float64      `json:"total_amount"`
	SaleDate             *shared.Date `json:"sale_date"`
	ClientID             *string      `json:"client_id"`
	ClientName           string       `json:"client_name"`
	ClientEmail          string       `json:"client_email"`
	ComisionistaID       *string      `json:"comisionista_id"`
	ComisionistaName     *string      `json:"comisionista_name"`
	CommissionPercentage float64      `json:"commission_percentage"`
	CommissionAmount     float64      `json:"commission_amount"`
	PaymentStatus        string       `json:"payment_status"`
	CommissionStatus     string       `json:"commission_status"`
	Notes                string       `json:"notes"`
	CreatedBy            *string      `json:"created_by"`
	CreatedAt            time.Time    `json:"created_at"`
}

// CreateSaleRequest carries a new quick sale.
type CreateSaleRequest struct {
	ProductID      *string `json:"product_id"`
	ProductName    string  `json:"product_name"`
	Category       string  `json:"category"`
	Quantity       int     `json:"quantity" validate:"omitempty,gte=1"`
	UnitPrice      float64 `json:"unit_price" validate:"gte=0"`
	ClientName     string  `json:"client_name"`
	ClientEmail    string  `json:"client_email" validate:"omitempty,email"`
	ComisionistaID *string `json:"comisionista_id"`
	Notes          string  `json:"notes"`
}

// PaymentRequest updates the payment state of a sale.
type PaymentRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required,oneof=pending partial paid refunded"`
}

// CommissionRequest updates the commission state of a sale.
type CommissionRequest struct {
	CommissionStatus string `json:"commission_status" validate:"required,oneof=pending paid"`
}

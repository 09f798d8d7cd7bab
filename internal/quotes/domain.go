package quotes

import (
	"encoding/json"
	"time"

	"github.com/tna-office/backoffice/internal/shared"
)

// Quote statuses.
const (
	StatusDraft         = "draft"
	StatusPreCotizacion = "pre-cotizacion"
	StatusSent          = "sent"
	StatusAccepted      = "accepted"
	StatusRejected      = "rejected"
	StatusExpired       = "expired"
)

// Quote is a priced proposal. Line items live in a jsonb document because
// their shape is owned by the quoting front end, not by this service.
type Quote struct {
	ID          string          `json:"id"`
	QuoteNumber int64           `json:"quote_number"`
	ClientID    *string         `json:"client_id"`
	ClientName  string          `json:"client_name"`
	ClientEmail string          `json:"client_email"`
	ClientPhone string          `json:"client_phone"`
	CompanyName string          `json:"company_name"`
	Items       json.RawMessage `json:"items"`
	Subtotal    float64         `json:"subtotal"`
	Tax         float64         `json:"tax"`
	Total       float64         `json:"total"`
	Status      string          `json:"status"`
	ValidUntil  *shared.Date    `json:"valid_until"`
	Notes       string          `json:"notes"`
	CreatedBy   *string         `json:"created_by"`
	CreatedAt   time.Time       `json:"created_at"`
}

type CreateQuoteRequest struct {
	ClientID    *string         `json:"client_id"`
	ClientName  string          `json:"client_name" validate:"required"`
	ClientEmail string          `json:"client_email" validate:"omitempty,email"`
	ClientPhone string          `json:"client_phone"`
	CompanyName string          `json:"company_name"`
	Items       json.RawMessage `json:"items"`
	Subtotal    float64         `json:"subtotal" validate:"gte=0"`
	Tax         float64         `json:"tax" validate:"gte=0"`
	Total       float64         `json:"total" validate:"gte=0"`
	Status      string          `json:"status" validate:"omitempty,oneof=draft pre-cotizacion sent accepted rejected expired"`
	ValidUntil  *shared.Date    `json:"valid_until"`
	Notes       string          `json:"notes"`
}

type UpdateQuoteRequest struct {
	ClientName  *string          `json:"client_name"`
	ClientEmail *string          `json:"client_email" validate:"omitempty,email"`
	ClientPhone *string          `json:"client_phone"`
	CompanyName *string          `json:"company_name"`
	Items       *json.RawMessage `json:"items"`
	Subtotal    *float64         `json:"subtotal" validate:"omitempty,gte=0"`
	Tax         *float64         `json:"tax" validate:"omitempty,gte=0"`
	Total       *float64         `json:"total" validate:"omitempty,gte=0"`
	Status      *string          `json:"status" validate:"omitempty,oneof=draft pre-cotizacion sent accepted rejected expired"`
	ValidUntil  *shared.Date     `json:"valid_until"`
	Notes       *string          `json:"notes"`
}

// PublicQuoteRequest is the unauthenticated fanpage form payload.
type PublicQuoteRequest struct {
	ClientName    string `json:"client_name" validate:"required"`
	ClientEmail   string `json:"client_email" validate:"omitempty,email"`
	ClientPhone   string `json:"client_phone"`
	ClientCompany string `json:"client_company"`
	Message       string `json:"message"`
}

// Template is a reusable quote document with placeholder variables.
type Template struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Content   string          `json:"content"`
	Variables json.RawMessage `json:"variables"`
	IsDefault bool            `json:"is_default"`
	CreatedAt time.Time       `json:"created_at"`
}

type CreateTemplateRequest struct {
	Name      string          `json:"name" validate:"required"`
	Content   string          `json:"content"`
	Variables json.RawMessage `json:"variables"`
	IsDefault bool            `json:"is_default"`
}

type UpdateTemplateRequest struct {
	Name      *string          `json:"name"`
	Content   *string          `json:"content"`
	Variables *json.RawMessage `json:"variables"`
	IsDefault *bool            `json:"is_default"`
}

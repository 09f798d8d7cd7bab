package invoices

import (
	"encoding/json"
	"time"

	"github.com/tna-office/backoffice/internal/shared"
)

// Invoice statuses.
const (
	StatusDraft    = "draft"
	StatusPending  = "pending"
	StatusSent     = "sent"
	StatusInvoiced = "invoiced"
	StatusPaid     = "paid"
	StatusVoid     = "void"
)

// Invoice is a billing header. Line items and covered sale ids are jsonb
// payloads owned by the billing front end.
type Invoice struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	TicketID      *string         `json:"ticket_id"`
	ClientID      *string         `json:"client_id"`
	ClientName    string          `json:"client_name"`
	Items         json.RawMessage `json:"items"`
	SalesIDs      json.RawMessage `json:"sales_ids"`
	IssueDate     *shared.Date    `json:"issue_date"`
	DueDate       *shared.Date    `json:"due_date"`
	Subtotal      float64         `json:"subtotal"`
	Tax           float64         `json:"tax"`
	TotalAmount   float64         `json:"total_amount"`
	Status        string          `json:"status"`
	InvoicedAt    *time.Time      `json:"invoiced_at"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"created_at"`
}

type CreateInvoiceRequest struct {
	InvoiceNumber string          `json:"invoice_number"`
	TicketID      *string         `json:"ticket_id"`
	ClientID      *string         `json:"client_id"`
	ClientName    string          `json:"client_name"`
	Items         json.RawMessage `json:"items"`
	SalesIDs      json.RawMessage `json:"sales_ids"`
	IssueDate     *shared.Date    `json:"issue_date"`
	DueDate       *shared.Date    `json:"due_date"`
	Subtotal      float64         `json:"subtotal" validate:"gte=0"`
	Tax           float64         `json:"tax" validate:"gte=0"`
	TotalAmount   float64         `json:"total_amount" validate:"gte=0"`
	Status        string          `json:"status" validate:"omitempty,oneof=draft pending sent invoiced paid void"`
	Notes         string          `json:"notes"`
}

type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft pending sent invoiced paid void"`
}

package requests

import (
	"encoding/json"
	"time"
)

// Request statuses.
const (
	StatusNew        = "new"
	StatusInProgress = "in_progress"
	StatusResolved   = "resolved"
	StatusClosed     = "closed"
)

// Request is an inbound contact or booking enquiry, usually submitted from
// the public site. Contact details live in two column families because older
// consumers read name/email/phone and newer ones read the client_* mirrors.
type Request struct {
	ID            string          `json:"id"`
	RequestNumber int64           `json:"request_number"`
	Type          string          `json:"type"`
	Name          string          `json:"name"`
	ClientName    string          `json:"client_name"`
	Email         string          `json:"email"`
	ClientEmail   string          `json:"client_email"`
	Phone         string          `json:"phone"`
	ClientPhone   string          `json:"client_phone"`
	Company       string          `json:"company"`
	CompanyName   string          `json:"company_name"`
	Message       string          `json:"message"`
	RequestType   string          `json:"request_type"`
	Description   string          `json:"description"`
	Source        string          `json:"source"`
	Status        string          `json:"status"`
	Priority      string          `json:"priority"`
	AssignedTo    *string         `json:"assigned_to"`
	Notes         string          `json:"notes"`
	Details       json.RawMessage `json:"details"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// CreateRequestRequest is the public enquiry payload. Either naming family
// may be supplied; the missing side is mirrored from the other.
type CreateRequestRequest struct {
	Type        string          `json:"type"`
	Name        string          `json:"name"`
	ClientName  string          `json:"client_name"`
	Email       string          `json:"email" validate:"omitempty,email"`
	ClientEmail string          `json:"client_email" validate:"omitempty,email"`
	Phone       string          `json:"phone"`
	ClientPhone string          `json:"client_phone"`
	Company     string          `json:"company"`
	CompanyName string          `json:"company_name"`
	Message     string          `json:"message"`
	RequestType string          `json:"request_type"`
	Description string          `json:"description"`
	Source      string          `json:"source"`
	Details     json.RawMessage `json:"details"`
	Notes       string          `json:"notes"`
}

// UpdateRequestRequest is a partial update on an enquiry.
type UpdateRequestRequest struct {
	Status     *string `json:"status" validate:"omitempty,oneof=new in_progress resolved closed"`
	Priority   *string `json:"priority" validate:"omitempty,oneof=low medium high"`
	AssignedTo *string `json:"assigned_to"`
	Notes      *string `json:"notes"`
	Message    *string `json:"message"`
}

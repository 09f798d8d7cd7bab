package clients

import (
	"time"

	"github.com/tna-office/backoffice/internal/shared"
)

// Client is a company renting offices or services.
type Client struct {
	ID           string    `json:"id"`
	CompanyName  string    `json:"company_name"`
	RUT          string    `json:"rut"`
	BusinessType string    `json:"business_type"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	ContactName  string    `json:"contact_name"`
	ContactPhone string    `json:"contact_phone"`
	ContactEmail string    `json:"contact_email"`
	Notes        string    `json:"notes"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// Document is a file attached to a client, optionally tied to a contract
// period with expiry notifications.
type Document struct {
	ID                   string       `json:"id"`
	ClientID             string       `json:"client_id"`
	Name                 string       `json:"name"`
	FileURL              string       `json:"file_url"`
	DocumentType         string       `json:"document_type"`
	ExpiryDate           *shared.Date `json:"expiry_date"`
	NotificationsEnabled bool         `json:"notifications_enabled"`
	NotificationDays     int          `json:"notification_days"`
	ContractStartDate    *shared.Date `json:"contract_start_date"`
	ContractEndDate      *shared.Date `json:"contract_end_date"`
	Notes                string       `json:"notes"`
	CreatedAt            time.Time    `json:"created_at"`
}

// Contact is an additional person associated with a client.
type Contact struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id"`
	Name      string    `json:"name"`
	Position  string    `json:"position"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	IsPrimary bool      `json:"is_primary"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateClientRequest carries a new client.
type CreateClientRequest struct {
	CompanyName  string `json:"company_name" validate:"required"`
	RUT          string `json:"rut"`
	BusinessType string `json:"business_type"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Email        string `json:"email" validate:"omitempty,email"`
	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
	Notes        string `json:"notes"`
}

// UpdateClientRequest carries a partial client update.
type UpdateClientRequest struct {
	CompanyName  *string `json:"company_name"`
	RUT          *string `json:"rut"`
	BusinessType *string `json:"business_type"`
	Address      *string `json:"address"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email" validate:"omitempty,email"`
	ContactName  *string `json:"contact_name"`
	ContactPhone *string `json:"contact_phone"`
	ContactEmail *string `json:"contact_email" validate:"omitempty,email"`
	Notes        *string `json:"notes"`
	IsActive     *bool   `json:"is_active"`
}

// CreateDocumentRequest carries a new document for a client.
type CreateDocumentRequest struct {
	Name                 string       `json:"name" validate:"required"`
	FileURL              string       `json:"file_url"`
	DocumentType         string       `json:"document_type"`
	ExpiryDate           *shared.Date `json:"expiry_date"`
	NotificationsEnabled bool         `json:"notifications_enabled"`
	NotificationDays     int          `json:"notification_days"`
	ContractStartDate    *shared.Date `json:"contract_start_date"`
	ContractEndDate      *shared.Date `json:"contract_end_date"`
	Notes                string       `json:"notes"`
}

// UpdateDocumentRequest carries a partial document update.
type UpdateDocumentRequest struct {
	Name                 *string      `json:"name"`
	FileURL              *string      `json:"file_url"`
	DocumentType         *string      `json:"document_type"`
	ExpiryDate           *shared.Date `json:"expiry_date"`
	NotificationsEnabled *bool        `json:"notifications_enabled"`
	NotificationDays     *int         `json:"notification_days"`
	ContractStartDate    *shared.Date `json:"contract_start_date"`
	ContractEndDate      *shared.Date `json:"contract_end_date"`
	Notes                *string      `json:"notes"`
}

// CreateContactRequest carries a new contact for a client.
type CreateContactRequest struct {
	Name      string `json:"name" validate:"required"`
	Position  string `json:"position"`
	Phone     string `json:"phone"`
	Email     string `json:"email" validate:"omitempty,email"`
	IsPrimary bool   `json:"is_primary"`
}

// UpdateContactRequest carries a partial contact update.
type UpdateContactRequest struct {
	Name      *string `json:"name"`
	Position  *string `json:"position"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email" validate:"omitempty,email"`
	IsPrimary *bool   `json:"is_primary"`
}

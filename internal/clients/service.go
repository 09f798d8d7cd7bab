package clients

import (
	"context"

	"github.com/google/uuid"

	"github.com/tna-office/backoffice/internal/shared"
)

// RepositoryPort defines data access methods for clients.
type RepositoryPort interface {
	List(ctx context.Context) ([]Client, error)
	Get(ctx context.Context, id string) (Client, error)
	Create(ctx context.Context, c Client) (Client, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) error
	Delete(ctx context.Context, id string) error

	ListDocuments(ctx context.Context, clientID string) ([]Document, error)
	GetDocument(ctx context.Context, clientID, docID string) (Document, error)
	CreateDocument(ctx context.Context, d Document) (Document, error)
	UpdateDocument(ctx context.Context, clientID, docID string, updates map[string]interface{}) error
	DeleteDocument(ctx context.Context, clientID, docID string) error

	ListContacts(ctx context.Context, clientID string) ([]Contact, error)
	CreateContact(ctx context.Context, c Contact) (Contact, error)
	UpdateContact(ctx context.Context, clientID, contactID string, updates map[string]interface{}) error
	DeleteContact(ctx context.Context, clientID, contactID string) error
}

// Service handles client business logic.
type Service struct {
	repo RepositoryPort
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// List returns all clients.
func (s *Service) List(ctx context.Context) ([]Client, error) {
	return s.repo.List(ctx)
}

// Get returns one client.
func (s *Service) Get(ctx context.Context, id string) (Client, error) {
	return s.repo.Get(ctx, id)
}

// Create stores a new client.
func (s *Service) Create(ctx context.Context, req CreateClientRequest) (Client, error) {
	if err := shared.ValidateStruct(req); err != nil {
		return Client{}, err
	}
	return s.repo.Create(ctx, Client{
		ID:           uuid.NewString(),
		CompanyName:  req.CompanyName,
		RUT:          req.RUT,
		BusinessType: req.BusinessType,
		Address:      req.Address,
		Phone:        req.Phone,
		Email:        req.Email,
		ContactName:  req.ContactName,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
		Notes:        req.Notes,
		IsActive:     true,
	})
}

// Update applies a partial client update.
func (s *Service) Update(ctx context.Context, id string, req UpdateClientRequest) (Client, error) {
	if err := shared.ValidateStruct(req); err != nil {
		return Client{}, err
	}
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return Client{}, err
	}

	updates := make(map[string]interface{})
	if req.CompanyName != nil {
		updates["company_name"] = *req.CompanyName
	}
	if req.RUT != nil {
		updates["rut"] = *req.RUT
	}
	if req.BusinessType != nil {
		updates["business_type"] = *req.BusinessType
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.ContactName != nil {
		updates["contact_name"] = *req.ContactName
	}
	if req.ContactPhone != nil {
		updates["contact_phone"] = *req.ContactPhone
	}
	if req.ContactEmail != nil {
		updates["contact_email"] = *req.ContactEmail
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		return existing, nil
	}
	if err := s.repo.Update(ctx, id, updates); err != nil {
		return Client{}, err
	}
	return s.repo.Get(ctx, id)
}

// Delete removes a client and everything attached to it.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// ListDocuments returns the documents of a client.
func (s *Service) ListDocuments(ctx context.Context, clientID string) ([]Document, error) {
	if _, err := s.repo.Get(ctx, clientID); err != nil {
		return nil, err
	}
	return s.repo.ListDocuments(ctx, clientID)
}

// AddDocument attaches a document to a client.
func (s *Service) AddDocument(ctx context.Context, clientID string, req CreateDocumentRequest) (Document, error) {
	if err := shared.ValidateStruct(req); err != nil {
		return Document{}, err
	}
	if _, err := s.repo.Get(ctx, clientID); err != nil {
		return Document{}, err
	}
	days := req.NotificationDays
	if days <= 0 {
		days = 30
	}
	return s.repo.CreateDocument(ctx, Document{
		ID:                   uuid.NewString(),
		ClientID:             clientID,
		Name:                 req.Name,
		FileURL:              req.FileURL,
		DocumentType:         req.DocumentType,
		ExpiryDate:           req.ExpiryDate,
		NotificationsEnabled: req.NotificationsEnabled,
		NotificationDays:     days,
		ContractStartDate:    req.ContractStartDate,
		ContractEndDate:      req.ContractEndDate,
		Notes:                req.Notes,
	})
}

// UpdateDocument applies a partial document update.
func (s *Service) UpdateDocument(ctx context.Context, clientID, docID string, req UpdateDocumentRequest) (Document, error) {
	if _, err := s.repo.GetDocument(ctx, clientID, docID); err != nil {
		return Document{}, err
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.FileURL != nil {
		updates["file_url"] = *req.FileURL
	}
	if req.DocumentType != nil {
		updates["document_type"] = *req.DocumentType
	}
	if req.ExpiryDate != nil {
		updates["expiry_date"] = *req.ExpiryDate
	}
	if req.NotificationsEnabled != nil {
		updates["notifications_enabled"] = *req.NotificationsEnabled
	}
	if req.NotificationDays != nil {
		updates["notification_days"] = *req.NotificationDays
	}
	if req.ContractStartDate != nil {
		updates["contract_start_date"] = *req.ContractStartDate
	}
	if req.ContractEndDate != nil {
		updates["contract_end_date"] = *req.ContractEndDate
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if len(updates) > 0 {
		if err := s.repo.UpdateDocument(ctx, clientID, docID, updates); err != nil {
			return Document{}, err
		}
	}
	return s.repo.GetDocument(ctx, clientID, docID)
}

// DeleteDocument removes a document from a client.
func (s *Service) DeleteDocument(ctx context.Context, clientID, docID string) error {
	return s.repo.DeleteDocument(ctx, clientID, docID)
}

// ListContacts returns the contacts of a client.
func (s *Service) ListContacts(ctx context.Context, clientID string) ([]Contact, error) {
	if _, err := s.repo.Get(ctx, clientID); err != nil {
		return nil, err
	}
	return s.repo.ListContacts(ctx, clientID)
}

// AddContact attaches a contact to a client.
func (s *Service) AddContact(ctx context.Context, clientID string, req CreateContactRequest) (Contact, error) {
	if err := shared.ValidateStruct(req); err != nil {
		return Contact{}, err
	}
	if _, err := s.repo.Get(ctx, clientID); err != nil {
		return Contact{}, err
	}
	return s.repo.CreateContact(ctx, Contact{
		ID:        uuid.NewString(),
		ClientID:  clientID,
		Name:      req.Name,
		Position:  req.Position,
		Phone:     req.Phone,
		Email:     req.Email,
		IsPrimary: req.IsPrimary,
	})
}

// UpdateContact applies a partial contact update.
func (s *Service) UpdateContact(ctx context.Context, clientID, contactID string, req UpdateContactRequest) error {
	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Position != nil {
		updates["position"] = *req.Position
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.IsPrimary != nil {
		updates["is_primary"] = *req.IsPrimary
	}
	if len(updates) == 0 {
		return nil
	}
	return s.repo.UpdateContact(ctx, clientID, contactID, updates)
}

// DeleteContact removes a contact from a client.
func (s *Service) DeleteContact(ctx context.Context, clientID, contactID string) error {
	return s.repo.DeleteContact(ctx, clientID, contactID)
}

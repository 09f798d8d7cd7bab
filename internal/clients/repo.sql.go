package clients

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tna-office/backoffice/internal/platform/db"
	"github.com/tna-office/backoffice/internal/shared"
)

// Repository provides PostgreSQL backed persistence for clients and their
// documents and contacts.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const clientColumns = `id, company_name, rut, business_type, address, phone, email,
	contact_name, contact_phone, contact_email, notes, is_active, created_at`

var clientUpdateColumns = []string{
	"company_name", "rut", "business_type", "address", "phone", "email",
	"contact_name", "contact_phone", "contact_email", "notes", "is_active",
}

func scanClient(row pgx.Row) (Client, error) {
	var c Client
	err := row.Scan(&c.ID, &c.CompanyName, &c.RUT, &c.BusinessType, &c.Address, &c.Phone, &c.Email,
		&c.ContactName, &c.ContactPhone, &c.ContactEmail, &c.Notes, &c.IsActive, &c.CreatedAt)
	return c, err
}

// List returns all clients, newest first.
func (r *Repository) List(ctx context.Context) ([]Client, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("clients: list: %w", err)
	}
	defer rows.Close()
	var out []Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("clients: scan: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Get returns the client with the given id.
func (r *Repository) Get(ctx context.Context, id string) (Client, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = $1`, id)
	c, err := scanClient(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Client{}, shared.ErrNotFound
	}
	if err != nil {
		return Client{}, fmt.Errorf("clients: get: %w", err)
	}
	return c, nil
}

// Create inserts a client.
func (r *Repository) Create(ctx context.Context, c Client) (Client, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO clients (id, company_name, rut, business_type, address, phone, email,
			contact_name, contact_phone, contact_email, notes, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING `+clientColumns,
		c.ID, c.CompanyName, c.RUT, c.BusinessType, c.Address, c.Phone, c.Email,
		c.ContactName, c.ContactPhone, c.ContactEmail, c.Notes, c.IsActive)
	created, err := scanClient(row)
	if err != nil {
		return Client{}, fmt.Errorf("clients: create: %w", err)
	}
	return created, nil
}

// Update applies allow-listed column updates.
func (r *Repository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	query, args, ok := db.BuildUpdate("clients", clientUpdateColumns, updates, id)
	if !ok {
		return nil
	}
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("clients: update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes a client together with its documents and contacts.
func (r *Repository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("clients: delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

const documentColumns = `id, client_id, name, file_url, document_type, expiry_date,
	notifications_enabled, notification_days, contract_start_date, contract_end_date, notes, created_at`

var documentUpdateColumns = []string{
	"name", "file_url", "document_type", "expiry_date", "notifications_enabled",
	"notification_days", "contract_start_date", "contract_end_date", "notes",
}

func scanDocument(row pgx.Row) (Document, error) {
	var d Document
	err := row.Scan(&d.ID, &d.ClientID, &d.Name, &d.FileURL, &d.DocumentType, &d.ExpiryDate,
		&d.NotificationsEnabled, &d.NotificationDays, &d.ContractStartDate, &d.ContractEndDate, &d.Notes, &d.CreatedAt)
	return d, err
}

// ListDocuments returns the documents attached to a client.
func (r *Repository) ListDocuments(ctx context.Context, clientID string) ([]Document, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+documentColumns+` FROM client_documents WHERE client_id = $1 ORDER BY created_at DESC`, clientID)
	if err != nil {
		return nil, fmt.Errorf("clients: list documents: %w", err)
	}
	defer rows.Close()
	var out []Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("clients: scan document: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// GetDocument returns one document of a client.
func (r *Repository) GetDocument(ctx context.Context, clientID, docID string) (Document, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+documentColumns+` FROM client_documents WHERE id = $1 AND client_id = $2`, docID, clientID)
	d, err := scanDocument(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Document{}, shared.ErrNotFound
	}
	if err != nil {
		return Document{}, fmt.Errorf("clients: get document: %w", err)
	}
	return d, nil
}

// CreateDocument inserts a document.
func (r *Repository) CreateDocument(ctx context.Context, d Document) (Document, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO client_documents (id, client_id, name, file_url, document_type, expiry_date,
			notifications_enabled, notification_days, contract_start_date, contract_end_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+documentColumns,
		d.ID, d.ClientID, d.Name, d.FileURL, d.DocumentType, d.ExpiryDate,
		d.NotificationsEnabled, d.NotificationDays, d.ContractStartDate, d.ContractEndDate, d.Notes)
	created, err := scanDocument(row)
	if err != nil {
		return Document{}, fmt.Errorf("clients: create document: %w", err)
	}
	return created, nil
}

// UpdateDocument applies allow-listed column updates scoped to the client.
func (r *Repository) UpdateDocument(ctx context.Context, clientID, docID string, updates map[string]interface{}) error {
	query, args, ok := db.BuildUpdate("client_documents", documentUpdateColumns, updates, docID)
	if !ok {
		return nil
	}
	query += fmt.Sprintf(" AND client_id = $%d", len(args)+1)
	args = append(args, clientID)
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("clients: update document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteDocument removes a document of a client.
func (r *Repository) DeleteDocument(ctx context.Context, clientID, docID string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM client_documents WHERE id = $1 AND client_id = $2`, docID, clientID)
	if err != nil {
		return fmt.Errorf("clients: delete document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

const contactColumns = `id, client_id, name, position, phone, email, is_primary, created_at`

var contactUpdateColumns = []string{"name", "position", "phone", "email", "is_primary"}

func scanContact(row pgx.Row) (Contact, error) {
	var c Contact
	err := row.Scan(&c.ID, &c.ClientID, &c.Name, &c.Position, &c.Phone, &c.Email, &c.IsPrimary, &c.CreatedAt)
	return c, err
}

// ListContacts returns the contacts of a client.
func (r *Repository) ListContacts(ctx context.Context, clientID string) ([]Contact, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+contactColumns+` FROM client_contacts WHERE client_id = $1 ORDER BY is_primary DESC, name`, clientID)
	if err != nil {
		return nil, fmt.Errorf("clients: list contacts: %w", err)
	}
	defer rows.Close()
	var out []Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("clients: scan contact: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// CreateContact inserts a contact.
func (r *Repository) CreateContact(ctx context.Context, c Contact) (Contact, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO client_contacts (id, client_id, name, position, phone, email, is_primary)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+contactColumns,
		c.ID, c.ClientID, c.Name, c.Position, c.Phone, c.Email, c.IsPrimary)
	created, err := scanContact(row)
	if err != nil {
		return Contact{}, fmt.Errorf("clients: create contact: %w", err)
	}
	return created, nil
}

// UpdateContact applies allow-listed column updates scoped to the client.
func (r *Repository) UpdateContact(ctx context.Context, clientID, contactID string, updates map[string]interface{}) error {
	query, args, ok := db.BuildUpdate("client_contacts", contactUpdateColumns, updates, contactID)
	if !ok {
		return nil
	}
	query += fmt.Sprintf(" AND client_id = $%d", len(args)+1)
	args = append(args, clientID)
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("clients: update contact: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteContact removes a contact of a client.
func (r *Repository) DeleteContact(ctx context.Context, clientID, contactID string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM client_contacts WHERE id = $1 AND client_id = $2`, contactID, clientID)
	if err != nil {
		return fmt.Errorf("clients: delete contact: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

package quotes

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tna-office/backoffice/internal/platform/db"
	"github.com/tna-office/backoffice/internal/shared"
)

type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const quoteColumns = `id, quote_number, client_id, client_name, client_email, client_phone,
	company_name, items, subtotal, tax, total, status, valid_until, notes, created_by, created_at`

func scanQuote(row pgx.Row, q *Quote) error {
	return row.Scan(&q.ID, &q.QuoteNumber, &q.ClientID, &q.ClientName, &q.ClientEmail,
		&q.ClientPhone, &q.CompanyName, &q.Items, &q.Subtotal, &q.Tax, &q.Total,
		&q.Status, &q.ValidUntil, &q.Notes, &q.CreatedBy, &q.CreatedAt)
}

func (r *Repository) List(ctx context.Context) ([]Quote, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+quoteColumns+` FROM quotes ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()

	quotes := []Quote{}
	for rows.Next() {
		var q Quote
		if err := scanQuote(rows, &q); err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		quotes = append(quotes, q)
	}
	return quotes, rows.Err()
}

func (r *Repository) Get(ctx context.Context, id string) (Quote, error) {
	var q Quote
	row := r.pool.QueryRow(ctx, `SELECT `+quoteColumns+` FROM quotes WHERE id = $1`, id)
	if err := scanQuote(row, &q); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Quote{}, shared.ErrNotFound
		}
		return Quote{}, fmt.Errorf("get quote: %w", err)
	}
	return q, nil
}

const insertQuoteSQL = `
	INSERT INTO quotes (id, client_id, client_name, client_email, client_phone, company_name,
		items, subtotal, tax, total, status, valid_until, notes, created_by, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7, '[]'::jsonb), $8, $9, $10, $11, $12, $13, $14, $15)
	RETURNING quote_number`

func (r *Repository) Create(ctx context.Context, q *Quote) error {
	row := r.pool.QueryRow(ctx, insertQuoteSQL,
		q.ID, q.ClientID, q.ClientName, q.ClientEmail, q.ClientPhone, q.CompanyName,
		q.Items, q.Subtotal, q.Tax, q.Total, q.Status, q.ValidUntil, q.Notes, q.CreatedBy, q.CreatedAt)
	if err := row.Scan(&q.QuoteNumber); err != nil {
		return fmt.Errorf("insert quote: %w", err)
	}
	return nil
}

// CreateWithRequest stores a fanpage quote and its companion enquiry in one
// transaction so neither can exist without the other.
func (r *Repository) CreateWithRequest(ctx context.Context, q *Quote, req PublicQuoteRequest) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, insertQuoteSQL,
			q.ID, q.ClientID, q.ClientName, q.ClientEmail, q.ClientPhone, q.CompanyName,
			q.Items, q.Subtotal, q.Tax, q.Total, q.Status, q.ValidUntil, q.Notes, q.CreatedBy, q.CreatedAt)
		if err := row.Scan(&q.QuoteNumber); err != nil {
			return fmt.Errorf("insert quote: %w", err)
		}

		_, err := tx.Exec(ctx, `
			INSERT INTO requests (id, type, name, client_name, email, client_email, phone,
				client_phone, company, company_name, message, request_type, source, status,
				created_at, updated_at)
			VALUES ($1, 'quote', $2, $2, $3, $3, $4, $4, $5, $5, $6, 'quote', 'fanpage',
				'new', $7, $7)`,
			uuid.NewString(), req.ClientName, req.ClientEmail, req.ClientPhone,
			req.ClientCompany, req.Message, q.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert fanpage request: %w", err)
		}
		return nil
	})
}

var quoteUpdateColumns = []string{
	"client_name", "client_email", "client_phone", "company_name",
	"items", "subtotal", "tax", "total", "status", "valid_until", "notes",
}

func (r *Repository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	query, args, ok := db.BuildUpdate("quotes", quoteUpdateColumns, updates, id)
	if !ok {
		return nil
	}
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update quote: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM quotes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete quote: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *Repository) CountByStatus(ctx context.Context, statuses []string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM quotes WHERE status = ANY($1)`, statuses).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count quotes: %w", err)
	}
	return n, nil
}

// Templates.

const templateColumns = `id, name, content, variables, is_default, created_at`

func scanTemplate(row pgx.Row, t *Template) error {
	return row.Scan(&t.ID, &t.Name, &t.Content, &t.Variables, &t.IsDefault, &t.CreatedAt)
}

func (r *Repository) ListTemplates(ctx context.Context) ([]Template, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+templateColumns+` FROM quote_templates ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	templates := []Template{}
	for rows.Next() {
		var t Template
		if err := scanTemplate(rows, &t); err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

func (r *Repository) GetTemplate(ctx context.Context, id string) (Template, error) {
	var t Template
	row := r.pool.QueryRow(ctx, `SELECT `+templateColumns+` FROM quote_templates WHERE id = $1`, id)
	if err := scanTemplate(row, &t); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Template{}, shared.ErrNotFound
		}
		return Template{}, fmt.Errorf("get template: %w", err)
	}
	return t, nil
}

func (r *Repository) CreateTemplate(ctx context.Context, t Template) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO quote_templates (id, name, content, variables, is_default, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		t.ID, t.Name, t.Content, t.Variables, t.IsDefault, t.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert template: %w", err)
	}
	return nil
}

var templateUpdateColumns = []string{"name", "content", "variables", "is_default"}

func (r *Repository) UpdateTemplate(ctx context.Context, id string, updates map[string]interface{}) error {
	query, args, ok := db.BuildUpdate("quote_templates", templateUpdateColumns, updates, id)
	if !ok {
		return nil
	}
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *Repository) DeleteTemplate(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM quote_templates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

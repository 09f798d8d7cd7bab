package requests

import (
	"context"
	"errors"
	"fmt"

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

const requestColumns = `id, request_number, type, name, client_name, email, client_email,
	phone, client_phone, company, company_name, message, request_type, description,
	source, status, priority, assigned_to, notes, details, created_at, updated_at`

func scanRequest(row pgx.Row, req *Request) error {
	return row.Scan(&req.ID, &req.RequestNumber, &req.Type, &req.Name, &req.ClientName,
		&req.Email, &req.ClientEmail, &req.Phone, &req.ClientPhone, &req.Company,
		&req.CompanyName, &req.Message, &req.RequestType, &req.Description, &req.Source,
		&req.Status, &req.Priority, &req.AssignedTo, &req.Notes, &req.Details,
		&req.CreatedAt, &req.UpdatedAt)
}

func (r *Repository) List(ctx context.Context) ([]Request, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+requestColumns+` FROM requests ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()

	out := []Request{}
	for rows.Next() {
		var req Request
		if err := scanRequest(rows, &req); err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

func (r *Repository) Get(ctx context.Context, id string) (Request, error) {
	var req Request
	row := r.pool.QueryRow(ctx, `SELECT `+requestColumns+` FROM requests WHERE id = $1`, id)
	if err := scanRequest(row, &req); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Request{}, shared.ErrNotFound
		}
		return Request{}, fmt.Errorf("get request: %w", err)
	}
	return req, nil
}

// Create inserts the enquiry and reads back the generated request number.
func (r *Repository) Create(ctx context.Context, req *Request) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO requests (id, type, name, client_name, email, client_email, phone,
			client_phone, company, company_name, message, request_type, description,
			source, status, priority, notes, details, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20)
		RETURNING request_number`,
		req.ID, req.Type, req.Name, req.ClientName, req.Email, req.ClientEmail, req.Phone,
		req.ClientPhone, req.Company, req.CompanyName, req.Message, req.RequestType,
		req.Description, req.Source, req.Status, req.Priority, req.Notes, req.Details,
		req.CreatedAt, req.UpdatedAt)
	if err := row.Scan(&req.RequestNumber); err != nil {
		return fmt.Errorf("insert request: %w", err)
	}
	return nil
}

var requestUpdateColumns = []string{"status", "priority", "assigned_to", "notes", "message", "updated_at"}

func (r *Repository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	query, args, ok := db.BuildUpdate("requests", requestUpdateColumns, updates, id)
	if !ok {
		return nil
	}
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountNew reports unhandled enquiries for the dashboard badge.
func (r *Repository) CountNew(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM requests WHERE status = 'new'`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count requests: %w", err)
	}
	return n, nil
}

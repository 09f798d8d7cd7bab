package invoices

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

const invoiceColumns = `id, invoice_number, ticket_id, client_id, client_name, items, sales_ids,
	issue_date, due_date, subtotal, tax, total_amount, status, invoiced_at, notes, created_at`

func scanInvoice(row pgx.Row, inv *Invoice) error {
	return row.Scan(&inv.ID, &inv.InvoiceNumber, &inv.TicketID, &inv.ClientID, &inv.ClientName,
		&inv.Items, &inv.SalesIDs, &inv.IssueDate, &inv.DueDate, &inv.Subtotal, &inv.Tax,
		&inv.TotalAmount, &inv.Status, &inv.InvoicedAt, &inv.Notes, &inv.CreatedAt)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]Invoice, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	invoices := []Invoice{}
	for rows.Next() {
		var inv Invoice
		if err := scanInvoice(rows, &inv); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

func (r *Repository) List(ctx context.Context) ([]Invoice, error) {
	return r.list(ctx, `SELECT `+invoiceColumns+` FROM invoices ORDER BY created_at DESC`)
}

// ListPending returns invoices still waiting to be issued.
func (r *Repository) ListPending(ctx context.Context) ([]Invoice, error) {
	return r.list(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE status = ANY($1) ORDER BY created_at DESC`,
		[]string{StatusDraft, StatusPending, StatusSent})
}

// ListHistory returns issued invoices, most recently issued first.
func (r *Repository) ListHistory(ctx context.Context) ([]Invoice, error) {
	return r.list(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE status = $1 ORDER BY invoiced_at DESC`,
		StatusInvoiced)
}

func (r *Repository) Get(ctx context.Context, id string) (Invoice, error) {
	var inv Invoice
	row := r.pool.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id)
	if err := scanInvoice(row, &inv); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Invoice{}, shared.ErrNotFound
		}
		return Invoice{}, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

func (r *Repository) Create(ctx context.Context, inv Invoice) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO invoices (id, invoice_number, ticket_id, client_id, client_name, items,
			sales_ids, issue_date, due_date, subtotal, tax, total_amount, status, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		inv.ID, inv.InvoiceNumber, inv.TicketID, inv.ClientID, inv.ClientName, inv.Items,
		inv.SalesIDs, inv.IssueDate, inv.DueDate, inv.Subtotal, inv.Tax, inv.TotalAmount,
		inv.Status, inv.Notes, inv.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

var invoiceUpdateColumns = []string{"status", "invoiced_at"}

func (r *Repository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	query, args, ok := db.BuildUpdate("invoices", invoiceUpdateColumns, updates, id)
	if !ok {
		return nil
	}
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

package tickets

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tna-office/backoffice/internal/platform/db"
	"github.com/tna-office/backoffice/internal/shared"
)

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Repository struct {
	pool *pgxpool.Pool
	db   DBTX
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool, db: pool}
}

// WithTx runs fn against a transaction-bound copy of the repository.
func (r *Repository) WithTx(ctx context.Context, fn func(RepositoryPort) error) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(&Repository{pool: r.pool, db: tx})
	})
}

const ticketColumns = `id, ticket_number, client_id, client_name, client_email, ticket_date,
	subtotal, tax, total_amount, total_commission, comisionista_id, comisionista_name,
	payment_status, payment_method, payment_date, commission_status, commission_paid_date,
	status, notes, created_by, created_at`

func scanTicket(row pgx.Row, t *Ticket) error {
	return row.Scan(&t.ID, &t.TicketNumber, &t.ClientID, &t.ClientName, &t.ClientEmail,
		&t.TicketDate, &t.Subtotal, &t.Tax, &t.TotalAmount, &t.TotalCommission,
		&t.ComisionistaID, &t.ComisionistaName, &t.PaymentStatus, &t.PaymentMethod,
		&t.PaymentDate, &t.CommissionStatus, &t.CommissionPaidDate, &t.Status,
		&t.Notes, &t.CreatedBy, &t.CreatedAt)
}

func (r *Repository) List(ctx context.Context) ([]Ticket, error) {
	rows, err := r.db.Query(ctx, `SELECT `+ticketColumns+` FROM tickets ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()

	var tickets []Ticket
	ids := make([]string, 0)
	for rows.Next() {
		var t Ticket
		if err := scanTicket(rows, &t); err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		t.Items = []Item{}
		tickets = append(tickets, t)
		ids = append(ids, t.ID)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	if len(tickets) == 0 {
		return []Ticket{}, nil
	}

	items, err := r.listItemsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	byTicket := make(map[string][]Item, len(tickets))
	for _, it := range items {
		byTicket[it.TicketID] = append(byTicket[it.TicketID], it)
	}
	for i := range tickets {
		if its, ok := byTicket[tickets[i].ID]; ok {
			tickets[i].Items = its
		}
	}
	return tickets, nil
}

func (r *Repository) Get(ctx context.Context, id string) (Ticket, error) {
	var t Ticket
	row := r.db.QueryRow(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE id = $1`, id)
	if err := scanTicket(row, &t); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Ticket{}, shared.ErrNotFound
		}
		return Ticket{}, fmt.Errorf("get ticket: %w", err)
	}
	items, err := r.listItemsFor(ctx, []string{id})
	if err != nil {
		return Ticket{}, err
	}
	t.Items = items
	return t, nil
}

const itemColumns = `id, ticket_id, product_id, product_name, category, quantity,
	unit_price, subtotal, commission_percentage, commission_amount, created_at`

func (r *Repository) listItemsFor(ctx context.Context, ticketIDs []string) ([]Item, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+itemColumns+` FROM ticket_items WHERE ticket_id = ANY($1) ORDER BY created_at`,
		ticketIDs)
	if err != nil {
		return nil, fmt.Errorf("list ticket items: %w", err)
	}
	defer rows.Close()

	items := []Item{}
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.TicketID, &it.ProductID, &it.ProductName,
			&it.Category, &it.Quantity, &it.UnitPrice, &it.Subtotal,
			&it.CommissionPercentage, &it.CommissionAmount, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ticket item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// CreateTicket inserts the header and reads back the generated ticket number.
func (r *Repository) CreateTicket(ctx context.Context, t *Ticket) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO tickets (id, client_id, client_name, client_email, ticket_date,
			subtotal, tax, total_amount, total_commission, comisionista_id, comisionista_name,
			payment_status, commission_status, status, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING ticket_number`,
		t.ID, t.ClientID, t.ClientName, t.ClientEmail, t.TicketDate,
		t.Subtotal, t.Tax, t.TotalAmount, t.TotalCommission, t.ComisionistaID, t.ComisionistaName,
		t.PaymentStatus, t.CommissionStatus, t.Status, t.Notes, t.CreatedBy, t.CreatedAt)
	if err := row.Scan(&t.TicketNumber); err != nil {
		return fmt.Errorf("insert ticket: %w", err)
	}
	return nil
}

func (r *Repository) CreateItem(ctx context.Context, it Item) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO ticket_items (id, ticket_id, product_id, product_name, category,
			quantity, unit_price, subtotal, commission_percentage, commission_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		it.ID, it.TicketID, it.ProductID, it.ProductName, it.Category,
		it.Quantity, it.UnitPrice, it.Subtotal, it.CommissionPercentage, it.CommissionAmount, it.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert ticket item: %w", err)
	}
	return nil
}

func (r *Repository) DeleteItems(ctx context.Context, ticketID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM ticket_items WHERE ticket_id = $1`, ticketID)
	if err != nil {
		return fmt.Errorf("delete ticket items: %w", err)
	}
	return nil
}

var ticketUpdateColumns = []string{
	"client_name", "client_email", "notes", "status",
	"comisionista_id", "comisionista_name",
	"subtotal", "total_amount", "total_commission",
	"payment_status", "payment_method", "payment_date",
	"commission_status", "commission_paid_date",
}

func (r *Repository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	query, args, ok := db.BuildUpdate("tickets", ticketUpdateColumns, updates, id)
	if !ok {
		return nil
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update ticket: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tickets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ticket: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GetComisionista returns the agent snapshot for a user id. A missing or
// non-agent user reports found=false rather than an error.
func (r *Repository) GetComisionista(ctx context.Context, userID string) (name string, pct float64, found bool, err error) {
	row := r.db.QueryRow(ctx,
		`SELECT name, commission_percentage FROM users WHERE id = $1`, userID)
	if err := row.Scan(&name, &pct); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", 0, false, nil
		}
		return "", 0, false, fmt.Errorf("get comisionista: %w", err)
	}
	return name, pct, true, nil
}

// GetProductSnapshot resolves a catalog product for a ticket line. The sale
// price wins over the base price when set.
func (r *Repository) GetProductSnapshot(ctx context.Context, productID string) (name, category string, price float64, found bool, err error) {
	var base, sale float64
	row := r.db.QueryRow(ctx,
		`SELECT name, category, base_price, sale_price FROM products WHERE id = $1`, productID)
	if err := row.Scan(&name, &category, &base, &sale); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", "", 0, false, nil
		}
		return "", "", 0, false, fmt.Errorf("get product: %w", err)
	}
	price = base
	if sale > 0 {
		price = sale
	}
	return name, category, price, true, nil
}

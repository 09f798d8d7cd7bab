package sales

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

const saleColumns = `id, ticket_id, product_id, product_name, category, quantity, unit_price,
	total_amount, sale_date, client_id, client_name, client_email, comisionista_id,
	comisionista_name, commission_percentage, commission_amount, payment_status,
	commission_status, notes, created_by, created_at`

func scanSale(row pgx.Row, s *Sale) error {
	return row.Scan(&s.ID, &s.TicketID, &s.ProductID, &s.ProductName, &s.Category,
		&s.Quantity, &s.UnitPrice, &s.TotalAmount, &s.SaleDate, &s.ClientID,
		&s.ClientName, &s.ClientEmail, &s.ComisionistaID, &s.ComisionistaName,
		&s.CommissionPercentage, &s.CommissionAmount, &s.PaymentStatus,
		&s.CommissionStatus, &s.Notes, &s.CreatedBy, &s.CreatedAt)
}

func (r *Repository) List(ctx context.Context) ([]Sale, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+saleColumns+` FROM sales ORDER BY sale_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	sales := []Sale{}
	for rows.Next() {
		var s Sale
		if err := scanSale(rows, &s); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

func (r *Repository) Get(ctx context.Context, id string) (Sale, error) {
	var s Sale
	row := r.pool.QueryRow(ctx, `SELECT `+saleColumns+` FROM sales WHERE id = $1`, id)
	if err := scanSale(row, &s); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Sale{}, shared.ErrNotFound
		}
		return Sale{}, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

func (r *Repository) Create(ctx context.Context, s Sale) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO sales (id, ticket_id, product_id, product_name, category, quantity,
			unit_price, total_amount, sale_date, client_id, client_name, client_email,
			comisionista_id, comisionista_name, commission_percentage, commission_amount,
			payment_status, commission_status, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21)`,
		s.ID, s.TicketID, s.ProductID, s.ProductName, s.Category, s.Quantity,
		s.UnitPrice, s.TotalAmount, s.SaleDate, s.ClientID, s.ClientName, s.ClientEmail,
		s.ComisionistaID, s.ComisionistaName, s.CommissionPercentage, s.CommissionAmount,
		s.PaymentStatus, s.CommissionStatus, s.Notes, s.CreatedBy, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

var saleUpdateColumns = []string{"payment_status", "commission_status"}

func (r *Repository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	query, args, ok := db.BuildUpdate("sales", saleUpdateColumns, updates, id)
	if !ok {
		return nil
	}
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GetComisionista mirrors the lookup the tickets flow does.
func (r *Repository) GetComisionista(ctx context.Context, userID string) (name string, pct float64, found bool, err error) {
	row := r.pool.QueryRow(ctx, `SELECT name, commission_percentage FROM users WHERE id = $1`, userID)
	if err := row.Scan(&name, &pct); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", 0, false, nil
		}
		return "", 0, false, fmt.Errorf("get comisionista: %w", err)
	}
	return name, pct, true, nil
}

func (r *Repository) GetProductSnapshot(ctx context.Context, productID string) (name, category string, price float64, found bool, err error) {
	var base, sale float64
	row := r.pool.QueryRow(ctx,
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

package monthly

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tna-office/backoffice/internal/platform/db"
	"github.com/tna-office/backoffice/internal/shared"
)

// Repository provides PostgreSQL backed persistence for monthly services.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const catalogColumns = `id, name, description, category, base_price_uf, sale_value_uf, is_active, created_at`

var catalogUpdateColumns = []string{"name", "description", "category", "base_price_uf", "sale_value_uf", "is_active"}

func scanCatalogItem(row pgx.Row) (CatalogItem, error) {
	var c CatalogItem
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Category, &c.BasePriceUF, &c.SaleValueUF, &c.IsActive, &c.CreatedAt)
	return c, err
}

// ListCatalog returns all catalog entries.
func (r *Repository) ListCatalog(ctx context.Context) ([]CatalogItem, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+catalogColumns+` FROM monthly_services_catalog ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("monthly: list catalog: %w", err)
	}
	defer rows.Close()
	var out []CatalogItem
	for rows.Next() {
		c, err := scanCatalogItem(rows)
		if err != nil {
			return nil, fmt.Errorf("monthly: scan catalog: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetCatalogItem returns one catalog entry.
func (r *Repository) GetCatalogItem(ctx context.Context, id string) (CatalogItem, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+catalogColumns+` FROM monthly_services_catalog WHERE id = $1`, id)
	c, err := scanCatalogItem(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return CatalogItem{}, shared.ErrNotFound
	}
	if err != nil {
		return CatalogItem{}, fmt.Errorf("monthly: get catalog item: %w", err)
	}
	return c, nil
}

// CreateCatalogItem inserts a catalog entry.
func (r *Repository) CreateCatalogItem(ctx context.Context, c CatalogItem) (CatalogItem, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO monthly_services_catalog (id, name, description, category, base_price_uf, sale_value_uf, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+catalogColumns,
		c.ID, c.Name, c.Description, c.Category, c.BasePriceUF, c.SaleValueUF, c.IsActive)
	created, err := scanCatalogItem(row)
	if err != nil {
		return CatalogItem{}, fmt.Errorf("monthly: create catalog item: %w", err)
	}
	return created, nil
}

// UpdateCatalogItem applies allow-listed column updates.
func (r *Repository) UpdateCatalogItem(ctx context.Context, id string, updates map[string]interface{}) error {
	query, args, ok := db.BuildUpdate("monthly_services_catalog", catalogUpdateColumns, updates, id)
	if !ok {
		return nil
	}
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("monthly: update catalog item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteCatalogItem removes a catalog entry.
func (r *Repository) DeleteCatalogItem(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM monthly_services_catalog WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("monthly: delete catalog item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

const serviceColumns = `id, service_name, category, client_id, sale_value_uf, billed_value_uf,
	cost_uf, status, start_date, notes, created_at`

var serviceUpdateColumns = []string{
	"service_name", "category", "client_id", "sale_value_uf", "billed_value_uf",
	"cost_uf", "status", "start_date", "notes",
}

func scanClientService(row pgx.Row) (ClientService, error) {
	var s ClientService
	err := row.Scan(&s.ID, &s.ServiceName, &s.Category, &s.ClientID, &s.SaleValueUF, &s.BilledValueUF,
		&s.CostUF, &s.Status, &s.StartDate, &s.Notes, &s.CreatedAt)
	return s, err
}

// ListServices returns contracted services, optionally scoped to a client.
func (r *Repository) ListServices(ctx context.Context, clientID string) ([]ClientService, error) {
	query := `SELECT ` + serviceColumns + ` FROM monthly_services`
	var args []interface{}
	if clientID != "" {
		query += ` WHERE client_id = $1`
		args = append(args, clientID)
	}
	query += ` ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("monthly: list services: %w", err)
	}
	defer rows.Close()
	var out []ClientService
	for rows.Next() {
		s, err := scanClientService(rows)
		if err != nil {
			return nil, fmt.Errorf("monthly: scan service: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetService returns one contracted service.
func (r *Repository) GetService(ctx context.Context, id string) (ClientService, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+serviceColumns+` FROM monthly_services WHERE id = $1`, id)
	s, err := scanClientService(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return ClientService{}, shared.ErrNotFound
	}
	if err != nil {
		return ClientService{}, fmt.Errorf("monthly: get service: %w", err)
	}
	return s, nil
}

// CreateService inserts a contracted service.
func (r *Repository) CreateService(ctx context.Context, s ClientService) (ClientService, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO monthly_services (id, service_name, category, client_id, sale_value_uf,
			billed_value_uf, cost_uf, status, start_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+serviceColumns,
		s.ID, s.ServiceName, s.Category, s.ClientID, s.SaleValueUF,
		s.BilledValueUF, s.CostUF, s.Status, s.StartDate, s.Notes)
	created, err := scanClientService(row)
	if err != nil {
		return ClientService{}, fmt.Errorf("monthly: create service: %w", err)
	}
	return created, nil
}

// UpdateService applies allow-listed column updates.
func (r *Repository) UpdateService(ctx context.Context, id string, updates map[string]interface{}) error {
	query, args, ok := db.BuildUpdate("monthly_services", serviceUpdateColumns, updates, id)
	if !ok {
		return nil
	}
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("monthly: update service: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteService removes a contracted service.
func (r *Repository) DeleteService(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM monthly_services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("monthly: delete service: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

package parking

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tna-office/backoffice/internal/platform/db"
	"github.com/tna-office/backoffice/internal/shared"
)

// Repository provides PostgreSQL backed persistence for parking and
// storage units.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const unitColumns = `id, number, type, location, status, client_id,
	sale_value_uf, billed_value_uf, cost_uf, notes, created_at`

var unitUpdateColumns = []string{
	"number", "type", "location", "status", "client_id",
	"sale_value_uf", "billed_value_uf", "cost_uf", "notes",
}

func scanUnit(row pgx.Row) (Unit, error) {
	var u Unit
	err := row.Scan(&u.ID, &u.Number, &u.Type, &u.Location, &u.Status, &u.ClientID,
		&u.SaleValueUF, &u.BilledValueUF, &u.CostUF, &u.Notes, &u.CreatedAt)
	return u, err
}

// List returns units, optionally filtered by type.
func (r *Repository) List(ctx context.Context, unitType string) ([]Unit, error) {
	query := `SELECT ` + unitColumns + ` FROM parking_storage`
	var args []interface{}
	if unitType != "" {
		query += ` WHERE type = $1`
		args = append(args, unitType)
	}
	query += ` ORDER BY number`
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("parking: list: %w", err)
	}
	defer rows.Close()
	var out []Unit
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return nil, fmt.Errorf("parking: scan: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// Get returns the unit with the given id.
func (r *Repository) Get(ctx context.Context, id string) (Unit, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+unitColumns+` FROM parking_storage WHERE id = $1`, id)
	u, err := scanUnit(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Unit{}, shared.ErrNotFound
	}
	if err != nil {
		return Unit{}, fmt.Errorf("parking: get: %w", err)
	}
	return u, nil
}

// Create inserts a unit.
func (r *Repository) Create(ctx context.Context, u Unit) (Unit, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO parking_storage (id, number, type, location, status, client_id,
			sale_value_uf, billed_value_uf, cost_uf, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+unitColumns,
		u.ID, u.Number, u.Type, u.Location, u.Status, u.ClientID,
		u.SaleValueUF, u.BilledValueUF, u.CostUF, u.Notes)
	created, err := scanUnit(row)
	if err != nil {
		return Unit{}, fmt.Errorf("parking: create: %w", err)
	}
	return created, nil
}

// Update applies allow-listed column updates.
func (r *Repository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	query, args, ok := db.BuildUpdate("parking_storage", unitUpdateColumns, updates, id)
	if !ok {
		return nil
	}
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("parking: update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes a unit.
func (r *Repository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM parking_storage WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("parking: delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

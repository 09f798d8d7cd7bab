package offices

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tna-office/backoffice/internal/platform/db"
	"github.com/tna-office/backoffice/internal/shared"
)

// Repository provides PostgreSQL backed persistence for offices and the
// floor plan.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const officeColumns = `id, office_number, floor, location, square_meters, capacity, status,
	client_id, sale_value_uf, billed_value_uf, cost_uf, contract_start, contract_end, notes, created_at`

var officeUpdateColumns = []string{
	"office_number", "floor", "location", "square_meters", "capacity", "status",
	"client_id", "sale_value_uf", "billed_value_uf", "cost_uf",
	"contract_start", "contract_end", "notes",
}

func scanOffice(row pgx.Row) (Office, error) {
	var o Office
	err := row.Scan(&o.ID, &o.OfficeNumber, &o.Floor, &o.Location, &o.SquareMeters, &o.Capacity, &o.Status,
		&o.ClientID, &o.SaleValueUF, &o.BilledValueUF, &o.CostUF, &o.ContractStart, &o.ContractEnd, &o.Notes, &o.CreatedAt)
	return o, err
}

// List returns all offices ordered by office number.
func (r *Repository) List(ctx context.Context) ([]Office, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+officeColumns+` FROM offices ORDER BY office_number`)
	if err != nil {
		return nil, fmt.Errorf("offices: list: %w", err)
	}
	defer rows.Close()
	var out []Office
	for rows.Next() {
		o, err := scanOffice(rows)
		if err != nil {
			return nil, fmt.Errorf("offices: scan: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// Get returns the office with the given id.
func (r *Repository) Get(ctx context.Context, id string) (Office, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+officeColumns+` FROM offices WHERE id = $1`, id)
	o, err := scanOffice(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Office{}, shared.ErrNotFound
	}
	if err != nil {
		return Office{}, fmt.Errorf("offices: get: %w", err)
	}
	return o, nil
}

// Create inserts an office.
func (r *Repository) Create(ctx context.Context, o Office) (Office, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO offices (id, office_number, floor, location, square_meters, capacity, status,
			client_id, sale_value_uf, billed_value_uf, cost_uf, contract_start, contract_end, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING `+officeColumns,
		o.ID, o.OfficeNumber, o.Floor, o.Location, o.SquareMeters, o.Capacity, o.Status,
		o.ClientID, o.SaleValueUF, o.BilledValueUF, o.CostUF, o.ContractStart, o.ContractEnd, o.Notes)
	created, err := scanOffice(row)
	if err != nil {
		return Office{}, fmt.Errorf("offices: create: %w", err)
	}
	return created, nil
}

// Update applies allow-listed column updates.
func (r *Repository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	query, args, ok := db.BuildUpdate("offices", officeUpdateColumns, updates, id)
	if !ok {
		return nil
	}
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("offices: update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes an office.
func (r *Repository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM offices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("offices: delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

const coordinateColumns = `id, office_id, office_number, x, y, width, height, created_at`

func scanCoordinate(row pgx.Row) (FloorPlanCoordinate, error) {
	var c FloorPlanCoordinate
	err := row.Scan(&c.ID, &c.OfficeID, &c.OfficeNumber, &c.X, &c.Y, &c.Width, &c.Height, &c.CreatedAt)
	return c, err
}

// ListCoordinates returns all floor plan rectangles.
func (r *Repository) ListCoordinates(ctx context.Context) ([]FloorPlanCoordinate, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+coordinateColumns+` FROM floor_plan_coordinates ORDER BY office_number`)
	if err != nil {
		return nil, fmt.Errorf("offices: list coordinates: %w", err)
	}
	defer rows.Close()
	var out []FloorPlanCoordinate
	for rows.Next() {
		c, err := scanCoordinate(rows)
		if err != nil {
			return nil, fmt.Errorf("offices: scan coordinate: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// UpsertCoordinate stores a rectangle, replacing any existing one for the
// same office number.
func (r *Repository) UpsertCoordinate(ctx context.Context, c FloorPlanCoordinate) (FloorPlanCoordinate, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO floor_plan_coordinates (id, office_id, office_number, x, y, width, height)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			office_id = EXCLUDED.office_id, office_number = EXCLUDED.office_number,
			x = EXCLUDED.x, y = EXCLUDED.y, width = EXCLUDED.width, height = EXCLUDED.height
		RETURNING `+coordinateColumns,
		c.ID, c.OfficeID, c.OfficeNumber, c.X, c.Y, c.Width, c.Height)
	saved, err := scanCoordinate(row)
	if err != nil {
		return FloorPlanCoordinate{}, fmt.Errorf("offices: upsert coordinate: %w", err)
	}
	return saved, nil
}

// ReplaceCoordinates swaps the whole floor plan for a new set of rectangles
// in one transaction.
func (r *Repository) ReplaceCoordinates(ctx context.Context, coords []FloorPlanCoordinate) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM floor_plan_coordinates`); err != nil {
			return fmt.Errorf("offices: clear floor plan: %w", err)
		}
		for _, c := range coords {
			_, err := tx.Exec(ctx, `
				INSERT INTO floor_plan_coordinates (id, office_id, office_number, x, y, width, height)
				VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				c.ID, c.OfficeID, c.OfficeNumber, c.X, c.Y, c.Width, c.Height)
			if err != nil {
				return fmt.Errorf("offices: insert coordinate: %w", err)
			}
		}
		return nil
	})
}

// DeleteCoordinate removes a rectangle.
func (r *Repository) DeleteCoordinate(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM floor_plan_coordinates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("offices: delete coordinate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

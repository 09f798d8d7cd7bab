package resources

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tna-office/backoffice/internal/platform/db"
	"github.com/tna-office/backoffice/internal/shared"
)

// Repository provides PostgreSQL backed persistence for rooms and booths.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const roomColumns = `id, name, capacity, hourly_rate, half_day_rate, full_day_rate,
	amenities, color, status, blocks_rooms, related_rooms, image_url, description, created_at`

var roomUpdateColumns = []string{
	"name", "capacity", "hourly_rate", "half_day_rate", "full_day_rate",
	"amenities", "color", "status", "blocks_rooms", "related_rooms", "image_url", "description",
}

func scanRoom(row pgx.Row) (Room, error) {
	var rm Room
	err := row.Scan(&rm.ID, &rm.Name, &rm.Capacity, &rm.HourlyRate, &rm.HalfDayRate, &rm.FullDayRate,
		&rm.Amenities, &rm.Color, &rm.Status, &rm.BlocksRooms, &rm.RelatedRooms, &rm.ImageURL, &rm.Description, &rm.CreatedAt)
	return rm, err
}

// ListRooms returns rooms. When activeOnly is set, inactive rooms are
// filtered out.
func (r *Repository) ListRooms(ctx context.Context, activeOnly bool) ([]Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms`
	if activeOnly {
		query += ` WHERE status = 'active'`
	}
	query += ` ORDER BY name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("resources: list rooms: %w", err)
	}
	defer rows.Close()
	var out []Room
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("resources: scan room: %w", err)
		}
		out = append(out, rm)
	}
	return out, rows.Err()
}

// GetRoom returns the room with the given id.
func (r *Repository) GetRoom(ctx context.Context, id string) (Room, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+roomColumns+` FROM rooms WHERE id = $1`, id)
	rm, err := scanRoom(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Room{}, shared.ErrNotFound
	}
	if err != nil {
		return Room{}, fmt.Errorf("resources: get room: %w", err)
	}
	return rm, nil
}

// CreateRoom inserts a room.
func (r *Repository) CreateRoom(ctx context.Context, rm Room) (Room, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO rooms (id, name, capacity, hourly_rate, half_day_rate, full_day_rate,
			amenities, color, status, blocks_rooms, related_rooms, image_url, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING `+roomColumns,
		rm.ID, rm.Name, rm.Capacity, rm.HourlyRate, rm.HalfDayRate, rm.FullDayRate,
		rm.Amenities, rm.Color, rm.Status, rm.BlocksRooms, rm.RelatedRooms, rm.ImageURL, rm.Description)
	created, err := scanRoom(row)
	if err != nil {
		return Room{}, fmt.Errorf("resources: create room: %w", err)
	}
	return created, nil
}

// UpdateRoom applies allow-listed column updates.
func (r *Repository) UpdateRoom(ctx context.Context, id string, updates map[string]interface{}) error {
	query, args, ok := db.BuildUpdate("rooms", roomUpdateColumns, updates, id)
	if !ok {
		return nil
	}
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("resources: update room: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

const boothColumns = `id, name, capacity, hourly_rate, half_day_rate, full_day_rate,
	color, status, image_url, description, created_at`

var boothUpdateColumns = []string{
	"name", "capacity", "hourly_rate", "half_day_rate", "full_day_rate",
	"color", "status", "image_url", "description",
}

func scanBooth(row pgx.Row) (Booth, error) {
	var b Booth
	err := row.Scan(&b.ID, &b.Name, &b.Capacity, &b.HourlyRate, &b.HalfDayRate, &b.FullDayRate,
		&b.Color, &b.Status, &b.ImageURL, &b.Description, &b.CreatedAt)
	return b, err
}

// ListBooths returns booths. When activeOnly is set, inactive booths are
// filtered out.
func (r *Repository) ListBooths(ctx context.Context, activeOnly bool) ([]Booth, error) {
	query := `SELECT ` + boothColumns + ` FROM booths`
	if activeOnly {
		query += ` WHERE status = 'active'`
	}
	query += ` ORDER BY name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("resources: list booths: %w", err)
	}
	defer rows.Close()
	var out []Booth
	for rows.Next() {
		b, err := scanBooth(rows)
		if err != nil {
			return nil, fmt.Errorf("resources: scan booth: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// GetBooth returns the booth with the given id.
func (r *Repository) GetBooth(ctx context.Context, id string) (Booth, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+boothColumns+` FROM booths WHERE id = $1`, id)
	b, err := scanBooth(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Booth{}, shared.ErrNotFound
	}
	if err != nil {
		return Booth{}, fmt.Errorf("resources: get booth: %w", err)
	}
	return b, nil
}

// CreateBooth inserts a booth.
func (r *Repository) CreateBooth(ctx context.Context, b Booth) (Booth, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO booths (id, name, capacity, hourly_rate, half_day_rate, full_day_rate,
			color, status, image_url, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+boothColumns,
		b.ID, b.Name, b.Capacity, b.HourlyRate, b.HalfDayRate, b.FullDayRate,
		b.Color, b.Status, b.ImageURL, b.Description)
	created, err := scanBooth(row)
	if err != nil {
		return Booth{}, fmt.Errorf("resources: create booth: %w", err)
	}
	return created, nil
}

// UpdateBooth applies allow-listed column updates.
func (r *Repository) UpdateBooth(ctx context.Context, id string, updates map[string]interface{}) error {
	query, args, ok := db.BuildUpdate("booths", boothUpdateColumns, updates, id)
	if !ok {
		return nil
	}
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("resources: update booth: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

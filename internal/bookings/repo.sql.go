package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tna-office/backoffice/internal/platform/db"
	"github.com/tna-office/backoffice/internal/shared"
)

// Repository provides PostgreSQL backed persistence for bookings.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Clock times are read back as HH:MM strings.
const bookingColumns = `id, resource_type, resource_id, resource_name, client_id, client_name,
	client_email, client_phone, booking_date,
	to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'),
	duration_hours, total_price, status, notes, created_by, created_at`

var bookingUpdateColumns = []string{
	"client_id", "client_name", "client_email", "client_phone", "booking_date",
	"start_time", "end_time", "duration_hours", "total_price", "status", "notes",
}

func scanBooking(row pgx.Row) (Booking, error) {
	var b Booking
	err := row.Scan(&b.ID, &b.ResourceType, &b.ResourceID, &b.ResourceName, &b.ClientID, &b.ClientName,
		&b.ClientEmail, &b.ClientPhone, &b.BookingDate,
		&b.StartTime, &b.EndTime,
		&b.DurationHours, &b.TotalPrice, &b.Status, &b.Notes, &b.CreatedBy, &b.CreatedAt)
	return b, err
}

// List returns all bookings ordered by date and start time, newest day first.
func (r *Repository) List(ctx context.Context) ([]Booking, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+bookingColumns+` FROM bookings ORDER BY booking_date DESC, start_time`)
	if err != nil {
		return nil, fmt.Errorf("bookings: list: %w", err)
	}
	defer rows.Close()
	var out []Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("bookings: scan: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// ListByResource returns the non-cancelled bookings of one resource.
func (r *Repository) ListByResource(ctx context.Context, resourceType, resourceID string) ([]Booking, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+bookingColumns+` FROM bookings
		WHERE resource_type = $1 AND resource_id = $2 AND status <> 'cancelled'
		ORDER BY booking_date, start_time`, resourceType, resourceID)
	if err != nil {
		return nil, fmt.Errorf("bookings: list by resource: %w", err)
	}
	defer rows.Close()
	var out []Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("bookings: scan: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Get returns the booking with the given id.
func (r *Repository) Get(ctx context.Context, id string) (Booking, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	b, err := scanBooking(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Booking{}, shared.ErrNotFound
	}
	if err != nil {
		return Booking{}, fmt.Errorf("bookings: get: %w", err)
	}
	return b, nil
}

// Create inserts a booking.
func (r *Repository) Create(ctx context.Context, b Booking) (Booking, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO bookings (id, resource_type, resource_id, resource_name, client_id, client_name,
			client_email, client_phone, booking_date, start_time, end_time,
			duration_hours, total_price, status, notes, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10::time, $11::time, $12, $13, $14, $15, $16)
		RETURNING `+bookingColumns,
		b.ID, b.ResourceType, b.ResourceID, b.ResourceName, b.ClientID, b.ClientName,
		b.ClientEmail, b.ClientPhone, b.BookingDate, b.StartTime, b.EndTime,
		b.DurationHours, b.TotalPrice, b.Status, b.Notes, b.CreatedBy)
	created, err := scanBooking(row)
	if err != nil {
		return Booking{}, fmt.Errorf("bookings: create: %w", err)
	}
	return created, nil
}

// Update applies allow-listed column updates.
func (r *Repository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	query, args, ok := db.BuildUpdate("bookings", bookingUpdateColumns, updates, id)
	if !ok {
		return nil
	}
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("bookings: update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes a booking.
func (r *Repository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("bookings: delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

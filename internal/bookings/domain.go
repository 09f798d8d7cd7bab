package bookings

import (
	"time"

	"github.com/tna-office/backoffice/internal/shared"
)

// Resource types a booking can target.
const (
	ResourceRoom  = "room"
	ResourceBooth = "booth"
)

// Booking statuses.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// Booking reserves a room or booth for part of a day. The resource name
// is snapshotted at creation time.
type Booking struct {
	ID            string       `json:"id"`
	ResourceType  string       `json:"resource_type"`
	ResourceID    string       `json:"resource_id"`
	ResourceName  string       `json:"resource_name"`
	ClientID      *string      `json:"client_id"`
	ClientName    string       `json:"client_name"`
	ClientEmail   string       `json:"client_email"`
	ClientPhone   string       `json:"client_phone"`
	BookingDate   *shared.Date `json:"booking_date"`
	StartTime     *string      `json:"start_time"`
	EndTime       *string      `json:"end_time"`
	StartDatetime string       `json:"start_datetime"`
	EndDatetime   string       `json:"end_datetime"`
	DurationHours *float64     `json:"duration_hours"`
	TotalPrice    float64      `json:"total_price"`
	Status        string       `json:"status"`
	Notes         string       `json:"notes"`
	CreatedBy     *string      `json:"created_by"`
	CreatedAt     time.Time    `json:"created_at"`
}

// ComputeDatetimes fills the combined start/end datetime fields from the
// booking date and clock times.
func (b *Booking) ComputeDatetimes() {
	if b.BookingDate == nil {
		return
	}
	day := b.BookingDate.Format("2006-01-02")
	if b.StartTime != nil && *b.StartTime != "" {
		b.StartDatetime = day + "T" + *b.StartTime + ":00"
	}
	if b.EndTime != nil && *b.EndTime != "" {
		b.EndDatetime = day + "T" + *b.EndTime + ":00"
	}
}

// PublicSlot is the reduced booking shape exposed without authentication,
// enough to render availability without leaking client details.
type PublicSlot struct {
	ID          string       `json:"id"`
	BookingDate *shared.Date `json:"booking_date"`
	StartTime   *string      `json:"start_time"`
	EndTime     *string      `json:"end_time"`
	Status      string       `json:"status"`
}

// CreateBookingRequest carries a new booking.
type CreateBookingRequest struct {
	ResourceType  string       `json:"resource_type" validate:"required,oneof=room booth"`
	ResourceID    string       `json:"resource_id" validate:"required"`
	ClientID      *string      `json:"client_id"`
	ClientName    string       `json:"client_name" validate:"required"`
	ClientEmail   string       `json:"client_email" validate:"omitempty,email"`
	ClientPhone   string       `json:"client_phone"`
	BookingDate   *shared.Date `json:"booking_date" validate:"required"`
	StartTime     *string      `json:"start_time"`
	EndTime       *string      `json:"end_time"`
	DurationHours *float64     `json:"duration_hours" validate:"omitempty,gt=0"`
	TotalPrice    float64      `json:"total_price" validate:"gte=0"`
	Notes         string       `json:"notes"`
}

// UpdateBookingRequest carries a partial booking update.
type UpdateBookingRequest struct {
	ClientID      *string      `json:"client_id"`
	ClientName    *string      `json:"client_name"`
	ClientEmail   *string      `json:"client_email" validate:"omitempty,email"`
	ClientPhone   *string      `json:"client_phone"`
	BookingDate   *shared.Date `json:"booking_date"`
	StartTime     *string      `json:"start_time"`
	EndTime       *string      `json:"end_time"`
	DurationHours *float64     `json:"duration_hours" validate:"omitempty,gt=0"`
	TotalPrice    *float64     `json:"total_price" validate:"omitempty,gte=0"`
	Status        *string      `json:"status" validate:"omitempty,oneof=pending confirmed cancelled completed"`
	Notes         *string      `json:"notes"`
}

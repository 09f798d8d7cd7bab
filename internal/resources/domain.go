package resources

import "time"

// Resource statuses.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Room is a bookable meeting room.
type Room struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Capacity     *int      `json:"capacity"`
	HourlyRate   float64   `json:"hourly_rate"`
	HalfDayRate  float64   `json:"half_day_rate"`
	FullDayRate  float64   `json:"full_day_rate"`
	Amenities    []string  `json:"amenities"`
	Color        string    `json:"color"`
	Status       string    `json:"status"`
	BlocksRooms  []string  `json:"blocks_rooms"`
	RelatedRooms []string  `json:"related_rooms"`
	ImageURL     string    `json:"image_url"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
}

// Booth is a bookable phone booth.
type Booth struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Capacity    *int      `json:"capacity"`
	HourlyRate  float64   `json:"hourly_rate"`
	HalfDayRate float64   `json:"half_day_rate"`
	FullDayRate float64   `json:"full_day_rate"`
	Color       string    `json:"color"`
	Status      string    `json:"status"`
	ImageURL    string    `json:"image_url"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateRoomRequest carries a new room.
type CreateRoomRequest struct {
	Name         string   `json:"name" validate:"required"`
	Capacity     *int     `json:"capacity"`
	HourlyRate   float64  `json:"hourly_rate" validate:"gte=0"`
	HalfDayRate  float64  `json:"half_day_rate" validate:"gte=0"`
	FullDayRate  float64  `json:"full_day_rate" validate:"gte=0"`
	Amenities    []string `json:"amenities"`
	Color        string   `json:"color"`
	BlocksRooms  []string `json:"blocks_rooms"`
	RelatedRooms []string `json:"related_rooms"`
	ImageURL     string   `json:"image_url"`
	Description  string   `json:"description"`
}

// UpdateRoomRequest carries a partial room update.
type UpdateRoomRequest struct {
	Name         *string   `json:"name"`
	Capacity     *int      `json:"capacity"`
	HourlyRate   *float64  `json:"hourly_rate" validate:"omitempty,gte=0"`
	HalfDayRate  *float64  `json:"half_day_rate" validate:"omitempty,gte=0"`
	FullDayRate  *float64  `json:"full_day_rate" validate:"omitempty,gte=0"`
	Amenities    *[]string `json:"amenities"`
	Color        *string   `json:"color"`
	Status       *string   `json:"status" validate:"omitempty,oneof=active inactive"`
	BlocksRooms  *[]string `json:"blocks_rooms"`
	RelatedRooms *[]string `json:"related_rooms"`
	ImageURL     *string   `json:"image_url"`
	Description  *string   `json:"description"`
}

// CreateBoothRequest carries a new booth.
type CreateBoothRequest struct {
	Name        string  `json:"name" validate:"required"`
	Capacity    *int    `json:"capacity"`
	HourlyRate  float64 `json:"hourly_rate" validate:"gte=0"`
	HalfDayRate float64 `json:"half_day_rate" validate:"gte=0"`
	FullDayRate float64 `json:"full_day_rate" validate:"gte=0"`
	Color       string  `json:"color"`
	ImageURL    string  `json:"image_url"`
	Description string  `json:"description"`
}

// UpdateBoothRequest carries a partial booth update.
type UpdateBoothRequest struct {
	Name        *string  `json:"name"`
	Capacity    *int     `json:"capacity"`
	HourlyRate  *float64 `json:"hourly_rate" validate:"omitempty,gte=0"`
	HalfDayRate *float64 `json:"half_day_rate" validate:"omitempty,gte=0"`
	FullDayRate *float64 `json:"full_day_rate" validate:"omitempty,gte=0"`
	Color       *string  `json:"color"`
	Status      *string  `json:"status" validate:"omitempty,oneof=active inactive"`
	ImageURL    *string  `json:"image_url"`
	Description *string  `json:"description"`
}

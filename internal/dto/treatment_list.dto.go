package dto

import "time"

// TreatmentListDTO is a treatment row plus the confirmed/completed booking
// counters computed by the listing join.
type TreatmentListDTO struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	DurationMinutes int       `json:"duration_minutes"`
	Price           float64   `json:"price"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	ActiveBookings    int `json:"active_bookings"`
	CompletedBookings int `json:"completed_bookings"`
}

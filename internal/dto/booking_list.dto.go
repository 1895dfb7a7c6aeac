package dto

import "time"

// BookingDetailsDTO is a booking row enriched with the joined treatment and
// room names plus a comma-joined list of assigned personnel names.
type BookingDetailsDTO struct {
	ID          string    `json:"id"`
	ClientName  string    `json:"client_name"`
	ClientEmail string    `json:"client_email"`
	ClientPhone string    `json:"client_phone"`
	BookingDate string    `json:"booking_date"`
	BookingTime string    `json:"booking_time"`
	TreatmentID string    `json:"treatment_id"`
	RoomID      string    `json:"room_id"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	TreatmentName  string `json:"treatment_name"`
	RoomName       string `json:"room_name"`
	PersonnelNames string `json:"personnel_names"`
}

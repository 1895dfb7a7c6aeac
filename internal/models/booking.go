package models

import "time"

type Booking struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientEmail string `gorm:"size:100;not null" json:"client_email"`
	ClientPhone string `gorm:"size:20;not null" json:"client_phone"`

	// Wall-clock values as supplied by the client, "2006-01-02" / "15:04".
	BookingDate string `gorm:"size:10;not null" json:"booking_date"`
	BookingTime string `gorm:"size:5;not null" json:"booking_time"`

	TreatmentID string    `gorm:"type:uuid;not null" json:"treatment_id"`
	Treatment   Treatment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	RoomID string `gorm:"type:uuid;not null" json:"room_id"`
	Room   Room   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Status string `gorm:"size:20;default:'confirmed'" json:"status"`

	Notes string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookingPersonnel is the attribute-free join row between a booking and the
// personnel assigned to it. Foreign keys make an unknown personnel id fail
// at insert time, which aborts the surrounding create transaction.
type BookingPersonnel struct {
	BookingID string  `gorm:"type:uuid;primaryKey" json:"booking_id"`
	Booking   Booking `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	PersonnelID string    `gorm:"type:uuid;primaryKey" json:"personnel_id"`
	Personnel   Personnel `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

func (BookingPersonnel) TableName() string {
	return "booking_personnel"
}

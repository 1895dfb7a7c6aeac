package models

import "time"

const (
	RoomStatusAvailable   = "available"
	RoomStatusMaintenance = "maintenance"
)

type Room struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Capacity    int    `json:"capacity"`
	Description string `gorm:"size:255" json:"description"`

	Status string `gorm:"size:20;default:'available'" json:"status"`

	// Only meaningful while Status is maintenance.
	MaintenanceNote string `gorm:"size:255" json:"maintenance_note"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package models

import "time"

// WorkingHours holds one weekday entry of a personnel schedule. The full
// set for a personnel is replaced wholesale on every update, never patched.
type WorkingHours struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PersonnelID string    `gorm:"type:uuid;index;not null" json:"personnel_id"`
	Personnel   Personnel `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	DayOfWeek string `gorm:"size:10;not null" json:"day_of_week"`
	IsWorking bool   `json:"is_working"`

	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (WorkingHours) TableName() string {
	return "working_hours"
}

// Weekdays is the canonical ordering used for schedule listings.
var Weekdays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

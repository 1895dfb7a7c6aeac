package dto

import "time"

type WorkingHoursListDTO struct {
	ID          uint      `json:"id"`
	PersonnelID string    `json:"personnel_id"`
	DayOfWeek   string    `json:"day_of_week"`
	IsWorking   bool      `json:"is_working"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	PersonnelName string `json:"personnel_name"`
}

package models

import "time"

type Personnel struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	Role     string `gorm:"size:50;not null" json:"role"`
	Email    string `gorm:"size:100;not null" json:"email"`
	Phone    string `gorm:"size:20" json:"phone"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Personnel) TableName() string {
	return "personnel"
}

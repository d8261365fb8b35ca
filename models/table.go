package models

import "time"

type Table struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TableNumber string    `gorm:"type:varchar(50);not null;unique" json:"table_number"`
	Capacity    int       `gorm:"not null" json:"capacity"`
	Area        string    `gorm:"type:varchar(100)" json:"area,omitempty"`
	Type        string    `gorm:"type:varchar(50)" json:"type,omitempty"`
	IsActive    int       `gorm:"not null;default:1" json:"is_active"`
	Notes       string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

package models

import "time"

type Item struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	Category       string    `gorm:"type:varchar(100)" json:"category,omitempty"`
	Vendor         string    `gorm:"type:varchar(255)" json:"vendor,omitempty"`
	Unit           string    `gorm:"type:varchar(50)" json:"unit,omitempty"`
	StockRemaining int       `gorm:"not null;default:0" json:"stock_remaining"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null" json:"updated_at"`
}

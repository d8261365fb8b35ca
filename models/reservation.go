package models

import "time"

// Recognized reservation statuses. Storage does not enforce this set;
// status stays a free-form tag like in the admin UI it serves.
const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
	ReservationCompleted = "completed"
	ReservationNoShow    = "no_show"
)

type Reservation struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	TableID         uint      `gorm:"not null;index" json:"table_id"`
	Table           Table     `gorm:"foreignKey:TableID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"table,omitempty"`
	CustomerName    string    `gorm:"type:varchar(100);not null" json:"customer_name"`
	CustomerPhone   string    `gorm:"type:varchar(50);not null" json:"customer_phone"`
	CustomerEmail   string    `gorm:"type:varchar(320)" json:"customer_email,omitempty"`
	PartySize       int       `gorm:"not null" json:"party_size"`
	ReservationTime time.Time `gorm:"not null;index" json:"reservation_time"`
	Duration        int       `gorm:"not null;default:120" json:"duration"`
	Status          string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Notes           string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedBy       *uint     `gorm:"index" json:"created_by,omitempty"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`
}

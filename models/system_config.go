package models

import "time"

// Config keys seeded by ConfigService.InitDefaults.
const (
	ConfigBusinessStartTime = "business_start_time"
	ConfigBusinessEndTime   = "business_end_time"
	ConfigBufferTimeMinutes = "buffer_time_minutes"
	ConfigTimeSlotMinutes   = "time_slot_minutes"
	ConfigReservationView   = "reservation_view_style"
)

type SystemConfig struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ConfigKey   string    `gorm:"type:varchar(100);not null;unique" json:"config_key"`
	ConfigValue string    `gorm:"type:varchar(255);not null" json:"config_value"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

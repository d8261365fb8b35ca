// Package repository wraps all database access behind one interface per
// entity, so controllers and services depend on an abstraction instead of a
// shared gorm handle. Tests substitute the sqlite in-memory driver.
package repository

import (
	"time"

	"github.com/yeremiapane/reservation-app/models"
)

type ReservationRepository interface {
	FindAll() ([]models.Reservation, error)
	FindByID(id uint) (*models.Reservation, error)
	FindByDateRange(start, end time.Time) ([]models.Reservation, error)
	FindByTableID(tableID uint) ([]models.Reservation, error)
	FindByStatus(status string) ([]models.Reservation, error)
	Create(reservation *models.Reservation) error
	Save(reservation *models.Reservation) error
	Delete(id uint) error
	HasConflict(tableID uint, start time.Time, durationMinutes int, excludeID uint) (bool, error)
}

type TableRepository interface {
	FindAll() ([]models.Table, error)
	FindActive() ([]models.Table, error)
	FindByID(id uint) (*models.Table, error)
	Create(table *models.Table) error
	Save(table *models.Table) error
	SoftDelete(id uint) error
}

type ConfigRepository interface {
	FindAll() ([]models.SystemConfig, error)
	FindByKey(key string) (*models.SystemConfig, error)
	Create(config *models.SystemConfig) error
	Save(config *models.SystemConfig) error
}

type ItemRepository interface {
	FindAll() ([]models.Item, error)
	FindByID(id uint) (*models.Item, error)
	Create(item *models.Item) error
	Save(item *models.Item) error
	Delete(id uint) error
}

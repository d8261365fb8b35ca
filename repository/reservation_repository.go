package repository

import (
	"errors"
	"time"

	"github.com/yeremiapane/reservation-app/models"
	"gorm.io/gorm"
)

type GormReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *GormReservationRepository {
	return &GormReservationRepository{db: db}
}

func (r *GormReservationRepository) FindAll() ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.db.Find(&reservations).Error
	return reservations, err
}

func (r *GormReservationRepository) FindByID(id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	err := r.db.First(&reservation, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// FindByDateRange returns reservations whose reservation_time lies inside the
// closed range [start, end].
func (r *GormReservationRepository) FindByDateRange(start, end time.Time) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.db.
		Where("reservation_time >= ?", start).
		Where("reservation_time <= ?", end).
		Find(&reservations).Error
	return reservations, err
}

func (r *GormReservationRepository) FindByTableID(tableID uint) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.db.Where("table_id = ?", tableID).Find(&reservations).Error
	return reservations, err
}

func (r *GormReservationRepository) FindByStatus(status string) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.db.Where("status = ?", status).Find(&reservations).Error
	return reservations, err
}

func (r *GormReservationRepository) Create(reservation *models.Reservation) error {
	return r.db.Create(reservation).Error
}

func (r *GormReservationRepository) Save(reservation *models.Reservation) error {
	return r.db.Save(reservation).Error
}

func (r *GormReservationRepository) Delete(id uint) error {
	return r.db.Delete(&models.Reservation{}, id).Error
}

// HasConflict reports whether another reservation on the table starts inside
// [start, start + durationMinutes], both bounds inclusive. This is start-time
// containment, not full interval overlap: a proposed slot that begins midway
// through a longer existing reservation is not flagged unless that
// reservation's start also lands inside the proposed window. Kept as-is to
// match the admin tool's historical behavior; see DESIGN.md before changing.
func (r *GormReservationRepository) HasConflict(tableID uint, start time.Time, durationMinutes int, excludeID uint) (bool, error) {
	end := start.Add(time.Duration(durationMinutes) * time.Minute)

	query := r.db.Model(&models.Reservation{}).
		Where("table_id = ?", tableID).
		Where("reservation_time >= ?", start).
		Where("reservation_time <= ?", end)

	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

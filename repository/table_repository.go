package repository

import (
	"errors"

	"github.com/yeremiapane/reservation-app/models"
	"gorm.io/gorm"
)

type GormTableRepository struct {
	db *gorm.DB
}

func NewTableRepository(db *gorm.DB) *GormTableRepository {
	return &GormTableRepository{db: db}
}

func (r *GormTableRepository) FindAll() ([]models.Table, error) {
	var tables []models.Table
	err := r.db.Find(&tables).Error
	return tables, err
}

func (r *GormTableRepository) FindActive() ([]models.Table, error) {
	var tables []models.Table
	err := r.db.Where("is_active = ?", 1).Find(&tables).Error
	return tables, err
}

func (r *GormTableRepository) FindByID(id uint) (*models.Table, error) {
	var table models.Table
	err := r.db.First(&table, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *GormTableRepository) Create(table *models.Table) error {
	return r.db.Create(table).Error
}

func (r *GormTableRepository) Save(table *models.Table) error {
	return r.db.Save(table).Error
}

// SoftDelete clears is_active and keeps the row so historical reservations
// still resolve their table.
func (r *GormTableRepository) SoftDelete(id uint) error {
	return r.db.Model(&models.Table{}).Where("id = ?", id).Update("is_active", 0).Error
}

package repository

import (
	"errors"

	"github.com/yeremiapane/reservation-app/models"
	"gorm.io/gorm"
)

type GormItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

func (r *GormItemRepository) FindAll() ([]models.Item, error) {
	var items []models.Item
	err := r.db.Find(&items).Error
	return items, err
}

func (r *GormItemRepository) FindByID(id uint) (*models.Item, error) {
	var item models.Item
	err := r.db.First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormItemRepository) Create(item *models.Item) error {
	return r.db.Create(item).Error
}

func (r *GormItemRepository) Save(item *models.Item) error {
	return r.db.Save(item).Error
}

func (r *GormItemRepository) Delete(id uint) error {
	return r.db.Delete(&models.Item{}, id).Error
}

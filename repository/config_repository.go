package repository

import (
	"errors"

	"github.com/yeremiapane/reservation-app/models"
	"gorm.io/gorm"
)

type GormConfigRepository struct {
	db *gorm.DB
}

func NewConfigRepository(db *gorm.DB) *GormConfigRepository {
	return &GormConfigRepository{db: db}
}

func (r *GormConfigRepository) FindAll() ([]models.SystemConfig, error) {
	var configs []models.SystemConfig
	err := r.db.Find(&configs).Error
	return configs, err
}

func (r *GormConfigRepository) FindByKey(key string) (*models.SystemConfig, error) {
	var config models.SystemConfig
	err := r.db.Where("config_key = ?", key).First(&config).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &config, nil
}

func (r *GormConfigRepository) Create(config *models.SystemConfig) error {
	return r.db.Create(config).Error
}

func (r *GormConfigRepository) Save(config *models.SystemConfig) error {
	return r.db.Save(config).Error
}

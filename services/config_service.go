package services

import (
	"strconv"

	"github.com/yeremiapane/reservation-app/models"
	"github.com/yeremiapane/reservation-app/repository"
)

// Defaults seeded on first boot and used as fallbacks whenever a key is
// missing or unparsable.
const (
	DefaultBusinessStartTime = "09:00"
	DefaultBusinessEndTime   = "23:00"
	DefaultBufferMinutes     = 30
	DefaultSlotMinutes       = 30
	DefaultViewStyle         = "table"
)

// BusinessSettings is the typed view of the scheduling-related config keys.
type BusinessSettings struct {
	BusinessStartTime string `json:"business_start_time"`
	BusinessEndTime   string `json:"business_end_time"`
	SlotMinutes       int    `json:"time_slot_minutes"`
	BufferMinutes     int    `json:"buffer_time_minutes"`
	ViewStyle         string `json:"reservation_view_style"`
}

type ConfigService struct {
	Repo repository.ConfigRepository
}

func NewConfigService(repo repository.ConfigRepository) *ConfigService {
	return &ConfigService{Repo: repo}
}

func (s *ConfigService) GetAll() ([]models.SystemConfig, error) {
	return s.Repo.FindAll()
}

// Upsert writes a config value, keeping the old description when the caller
// does not supply a new one.
func (s *ConfigService) Upsert(key, value, description string) (*models.SystemConfig, error) {
	existing, err := s.Repo.FindByKey(key)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		existing.ConfigValue = value
		if description != "" {
			existing.Description = description
		}
		if err := s.Repo.Save(existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	config := &models.SystemConfig{
		ConfigKey:   key,
		ConfigValue: value,
		Description: description,
	}
	if err := s.Repo.Create(config); err != nil {
		return nil, err
	}
	return config, nil
}

// InitDefaults seeds the scheduling keys that are still missing. Existing
// values are never overwritten.
func (s *ConfigService) InitDefaults() error {
	defaults := []models.SystemConfig{
		{ConfigKey: models.ConfigBusinessStartTime, ConfigValue: DefaultBusinessStartTime, Description: "Business opening time (HH:mm)"},
		{ConfigKey: models.ConfigBusinessEndTime, ConfigValue: DefaultBusinessEndTime, Description: "Business closing time (HH:mm)"},
		{ConfigKey: models.ConfigBufferTimeMinutes, ConfigValue: strconv.Itoa(DefaultBufferMinutes), Description: "Buffer after each reservation (minutes)"},
		{ConfigKey: models.ConfigTimeSlotMinutes, ConfigValue: strconv.Itoa(DefaultSlotMinutes), Description: "Calendar slot width (minutes)"},
		{ConfigKey: models.ConfigReservationView, ConfigValue: DefaultViewStyle, Description: "Reservation view style (table=tables on the left, timeline=time on the left)"},
	}

	for _, def := range defaults {
		existing, err := s.Repo.FindByKey(def.ConfigKey)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		config := def
		if err := s.Repo.Create(&config); err != nil {
			return err
		}
	}
	return nil
}

// BusinessSettings resolves the scheduling config with defaults applied, so
// callers always get usable values even on an empty config table.
func (s *ConfigService) BusinessSettings() (BusinessSettings, error) {
	settings := BusinessSettings{
		BusinessStartTime: DefaultBusinessStartTime,
		BusinessEndTime:   DefaultBusinessEndTime,
		SlotMinutes:       DefaultSlotMinutes,
		BufferMinutes:     DefaultBufferMinutes,
		ViewStyle:         DefaultViewStyle,
	}

	configs, err := s.Repo.FindAll()
	if err != nil {
		return settings, err
	}

	for _, config := range configs {
		switch config.ConfigKey {
		case models.ConfigBusinessStartTime:
			settings.BusinessStartTime = config.ConfigValue
		case models.ConfigBusinessEndTime:
			settings.BusinessEndTime = config.ConfigValue
		case models.ConfigTimeSlotMinutes:
			if n, err := strconv.Atoi(config.ConfigValue); err == nil && n > 0 {
				settings.SlotMinutes = n
			}
		case models.ConfigBufferTimeMinutes:
			if n, err := strconv.Atoi(config.ConfigValue); err == nil && n >= 0 {
				settings.BufferMinutes = n
			}
		case models.ConfigReservationView:
			settings.ViewStyle = config.ConfigValue
		}
	}
	return settings, nil
}

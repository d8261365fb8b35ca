package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/reservation-app/events"
	"github.com/yeremiapane/reservation-app/services"
	"github.com/yeremiapane/reservation-app/utils"
)

type ConfigController struct {
	Service *services.ConfigService
}

func NewConfigController(service *services.ConfigService) *ConfigController {
	return &ConfigController{Service: service}
}

// GetAllConfigs -> every key/value pair
func (cc *ConfigController) GetAllConfigs(c *gin.Context) {
	configs, err := cc.Service.GetAll()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of configs", configs)
}

// GetBusinessSettings -> typed scheduling settings with defaults applied
func (cc *ConfigController) GetBusinessSettings(c *gin.Context) {
	settings, err := cc.Service.BusinessSettings()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Business settings", settings)
}

// UpsertConfig -> create or update one key
func (cc *ConfigController) UpsertConfig(c *gin.Context) {
	key := c.Param("key")

	var req struct {
		Value       string `json:"value" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	config, err := cc.Service.Upsert(key, req.Value, req.Description)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.Broadcast(events.Message{
		Event: events.EventConfigUpdate,
		Data:  config,
	})

	utils.InfoLogger.Printf("Config %s set to %s", config.ConfigKey, config.ConfigValue)
	utils.RespondJSON(c, http.StatusOK, "Config saved", config)
}

// InitDefaultConfigs -> seed missing scheduling keys
func (cc *ConfigController) InitDefaultConfigs(c *gin.Context) {
	if err := cc.Service.InitDefaults(); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	configs, err := cc.Service.GetAll()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Default configs initialized", configs)
}

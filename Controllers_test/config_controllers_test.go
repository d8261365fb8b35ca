package Controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/reservation-app/controllers"
	"github.com/yeremiapane/reservation-app/models"
	"github.com/yeremiapane/reservation-app/repository"
	"github.com/yeremiapane/reservation-app/services"
	"github.com/yeremiapane/reservation-app/utils"
)

func setupTestDBForConfigs(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:config_ctrl?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.SystemConfig{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	db.Exec("DELETE FROM system_configs")
	return db
}

func setupConfigRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	ctrl := controllers.NewConfigController(services.NewConfigService(repository.NewConfigRepository(db)))
	router.GET("/configs", ctrl.GetAllConfigs)
	router.GET("/configs/business", ctrl.GetBusinessSettings)
	router.PUT("/configs/:key", ctrl.UpsertConfig)
	router.POST("/configs/init", ctrl.InitDefaultConfigs)
	return router
}

func TestInitDefaultConfigsEndpoint(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForConfigs(t)
	router := setupConfigRouter(db)

	req, _ := http.NewRequest("POST", "/configs/init", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].([]interface{})
	assert.Len(t, data, 5)
}

func TestUpsertConfigEndpoint(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForConfigs(t)
	router := setupConfigRouter(db)

	w := postJSON(t, router, "PUT", "/configs/business_start_time", gin.H{
		"value":       "10:00",
		"description": "late opening",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// Overwrite the value; the description sticks.
	w = postJSON(t, router, "PUT", "/configs/business_start_time", gin.H{
		"value": "11:00",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "11:00", data["config_value"])
	assert.Equal(t, "late opening", data["description"])
}

func TestBusinessSettingsEndpoint(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForConfigs(t)
	router := setupConfigRouter(db)

	// Empty store still yields usable defaults.
	req, _ := http.NewRequest("GET", "/configs/business", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "09:00", data["business_start_time"])
	assert.Equal(t, "23:00", data["business_end_time"])
	assert.Equal(t, float64(30), data["time_slot_minutes"])
	assert.Equal(t, float64(30), data["buffer_time_minutes"])
	assert.Equal(t, "table", data["reservation_view_style"])
}

package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/reservation-app/events"
	"github.com/yeremiapane/reservation-app/models"
	"github.com/yeremiapane/reservation-app/repository"
	"github.com/yeremiapane/reservation-app/utils"
)

type TableController struct {
	Tables repository.TableRepository
}

func NewTableController(tables repository.TableRepository) *TableController {
	return &TableController{Tables: tables}
}

// FlexInt accepts both 4 and "4"; the admin UI has historically sent
// capacity either way.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return errors.New("capacity must be a number")
	}
	*f = FlexInt(n)
	return nil
}

// CreateTable -> register a new table
func (tc *TableController) CreateTable(c *gin.Context) {
	var req struct {
		TableNumber string  `json:"table_number" binding:"required"`
		Capacity    FlexInt `json:"capacity" binding:"required"`
		Area        string  `json:"area"`
		Type        string  `json:"type"`
		Notes       string  `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Capacity <= 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("capacity must be positive"))
		return
	}

	table := models.Table{
		TableNumber: req.TableNumber,
		Capacity:    int(req.Capacity),
		Area:        req.Area,
		Type:        req.Type,
		Notes:       req.Notes,
		IsActive:    1,
	}
	if err := tc.Tables.Create(&table); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.Broadcast(events.Message{
		Event: events.EventTableCreate,
		Data:  table,
	})

	utils.InfoLogger.Printf("New table created: %s (capacity=%d)", table.TableNumber, table.Capacity)
	utils.RespondJSON(c, http.StatusCreated, "Table created successfully", table)
}

// GetAllTables -> every table, including soft-deleted ones
func (tc *TableController) GetAllTables(c *gin.Context) {
	tables, err := tc.Tables.FindAll()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of tables", tables)
}

// GetActiveTables -> only tables still reservable
func (tc *TableController) GetActiveTables(c *gin.Context) {
	tables, err := tc.Tables.FindActive()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of active tables", tables)
}

// GetTableByID -> detail of one table
func (tc *TableController) GetTableByID(c *gin.Context) {
	id, err := paramID(c, "table_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.Tables.FindByID(id)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if table == nil {
		utils.RespondError(c, http.StatusNotFound, ErrNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table detail", table)
}

// UpdateTable -> partial edit of a table
func (tc *TableController) UpdateTable(c *gin.Context) {
	id, err := paramID(c, "table_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var req struct {
		TableNumber *string  `json:"table_number"`
		Capacity    *FlexInt `json:"capacity"`
		Area        *string  `json:"area"`
		Type        *string  `json:"type"`
		Notes       *string  `json:"notes"`
		IsActive    *int     `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.Tables.FindByID(id)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if table == nil {
		utils.RespondError(c, http.StatusNotFound, ErrNotFound)
		return
	}

	if req.TableNumber != nil {
		table.TableNumber = *req.TableNumber
	}
	if req.Capacity != nil {
		if *req.Capacity <= 0 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("capacity must be positive"))
			return
		}
		table.Capacity = int(*req.Capacity)
	}
	if req.Area != nil {
		table.Area = *req.Area
	}
	if req.Type != nil {
		table.Type = *req.Type
	}
	if req.Notes != nil {
		table.Notes = *req.Notes
	}
	if req.IsActive != nil {
		table.IsActive = *req.IsActive
	}

	if err := tc.Tables.Save(table); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.Broadcast(events.Message{
		Event: events.EventTableUpdate,
		Data:  table,
	})

	utils.InfoLogger.Printf("Table %d updated", table.ID)
	utils.RespondJSON(c, http.StatusOK, "Table updated", table)
}

// DeleteTable -> soft delete; reservations keep their table reference
func (tc *TableController) DeleteTable(c *gin.Context) {
	id, err := paramID(c, "table_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.Tables.FindByID(id)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if table == nil {
		utils.RespondError(c, http.StatusNotFound, ErrNotFound)
		return
	}

	if err := tc.Tables.SoftDelete(id); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.Broadcast(events.Message{
		Event: events.EventTableDelete,
		Data:  gin.H{"table_id": id},
	})

	utils.InfoLogger.Printf("Table %d deactivated", id)
	utils.RespondJSON(c, http.StatusOK, "Table deleted", gin.H{"id": id})
}

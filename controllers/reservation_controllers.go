package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/reservation-app/events"
	"github.com/yeremiapane/reservation-app/repository"
	"github.com/yeremiapane/reservation-app/services"
	"github.com/yeremiapane/reservation-app/utils"
)

type ReservationController struct {
	Service      *services.ReservationService
	Reservations repository.ReservationRepository
	Configs      *services.ConfigService
}

func NewReservationController(service *services.ReservationService, reservations repository.ReservationRepository, configs *services.ConfigService) *ReservationController {
	return &ReservationController{
		Service:      service,
		Reservations: reservations,
		Configs:      configs,
	}
}

// CreateReservation -> book a table for a customer
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req struct {
		TableID         uint      `json:"table_id" binding:"required"`
		CustomerName    string    `json:"customer_name" binding:"required"`
		CustomerPhone   string    `json:"customer_phone" binding:"required"`
		CustomerEmail   string    `json:"customer_email"`
		PartySize       int       `json:"party_size" binding:"required,gt=0"`
		ReservationTime time.Time `json:"reservation_time" binding:"required"`
		Duration        int       `json:"duration"`
		Status          string    `json:"status"`
		Notes           string    `json:"notes"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	input := services.CreateReservationInput{
		TableID:         req.TableID,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		PartySize:       req.PartySize,
		ReservationTime: req.ReservationTime,
		Duration:        req.Duration,
		Status:          req.Status,
		Notes:           req.Notes,
	}
	if userID, exists := c.Get("userID"); exists {
		if id, ok := userID.(uint); ok {
			input.CreatedBy = &id
		}
	}

	reservation, err := rc.Service.Create(input)
	if err != nil {
		if errors.Is(err, services.ErrSlotTaken) {
			utils.RespondError(c, http.StatusConflict, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.Broadcast(events.Message{
		Event: events.EventReservationCreate,
		Data:  reservation,
	})

	utils.InfoLogger.Printf("Reservation %d created: table %d at %s for %d min",
		reservation.ID, reservation.TableID, reservation.ReservationTime.Format(time.RFC3339), reservation.Duration)
	utils.RespondJSON(c, http.StatusCreated, "Reservation created successfully", reservation)
}

// GetAllReservations -> full list for the admin calendar
func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	reservations, err := rc.Reservations.FindAll()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of reservations", reservations)
}

// GetReservationByID -> detail of one reservation
func (rc *ReservationController) GetReservationByID(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.Reservations.FindByID(id)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if reservation == nil {
		utils.RespondError(c, http.StatusNotFound, ErrNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation detail", reservation)
}

// GetReservationsByDateRange -> reservations with start inside [start, end].
// Accepts RFC3339 instants or plain dates; a plain end date covers the whole
// day.
func (rc *ReservationController) GetReservationsByDateRange(c *gin.Context) {
	start, err := parseRangeBound(c.Query("start"), false)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	end, err := parseRangeBound(c.Query("end"), true)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservations, err := rc.Reservations.FindByDateRange(start, end)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservations in range", reservations)
}

// GetReservationsByStatus -> filter by status tag
func (rc *ReservationController) GetReservationsByStatus(c *gin.Context) {
	status := c.Param("status")
	reservations, err := rc.Reservations.FindByStatus(status)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservations with status: "+status, reservations)
}

// GetReservationsByTable -> all reservations of one table, active or not
func (rc *ReservationController) GetReservationsByTable(c *gin.Context) {
	tableID, err := paramID(c, "table_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservations, err := rc.Reservations.FindByTableID(tableID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservations for table", reservations)
}

// UpdateReservation -> partial edit, rechecks the slot when the schedule
// fields change
func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var req struct {
		TableID         *uint      `json:"table_id"`
		CustomerName    *string    `json:"customer_name"`
		CustomerPhone   *string    `json:"customer_phone"`
		CustomerEmail   *string    `json:"customer_email"`
		PartySize       *int       `json:"party_size"`
		ReservationTime *time.Time `json:"reservation_time"`
		Duration        *int       `json:"duration"`
		Status          *string    `json:"status"`
		Notes           *string    `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.Service.Update(id, services.UpdateReservationInput{
		TableID:         req.TableID,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		PartySize:       req.PartySize,
		ReservationTime: req.ReservationTime,
		Duration:        req.Duration,
		Status:          req.Status,
		Notes:           req.Notes,
	})
	if err != nil {
		if errors.Is(err, services.ErrSlotTaken) {
			utils.RespondError(c, http.StatusConflict, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if reservation == nil {
		utils.RespondError(c, http.StatusNotFound, ErrNotFound)
		return
	}

	events.Broadcast(events.Message{
		Event: events.EventReservationUpdate,
		Data:  reservation,
	})

	utils.InfoLogger.Printf("Reservation %d updated", reservation.ID)
	utils.RespondJSON(c, http.StatusOK, "Reservation updated", reservation)
}

// DeleteReservation -> hard delete
func (rc *ReservationController) DeleteReservation(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.Reservations.FindByID(id)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if reservation == nil {
		utils.RespondError(c, http.StatusNotFound, ErrNotFound)
		return
	}

	if err := rc.Service.Delete(id); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.Broadcast(events.Message{
		Event: events.EventReservationDelete,
		Data:  gin.H{"id": id},
	})

	utils.InfoLogger.Printf("Reservation %d deleted", id)
	utils.RespondJSON(c, http.StatusOK, "Reservation deleted", gin.H{"id": id})
}

// GetReservationPlacement -> grid position under the current business
// settings, for the calendar view
func (rc *ReservationController) GetReservationPlacement(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.Reservations.FindByID(id)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if reservation == nil {
		utils.RespondError(c, http.StatusNotFound, ErrNotFound)
		return
	}

	settings, err := rc.Configs.BusinessSettings()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	placement := rc.Service.Placement(reservation, settings)
	utils.RespondJSON(c, http.StatusOK, "Reservation placement", placement)
}

func paramID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, errors.New("invalid " + name)
	}
	return uint(id), nil
}

func parseRangeBound(value string, endOfDay bool) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("missing start or end query parameter")
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, errors.New("invalid date: " + value)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Second)
	}
	return t, nil
}

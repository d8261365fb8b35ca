package services

import (
	"errors"
	"time"

	"github.com/yeremiapane/reservation-app/models"
	"github.com/yeremiapane/reservation-app/repository"
)

// ErrSlotTaken is surfaced verbatim to the admin UI as the conflict toast.
var ErrSlotTaken = errors.New("该时间段已有预约，请选择其他时间")

const DefaultDurationMinutes = 120

type CreateReservationInput struct {
	TableID         uint
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	PartySize       int
	ReservationTime time.Time
	Duration        int
	Status          string
	Notes           string
	CreatedBy       *uint
}

// UpdateReservationInput patches a reservation; nil fields are left alone.
type UpdateReservationInput struct {
	TableID         *uint
	CustomerName    *string
	CustomerPhone   *string
	CustomerEmail   *string
	PartySize       *int
	ReservationTime *time.Time
	Duration        *int
	Status          *string
	Notes           *string
}

type ReservationService struct {
	Reservations repository.ReservationRepository
}

func NewReservationService(reservations repository.ReservationRepository) *ReservationService {
	return &ReservationService{Reservations: reservations}
}

// Create checks the slot and inserts. The check and the insert are two
// store round-trips, not one transaction: two concurrent creates for the
// same table and window can both pass the check and both land. Accepted
// for a single-admin tool; see DESIGN.md.
func (s *ReservationService) Create(input CreateReservationInput) (*models.Reservation, error) {
	if input.Duration <= 0 {
		input.Duration = DefaultDurationMinutes
	}
	if input.Status == "" {
		input.Status = models.ReservationPending
	}

	conflict, err := s.Reservations.HasConflict(input.TableID, input.ReservationTime, input.Duration, 0)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, ErrSlotTaken
	}

	reservation := &models.Reservation{
		TableID:         input.TableID,
		CustomerName:    input.CustomerName,
		CustomerPhone:   input.CustomerPhone,
		CustomerEmail:   input.CustomerEmail,
		PartySize:       input.PartySize,
		ReservationTime: input.ReservationTime,
		Duration:        input.Duration,
		Status:          input.Status,
		Notes:           input.Notes,
		CreatedBy:       input.CreatedBy,
	}
	if err := s.Reservations.Create(reservation); err != nil {
		return nil, err
	}
	return reservation, nil
}

// Update applies a partial edit. The conflict check only reruns when the
// table, start time, or duration changes, and it excludes the reservation's
// own id so rescheduling never trips over itself.
func (s *ReservationService) Update(id uint, input UpdateReservationInput) (*models.Reservation, error) {
	reservation, err := s.Reservations.FindByID(id)
	if err != nil {
		return nil, err
	}
	if reservation == nil {
		return nil, nil
	}

	tableID := reservation.TableID
	start := reservation.ReservationTime
	duration := reservation.Duration

	recheck := false
	if input.TableID != nil && *input.TableID != tableID {
		tableID = *input.TableID
		recheck = true
	}
	if input.ReservationTime != nil && !input.ReservationTime.Equal(start) {
		start = *input.ReservationTime
		recheck = true
	}
	if input.Duration != nil && *input.Duration != duration {
		duration = *input.Duration
		recheck = true
	}

	if recheck {
		conflict, err := s.Reservations.HasConflict(tableID, start, duration, reservation.ID)
		if err != nil {
			return nil, err
		}
		if conflict {
			return nil, ErrSlotTaken
		}
	}

	reservation.TableID = tableID
	reservation.ReservationTime = start
	reservation.Duration = duration
	if input.CustomerName != nil {
		reservation.CustomerName = *input.CustomerName
	}
	if input.CustomerPhone != nil {
		reservation.CustomerPhone = *input.CustomerPhone
	}
	if input.CustomerEmail != nil {
		reservation.CustomerEmail = *input.CustomerEmail
	}
	if input.PartySize != nil {
		reservation.PartySize = *input.PartySize
	}
	if input.Status != nil {
		reservation.Status = *input.Status
	}
	if input.Notes != nil {
		reservation.Notes = *input.Notes
	}

	if err := s.Reservations.Save(reservation); err != nil {
		return nil, err
	}
	return reservation, nil
}

func (s *ReservationService) Delete(id uint) error {
	return s.Reservations.Delete(id)
}

// Placement computes where a reservation renders on the grid under the
// given business settings.
func (s *ReservationService) Placement(reservation *models.Reservation, settings BusinessSettings) SlotPlacement {
	return ComputeSlotPlacement(
		reservation.ReservationTime,
		reservation.Duration,
		settings.BusinessStartTime,
		settings.SlotMinutes,
		settings.BufferMinutes,
	)
}

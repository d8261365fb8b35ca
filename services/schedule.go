package services

import (
	"time"
)

// SlotPlacement positions a reservation on the calendar grid. Columns are
// SlotMinutes wide and start at the configured business start time.
type SlotPlacement struct {
	SlotIndex    int `json:"slot_index"`
	SlotsSpanned int `json:"slots_spanned"`
}

// ComputeSlotPlacement maps a reservation onto the time-slot grid.
//
// SlotIndex is the column of the reservation's start relative to the
// business start time; it goes negative when the reservation starts before
// business hours, and callers rendering the grid clip it themselves.
// SlotsSpanned covers the duration plus the buffer, rounded up to whole
// slots, so the blocked width includes clearing time.
func ComputeSlotPlacement(reservationStart time.Time, durationMinutes int, businessStartTime string, slotMinutes, bufferMinutes int) SlotPlacement {
	offsetMinutes := minutesOfDay(reservationStart) - ClockMinutes(businessStartTime)

	return SlotPlacement{
		SlotIndex:    floorDiv(offsetMinutes, slotMinutes),
		SlotsSpanned: ceilDiv(durationMinutes+bufferMinutes, slotMinutes),
	}
}

// ClockMinutes converts an "HH:mm" string to minutes since midnight.
// Malformed values count as midnight; config reads validate before we
// ever get here.
func ClockMinutes(clock string) int {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0
	}
	return t.Hour()*60 + t.Minute()
}

func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// floorDiv rounds toward negative infinity, unlike Go's truncating
// division, so pre-opening reservations land on negative slot indexes.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}

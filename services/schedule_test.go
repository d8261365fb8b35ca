package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeSlotPlacement(t *testing.T) {
	// Business hours 09:00-23:00, 30 min slots, 30 min buffer:
	// 18:00 for 120 min lands on column 18 and spans 5 slots.
	start := time.Date(2026, 1, 10, 18, 0, 0, 0, time.Local)

	placement := ComputeSlotPlacement(start, 120, "09:00", 30, 30)

	assert.Equal(t, 18, placement.SlotIndex)
	assert.Equal(t, 5, placement.SlotsSpanned)
}

func TestComputeSlotPlacementIsDeterministic(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 15, 0, 0, time.Local)

	first := ComputeSlotPlacement(start, 90, "10:00", 15, 10)
	second := ComputeSlotPlacement(start, 90, "10:00", 15, 10)

	assert.Equal(t, first, second)
}

func TestComputeSlotPlacementBeforeOpening(t *testing.T) {
	// Reservations before business hours get a negative index; the grid
	// renderer clips them, this function does not clamp.
	start := time.Date(2026, 1, 10, 8, 0, 0, 0, time.Local)

	placement := ComputeSlotPlacement(start, 60, "09:00", 30, 0)

	assert.Equal(t, -2, placement.SlotIndex)
	assert.Equal(t, 2, placement.SlotsSpanned)
}

func TestComputeSlotPlacementPartialSlotRoundsUp(t *testing.T) {
	start := time.Date(2026, 1, 10, 9, 0, 0, 0, time.Local)

	placement := ComputeSlotPlacement(start, 1, "09:00", 30, 0)

	assert.Equal(t, 0, placement.SlotIndex)
	assert.Equal(t, 1, placement.SlotsSpanned, "any positive duration must span at least one slot")

	placement = ComputeSlotPlacement(start, 31, "09:00", 30, 0)
	assert.Equal(t, 2, placement.SlotsSpanned)
}

func TestComputeSlotPlacementMidSlotStart(t *testing.T) {
	// 09:45 with 30 min slots floors to column 1.
	start := time.Date(2026, 1, 10, 9, 45, 0, 0, time.Local)

	placement := ComputeSlotPlacement(start, 60, "09:00", 30, 30)

	assert.Equal(t, 1, placement.SlotIndex)
	assert.Equal(t, 3, placement.SlotsSpanned)
}

func TestClockMinutes(t *testing.T) {
	assert.Equal(t, 540, ClockMinutes("09:00"))
	assert.Equal(t, 1380, ClockMinutes("23:00"))
	assert.Equal(t, 0, ClockMinutes("00:00"))
	assert.Equal(t, 0, ClockMinutes("not-a-clock"))
}

package services

import (
	"testing"

	"gfabackend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floorRoomAreaTotal(rooms []models.Room) float64 {
	var total float64
	for _, room := range rooms {
		total += room.Area
	}
	return total
}

// GFA plus granted exemptions always equals the measured floor area. Any
// drift here means area was invented or lost.
func TestFloorConservation(t *testing.T) {
	engine := newTestEngine(t)

	rooms := []models.Room{
		{ID: "R-1", Category: "flat", Area: 420.5},
		{ID: "R-2", Category: "bathroom", Area: 18.25},
		{ID: "R-3", Category: "corridor", Area: 35},
		{ID: "P-1", Category: "carpark", Area: 95.75},
		{ID: "G-1", Category: "sky garden", Area: 60},
		{ID: "B-1", Category: "balcony", Area: 3.3, Attributes: map[string]string{"enclosed": "false"}},
		{ID: "S-1", Category: "staircase", Area: 22},
	}

	schedule, err := engine.ProcessFloor("5/F", rooms)
	require.NoError(t, err)

	assert.InDelta(t, floorRoomAreaTotal(rooms), schedule.GFA+schedule.ExemptTotal, 1e-9)
}

func TestFloorResultIndependentOfRoomOrder(t *testing.T) {
	engine := newTestEngine(t)

	rooms := []models.Room{
		{ID: "R-1", Category: "flat", Area: 800},
		{ID: "P-1", Category: "carpark", Area: 90},
		{ID: "G-1", Category: "sky garden", Area: 120},
		{ID: "R-2", Category: "store room", Area: 15},
	}
	reversed := make([]models.Room, len(rooms))
	for i, room := range rooms {
		reversed[len(rooms)-1-i] = room
	}

	a, err := engine.ProcessFloor("1/F", rooms)
	require.NoError(t, err)
	b, err := engine.ProcessFloor("1/F", reversed)
	require.NoError(t, err)

	assert.InDelta(t, a.GFA, b.GFA, 1e-9)
	assert.InDelta(t, a.NOFA, b.NOFA, 1e-9)
	assert.InDelta(t, a.ExemptTotal, b.ExemptTotal, 1e-9)
	assert.Equal(t, a.CapGroups, b.CapGroups)
}

func TestNofaExcludesServiceRooms(t *testing.T) {
	engine := newTestEngine(t)

	schedule, err := engine.ProcessFloor("1/F", []models.Room{
		{ID: "R-1", Category: "flat", Area: 50},
		{ID: "R-2", Category: "bathroom", Area: 10},
		{ID: "R-3", Category: "corridor", Area: 8},
	})
	require.NoError(t, err)

	assert.InDelta(t, 68.0, schedule.GFA, 1e-9)
	assert.InDelta(t, 50.0, schedule.NOFA, 1e-9)
}

// Reclassified excess is a floor-level amount; only the NOFA-eligible share
// of the group's requested area flows into NOFA.
func TestNofaShareOfReclassifiedExcess(t *testing.T) {
	table, err := NewRuleTable("test", []models.RuleEntry{
		{Category: "studio", Treatment: models.TreatmentCounted, CountsTowardNofa: true},
		{Category: "winter garden", Treatment: models.TreatmentExempt, CapGroup: "green", CountsTowardNofa: true},
		{Category: "plant deck", Treatment: models.TreatmentExempt, CapGroup: "green"},
	})
	require.NoError(t, err)
	engine := NewEngine(table, DefaultCapRate)

	schedule, err := engine.ProcessFloor("1/F", []models.Room{
		{ID: "S-1", Category: "studio", Area: 100},
		{ID: "W-1", Category: "winter garden", Area: 20},
		{ID: "P-1", Category: "plant deck", Area: 20},
	})
	require.NoError(t, err)

	// cap 10, requested 40, excess 30; half the group is NOFA-eligible
	assert.InDelta(t, 130.0, schedule.GFA, 1e-9)
	assert.InDelta(t, 115.0, schedule.NOFA, 1e-9)
	assert.InDelta(t, 10.0, schedule.ExemptTotal, 1e-9)
	assert.InDelta(t, 140.0, schedule.GFA+schedule.ExemptTotal, 1e-9)
}

func TestCapWarningOnExceededGroup(t *testing.T) {
	engine := newTestEngine(t)

	schedule, err := engine.ProcessFloor("1/F", []models.Room{
		{ID: "R-1", Category: "flat", Area: 1000},
		{ID: "P-1", Category: "carpark", Area: 150},
	})
	require.NoError(t, err)

	require.Len(t, schedule.Warnings, 1)
	assert.Contains(t, schedule.Warnings[0], "carpark")
	assert.Contains(t, schedule.Warnings[0], "reclassified")
}

func TestCapWarningOnApproachingGroup(t *testing.T) {
	engine := newTestEngine(t)

	schedule, err := engine.ProcessFloor("1/F", []models.Room{
		{ID: "R-1", Category: "flat", Area: 1000},
		{ID: "P-1", Category: "carpark", Area: 90},
	})
	require.NoError(t, err)

	// 90 of a 100 cap is past the 80% advisory threshold
	require.Len(t, schedule.Warnings, 1)
	assert.Contains(t, schedule.Warnings[0], "carpark")
	assert.Contains(t, schedule.Warnings[0], "90%")
}

func TestNoCapWarningBelowThreshold(t *testing.T) {
	engine := newTestEngine(t)

	schedule, err := engine.ProcessFloor("1/F", []models.Room{
		{ID: "R-1", Category: "flat", Area: 1000},
		{ID: "P-1", Category: "carpark", Area: 50},
	})
	require.NoError(t, err)

	assert.Empty(t, schedule.Warnings)
}

func TestAggregateFloorKeepsClassifiedRooms(t *testing.T) {
	engine := newTestEngine(t)

	schedule, err := engine.ProcessFloor("2/F", []models.Room{
		{ID: "R-1", Category: "flat", Area: 60},
		{ID: "P-1", Category: "carpark", Area: 5},
	})
	require.NoError(t, err)

	require.Len(t, schedule.Rooms, 2)
	assert.Equal(t, "R-1", schedule.Rooms[0].ID)
	assert.Equal(t, models.TreatmentExempt, schedule.Rooms[1].Treatment)
}

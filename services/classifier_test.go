package services

import (
	"math"
	"testing"

	"gfabackend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	table, err := DefaultRuleTable()
	require.NoError(t, err)
	return NewEngine(table, DefaultCapRate)
}

func TestClassifyCountedRoom(t *testing.T) {
	engine := newTestEngine(t)

	got, err := engine.ClassifyRoom(models.Room{ID: "R-101", Category: "flat", Area: 42.5})
	require.NoError(t, err)
	assert.Equal(t, models.TreatmentCounted, got.Treatment)
	assert.Empty(t, got.CapGroup)
	assert.True(t, got.CountsTowardNofa)
}

func TestClassifyExemptRoomCarriesCapGroup(t *testing.T) {
	engine := newTestEngine(t)

	got, err := engine.ClassifyRoom(models.Room{ID: "P-1", Category: "Carpark", Area: 250})
	require.NoError(t, err)
	assert.Equal(t, models.TreatmentExempt, got.Treatment)
	assert.Equal(t, "carpark", got.CapGroup)
}

func TestClassifyConditionalBalcony(t *testing.T) {
	engine := newTestEngine(t)

	open, err := engine.ClassifyRoom(models.Room{
		ID: "B-1", Category: "balcony", Area: 3.2,
		Attributes: map[string]string{"enclosed": "false"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.TreatmentExempt, open.Treatment)
	assert.Equal(t, "green_feature", open.CapGroup)

	enclosed, err := engine.ClassifyRoom(models.Room{
		ID: "B-2", Category: "balcony", Area: 3.2,
		Attributes: map[string]string{"enclosed": "true"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.TreatmentCounted, enclosed.Treatment)
	assert.Empty(t, enclosed.CapGroup)
}

func TestClassifyConditionalMissingAttribute(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.ClassifyRoom(models.Room{ID: "B-3", Category: "balcony", Area: 3.2})
	require.Error(t, err)

	var missing *MissingAttributeError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "B-3", missing.RoomID)
	assert.Equal(t, "balcony", missing.Category)
	assert.Equal(t, "enclosed", missing.Attribute)
}

func TestClassifyUnknownCategory(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.ClassifyRoom(models.Room{ID: "M-9", Category: "mezzanine-x", Area: 12})
	require.Error(t, err)

	var unknown *UnknownCategoryError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "M-9", unknown.RoomID)
	assert.Equal(t, "mezzanine-x", unknown.Category)
	assert.Contains(t, err.Error(), "M-9")
}

func TestClassifyRejectsInvalidAreas(t *testing.T) {
	engine := newTestEngine(t)

	for _, area := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := engine.ClassifyRoom(models.Room{ID: "X", Category: "flat", Area: area})
		var invalid *InvalidAreaError
		require.ErrorAs(t, err, &invalid)
	}
}

func TestClassifyZeroAreaAllowed(t *testing.T) {
	engine := newTestEngine(t)

	got, err := engine.ClassifyRoom(models.Room{ID: "Z", Category: "flat", Area: 0})
	require.NoError(t, err)
	assert.Equal(t, models.TreatmentCounted, got.Treatment)
}

func TestClassifyFloorFillsFloorID(t *testing.T) {
	engine := newTestEngine(t)

	classified, err := engine.ClassifyFloor("3/F", []models.Room{
		{ID: "R-1", Category: "flat", Area: 40},
		{ID: "R-2", Category: "flat", Area: 40, FloorID: "mezz"},
	})
	require.NoError(t, err)
	assert.Equal(t, "3/F", classified[0].FloorID)
	assert.Equal(t, "mezz", classified[1].FloorID)
}

func TestClassifyFloorAbortsOnFirstError(t *testing.T) {
	engine := newTestEngine(t)

	classified, err := engine.ClassifyFloor("1/F", []models.Room{
		{ID: "R-1", Category: "flat", Area: 40},
		{ID: "R-2", Category: "mezzanine-x", Area: 12},
		{ID: "R-3", Category: "flat", Area: 40},
	})
	require.Error(t, err)
	assert.Nil(t, classified)
}

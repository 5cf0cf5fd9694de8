package services

import (
	"math"

	"gfabackend/models"
)

// ClassifyRoom resolves one room against the table. Classification of one
// room never depends on any other room.
func (e *Engine) ClassifyRoom(room models.Room) (models.ClassifiedRoom, error) {
	if room.Area < 0 || math.IsNaN(room.Area) || math.IsInf(room.Area, 0) {
		return models.ClassifiedRoom{}, &InvalidAreaError{RoomID: room.ID, Area: room.Area}
	}

	entry, ok := e.table.Lookup(room.Category)
	if !ok {
		return models.ClassifiedRoom{}, &UnknownCategoryError{RoomID: room.ID, Category: room.Category}
	}

	treatment := entry.Treatment
	if treatment == models.TreatmentConditional {
		value, present := room.Attributes[entry.Condition.Attribute]
		if !present {
			return models.ClassifiedRoom{}, &MissingAttributeError{
				RoomID:    room.ID,
				Category:  entry.Category,
				Attribute: entry.Condition.Attribute,
			}
		}
		if value == entry.Condition.Equals {
			treatment = models.TreatmentExempt
		} else {
			treatment = models.TreatmentCounted
		}
	}

	classified := models.ClassifiedRoom{
		Room:             room,
		Treatment:        treatment,
		CountsTowardNofa: entry.CountsTowardNofa,
	}
	// the cap group only travels with exempt rooms
	if treatment == models.TreatmentExempt {
		classified.CapGroup = entry.CapGroup
	}
	return classified, nil
}

// ClassifyFloor classifies every room on a floor. The first failure aborts
// the floor: a partially classified floor has no valid schedule.
func (e *Engine) ClassifyFloor(floorID string, rooms []models.Room) ([]models.ClassifiedRoom, error) {
	classified := make([]models.ClassifiedRoom, 0, len(rooms))
	for _, room := range rooms {
		if room.FloorID == "" {
			room.FloorID = floorID
		}
		result, err := e.ClassifyRoom(room)
		if err != nil {
			return nil, err
		}
		classified = append(classified, result)
	}
	return classified, nil
}

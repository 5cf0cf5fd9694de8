package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"gfabackend/models"
)

// ExpandFloors resolves typical-floor replication: a floor whose RepeatFor
// lists further floor ids is expanded into one floor per id, in order,
// sharing the same room set. Replicated rooms take the target floor id.
func ExpandFloors(floors []models.FloorRooms) []models.FloorRooms {
	expanded := make([]models.FloorRooms, 0, len(floors))
	for _, floor := range floors {
		expanded = append(expanded, models.FloorRooms{FloorID: floor.FloorID, Rooms: floor.Rooms})
		for _, id := range floor.RepeatFor {
			rooms := make([]models.Room, len(floor.Rooms))
			copy(rooms, floor.Rooms)
			for i := range rooms {
				rooms[i].FloorID = id
			}
			expanded = append(expanded, models.FloorRooms{FloorID: id, Rooms: rooms})
		}
	}
	return expanded
}

// AggregateBuilding expands typical floors, processes every floor through
// the classification pipeline and merges the results into a building
// schedule. Floors are independent, so they run in parallel; results are
// written into a position-indexed slice so output order always matches
// input order.
//
// Any floor error abandons the whole building; no partial schedule is ever
// returned.
func (e *Engine) AggregateBuilding(ctx context.Context, floors []models.FloorRooms) (models.BuildingSchedule, error) {
	if len(floors) == 0 {
		return models.BuildingSchedule{}, &EmptyBuildingError{}
	}
	floors = ExpandFloors(floors)

	schedules := make([]models.FloorSchedule, len(floors))
	g, ctx := errgroup.WithContext(ctx)
	for i, floor := range floors {
		i, floor := i, floor
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			schedule, err := e.ProcessFloor(floor.FloorID, floor.Rooms)
			if err != nil {
				return &FloorError{FloorID: floor.FloorID, Err: err}
			}
			schedules[i] = schedule
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return models.BuildingSchedule{}, err
	}

	building := models.BuildingSchedule{
		TableVersion: e.table.Version(),
		Floors:       schedules,
	}
	for _, floor := range schedules {
		building.TotalGFA += floor.GFA
		building.TotalNOFA += floor.NOFA
		building.TotalExempt += floor.ExemptTotal
	}
	return building, nil
}

package services

import (
	"fmt"

	"gfabackend/models"
)

// CapWarnRatio is the utilisation level at which a concession group is
// flagged as approaching its cap.
const CapWarnRatio = 0.80

// capWarnings flags groups that exceeded their cap or sit at or above
// CapWarnRatio of it. Advisory only; never changes any figure.
func capWarnings(capResults []models.CapGroupResult) []string {
	var warnings []string
	for _, result := range capResults {
		switch {
		case result.ExcessReclassified > 0:
			warnings = append(warnings, fmt.Sprintf(
				"%s: requested %.2f m2 exceeds the %.2f m2 cap; %.2f m2 reclassified into GFA",
				result.CapGroup, result.ExemptRequested, result.Cap, result.ExcessReclassified))
		case result.Cap > 0 && result.ExemptRequested >= CapWarnRatio*result.Cap:
			warnings = append(warnings, fmt.Sprintf(
				"%s: requested %.2f m2 is at %.0f%% of the %.2f m2 cap",
				result.CapGroup, result.ExemptRequested,
				100*result.ExemptRequested/result.Cap, result.Cap))
		}
	}
	return warnings
}

// AggregateFloor rolls classified rooms and cap results into a FloorSchedule.
// Areas are carried at full input precision; rounding is presentation-only
// and happens in the export layer.
//
// NOFA counts COUNTED rooms whose category is flagged counts_toward_nofa,
// plus the NOFA-eligible share of each group's reclassified excess. Excess
// is a floor-level amount, so the eligible share is pro-rated by the group's
// NOFA-eligible requested area over its total requested area.
func (e *Engine) AggregateFloor(floorID string, classified []models.ClassifiedRoom, capResults []models.CapGroupResult, gfaAdjustment float64) models.FloorSchedule {
	var countedTotal, countedNofa float64
	nofaRequested := make(map[string]float64)
	for _, room := range classified {
		switch room.Treatment {
		case models.TreatmentCounted:
			countedTotal += room.Area
			if room.CountsTowardNofa {
				countedNofa += room.Area
			}
		case models.TreatmentExempt:
			if room.CountsTowardNofa {
				nofaRequested[room.CapGroup] += room.Area
			}
		}
	}

	var exemptTotal, nofaExcess float64
	for _, result := range capResults {
		exemptTotal += result.ExemptGranted
		if result.ExcessReclassified > 0 && result.ExemptRequested > 0 {
			share := nofaRequested[result.CapGroup] / result.ExemptRequested
			nofaExcess += result.ExcessReclassified * share
		}
	}

	return models.FloorSchedule{
		FloorID:     floorID,
		GFA:         countedTotal + gfaAdjustment,
		NOFA:        countedNofa + nofaExcess,
		ExemptTotal: exemptTotal,
		CapGroups:   capResults,
		Rooms:       classified,
		Warnings:    capWarnings(capResults),
	}
}

// ProcessFloor runs the full per-floor pipeline: classify, cap, aggregate.
func (e *Engine) ProcessFloor(floorID string, rooms []models.Room) (models.FloorSchedule, error) {
	classified, err := e.ClassifyFloor(floorID, rooms)
	if err != nil {
		return models.FloorSchedule{}, err
	}
	capResults, adjustment := e.ApplyCaps(floorID, classified)
	return e.AggregateFloor(floorID, classified, capResults, adjustment), nil
}

package services

import (
	"sort"

	"gfabackend/models"
)

// DefaultCapRate is the APP-151 overall concession ceiling: 10% of GFA.
const DefaultCapRate = 0.10

// Engine runs classification, cap application and aggregation against one
// immutable rule table. All methods are pure functions of their inputs.
type Engine struct {
	table   *RuleTable
	capRate float64
}

func NewEngine(table *RuleTable, capRate float64) *Engine {
	if capRate <= 0 {
		capRate = DefaultCapRate
	}
	return &Engine{table: table, capRate: capRate}
}

func (e *Engine) Table() *RuleTable { return e.table }
func (e *Engine) CapRate() float64  { return e.capRate }

// ReferenceGFA is the cap baseline: the sum of COUNTED room areas on the
// floor before any reclassification. Every cap group is evaluated against
// this same fixed baseline so results cannot depend on group order.
func ReferenceGFA(classified []models.ClassifiedRoom) float64 {
	var total float64
	for _, room := range classified {
		if room.Treatment == models.TreatmentCounted {
			total += room.Area
		}
	}
	return total
}

// ApplyCaps computes, per cap group present among the floor's exempt rooms,
// how much requested exemption survives the statutory cap. The returned
// adjustment is the total excess reclassified into GFA as a floor-level
// amount (it is not re-attributed to any specific room).
//
// Groups with zero requested area are omitted. A floor with zero reference
// GFA degenerates every cap to 0, reclassifying all exempt area.
func (e *Engine) ApplyCaps(floorID string, classified []models.ClassifiedRoom) ([]models.CapGroupResult, float64) {
	requested := make(map[string]float64)
	for _, room := range classified {
		if room.Treatment == models.TreatmentExempt {
			requested[room.CapGroup] += room.Area
		}
	}

	groups := make([]string, 0, len(requested))
	for group, amount := range requested {
		if amount > 0 {
			groups = append(groups, group)
		}
	}
	sort.Strings(groups)

	cap := e.capRate * ReferenceGFA(classified)

	results := make([]models.CapGroupResult, 0, len(groups))
	var adjustment float64
	for _, group := range groups {
		granted := requested[group]
		if granted > cap {
			granted = cap
		}
		excess := requested[group] - granted
		adjustment += excess
		results = append(results, models.CapGroupResult{
			CapGroup:           group,
			ExemptRequested:    requested[group],
			Cap:                cap,
			ExemptGranted:      granted,
			ExcessReclassified: excess,
		})
	}
	return results, adjustment
}

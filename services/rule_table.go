package services

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gfabackend/models"
)

// DefaultTableVersion tags classification results with the regulation
// revision the built-in table was transcribed from.
const DefaultTableVersion = "APP-2/APP-151 Rev. July 2025"

// RuleTable is the versioned category -> RuleEntry mapping. It is built once
// at startup and never modified afterwards, so every classification result
// is traceable to one table version.
type RuleTable struct {
	version string
	entries map[string]models.RuleEntry
}

// NormalizeCategory maps incoming category strings onto the table's
// vocabulary. The external parser is expected to send normalized categories
// already; this only strips case and surrounding whitespace.
func NormalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

// NewRuleTable validates entries and builds an immutable table.
// Invalid rows are a construction error, not a runtime fallback: a table
// that classifies wrongly is worse than no table.
func NewRuleTable(version string, entries []models.RuleEntry) (*RuleTable, error) {
	if version == "" {
		return nil, fmt.Errorf("rule table: version is required")
	}
	byCategory := make(map[string]models.RuleEntry, len(entries))
	for _, entry := range entries {
		category := NormalizeCategory(entry.Category)
		if category == "" {
			return nil, fmt.Errorf("rule table: entry with empty category")
		}
		if _, exists := byCategory[category]; exists {
			return nil, fmt.Errorf("rule table: duplicate category %q", category)
		}
		switch entry.Treatment {
		case models.TreatmentCounted:
			// cap group and condition are meaningless on counted rows
			if entry.CapGroup != "" {
				return nil, fmt.Errorf("rule table: category %q is COUNTED but has cap group %q", category, entry.CapGroup)
			}
		case models.TreatmentExempt:
			// every exempt square metre must flow through a cap group,
			// otherwise the floor conservation invariant cannot hold
			if entry.CapGroup == "" {
				return nil, fmt.Errorf("rule table: category %q is EXEMPT without a cap group", category)
			}
		case models.TreatmentConditional:
			if entry.CapGroup == "" {
				return nil, fmt.Errorf("rule table: category %q is CONDITIONAL without a cap group", category)
			}
			if entry.Condition == nil || entry.Condition.Attribute == "" {
				return nil, fmt.Errorf("rule table: category %q is CONDITIONAL without a condition", category)
			}
		default:
			return nil, fmt.Errorf("rule table: category %q has unknown treatment %q", category, entry.Treatment)
		}
		entry.Category = category
		byCategory[category] = entry
	}
	return &RuleTable{version: version, entries: byCategory}, nil
}

// Version returns the regulation revision tag the table was loaded with.
func (t *RuleTable) Version() string { return t.version }

// Lookup resolves a category to its rule entry. Pure; no side effects.
func (t *RuleTable) Lookup(category string) (models.RuleEntry, bool) {
	entry, ok := t.entries[NormalizeCategory(category)]
	return entry, ok
}

// Entries returns the table rows sorted by category, for /api/rules and the
// rule sheet of exported schedules.
func (t *RuleTable) Entries() []models.RuleEntry {
	out := make([]models.RuleEntry, 0, len(t.entries))
	for _, entry := range t.entries {
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// ruleTableFile is the on-disk shape accepted by RuleTableFromJSON.
type ruleTableFile struct {
	Version string             `json:"version"`
	Entries []models.RuleEntry `json:"entries"`
}

// RuleTableFromJSON builds a table from a JSON document, so site-specific
// rule revisions can be dropped in without a rebuild.
func RuleTableFromJSON(data []byte) (*RuleTable, error) {
	var file ruleTableFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("rule table: invalid JSON: %w", err)
	}
	return NewRuleTable(file.Version, file.Entries)
}

// DefaultRuleTable is the built-in APP-2 / APP-151 table. Treatments and cap
// groups follow PNAP APP-2, B(P)R 23(3) and APP-151 Appendix A (Rev. July
// 2025); NOFA flags follow HK industry convention (wet rooms, circulation
// and storage count toward GFA but not NOFA).
func DefaultRuleTable() (*RuleTable, error) {
	entries := []models.RuleEntry{
		// ---------- Habitable / usable (counted, in NOFA) ----------
		{Category: "flat", Treatment: models.TreatmentCounted, CountsTowardNofa: true,
			Note: "Domestic flat — full GFA per PNAP APP-2."},
		{Category: "habitable room", Treatment: models.TreatmentCounted, CountsTowardNofa: true},
		{Category: "bedroom", Treatment: models.TreatmentCounted, CountsTowardNofa: true},
		{Category: "living room", Treatment: models.TreatmentCounted, CountsTowardNofa: true},
		{Category: "dining room", Treatment: models.TreatmentCounted, CountsTowardNofa: true},
		{Category: "kitchen", Treatment: models.TreatmentCounted, CountsTowardNofa: true},
		{Category: "study", Treatment: models.TreatmentCounted, CountsTowardNofa: true},
		{Category: "office", Treatment: models.TreatmentCounted, CountsTowardNofa: true,
			Note: "Non-domestic usable space."},
		{Category: "retail", Treatment: models.TreatmentCounted, CountsTowardNofa: true,
			Note: "Non-domestic usable space."},
		{Category: "restaurant", Treatment: models.TreatmentCounted, CountsTowardNofa: true},

		// ---------- Counted but outside NOFA ----------
		{Category: "bathroom", Treatment: models.TreatmentCounted,
			Note: "Wet rooms excluded from NOFA per HK convention."},
		{Category: "toilet", Treatment: models.TreatmentCounted},
		{Category: "corridor", Treatment: models.TreatmentCounted,
			Note: "Circulation excluded from NOFA."},
		{Category: "lift lobby", Treatment: models.TreatmentCounted},
		{Category: "entrance lobby", Treatment: models.TreatmentCounted},
		{Category: "store room", Treatment: models.TreatmentCounted,
			Note: "Storage excluded from NOFA."},

		// ---------- Item 1: carpark / loading (B(P)R 23(3)(b)) ----------
		{Category: "carpark", Treatment: models.TreatmentExempt, CapGroup: "carpark",
			Note: "Disregarded under B(P)R 23(3)(b) — APP-151 Item 1."},
		{Category: "loading bay", Treatment: models.TreatmentExempt, CapGroup: "carpark",
			Note: "APP-151 Item 1."},

		// ---------- Items 2.1–2.3: plant rooms ----------
		{Category: "lift machine room", Treatment: models.TreatmentExempt, CapGroup: "plant_room",
			Note: "Mandatory plant room — APP-151 Item 2.1 (PNAP APP-35 & APP-84)."},
		{Category: "refuse storage", Treatment: models.TreatmentExempt, CapGroup: "plant_room",
			Note: "APP-151 Item 2.1."},
		{Category: "transformer room", Treatment: models.TreatmentExempt, CapGroup: "plant_room",
			Note: "Mandatory plant room — APP-151 Item 2.2 (PNAP APP-2 & APP-42)."},
		{Category: "water tank", Treatment: models.TreatmentExempt, CapGroup: "plant_room"},
		{Category: "pump room", Treatment: models.TreatmentExempt, CapGroup: "plant_room"},
		{Category: "plant room", Treatment: models.TreatmentConditional, CapGroup: "plant_room",
			Condition: &models.Condition{Attribute: "mandatory", Equals: "true"},
			Note:      "Non-mandatory plant room counts in full — APP-151 Item 2.3."},

		// ---------- Items 5–13: green features (JPN1/JPN2) ----------
		{Category: "balcony", Treatment: models.TreatmentConditional, CapGroup: "green_feature",
			Condition: &models.Condition{Attribute: "enclosed", Equals: "false"},
			Note:      "Open balcony exempt under JPN1 — APP-151 Item 5; enclosed balconies count in full."},
		{Category: "utility platform", Treatment: models.TreatmentConditional, CapGroup: "green_feature",
			Condition: &models.Condition{Attribute: "adjacent to external wall", Equals: "true"},
			Note:      "Utility platform — JPN2, APP-151 Item 12."},
		{Category: "sky garden", Treatment: models.TreatmentExempt, CapGroup: "green_feature",
			Note: "Communal sky garden — APP-151 Item 7 (JPN1 & JPN2)."},
		{Category: "acoustic fin", Treatment: models.TreatmentExempt, CapGroup: "green_feature",
			Note: "APP-151 Item 9 (JPN1)."},
		{Category: "wing wall", Treatment: models.TreatmentExempt, CapGroup: "green_feature",
			Note: "APP-151 Item 10 (JPN1)."},

		// ---------- Items 14–15: amenity features ----------
		{Category: "caretaker office", Treatment: models.TreatmentExempt, CapGroup: "amenity",
			Note: "Caretaker / management facilities — APP-151 Item 14 (PNAP APP-42)."},
		{Category: "recreation room", Treatment: models.TreatmentExempt, CapGroup: "amenity",
			Note: "Residential recreational facilities — APP-151 Item 15 (PNAP APP-104)."},
		{Category: "clubhouse", Treatment: models.TreatmentExempt, CapGroup: "amenity"},

		// ---------- Items 24–26: voids ----------
		{Category: "void", Treatment: models.TreatmentExempt, CapGroup: "void",
			Note: "High headroom and void — APP-151 Items 24–26 (PNAP APP-2)."},

		// ---------- Items 18–34: common structure ----------
		{Category: "staircase", Treatment: models.TreatmentExempt, CapGroup: "common_area",
			Note: "Staircase accepted as non-accountable GFA — APP-151 Item 34."},
		{Category: "lift shaft", Treatment: models.TreatmentExempt, CapGroup: "common_area",
			Note: "APP-151 Items 18 & 34 (PNAP APP-89)."},
		{Category: "pipe duct", Treatment: models.TreatmentExempt, CapGroup: "common_area",
			Note: "Pipe/air duct for mandatory feature — APP-151 Item 21 (PNAP APP-93)."},
		{Category: "refuge floor", Treatment: models.TreatmentExempt, CapGroup: "common_area",
			Note: "APP-151 Item 30 (PNAP APP-122)."},
	}
	return NewRuleTable(DefaultTableVersion, entries)
}

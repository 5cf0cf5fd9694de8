package models

// ---------- Input ----------

// Room is one detected or declared space on a floor. Rooms arrive from the
// external parser already measured; the engine never mutates them.
type Room struct {
	ID         string            `json:"id"`
	Category   string            `json:"category"`
	Area       float64           `json:"area"` // square metres
	FloorID    string            `json:"floor_id,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// FloorRooms pairs a stable floor identifier with its rooms. Floor order is
// supplied by the caller and preserved end to end. RepeatFor lists the
// typical floors this room set also stands for; they are expanded into
// individual floors, in order, before aggregation.
type FloorRooms struct {
	FloorID   string   `json:"floor_id"`
	Rooms     []Room   `json:"rooms"`
	RepeatFor []string `json:"repeat_for,omitempty"`
}

// ---------- Rule table ----------

type Treatment string

const (
	TreatmentCounted     Treatment = "COUNTED"
	TreatmentExempt      Treatment = "EXEMPT"
	TreatmentConditional Treatment = "CONDITIONAL"
)

// Condition is a declarative predicate over a room's attribute map. Keeping
// conditions to attribute equality makes every rule enumerable and testable.
type Condition struct {
	Attribute string `json:"attribute"`
	Equals    string `json:"equals"`
}

// RuleEntry is one row of the classification table.
type RuleEntry struct {
	Category         string     `json:"category"`
	Treatment        Treatment  `json:"treatment"`
	CapGroup         string     `json:"cap_group,omitempty"`
	Condition        *Condition `json:"condition,omitempty"`
	CountsTowardNofa bool       `json:"counts_toward_nofa"`
	Note             string     `json:"note,omitempty"`
}

// ---------- Engine output ----------

// ClassifiedRoom is a Room with its resolved treatment. Treatment here is
// always COUNTED or EXEMPT; CONDITIONAL is resolved by the classifier.
type ClassifiedRoom struct {
	Room
	Treatment        Treatment `json:"treatment"`
	CapGroup         string    `json:"cap_group,omitempty"`
	CountsTowardNofa bool      `json:"counts_toward_nofa"`
}

// CapGroupResult is the outcome of the 10% cap for one concession group on
// one floor. ExemptGranted + ExcessReclassified == ExemptRequested.
type CapGroupResult struct {
	CapGroup           string  `json:"cap_group"`
	ExemptRequested    float64 `json:"exempt_requested"`
	Cap                float64 `json:"cap"`
	ExemptGranted      float64 `json:"exempt_granted"`
	ExcessReclassified float64 `json:"excess_reclassified"`
}

// FloorSchedule is the per-floor area breakdown.
// Invariant: GFA + ExemptTotal == sum of all room areas on the floor.
type FloorSchedule struct {
	FloorID     string           `json:"floor_id"`
	GFA         float64          `json:"gfa"`
	NOFA        float64          `json:"nofa"`
	ExemptTotal float64          `json:"exempt_total"`
	CapGroups   []CapGroupResult `json:"cap_groups"`
	Rooms       []ClassifiedRoom `json:"rooms"`
	Warnings    []string         `json:"warnings,omitempty"`
}

// BuildingSchedule is the final schedule: floors in input order plus
// building totals.
type BuildingSchedule struct {
	TableVersion string          `json:"table_version"`
	Floors       []FloorSchedule `json:"floors"`
	TotalGFA     float64         `json:"total_gfa"`
	TotalNOFA    float64         `json:"total_nofa"`
	TotalExempt  float64         `json:"total_exempt"`
}

// ---------- API request / response ----------

type ClassifyRequest struct {
	Rooms []Room `json:"rooms"`
}

type ClassifyResponse struct {
	TableVersion string           `json:"table_version"`
	Rooms        []ClassifiedRoom `json:"rooms"`
}

type AnalyseRequest struct {
	ProjectName string `json:"project_name,omitempty"`
	FloorID     string `json:"floor_id"`
	Rooms       []Room `json:"rooms"`
}

type BatchAnalyseRequest struct {
	ProjectName string       `json:"project_name,omitempty"`
	Floors      []FloorRooms `json:"floors"`
}

type AnalyseResponse struct {
	Schedule   BuildingSchedule `json:"schedule"`
	DownloadID string           `json:"download_id"`
	ExcelURL   string           `json:"excel_url"`
	PdfURL     string           `json:"pdf_url"`
}

type RuleListResponse struct {
	TableVersion string      `json:"table_version"`
	Count        int         `json:"count"`
	Rules        []RuleEntry `json:"rules"`
}

package services

import "fmt"

// Classification and aggregation failures are surfaced as typed errors so
// the API layer can report the exact room, rule, and floor involved. The
// engine never substitutes a default treatment: misclassifying a room
// mis-states statutory compliance.

// UnknownCategoryError means the room's category has no rule table entry.
type UnknownCategoryError struct {
	RoomID   string
	Category string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("room %q: unknown category %q", e.RoomID, e.Category)
}

// MissingAttributeError means a CONDITIONAL rule references an attribute the
// room does not supply.
type MissingAttributeError struct {
	RoomID    string
	Category  string
	Attribute string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("room %q: rule for category %q requires attribute %q", e.RoomID, e.Category, e.Attribute)
}

// InvalidAreaError means the room area is negative or non-finite. Rejected
// before classification.
type InvalidAreaError struct {
	RoomID string
	Area   float64
}

func (e *InvalidAreaError) Error() string {
	return fmt.Sprintf("room %q: invalid area %v", e.RoomID, e.Area)
}

// EmptyBuildingError means a batch was submitted with zero floors.
type EmptyBuildingError struct{}

func (e *EmptyBuildingError) Error() string {
	return "building has no floors"
}

// FloorError wraps an engine error with the floor it occurred on.
type FloorError struct {
	FloorID string
	Err     error
}

func (e *FloorError) Error() string {
	return fmt.Sprintf("floor %q: %v", e.FloorID, e.Err)
}

func (e *FloorError) Unwrap() error { return e.Err }

// Package model defines the core scheduling data types.
package model

// Kind is the type tag of a scheduled task.
type Kind string

const (
	KindFrontDesk     Kind = "front-desk"
	KindGallery       Kind = "gallery"
	KindBreak         Kind = "break"
	KindPrep          Kind = "prep"
	KindTour          Kind = "tour"
	KindTidy          Kind = "tidy"
	KindSchoolPre     Kind = "school-pre"
	KindSchoolProgram Kind = "school-program"
)

// Kinds lists all valid task kinds in display order.
var Kinds = []Kind{
	KindFrontDesk,
	KindGallery,
	KindBreak,
	KindPrep,
	KindTour,
	KindTidy,
	KindSchoolPre,
	KindSchoolProgram,
}

var kindLabels = map[Kind]string{
	KindFrontDesk:     "Front desk",
	KindGallery:       "Gallery",
	KindBreak:         "Break",
	KindPrep:          "Prep",
	KindTour:          "Tour",
	KindTidy:          "Tidy",
	KindSchoolPre:     "School prep",
	KindSchoolProgram: "School program",
}

// Valid reports whether k is a known task kind.
func (k Kind) Valid() bool {
	_, ok := kindLabels[k]
	return ok
}

// Label returns the canonical display label for the kind.
func (k Kind) Label() string {
	return kindLabels[k]
}

// TourLike reports whether the kind is exempt from adjacent merging.
// Tour and school-program blocks stay individually addressable.
func (k Kind) TourLike() bool {
	return k == KindTour || k == KindSchoolProgram
}

// Task is a typed work interval on the daily row grid.
// Start and End are row indices forming a half-open range [Start, End).
type Task struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Kind       Kind   `json:"kind"`
	Label      string `json:"label"`
	Start      int    `json:"start"`
	End        int    `json:"end"`
}

// Employee is a roster entry. ShiftStart and ShiftEnd are row indices
// bounding where tasks are meaningful; the engine does not enforce them.
type Employee struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ShiftStart int    `json:"shift_start"`
	ShiftEnd   int    `json:"shift_end"`
}

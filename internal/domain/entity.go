package domain

import "time"

// ScholarshipType is the funding coverage category of a scholarship.
type ScholarshipType string

const (
	ScholarshipFull    ScholarshipType = "full"
	ScholarshipPartial ScholarshipType = "partial"
	ScholarshipGrant   ScholarshipType = "grant"
)

// UniversityType distinguishes public from private institutions.
type UniversityType string

const (
	UniversityPublic  UniversityType = "public"
	UniversityPrivate UniversityType = "private"
)

// Scholarship is a read-only catalog row.
//
// Rows are created and updated externally; the service only consumes
// immutable snapshots and never writes back.
type Scholarship struct {
	ID          string
	Name        Localized
	Provider    Localized
	Description Localized
	Coverage    Localized
	Eligibility Localized

	Type           ScholarshipType
	ApplicationURL string

	// Deadline is nil for rolling or unspecified deadlines.
	Deadline *time.Time

	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// University is a read-only catalog row.
type University struct {
	ID          string
	Name        Localized
	Location    Localized
	Description Localized
	TuitionInfo Localized

	Type     UniversityType
	Website  string
	Programs LocalizedList

	// ScholarshipCount is the number of linked scholarships,
	// aggregated by the catalog query.
	ScholarshipCount int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// VocationalSchool is a read-only catalog row.
type VocationalSchool struct {
	ID          string
	Name        Localized
	Location    Localized
	Description Localized

	Programs LocalizedList
	Website  string
	Contact  string

	CreatedAt time.Time
	UpdatedAt time.Time
}

package models

import "time"

// ApplicationStatus is the lifecycle state of a student's application.
// Transitions are not strictly ordered; accepted/rejected are treated as
// terminal by convention but staff may still correct a mis-entered value.
type ApplicationStatus string

const (
	ApplicationApplied   ApplicationStatus = "applied"
	ApplicationInterview ApplicationStatus = "interview"
	ApplicationOffered   ApplicationStatus = "offered"
	ApplicationAccepted  ApplicationStatus = "accepted"
	ApplicationRejected  ApplicationStatus = "rejected"
)

// ParseApplicationStatus validates a raw application status string.
func ParseApplicationStatus(raw string) (ApplicationStatus, bool) {
	switch ApplicationStatus(raw) {
	case ApplicationApplied, ApplicationInterview, ApplicationOffered,
		ApplicationAccepted, ApplicationRejected:
		return ApplicationStatus(raw), true
	}
	return "", false
}

// Placement defines a posting based on the 'placements' table. Visibility is a
// global feed; ownership only gates mutation.
type Placement struct {
	ID              int64     `json:"id" db:"id"`
	MentorID        int64     `json:"mentor_id" db:"mentor_id"`
	Title           string    `json:"title" db:"title"`
	Description     string    `json:"description" db:"description"`
	ApplicationLink string    `json:"application_link" db:"application_link"`
	IsImportant     bool      `json:"is_important" db:"is_important"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// Application defines a student's placement-status record based on the
// 'applications' table. One row per (student, placement) pair.
type Application struct {
	ID              int64             `json:"id" db:"id"`
	StudentID       int64             `json:"student_id" db:"student_id"`
	PlacementID     int64             `json:"placement_id" db:"placement_id"`
	JobTitle        string            `json:"job_title" db:"job_title"`
	Status          ApplicationStatus `json:"status" db:"status"`
	ApplicationDate time.Time         `json:"application_date" db:"application_date"`
	OfferDate       *time.Time        `json:"offer_date,omitempty" db:"offer_date"`
	Salary          *float64          `json:"salary,omitempty" db:"salary"`
	Notes           string            `json:"notes" db:"notes"`
	UpdatedBy       *int64            `json:"updated_by,omitempty" db:"updated_by"`
	CreatedAt       time.Time         `json:"created_at" db:"created_at"`
}

package dto

import "time"

// PostPlacementUpdateRequest creates a posting on the global feed.
type PostPlacementUpdateRequest struct {
	Title           string `json:"title" binding:"required"`
	Description     string `json:"description" binding:"required"`
	ApplicationLink string `json:"application_link"`
	IsImportant     bool   `json:"is_important"`
}

// PlacementUpdateRow is a feed entry joined with its author.
type PlacementUpdateRow struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	ApplicationLink string    `json:"application_link"`
	IsImportant     bool      `json:"is_important"`
	PostedBy        string    `json:"posted_by"`
	CreatedAt       time.Time `json:"created_at"`
}

// CreateApplicationRequest records a student's progress against a placement.
type CreateApplicationRequest struct {
	StudentID       int64    `json:"student_id"`
	PlacementID     int64    `json:"placement_id"`
	JobTitle        string   `json:"job_title"`
	Status          string   `json:"status"`
	ApplicationDate string   `json:"application_date"`
	OfferDate       string   `json:"offer_date"`
	Salary          *float64 `json:"salary"`
	Notes           string   `json:"notes"`
}

// UpdateApplicationRequest mutates an existing application record.
type UpdateApplicationRequest struct {
	JobTitle  string   `json:"job_title"`
	Status    string   `json:"status"`
	OfferDate string   `json:"offer_date"`
	Salary    *float64 `json:"salary"`
	Notes     string   `json:"notes"`
}

// ApplicationRow joins an application with its student and placement.
type ApplicationRow struct {
	ID              int64      `json:"id"`
	StudentID       int64      `json:"student_id"`
	StudentName     string     `json:"student_name"`
	RollNumber      string     `json:"roll_number"`
	Department      string     `json:"department"`
	PlacementID     int64      `json:"placement_id"`
	CompanyName     string     `json:"company_name"`
	JobTitle        string     `json:"job_title"`
	Status          string     `json:"status"`
	ApplicationDate time.Time  `json:"application_date"`
	OfferDate       *time.Time `json:"offer_date,omitempty"`
	Salary          *float64   `json:"salary,omitempty"`
	Notes           string     `json:"notes"`
}

package models

import (
	"time"
)

// Role is the user's role tag. It is immutable after registration.
type Role string

const (
	RoleStudent          Role = "student"
	RoleMentor           Role = "mentor"
	RolePlacementOfficer Role = "placement_officer"
)

// ParseRole validates a raw role string against the known roles.
func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleStudent, RoleMentor, RolePlacementOfficer:
		return Role(raw), true
	}
	return "", false
}

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"` // hashed, excluded from JSON
	Role      Role      `json:"role" db:"role"`
	FullName  string    `json:"full_name" db:"full_name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	// Role-conditional profile (populated when needed)
	StudentProfile *StudentProfile `json:"student_profile,omitempty"`
	MentorProfile  *MentorProfile  `json:"mentor_profile,omitempty"`
}

// StudentProfile defines the student model based on the 'student_profiles' table
type StudentProfile struct {
	UserID          int64    `json:"user_id" db:"user_id"`
	RollNumber      string   `json:"roll_number" db:"roll_number"`
	Department      string   `json:"department" db:"department"`
	BatchYear       int      `json:"batch_year" db:"batch_year"`
	CurrentCGPA     *float64 `json:"current_cgpa,omitempty" db:"current_cgpa"`
	PlacementStatus string   `json:"placement_status" db:"placement_status"`
	MentorID        *int64   `json:"mentor_id,omitempty" db:"mentor_id"` // nullable pre-assignment
}

// MentorProfile defines the mentor model based on the 'mentor_profiles' table
type MentorProfile struct {
	UserID         int64  `json:"user_id" db:"user_id"`
	Department     string `json:"department" db:"department"`
	Designation    string `json:"designation" db:"designation"`
	Specialization string `json:"specialization" db:"specialization"`
}

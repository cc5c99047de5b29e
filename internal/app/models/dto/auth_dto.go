package dto

import "github.com/aydink/mentorlink/internal/app/models"

// RegisterRequest carries a registration payload. Role-conditional fields are
// validated in the service depending on the requested role.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
	FullName string `json:"full_name" binding:"required"`

	// Student fields
	RollNumber  string   `json:"roll_number,omitempty"`
	BatchYear   int      `json:"batch_year,omitempty"`
	CurrentCGPA *float64 `json:"current_cgpa,omitempty"`
	MentorID    *int64   `json:"mentor_id,omitempty"`

	// Shared by student and mentor
	Department string `json:"department,omitempty"`

	// Mentor fields
	Designation    string `json:"designation,omitempty"`
	Specialization string `json:"specialization,omitempty"`
}

// RegisterResponse is returned on successful registration
type RegisterResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// LoginRequest carries login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the login envelope: token plus the user record, matching the
// `{success, token, user}` contract.
type LoginResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    *models.User `json:"user"`
}

// UpdateProfileRequest carries a profile mutation. Role is never part of it.
type UpdateProfileRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`

	// Student fields
	RollNumber  string   `json:"roll_number,omitempty"`
	BatchYear   int      `json:"batch_year,omitempty"`
	CurrentCGPA *float64 `json:"current_cgpa,omitempty"`

	// Shared by student and mentor
	Department string `json:"department,omitempty"`

	// Mentor fields
	Designation    string `json:"designation,omitempty"`
	Specialization string `json:"specialization,omitempty"`
}

// ChangePasswordRequest carries a password change
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

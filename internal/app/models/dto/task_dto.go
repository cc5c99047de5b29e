package dto

import "time"

// CreateTaskRequest fans a task out to the listed students. Students outside
// the caller mentor's roster are skipped silently.
type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Deadline    string  `json:"deadline" binding:"required"`
	StudentIDs  []int64 `json:"student_ids" binding:"required"`
}

// CreateTaskResponse reports the created task and the subset of assignments
// that were actually created.
type CreateTaskResponse struct {
	TaskID        int64   `json:"task_id"`
	AssignmentIDs []int64 `json:"assignment_ids"`
}

// MentorTaskRow is a mentor-side task listing entry with aggregated counts.
type MentorTaskRow struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Deadline       time.Time `json:"deadline"`
	CreatedAt      time.Time `json:"created_at"`
	AssignedCount  int       `json:"assigned_count"`
	CompletedCount int       `json:"completed_count"`
}

// StudentTaskRow is a student-side listing entry: the assignment joined with
// its task and the issuing mentor.
type StudentTaskRow struct {
	ID          int64      `json:"id"` // task id
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Deadline    time.Time  `json:"deadline"`
	MentorName  string     `json:"mentor_name"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Remarks     string     `json:"remarks"`
}

// AssignedStudentRow is the per-student breakdown inside a task detail.
type AssignedStudentRow struct {
	StudentID   int64      `json:"student_id"`
	StudentName string     `json:"student_name"`
	RollNumber  string     `json:"roll_number"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Remarks     string     `json:"remarks"`
}

// TaskDetailResponse is the mentor's view of one task with its assignments.
type TaskDetailResponse struct {
	ID               int64                `json:"id"`
	Title            string               `json:"title"`
	Description      string               `json:"description"`
	Deadline         time.Time            `json:"deadline"`
	CreatedAt        time.Time            `json:"created_at"`
	AssignedStudents []AssignedStudentRow `json:"assigned_students"`
	AssignedCount    int                  `json:"assigned_count"`
	CompletedCount   int                  `json:"completed_count"`
}

// UpdateAssignmentStatusRequest is the student-side status mutation.
type UpdateAssignmentStatusRequest struct {
	Status  string `json:"status" binding:"required"`
	Remarks string `json:"remarks"`
}

package models

import "time"

// AssignmentStatus is the per-student completion state of a task assignment.
type AssignmentStatus string

const (
	AssignmentPending    AssignmentStatus = "pending"
	AssignmentInProgress AssignmentStatus = "in_progress"
	AssignmentCompleted  AssignmentStatus = "completed"
)

// ParseAssignmentStatus validates a raw assignment status string.
func ParseAssignmentStatus(raw string) (AssignmentStatus, bool) {
	switch AssignmentStatus(raw) {
	case AssignmentPending, AssignmentInProgress, AssignmentCompleted:
		return AssignmentStatus(raw), true
	}
	return "", false
}

// Rank orders assignment statuses along the completion lifecycle, so that
// transitions can be checked for direction. Unknown statuses rank lowest.
func (s AssignmentStatus) Rank() int {
	switch s {
	case AssignmentInProgress:
		return 1
	case AssignmentCompleted:
		return 2
	}
	return 0
}

// Task defines the task model based on the 'tasks' table. A task is one unit of
// work authored by a mentor and fanned out to students as assignments; the task
// row itself is immutable after creation.
type Task struct {
	ID          int64     `json:"id" db:"id"`
	MentorID    int64     `json:"mentor_id" db:"mentor_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Deadline    time.Time `json:"deadline" db:"deadline"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// TaskAssignment defines the per-student instance of a task, keyed by
// (task_id, student_id), with its own completion lifecycle.
type TaskAssignment struct {
	ID          int64            `json:"id" db:"id"`
	TaskID      int64            `json:"task_id" db:"task_id"`
	StudentID   int64            `json:"student_id" db:"student_id"`
	Status      AssignmentStatus `json:"status" db:"status"`
	CompletedAt *time.Time       `json:"completed_at,omitempty" db:"completed_at"`
	Remarks     string           `json:"remarks" db:"remarks"`
}

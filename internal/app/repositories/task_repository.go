package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aydink/mentorlink/internal/app/models"
	"github.com/aydink/mentorlink/internal/app/models/dto"
	"github.com/aydink/mentorlink/internal/db"
	"github.com/aydink/mentorlink/internal/pkg/apperrors"
)

// TaskRepository handles task and assignment database operations
type TaskRepository struct {
	db *pgxpool.Pool
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

// CreateWithAssignments inserts a task and one assignment per student in a
// single transaction; a failed assignment insert rolls the task back too.
func (r *TaskRepository) CreateWithAssignments(ctx context.Context, task *models.Task, studentIDs []int64) (int64, []int64, error) {
	var taskID int64
	assignmentIDs := make([]int64, 0, len(studentIDs))

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO tasks (mentor_id, title, description, deadline)
			VALUES ($1, $2, $3, $4)
			RETURNING id`,
			task.MentorID, task.Title, task.Description, task.Deadline).Scan(&taskID)
		if err != nil {
			return fmt.Errorf("error creating task: %w", err)
		}

		for _, studentID := range studentIDs {
			var assignmentID int64
			err := tx.QueryRow(ctx, `
				INSERT INTO task_assignments (task_id, student_id, status)
				VALUES ($1, $2, $3)
				RETURNING id`,
				taskID, studentID, models.AssignmentPending).Scan(&assignmentID)
			if err != nil {
				return fmt.Errorf("error creating assignment for student %d: %w", studentID, err)
			}
			assignmentIDs = append(assignmentIDs, assignmentID)
		}
		return nil
	})
	if err != nil {
		return 0, nil, err
	}

	task.ID = taskID
	return taskID, assignmentIDs, nil
}

// ListByMentor retrieves a mentor's tasks with aggregated assignment counts
func (r *TaskRepository) ListByMentor(ctx context.Context, mentorID int64) ([]dto.MentorTaskRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT t.id, t.title, t.description, t.deadline, t.created_at,
		       COUNT(ta.id) AS assigned_count,
		       COUNT(ta.id) FILTER (WHERE ta.status = 'completed') AS completed_count
		FROM tasks t
		LEFT JOIN task_assignments ta ON ta.task_id = t.id
		WHERE t.mentor_id = $1
		GROUP BY t.id
		ORDER BY t.deadline ASC`,
		mentorID)
	if err != nil {
		return nil, fmt.Errorf("error listing mentor tasks: %w", err)
	}
	defer rows.Close()

	var tasks []dto.MentorTaskRow
	for rows.Next() {
		var t dto.MentorTaskRow
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Deadline, &t.CreatedAt,
			&t.AssignedCount, &t.CompletedCount); err != nil {
			return nil, fmt.Errorf("error scanning task row: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// ListByStudent retrieves a student's assignments joined with task and mentor,
// ordered by deadline ascending
func (r *TaskRepository) ListByStudent(ctx context.Context, studentID int64) ([]dto.StudentTaskRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT t.id, t.title, t.description, t.deadline, u.full_name,
		       ta.status, ta.completed_at, ta.remarks
		FROM task_assignments ta
		JOIN tasks t ON t.id = ta.task_id
		JOIN users u ON u.id = t.mentor_id
		WHERE ta.student_id = $1
		ORDER BY t.deadline ASC`,
		studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing student tasks: %w", err)
	}
	defer rows.Close()

	var tasks []dto.StudentTaskRow
	for rows.Next() {
		var t dto.StudentTaskRow
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Deadline, &t.MentorName,
			&t.Status, &t.CompletedAt, &t.Remarks); err != nil {
			return nil, fmt.Errorf("error scanning assignment row: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// GetDetail retrieves a task owned by the mentor with its per-student
// assignment breakdown. Returns apperrors.ErrTaskNotFound when the task does
// not exist or belongs to a different mentor.
func (r *TaskRepository) GetDetail(ctx context.Context, taskID, mentorID int64) (*dto.TaskDetailResponse, error) {
	detail := &dto.TaskDetailResponse{}
	err := r.db.QueryRow(ctx, `
		SELECT id, title, description, deadline, created_at
		FROM tasks
		WHERE id = $1 AND mentor_id = $2`,
		taskID, mentorID).Scan(&detail.ID, &detail.Title, &detail.Description, &detail.Deadline, &detail.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("error getting task: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT ta.student_id, u.full_name, COALESCE(sp.roll_number, ''),
		       ta.status, ta.completed_at, ta.remarks
		FROM task_assignments ta
		JOIN users u ON u.id = ta.student_id
		LEFT JOIN student_profiles sp ON sp.user_id = ta.student_id
		WHERE ta.task_id = $1
		ORDER BY u.full_name ASC`,
		taskID)
	if err != nil {
		return nil, fmt.Errorf("error getting task assignments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a dto.AssignedStudentRow
		if err := rows.Scan(&a.StudentID, &a.StudentName, &a.RollNumber,
			&a.Status, &a.CompletedAt, &a.Remarks); err != nil {
			return nil, fmt.Errorf("error scanning assignment row: %w", err)
		}
		detail.AssignedStudents = append(detail.AssignedStudents, a)
		detail.AssignedCount++
		if a.Status == string(models.AssignmentCompleted) {
			detail.CompletedCount++
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return detail, nil
}

// GetAssignment retrieves the assignment row for (taskID, studentID). Returns
// apperrors.ErrAssignmentNotFound when no row matches.
func (r *TaskRepository) GetAssignment(ctx context.Context, taskID, studentID int64) (*models.TaskAssignment, error) {
	a := &models.TaskAssignment{}
	err := r.db.QueryRow(ctx, `
		SELECT id, task_id, student_id, status, completed_at, remarks
		FROM task_assignments
		WHERE task_id = $1 AND student_id = $2`,
		taskID, studentID).Scan(&a.ID, &a.TaskID, &a.StudentID, &a.Status, &a.CompletedAt, &a.Remarks)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("error getting assignment: %w", err)
	}
	return a, nil
}

// UpdateAssignmentStatus sets (status, remarks) on the (taskID, studentID)
// assignment. completed_at is set on first completion and preserved on
// repeated completion; it is cleared only while the row is not completed.
func (r *TaskRepository) UpdateAssignmentStatus(ctx context.Context, taskID, studentID int64, status models.AssignmentStatus, remarks string, completedAt *time.Time) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE task_assignments
		SET status = $1, remarks = $2,
		    completed_at = CASE WHEN $1 = 'completed' THEN COALESCE(completed_at, $3) ELSE NULL END
		WHERE task_id = $4 AND student_id = $5`,
		status, remarks, completedAt, taskID, studentID)
	if err != nil {
		return fmt.Errorf("error updating assignment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAssignmentNotFound
	}
	return nil
}

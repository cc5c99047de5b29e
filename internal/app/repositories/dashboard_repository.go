package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aydink/mentorlink/internal/app/models/dto"
)

// DashboardRepository runs the read-only aggregation queries behind the
// per-role stat widgets. No mutations.
type DashboardRepository struct {
	db *pgxpool.Pool
}

// NewDashboardRepository creates a new DashboardRepository
func NewDashboardRepository(db *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// MentorTaskStats counts a mentor's tasks and fully-completed tasks
func (r *DashboardRepository) MentorTaskStats(ctx context.Context, mentorID int64) (dto.TaskStats, error) {
	var stats dto.TaskStats
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE NOT EXISTS (
		           SELECT 1 FROM task_assignments ta
		           WHERE ta.task_id = t.id AND ta.status <> 'completed'
		       ))
		FROM tasks t
		WHERE t.mentor_id = $1`,
		mentorID).Scan(&stats.TotalTasks, &stats.CompletedTasks)
	if err != nil {
		return stats, fmt.Errorf("error aggregating mentor task stats: %w", err)
	}
	return stats, nil
}

// MentorStudentStats counts a mentor's roster and its placed students
func (r *DashboardRepository) MentorStudentStats(ctx context.Context, mentorID int64) (dto.StudentStats, error) {
	var stats dto.StudentStats
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE placement_status = 'accepted')
		FROM student_profiles
		WHERE mentor_id = $1`,
		mentorID).Scan(&stats.TotalStudents, &stats.StudentsWithPlacements)
	if err != nil {
		return stats, fmt.Errorf("error aggregating mentor student stats: %w", err)
	}
	return stats, nil
}

// StudentTaskStats counts a student's own assignments
func (r *DashboardRepository) StudentTaskStats(ctx context.Context, studentID int64) (dto.TaskStats, error) {
	var stats dto.TaskStats
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'completed')
		FROM task_assignments
		WHERE student_id = $1`,
		studentID).Scan(&stats.TotalTasks, &stats.CompletedTasks)
	if err != nil {
		return stats, fmt.Errorf("error aggregating student task stats: %w", err)
	}
	return stats, nil
}

// StudentApplicationStats counts a student's own applications
func (r *DashboardRepository) StudentApplicationStats(ctx context.Context, studentID int64) (dto.StudentPlacementStats, error) {
	var stats dto.StudentPlacementStats
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'accepted'),
		       COUNT(*) FILTER (WHERE status = 'offered')
		FROM applications
		WHERE student_id = $1`,
		studentID).Scan(&stats.TotalApplications, &stats.AcceptedOffers, &stats.PendingOffers)
	if err != nil {
		return stats, fmt.Errorf("error aggregating student application stats: %w", err)
	}
	return stats, nil
}

// GlobalPlacementStats summarizes placement across all students. avg_salary is
// taken over accepted applications.
func (r *DashboardRepository) GlobalPlacementStats(ctx context.Context) (dto.OfficerPlacementStats, error) {
	var stats dto.OfficerPlacementStats
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE placement_status = 'accepted'),
		       COALESCE((SELECT AVG(salary) FROM applications WHERE status = 'accepted' AND salary IS NOT NULL), 0)
		FROM student_profiles`).Scan(&stats.TotalStudents, &stats.PlacedStudents, &stats.AvgSalary)
	if err != nil {
		return stats, fmt.Errorf("error aggregating placement stats: %w", err)
	}
	return stats, nil
}

// DepartmentStats returns the per-department total vs placed breakdown
func (r *DashboardRepository) DepartmentStats(ctx context.Context) ([]dto.DepartmentStat, error) {
	rows, err := r.db.Query(ctx, `
		SELECT department,
		       COUNT(*),
		       COUNT(*) FILTER (WHERE placement_status = 'accepted')
		FROM student_profiles
		GROUP BY department
		ORDER BY department ASC`)
	if err != nil {
		return nil, fmt.Errorf("error aggregating department stats: %w", err)
	}
	defer rows.Close()

	var stats []dto.DepartmentStat
	for rows.Next() {
		var s dto.DepartmentStat
		if err := rows.Scan(&s.Department, &s.TotalStudents, &s.PlacedStudents); err != nil {
			return nil, fmt.Errorf("error scanning department row: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

package services

import (
	"context"
	"math"

	"github.com/rs/zerolog"

	"github.com/aydink/mentorlink/internal/app/auth"
	"github.com/aydink/mentorlink/internal/app/models/dto"
)

// DashboardStore is the aggregation surface the dashboard service needs
type DashboardStore interface {
	MentorTaskStats(ctx context.Context, mentorID int64) (dto.TaskStats, error)
	MentorStudentStats(ctx context.Context, mentorID int64) (dto.StudentStats, error)
	StudentTaskStats(ctx context.Context, studentID int64) (dto.TaskStats, error)
	StudentApplicationStats(ctx context.Context, studentID int64) (dto.StudentPlacementStats, error)
	GlobalPlacementStats(ctx context.Context) (dto.OfficerPlacementStats, error)
	DepartmentStats(ctx context.Context) ([]dto.DepartmentStat, error)
}

// DashboardService builds the per-role stat widget payloads
type DashboardService interface {
	MentorDashboard(ctx context.Context, actor *auth.Actor) (*dto.MentorDashboard, error)
	StudentDashboard(ctx context.Context, actor *auth.Actor) (*dto.StudentDashboard, error)
	OfficerDashboard(ctx context.Context) (*dto.OfficerDashboard, error)
}

type dashboardServiceImpl struct {
	dashboardStore DashboardStore
	logger         zerolog.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(dashboardStore DashboardStore, logger zerolog.Logger) DashboardService {
	return &dashboardServiceImpl{
		dashboardStore: dashboardStore,
		logger:         logger,
	}
}

// MentorDashboard aggregates a mentor's task and roster stats. An empty
// roster yields a 0 placed percentage.
func (s *dashboardServiceImpl) MentorDashboard(ctx context.Context, actor *auth.Actor) (*dto.MentorDashboard, error) {
	taskStats, err := s.dashboardStore.MentorTaskStats(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	studentStats, err := s.dashboardStore.MentorStudentStats(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	studentStats.PlacedPercentage = percentage(studentStats.StudentsWithPlacements, studentStats.TotalStudents)

	return &dto.MentorDashboard{
		TaskStats:    taskStats,
		StudentStats: studentStats,
	}, nil
}

// StudentDashboard aggregates a student's own assignments and applications
func (s *dashboardServiceImpl) StudentDashboard(ctx context.Context, actor *auth.Actor) (*dto.StudentDashboard, error) {
	taskStats, err := s.dashboardStore.StudentTaskStats(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	placementStats, err := s.dashboardStore.StudentApplicationStats(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	return &dto.StudentDashboard{
		TaskStats:      taskStats,
		PlacementStats: placementStats,
	}, nil
}

// OfficerDashboard aggregates global placement stats with the per-department
// breakdown
func (s *dashboardServiceImpl) OfficerDashboard(ctx context.Context) (*dto.OfficerDashboard, error) {
	placementStats, err := s.dashboardStore.GlobalPlacementStats(ctx)
	if err != nil {
		return nil, err
	}
	placementStats.PlacementPercentage = percentage(placementStats.PlacedStudents, placementStats.TotalStudents)

	deptStats, err := s.dashboardStore.DepartmentStats(ctx)
	if err != nil {
		return nil, err
	}
	if deptStats == nil {
		deptStats = []dto.DepartmentStat{}
	}

	return &dto.OfficerDashboard{
		PlacementStats: placementStats,
		DeptStats:      deptStats,
	}, nil
}

// percentage returns part/total as a percentage rounded to two decimals, with
// a zero total yielding 0 rather than a division error.
func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*10000) / 100
}

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/aydink/mentorlink/internal/app/auth"
	"github.com/aydink/mentorlink/internal/app/models"
	"github.com/aydink/mentorlink/internal/app/models/dto"
	"github.com/aydink/mentorlink/internal/pkg/apperrors"
	"github.com/aydink/mentorlink/internal/pkg/helpers"
)

// TaskStore is the task persistence surface the task service needs
type TaskStore interface {
	CreateWithAssignments(ctx context.Context, task *models.Task, studentIDs []int64) (int64, []int64, error)
	ListByMentor(ctx context.Context, mentorID int64) ([]dto.MentorTaskRow, error)
	ListByStudent(ctx context.Context, studentID int64) ([]dto.StudentTaskRow, error)
	GetDetail(ctx context.Context, taskID, mentorID int64) (*dto.TaskDetailResponse, error)
	GetAssignment(ctx context.Context, taskID, studentID int64) (*models.TaskAssignment, error)
	UpdateAssignmentStatus(ctx context.Context, taskID, studentID int64, status models.AssignmentStatus, remarks string, completedAt *time.Time) error
}

// RosterStore resolves mentor/student roster membership
type RosterStore interface {
	StudentBelongsToMentor(ctx context.Context, studentID, mentorID int64) (bool, error)
}

// TaskService handles task creation, listing, and assignment progress
type TaskService interface {
	CreateTask(ctx context.Context, actor *auth.Actor, req *dto.CreateTaskRequest) (*dto.CreateTaskResponse, error)
	ListTasks(ctx context.Context, actor *auth.Actor) (interface{}, error)
	GetTaskDetail(ctx context.Context, actor *auth.Actor, taskID int64) (*dto.TaskDetailResponse, error)
	UpdateAssignmentStatus(ctx context.Context, actor *auth.Actor, taskID int64, req *dto.UpdateAssignmentStatusRequest) error
}

type taskServiceImpl struct {
	taskStore   TaskStore
	rosterStore RosterStore
	logger      zerolog.Logger
}

// NewTaskService creates a new TaskService
func NewTaskService(taskStore TaskStore, rosterStore RosterStore, logger zerolog.Logger) TaskService {
	return &taskServiceImpl{
		taskStore:   taskStore,
		rosterStore: rosterStore,
		logger:      logger,
	}
}

// CreateTask fans a task out to the mentor's students. Requested students that
// are not on the caller's roster are skipped; if none remain the request fails
// without creating the task.
func (s *taskServiceImpl) CreateTask(ctx context.Context, actor *auth.Actor, req *dto.CreateTaskRequest) (*dto.CreateTaskResponse, error) {
	deadline, err := helpers.ParseTime(req.Deadline)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("deadline must be a valid datetime")
	}

	valid := make([]int64, 0, len(req.StudentIDs))
	seen := make(map[int64]bool, len(req.StudentIDs))
	for _, studentID := range req.StudentIDs {
		if seen[studentID] {
			continue
		}
		seen[studentID] = true

		ok, err := s.rosterStore.StudentBelongsToMentor(ctx, studentID, actor.ID)
		if err != nil {
			return nil, err
		}
		if !ok {
			s.logger.Warn().Int64("mentorID", actor.ID).Int64("studentID", studentID).
				Msg("Skipping student outside mentor roster")
			continue
		}
		valid = append(valid, studentID)
	}

	if len(valid) == 0 {
		return nil, apperrors.NewInvalidInputError("no valid students to assign the task to")
	}

	task := &models.Task{
		MentorID:    actor.ID,
		Title:       req.Title,
		Description: req.Description,
		Deadline:    deadline,
	}

	taskID, assignmentIDs, err := s.taskStore.CreateWithAssignments(ctx, task, valid)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("taskID", taskID).Int64("mentorID", actor.ID).
		Int("assignments", len(assignmentIDs)).Msg("Task created")

	return &dto.CreateTaskResponse{TaskID: taskID, AssignmentIDs: assignmentIDs}, nil
}

// ListTasks returns the caller's role-appropriate view: mentors see the tasks
// they issued with completion counts, students see their own assignments.
func (s *taskServiceImpl) ListTasks(ctx context.Context, actor *auth.Actor) (interface{}, error) {
	switch {
	case actor.IsMentor():
		rows, err := s.taskStore.ListByMentor(ctx, actor.ID)
		if err != nil {
			return nil, err
		}
		if rows == nil {
			rows = []dto.MentorTaskRow{}
		}
		return rows, nil
	case actor.IsStudent():
		rows, err := s.taskStore.ListByStudent(ctx, actor.ID)
		if err != nil {
			return nil, err
		}
		if rows == nil {
			rows = []dto.StudentTaskRow{}
		}
		return rows, nil
	default:
		return nil, apperrors.NewForbiddenError("placement officers do not have a task view")
	}
}

// GetTaskDetail returns a mentor's task with its per-student assignment
// breakdown. Tasks issued by other mentors read as not found.
func (s *taskServiceImpl) GetTaskDetail(ctx context.Context, actor *auth.Actor, taskID int64) (*dto.TaskDetailResponse, error) {
	return s.taskStore.GetDetail(ctx, taskID, actor.ID)
}

// UpdateAssignmentStatus moves the caller's own assignment forward. Status
// moves only in the pending -> in_progress -> completed direction; repeating
// the current status is allowed and keeps the original completion timestamp.
func (s *taskServiceImpl) UpdateAssignmentStatus(ctx context.Context, actor *auth.Actor, taskID int64, req *dto.UpdateAssignmentStatusRequest) error {
	status, ok := models.ParseAssignmentStatus(req.Status)
	if !ok {
		return apperrors.NewInvalidInputError("invalid status, must be one of: pending, in_progress, completed")
	}

	assignment, err := s.taskStore.GetAssignment(ctx, taskID, actor.ID)
	if err != nil {
		return err
	}

	if status.Rank() < assignment.Status.Rank() {
		return apperrors.NewInvalidInputError("assignment status cannot move backwards")
	}

	now := time.Now()
	var completedAt *time.Time
	if status == models.AssignmentCompleted {
		completedAt = &now
	}

	if err := s.taskStore.UpdateAssignmentStatus(ctx, taskID, actor.ID, status, req.Remarks, completedAt); err != nil {
		return err
	}

	s.logger.Info().Int64("taskID", taskID).Int64("studentID", actor.ID).
		Str("status", string(status)).Msg("Assignment status updated")
	return nil
}

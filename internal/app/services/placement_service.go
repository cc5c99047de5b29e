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

// PlacementStore is the placement persistence surface the placement service
// needs
type PlacementStore interface {
	CreatePlacement(ctx context.Context, p *models.Placement) (int64, error)
	GetPlacementByID(ctx context.Context, id int64) (*models.Placement, error)
	// ListPlacements returns the feed ordered newest-first by created_at.
	ListPlacements(ctx context.Context) ([]dto.PlacementUpdateRow, error)
	DeletePlacement(ctx context.Context, id int64) error
	ApplicationExists(ctx context.Context, studentID, placementID int64) (bool, error)
	CreateApplication(ctx context.Context, a *models.Application) (int64, error)
	GetApplicationByID(ctx context.Context, id int64) (*models.Application, error)
	ListApplications(ctx context.Context, studentID *int64) ([]dto.ApplicationRow, error)
	UpdateApplication(ctx context.Context, a *models.Application) error
	DeleteApplication(ctx context.Context, id int64) error
}

// StudentStatusStore syncs the denormalized placement flag on student profiles
type StudentStatusStore interface {
	SetPlacementStatus(ctx context.Context, studentID int64, status string) error
}

// PlacementService handles placement postings and student applications
type PlacementService interface {
	PostPlacementUpdate(ctx context.Context, actor *auth.Actor, req *dto.PostPlacementUpdateRequest) (*models.Placement, error)
	ListPlacementUpdates(ctx context.Context) ([]dto.PlacementUpdateRow, error)
	DeletePlacementUpdate(ctx context.Context, actor *auth.Actor, id int64) error
	CreateApplication(ctx context.Context, actor *auth.Actor, req *dto.CreateApplicationRequest) (*models.Application, error)
	ListApplications(ctx context.Context, actor *auth.Actor, studentID *int64) ([]dto.ApplicationRow, error)
	UpdateApplication(ctx context.Context, actor *auth.Actor, id int64, req *dto.UpdateApplicationRequest) (*models.Application, error)
	DeleteApplication(ctx context.Context, actor *auth.Actor, id int64) error
}

type placementServiceImpl struct {
	placementStore PlacementStore
	studentStore   StudentStatusStore
	logger         zerolog.Logger
}

// NewPlacementService creates a new PlacementService
func NewPlacementService(placementStore PlacementStore, studentStore StudentStatusStore, logger zerolog.Logger) PlacementService {
	return &placementServiceImpl{
		placementStore: placementStore,
		studentStore:   studentStore,
		logger:         logger,
	}
}

// PostPlacementUpdate publishes a posting on the global feed
func (s *placementServiceImpl) PostPlacementUpdate(ctx context.Context, actor *auth.Actor, req *dto.PostPlacementUpdateRequest) (*models.Placement, error) {
	placement := &models.Placement{
		MentorID:        actor.ID,
		Title:           req.Title,
		Description:     req.Description,
		ApplicationLink: req.ApplicationLink,
		IsImportant:     req.IsImportant,
	}

	id, err := s.placementStore.CreatePlacement(ctx, placement)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("placementID", id).Int64("authorID", actor.ID).Msg("Placement update posted")
	return placement, nil
}

// ListPlacementUpdates returns the full feed, newest first
func (s *placementServiceImpl) ListPlacementUpdates(ctx context.Context) ([]dto.PlacementUpdateRow, error) {
	rows, err := s.placementStore.ListPlacements(ctx)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []dto.PlacementUpdateRow{}
	}
	return rows, nil
}

// DeletePlacementUpdate removes a posting. A mentor can only remove their own
// posts; placement officers can remove any. A post owned by another mentor
// reads as not found.
func (s *placementServiceImpl) DeletePlacementUpdate(ctx context.Context, actor *auth.Actor, id int64) error {
	placement, err := s.placementStore.GetPlacementByID(ctx, id)
	if err != nil {
		return err
	}

	if actor.IsMentor() && placement.MentorID != actor.ID {
		return apperrors.ErrPlacementNotFound
	}

	if err := s.placementStore.DeletePlacement(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("placementID", id).Int64("actorID", actor.ID).Msg("Placement update deleted")
	return nil
}

// CreateApplication records a student's progress against a placement. A
// student always records for themselves; staff supply the student explicitly.
// A second record for the same (student, placement) pair is rejected.
func (s *placementServiceImpl) CreateApplication(ctx context.Context, actor *auth.Actor, req *dto.CreateApplicationRequest) (*models.Application, error) {
	studentID := req.StudentID
	if actor.IsStudent() {
		studentID = actor.ID
	}
	if studentID == 0 {
		return nil, apperrors.NewInvalidInputError("student_id is required")
	}
	if req.PlacementID == 0 {
		return nil, apperrors.NewInvalidInputError("placement_id is required")
	}

	status, ok := models.ParseApplicationStatus(req.Status)
	if !ok {
		return nil, apperrors.NewInvalidInputError("invalid status, must be one of: applied, interview, offered, accepted, rejected")
	}

	if _, err := s.placementStore.GetPlacementByID(ctx, req.PlacementID); err != nil {
		return nil, err
	}

	exists, err := s.placementStore.ApplicationExists(ctx, studentID, req.PlacementID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrDuplicateApplication
	}

	applicationDate := time.Now()
	if req.ApplicationDate != "" {
		applicationDate, err = helpers.ParseTime(req.ApplicationDate)
		if err != nil {
			return nil, apperrors.NewInvalidInputError("application_date must be a valid date")
		}
	}

	var offerDate *time.Time
	if req.OfferDate != "" {
		parsed, err := helpers.ParseTime(req.OfferDate)
		if err != nil {
			return nil, apperrors.NewInvalidInputError("offer_date must be a valid date")
		}
		offerDate = &parsed
	}

	actorID := actor.ID
	application := &models.Application{
		StudentID:       studentID,
		PlacementID:     req.PlacementID,
		JobTitle:        req.JobTitle,
		Status:          status,
		ApplicationDate: applicationDate,
		OfferDate:       offerDate,
		Salary:          req.Salary,
		Notes:           req.Notes,
		UpdatedBy:       &actorID,
	}

	id, err := s.placementStore.CreateApplication(ctx, application)
	if err != nil {
		return nil, err
	}

	if status == models.ApplicationAccepted {
		if err := s.syncPlacementStatus(ctx, studentID); err != nil {
			return nil, err
		}
	}

	s.logger.Info().Int64("applicationID", id).Int64("studentID", studentID).
		Str("status", string(status)).Msg("Application created")
	return application, nil
}

// ListApplications returns application records joined with student and
// placement. Students always see their own rows only; staff may filter by
// student or see all.
func (s *placementServiceImpl) ListApplications(ctx context.Context, actor *auth.Actor, studentID *int64) ([]dto.ApplicationRow, error) {
	if actor.IsStudent() {
		id := actor.ID
		studentID = &id
	}

	rows, err := s.placementStore.ListApplications(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []dto.ApplicationRow{}
	}
	return rows, nil
}

// UpdateApplication mutates an application record, stamping the caller as the
// last editor. Setting the status to accepted marks the student as placed.
func (s *placementServiceImpl) UpdateApplication(ctx context.Context, actor *auth.Actor, id int64, req *dto.UpdateApplicationRequest) (*models.Application, error) {
	application, err := s.placementStore.GetApplicationByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != "" {
		status, ok := models.ParseApplicationStatus(req.Status)
		if !ok {
			return nil, apperrors.NewInvalidInputError("invalid status, must be one of: applied, interview, offered, accepted, rejected")
		}
		application.Status = status
	}
	if req.JobTitle != "" {
		application.JobTitle = req.JobTitle
	}
	if req.OfferDate != "" {
		parsed, err := helpers.ParseTime(req.OfferDate)
		if err != nil {
			return nil, apperrors.NewInvalidInputError("offer_date must be a valid date")
		}
		application.OfferDate = &parsed
	}
	if req.Salary != nil {
		application.Salary = req.Salary
	}
	if req.Notes != "" {
		application.Notes = req.Notes
	}
	actorID := actor.ID
	application.UpdatedBy = &actorID

	if err := s.placementStore.UpdateApplication(ctx, application); err != nil {
		return nil, err
	}

	if application.Status == models.ApplicationAccepted {
		if err := s.syncPlacementStatus(ctx, application.StudentID); err != nil {
			return nil, err
		}
	}

	s.logger.Info().Int64("applicationID", id).Int64("actorID", actor.ID).
		Str("status", string(application.Status)).Msg("Application updated")
	return application, nil
}

// DeleteApplication removes an application record
func (s *placementServiceImpl) DeleteApplication(ctx context.Context, actor *auth.Actor, id int64) error {
	if err := s.placementStore.DeleteApplication(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("applicationID", id).Int64("actorID", actor.ID).Msg("Application deleted")
	return nil
}

func (s *placementServiceImpl) syncPlacementStatus(ctx context.Context, studentID int64) error {
	return s.studentStore.SetPlacementStatus(ctx, studentID, "accepted")
}

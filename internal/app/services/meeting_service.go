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

// Meeting list filters accepted by ListMeetings.
const (
	MeetingFilterAll      = "all"
	MeetingFilterUpcoming = "upcoming"
	MeetingFilterPast     = "past"
)

// MeetingStore is the meeting persistence surface the meeting service needs
type MeetingStore interface {
	CreateWithParticipants(ctx context.Context, m *models.Meeting, participantIDs []int64) (int64, error)
	GetMeetingByID(ctx context.Context, id int64) (*models.Meeting, error)
	ListByOrganizer(ctx context.Context, organizerID int64) ([]dto.MeetingRow, error)
	ListByParticipant(ctx context.Context, participantID int64) ([]dto.MeetingRow, error)
	UpdateAttendance(ctx context.Context, meetingID, participantID int64, status models.AttendanceStatus) error
	DeleteMeeting(ctx context.Context, id int64) error
}

// MeetingService handles meeting scheduling, listing, and attendance
type MeetingService interface {
	ScheduleMeeting(ctx context.Context, actor *auth.Actor, req *dto.ScheduleMeetingRequest) (*models.Meeting, error)
	ListMeetings(ctx context.Context, actor *auth.Actor, filter string) ([]dto.MeetingRow, error)
	UpdateAttendance(ctx context.Context, actor *auth.Actor, req *dto.UpdateAttendanceRequest) error
	DeleteMeeting(ctx context.Context, actor *auth.Actor, id int64) error
}

type meetingServiceImpl struct {
	meetingStore MeetingStore
	logger       zerolog.Logger
}

// NewMeetingService creates a new MeetingService
func NewMeetingService(meetingStore MeetingStore, logger zerolog.Logger) MeetingService {
	return &meetingServiceImpl{
		meetingStore: meetingStore,
		logger:       logger,
	}
}

// ScheduleMeeting creates a meeting and its participant rows as a single unit.
// Every participant starts with a pending attendance status.
func (s *meetingServiceImpl) ScheduleMeeting(ctx context.Context, actor *auth.Actor, req *dto.ScheduleMeetingRequest) (*models.Meeting, error) {
	scheduledTime, err := helpers.ParseTime(req.ScheduledTime)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("scheduled_time must be a valid datetime")
	}

	participants := make([]int64, 0, len(req.ParticipantIDs))
	seen := make(map[int64]bool, len(req.ParticipantIDs))
	for _, id := range req.ParticipantIDs {
		if id == actor.ID || seen[id] {
			continue
		}
		seen[id] = true
		participants = append(participants, id)
	}
	if len(participants) == 0 {
		return nil, apperrors.NewInvalidInputError("participant_ids must include at least one participant")
	}

	meeting := &models.Meeting{
		OrganizerID:      actor.ID,
		Title:            req.Title,
		Description:      req.Description,
		ScheduledTime:    scheduledTime,
		DurationMinutes:  req.DurationMinutes,
		TeamsMeetingLink: req.TeamsMeetingLink,
	}

	id, err := s.meetingStore.CreateWithParticipants(ctx, meeting, participants)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("meetingID", id).Int64("organizerID", actor.ID).
		Int("participants", len(participants)).Msg("Meeting scheduled")
	return meeting, nil
}

// ListMeetings returns the caller's role-appropriate meeting list: organizers
// see the meetings they scheduled, everyone else the meetings they were
// invited to. The filter partitions by scheduled time against now.
func (s *meetingServiceImpl) ListMeetings(ctx context.Context, actor *auth.Actor, filter string) ([]dto.MeetingRow, error) {
	switch filter {
	case "", MeetingFilterAll, MeetingFilterUpcoming, MeetingFilterPast:
	default:
		return nil, apperrors.NewInvalidInputError("filter must be one of: all, upcoming, past")
	}

	var (
		rows []dto.MeetingRow
		err  error
	)
	if actor.IsStudent() {
		rows, err = s.meetingStore.ListByParticipant(ctx, actor.ID)
	} else {
		rows, err = s.meetingStore.ListByOrganizer(ctx, actor.ID)
	}
	if err != nil {
		return nil, err
	}

	now := time.Now()
	filtered := make([]dto.MeetingRow, 0, len(rows))
	for _, row := range rows {
		switch filter {
		case MeetingFilterUpcoming:
			if !row.ScheduledTime.After(now) {
				continue
			}
		case MeetingFilterPast:
			if row.ScheduledTime.After(now) {
				continue
			}
		}
		filtered = append(filtered, row)
	}
	return filtered, nil
}

// UpdateAttendance sets the caller's own RSVP on a meeting. A meeting the
// caller was not invited to reads as not found.
func (s *meetingServiceImpl) UpdateAttendance(ctx context.Context, actor *auth.Actor, req *dto.UpdateAttendanceRequest) error {
	status, ok := models.ParseAttendanceStatus(req.Status)
	if !ok {
		return apperrors.NewInvalidInputError("invalid status, must be one of: pending, attending, declined")
	}

	if err := s.meetingStore.UpdateAttendance(ctx, req.MeetingID, actor.ID, status); err != nil {
		return err
	}

	s.logger.Info().Int64("meetingID", req.MeetingID).Int64("participantID", actor.ID).
		Str("status", string(status)).Msg("Attendance updated")
	return nil
}

// DeleteMeeting removes a meeting and its participant rows. Only the organizer
// may delete; anyone else sees not found.
func (s *meetingServiceImpl) DeleteMeeting(ctx context.Context, actor *auth.Actor, id int64) error {
	meeting, err := s.meetingStore.GetMeetingByID(ctx, id)
	if err != nil {
		return err
	}
	if meeting.OrganizerID != actor.ID {
		return apperrors.ErrMeetingNotFound
	}

	if err := s.meetingStore.DeleteMeeting(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("meetingID", id).Int64("organizerID", actor.ID).Msg("Meeting deleted")
	return nil
}

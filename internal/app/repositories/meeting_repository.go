package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aydink/mentorlink/internal/app/models"
	"github.com/aydink/mentorlink/internal/app/models/dto"
	"github.com/aydink/mentorlink/internal/db"
	"github.com/aydink/mentorlink/internal/pkg/apperrors"
)

// MeetingRepository handles meeting and participant database operations
type MeetingRepository struct {
	db *pgxpool.Pool
}

// NewMeetingRepository creates a new MeetingRepository
func NewMeetingRepository(db *pgxpool.Pool) *MeetingRepository {
	return &MeetingRepository{db: db}
}

// CreateWithParticipants inserts a meeting and one pending participant row per
// invited id in a single transaction; a failed participant insert rolls the
// meeting back too.
func (r *MeetingRepository) CreateWithParticipants(ctx context.Context, m *models.Meeting, participantIDs []int64) (int64, error) {
	var meetingID int64

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO meetings (organizer_id, title, description, scheduled_time, duration_minutes, teams_meeting_link)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
			m.OrganizerID, m.Title, m.Description, m.ScheduledTime, m.DurationMinutes, m.TeamsMeetingLink).Scan(&meetingID)
		if err != nil {
			return fmt.Errorf("error creating meeting: %w", err)
		}

		for _, participantID := range participantIDs {
			_, err := tx.Exec(ctx, `
				INSERT INTO meeting_participants (meeting_id, participant_id, attendance_status)
				VALUES ($1, $2, $3)`,
				meetingID, participantID, models.AttendancePending)
			if err != nil {
				return fmt.Errorf("error adding participant %d: %w", participantID, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	m.ID = meetingID
	return meetingID, nil
}

// GetMeetingByID retrieves a meeting row
func (r *MeetingRepository) GetMeetingByID(ctx context.Context, id int64) (*models.Meeting, error) {
	m := &models.Meeting{}
	err := r.db.QueryRow(ctx, `
		SELECT id, organizer_id, title, description, scheduled_time, duration_minutes, teams_meeting_link, created_at
		FROM meetings
		WHERE id = $1`,
		id).Scan(&m.ID, &m.OrganizerID, &m.Title, &m.Description, &m.ScheduledTime,
		&m.DurationMinutes, &m.TeamsMeetingLink, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("error getting meeting: %w", err)
	}
	return m, nil
}

// ListByOrganizer retrieves meetings organized by the user, soonest first
func (r *MeetingRepository) ListByOrganizer(ctx context.Context, organizerID int64) ([]dto.MeetingRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT m.id, m.title, m.description, m.scheduled_time, m.duration_minutes,
		       m.teams_meeting_link, u.full_name,
		       (SELECT COUNT(*) FROM meeting_participants mp WHERE mp.meeting_id = m.id)
		FROM meetings m
		JOIN users u ON u.id = m.organizer_id
		WHERE m.organizer_id = $1
		ORDER BY m.scheduled_time ASC`,
		organizerID)
	if err != nil {
		return nil, fmt.Errorf("error listing organized meetings: %w", err)
	}
	defer rows.Close()

	var meetings []dto.MeetingRow
	for rows.Next() {
		var m dto.MeetingRow
		if err := rows.Scan(&m.ID, &m.Title, &m.Description, &m.ScheduledTime, &m.DurationMinutes,
			&m.TeamsMeetingLink, &m.OrganizerName, &m.ParticipantCount); err != nil {
			return nil, fmt.Errorf("error scanning meeting row: %w", err)
		}
		meetings = append(meetings, m)
	}
	return meetings, rows.Err()
}

// ListByParticipant retrieves meetings the user is invited to, with their own
// attendance status, soonest first
func (r *MeetingRepository) ListByParticipant(ctx context.Context, participantID int64) ([]dto.MeetingRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT m.id, m.title, m.description, m.scheduled_time, m.duration_minutes,
		       m.teams_meeting_link, u.full_name,
		       (SELECT COUNT(*) FROM meeting_participants c WHERE c.meeting_id = m.id),
		       mp.attendance_status
		FROM meeting_participants mp
		JOIN meetings m ON m.id = mp.meeting_id
		JOIN users u ON u.id = m.organizer_id
		WHERE mp.participant_id = $1
		ORDER BY m.scheduled_time ASC`,
		participantID)
	if err != nil {
		return nil, fmt.Errorf("error listing participant meetings: %w", err)
	}
	defer rows.Close()

	var meetings []dto.MeetingRow
	for rows.Next() {
		var m dto.MeetingRow
		if err := rows.Scan(&m.ID, &m.Title, &m.Description, &m.ScheduledTime, &m.DurationMinutes,
			&m.TeamsMeetingLink, &m.OrganizerName, &m.ParticipantCount, &m.AttendanceStatus); err != nil {
			return nil, fmt.Errorf("error scanning meeting row: %w", err)
		}
		meetings = append(meetings, m)
	}
	return meetings, rows.Err()
}

// UpdateAttendance sets the caller's own attendance status for a meeting.
// Returns apperrors.ErrParticipantNotFound when the caller is not invited.
func (r *MeetingRepository) UpdateAttendance(ctx context.Context, meetingID, participantID int64, status models.AttendanceStatus) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE meeting_participants
		SET attendance_status = $1
		WHERE meeting_id = $2 AND participant_id = $3`,
		status, meetingID, participantID)
	if err != nil {
		return fmt.Errorf("error updating attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrParticipantNotFound
	}
	return nil
}

// DeleteMeeting removes a meeting; participant rows follow via ON DELETE
// CASCADE
func (r *MeetingRepository) DeleteMeeting(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM meetings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting meeting: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrMeetingNotFound
	}
	return nil
}

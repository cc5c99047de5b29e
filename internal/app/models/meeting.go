package models

import "time"

// AttendanceStatus is a participant's RSVP state for a meeting.
type AttendanceStatus string

const (
	AttendancePending   AttendanceStatus = "pending"
	AttendanceAttending AttendanceStatus = "attending"
	AttendanceDeclined  AttendanceStatus = "declined"
)

// ParseAttendanceStatus validates a raw attendance status string.
func ParseAttendanceStatus(raw string) (AttendanceStatus, bool) {
	switch AttendanceStatus(raw) {
	case AttendancePending, AttendanceAttending, AttendanceDeclined:
		return AttendanceStatus(raw), true
	}
	return "", false
}

// Meeting defines the meeting model based on the 'meetings' table. The
// participant list is fixed at creation time.
type Meeting struct {
	ID               int64     `json:"id" db:"id"`
	OrganizerID      int64     `json:"organizer_id" db:"organizer_id"`
	Title            string    `json:"title" db:"title"`
	Description      string    `json:"description" db:"description"`
	ScheduledTime    time.Time `json:"scheduled_time" db:"scheduled_time"`
	DurationMinutes  int       `json:"duration_minutes" db:"duration_minutes"`
	TeamsMeetingLink string    `json:"teams_meeting_link" db:"teams_meeting_link"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}

// MeetingParticipant defines an invited user's row, created atomically with the
// meeting. Only the participant themselves may change attendance_status.
type MeetingParticipant struct {
	ID               int64            `json:"id" db:"id"`
	MeetingID        int64            `json:"meeting_id" db:"meeting_id"`
	ParticipantID    int64            `json:"participant_id" db:"participant_id"`
	AttendanceStatus AttendanceStatus `json:"attendance_status" db:"attendance_status"`
}

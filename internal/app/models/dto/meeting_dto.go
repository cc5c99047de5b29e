package dto

import "time"

// ScheduleMeetingRequest creates a meeting with a fixed participant list.
type ScheduleMeetingRequest struct {
	Title            string  `json:"title" binding:"required"`
	Description      string  `json:"description"`
	ScheduledTime    string  `json:"scheduled_time" binding:"required"`
	DurationMinutes  int     `json:"duration_minutes"`
	TeamsMeetingLink string  `json:"teams_meeting_link"`
	ParticipantIDs   []int64 `json:"participant_ids" binding:"required"`
}

// MeetingRow is a meeting listing entry joined with its organizer. For a
// participant caller, AttendanceStatus carries their own RSVP state.
type MeetingRow struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	ScheduledTime    time.Time `json:"scheduled_time"`
	DurationMinutes  int       `json:"duration_minutes"`
	TeamsMeetingLink string    `json:"teams_meeting_link"`
	OrganizerName    string    `json:"organizer_name"`
	ParticipantCount int       `json:"participant_count"`
	AttendanceStatus string    `json:"attendance_status,omitempty"`
}

// UpdateAttendanceRequest is a participant's RSVP mutation.
type UpdateAttendanceRequest struct {
	MeetingID int64  `json:"meetingId" binding:"required"`
	Status    string `json:"status" binding:"required"`
}

package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/aydink/mentorlink/internal/app/models"
	"github.com/aydink/mentorlink/internal/app/models/dto"
	"github.com/aydink/mentorlink/internal/pkg/apperrors"
)

type mockMeetingStore struct {
	meetings     map[int64]*models.Meeting
	participants map[int64]map[int64]*models.MeetingParticipant // meetingID -> participantID
	nextID       int64
}

func newMockMeetingStore() *mockMeetingStore {
	return &mockMeetingStore{
		meetings:     make(map[int64]*models.Meeting),
		participants: make(map[int64]map[int64]*models.MeetingParticipant),
		nextID:       1,
	}
}

func (m *mockMeetingStore) CreateWithParticipants(_ context.Context, meeting *models.Meeting, participantIDs []int64) (int64, error) {
	id := m.nextID
	m.nextID++
	meeting.ID = id
	m.meetings[id] = meeting

	m.participants[id] = make(map[int64]*models.MeetingParticipant)
	for _, pid := range participantIDs {
		m.participants[id][pid] = &models.MeetingParticipant{
			MeetingID:        id,
			ParticipantID:    pid,
			AttendanceStatus: models.AttendancePending,
		}
	}
	return id, nil
}

func (m *mockMeetingStore) GetMeetingByID(_ context.Context, id int64) (*models.Meeting, error) {
	if meeting, ok := m.meetings[id]; ok {
		return meeting, nil
	}
	return nil, apperrors.ErrMeetingNotFound
}

func (m *mockMeetingStore) ListByOrganizer(_ context.Context, organizerID int64) ([]dto.MeetingRow, error) {
	var rows []dto.MeetingRow
	for _, meeting := range m.meetings {
		if meeting.OrganizerID == organizerID {
			rows = append(rows, dto.MeetingRow{ID: meeting.ID, Title: meeting.Title, ScheduledTime: meeting.ScheduledTime})
		}
	}
	return rows, nil
}

func (m *mockMeetingStore) ListByParticipant(_ context.Context, participantID int64) ([]dto.MeetingRow, error) {
	var rows []dto.MeetingRow
	for meetingID, byParticipant := range m.participants {
		if p, ok := byParticipant[participantID]; ok {
			meeting := m.meetings[meetingID]
			rows = append(rows, dto.MeetingRow{
				ID:               meeting.ID,
				Title:            meeting.Title,
				ScheduledTime:    meeting.ScheduledTime,
				AttendanceStatus: string(p.AttendanceStatus),
			})
		}
	}
	return rows, nil
}

func (m *mockMeetingStore) UpdateAttendance(_ context.Context, meetingID, participantID int64, status models.AttendanceStatus) error {
	byParticipant, ok := m.participants[meetingID]
	if !ok {
		return apperrors.ErrParticipantNotFound
	}
	p, ok := byParticipant[participantID]
	if !ok {
		return apperrors.ErrParticipantNotFound
	}
	p.AttendanceStatus = status
	return nil
}

func (m *mockMeetingStore) DeleteMeeting(_ context.Context, id int64) error {
	if _, ok := m.meetings[id]; !ok {
		return apperrors.ErrMeetingNotFound
	}
	delete(m.meetings, id)
	delete(m.participants, id)
	return nil
}

func newMeetingService(store *mockMeetingStore) MeetingService {
	return NewMeetingService(store, zerolog.Nop())
}

func TestScheduleMeeting_ParticipantsStartPending(t *testing.T) {
	store := newMockMeetingStore()
	svc := newMeetingService(store)

	meeting, err := svc.ScheduleMeeting(context.Background(), mentorActor(1), &dto.ScheduleMeetingRequest{
		Title:          "Placement prep",
		ScheduledTime:  "2025-02-01T10:00",
		ParticipantIDs: []int64{10, 11},
	})
	if err != nil {
		t.Fatalf("ScheduleMeeting returned error: %v", err)
	}

	participants := store.participants[meeting.ID]
	if len(participants) != 2 {
		t.Fatalf("participant count = %d, want 2", len(participants))
	}
	for pid, p := range participants {
		if p.AttendanceStatus != models.AttendancePending {
			t.Errorf("participant %d status = %q, want pending", pid, p.AttendanceStatus)
		}
	}

	// Invited participant sees the meeting, a third user does not
	rows, err := svc.ListMeetings(context.Background(), studentActor(10), MeetingFilterAll)
	if err != nil {
		t.Fatalf("ListMeetings returned error: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("participant 10 should see 1 meeting, got %d", len(rows))
	}

	rows, err = svc.ListMeetings(context.Background(), studentActor(66), MeetingFilterAll)
	if err != nil {
		t.Fatalf("ListMeetings returned error: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("uninvited user should see 0 meetings, got %d", len(rows))
	}
}

func TestScheduleMeeting_Validation(t *testing.T) {
	svc := newMeetingService(newMockMeetingStore())

	_, err := svc.ScheduleMeeting(context.Background(), mentorActor(1), &dto.ScheduleMeetingRequest{
		Title:          "No participants",
		ScheduledTime:  "2025-02-01T10:00",
		ParticipantIDs: []int64{},
	})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("empty participant list error = %v, want ErrInvalidInput", err)
	}

	// Inviting only yourself leaves no real participants
	_, err = svc.ScheduleMeeting(context.Background(), mentorActor(1), &dto.ScheduleMeetingRequest{
		Title:          "Self meeting",
		ScheduledTime:  "2025-02-01T10:00",
		ParticipantIDs: []int64{1},
	})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("self-only invite error = %v, want ErrInvalidInput", err)
	}

	_, err = svc.ScheduleMeeting(context.Background(), mentorActor(1), &dto.ScheduleMeetingRequest{
		Title:          "Bad time",
		ScheduledTime:  "tomorrow-ish",
		ParticipantIDs: []int64{10},
	})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("bad time error = %v, want ErrInvalidInput", err)
	}
}

func TestUpdateAttendance_OnlyOwnRow(t *testing.T) {
	store := newMockMeetingStore()
	svc := newMeetingService(store)

	meeting, err := svc.ScheduleMeeting(context.Background(), mentorActor(1), &dto.ScheduleMeetingRequest{
		Title:          "Standup",
		ScheduledTime:  "2025-02-01T10:00",
		ParticipantIDs: []int64{10, 11},
	})
	if err != nil {
		t.Fatalf("ScheduleMeeting returned error: %v", err)
	}

	if err := svc.UpdateAttendance(context.Background(), studentActor(10), &dto.UpdateAttendanceRequest{
		MeetingID: meeting.ID, Status: "attending",
	}); err != nil {
		t.Fatalf("UpdateAttendance returned error: %v", err)
	}

	if got := store.participants[meeting.ID][10].AttendanceStatus; got != models.AttendanceAttending {
		t.Errorf("participant 10 status = %q, want attending", got)
	}
	if got := store.participants[meeting.ID][11].AttendanceStatus; got != models.AttendancePending {
		t.Errorf("participant 11 status = %q, want pending (untouched)", got)
	}

	// Not invited
	err = svc.UpdateAttendance(context.Background(), studentActor(66), &dto.UpdateAttendanceRequest{
		MeetingID: meeting.ID, Status: "attending",
	})
	if !errors.Is(err, apperrors.ErrParticipantNotFound) {
		t.Errorf("uninvited error = %v, want ErrParticipantNotFound", err)
	}

	// Bad status
	err = svc.UpdateAttendance(context.Background(), studentActor(10), &dto.UpdateAttendanceRequest{
		MeetingID: meeting.ID, Status: "maybe",
	})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("bad status error = %v, want ErrInvalidInput", err)
	}
}

func TestListMeetings_TimeFilter(t *testing.T) {
	store := newMockMeetingStore()
	svc := newMeetingService(store)

	past := time.Now().Add(-48 * time.Hour).Format("2006-01-02T15:04")
	future := time.Now().Add(48 * time.Hour).Format("2006-01-02T15:04")

	if _, err := svc.ScheduleMeeting(context.Background(), mentorActor(1), &dto.ScheduleMeetingRequest{
		Title: "Past", ScheduledTime: past, ParticipantIDs: []int64{10},
	}); err != nil {
		t.Fatalf("ScheduleMeeting returned error: %v", err)
	}
	if _, err := svc.ScheduleMeeting(context.Background(), mentorActor(1), &dto.ScheduleMeetingRequest{
		Title: "Future", ScheduledTime: future, ParticipantIDs: []int64{10},
	}); err != nil {
		t.Fatalf("ScheduleMeeting returned error: %v", err)
	}

	tests := []struct {
		filter string
		want   int
	}{
		{filter: MeetingFilterAll, want: 2},
		{filter: "", want: 2},
		{filter: MeetingFilterUpcoming, want: 1},
		{filter: MeetingFilterPast, want: 1},
	}
	for _, tt := range tests {
		rows, err := svc.ListMeetings(context.Background(), mentorActor(1), tt.filter)
		if err != nil {
			t.Fatalf("ListMeetings(%q) returned error: %v", tt.filter, err)
		}
		if len(rows) != tt.want {
			t.Errorf("ListMeetings(%q) count = %d, want %d", tt.filter, len(rows), tt.want)
		}
	}

	if _, err := svc.ListMeetings(context.Background(), mentorActor(1), "someday"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("bad filter error = %v, want ErrInvalidInput", err)
	}
}

func TestDeleteMeeting_OrganizerOnly(t *testing.T) {
	store := newMockMeetingStore()
	svc := newMeetingService(store)

	meeting, err := svc.ScheduleMeeting(context.Background(), mentorActor(1), &dto.ScheduleMeetingRequest{
		Title: "Doomed", ScheduledTime: "2025-02-01T10:00", ParticipantIDs: []int64{10},
	})
	if err != nil {
		t.Fatalf("ScheduleMeeting returned error: %v", err)
	}

	if err := svc.DeleteMeeting(context.Background(), mentorActor(2), meeting.ID); !errors.Is(err, apperrors.ErrMeetingNotFound) {
		t.Errorf("non-organizer delete error = %v, want ErrMeetingNotFound", err)
	}

	if err := svc.DeleteMeeting(context.Background(), mentorActor(1), meeting.ID); err != nil {
		t.Fatalf("organizer delete returned error: %v", err)
	}
	if _, ok := store.meetings[meeting.ID]; ok {
		t.Error("meeting should be removed")
	}
	if _, ok := store.participants[meeting.ID]; ok {
		t.Error("participant rows should be removed with the meeting")
	}
}

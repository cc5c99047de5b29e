package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/aydink/mentorlink/internal/app/models"
	"github.com/aydink/mentorlink/internal/pkg/apperrors"
)

type mockDirectoryStore struct {
	users  map[int64]*models.User
	roster map[int64]int64 // studentID -> mentorID
}

func (m *mockDirectoryStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *mockDirectoryStore) ListStudents(_ context.Context, mentorID *int64) ([]*models.User, error) {
	var students []*models.User
	for id, u := range m.users {
		if u.Role != models.RoleStudent {
			continue
		}
		if mentorID != nil && m.roster[id] != *mentorID {
			continue
		}
		students = append(students, u)
	}
	return students, nil
}

func (m *mockDirectoryStore) ListMentors(_ context.Context) ([]*models.User, error) {
	var mentors []*models.User
	for _, u := range m.users {
		if u.Role == models.RoleMentor {
			mentors = append(mentors, u)
		}
	}
	return mentors, nil
}

func (m *mockDirectoryStore) StudentBelongsToMentor(_ context.Context, studentID, mentorID int64) (bool, error) {
	return m.roster[studentID] == mentorID, nil
}

func directoryFixture() *mockDirectoryStore {
	return &mockDirectoryStore{
		users: map[int64]*models.User{
			1:  {ID: 1, Role: models.RoleMentor, FullName: "Mentor One"},
			2:  {ID: 2, Role: models.RoleMentor, FullName: "Mentor Two"},
			10: {ID: 10, Role: models.RoleStudent, FullName: "Student Ten"},
			11: {ID: 11, Role: models.RoleStudent, FullName: "Student Eleven"},
			12: {ID: 12, Role: models.RoleStudent, FullName: "Student Twelve"},
		},
		roster: map[int64]int64{10: 1, 11: 1, 12: 2},
	}
}

func TestListStudents_RoleScoping(t *testing.T) {
	svc := NewUserService(directoryFixture(), zerolog.Nop())

	// Mentor sees only their roster
	students, err := svc.ListStudents(context.Background(), mentorActor(1))
	if err != nil {
		t.Fatalf("ListStudents returned error: %v", err)
	}
	if len(students) != 2 {
		t.Errorf("mentor roster count = %d, want 2", len(students))
	}
	for _, s := range students {
		if s.ID == 12 {
			t.Error("mentor 1 should not see mentor 2's student")
		}
	}

	// Officer sees every student
	students, err = svc.ListStudents(context.Background(), officerActor(3))
	if err != nil {
		t.Fatalf("ListStudents returned error: %v", err)
	}
	if len(students) != 3 {
		t.Errorf("officer view count = %d, want 3", len(students))
	}

	// Students are forbidden
	if _, err := svc.ListStudents(context.Background(), studentActor(10)); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("student caller error = %v, want ErrPermissionDenied", err)
	}
}

func TestGetStudent_RosterScoping(t *testing.T) {
	svc := NewUserService(directoryFixture(), zerolog.Nop())

	student, err := svc.GetStudent(context.Background(), mentorActor(1), 10)
	if err != nil {
		t.Fatalf("GetStudent returned error: %v", err)
	}
	if student.ID != 10 {
		t.Errorf("student.ID = %d, want 10", student.ID)
	}

	// Outside the roster reads as not found
	if _, err := svc.GetStudent(context.Background(), mentorActor(1), 12); !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Errorf("off-roster error = %v, want ErrUserNotFound", err)
	}

	// A mentor id is never a student
	if _, err := svc.GetStudent(context.Background(), officerActor(3), 2); !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Errorf("non-student id error = %v, want ErrUserNotFound", err)
	}
}

func TestListMentors(t *testing.T) {
	svc := NewUserService(directoryFixture(), zerolog.Nop())

	mentors, err := svc.ListMentors(context.Background())
	if err != nil {
		t.Fatalf("ListMentors returned error: %v", err)
	}
	if len(mentors) != 2 {
		t.Errorf("mentor count = %d, want 2", len(mentors))
	}
}

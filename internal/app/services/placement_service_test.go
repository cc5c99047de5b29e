package services

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/aydink/mentorlink/internal/app/auth"
	"github.com/aydink/mentorlink/internal/app/models"
	"github.com/aydink/mentorlink/internal/app/models/dto"
	"github.com/aydink/mentorlink/internal/pkg/apperrors"
)

type mockPlacementStore struct {
	placements   map[int64]*models.Placement
	applications map[int64]*models.Application
	nextID       int64
}

func newMockPlacementStore() *mockPlacementStore {
	return &mockPlacementStore{
		placements:   make(map[int64]*models.Placement),
		applications: make(map[int64]*models.Application),
		nextID:       1,
	}
}

func (m *mockPlacementStore) CreatePlacement(_ context.Context, p *models.Placement) (int64, error) {
	p.ID = m.nextID
	m.nextID++
	// The store stamps created_at on insert
	p.CreatedAt = time.Unix(p.ID, 0)
	m.placements[p.ID] = p
	return p.ID, nil
}

func (m *mockPlacementStore) GetPlacementByID(_ context.Context, id int64) (*models.Placement, error) {
	if p, ok := m.placements[id]; ok {
		return p, nil
	}
	return nil, apperrors.ErrPlacementNotFound
}

func (m *mockPlacementStore) ListPlacements(_ context.Context) ([]dto.PlacementUpdateRow, error) {
	var rows []dto.PlacementUpdateRow
	for _, p := range m.placements {
		rows = append(rows, dto.PlacementUpdateRow{ID: p.ID, Title: p.Title, CreatedAt: p.CreatedAt})
	}
	// Feed contract: newest first
	sort.Slice(rows, func(i, j int) bool { return rows[i].CreatedAt.After(rows[j].CreatedAt) })
	return rows, nil
}

func (m *mockPlacementStore) DeletePlacement(_ context.Context, id int64) error {
	if _, ok := m.placements[id]; !ok {
		return apperrors.ErrPlacementNotFound
	}
	delete(m.placements, id)
	return nil
}

func (m *mockPlacementStore) ApplicationExists(_ context.Context, studentID, placementID int64) (bool, error) {
	for _, a := range m.applications {
		if a.StudentID == studentID && a.PlacementID == placementID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockPlacementStore) CreateApplication(_ context.Context, a *models.Application) (int64, error) {
	a.ID = m.nextID
	m.nextID++
	m.applications[a.ID] = a
	return a.ID, nil
}

func (m *mockPlacementStore) GetApplicationByID(_ context.Context, id int64) (*models.Application, error) {
	if a, ok := m.applications[id]; ok {
		return a, nil
	}
	return nil, apperrors.ErrApplicationNotFound
}

func (m *mockPlacementStore) ListApplications(_ context.Context, studentID *int64) ([]dto.ApplicationRow, error) {
	var rows []dto.ApplicationRow
	for _, a := range m.applications {
		if studentID != nil && a.StudentID != *studentID {
			continue
		}
		rows = append(rows, dto.ApplicationRow{ID: a.ID, StudentID: a.StudentID, Status: string(a.Status)})
	}
	return rows, nil
}

func (m *mockPlacementStore) UpdateApplication(_ context.Context, a *models.Application) error {
	if _, ok := m.applications[a.ID]; !ok {
		return apperrors.ErrApplicationNotFound
	}
	m.applications[a.ID] = a
	return nil
}

func (m *mockPlacementStore) DeleteApplication(_ context.Context, id int64) error {
	if _, ok := m.applications[id]; !ok {
		return apperrors.ErrApplicationNotFound
	}
	delete(m.applications, id)
	return nil
}

type mockStudentStatusStore struct {
	statuses map[int64]string
}

func (m *mockStudentStatusStore) SetPlacementStatus(_ context.Context, studentID int64, status string) error {
	if m.statuses == nil {
		m.statuses = make(map[int64]string)
	}
	m.statuses[studentID] = status
	return nil
}

func officerActor(id int64) *auth.Actor {
	return &auth.Actor{ID: id, Role: models.RolePlacementOfficer}
}

func newPlacementService(store *mockPlacementStore, students *mockStudentStatusStore) PlacementService {
	return NewPlacementService(store, students, zerolog.Nop())
}

func seedPlacement(t *testing.T, svc PlacementService, mentorID int64) *models.Placement {
	t.Helper()
	p, err := svc.PostPlacementUpdate(context.Background(), mentorActor(mentorID), &dto.PostPlacementUpdateRequest{
		Title:       "Acme Corp hiring",
		Description: "Backend roles open",
	})
	if err != nil {
		t.Fatalf("PostPlacementUpdate returned error: %v", err)
	}
	return p
}

func TestCreateApplication_StudentSelfScope(t *testing.T) {
	store := newMockPlacementStore()
	svc := newPlacementService(store, &mockStudentStatusStore{})
	placement := seedPlacement(t, svc, 1)

	// A student's own id wins over whatever the payload claims
	app, err := svc.CreateApplication(context.Background(), studentActor(10), &dto.CreateApplicationRequest{
		StudentID:   66,
		PlacementID: placement.ID,
		JobTitle:    "Backend Engineer",
		Status:      "applied",
	})
	if err != nil {
		t.Fatalf("CreateApplication returned error: %v", err)
	}
	if app.StudentID != 10 {
		t.Errorf("StudentID = %d, want the caller's own id 10", app.StudentID)
	}
}

func TestCreateApplication_DuplicatePairRejected(t *testing.T) {
	store := newMockPlacementStore()
	svc := newPlacementService(store, &mockStudentStatusStore{})
	placement := seedPlacement(t, svc, 1)

	req := &dto.CreateApplicationRequest{
		StudentID:   10,
		PlacementID: placement.ID,
		Status:      "applied",
	}
	if _, err := svc.CreateApplication(context.Background(), officerActor(3), req); err != nil {
		t.Fatalf("first application returned error: %v", err)
	}
	if _, err := svc.CreateApplication(context.Background(), officerActor(3), req); !errors.Is(err, apperrors.ErrDuplicateApplication) {
		t.Errorf("second application error = %v, want ErrDuplicateApplication", err)
	}
}

func TestCreateApplication_Validation(t *testing.T) {
	store := newMockPlacementStore()
	svc := newPlacementService(store, &mockStudentStatusStore{})
	placement := seedPlacement(t, svc, 1)

	tests := []struct {
		name    string
		req     *dto.CreateApplicationRequest
		wantErr error
	}{
		{
			name:    "missing student",
			req:     &dto.CreateApplicationRequest{PlacementID: placement.ID, Status: "applied"},
			wantErr: apperrors.ErrInvalidInput,
		},
		{
			name:    "missing placement",
			req:     &dto.CreateApplicationRequest{StudentID: 10, Status: "applied"},
			wantErr: apperrors.ErrInvalidInput,
		},
		{
			name:    "bad status",
			req:     &dto.CreateApplicationRequest{StudentID: 10, PlacementID: placement.ID, Status: "ghosted"},
			wantErr: apperrors.ErrInvalidInput,
		},
		{
			name:    "unknown placement",
			req:     &dto.CreateApplicationRequest{StudentID: 10, PlacementID: 999, Status: "applied"},
			wantErr: apperrors.ErrPlacementNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.CreateApplication(context.Background(), officerActor(3), tt.req); !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAcceptedApplicationMarksStudentPlaced(t *testing.T) {
	store := newMockPlacementStore()
	students := &mockStudentStatusStore{}
	svc := newPlacementService(store, students)
	placement := seedPlacement(t, svc, 1)

	app, err := svc.CreateApplication(context.Background(), officerActor(3), &dto.CreateApplicationRequest{
		StudentID:   10,
		PlacementID: placement.ID,
		Status:      "offered",
	})
	if err != nil {
		t.Fatalf("CreateApplication returned error: %v", err)
	}
	if students.statuses[10] != "" {
		t.Error("offered status should not mark the student placed")
	}

	salary := 85000.0
	if _, err := svc.UpdateApplication(context.Background(), officerActor(3), app.ID, &dto.UpdateApplicationRequest{
		Status: "accepted",
		Salary: &salary,
	}); err != nil {
		t.Fatalf("UpdateApplication returned error: %v", err)
	}

	if students.statuses[10] != "accepted" {
		t.Errorf("student placement status = %q, want accepted", students.statuses[10])
	}
	if got := store.applications[app.ID]; got.Salary == nil || *got.Salary != salary {
		t.Error("salary update should be persisted")
	}
	if got := store.applications[app.ID]; got.UpdatedBy == nil || *got.UpdatedBy != 3 {
		t.Error("updated_by should record the editing officer")
	}
}

func TestListApplications_StudentAlwaysScoped(t *testing.T) {
	store := newMockPlacementStore()
	svc := newPlacementService(store, &mockStudentStatusStore{})
	placement := seedPlacement(t, svc, 1)
	other := seedPlacement(t, svc, 1)

	for _, studentID := range []int64{10, 11} {
		if _, err := svc.CreateApplication(context.Background(), officerActor(3), &dto.CreateApplicationRequest{
			StudentID: studentID, PlacementID: placement.ID, Status: "applied",
		}); err != nil {
			t.Fatalf("CreateApplication returned error: %v", err)
		}
	}
	if _, err := svc.CreateApplication(context.Background(), officerActor(3), &dto.CreateApplicationRequest{
		StudentID: 10, PlacementID: other.ID, Status: "interview",
	}); err != nil {
		t.Fatalf("CreateApplication returned error: %v", err)
	}

	// Student sees only their own rows even with a filter for someone else
	otherID := int64(11)
	rows, err := svc.ListApplications(context.Background(), studentActor(10), &otherID)
	if err != nil {
		t.Fatalf("ListApplications returned error: %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("student view count = %d, want 2", len(rows))
	}
	for _, row := range rows {
		if row.StudentID != 10 {
			t.Errorf("student view leaked a row for student %d", row.StudentID)
		}
	}

	// Officer without filter sees everything
	rows, err = svc.ListApplications(context.Background(), officerActor(3), nil)
	if err != nil {
		t.Fatalf("ListApplications returned error: %v", err)
	}
	if len(rows) != 3 {
		t.Errorf("officer view count = %d, want 3", len(rows))
	}

	// Officer with filter scopes to it
	rows, err = svc.ListApplications(context.Background(), officerActor(3), &otherID)
	if err != nil {
		t.Fatalf("ListApplications returned error: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("filtered officer view count = %d, want 1", len(rows))
	}
}

func TestListPlacementUpdates_NewestFirst(t *testing.T) {
	store := newMockPlacementStore()
	svc := newPlacementService(store, &mockStudentStatusStore{})

	for _, title := range []string{"first post", "second post", "third post"} {
		if _, err := svc.PostPlacementUpdate(context.Background(), mentorActor(1), &dto.PostPlacementUpdateRequest{
			Title:       title,
			Description: "details",
		}); err != nil {
			t.Fatalf("PostPlacementUpdate returned error: %v", err)
		}
	}

	rows, err := svc.ListPlacementUpdates(context.Background())
	if err != nil {
		t.Fatalf("ListPlacementUpdates returned error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	wantOrder := []string{"third post", "second post", "first post"}
	for i, want := range wantOrder {
		if rows[i].Title != want {
			t.Errorf("rows[%d].Title = %q, want %q", i, rows[i].Title, want)
		}
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].CreatedAt.After(rows[i-1].CreatedAt) {
			t.Errorf("rows[%d] is newer than rows[%d]", i, i-1)
		}
	}
}

func TestDeletePlacementUpdate_Ownership(t *testing.T) {
	store := newMockPlacementStore()
	svc := newPlacementService(store, &mockStudentStatusStore{})
	placement := seedPlacement(t, svc, 1)

	// Another mentor cannot delete it
	if err := svc.DeletePlacementUpdate(context.Background(), mentorActor(2), placement.ID); !errors.Is(err, apperrors.ErrPlacementNotFound) {
		t.Errorf("other mentor delete error = %v, want ErrPlacementNotFound", err)
	}

	// An officer can delete anyone's posting
	if err := svc.DeletePlacementUpdate(context.Background(), officerActor(3), placement.ID); err != nil {
		t.Fatalf("officer delete returned error: %v", err)
	}
	if _, ok := store.placements[placement.ID]; ok {
		t.Error("placement should be removed")
	}
}

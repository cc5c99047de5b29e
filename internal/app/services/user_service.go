package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/aydink/mentorlink/internal/app/auth"
	"github.com/aydink/mentorlink/internal/app/models"
	"github.com/aydink/mentorlink/internal/pkg/apperrors"
)

// DirectoryStore is the user listing surface the user service needs
type DirectoryStore interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	ListStudents(ctx context.Context, mentorID *int64) ([]*models.User, error)
	ListMentors(ctx context.Context) ([]*models.User, error)
	StudentBelongsToMentor(ctx context.Context, studentID, mentorID int64) (bool, error)
}

// UserService handles the student and mentor directory views
type UserService interface {
	ListStudents(ctx context.Context, actor *auth.Actor) ([]*models.User, error)
	GetStudent(ctx context.Context, actor *auth.Actor, studentID int64) (*models.User, error)
	ListMentors(ctx context.Context) ([]*models.User, error)
}

type userServiceImpl struct {
	directoryStore DirectoryStore
	logger         zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(directoryStore DirectoryStore, logger zerolog.Logger) UserService {
	return &userServiceImpl{
		directoryStore: directoryStore,
		logger:         logger,
	}
}

// ListStudents returns the caller's student view: a mentor sees only their
// own roster, a placement officer sees every student.
func (s *userServiceImpl) ListStudents(ctx context.Context, actor *auth.Actor) ([]*models.User, error) {
	var mentorID *int64
	switch {
	case actor.IsMentor():
		id := actor.ID
		mentorID = &id
	case actor.IsPlacementOfficer():
		// no filter
	default:
		return nil, apperrors.NewForbiddenError("students cannot list other students")
	}

	students, err := s.directoryStore.ListStudents(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	if students == nil {
		students = []*models.User{}
	}
	return students, nil
}

// GetStudent returns one student record. A mentor asking for a student
// outside their roster sees not found.
func (s *userServiceImpl) GetStudent(ctx context.Context, actor *auth.Actor, studentID int64) (*models.User, error) {
	if actor.IsMentor() {
		ok, err := s.directoryStore.StudentBelongsToMentor(ctx, studentID, actor.ID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperrors.ErrUserNotFound
		}
	}

	student, err := s.directoryStore.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student.Role != models.RoleStudent {
		return nil, apperrors.ErrUserNotFound
	}
	return student, nil
}

// ListMentors returns all mentors for roster assignment and meeting invites
func (s *userServiceImpl) ListMentors(ctx context.Context) ([]*models.User, error) {
	mentors, err := s.directoryStore.ListMentors(ctx)
	if err != nil {
		return nil, err
	}
	if mentors == nil {
		mentors = []*models.User{}
	}
	return mentors, nil
}

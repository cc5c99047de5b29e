// Package services implements the business rules over the repositories.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/aydink/mentorlink/internal/app/models"
	"github.com/aydink/mentorlink/internal/app/models/dto"
	"github.com/aydink/mentorlink/internal/pkg/apperrors"
	"github.com/aydink/mentorlink/internal/pkg/auth"
)

// UserStore is the user persistence surface the auth service needs
type UserStore interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	UpdateProfile(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
}

// AuthService handles registration, login, and profile operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	GetProfile(ctx context.Context, userID int64) (*models.User, error)
	UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*models.User, error)
	ChangePassword(ctx context.Context, userID int64, req *dto.ChangePasswordRequest) error
}

type authServiceImpl struct {
	userStore  UserStore
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userStore UserStore, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		userStore:  userStore,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates a user with its role-conditional profile. Duplicate
// username/email fail with a conflict.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	role, ok := models.ParseRole(req.Role)
	if !ok {
		return nil, apperrors.NewInvalidInputError("invalid role, must be one of: student, mentor, placement_officer")
	}

	if len(req.Password) < 8 {
		return nil, apperrors.NewInvalidInputError("password must be at least 8 characters long")
	}

	user := &models.User{
		Username: strings.TrimSpace(req.Username),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Role:     role,
		FullName: strings.TrimSpace(req.FullName),
	}

	switch role {
	case models.RoleStudent:
		if req.RollNumber == "" {
			return nil, apperrors.NewInvalidInputError("roll_number is required for students")
		}
		// A pre-assigned mentor must actually be a mentor
		if req.MentorID != nil {
			mentor, err := s.userStore.GetByID(ctx, *req.MentorID)
			if err != nil {
				if errors.Is(err, apperrors.ErrUserNotFound) {
					return nil, apperrors.NewInvalidInputError("mentor_id does not reference an existing user")
				}
				return nil, err
			}
			if mentor.Role != models.RoleMentor {
				return nil, apperrors.NewInvalidInputError("mentor_id must reference a user with the mentor role")
			}
		}
		user.StudentProfile = &models.StudentProfile{
			RollNumber:      req.RollNumber,
			Department:      req.Department,
			BatchYear:       req.BatchYear,
			CurrentCGPA:     req.CurrentCGPA,
			PlacementStatus: "unplaced",
			MentorID:        req.MentorID,
		}
	case models.RoleMentor:
		user.MentorProfile = &models.MentorProfile{
			Department:     req.Department,
			Designation:    req.Designation,
			Specialization: req.Specialization,
		}
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = hash

	id, err := s.userStore.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", id).Str("role", string(role)).Msg("User registered")

	return &dto.RegisterResponse{
		ID:       id,
		Username: user.Username,
		Email:    user.Email,
		Role:     string(user.Role),
	}, nil
}

// Login verifies credentials and issues a bearer token. Both an unknown email
// and a wrong password fail with the same invalid-credentials error.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userStore.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info().Int64("userID", user.ID).Str("role", string(user.Role)).Msg("User logged in")

	return &dto.LoginResponse{
		Success: true,
		Token:   token,
		User:    user,
	}, nil
}

// GetProfile retrieves the caller's own user record
func (s *authServiceImpl) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	return s.userStore.GetByID(ctx, userID)
}

// UpdateProfile mutates the caller's own profile. Role is immutable and is
// never read from the request.
func (s *authServiceImpl) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != "" {
		user.FullName = strings.TrimSpace(req.FullName)
	}
	if req.Email != "" {
		user.Email = strings.ToLower(strings.TrimSpace(req.Email))
	}

	switch user.Role {
	case models.RoleStudent:
		if p := user.StudentProfile; p != nil {
			if req.RollNumber != "" {
				p.RollNumber = req.RollNumber
			}
			if req.Department != "" {
				p.Department = req.Department
			}
			if req.BatchYear != 0 {
				p.BatchYear = req.BatchYear
			}
			if req.CurrentCGPA != nil {
				p.CurrentCGPA = req.CurrentCGPA
			}
		}
	case models.RoleMentor:
		if p := user.MentorProfile; p != nil {
			if req.Department != "" {
				p.Department = req.Department
			}
			if req.Designation != "" {
				p.Designation = req.Designation
			}
			if req.Specialization != "" {
				p.Specialization = req.Specialization
			}
		}
	}

	if err := s.userStore.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword verifies the current password before storing the new hash
func (s *authServiceImpl) ChangePassword(ctx context.Context, userID int64, req *dto.ChangePasswordRequest) error {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(user.Password, req.CurrentPassword) {
		return apperrors.ErrInvalidCredentials
	}

	if len(req.NewPassword) < 8 {
		return apperrors.NewInvalidInputError("new password must be at least 8 characters long")
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.userStore.UpdatePassword(ctx, userID, hash)
}

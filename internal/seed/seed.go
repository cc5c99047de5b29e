// Package seed creates the default accounts the application needs on first
// boot.
package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/aydink/mentorlink/internal/app/models"
	appRepos "github.com/aydink/mentorlink/internal/app/repositories"
	"github.com/aydink/mentorlink/internal/pkg/apperrors"
	"github.com/aydink/mentorlink/internal/pkg/auth"
)

const (
	defaultOfficerEmail    = "placement@mentorlink.app"
	defaultOfficerUsername = "placement_officer"
	defaultOfficerPassword = "ChangeMe123!"
)

// CreateDefaultData seeds a placement officer account so the global dashboard
// is reachable before any staff registers. Existing data is left untouched.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	exists, err := userRepo.EmailExists(ctx, defaultOfficerEmail)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := auth.HashPassword(defaultOfficerPassword)
	if err != nil {
		return err
	}

	officer := &appModels.User{
		Username: defaultOfficerUsername,
		Email:    defaultOfficerEmail,
		Password: hash,
		Role:     appModels.RolePlacementOfficer,
		FullName: "Placement Officer",
	}

	id, err := userRepo.Create(ctx, officer)
	if err != nil {
		// A concurrent boot may have won the race
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) || errors.Is(err, apperrors.ErrUsernameAlreadyExists) {
			return nil
		}
		return err
	}

	lgr.Info().Int64("userID", id).Str("email", defaultOfficerEmail).
		Msg("Default placement officer account created")
	return nil
}

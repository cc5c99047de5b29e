package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aydink/mentorlink/internal/app/models"
	"github.com/aydink/mentorlink/internal/app/models/dto"
	"github.com/aydink/mentorlink/internal/pkg/apperrors"
	"github.com/aydink/mentorlink/internal/pkg/dberrors"
)

// PlacementRepository handles placement posting and application database
// operations
type PlacementRepository struct {
	db *pgxpool.Pool
}

// NewPlacementRepository creates a new PlacementRepository
func NewPlacementRepository(db *pgxpool.Pool) *PlacementRepository {
	return &PlacementRepository{db: db}
}

// CreatePlacement inserts a posting
func (r *PlacementRepository) CreatePlacement(ctx context.Context, p *models.Placement) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO placements (mentor_id, title, description, application_link, is_important)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		p.MentorID, p.Title, p.Description, p.ApplicationLink, p.IsImportant).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error creating placement: %w", err)
	}
	p.ID = id
	return id, nil
}

// GetPlacementByID retrieves a posting
func (r *PlacementRepository) GetPlacementByID(ctx context.Context, id int64) (*models.Placement, error) {
	p := &models.Placement{}
	err := r.db.QueryRow(ctx, `
		SELECT id, mentor_id, title, description, application_link, is_important, created_at
		FROM placements
		WHERE id = $1`,
		id).Scan(&p.ID, &p.MentorID, &p.Title, &p.Description, &p.ApplicationLink, &p.IsImportant, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPlacementNotFound
		}
		return nil, fmt.Errorf("error getting placement: %w", err)
	}
	return p, nil
}

// ListPlacements retrieves the global feed, newest first, joined with the
// author's name
func (r *PlacementRepository) ListPlacements(ctx context.Context) ([]dto.PlacementUpdateRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT p.id, p.title, p.description, p.application_link, p.is_important,
		       u.full_name, p.created_at
		FROM placements p
		JOIN users u ON u.id = p.mentor_id
		ORDER BY p.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing placements: %w", err)
	}
	defer rows.Close()

	var updates []dto.PlacementUpdateRow
	for rows.Next() {
		var u dto.PlacementUpdateRow
		if err := rows.Scan(&u.ID, &u.Title, &u.Description, &u.ApplicationLink,
			&u.IsImportant, &u.PostedBy, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning placement row: %w", err)
		}
		updates = append(updates, u)
	}
	return updates, rows.Err()
}

// DeletePlacement removes a posting
func (r *PlacementRepository) DeletePlacement(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM placements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting placement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrPlacementNotFound
	}
	return nil
}

// ApplicationExists reports whether an application row exists for the
// (student, placement) pair
func (r *PlacementRepository) ApplicationExists(ctx context.Context, studentID, placementID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM applications
			WHERE student_id = $1 AND placement_id = $2
		)`,
		studentID, placementID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking application: %w", err)
	}
	return exists, nil
}

// CreateApplication inserts an application row. The unique (student_id,
// placement_id) constraint backs up the pre-check under concurrency.
func (r *PlacementRepository) CreateApplication(ctx context.Context, a *models.Application) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO applications (student_id, placement_id, job_title, status, application_date, offer_date, salary, notes, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		a.StudentID, a.PlacementID, a.JobTitle, a.Status, a.ApplicationDate,
		a.OfferDate, a.Salary, a.Notes, a.UpdatedBy).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_applications_student_placement") {
			return 0, apperrors.ErrDuplicateApplication
		}
		return 0, fmt.Errorf("error creating application: %w", err)
	}
	a.ID = id
	return id, nil
}

// GetApplicationByID retrieves an application row
func (r *PlacementRepository) GetApplicationByID(ctx context.Context, id int64) (*models.Application, error) {
	a := &models.Application{}
	err := r.db.QueryRow(ctx, `
		SELECT id, student_id, placement_id, job_title, status, application_date,
		       offer_date, salary, notes, updated_by, created_at
		FROM applications
		WHERE id = $1`,
		id).Scan(&a.ID, &a.StudentID, &a.PlacementID, &a.JobTitle, &a.Status,
		&a.ApplicationDate, &a.OfferDate, &a.Salary, &a.Notes, &a.UpdatedBy, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error getting application: %w", err)
	}
	return a, nil
}

// ListApplications retrieves applications joined with student and placement.
// A nil studentID returns all rows.
func (r *PlacementRepository) ListApplications(ctx context.Context, studentID *int64) ([]dto.ApplicationRow, error) {
	query := `
		SELECT a.id, a.student_id, u.full_name, COALESCE(sp.roll_number, ''), COALESCE(sp.department, ''),
		       a.placement_id, p.title, a.job_title, a.status, a.application_date,
		       a.offer_date, a.salary, a.notes
		FROM applications a
		JOIN users u ON u.id = a.student_id
		LEFT JOIN student_profiles sp ON sp.user_id = a.student_id
		JOIN placements p ON p.id = a.placement_id`
	args := []interface{}{}
	if studentID != nil {
		query += ` WHERE a.student_id = $1`
		args = append(args, *studentID)
	}
	query += ` ORDER BY a.id DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing applications: %w", err)
	}
	defer rows.Close()

	var applications []dto.ApplicationRow
	for rows.Next() {
		var a dto.ApplicationRow
		if err := rows.Scan(&a.ID, &a.StudentID, &a.StudentName, &a.RollNumber, &a.Department,
			&a.PlacementID, &a.CompanyName, &a.JobTitle, &a.Status, &a.ApplicationDate,
			&a.OfferDate, &a.Salary, &a.Notes); err != nil {
			return nil, fmt.Errorf("error scanning application row: %w", err)
		}
		applications = append(applications, a)
	}
	return applications, rows.Err()
}

// UpdateApplication mutates an existing application row
func (r *PlacementRepository) UpdateApplication(ctx context.Context, a *models.Application) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE applications
		SET job_title = $1, status = $2, offer_date = $3, salary = $4, notes = $5, updated_by = $6
		WHERE id = $7`,
		a.JobTitle, a.Status, a.OfferDate, a.Salary, a.Notes, a.UpdatedBy, a.ID)
	if err != nil {
		return fmt.Errorf("error updating application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}
	return nil
}

// DeleteApplication removes an application row
func (r *PlacementRepository) DeleteApplication(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}
	return nil
}

package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aydink/mentorlink/internal/app/models"
	"github.com/aydink/mentorlink/internal/pkg/apperrors"
	"github.com/aydink/mentorlink/internal/pkg/dberrors"
)

// UserRepository handles user and role-profile database operations
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a user and its role-conditional profile in one transaction.
// Returns apperrors.ErrEmailAlreadyExists / ErrUsernameAlreadyExists on
// duplicate unique fields.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	exists, err := r.EmailExists(ctx, user.Email)
	if err != nil {
		return 0, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return 0, apperrors.ErrEmailAlreadyExists
	}

	exists, err = r.UsernameExists(ctx, user.Username)
	if err != nil {
		return 0, fmt.Errorf("error checking username: %w", err)
	}
	if exists {
		return 0, apperrors.ErrUsernameAlreadyExists
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var id int64
	err = tx.QueryRow(ctx, `
		INSERT INTO users (username, email, password, role, full_name)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		user.Username, user.Email, user.Password, user.Role, user.FullName).Scan(&id)
	if err != nil {
		// The pre-checks race under concurrent registrations; the unique
		// constraints are the authority.
		if dupErr := translateUserUniqueViolation(err); dupErr != nil {
			return 0, dupErr
		}
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	switch user.Role {
	case models.RoleStudent:
		p := user.StudentProfile
		_, err = tx.Exec(ctx, `
			INSERT INTO student_profiles (user_id, roll_number, department, batch_year, current_cgpa, placement_status, mentor_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			id, p.RollNumber, p.Department, p.BatchYear, p.CurrentCGPA, p.PlacementStatus, p.MentorID)
	case models.RoleMentor:
		p := user.MentorProfile
		_, err = tx.Exec(ctx, `
			INSERT INTO mentor_profiles (user_id, department, designation, specialization)
			VALUES ($1, $2, $3, $4)`,
			id, p.Department, p.Designation, p.Specialization)
	}
	if err != nil {
		return 0, fmt.Errorf("error creating role profile: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	user.ID = id
	return id, nil
}

// translateUserUniqueViolation maps a unique violation on the users table to
// its domain error. Returns nil for any other error.
func translateUserUniqueViolation(err error) error {
	switch {
	case dberrors.IsDuplicateConstraintError(err, "uq_users_email"):
		return apperrors.ErrEmailAlreadyExists
	case dberrors.IsDuplicateConstraintError(err, "uq_users_username"):
		return apperrors.ErrUsernameAlreadyExists
	}
	return nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, `WHERE email = $1`, email)
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

func (r *UserRepository) getOne(ctx context.Context, where string, arg interface{}) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRow(ctx, `
		SELECT id, username, email, password, role, full_name, created_at, updated_at
		FROM users `+where,
		arg).Scan(
		&user.ID, &user.Username, &user.Email, &user.Password, &user.Role,
		&user.FullName, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error getting user: %w", err)
	}

	switch user.Role {
	case models.RoleStudent:
		user.StudentProfile, err = r.GetStudentProfile(ctx, user.ID)
	case models.RoleMentor:
		user.MentorProfile, err = r.getMentorProfile(ctx, user.ID)
	}
	if err != nil && !errors.Is(err, apperrors.ErrResourceNotFound) {
		return nil, err
	}

	return user, nil
}

// GetStudentProfile retrieves the student profile for a user ID
func (r *UserRepository) GetStudentProfile(ctx context.Context, userID int64) (*models.StudentProfile, error) {
	p := &models.StudentProfile{}
	err := r.db.QueryRow(ctx, `
		SELECT user_id, roll_number, department, batch_year, current_cgpa, placement_status, mentor_id
		FROM student_profiles
		WHERE user_id = $1`,
		userID).Scan(&p.UserID, &p.RollNumber, &p.Department, &p.BatchYear, &p.CurrentCGPA, &p.PlacementStatus, &p.MentorID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error getting student profile: %w", err)
	}
	return p, nil
}

func (r *UserRepository) getMentorProfile(ctx context.Context, userID int64) (*models.MentorProfile, error) {
	p := &models.MentorProfile{}
	err := r.db.QueryRow(ctx, `
		SELECT user_id, department, designation, specialization
		FROM mentor_profiles
		WHERE user_id = $1`,
		userID).Scan(&p.UserID, &p.Department, &p.Designation, &p.Specialization)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error getting mentor profile: %w", err)
	}
	return p, nil
}

// EmailExists checks if an email already exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`,
		email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}
	return exists, nil
}

// UsernameExists checks if a username already exists
func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`,
		username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking username: %w", err)
	}
	return exists, nil
}

// UpdateProfile updates a user's basic fields and role profile. Role is never
// touched here.
func (r *UserRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE users
		SET full_name = $1, email = $2, updated_at = NOW()
		WHERE id = $3`,
		user.FullName, user.Email, user.ID)
	if err != nil {
		return fmt.Errorf("error updating user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	switch user.Role {
	case models.RoleStudent:
		if p := user.StudentProfile; p != nil {
			_, err = tx.Exec(ctx, `
				UPDATE student_profiles
				SET roll_number = $1, department = $2, batch_year = $3, current_cgpa = $4
				WHERE user_id = $5`,
				p.RollNumber, p.Department, p.BatchYear, p.CurrentCGPA, user.ID)
		}
	case models.RoleMentor:
		if p := user.MentorProfile; p != nil {
			_, err = tx.Exec(ctx, `
				UPDATE mentor_profiles
				SET department = $1, designation = $2, specialization = $3
				WHERE user_id = $4`,
				p.Department, p.Designation, p.Specialization, user.ID)
		}
	}
	if err != nil {
		return fmt.Errorf("error updating role profile: %w", err)
	}

	return tx.Commit(ctx)
}

// UpdatePassword replaces the stored password hash
func (r *UserRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users
		SET password = $1, updated_at = NOW()
		WHERE id = $2`,
		passwordHash, userID)
	if err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// StudentBelongsToMentor reports whether the student is on the mentor's roster
func (r *UserRepository) StudentBelongsToMentor(ctx context.Context, studentID, mentorID int64) (bool, error) {
	var belongs bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM student_profiles
			WHERE user_id = $1 AND mentor_id = $2
		)`,
		studentID, mentorID).Scan(&belongs)
	if err != nil {
		return false, fmt.Errorf("error checking roster membership: %w", err)
	}
	return belongs, nil
}

// ListStudents retrieves students joined with their profiles. A nil mentorID
// returns all students (placement-officer view); otherwise only that mentor's
// roster.
func (r *UserRepository) ListStudents(ctx context.Context, mentorID *int64) ([]*models.User, error) {
	query := `
		SELECT u.id, u.username, u.email, u.full_name, u.created_at,
		       sp.roll_number, sp.department, sp.batch_year, sp.current_cgpa, sp.placement_status, sp.mentor_id
		FROM users u
		JOIN student_profiles sp ON sp.user_id = u.id`
	args := []interface{}{}
	if mentorID != nil {
		query += ` WHERE sp.mentor_id = $1`
		args = append(args, *mentorID)
	}
	query += ` ORDER BY u.full_name ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []*models.User
	for rows.Next() {
		u := &models.User{Role: models.RoleStudent, StudentProfile: &models.StudentProfile{}}
		p := u.StudentProfile
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.FullName, &u.CreatedAt,
			&p.RollNumber, &p.Department, &p.BatchYear, &p.CurrentCGPA, &p.PlacementStatus, &p.MentorID); err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		p.UserID = u.ID
		students = append(students, u)
	}
	return students, rows.Err()
}

// ListMentors retrieves all mentors joined with their profiles
func (r *UserRepository) ListMentors(ctx context.Context) ([]*models.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT u.id, u.username, u.email, u.full_name, u.created_at,
		       mp.department, mp.designation, mp.specialization
		FROM users u
		JOIN mentor_profiles mp ON mp.user_id = u.id
		ORDER BY u.full_name ASC`)
	if err != nil {
		return nil, fmt.Errorf("error listing mentors: %w", err)
	}
	defer rows.Close()

	var mentors []*models.User
	for rows.Next() {
		u := &models.User{Role: models.RoleMentor, MentorProfile: &models.MentorProfile{}}
		p := u.MentorProfile
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.FullName, &u.CreatedAt,
			&p.Department, &p.Designation, &p.Specialization); err != nil {
			return nil, fmt.Errorf("error scanning mentor row: %w", err)
		}
		p.UserID = u.ID
		mentors = append(mentors, u)
	}
	return mentors, rows.Err()
}

// SetPlacementStatus updates a student's placement_status tag
func (r *UserRepository) SetPlacementStatus(ctx context.Context, studentID int64, status string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE student_profiles
		SET placement_status = $1
		WHERE user_id = $2`,
		status, studentID)
	if err != nil {
		return fmt.Errorf("error updating placement status: %w", err)
	}
	return nil
}

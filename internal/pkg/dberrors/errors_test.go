package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolation(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "unique violation",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "uq_users_email"},
			want: true,
		},
		{
			name: "wrapped unique violation",
			err:  fmt.Errorf("error creating user: %w", &pgconn.PgError{Code: "23505"}),
			want: true,
		},
		{
			name: "foreign key violation",
			err:  &pgconn.PgError{Code: "23503"},
			want: false,
		},
		{
			name: "plain error",
			err:  errors.New("connection refused"),
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsUniqueViolation(tc.err); got != tc.want {
				t.Errorf("IsUniqueViolation() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsDuplicateConstraintError(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "uq_users_email"}

	cases := []struct {
		name       string
		err        error
		constraint string
		want       bool
	}{
		{
			name:       "matching constraint",
			err:        dup,
			constraint: "uq_users_email",
			want:       true,
		},
		{
			name:       "matching constraint wrapped",
			err:        fmt.Errorf("error creating user: %w", dup),
			constraint: "uq_users_email",
			want:       true,
		},
		{
			name:       "different constraint",
			err:        dup,
			constraint: "uq_users_username",
			want:       false,
		},
		{
			name:       "non-unique pg error",
			err:        &pgconn.PgError{Code: "23503", ConstraintName: "uq_users_email"},
			constraint: "uq_users_email",
			want:       false,
		},
		{
			name:       "plain error",
			err:        errors.New("duplicate key value violates unique constraint"),
			constraint: "uq_users_email",
			want:       false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsDuplicateConstraintError(tc.err, tc.constraint); got != tc.want {
				t.Errorf("IsDuplicateConstraintError(%q) = %v, want %v", tc.constraint, got, tc.want)
			}
		})
	}
}

// Package repositories provides data access on top of the pgx pool.
package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles all repositories for dependency injection
type Repositories struct {
	UserRepository      *UserRepository
	TaskRepository      *TaskRepository
	PlacementRepository *PlacementRepository
	MeetingRepository   *MeetingRepository
	DashboardRepository *DashboardRepository
}

// NewRepositories creates all repositories over a shared pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:      NewUserRepository(db),
		TaskRepository:      NewTaskRepository(db),
		PlacementRepository: NewPlacementRepository(db),
		MeetingRepository:   NewMeetingRepository(db),
		DashboardRepository: NewDashboardRepository(db),
	}
}

package services

import (
	"github.com/rs/zerolog"

	"github.com/aydink/mentorlink/internal/app/repositories"
	"github.com/aydink/mentorlink/internal/pkg/auth"
)

// Services bundles all services for dependency injection
type Services struct {
	AuthService      AuthService
	UserService      UserService
	TaskService      TaskService
	PlacementService PlacementService
	MeetingService   MeetingService
	DashboardService DashboardService
}

// NewServices wires all services over the repository bundle
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, logger zerolog.Logger) *Services {
	return &Services{
		AuthService:      NewAuthService(repos.UserRepository, jwtService, logger),
		UserService:      NewUserService(repos.UserRepository, logger),
		TaskService:      NewTaskService(repos.TaskRepository, repos.UserRepository, logger),
		PlacementService: NewPlacementService(repos.PlacementRepository, repos.UserRepository, logger),
		MeetingService:   NewMeetingService(repos.MeetingRepository, logger),
		DashboardService: NewDashboardService(repos.DashboardRepository, logger),
	}
}

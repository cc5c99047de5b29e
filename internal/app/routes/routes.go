// Package routes maps the REST surface onto controllers and the role gates
// onto route groups.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aydink/mentorlink/internal/app/auth"
	"github.com/aydink/mentorlink/internal/app/controllers"
	"github.com/aydink/mentorlink/internal/app/models"
	"github.com/aydink/mentorlink/internal/app/models/dto"
	"github.com/aydink/mentorlink/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	taskController *controllers.TaskController,
	placementController *controllers.PlacementController,
	meetingController *controllers.MeetingController,
	dashboardController *controllers.DashboardController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewMessageResponse("ok"))
	})

	// --- Public auth routes ---
	api.POST("/register", authController.Register)
	api.POST("/login", authController.Login)

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Profile (any authenticated role)
		authenticated.GET("/profile", authController.GetProfile)
		authenticated.PUT("/profile", authController.UpdateProfile)
		authenticated.POST("/change-password", authController.ChangePassword)

		// Tasks
		tasks := authenticated.Group("/tasks")
		{
			tasks.POST("", authMiddleware.RoleRequired(auth.RoleSet{models.RoleMentor}),
				taskController.CreateTask)
			tasks.GET("", authMiddleware.RoleRequired(auth.RoleSet{models.RoleMentor, models.RoleStudent}),
				taskController.ListTasks)
			tasks.GET("/:id", authMiddleware.RoleRequired(auth.RoleSet{models.RoleMentor}),
				taskController.GetTaskDetail)

			studentOnly := authMiddleware.RoleRequired(auth.RoleSet{models.RoleStudent})
			tasks.PUT("/:id/status", studentOnly, taskController.UpdateAssignmentStatus)
			tasks.PATCH("/:id/status", studentOnly, taskController.UpdateAssignmentStatus)
		}

		// Placement feed
		placementUpdates := authenticated.Group("/placement-updates")
		{
			staffOnly := authMiddleware.RoleRequired(auth.RoleSet{models.RoleMentor, models.RolePlacementOfficer})
			placementUpdates.GET("", placementController.ListPlacementUpdates)
			placementUpdates.POST("", staffOnly, placementController.PostPlacementUpdate)
			placementUpdates.DELETE("/:id", staffOnly, placementController.DeletePlacementUpdate)
		}

		// Applications (placement-status records)
		placementStatus := authenticated.Group("/placement-status")
		{
			staffOnly := authMiddleware.RoleRequired(auth.RoleSet{models.RoleMentor, models.RolePlacementOfficer})
			placementStatus.GET("", placementController.ListApplications)
			placementStatus.POST("", placementController.CreateApplication)
			placementStatus.PUT("/:id", staffOnly, placementController.UpdateApplication)
			placementStatus.DELETE("/:id", staffOnly, placementController.DeleteApplication)
		}

		// Directory
		staffOnly := authMiddleware.RoleRequired(auth.RoleSet{models.RoleMentor, models.RolePlacementOfficer})
		authenticated.GET("/students", staffOnly, userController.ListStudents)
		authenticated.GET("/students/:id", staffOnly, userController.GetStudent)
		authenticated.GET("/mentors", staffOnly, userController.ListMentors)

		// Meetings
		meetings := authenticated.Group("/meetings")
		{
			meetings.GET("", authMiddleware.RoleRequired(auth.RoleSet{models.RoleStudent, models.RoleMentor, models.RolePlacementOfficer}),
				meetingController.ListMeetings)
			meetings.POST("", authMiddleware.RoleRequired(auth.RoleSet{models.RoleMentor, models.RolePlacementOfficer}),
				meetingController.ScheduleMeeting)
			meetings.PUT("/attendance", authMiddleware.RoleRequired(auth.RoleSet{models.RoleStudent, models.RoleMentor}),
				meetingController.UpdateAttendance)
			meetings.DELETE("/:id", authMiddleware.RoleRequired(auth.RoleSet{models.RoleMentor, models.RolePlacementOfficer}),
				meetingController.DeleteMeeting)
		}

		// Dashboards
		dashboard := authenticated.Group("/dashboard")
		{
			dashboard.GET("/mentor", authMiddleware.RoleRequired(auth.RoleSet{models.RoleMentor}),
				dashboardController.MentorDashboard)
			dashboard.GET("/student", authMiddleware.RoleRequired(auth.RoleSet{models.RoleStudent}),
				dashboardController.StudentDashboard)
			dashboard.GET("/placement-officer", authMiddleware.RoleRequired(auth.RoleSet{models.RolePlacementOfficer}),
				dashboardController.OfficerDashboard)
		}
	}
}

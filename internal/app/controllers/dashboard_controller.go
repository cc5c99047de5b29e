package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/aydink/mentorlink/internal/app/auth"
	"github.com/aydink/mentorlink/internal/app/models/dto"
	"github.com/aydink/mentorlink/internal/app/services"
	"github.com/aydink/mentorlink/internal/middleware"
)

// DashboardController handles the per-role stat widget endpoints
type DashboardController struct {
	dashboardService services.DashboardService
	logger           zerolog.Logger
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService services.DashboardService, logger zerolog.Logger) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// MentorDashboard returns the mentor's task and roster stats
func (c *DashboardController) MentorDashboard(ctx *gin.Context) {
	actor, _ := auth.FromContext(ctx)

	dashboard, err := c.dashboardService.MentorDashboard(ctx.Request.Context(), &actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dashboard))
}

// StudentDashboard returns the student's assignment and application stats
func (c *DashboardController) StudentDashboard(ctx *gin.Context) {
	actor, _ := auth.FromContext(ctx)

	dashboard, err := c.dashboardService.StudentDashboard(ctx.Request.Context(), &actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dashboard))
}

// OfficerDashboard returns the global placement stats with the department
// breakdown
func (c *DashboardController) OfficerDashboard(ctx *gin.Context) {
	dashboard, err := c.dashboardService.OfficerDashboard(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dashboard))
}

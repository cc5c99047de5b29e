package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/aydink/mentorlink/internal/app/auth"
	"github.com/aydink/mentorlink/internal/app/models/dto"
	"github.com/aydink/mentorlink/internal/app/services"
	"github.com/aydink/mentorlink/internal/middleware"
)

// PlacementController handles placement feed and application endpoints
type PlacementController struct {
	placementService services.PlacementService
	logger           zerolog.Logger
}

// NewPlacementController creates a new PlacementController
func NewPlacementController(placementService services.PlacementService, logger zerolog.Logger) *PlacementController {
	return &PlacementController{
		placementService: placementService,
		logger:           logger,
	}
}

// PostPlacementUpdate publishes a posting on the global feed
func (c *PlacementController) PostPlacementUpdate(ctx *gin.Context) {
	actor, _ := auth.FromContext(ctx)

	var req dto.PostPlacementUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request payload"))
		return
	}

	placement, err := c.placementService.PostPlacementUpdate(ctx.Request.Context(), &actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(placement))
}

// ListPlacementUpdates returns the global feed, newest first
func (c *PlacementController) ListPlacementUpdates(ctx *gin.Context) {
	updates, err := c.placementService.ListPlacementUpdates(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(updates))
}

// DeletePlacementUpdate removes a posting
func (c *PlacementController) DeletePlacementUpdate(ctx *gin.Context) {
	actor, _ := auth.FromContext(ctx)

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid placement ID"))
		return
	}

	if err := c.placementService.DeletePlacementUpdate(ctx.Request.Context(), &actor, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Placement update deleted successfully"))
}

// CreateApplication records a student's progress against a placement
func (c *PlacementController) CreateApplication(ctx *gin.Context) {
	actor, _ := auth.FromContext(ctx)

	var req dto.CreateApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request payload"))
		return
	}

	application, err := c.placementService.CreateApplication(ctx.Request.Context(), &actor, &req)
	if err != nil {
		c.logger.Warn().Err(err).Int64("actorID", actor.ID).Msg("Application creation failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(application))
}

// ListApplications returns the caller's application view, with an optional
// student_id filter for staff
func (c *PlacementController) ListApplications(ctx *gin.Context) {
	actor, _ := auth.FromContext(ctx)

	var studentID *int64
	if raw := ctx.Query("student_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid student_id filter"))
			return
		}
		studentID = &id
	}

	applications, err := c.placementService.ListApplications(ctx.Request.Context(), &actor, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(applications))
}

// UpdateApplication mutates an application record
func (c *PlacementController) UpdateApplication(ctx *gin.Context) {
	actor, _ := auth.FromContext(ctx)

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid application ID"))
		return
	}

	var req dto.UpdateApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request payload"))
		return
	}

	application, err := c.placementService.UpdateApplication(ctx.Request.Context(), &actor, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(application))
}

// DeleteApplication removes an application record
func (c *PlacementController) DeleteApplication(ctx *gin.Context) {
	actor, _ := auth.FromContext(ctx)

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid application ID"))
		return
	}

	if err := c.placementService.DeleteApplication(ctx.Request.Context(), &actor, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Application deleted successfully"))
}

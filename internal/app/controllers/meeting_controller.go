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

// MeetingController handles meeting and attendance endpoints
type MeetingController struct {
	meetingService services.MeetingService
	logger         zerolog.Logger
}

// NewMeetingController creates a new MeetingController
func NewMeetingController(meetingService services.MeetingService, logger zerolog.Logger) *MeetingController {
	return &MeetingController{
		meetingService: meetingService,
		logger:         logger,
	}
}

// ScheduleMeeting creates a meeting with its participant list
func (c *MeetingController) ScheduleMeeting(ctx *gin.Context) {
	actor, _ := auth.FromContext(ctx)

	var req dto.ScheduleMeetingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request payload"))
		return
	}

	meeting, err := c.meetingService.ScheduleMeeting(ctx.Request.Context(), &actor, &req)
	if err != nil {
		c.logger.Warn().Err(err).Int64("organizerID", actor.ID).Msg("Meeting scheduling failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(meeting))
}

// ListMeetings returns the caller's meetings, optionally partitioned by time
func (c *MeetingController) ListMeetings(ctx *gin.Context) {
	actor, _ := auth.FromContext(ctx)

	meetings, err := c.meetingService.ListMeetings(ctx.Request.Context(), &actor, ctx.Query("filter"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(meetings))
}

// UpdateAttendance sets the caller's own RSVP on a meeting
func (c *MeetingController) UpdateAttendance(ctx *gin.Context) {
	actor, _ := auth.FromContext(ctx)

	var req dto.UpdateAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request payload"))
		return
	}

	if err := c.meetingService.UpdateAttendance(ctx.Request.Context(), &actor, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Attendance updated successfully"))
}

// DeleteMeeting removes a meeting the caller organized
func (c *MeetingController) DeleteMeeting(ctx *gin.Context) {
	actor, _ := auth.FromContext(ctx)

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid meeting ID"))
		return
	}

	if err := c.meetingService.DeleteMeeting(ctx.Request.Context(), &actor, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Meeting deleted successfully"))
}

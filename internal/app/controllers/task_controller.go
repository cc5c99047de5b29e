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

// TaskController handles task and assignment endpoints
type TaskController struct {
	taskService services.TaskService
	logger      zerolog.Logger
}

// NewTaskController creates a new TaskController
func NewTaskController(taskService services.TaskService, logger zerolog.Logger) *TaskController {
	return &TaskController{
		taskService: taskService,
		logger:      logger,
	}
}

// CreateTask fans a task out to the caller mentor's students
func (c *TaskController) CreateTask(ctx *gin.Context) {
	actor, _ := auth.FromContext(ctx)

	var req dto.CreateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request payload"))
		return
	}

	resp, err := c.taskService.CreateTask(ctx.Request.Context(), &actor, &req)
	if err != nil {
		c.logger.Warn().Err(err).Int64("mentorID", actor.ID).Msg("Task creation failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(resp))
}

// ListTasks returns the caller's role-scoped task list
func (c *TaskController) ListTasks(ctx *gin.Context) {
	actor, _ := auth.FromContext(ctx)

	tasks, err := c.taskService.ListTasks(ctx.Request.Context(), &actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(tasks))
}

// GetTaskDetail returns a mentor's task with its assignment breakdown
func (c *TaskController) GetTaskDetail(ctx *gin.Context) {
	actor, _ := auth.FromContext(ctx)

	taskID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid task ID"))
		return
	}

	detail, err := c.taskService.GetTaskDetail(ctx.Request.Context(), &actor, taskID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(detail))
}

// UpdateAssignmentStatus moves the caller's own assignment forward
func (c *TaskController) UpdateAssignmentStatus(ctx *gin.Context) {
	actor, _ := auth.FromContext(ctx)

	taskID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid task ID"))
		return
	}

	var req dto.UpdateAssignmentStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request payload"))
		return
	}

	if err := c.taskService.UpdateAssignmentStatus(ctx.Request.Context(), &actor, taskID, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Task status updated successfully"))
}

package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	request "oficina_os/internal/adapter/http/dto/request"
	response "oficina_os/internal/adapter/http/dto/response"
	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase"
	"oficina_os/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidTaskPayload = pkg.NewDomainErrorSimple("INVALID_TASK_INPUT", "Invalid task payload", http.StatusBadRequest)

// TaskHandler handles HTTP requests for workshop tasks.

type TaskHandler struct {
	usecase usecase.ITaskUseCase
}

func NewTaskHandler(uc usecase.ITaskUseCase) *TaskHandler {
	return &TaskHandler{usecase: uc}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var payload request.TaskRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTaskPayload.HTTPStatus, errInvalidTaskPayload.ToHTTPError())
		return
	}

	draft := usecase.TaskDraft{
		Title:           payload.Title,
		Description:     payload.Description,
		Priority:        payload.ResolvePriority(),
		DueAt:           payload.DueAt,
		RelatedOrderID:  payload.RelatedOrderID,
		RelatedClientID: payload.RelatedClientID,
	}

	task, err := h.usecase.Create(c.Request.Context(), draft)
	if err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromTask(task, time.Now().UTC()))
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	now := time.Now().UTC()
	query := entities.ListQuery{
		Text:      c.Query("q"),
		Status:    c.Query("status"),
		DueBucket: entities.DueBucket(c.Query("due")),
		Now:       now,
	}

	tasks, err := h.usecase.List(c.Request.Context(), query)
	if err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTasks(tasks, now))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	task, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTask(task, time.Now().UTC()))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var payload request.TaskUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTaskPayload.HTTPStatus, errInvalidTaskPayload.ToHTTPError())
		return
	}

	patch := usecase.TaskPatch{
		Title:           payload.Title,
		Description:     payload.Description,
		Priority:        payload.ResolvePriority(),
		Status:          payload.ResolveStatus(),
		DueAt:           payload.DueAt,
		RelatedOrderID:  payload.RelatedOrderID,
		RelatedClientID: payload.RelatedClientID,
	}

	task, err := h.usecase.Update(c.Request.Context(), id, patch)
	if err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTask(task, time.Now().UTC()))
}

func (h *TaskHandler) StartTask(c *gin.Context) {
	h.patchTaskStatus(c, h.usecase.Start)
}

func (h *TaskHandler) CompleteTask(c *gin.Context) {
	h.patchTaskStatus(c, h.usecase.Complete)
}

func (h *TaskHandler) patchTaskStatus(
	c *gin.Context,
	transition func(ctx context.Context, id int64) (entities.Task, error),
) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	task, err := transition(c.Request.Context(), id)
	if err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTask(task, time.Now().UTC()))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapTaskError(err error) *pkg.AppError {
	if appErr, ok := mapCoreError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidTaskID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTaskNotFound):
		return pkg.NewDomainErrorSimple("TASK_NOT_FOUND", "Task not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

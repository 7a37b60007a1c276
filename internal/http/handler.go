package http

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	dto "taskflow.com/taskflow/internal/data_models"
	errs "taskflow.com/taskflow/internal/errors"
	"taskflow.com/taskflow/internal/http/validators"
	"taskflow.com/taskflow/internal/services"
)

const apiVersion = "1.0.0"

type Handler struct {
	taskService *services.TaskService
}

func NewHandler(taskService *services.TaskService) *Handler {
	return &Handler{
		taskService: taskService,
	}
}

func (h *Handler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Welcome to TaskFlow API",
		"version": apiVersion,
	})
}

func (h *Handler) Health(c echo.Context) error {
	count, err := h.taskService.CountTasks(c.Request().Context())
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":      "healthy",
		"tasks_count": count,
	})
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return httpError(err)
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) GetTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return httpError(errs.ErrTaskIDRequired)
	}

	task, err := h.taskService.GetTask(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) ListTasks(c echo.Context) error {
	filters, err := validators.ParseListFilters(
		c.QueryParam("status"),
		c.QueryParam("priority"),
		c.QueryParam("assignee"),
	)
	if err != nil {
		return httpError(err)
	}

	tasks, err := h.taskService.ListTasks(c.Request().Context(), filters)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return httpError(errs.ErrTaskIDRequired)
	}

	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	// An unknown id is 404 no matter what the payload contains.
	if _, err := h.taskService.GetTask(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	if err := validators.ValidateUpdateTaskRequest(&req); err != nil {
		return httpError(err)
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), id, req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return httpError(errs.ErrTaskIDRequired)
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), id); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// httpError maps the error taxonomy onto HTTP responses. Anything outside the
// taxonomy is logged and reported as a bare 500 so internal detail never
// reaches the client.
func httpError(err error) error {
	if ex, ok := errs.As(err); ok {
		if ex.Field != "" {
			return echo.NewHTTPError(ex.StatusCode, echo.Map{
				"detail": ex.Message,
				"field":  ex.Field,
			})
		}
		return echo.NewHTTPError(ex.StatusCode, ex.Message)
	}

	log.Printf("unexpected error: %v", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}

package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ayershov777/todos/internal/infrastructure/logger"
	"github.com/ayershov777/todos/internal/ports"
)

// TaskHandler handles task resource requests
type TaskHandler struct {
	taskService ports.TaskService
	logger      *logger.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService ports.TaskService, logger *logger.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		logger:      logger,
	}
}

// ListTasks returns all tasks owned by the acting user
func (h *TaskHandler) ListTasks(c echo.Context) error {
	userID := userIDFromContext(c)

	tasks, err := h.taskService.ListTasks(c.Request().Context(), userID)
	if err != nil {
		h.logger.Error("List tasks failed", "error", err, "user_id", userID)
		return mapDomainError(err)
	}

	return c.JSON(http.StatusOK, tasks)
}

// CreateTask persists a new task for the acting user. A milestoneId in the
// body is resolved to the owning goal before the write.
func (h *TaskHandler) CreateTask(c echo.Context) error {
	userID := userIDFromContext(c)

	var req ports.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format.")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), userID, req)
	if err != nil {
		h.logger.Error("Create task failed", "error", err, "user_id", userID)
		return mapDomainError(err)
	}

	return c.JSON(http.StatusCreated, task)
}

// GetTask returns a single task by id
func (h *TaskHandler) GetTask(c echo.Context) error {
	userID := userIDFromContext(c)

	task, err := h.taskService.GetTask(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return mapDomainError(err)
	}

	return c.JSON(http.StatusOK, task)
}

// UpdateTask merges the supplied fields onto the stored task
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	userID := userIDFromContext(c)

	var req ports.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format.")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), userID, c.Param("id"), req)
	if err != nil {
		h.logger.Error("Update task failed", "error", err, "user_id", userID)
		return mapDomainError(err)
	}

	return c.JSON(http.StatusOK, task)
}

// DeleteTask removes a task
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	userID := userIDFromContext(c)

	if err := h.taskService.DeleteTask(c.Request().Context(), userID, c.Param("id")); err != nil {
		h.logger.Error("Delete task failed", "error", err, "user_id", userID)
		return mapDomainError(err)
	}

	return c.JSON(http.StatusOK, ports.MessageResponse{Message: "Task deleted"})
}

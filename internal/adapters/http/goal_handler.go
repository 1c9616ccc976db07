package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ayershov777/todos/internal/infrastructure/logger"
	"github.com/ayershov777/todos/internal/ports"
)

// GoalHandler handles goal resource requests. Every operation is scoped to
// the authenticated user; an unowned identifier is indistinguishable from a
// missing one.
type GoalHandler struct {
	goalService ports.GoalService
	logger      *logger.Logger
}

// NewGoalHandler creates a new goal handler
func NewGoalHandler(goalService ports.GoalService, logger *logger.Logger) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
		logger:      logger,
	}
}

// ListGoals returns all goals owned by the acting user
func (h *GoalHandler) ListGoals(c echo.Context) error {
	userID := userIDFromContext(c)

	goals, err := h.goalService.ListGoals(c.Request().Context(), userID)
	if err != nil {
		h.logger.Error("List goals failed", "error", err, "user_id", userID)
		return mapDomainError(err)
	}

	return c.JSON(http.StatusOK, goals)
}

// CreateGoal persists a new goal for the acting user
func (h *GoalHandler) CreateGoal(c echo.Context) error {
	userID := userIDFromContext(c)

	var req ports.CreateGoalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format.")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	goal, err := h.goalService.CreateGoal(c.Request().Context(), userID, req)
	if err != nil {
		h.logger.Error("Create goal failed", "error", err, "user_id", userID)
		return mapDomainError(err)
	}

	return c.JSON(http.StatusCreated, goal)
}

// GetGoal returns a single goal by id
func (h *GoalHandler) GetGoal(c echo.Context) error {
	userID := userIDFromContext(c)

	goal, err := h.goalService.GetGoal(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return mapDomainError(err)
	}

	return c.JSON(http.StatusOK, goal)
}

// UpdateGoal merges the supplied fields onto the stored goal
func (h *GoalHandler) UpdateGoal(c echo.Context) error {
	userID := userIDFromContext(c)

	var req ports.UpdateGoalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format.")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	goal, err := h.goalService.UpdateGoal(c.Request().Context(), userID, c.Param("id"), req)
	if err != nil {
		h.logger.Error("Update goal failed", "error", err, "user_id", userID)
		return mapDomainError(err)
	}

	return c.JSON(http.StatusOK, goal)
}

// DeleteGoal removes a goal
func (h *GoalHandler) DeleteGoal(c echo.Context) error {
	userID := userIDFromContext(c)

	if err := h.goalService.DeleteGoal(c.Request().Context(), userID, c.Param("id")); err != nil {
		h.logger.Error("Delete goal failed", "error", err, "user_id", userID)
		return mapDomainError(err)
	}

	return c.JSON(http.StatusOK, ports.MessageResponse{Message: "Goal deleted"})
}

package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ayershov777/todos/internal/domain/entities"
	"github.com/ayershov777/todos/internal/infrastructure/logger"
	"github.com/ayershov777/todos/internal/ports"
)

// ContextUserKey is the echo context key the auth middleware stores the
// authenticated user identifier under.
const ContextUserKey = "user"

// userIDFromContext extracts the authenticated user ID set by the middleware.
func userIDFromContext(c echo.Context) string {
	userID, _ := c.Get(ContextUserKey).(string)
	return userID
}

// mapDomainError translates domain sentinel errors into the HTTP taxonomy.
// Anything unrecognized bubbles up to the central error handler as a 500
// with no internal detail in the response body.
func mapDomainError(err error) error {
	switch {
	case errors.Is(err, entities.ErrEmailTaken):
		return echo.NewHTTPError(http.StatusConflict, "Email already in use.")
	case errors.Is(err, entities.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials.")
	case errors.Is(err, entities.ErrInvalidToken):
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token.")
	case errors.Is(err, entities.ErrGoalNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Goal not found.")
	case errors.Is(err, entities.ErrTaskNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Task not found.")
	case errors.Is(err, entities.ErrMilestoneNotFound):
		return echo.NewHTTPError(http.StatusBadRequest, "Milestone not found for user.")
	case errors.Is(err, entities.ErrInvalidGoalRef):
		return echo.NewHTTPError(http.StatusBadRequest, "Goal not found for user.")
	default:
		return err
	}
}

// AuthHandler handles registration and login requests
type AuthHandler struct {
	authService ports.AuthService
	logger      *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService ports.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Register handles user registration
func (h *AuthHandler) Register(c echo.Context) error {
	var req ports.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "All fields are required.")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "All fields are required.")
	}

	if err := h.authService.Register(c.Request().Context(), req); err != nil {
		h.logger.Warn("Registration failed", "error", err, "email", req.Email)
		return mapDomainError(err)
	}

	return c.JSON(http.StatusCreated, ports.MessageResponse{Message: "User registered successfully."})
}

// Login handles user login
func (h *AuthHandler) Login(c echo.Context) error {
	var req ports.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "All fields are required.")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "All fields are required.")
	}

	token, err := h.authService.Login(c.Request().Context(), req)
	if err != nil {
		h.logger.Warn("Login failed", "error", err, "email", req.Email)
		return mapDomainError(err)
	}

	return c.JSON(http.StatusOK, ports.TokenResponse{Token: token})
}

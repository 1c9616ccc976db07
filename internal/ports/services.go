package ports

import (
	"context"

	"github.com/ayershov777/todos/internal/domain/entities"
)

// AuthService interface for authentication operations.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) error
	// Login verifies credentials and returns a signed session token. Unknown
	// email and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, req LoginRequest) (string, error)
	// ValidateToken checks signature and expiry and returns the claims.
	ValidateToken(tokenString string) (*Claims, error)
}

// GoalService interface for goal management operations.
type GoalService interface {
	ListGoals(ctx context.Context, userID string) ([]*entities.Goal, error)
	CreateGoal(ctx context.Context, userID string, req CreateGoalRequest) (*entities.Goal, error)
	GetGoal(ctx context.Context, userID, id string) (*entities.Goal, error)
	UpdateGoal(ctx context.Context, userID, id string, req UpdateGoalRequest) (*entities.Goal, error)
	DeleteGoal(ctx context.Context, userID, id string) error
}

// TaskService interface for task management operations.
type TaskService interface {
	ListTasks(ctx context.Context, userID string) ([]*entities.Task, error)
	CreateTask(ctx context.Context, userID string, req CreateTaskRequest) (*entities.Task, error)
	GetTask(ctx context.Context, userID, id string) (*entities.Task, error)
	UpdateTask(ctx context.Context, userID, id string, req UpdateTaskRequest) (*entities.Task, error)
	DeleteTask(ctx context.Context, userID, id string) error
}

// Request/Response Types

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=5"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

// Claims carries the verified identity embedded in a session token.
type Claims struct {
	UserID string `json:"user_id"`
}

// MilestoneInput is a submitted milestone. The ID may be a client-generated
// temporary identifier; anything that is not a store-assigned identifier is
// replaced before the write.
type MilestoneInput struct {
	ID          string        `json:"id"`
	Title       string        `json:"title" validate:"required"`
	Description string        `json:"description"`
	DueDate     entities.Date `json:"dueDate"`
	Completed   bool          `json:"completed"`
}

type CreateGoalRequest struct {
	Title       string           `json:"title" validate:"required"`
	Description string           `json:"description"`
	TargetDate  entities.Date    `json:"targetDate"`
	Completed   bool             `json:"completed"`
	Milestones  []MilestoneInput `json:"milestones" validate:"dive"`
}

// UpdateGoalRequest carries partial updates. Absent fields keep the stored
// values (merge-not-replace).
type UpdateGoalRequest struct {
	Title       *string           `json:"title" validate:"omitempty,min=1"`
	Description *string           `json:"description"`
	TargetDate  *entities.Date    `json:"targetDate"`
	Completed   *bool             `json:"completed"`
	Milestones  *[]MilestoneInput `json:"milestones" validate:"omitempty,dive"`
}

type CreateTaskRequest struct {
	Title       string        `json:"title" validate:"required"`
	Description string        `json:"description"`
	DueDate     entities.Date `json:"dueDate"`
	Completed   bool          `json:"completed"`
	GoalID      *string       `json:"goalId"`
	MilestoneID *string       `json:"milestoneId"`
}

// UpdateTaskRequest carries partial updates with the same merge semantics as
// UpdateGoalRequest, except the goal/milestone pair: supplying either one
// replaces both stored references with the body's pair after resolution.
type UpdateTaskRequest struct {
	Title       *string        `json:"title" validate:"omitempty,min=1"`
	Description *string        `json:"description"`
	DueDate     *entities.Date `json:"dueDate"`
	Completed   *bool          `json:"completed"`
	GoalID      *string        `json:"goalId"`
	MilestoneID *string        `json:"milestoneId"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

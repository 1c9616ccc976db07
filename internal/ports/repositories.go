package ports

import (
	"context"

	"github.com/ayershov777/todos/internal/domain/entities"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// Create persists a new user. Returns entities.ErrEmailTaken when the
	// email is already registered (unique index on email).
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id string) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
}

// GoalRepository defines the interface for goal data operations. Every
// read and mutation is scoped to the owning user; a missing row and an
// ownership mismatch are indistinguishable (entities.ErrGoalNotFound).
type GoalRepository interface {
	Create(ctx context.Context, goal *entities.Goal) error
	GetByID(ctx context.Context, userID, id string) (*entities.Goal, error)
	// GetByMilestone returns the user's goal whose embedded milestone list
	// contains the given milestone identifier.
	GetByMilestone(ctx context.Context, userID, milestoneID string) (*entities.Goal, error)
	List(ctx context.Context, userID string) ([]*entities.Goal, error)
	// Update writes the mutable fields conditional on id+owner match.
	Update(ctx context.Context, goal *entities.Goal) error
	// Delete removes the goal and clears goal/milestone references on the
	// user's tasks in the same transaction.
	Delete(ctx context.Context, userID, id string) error
}

// TaskRepository defines the interface for task data operations, scoped to
// the owning user like GoalRepository.
type TaskRepository interface {
	Create(ctx context.Context, task *entities.Task) error
	GetByID(ctx context.Context, userID, id string) (*entities.Task, error)
	List(ctx context.Context, userID string) ([]*entities.Task, error)
	Update(ctx context.Context, task *entities.Task) error
	Delete(ctx context.Context, userID, id string) error
}

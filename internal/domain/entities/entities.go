package entities

import (
	"errors"
	"time"
)

// Common errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrGoalNotFound       = errors.New("goal not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrMilestoneNotFound  = errors.New("milestone not found for user")
	ErrInvalidGoalRef     = errors.New("goal not found for user")
)

// User represents a registered account. The password hash never leaves the server.
type User struct {
	ID           string    `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// Milestone is a sub-objective embedded within a Goal. Milestone identifiers
// are assigned by the store on first persistence and are only meaningful in
// the context of their owning goal.
type Milestone struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     Date   `json:"dueDate"`
	Completed   bool   `json:"completed"`
}

// Goal is a user-owned long-term objective with an ordered list of embedded
// milestones.
type Goal struct {
	ID          string     `json:"id" db:"id"`
	UserID      string     `json:"userId" db:"user_id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	TargetDate  Date       `json:"targetDate" db:"target_date"`
	Completed   bool       `json:"completed" db:"completed"`
	Milestones  Milestones `json:"milestones" db:"milestones"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}

// Task is a user-owned actionable item, optionally linked to a goal and one
// of that goal's milestones.
type Task struct {
	ID          string    `json:"id" db:"id"`
	UserID      string    `json:"userId" db:"user_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	DueDate     Date      `json:"dueDate" db:"due_date"`
	Completed   bool      `json:"completed" db:"completed"`
	GoalID      *string   `json:"goalId,omitempty" db:"goal_id"`
	MilestoneID *string   `json:"milestoneId,omitempty" db:"milestone_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// Milestone returns the embedded milestone with the given identifier.
func (g *Goal) Milestone(id string) (*Milestone, bool) {
	for i := range g.Milestones {
		if g.Milestones[i].ID == id {
			return &g.Milestones[i], true
		}
	}
	return nil, false
}

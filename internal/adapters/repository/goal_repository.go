package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ayershov777/todos/internal/domain/entities"
	"github.com/ayershov777/todos/internal/ports"
)

// GoalRepositoryImpl implements the GoalRepository interface. Goals carry
// their milestone collection as a single JSONB document, so a goal and its
// milestones always read and write as one aggregate.
type GoalRepositoryImpl struct {
	db *sqlx.DB
}

// NewGoalRepository creates a new goal repository
func NewGoalRepository(db *sqlx.DB) ports.GoalRepository {
	return &GoalRepositoryImpl{db: db}
}

func (r *GoalRepositoryImpl) Create(ctx context.Context, goal *entities.Goal) error {
	query := `
		INSERT INTO goals (id, user_id, title, description, target_date, completed, milestones)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	if goal.ID == "" {
		goal.ID = entities.NewID()
	}

	err := r.db.QueryRowContext(ctx, query,
		goal.ID, goal.UserID, goal.Title, goal.Description,
		goal.TargetDate, goal.Completed, goal.Milestones,
	).Scan(&goal.CreatedAt, &goal.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create goal: %w", err)
	}

	return nil
}

func (r *GoalRepositoryImpl) GetByID(ctx context.Context, userID, id string) (*entities.Goal, error) {
	query := `
		SELECT id, user_id, title, description, target_date, completed, milestones,
			created_at, updated_at
		FROM goals
		WHERE id = $1 AND user_id = $2`

	var goal entities.Goal
	err := r.db.GetContext(ctx, &goal, query, id, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrGoalNotFound
		}
		return nil, fmt.Errorf("get goal by id: %w", err)
	}

	return &goal, nil
}

func (r *GoalRepositoryImpl) GetByMilestone(ctx context.Context, userID, milestoneID string) (*entities.Goal, error) {
	// JSONB containment over the GIN index on milestones.
	query := `
		SELECT id, user_id, title, description, target_date, completed, milestones,
			created_at, updated_at
		FROM goals
		WHERE user_id = $1
			AND milestones @> jsonb_build_array(jsonb_build_object('id', $2::text))`

	var goal entities.Goal
	err := r.db.GetContext(ctx, &goal, query, userID, milestoneID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrMilestoneNotFound
		}
		return nil, fmt.Errorf("get goal by milestone: %w", err)
	}

	return &goal, nil
}

func (r *GoalRepositoryImpl) List(ctx context.Context, userID string) ([]*entities.Goal, error) {
	query := `
		SELECT id, user_id, title, description, target_date, completed, milestones,
			created_at, updated_at
		FROM goals
		WHERE user_id = $1
		ORDER BY created_at DESC`

	goals := []*entities.Goal{}
	err := r.db.SelectContext(ctx, &goals, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	return goals, nil
}

func (r *GoalRepositoryImpl) Update(ctx context.Context, goal *entities.Goal) error {
	// Conditional on id+owner so a concurrent delete cannot resurrect the row.
	query := `
		UPDATE goals
		SET title = $3, description = $4, target_date = $5, completed = $6,
			milestones = $7, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND user_id = $2
		RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query,
		goal.ID, goal.UserID, goal.Title, goal.Description,
		goal.TargetDate, goal.Completed, goal.Milestones,
	).Scan(&goal.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.ErrGoalNotFound
		}
		return fmt.Errorf("update goal: %w", err)
	}

	return nil
}

func (r *GoalRepositoryImpl) Delete(ctx context.Context, userID, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete goal: %w", err)
	}
	defer tx.Rollback()

	// Tasks referencing the goal keep existing but lose the references.
	_, err = tx.ExecContext(ctx,
		`UPDATE tasks SET goal_id = NULL, milestone_id = NULL, updated_at = CURRENT_TIMESTAMP
		 WHERE user_id = $1 AND goal_id = $2`,
		userID, id,
	)
	if err != nil {
		return fmt.Errorf("clear task references: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		`DELETE FROM goals WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return entities.ErrGoalNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete goal: %w", err)
	}

	return nil
}

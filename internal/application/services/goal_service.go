package services

import (
	"context"
	"fmt"

	"github.com/ayershov777/todos/internal/domain/entities"
	"github.com/ayershov777/todos/internal/infrastructure/logger"
	"github.com/ayershov777/todos/internal/ports"
)

// GoalService handles goal management operations
type GoalService struct {
	goalRepo ports.GoalRepository
	logger   *logger.Logger
}

// NewGoalService creates a new goal service
func NewGoalService(goalRepo ports.GoalRepository, logger *logger.Logger) *GoalService {
	return &GoalService{
		goalRepo: goalRepo,
		logger:   logger,
	}
}

// ListGoals returns all goals owned by the user.
func (s *GoalService) ListGoals(ctx context.Context, userID string) ([]*entities.Goal, error) {
	goals, err := s.goalRepo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return goals, nil
}

// CreateGoal persists a new goal owned by the user. Submitted milestones get
// store-assigned identifiers.
func (s *GoalService) CreateGoal(ctx context.Context, userID string, req ports.CreateGoalRequest) (*entities.Goal, error) {
	goal := &entities.Goal{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		TargetDate:  req.TargetDate,
		Completed:   req.Completed,
		Milestones:  normalizeMilestones(req.Milestones),
	}

	if err := s.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	s.logger.Info("Goal created", "goal_id", goal.ID, "user_id", userID)
	return goal, nil
}

// GetGoal returns the goal if it exists and the user owns it. Nonexistence
// and ownership mismatch are the same error.
func (s *GoalService) GetGoal(ctx context.Context, userID, id string) (*entities.Goal, error) {
	return s.goalRepo.GetByID(ctx, userID, id)
}

// UpdateGoal merges the supplied fields onto the stored goal. Fields absent
// from the request keep their stored values.
func (s *GoalService) UpdateGoal(ctx context.Context, userID, id string, req ports.UpdateGoalRequest) (*entities.Goal, error) {
	goal, err := s.goalRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		goal.Title = *req.Title
	}
	if req.Description != nil {
		goal.Description = *req.Description
	}
	if req.TargetDate != nil {
		goal.TargetDate = *req.TargetDate
	}
	if req.Completed != nil {
		goal.Completed = *req.Completed
	}
	if req.Milestones != nil {
		goal.Milestones = normalizeMilestones(*req.Milestones)
	}

	if err := s.goalRepo.Update(ctx, goal); err != nil {
		return nil, err
	}

	s.logger.Info("Goal updated", "goal_id", goal.ID, "user_id", userID)
	return goal, nil
}

// DeleteGoal removes the goal and clears references from the user's tasks.
func (s *GoalService) DeleteGoal(ctx context.Context, userID, id string) error {
	if err := s.goalRepo.Delete(ctx, userID, id); err != nil {
		return err
	}

	s.logger.Info("Goal deleted", "goal_id", id, "user_id", userID)
	return nil
}

// normalizeMilestones converts submitted milestones into the embedded
// collection, assigning fresh identifiers wherever the client sent a
// temporary (or no) identifier. Client temp ids never reach the store.
func normalizeMilestones(inputs []ports.MilestoneInput) entities.Milestones {
	milestones := make(entities.Milestones, 0, len(inputs))
	for _, in := range inputs {
		id := in.ID
		if !entities.IsValidID(id) {
			id = entities.NewID()
		}
		milestones = append(milestones, entities.Milestone{
			ID:          id,
			Title:       in.Title,
			Description: in.Description,
			DueDate:     in.DueDate,
			Completed:   in.Completed,
		})
	}
	return milestones
}

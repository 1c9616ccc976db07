package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ayershov777/todos/internal/domain/entities"
	"github.com/ayershov777/todos/internal/infrastructure/logger"
	"github.com/ayershov777/todos/internal/ports"
)

// TaskService handles task management operations. It depends on the goal
// store only to resolve milestone references to their owning goal and to
// validate goal ownership.
type TaskService struct {
	taskRepo ports.TaskRepository
	goalRepo ports.GoalRepository
	logger   *logger.Logger
}

// NewTaskService creates a new task service
func NewTaskService(taskRepo ports.TaskRepository, goalRepo ports.GoalRepository, logger *logger.Logger) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		goalRepo: goalRepo,
		logger:   logger,
	}
}

// ListTasks returns all tasks owned by the user.
func (s *TaskService) ListTasks(ctx context.Context, userID string) ([]*entities.Task, error) {
	tasks, err := s.taskRepo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// CreateTask persists a new task owned by the user. A supplied milestoneId is
// resolved to its owning goal, overriding any caller-supplied goalId; a bare
// goalId is validated for existence and ownership.
func (s *TaskService) CreateTask(ctx context.Context, userID string, req ports.CreateTaskRequest) (*entities.Task, error) {
	goalID, milestoneID, err := s.resolveGoalRef(ctx, userID, req.GoalID, req.MilestoneID)
	if err != nil {
		return nil, err
	}

	task := &entities.Task{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Completed:   req.Completed,
		GoalID:      goalID,
		MilestoneID: milestoneID,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Info("Task created", "task_id", task.ID, "user_id", userID)
	return task, nil
}

// GetTask returns the task if it exists and the user owns it.
func (s *TaskService) GetTask(ctx context.Context, userID, id string) (*entities.Task, error) {
	return s.taskRepo.GetByID(ctx, userID, id)
}

// UpdateTask merges the supplied fields onto the stored task. Goal and
// milestone references are not merged: when the body carries either one, the
// body's pair replaces both stored references after resolution, so a bare
// goalId clears a previously linked milestone.
func (s *TaskService) UpdateTask(ctx context.Context, userID, id string, req ports.UpdateTaskRequest) (*entities.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.DueDate != nil {
		task.DueDate = *req.DueDate
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}

	if req.GoalID != nil || req.MilestoneID != nil {
		task.GoalID, task.MilestoneID, err = s.resolveGoalRef(ctx, userID, req.GoalID, req.MilestoneID)
		if err != nil {
			return nil, err
		}
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}

	s.logger.Info("Task updated", "task_id", task.ID, "user_id", userID)
	return task, nil
}

// DeleteTask removes the task if the user owns it.
func (s *TaskService) DeleteTask(ctx context.Context, userID, id string) error {
	if err := s.taskRepo.Delete(ctx, userID, id); err != nil {
		return err
	}

	s.logger.Info("Task deleted", "task_id", id, "user_id", userID)
	return nil
}

// resolveGoalRef normalizes the optional goal/milestone references. When a
// milestone is supplied, the goal reference comes from the goal containing
// that milestone among the user's goals, overriding the caller's goalId.
// A bare goalId must name a goal the user owns.
func (s *TaskService) resolveGoalRef(ctx context.Context, userID string, goalID, milestoneID *string) (*string, *string, error) {
	if milestoneID != nil && *milestoneID == "" {
		milestoneID = nil
	}
	if goalID != nil && *goalID == "" {
		goalID = nil
	}

	if milestoneID != nil {
		goal, err := s.goalRepo.GetByMilestone(ctx, userID, *milestoneID)
		if err != nil {
			if errors.Is(err, entities.ErrMilestoneNotFound) {
				return nil, nil, entities.ErrMilestoneNotFound
			}
			return nil, nil, fmt.Errorf("failed to resolve milestone: %w", err)
		}
		resolved := goal.ID
		return &resolved, milestoneID, nil
	}

	if goalID != nil {
		if _, err := s.goalRepo.GetByID(ctx, userID, *goalID); err != nil {
			if errors.Is(err, entities.ErrGoalNotFound) {
				return nil, nil, entities.ErrInvalidGoalRef
			}
			return nil, nil, fmt.Errorf("failed to validate goal reference: %w", err)
		}
	}

	return goalID, nil, nil
}

package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ayershov777/todos/internal/domain/entities"
	"github.com/ayershov777/todos/internal/infrastructure/logger"
	"github.com/ayershov777/todos/internal/ports"
)

func TestGoalHandler_ListGoals(t *testing.T) {
	e := newTestEcho()
	userID := entities.NewID()

	goalService := new(MockGoalService)
	handler := NewGoalHandler(goalService, logger.NewNop())

	goals := []*entities.Goal{
		{ID: entities.NewID(), UserID: userID, Title: "Learn piano"},
		{ID: entities.NewID(), UserID: userID, Title: "Run a marathon"},
	}
	goalService.On("ListGoals", mock.Anything, userID).Return(goals, nil)

	c, rec := newTestContext(e, http.MethodGet, "/api/v1/goals", "", userID)
	require.NoError(t, handler.ListGoals(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []*entities.Goal
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "Learn piano", resp[0].Title)
}

func TestGoalHandler_CreateGoal(t *testing.T) {
	e := newTestEcho()
	userID := entities.NewID()

	t.Run("success with milestones", func(t *testing.T) {
		goalService := new(MockGoalService)
		handler := NewGoalHandler(goalService, logger.NewNop())

		created := &entities.Goal{
			ID:     entities.NewID(),
			UserID: userID,
			Title:  "Learn piano",
			Milestones: entities.Milestones{
				{ID: entities.NewID(), Title: "Scales"},
			},
		}
		goalService.On("CreateGoal", mock.Anything, userID, mock.MatchedBy(func(req ports.CreateGoalRequest) bool {
			return req.Title == "Learn piano" && len(req.Milestones) == 1
		})).Return(created, nil)

		body := `{"title":"Learn piano","milestones":[{"id":"temp-123","title":"Scales"}]}`
		c, rec := newTestContext(e, http.MethodPost, "/api/v1/goals", body, userID)

		require.NoError(t, handler.CreateGoal(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp entities.Goal
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, created.ID, resp.ID)
		require.Len(t, resp.Milestones, 1)
		assert.True(t, entities.IsValidID(resp.Milestones[0].ID))
	})

	t.Run("missing title", func(t *testing.T) {
		goalService := new(MockGoalService)
		handler := NewGoalHandler(goalService, logger.NewNop())

		c, rec := newTestContext(e, http.MethodPost, "/api/v1/goals", `{"description":"no title"}`, userID)

		err := handler.CreateGoal(c)
		assert.Equal(t, http.StatusBadRequest, httpStatus(t, err, rec))
		goalService.AssertNotCalled(t, "CreateGoal")
	})
}

func TestGoalHandler_GetGoal(t *testing.T) {
	e := newTestEcho()
	userID := entities.NewID()
	goalID := entities.NewID()

	t.Run("unowned goal reads as not found", func(t *testing.T) {
		goalService := new(MockGoalService)
		handler := NewGoalHandler(goalService, logger.NewNop())

		goalService.On("GetGoal", mock.Anything, userID, goalID).
			Return(nil, entities.ErrGoalNotFound)

		c, rec := newTestContext(e, http.MethodGet, "/api/v1/goals/"+goalID, "", userID)
		c.SetParamNames("id")
		c.SetParamValues(goalID)

		err := handler.GetGoal(c)
		assert.Equal(t, http.StatusNotFound, httpStatus(t, err, rec))
	})
}

func TestGoalHandler_UpdateGoal(t *testing.T) {
	e := newTestEcho()
	userID := entities.NewID()
	goalID := entities.NewID()

	goalService := new(MockGoalService)
	handler := NewGoalHandler(goalService, logger.NewNop())

	updated := &entities.Goal{ID: goalID, UserID: userID, Title: "Master piano", Completed: true}
	goalService.On("UpdateGoal", mock.Anything, userID, goalID, mock.MatchedBy(func(req ports.UpdateGoalRequest) bool {
		// Only the supplied fields should be present.
		return req.Completed != nil && *req.Completed && req.Title == nil && req.Milestones == nil
	})).Return(updated, nil)

	c, rec := newTestContext(e, http.MethodPut, "/api/v1/goals/"+goalID, `{"completed":true}`, userID)
	c.SetParamNames("id")
	c.SetParamValues(goalID)

	require.NoError(t, handler.UpdateGoal(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	goalService.AssertExpectations(t)
}

func TestGoalHandler_DeleteGoal(t *testing.T) {
	e := newTestEcho()
	userID := entities.NewID()
	goalID := entities.NewID()

	t.Run("success", func(t *testing.T) {
		goalService := new(MockGoalService)
		handler := NewGoalHandler(goalService, logger.NewNop())

		goalService.On("DeleteGoal", mock.Anything, userID, goalID).Return(nil)

		c, rec := newTestContext(e, http.MethodDelete, "/api/v1/goals/"+goalID, "", userID)
		c.SetParamNames("id")
		c.SetParamValues(goalID)

		require.NoError(t, handler.DeleteGoal(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp ports.MessageResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Goal deleted", resp.Message)
	})

	t.Run("missing goal", func(t *testing.T) {
		goalService := new(MockGoalService)
		handler := NewGoalHandler(goalService, logger.NewNop())

		goalService.On("DeleteGoal", mock.Anything, userID, goalID).
			Return(entities.ErrGoalNotFound)

		c, rec := newTestContext(e, http.MethodDelete, "/api/v1/goals/"+goalID, "", userID)
		c.SetParamNames("id")
		c.SetParamValues(goalID)

		err := handler.DeleteGoal(c)
		assert.Equal(t, http.StatusNotFound, httpStatus(t, err, rec))
	})
}

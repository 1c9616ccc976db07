package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayershov777/todos/internal/domain/entities"
	"github.com/ayershov777/todos/internal/ports"
)

func TestClient_Login(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/auth/login", r.URL.Path)

		var req ports.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		if req.Password != "s3cret" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ports.MessageResponse{Message: "Invalid credentials."})
			return
		}
		json.NewEncoder(w).Encode(ports.TokenResponse{Token: "signed-token"})
	}))
	defer srv.Close()

	c := New(srv.URL)

	t.Run("success attaches token", func(t *testing.T) {
		token, err := c.Login(context.Background(), "alice@example.com", "s3cret")
		require.NoError(t, err)
		assert.Equal(t, "signed-token", token)
		assert.Equal(t, "signed-token", c.token)
	})

	t.Run("failure surfaces server message", func(t *testing.T) {
		_, err := c.Login(context.Background(), "alice@example.com", "wrong")

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
		assert.Equal(t, "Invalid credentials.", apiErr.Error())
	})
}

func TestClient_Goals(t *testing.T) {
	goalID := entities.NewID()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer signed-token", r.Header.Get("Authorization"))

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/v1/goals":
			json.NewEncoder(w).Encode([]*entities.Goal{
				{ID: goalID, Title: "Learn piano"},
			})
		case r.Method == http.MethodDelete && r.URL.Path == "/api/v1/goals/"+goalID:
			json.NewEncoder(w).Encode(ports.MessageResponse{Message: "Goal deleted"})
		default:
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ports.MessageResponse{Message: "Goal not found."})
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.SetToken("signed-token")

	goals, err := c.Goals(context.Background())
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, "Learn piano", goals[0].Title)

	require.NoError(t, c.DeleteGoal(context.Background(), goalID))

	err = c.DeleteGoal(context.Background(), entities.NewID())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestClient_CreateTask(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/tasks", r.URL.Path)

		var req ports.CreateTaskRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		task := entities.Task{
			ID:          entities.NewID(),
			Title:       req.Title,
			GoalID:      req.GoalID,
			MilestoneID: req.MilestoneID,
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(task)
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.SetToken("signed-token")

	goalID := entities.NewID()
	task, err := c.CreateTask(context.Background(), ports.CreateTaskRequest{
		Title:  "Practice scales",
		GoalID: &goalID,
	})

	require.NoError(t, err)
	assert.True(t, entities.IsValidID(task.ID))
	require.NotNil(t, task.GoalID)
	assert.Equal(t, goalID, *task.GoalID)
}

func TestSessionStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")
	store, err := NewSessionStore(path)
	require.NoError(t, err)

	_, err = store.Load()
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	require.NoError(t, store.Save("signed-token"))

	token, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)

	require.NoError(t, store.Clear())
	_, err = store.Load()
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	// Clearing twice is fine.
	require.NoError(t, store.Clear())
}

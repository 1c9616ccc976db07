// Package client is a typed HTTP client for the todos API. The terminal
// views (login, dashboard, goals, tasks) are built entirely on top of it;
// everything it knows about the server comes over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ayershov777/todos/internal/domain/entities"
	"github.com/ayershov777/todos/internal/ports"
)

// APIError is a non-2xx response decoded from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned status %d", e.StatusCode)
}

// Client talks to the todos API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a client for the given base URL (e.g. http://localhost:5000).
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// SetToken attaches a session token to subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, username, email, password string) error {
	req := ports.RegisterRequest{Username: username, Email: email, Password: password}
	return c.do(ctx, http.MethodPost, "/api/v1/auth/register", req, nil)
}

// Login exchanges credentials for a session token and attaches it to the
// client.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	req := ports.LoginRequest{Email: email, Password: password}
	var resp ports.TokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", req, &resp); err != nil {
		return "", err
	}
	c.token = resp.Token
	return resp.Token, nil
}

// Goals returns all goals owned by the authenticated user.
func (c *Client) Goals(ctx context.Context) ([]*entities.Goal, error) {
	var goals []*entities.Goal
	if err := c.do(ctx, http.MethodGet, "/api/v1/goals", nil, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

// CreateGoal creates a goal and returns it with store-assigned identifiers.
func (c *Client) CreateGoal(ctx context.Context, req ports.CreateGoalRequest) (*entities.Goal, error) {
	var goal entities.Goal
	if err := c.do(ctx, http.MethodPost, "/api/v1/goals", req, &goal); err != nil {
		return nil, err
	}
	return &goal, nil
}

// GetGoal fetches a single goal.
func (c *Client) GetGoal(ctx context.Context, id string) (*entities.Goal, error) {
	var goal entities.Goal
	if err := c.do(ctx, http.MethodGet, "/api/v1/goals/"+id, nil, &goal); err != nil {
		return nil, err
	}
	return &goal, nil
}

// UpdateGoal merges the supplied fields onto the stored goal.
func (c *Client) UpdateGoal(ctx context.Context, id string, req ports.UpdateGoalRequest) (*entities.Goal, error) {
	var goal entities.Goal
	if err := c.do(ctx, http.MethodPut, "/api/v1/goals/"+id, req, &goal); err != nil {
		return nil, err
	}
	return &goal, nil
}

// DeleteGoal removes a goal.
func (c *Client) DeleteGoal(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/goals/"+id, nil, nil)
}

// Tasks returns all tasks owned by the authenticated user.
func (c *Client) Tasks(ctx context.Context) ([]*entities.Task, error) {
	var tasks []*entities.Task
	if err := c.do(ctx, http.MethodGet, "/api/v1/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask creates a task.
func (c *Client) CreateTask(ctx context.Context, req ports.CreateTaskRequest) (*entities.Task, error) {
	var task entities.Task
	if err := c.do(ctx, http.MethodPost, "/api/v1/tasks", req, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// GetTask fetches a single task.
func (c *Client) GetTask(ctx context.Context, id string) (*entities.Task, error) {
	var task entities.Task
	if err := c.do(ctx, http.MethodGet, "/api/v1/tasks/"+id, nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask merges the supplied fields onto the stored task.
func (c *Client) UpdateTask(ctx context.Context, id string, req ports.UpdateTaskRequest) (*entities.Task, error) {
	var task entities.Task
	if err := c.do(ctx, http.MethodPut, "/api/v1/tasks/"+id, req, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask removes a task.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/tasks/"+id, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var msg ports.MessageResponse
		if err := json.NewDecoder(resp.Body).Decode(&msg); err == nil {
			apiErr.Message = msg.Message
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dpolyakov/planmate/internal/client/models"
	"github.com/dpolyakov/planmate/internal/common"
)

// TokenSource yields the current session token before every domain call.
// An empty string means no session: the request goes out unauthenticated
// and the server decides.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// HTTPClient implements Client over the JSON REST API.
type HTTPClient struct {
	baseURL string
	httpc   *http.Client
	tokens  TokenSource
}

// NewHTTPClient builds a client for the API rooted at baseURL (including the
// /api prefix). A zero timeout leaves requests without a client-side
// deadline.
func NewHTTPClient(baseURL string, tokens TokenSource, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

// apiError is the error body shape emitted by the server.
type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (e apiError) text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

// do executes a single API call. When authorized is true, the current token
// is read from the token source and attached as a bearer credential if
// present. out may be nil for calls with no response body.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any, authorized bool) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if authorized {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return fmt.Errorf("read session token: %w", err)
		}
		if token != "" {
			req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
		}
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.mapStatus(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// mapStatus converts an error response into a sentinel error. Authorization
// failures are surfaced as-is; no local logout is triggered here.
func (c *HTTPClient) mapStatus(resp *http.Response) error {
	var body apiError
	_ = json.NewDecoder(resp.Body).Decode(&body)
	msg := body.text()
	if msg == "" {
		msg = resp.Status
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s", common.ErrUnauthorized, msg)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", common.ErrNotFound, msg)
	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%w: %s", common.ErrConflict, msg)
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: %s", common.ErrUnavailable, msg)
	default:
		return fmt.Errorf("request failed: %s", msg)
	}
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &resp, false); err != nil {
		return models.AuthResponse{}, err
	}
	return resp, nil
}

func (c *HTTPClient) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &resp, false); err != nil {
		return models.AuthResponse{}, err
	}
	return resp, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	var resp struct {
		Status string `json:"status"`
	}
	if err := c.do(ctx, http.MethodGet, "/health", nil, &resp, false); err != nil {
		return err
	}
	if resp.Status != "ok" {
		return common.ErrUnavailable
	}
	return nil
}

func (c *HTTPClient) ListProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := c.do(ctx, http.MethodGet, "/projects", nil, &projects, true); err != nil {
		return nil, err
	}
	return projects, nil
}

func (c *HTTPClient) GetProject(ctx context.Context, id int64) (models.Project, error) {
	var project models.Project
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/projects/%d", id), nil, &project, true); err != nil {
		return models.Project{}, err
	}
	return project, nil
}

func (c *HTTPClient) CreateProject(ctx context.Context, req models.CreateProjectRequest) (models.Project, error) {
	var project models.Project
	if err := c.do(ctx, http.MethodPost, "/projects", req, &project, true); err != nil {
		return models.Project{}, err
	}
	return project, nil
}

func (c *HTTPClient) DeleteProject(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/projects/%d", id), nil, nil, true)
}

func (c *HTTPClient) CreateTask(ctx context.Context, projectID int64, req models.CreateTaskRequest) (models.Task, error) {
	var task models.Task
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/projects/%d/tasks", projectID), req, &task, true); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

func (c *HTTPClient) UpdateTask(ctx context.Context, taskID int64, req models.UpdateTaskRequest) (models.Task, error) {
	var task models.Task
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/tasks/%d", taskID), req, &task, true); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

func (c *HTTPClient) DeleteTask(ctx context.Context, taskID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/tasks/%d", taskID), nil, nil, true)
}

package api

import (
	"context"

	"github.com/dpolyakov/planmate/internal/client/models"
)

// Client is the full surface of the planmate backend as seen by this
// application.
type Client interface {
	// Credential exchange. These calls are never authorized: the session
	// does not exist yet (or is being replaced).
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// Liveness probe.
	Ping(ctx context.Context) error

	// Projects.
	ListProjects(ctx context.Context) ([]models.Project, error)
	GetProject(ctx context.Context, id int64) (models.Project, error)
	CreateProject(ctx context.Context, req models.CreateProjectRequest) (models.Project, error)
	DeleteProject(ctx context.Context, id int64) error

	// Tasks.
	CreateTask(ctx context.Context, projectID int64, req models.CreateTaskRequest) (models.Task, error)
	UpdateTask(ctx context.Context, taskID int64, req models.UpdateTaskRequest) (models.Task, error)
	DeleteTask(ctx context.Context, taskID int64) error
}

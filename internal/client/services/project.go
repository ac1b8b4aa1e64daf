package services

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dpolyakov/planmate/internal/client/api"
	"github.com/dpolyakov/planmate/internal/client/models"
	"github.com/dpolyakov/planmate/internal/common"
)

// MinTitleLength is the shortest accepted project title. Checked before any
// request goes out.
const MinTitleLength = 3

// ProjectService exposes the domain operations on projects and tasks.
// All reads and writes are direct passthroughs to the API; the only
// client-side logic is pre-submit validation and the toggle helper.
type ProjectService interface {
	List(ctx context.Context) ([]models.Project, error)
	Get(ctx context.Context, id int64) (models.Project, error)
	Create(ctx context.Context, title, description string) (models.Project, error)
	Delete(ctx context.Context, id int64) error

	AddTask(ctx context.Context, projectID int64, title, dueDate string) (models.Task, error)
	Toggle(ctx context.Context, task models.Task) (models.Task, error)
	DeleteTask(ctx context.Context, taskID int64) error
}

type projectService struct {
	client api.Client
}

func NewProjectService(client api.Client) ProjectService {
	return &projectService{client: client}
}

func (p *projectService) List(ctx context.Context) ([]models.Project, error) {
	return p.client.ListProjects(ctx)
}

func (p *projectService) Get(ctx context.Context, id int64) (models.Project, error) {
	return p.client.GetProject(ctx, id)
}

// Create validates the title locally and submits the project. A too-short
// title never issues a network request.
func (p *projectService) Create(ctx context.Context, title, description string) (models.Project, error) {
	title = strings.TrimSpace(title)
	if utf8.RuneCountInString(title) < MinTitleLength {
		return models.Project{}, fmt.Errorf("%w: title must be at least %d characters", common.ErrValidation, MinTitleLength)
	}
	return p.client.CreateProject(ctx, models.CreateProjectRequest{Title: title, Description: description})
}

func (p *projectService) Delete(ctx context.Context, id int64) error {
	return p.client.DeleteProject(ctx, id)
}

// AddTask submits a new task under a project. The title is required; the
// due date is optional and passed through verbatim.
func (p *projectService) AddTask(ctx context.Context, projectID int64, title, dueDate string) (models.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Task{}, fmt.Errorf("%w: task title is required", common.ErrValidation)
	}
	return p.client.CreateTask(ctx, projectID, models.CreateTaskRequest{Title: title, DueDate: dueDate})
}

// Toggle issues a partial update flipping IsCompleted relative to the
// passed task's value. The caller is expected to reload the parent project
// afterwards; no local state is derived here.
func (p *projectService) Toggle(ctx context.Context, task models.Task) (models.Task, error) {
	done := !task.IsCompleted
	return p.client.UpdateTask(ctx, task.ID, models.UpdateTaskRequest{IsCompleted: &done})
}

func (p *projectService) DeleteTask(ctx context.Context, taskID int64) error {
	return p.client.DeleteTask(ctx, taskID)
}

// Package store is the development server's in-memory persistence layer.
// All state lives in process memory and is lost on restart, which is exactly
// what a throwaway dev backend should do.
package store

import (
	"sort"
	"sync"
	"time"

	"github.com/dpolyakov/planmate/internal/common"
	"github.com/dpolyakov/planmate/internal/server/models"
)

// Store holds users, projects and tasks behind a single mutex. IDs are
// monotonically increasing per entity kind. All project and task lookups are
// scoped to an owner; another user's data behaves as if it does not exist.
type Store struct {
	mu sync.Mutex

	users    map[int64]models.User
	projects map[int64]models.Project
	tasks    map[int64]models.Task

	nextUserID    int64
	nextProjectID int64
	nextTaskID    int64
}

func New() *Store {
	return &Store{
		users:    make(map[int64]models.User),
		projects: make(map[int64]models.Project),
		tasks:    make(map[int64]models.Task),
	}
}

// CreateUser inserts a new user. The email is unique; a duplicate returns
// common.ErrConflict.
func (s *Store) CreateUser(username, email, passwordHash string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return models.User{}, common.ErrConflict
		}
	}

	s.nextUserID++
	user := models.User{
		ID:           s.nextUserID,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	s.users[user.ID] = user
	return user, nil
}

func (s *Store) UserByEmail(email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, common.ErrNotFound
}

// Projects returns all projects of the owner, tasks attached, ordered by id.
func (s *Store) Projects(ownerID int64) []models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Project
	for _, p := range s.projects {
		if p.OwnerID == ownerID {
			p.Tasks = s.tasksOfLocked(p.ID)
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Project returns one project of the owner with its tasks attached.
func (s *Store) Project(ownerID, id int64) (models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.projects[id]
	if !ok || p.OwnerID != ownerID {
		return models.Project{}, common.ErrNotFound
	}
	p.Tasks = s.tasksOfLocked(p.ID)
	return p, nil
}

func (s *Store) CreateProject(ownerID int64, title, description string) models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextProjectID++
	p := models.Project{
		ID:          s.nextProjectID,
		Title:       title,
		Description: description,
		OwnerID:     ownerID,
		CreatedAt:   time.Now().UTC(),
		Tasks:       []models.Task{},
	}
	s.projects[p.ID] = p
	return p
}

// DeleteProject removes the project and cascades to its tasks.
func (s *Store) DeleteProject(ownerID, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.projects[id]
	if !ok || p.OwnerID != ownerID {
		return common.ErrNotFound
	}
	delete(s.projects, id)
	for taskID, t := range s.tasks {
		if t.ProjectID == id {
			delete(s.tasks, taskID)
		}
	}
	return nil
}

// CreateTask inserts a task under the owner's project.
func (s *Store) CreateTask(ownerID, projectID int64, title, dueDate string) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.projects[projectID]
	if !ok || p.OwnerID != ownerID {
		return models.Task{}, common.ErrNotFound
	}

	s.nextTaskID++
	t := models.Task{
		ID:        s.nextTaskID,
		Title:     title,
		DueDate:   dueDate,
		CreatedAt: time.Now().UTC(),
		ProjectID: projectID,
	}
	s.tasks[t.ID] = t
	return t, nil
}

// UpdateTask applies a partial update to the owner's task and returns the
// new state.
func (s *Store) UpdateTask(ownerID, id int64, req models.UpdateTaskRequest) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.taskOfOwnerLocked(ownerID, id)
	if err != nil {
		return models.Task{}, err
	}

	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.DueDate != nil {
		t.DueDate = *req.DueDate
	}
	if req.IsCompleted != nil {
		t.IsCompleted = *req.IsCompleted
	}
	s.tasks[t.ID] = t
	return t, nil
}

func (s *Store) DeleteTask(ownerID, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.taskOfOwnerLocked(ownerID, id)
	if err != nil {
		return err
	}
	delete(s.tasks, t.ID)
	return nil
}

func (s *Store) tasksOfLocked(projectID int64) []models.Task {
	tasks := []models.Task{}
	for _, t := range s.tasks {
		if t.ProjectID == projectID {
			tasks = append(tasks, t)
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks
}

func (s *Store) taskOfOwnerLocked(ownerID, id int64) (models.Task, error) {
	t, ok := s.tasks[id]
	if !ok {
		return models.Task{}, common.ErrNotFound
	}
	p, ok := s.projects[t.ProjectID]
	if !ok || p.OwnerID != ownerID {
		return models.Task{}, common.ErrNotFound
	}
	return t, nil
}

package cli

import (
	"bufio"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dpolyakov/planmate/internal/client/models"
	"github.com/dpolyakov/planmate/internal/client/session"
)

// ---- input stubs ----

// stubPrompts replaces the interactive input seams with canned answers.
// Text prompts are served from the queue in order; the password prompt
// always returns "secret".
func stubPrompts(t *testing.T, answers ...string) func() {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		require.Less(t, i, len(answers), "unexpected extra prompt")
		answer := answers[i]
		i++
		return answer, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return []byte("secret"), nil }
	return func() {
		getSimpleText = origST
		getPassword = origGP
	}
}

func stubConfirmation(t *testing.T, answer bool) func() {
	t.Helper()
	orig := getConfirmation
	getConfirmation = func(_ *bufio.Reader, _ string, _ io.Writer) (bool, error) { return answer, nil }
	return func() { getConfirmation = orig }
}

// ---- in-memory session store ----

type memStore struct {
	token string
	user  *models.User
}

func (m *memStore) Save(_ context.Context, token string, user models.User) error {
	m.token, m.user = token, &user
	return nil
}
func (m *memStore) Load(context.Context) (string, *models.User, error) {
	return m.token, m.user, nil
}
func (m *memStore) Clear(context.Context) error {
	m.token, m.user = "", nil
	return nil
}
func (m *memStore) Token(context.Context) (string, error) { return m.token, nil }

// ---- fake auth service (satisfies both session.Gateway and services.AuthService) ----

type fakeAuth struct {
	loginUser  models.User
	loginErr   error
	lastEmail  string
	lastPass   string
	regUser    models.User
	regErr     error
	lastName   string
	logoutErr  error
	pingErr    error
	pingCalled bool
}

func (f *fakeAuth) Login(_ context.Context, email, password string) (models.User, error) {
	f.lastEmail, f.lastPass = email, password
	return f.loginUser, f.loginErr
}

func (f *fakeAuth) Register(_ context.Context, username, email, password string) (models.User, error) {
	f.lastName, f.lastEmail, f.lastPass = username, email, password
	return f.regUser, f.regErr
}

func (f *fakeAuth) Logout(context.Context) error { return f.logoutErr }

func (f *fakeAuth) Ping(context.Context) error {
	f.pingCalled = true
	return f.pingErr
}

// ---- fake project service ----

type fakeProjects struct {
	projects  []models.Project
	listErr   error
	listCalls int

	project  models.Project
	getErr   error
	getCalls int

	createdTitle string
	createdDesc  string
	createErr    error

	deleted   []int64
	deleteErr error

	taskProjectID int64
	taskTitle     string
	taskDue       string
	addTaskErr    error

	toggled   []models.Task
	toggleErr error

	deletedTasks  []int64
	deleteTaskErr error
}

func (f *fakeProjects) List(context.Context) ([]models.Project, error) {
	f.listCalls++
	return f.projects, f.listErr
}

func (f *fakeProjects) Get(context.Context, int64) (models.Project, error) {
	f.getCalls++
	return f.project, f.getErr
}

func (f *fakeProjects) Create(_ context.Context, title, description string) (models.Project, error) {
	f.createdTitle, f.createdDesc = title, description
	return models.Project{ID: 1, Title: title}, f.createErr
}

func (f *fakeProjects) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeProjects) AddTask(_ context.Context, projectID int64, title, dueDate string) (models.Task, error) {
	f.taskProjectID, f.taskTitle, f.taskDue = projectID, title, dueDate
	return models.Task{ID: 1, Title: title, ProjectID: projectID}, f.addTaskErr
}

func (f *fakeProjects) Toggle(_ context.Context, task models.Task) (models.Task, error) {
	f.toggled = append(f.toggled, task)
	task.IsCompleted = !task.IsCompleted
	return task, f.toggleErr
}

func (f *fakeProjects) DeleteTask(_ context.Context, id int64) error {
	if f.deleteTaskErr != nil {
		return f.deleteTaskErr
	}
	f.deletedTasks = append(f.deletedTasks, id)
	return nil
}

// ---- app factory ----

func newTestApp(t *testing.T, auth *fakeAuth, projects *fakeProjects, stored *models.User) *App {
	t.Helper()
	store := &memStore{}
	if stored != nil {
		store.token, store.user = "T1", stored
	}
	manager, err := session.NewManager(context.Background(), store, auth)
	require.NoError(t, err)
	t.Cleanup(manager.Close)

	return &App{
		session:        manager,
		authService:    auth,
		projectService: projects,
		reader:         bufio.NewReader(strings.NewReader("")),
	}
}

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpolyakov/planmate/internal/common"
	"github.com/dpolyakov/planmate/internal/server/models"
)

func TestCreateUserDuplicateEmail(t *testing.T) {
	s := New()

	_, err := s.CreateUser("dasha", "d@example.com", "hash")
	require.NoError(t, err)

	_, err = s.CreateUser("other", "d@example.com", "hash")
	assert.ErrorIs(t, err, common.ErrConflict)
}

func TestUserByEmail(t *testing.T) {
	s := New()
	created, err := s.CreateUser("dasha", "d@example.com", "hash")
	require.NoError(t, err)

	got, err := s.UserByEmail("d@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = s.UserByEmail("missing@example.com")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestProjectsAreOwnerScoped(t *testing.T) {
	s := New()
	alice, _ := s.CreateUser("alice", "a@example.com", "hash")
	bob, _ := s.CreateUser("bob", "b@example.com", "hash")

	p := s.CreateProject(alice.ID, "Groceries", "")
	s.CreateProject(bob.ID, "Renovation", "")

	assert.Len(t, s.Projects(alice.ID), 1)
	assert.Len(t, s.Projects(bob.ID), 1)

	_, err := s.Project(bob.ID, p.ID)
	assert.ErrorIs(t, err, common.ErrNotFound, "foreign projects look like missing ones")
}

func TestDeleteProjectCascadesToTasks(t *testing.T) {
	s := New()
	user, _ := s.CreateUser("dasha", "d@example.com", "hash")
	p := s.CreateProject(user.ID, "Groceries", "")

	task, err := s.CreateTask(user.ID, p.ID, "Buy milk", "")
	require.NoError(t, err)

	require.NoError(t, s.DeleteProject(user.ID, p.ID))

	_, err = s.UpdateTask(user.ID, task.ID, models.UpdateTaskRequest{})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestUpdateTaskPartial(t *testing.T) {
	s := New()
	user, _ := s.CreateUser("dasha", "d@example.com", "hash")
	p := s.CreateProject(user.ID, "Groceries", "")
	task, _ := s.CreateTask(user.ID, p.ID, "Buy milk", "2026-09-05")

	done := true
	updated, err := s.UpdateTask(user.ID, task.ID, models.UpdateTaskRequest{IsCompleted: &done})
	require.NoError(t, err)

	assert.True(t, updated.IsCompleted)
	assert.Equal(t, "Buy milk", updated.Title, "absent fields stay untouched")
	assert.Equal(t, "2026-09-05", updated.DueDate)
}

func TestTaskAccessThroughForeignProject(t *testing.T) {
	s := New()
	alice, _ := s.CreateUser("alice", "a@example.com", "hash")
	bob, _ := s.CreateUser("bob", "b@example.com", "hash")
	p := s.CreateProject(alice.ID, "Groceries", "")
	task, _ := s.CreateTask(alice.ID, p.ID, "Buy milk", "")

	err := s.DeleteTask(bob.ID, task.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = s.CreateTask(bob.ID, p.ID, "Intrude", "")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestProjectTasksOrderedByID(t *testing.T) {
	s := New()
	user, _ := s.CreateUser("dasha", "d@example.com", "hash")
	p := s.CreateProject(user.ID, "Groceries", "")

	s.CreateTask(user.ID, p.ID, "first", "")
	s.CreateTask(user.ID, p.ID, "second", "")
	s.CreateTask(user.ID, p.ID, "third", "")

	got, err := s.Project(user.ID, p.ID)
	require.NoError(t, err)
	require.Len(t, got.Tasks, 3)
	assert.Equal(t, "first", got.Tasks[0].Title)
	assert.Equal(t, "third", got.Tasks[2].Title)
}

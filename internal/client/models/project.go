package models

import "time"

// Task belongs to exactly one project. DueDate is an ISO date string as
// issued by the server; the client never interprets it beyond display.
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	DueDate     string    `json:"dueDate,omitempty"`
	IsCompleted bool      `json:"isCompleted"`
	CreatedAt   time.Time `json:"createdAt"`
	ProjectID   int64     `json:"projectId"`
}

// Project is owned by the server; the client holds a transient copy that is
// refreshed wholesale after every mutation.
type Project struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	Tasks       []Task    `json:"tasks"`
}

type CreateProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type CreateTaskRequest struct {
	Title   string `json:"title"`
	DueDate string `json:"dueDate,omitempty"`
}

// UpdateTaskRequest is a partial update: nil fields are omitted from the
// request body and left unchanged by the server.
type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	DueDate     *string `json:"dueDate,omitempty"`
	IsCompleted *bool   `json:"isCompleted,omitempty"`
}

// Package models defines the development server's persisted entities and the
// JSON payloads of its API. The wire shapes mirror what the client expects.
package models

import "time"

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Project struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	OwnerID     int64     `json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
	Tasks       []Task    `json:"tasks"`
}

type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	DueDate     string    `json:"dueDate,omitempty"`
	IsCompleted bool      `json:"isCompleted"`
	CreatedAt   time.Time `json:"createdAt"`
	ProjectID   int64     `json:"projectId"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type CreateProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type CreateTaskRequest struct {
	Title   string `json:"title"`
	DueDate string `json:"dueDate,omitempty"`
}

// UpdateTaskRequest is a partial update: absent fields leave the stored task
// unchanged.
type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	DueDate     *string `json:"dueDate,omitempty"`
	IsCompleted *bool   `json:"isCompleted,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// Package models defines the data types exchanged with the planmate API
// and persisted by the client.
package models

// User is a read-only projection of the authenticated identity. It is
// co-persisted with the session token and exposed through the session
// manager.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AuthResponse is returned by the login and register endpoints.
type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// LoginRequest carries login credentials. Transient: it exists only for the
// duration of a single auth call and is never persisted.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest carries registration credentials. Transient, like
// LoginRequest.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

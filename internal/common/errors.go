// Package common contains shared constants and sentinel errors used across
// planmate components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository / API errors.
	ErrNotFound = errors.New("not found")

	// Service-level errors.
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnavailable  = errors.New("server unavailable")
	ErrConflict     = errors.New("already exists")

	// Validation errors (pre-submit checks that never reach the network).
	ErrValidation = errors.New("validation error")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
)

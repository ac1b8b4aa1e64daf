// Package services contains application services for the planmate client.
// This file defines the authentication service: the only component allowed
// to mutate the session store.
package services

import (
	"context"
	"fmt"

	"github.com/dpolyakov/planmate/internal/client/api"
	"github.com/dpolyakov/planmate/internal/client/models"
	"github.com/dpolyakov/planmate/internal/client/session"
)

// AuthService defines the credential-exchange operations for the CLI.
//
// Contract:
//   - Login/Register: exchange credentials for a session; on success the
//     (token, profile) pair is persisted and the profile returned. On
//     failure the store is left untouched.
//   - Logout: purely local invalidation. The server is never told the token
//     is no longer wanted; there is no server-side revocation.
//   - Ping: check server liveness.
type AuthService interface {
	Login(ctx context.Context, email, password string) (models.User, error)
	Register(ctx context.Context, username, email, password string) (models.User, error)
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
}

type authService struct {
	client api.Client
	store  session.Store
}

// NewAuthService constructs an AuthService bound to the given API client and
// session store.
func NewAuthService(client api.Client, store session.Store) AuthService {
	return &authService{client: client, store: store}
}

func (a *authService) saveSession(ctx context.Context, resp models.AuthResponse) (models.User, error) {
	user := models.User{Username: resp.Username, Email: resp.Email}
	if err := a.store.Save(ctx, resp.Token, user); err != nil {
		return models.User{}, fmt.Errorf("save session: %w", err)
	}
	return user, nil
}

func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	resp, err := a.client.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return models.User{}, fmt.Errorf("login error: %w", err)
	}
	return a.saveSession(ctx, resp)
}

func (a *authService) Register(ctx context.Context, username, email, password string) (models.User, error) {
	resp, err := a.client.Register(ctx, models.RegisterRequest{Username: username, Email: email, Password: password})
	if err != nil {
		return models.User{}, fmt.Errorf("register error: %w", err)
	}
	return a.saveSession(ctx, resp)
}

func (a *authService) Logout(ctx context.Context) error {
	return a.store.Clear(ctx)
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

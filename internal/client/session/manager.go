package session

import (
	"context"

	"github.com/dpolyakov/planmate/internal/client/models"
)

// Gateway is the credential-exchange surface the Manager delegates to.
// The concrete implementation is the auth service; it is the sole writer of
// the Store.
type Gateway interface {
	Login(ctx context.Context, email, password string) (models.User, error)
	Register(ctx context.Context, username, email, password string) (models.User, error)
	Logout(ctx context.Context) error
}

// Manager tracks the currently authenticated user for the lifetime of the
// application. Construct it once at startup with NewManager and Close it at
// shutdown. It is not safe for concurrent use; the CLI drives it from a
// single goroutine.
type Manager struct {
	gateway Gateway
	user    *models.User
	closed  bool
}

// NewManager builds a Manager initialized from the persisted session. A
// stored profile is trusted as-is; no round-trip validates that the server
// still accepts the token.
func NewManager(ctx context.Context, store Store, gateway Gateway) (*Manager, error) {
	_, user, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &Manager{gateway: gateway, user: user}, nil
}

func (m *Manager) ensureOpen() {
	if m.closed {
		panic("session: manager used after Close")
	}
}

// Login exchanges credentials for a session. On success the current user is
// replaced; on failure it is left unchanged and the error propagates.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	m.ensureOpen()
	user, err := m.gateway.Login(ctx, email, password)
	if err != nil {
		return err
	}
	m.user = &user
	return nil
}

// Register mirrors Login against the register endpoint.
func (m *Manager) Register(ctx context.Context, username, email, password string) error {
	m.ensureOpen()
	user, err := m.gateway.Register(ctx, username, email, password)
	if err != nil {
		return err
	}
	m.user = &user
	return nil
}

// Logout tears the session down. The current user is cleared even if the
// gateway reports an error.
func (m *Manager) Logout(ctx context.Context) error {
	m.ensureOpen()
	err := m.gateway.Logout(ctx)
	m.user = nil
	return err
}

// CurrentUser returns the authenticated profile, or nil.
func (m *Manager) CurrentUser() *models.User {
	m.ensureOpen()
	return m.user
}

// IsAuthenticated is derived state: true iff a current user is present.
func (m *Manager) IsAuthenticated() bool {
	m.ensureOpen()
	return m.user != nil
}

// Close ends the manager's lifecycle. Any later use panics.
func (m *Manager) Close() {
	m.closed = true
	m.user = nil
}

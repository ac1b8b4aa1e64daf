package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dpolyakov/planmate/internal/client/models"
	"github.com/dpolyakov/planmate/internal/dbx"
)

// Storage keys for the session pair.
const (
	keyToken = "token"
	keyUser  = "user"
)

// Store persists the session pair across process restarts.
//
// Contract:
//   - Save writes token and profile atomically.
//   - Load returns the saved pair, or ("", nil) if absent. Malformed stored
//     data degrades to absent instead of failing.
//   - Clear removes both values; it is idempotent.
//   - Token is the hot-path read used before every authorized request.
type Store interface {
	Save(ctx context.Context, token string, user models.User) error
	Load(ctx context.Context) (string, *models.User, error)
	Clear(ctx context.Context) error
	Token(ctx context.Context) (string, error)
}

// SQLiteStore keeps the pair in a two-row key/value table.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) get(ctx context.Context, q dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) set(ctx context.Context, q dbx.DBTX, key string, value []byte) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}

// Save persists the token and profile in a single transaction so the pair is
// never observable half-written.
func (s *SQLiteStore) Save(ctx context.Context, token string, user models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.set(ctx, tx, keyToken, []byte(token)); err != nil {
			return err
		}
		return s.set(ctx, tx, keyUser, data)
	})
}

// Load returns the persisted pair. If either half is missing, or the stored
// profile does not decode, the session is reported absent.
func (s *SQLiteStore) Load(ctx context.Context) (string, *models.User, error) {
	token, err := s.get(ctx, s.db, keyToken)
	if err != nil {
		return "", nil, err
	}
	data, err := s.get(ctx, s.db, keyUser)
	if err != nil {
		return "", nil, err
	}
	if len(token) == 0 || len(data) == 0 {
		return "", nil, nil
	}

	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		// A profile that no longer decodes counts as no session.
		return "", nil, nil
	}
	return string(token), &user, nil
}

// Clear deletes the pair in a single transaction. Clearing an absent session
// is a no-op.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx, `DELETE FROM session WHERE key IN (?, ?)`, keyToken, keyUser)
		if err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}
		return nil
	})
}

// Token reads the token alone, skipping the profile decode.
func (s *SQLiteStore) Token(ctx context.Context) (string, error) {
	token, err := s.get(ctx, s.db, keyToken)
	if err != nil {
		return "", err
	}
	return string(token), nil
}

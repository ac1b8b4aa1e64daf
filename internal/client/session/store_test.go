package session

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dpolyakov/planmate/internal/client/models"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE session (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewSQLiteStore(setupDB(t))

	user := models.User{Username: "alice", Email: "a@b.com"}
	require.NoError(t, s.Save(ctx, "T1", user))

	token, got, err := s.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "T1", token)
	require.NotNil(t, got)
	require.Equal(t, user, *got)
}

func TestStore_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	s := NewSQLiteStore(setupDB(t))

	require.NoError(t, s.Save(ctx, "T1", models.User{Username: "alice", Email: "a@b.com"}))
	require.NoError(t, s.Save(ctx, "T2", models.User{Username: "bob", Email: "b@b.com"}))

	token, user, err := s.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "T2", token)
	require.Equal(t, "bob", user.Username)
}

func TestStore_LoadAbsent(t *testing.T) {
	ctx := context.Background()
	s := NewSQLiteStore(setupDB(t))

	token, user, err := s.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, token)
	require.Nil(t, user)
}

func TestStore_LoadMalformedProfile(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	s := NewSQLiteStore(db)

	_, err := db.Exec(`INSERT INTO session(key,value) VALUES('token','T1'),('user','{not json')`)
	require.NoError(t, err)

	token, user, err := s.Load(ctx)
	require.NoError(t, err, "malformed data must degrade to absent, not fail")
	require.Empty(t, token)
	require.Nil(t, user)
}

func TestStore_ClearIdempotent(t *testing.T) {
	ctx := context.Background()
	s := NewSQLiteStore(setupDB(t))

	// Clearing an empty store must not fail.
	require.NoError(t, s.Clear(ctx))

	require.NoError(t, s.Save(ctx, "T1", models.User{Username: "alice", Email: "a@b.com"}))
	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Clear(ctx))

	token, user, err := s.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, token)
	require.Nil(t, user)
}

func TestStore_Token(t *testing.T) {
	ctx := context.Background()
	s := NewSQLiteStore(setupDB(t))

	token, err := s.Token(ctx)
	require.NoError(t, err)
	require.Empty(t, token)

	require.NoError(t, s.Save(ctx, "T1", models.User{Username: "alice", Email: "a@b.com"}))

	token, err = s.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "T1", token)
}

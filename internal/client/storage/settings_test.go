package storage

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:settings_tests?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS settings (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
DELETE FROM settings;
`)
	require.NoError(t, err)
	return db
}

func TestSettings_SetGetRoundTrip(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyToken, []byte("abc")))

	got, err := repo.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), got)
}

func TestSettings_SetOverwrites(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyCurrentTournamentID, []byte("t1")))
	require.NoError(t, repo.Set(ctx, KeyCurrentTournamentID, []byte("t2")))

	got, err := repo.Get(ctx, KeyCurrentTournamentID)
	require.NoError(t, err)
	require.Equal(t, []byte("t2"), got)
}

func TestSettings_GetMissingReturnsNil(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))

	got, err := repo.Get(context.Background(), "nope")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestSettings_Delete(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyTheme, []byte("dark")))
	require.NoError(t, repo.Delete(ctx, KeyTheme))

	got, err := repo.Get(ctx, KeyTheme)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestSettings_DeleteMissingIsNoop(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	require.NoError(t, repo.Delete(context.Background(), "nope"))
}

func TestSettings_Clear(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyToken, []byte("a")))
	require.NoError(t, repo.Set(ctx, KeyUser, []byte("b")))
	require.NoError(t, repo.Clear(ctx))

	for _, key := range []string{KeyToken, KeyUser} {
		got, err := repo.Get(ctx, key)
		require.NoError(t, err)
		require.Nil(t, got)
	}
}

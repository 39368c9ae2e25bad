package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitDatabase_CreatesSettingsTable(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "champs.db")

	db, err := InitDatabase(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewSQLiteRepository(db)
	require.NoError(t, repo.Set(context.Background(), KeyToken, []byte("x")))
}

func TestInitDatabase_IsIdempotent(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "champs.db")
	ctx := context.Background()

	db, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = InitDatabase(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T, path string) *SQLite {
	t.Helper()
	s, err := OpenSQLite(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLite_EmptyLoadsZero(t *testing.T) {
	s := openTestDB(t, filepath.Join(t.TempDir(), "ids.db"))
	last, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Zero(t, last)
}

func TestSQLite_SaveLoad(t *testing.T) {
	ctx := context.Background()
	s := openTestDB(t, filepath.Join(t.TempDir(), "ids.db"))

	require.NoError(t, s.Save(ctx, 7))
	require.NoError(t, s.Save(ctx, 99))
	last, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(99), last)
}

func TestSQLite_PersistsAcrossOpen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "db", "ids.db")

	first, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	require.NoError(t, first.Save(ctx, 1234))
	require.NoError(t, first.Close())

	second := openTestDB(t, path)
	last, err := second.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1234), last)
}

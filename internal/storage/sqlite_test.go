package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/todo/internal/models"
	"github.com/balkashynov/todo/internal/storage"
)

func TestSQLiteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db", "todo.db")
	ctx := context.Background()

	s, err := storage.NewSQLite(storage.SQLiteConfig{Path: path})
	require.NoError(t, err)

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, s.Save(ctx, sampleTasks()))
	got, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleTasks(), got, "store order must survive")

	// Saving again replaces rows instead of appending
	require.NoError(t, s.Save(ctx, sampleTasks()[1:]))
	require.NoError(t, s.Close())

	s, err = storage.NewSQLite(storage.SQLiteConfig{Path: path})
	require.NoError(t, err)
	defer s.Close()

	got, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleTasks()[1:], got)

	require.NoError(t, s.Save(ctx, nil))
	got, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNewSQLiteRequiresPath(t *testing.T) {
	_, err := storage.NewSQLite(storage.SQLiteConfig{})
	assert.ErrorIs(t, err, models.ErrNotValid)
}

package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/todo/internal/models"
	"github.com/balkashynov/todo/internal/storage"
)

const (
	validPrimary = `[{"id": 0, "description": "from primary", "completed": false, "priority": "High"}]`
	validBackup  = `[{"id": 3, "description": "from backup", "completed": true}]`
	corrupt      = `[{"id": 0, "descr`
)

func sampleTasks() []models.Task {
	return []models.Task{
		{ID: 0, Description: "buy milk", Priority: models.PriorityHigh},
		{ID: 2, Description: "walk dog", Completed: true, Priority: models.PriorityLow},
		{ID: 1, Description: "write report", Priority: models.PriorityMedium},
	}
}

func newJSONFile(t *testing.T) (*storage.JSONFile, string, string) {
	t.Helper()
	dir := t.TempDir()
	primary := filepath.Join(dir, "data.json")
	backup := filepath.Join(dir, "data_backup.json")
	s, err := storage.NewJSONFile(storage.JSONFileConfig{Path: primary, BackupPath: backup})
	require.NoError(t, err)
	return s, primary, backup
}

func TestJSONFileRoundTrip(t *testing.T) {
	s, primary, backup := newJSONFile(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, sampleTasks()))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleTasks(), got)

	// Both copies are written with identical content
	p, err := os.ReadFile(primary)
	require.NoError(t, err)
	b, err := os.ReadFile(backup)
	require.NoError(t, err)
	assert.Equal(t, p, b)
}

func TestJSONFileSaveEmptyWritesArray(t *testing.T) {
	s, primary, _ := newJSONFile(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, nil))

	data, err := os.ReadFile(primary)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestJSONFileSaveOverwrites(t *testing.T) {
	s, _, _ := newJSONFile(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, sampleTasks()))
	require.NoError(t, s.Save(ctx, sampleTasks()[:1]))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleTasks()[:1], got)
}

func TestJSONFileLoadFallback(t *testing.T) {
	tests := map[string]struct {
		primary  *string
		backup   *string
		expTasks []models.Task
	}{
		"Missing primary should start empty without reading the backup": {
			backup:   ptr(validBackup),
			expTasks: []models.Task{},
		},

		"Valid primary should be used": {
			primary:  ptr(validPrimary),
			backup:   ptr(validBackup),
			expTasks: []models.Task{{ID: 0, Description: "from primary", Priority: models.PriorityHigh}},
		},

		"Corrupt primary with valid backup should use the backup": {
			primary:  ptr(corrupt),
			backup:   ptr(validBackup),
			expTasks: []models.Task{{ID: 3, Description: "from backup", Completed: true, Priority: models.DefaultPriority}},
		},

		"Corrupt primary with missing backup should start empty": {
			primary:  ptr(corrupt),
			expTasks: []models.Task{},
		},

		"Corrupt primary and backup should start empty": {
			primary:  ptr(corrupt),
			backup:   ptr(corrupt),
			expTasks: []models.Task{},
		},

		"Schema violations count as corruption": {
			primary:  ptr(`[{"id": "zero", "description": "x", "completed": false}]`),
			backup:   ptr(validBackup),
			expTasks: []models.Task{{ID: 3, Description: "from backup", Completed: true, Priority: models.DefaultPriority}},
		},

		"A null document counts as corruption": {
			primary:  ptr(`null`),
			backup:   ptr(validBackup),
			expTasks: []models.Task{{ID: 3, Description: "from backup", Completed: true, Priority: models.DefaultPriority}},
		},

		"Duplicate ids count as corruption": {
			primary:  ptr(`[{"id": 1, "description": "a", "completed": false}, {"id": 1, "description": "b", "completed": false}]`),
			backup:   ptr(`[{"id": 1, "description": "a", "completed": false}]`),
			expTasks: []models.Task{{ID: 1, Description: "a", Priority: models.DefaultPriority}},
		},

		"An unknown priority counts as corruption": {
			primary:  ptr(`[{"id": 1, "description": "a", "completed": false, "priority": "Urgent"}]`),
			expTasks: []models.Task{},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			s, primary, backup := newJSONFile(t)
			if test.primary != nil {
				require.NoError(t, os.WriteFile(primary, []byte(*test.primary), 0644))
			}
			if test.backup != nil {
				require.NoError(t, os.WriteFile(backup, []byte(*test.backup), 0644))
			}

			got, err := s.Load(context.Background())

			require.NoError(t, err)
			assert.Equal(t, test.expTasks, got)
		})
	}
}

func TestJSONFileWithoutBackup(t *testing.T) {
	dir := t.TempDir()
	primary := filepath.Join(dir, "nested", "data.json")
	s, err := storage.NewJSONFile(storage.JSONFileConfig{Path: primary})
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, sampleTasks()))
	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleTasks(), got)

	require.NoError(t, os.WriteFile(primary, []byte(corrupt), 0644))
	got, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestJSONFileSaveFailure(t *testing.T) {
	dir := t.TempDir()
	// A regular file where a directory is expected makes the write fail
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	s, err := storage.NewJSONFile(storage.JSONFileConfig{Path: filepath.Join(blocker, "data.json")})
	require.NoError(t, err)

	assert.Error(t, s.Save(context.Background(), sampleTasks()))
}

func TestNewJSONFileRequiresPath(t *testing.T) {
	_, err := storage.NewJSONFile(storage.JSONFileConfig{})
	assert.ErrorIs(t, err, models.ErrNotValid)
}

func ptr(s string) *string { return &s }

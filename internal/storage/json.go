package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/balkashynov/todo/internal/logging"
	"github.com/balkashynov/todo/internal/models"
)

// JSONFileConfig is the configuration for the JSON file storage.
type JSONFileConfig struct {
	// Path is the primary store file.
	Path string
	// BackupPath receives a copy on every save and is read when Path is corrupt.
	// Empty disables the backup.
	BackupPath string
	Logger     *log.Logger
}

func (c *JSONFileConfig) defaults() error {
	if c.Path == "" {
		return fmt.Errorf("%w: store path is empty", models.ErrNotValid)
	}
	if c.Logger == nil {
		c.Logger = logging.Discard()
	}
	c.Logger = c.Logger.With("svc", "storage.JSONFile")
	return nil
}

// JSONFile stores tasks as a JSON array in a primary file and a backup twin.
type JSONFile struct {
	path       string
	backupPath string
	logger     *log.Logger
}

// NewJSONFile creates a JSON file storage.
func NewJSONFile(cfg JSONFileConfig) (*JSONFile, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &JSONFile{
		path:       cfg.Path,
		backupPath: cfg.BackupPath,
		logger:     cfg.Logger,
	}, nil
}

// Load reads the primary file, falling back to the backup when the primary
// is corrupt. A missing primary is a first run and yields no tasks. Load
// never fails on missing or corrupt files, it starts fresh instead.
func (j *JSONFile) Load(_ context.Context) ([]models.Task, error) {
	tasks, err := readTasks(j.path)
	switch {
	case err == nil:
		j.logger.Debug("Loaded tasks", "path", j.path, "count", len(tasks))
		return tasks, nil
	case errors.Is(err, fs.ErrNotExist):
		j.logger.Debug("No store file yet, starting empty", "path", j.path)
		return []models.Task{}, nil
	}

	if j.backupPath == "" {
		j.logger.Warn("File corrupted, starting fresh", "path", j.path, "err", err)
		return []models.Task{}, nil
	}
	j.logger.Warn("File corrupted, trying backup", "path", j.path, "err", err)

	tasks, err = readTasks(j.backupPath)
	switch {
	case err == nil:
		j.logger.Info("Loaded tasks from backup", "path", j.backupPath, "count", len(tasks))
		return tasks, nil
	case errors.Is(err, fs.ErrNotExist):
		j.logger.Warn("No backup found, starting fresh", "path", j.backupPath)
	default:
		j.logger.Warn("Backup corrupted, starting fresh", "path", j.backupPath, "err", err)
	}
	return []models.Task{}, nil
}

// Save overwrites the primary file and then the backup with tasks.
func (j *JSONFile) Save(_ context.Context, tasks []models.Task) error {
	data, err := encodeTasks(tasks)
	if err != nil {
		return err
	}

	if err := writeFile(j.path, data); err != nil {
		return err
	}
	if j.backupPath != "" {
		if err := writeFile(j.backupPath, data); err != nil {
			return err
		}
	}

	j.logger.Debug("Saved tasks", "path", j.path, "backup", j.backupPath, "count", len(tasks))
	return nil
}

// Close is a no-op, files are not held open between calls.
func (j *JSONFile) Close() error { return nil }

func readTasks(path string) ([]models.Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return decodeTasks(data)
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

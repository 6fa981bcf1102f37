// Package storage persists the task store between runs.
package storage

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/balkashynov/todo/internal/config"
	"github.com/balkashynov/todo/internal/models"
)

// Storage loads and saves the whole task collection at once.
type Storage interface {
	// Load returns the stored tasks in store order.
	Load(ctx context.Context) ([]models.Task, error)
	// Save replaces everything stored with tasks.
	Save(ctx context.Context, tasks []models.Task) error
	// Close releases any held resources.
	Close() error
}

// Open creates the storage selected by cfg.
func Open(cfg *config.Config, logger *log.Logger) (Storage, error) {
	switch cfg.Backend {
	case config.BackendJSON:
		return NewJSONFile(JSONFileConfig{
			Path:       cfg.DataFile,
			BackupPath: cfg.BackupFile,
			Logger:     logger,
		})
	case config.BackendSQLite:
		return NewSQLite(SQLiteConfig{
			Path:   cfg.SQLiteFile,
			Logger: logger,
		})
	default:
		return nil, fmt.Errorf("%w: backend %q", models.ErrNotValid, cfg.Backend)
	}
}

package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/balkashynov/todo/internal/logging"
	"github.com/balkashynov/todo/internal/models"
)

// taskRow is the database shape of a task. Position keeps store order.
type taskRow struct {
	RowID       uint   `gorm:"primarykey"`
	TaskID      uint32 `gorm:"not null;uniqueIndex"`
	Position    int    `gorm:"not null;index"`
	Description string `gorm:"not null"`
	Completed   bool   `gorm:"not null;default:false"`
	Priority    int    `gorm:"not null;default:2"` // 1=low, 2=medium, 3=high
}

func (taskRow) TableName() string { return "tasks" }

// SQLiteConfig is the configuration for the SQLite storage.
type SQLiteConfig struct {
	Path   string
	Logger *log.Logger
}

func (c *SQLiteConfig) defaults() error {
	if c.Path == "" {
		return fmt.Errorf("%w: database path is empty", models.ErrNotValid)
	}
	if c.Logger == nil {
		c.Logger = logging.Discard()
	}
	c.Logger = c.Logger.With("svc", "storage.SQLite")
	return nil
}

// SQLite stores tasks in a SQLite database through gorm.
type SQLite struct {
	db     *gorm.DB
	logger *log.Logger
}

// NewSQLite opens the database, creating it and its directory if needed, and
// runs migrations.
func NewSQLite(cfg SQLiteConfig) (*SQLite, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&taskRow{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	cfg.Logger.Debug("Opened database", "path", cfg.Path)
	return &SQLite{db: db, logger: cfg.Logger}, nil
}

// Load returns all tasks ordered by their stored position.
func (s *SQLite) Load(ctx context.Context) ([]models.Task, error) {
	var rows []taskRow
	if err := s.db.WithContext(ctx).Order("position ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}

	tasks := make([]models.Task, 0, len(rows))
	for _, r := range rows {
		priority := models.Priority(r.Priority)
		if !priority.Valid() {
			priority = models.DefaultPriority
		}
		tasks = append(tasks, models.Task{
			ID:          r.TaskID,
			Description: r.Description,
			Completed:   r.Completed,
			Priority:    priority,
		})
	}
	return tasks, nil
}

// Save replaces the stored rows with tasks in a single transaction.
func (s *SQLite) Save(ctx context.Context, tasks []models.Task) error {
	rows := make([]taskRow, 0, len(tasks))
	for i, t := range tasks {
		rows = append(rows, taskRow{
			TaskID:      t.ID,
			Position:    i,
			Description: t.Description,
			Completed:   t.Completed,
			Priority:    int(t.Priority),
		})
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&taskRow{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}

	s.logger.Debug("Saved tasks", "count", len(tasks))
	return nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

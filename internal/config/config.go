// Package config resolves where and how the task store is persisted.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/balkashynov/todo/internal/models"
)

const (
	// AppName is the application directory name under the home directory.
	AppName = ".todo"

	// ConfigFile is the optional TOML config file name.
	ConfigFile = "config.toml"

	DefaultDataFile   = ".todo_list_data.json"
	DefaultBackupFile = ".todo_list_data_backup.json"
	DefaultSQLiteFile = "todo.db"
	DefaultLogLevel   = "warn"
	DefaultLogFormat  = "text"
)

// Backend selects the storage implementation.
type Backend string

const (
	BackendJSON   Backend = "json"
	BackendSQLite Backend = "sqlite"
)

// Config holds the resolved settings for one run.
type Config struct {
	Backend    Backend `toml:"backend"`
	DataFile   string  `toml:"data_file"`
	BackupFile string  `toml:"backup_file"`
	SQLiteFile string  `toml:"sqlite_file"`
	LogLevel   string  `toml:"log_level"`
	LogFormat  string  `toml:"log_format"`
}

// Overrides are values set explicitly on the command line. Empty fields are
// left alone.
type Overrides struct {
	ConfigFile string
	Backend    string
	DataFile   string
	BackupFile string
	SQLiteFile string
	LogLevel   string
}

// Load builds the config from, in increasing priority:
// defaults, the TOML file, TODO_* environment variables, overrides.
func Load(o Overrides) (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("could not find home directory: %w", err)
	}

	cfg := Defaults(home)

	configPath := o.ConfigFile
	explicit := configPath != ""
	if !explicit {
		configPath = filepath.Join(home, AppName, ConfigFile)
	}
	// A missing default config file is the common case
	err = loadFile(cfg, configPath)
	if err != nil && (explicit || !errors.Is(err, fs.ErrNotExist)) {
		return nil, fmt.Errorf("loading config file %s: %w", configPath, err)
	}

	loadFromEnv(cfg)
	applyOverrides(cfg, o)

	if err := cfg.finalize(home); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Defaults returns the built-in settings rooted at home.
func Defaults(home string) *Config {
	return &Config{
		Backend:    BackendJSON,
		DataFile:   filepath.Join(home, DefaultDataFile),
		BackupFile: filepath.Join(home, DefaultBackupFile),
		SQLiteFile: filepath.Join(home, AppName, DefaultSQLiteFile),
		LogLevel:   DefaultLogLevel,
		LogFormat:  DefaultLogFormat,
	}
}

func loadFile(cfg *Config, path string) error {
	_, err := toml.DecodeFile(path, cfg)
	return err
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TODO_BACKEND"); v != "" {
		cfg.Backend = Backend(v)
	}
	if v := os.Getenv("TODO_DATA_FILE"); v != "" {
		cfg.DataFile = v
	}
	if v := os.Getenv("TODO_BACKUP_FILE"); v != "" {
		cfg.BackupFile = v
	}
	if v := os.Getenv("TODO_SQLITE_FILE"); v != "" {
		cfg.SQLiteFile = v
	}
	if v := os.Getenv("TODO_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TODO_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
}

func applyOverrides(cfg *Config, o Overrides) {
	if o.Backend != "" {
		cfg.Backend = Backend(o.Backend)
	}
	if o.DataFile != "" {
		cfg.DataFile = o.DataFile
	}
	if o.BackupFile != "" {
		cfg.BackupFile = o.BackupFile
	}
	if o.SQLiteFile != "" {
		cfg.SQLiteFile = o.SQLiteFile
	}
	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
	}
}

func (c *Config) finalize(home string) error {
	c.Backend = Backend(strings.ToLower(strings.TrimSpace(string(c.Backend))))
	switch c.Backend {
	case BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("%w: backend %q, use %q or %q", models.ErrNotValid, c.Backend, BackendJSON, BackendSQLite)
	}

	c.DataFile = expandHome(c.DataFile, home)
	c.BackupFile = expandHome(c.BackupFile, home)
	c.SQLiteFile = expandHome(c.SQLiteFile, home)

	if c.Backend == BackendJSON && c.DataFile == c.BackupFile {
		return fmt.Errorf("%w: data and backup file are both %s", models.ErrNotValid, c.DataFile)
	}
	return nil
}

// expandHome resolves a leading "~/" against home.
func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/balkashynov/todo/internal/config"
	"github.com/balkashynov/todo/internal/logging"
	"github.com/balkashynov/todo/internal/storage"
	"github.com/balkashynov/todo/internal/tasks"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// opener creates the store a command runs against
type opener func(cfg *config.Config, logger *log.Logger) (storage.Storage, error)

// app carries what every command needs: the flag overrides and, once a
// command runs, the resolved config.
type app struct {
	overrides config.Overrides
	cfg       *config.Config
	logger    *log.Logger
	open      opener
}

// taskFunc runs a command against the loaded list. It returns true when the
// list changed and must be saved.
type taskFunc func(cmd *cobra.Command, args []string, list *tasks.List) (bool, error)

// NewRootCommand builds the full command tree
func NewRootCommand() *cobra.Command {
	return newRootCommand(storage.Open)
}

func newRootCommand(open opener) *cobra.Command {
	a := &app{open: open}

	rootCmd := &cobra.Command{
		Use:   "todo",
		Short: "A small personal task list",
		Long: `todo keeps a short list of tasks in a file under your home directory.
Run it without arguments for the interactive menu, or use a subcommand.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          a.withTasks(runMenu),
	}
	// The completion generator stays available but out of the help output
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.overrides.ConfigFile, "config", "", "Config file (default ~/.todo/config.toml)")
	flags.StringVar(&a.overrides.Backend, "backend", "", "Storage backend: json or sqlite")
	flags.StringVar(&a.overrides.DataFile, "data-file", "", "Primary JSON store file")
	flags.StringVar(&a.overrides.BackupFile, "backup-file", "", "Backup JSON store file")
	flags.StringVar(&a.overrides.SQLiteFile, "sqlite-file", "", "SQLite database file")
	flags.StringVar(&a.overrides.LogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(
		newAddCmd(a),
		newViewCmd(a),
		newDeleteCmd(a),
		newCompleteCmd(a),
		newEditCmd(a),
		newPriorityCmd(a),
		newSortCmd(a),
		newClearCmd(a),
		newMenuCmd(a),
		newVersionCmd(),
	)
	rootCmd.SetHelpCommand(newHelpCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().Execute()
}

// setup resolves config and the logger. Errors here are fatal.
func (a *app) setup(stderr io.Writer) error {
	cfg, err := config.Load(a.overrides)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logging.New(stderr, logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	return nil
}

// withTasks wraps a command so it runs between loading and saving the store
func (a *app) withTasks(fn taskFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		if err := a.setup(cmd.ErrOrStderr()); err != nil {
			return err
		}

		store, err := a.open(a.cfg, a.logger)
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		defer func() {
			if cerr := store.Close(); cerr != nil {
				err = errors.Join(err, fmt.Errorf("failed to close storage: %w", cerr))
			}
		}()

		ctx := cmd.Context()
		loaded, err := store.Load(ctx)
		if err != nil {
			return err
		}
		list := tasks.NewList(loaded)

		changed, err := fn(cmd, args, list)
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}

		return store.Save(ctx, list.Tasks())
	}
}

// printErr reports a user input error and lets the command carry on
func printErr(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "todo %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}

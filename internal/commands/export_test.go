package commands

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/balkashynov/todo/internal/config"
	"github.com/balkashynov/todo/internal/storage"
)

// NewRootCommandWithStorage builds the command tree on top of store.
func NewRootCommandWithStorage(store storage.Storage) *cobra.Command {
	return newRootCommand(func(*config.Config, *log.Logger) (storage.Storage, error) {
		return store, nil
	})
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/todo/internal/tasks"
	"github.com/balkashynov/todo/internal/tui"
)

func newMenuCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Open the interactive menu",
		Args:  cobra.NoArgs,
		RunE:  a.withTasks(runMenu),
	}
}

// runMenu hands the list to the interactive menu and saves only when the
// user leaves through "Save and quit".
func runMenu(cmd *cobra.Command, _ []string, list *tasks.List) (bool, error) {
	save, err := tui.RunMenu(list)
	if err != nil {
		return false, fmt.Errorf("interactive menu failed: %w", err)
	}
	if !save {
		fmt.Fprintln(cmd.OutOrStdout(), "Changes discarded.")
	}
	return save, nil
}

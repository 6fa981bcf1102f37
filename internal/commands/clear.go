package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/todo/internal/tasks"
)

func newClearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all completed tasks",
		Args:  cobra.NoArgs,
		RunE: a.withTasks(func(cmd *cobra.Command, args []string, list *tasks.List) (bool, error) {
			n := list.ClearCompleted()
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d completed task(s)\n", n)
			return n > 0, nil
		}),
	}
}

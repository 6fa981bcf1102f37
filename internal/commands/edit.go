package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/todo/internal/parser"
	"github.com/balkashynov/todo/internal/tasks"
)

func newEditCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id> <new description...>",
		Short: "Edit the description of a task",
		Long: `Replace the description of the task with the given id.

Usage:
  todo edit 4 buy oat milk instead`,
		Args: cobra.MinimumNArgs(2),
		RunE: a.withTasks(func(cmd *cobra.Command, args []string, list *tasks.List) (bool, error) {
			out := cmd.OutOrStdout()

			id, err := parser.ParseID(args[0])
			if err != nil {
				printErr(out, err)
				return false, nil
			}

			task, err := list.Edit(id, strings.Join(args[1:], " "))
			if err != nil {
				printErr(out, err)
				return false, nil
			}

			fmt.Fprintf(out, "Task %d changed: %s\n", task.ID, task.Description)
			return true, nil
		}),
	}
}

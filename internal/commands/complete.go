package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/todo/internal/parser"
	"github.com/balkashynov/todo/internal/tasks"
)

func newCompleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "complete <id> [id...]",
		Aliases: []string{"done"},
		Short:   "Complete or uncomplete tasks",
		Long:    "Toggle the completed state of every task id given: todo complete 1 4 7",
		Args:    cobra.MinimumNArgs(1),
		RunE: a.withTasks(func(cmd *cobra.Command, args []string, list *tasks.List) (bool, error) {
			out := cmd.OutOrStdout()

			ids, errs := parser.ParseIDs(args)
			for _, err := range errs {
				printErr(out, err)
			}

			changed := false
			for _, r := range list.Complete(ids...) {
				switch {
				case !r.Found:
					fmt.Fprintf(out, "Task %d not found\n", r.ID)
				case r.Completed:
					changed = true
					fmt.Fprintf(out, "Task %d completed\n", r.ID)
				default:
					changed = true
					fmt.Fprintf(out, "Task %d marked as not completed\n", r.ID)
				}
			}
			return changed, nil
		}),
	}
}

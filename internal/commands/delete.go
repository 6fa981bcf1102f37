package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/todo/internal/parser"
	"github.com/balkashynov/todo/internal/tasks"
)

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id> [id...]",
		Aliases: []string{"rm"},
		Short:   "Delete tasks from your list",
		Long:    "Delete every task id given: todo delete 2 3. Unknown ids are ignored.",
		Args:    cobra.MinimumNArgs(1),
		RunE: a.withTasks(func(cmd *cobra.Command, args []string, list *tasks.List) (bool, error) {
			out := cmd.OutOrStdout()

			ids, errs := parser.ParseIDs(args)
			for _, err := range errs {
				printErr(out, err)
			}

			n := list.Delete(ids...)
			fmt.Fprintf(out, "Deleted %d task(s)\n", n)
			return n > 0, nil
		}),
	}
}

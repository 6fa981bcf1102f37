package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/todo/internal/parser"
	"github.com/balkashynov/todo/internal/tasks"
)

func newSortCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sort <id|priority>",
		Short: "Sort your tasks by id or priority",
		Long: `Reorder the stored list.

  id        ascending by id
  priority  high first, then medium, then low; order inside a level is kept`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: parser.SortOptions,
		RunE: a.withTasks(func(cmd *cobra.Command, args []string, list *tasks.List) (bool, error) {
			out := cmd.OutOrStdout()

			opt, err := parser.ParseSortOption(args[0])
			if err != nil {
				printErr(out, err)
				return false, nil
			}
			if err := list.Sort(opt); err != nil {
				printErr(out, err)
				return false, nil
			}

			fmt.Fprintf(out, "Tasks sorted by %s\n", opt)
			return true, nil
		}),
	}
}

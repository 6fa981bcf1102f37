package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/todo/internal/parser"
	"github.com/balkashynov/todo/internal/tasks"
)

func newPriorityCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "priority <id> <high|medium|low>",
		Short: "Change the priority of a task",
		Args:  cobra.ExactArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 1 {
				return []string{"high", "medium", "low"}, cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: a.withTasks(func(cmd *cobra.Command, args []string, list *tasks.List) (bool, error) {
			out := cmd.OutOrStdout()

			id, err := parser.ParseID(args[0])
			if err != nil {
				printErr(out, err)
				return false, nil
			}
			priority, err := parser.ParsePriority(args[1])
			if err != nil {
				printErr(out, err)
				return false, nil
			}

			current, err := list.Get(id)
			if err != nil {
				printErr(out, err)
				return false, nil
			}
			if current.Priority == priority {
				fmt.Fprintf(out, "Task %d is already %s\n", id, priority)
				return false, nil
			}

			task, err := list.SetPriority(id, priority)
			if err != nil {
				return false, err
			}

			fmt.Fprintf(out, "Task %d priority changed from %s to %s\n", task.ID, current.Priority, task.Priority)
			return true, nil
		}),
	}
}

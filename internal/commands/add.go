package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/todo/internal/models"
	"github.com/balkashynov/todo/internal/parser"
	"github.com/balkashynov/todo/internal/tasks"
)

func newAddCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <task> [task...]",
		Short: "Add new tasks to your list",
		Long: `Add new tasks to your list. Each argument is one task:

  todo add "buy milk" "walk the dog"

Smart parsing syntax:
  +priority   - Priority (low/medium/high), e.g. "fix bike +high"

Without a priority token, the --priority flag or medium is used.`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.withTasks(func(cmd *cobra.Command, args []string, list *tasks.List) (bool, error) {
			out := cmd.OutOrStdout()

			flagPriority, _ := cmd.Flags().GetString("priority")
			defaultPriority := models.DefaultPriority
			if flagPriority != "" {
				p, err := parser.ParsePriority(flagPriority)
				if err != nil {
					printErr(out, err)
					return false, nil
				}
				defaultPriority = p
			}

			added := 0
			for _, arg := range args {
				parsed := parser.ParseDescription(arg)
				priority := parsed.Priority
				if !parsed.HasPriority {
					priority = defaultPriority
				}

				task, err := list.Add(parsed.Description, priority)
				if err != nil {
					printErr(out, err)
					continue
				}
				added++
				fmt.Fprintf(out, "Created task #%d: %s\n", task.ID, task.Description)
			}

			if added > 0 {
				fmt.Fprintln(out, "Tasks added!")
			}
			return added > 0, nil
		}),
	}

	cmd.Flags().StringP("priority", "p", "", "Priority for the added tasks: low, medium, high, or 1-3")
	return cmd
}

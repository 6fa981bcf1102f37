package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/todo/internal/tasks"
	"github.com/balkashynov/todo/internal/tui"
)

func newViewCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "view",
		Aliases: []string{"ls", "list"},
		Short:   "List your current tasks",
		Args:    cobra.NoArgs,
		RunE: a.withTasks(func(cmd *cobra.Command, args []string, list *tasks.List) (bool, error) {
			out := cmd.OutOrStdout()

			if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
				jsonBytes, err := json.MarshalIndent(list.Tasks(), "", "  ")
				if err != nil {
					return false, fmt.Errorf("error marshaling JSON: %w", err)
				}
				fmt.Fprintln(out, string(jsonBytes))
				return false, nil
			}

			fmt.Fprintln(out, tui.RenderTable(list.Tasks()))
			return false, nil
		}),
	}

	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

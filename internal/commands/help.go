package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newHelpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "help [command]",
		Short: "Show help for todo or one of its commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				target, _, err := cmd.Root().Find(args)
				if err != nil || target == cmd.Root() {
					return fmt.Errorf("unknown help topic %q", args)
				}
				return target.Help()
			}
			showCustomHelp(cmd.OutOrStdout())
			return nil
		},
	}
}

func showCustomHelp(w io.Writer) {
	fmt.Fprint(w, `
todo - a small personal task list

COMMANDS:

  (no command)            Open the interactive menu
  menu                    Open the interactive menu

  add <task> [task...]    Add one task per argument
    -p, --priority        Priority for tasks without a +token
    Smart syntax:
      +priority     Set priority (low/medium/high)
    Example:
      todo add "fix bike +high" "buy milk"

  view                    Show your tasks (aliases: ls, list)
    --json                JSON output

  complete <id...>        Toggle completed (alias: done)
  delete <id...>          Delete tasks (alias: rm)
  edit <id> <text...>     Replace a task description
  priority <id> <level>   Set priority: high|medium|low
  sort <id|priority>      Reorder the list
  clear                   Remove all completed tasks
  version                 Print version information

GLOBAL FLAGS:

  --config <file>         Config file (default ~/.todo/config.toml)
  --backend <name>        json (default) or sqlite
  --data-file <file>      Primary JSON file (default ~/.todo_list_data.json)
  --backup-file <file>    Backup JSON file (default ~/.todo_list_data_backup.json)
  --sqlite-file <file>    SQLite database (default ~/.todo/todo.db)
  --log-level <level>     debug|info|warn|error

`)
}

package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/balkashynov/todo/internal/models"
)

// EmptyListMessage is shown instead of a table when there are no tasks
const EmptyListMessage = "No tasks yet. Use 'todo add \"task description\"' to create your first task."

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentBright)).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// RenderTable renders tasks as a bordered table. Pending tasks are red,
// completed ones green.
func RenderTable(tasks []models.Task) string {
	if len(tasks) == 0 {
		return EmptyListMessage
	}

	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []string{strconv.FormatUint(uint64(t.ID), 10), t.Description, t.Priority.String()})
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBorder))).
		Headers("ID", "TASK", "PRIORITY").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row < 0 || row >= len(tasks) {
				return cellStyle
			}
			t := tasks[row]
			switch col {
			case 0:
				return cellStyle.Align(lipgloss.Center).Foreground(lipgloss.Color(ColorPrimaryText))
			case 1:
				if t.Completed {
					return cellStyle.Foreground(lipgloss.Color(ColorDone))
				}
				return cellStyle.Foreground(lipgloss.Color(ColorPending))
			default:
				return cellStyle.Foreground(lipgloss.Color(priorityColor(t.Priority)))
			}
		})

	return tbl.Render()
}

func priorityColor(p models.Priority) string {
	switch p {
	case models.PriorityHigh:
		return ColorPending
	case models.PriorityMedium:
		return ColorWarning
	default:
		return ColorMutedText
	}
}

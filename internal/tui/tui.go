package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/todo/internal/tasks"
)

// RunMenu starts the interactive menu over list. It reports whether the
// user chose to save on the way out.
func RunMenu(list *tasks.List) (bool, error) {
	p := tea.NewProgram(NewMenuModel(list), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	if m, ok := finalModel.(MenuModel); ok {
		return m.Save(), nil
	}
	return false, nil
}

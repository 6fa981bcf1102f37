package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/todo/internal/models"
	"github.com/balkashynov/todo/internal/parser"
	"github.com/balkashynov/todo/internal/tasks"
)

// Action is one menu entry
type Action int

const (
	ActionAdd Action = iota
	ActionView
	ActionComplete
	ActionDelete
	ActionEdit
	ActionPriority
	ActionSort
	ActionClear
	ActionSaveQuit
	ActionQuit
)

type menuEntry struct {
	action Action
	label  string
	// prompt is empty for entries that run without input
	prompt string
}

var menuEntries = []menuEntry{
	{ActionAdd, "Add task", "Description (append +high, +medium or +low to set priority)"},
	{ActionView, "Show/hide tasks", ""},
	{ActionComplete, "Complete/uncomplete tasks", "Task ids separated by spaces"},
	{ActionDelete, "Delete tasks", "Task ids separated by spaces"},
	{ActionEdit, "Edit task", "<id> <new description>"},
	{ActionPriority, "Change priority", "<id> <high|medium|low>"},
	{ActionSort, "Sort tasks", "id or priority"},
	{ActionClear, "Clear completed tasks", ""},
	{ActionSaveQuit, "Save and quit", ""},
	{ActionQuit, "Quit without saving", ""},
}

// MenuModel is the interactive menu over an in-memory task list
type MenuModel struct {
	list    *tasks.List
	cursor  int
	input   textinput.Model
	shimmer *Shimmer

	prompting bool
	showTable bool
	status    string
	statusErr bool

	// save is set when the user leaves through "Save and quit"
	save     bool
	quitting bool
}

// NewMenuModel creates the menu over list
func NewMenuModel(list *tasks.List) MenuModel {
	input := textinput.New()
	input.Width = 60
	input.CharLimit = 200
	input.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	input.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	input.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))

	return MenuModel{
		list:      list,
		input:     input,
		shimmer:   DefaultShimmer(),
		showTable: true,
	}
}

// Save reports whether the user asked to persist changes
func (m MenuModel) Save() bool {
	return m.save
}

// Init starts the highlight animation
func (m MenuModel) Init() tea.Cmd {
	return m.shimmer.Tick()
}

// Update handles messages
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case shimmerTickMsg:
		if m.quitting {
			return m, nil
		}
		if !m.prompting {
			m.shimmer.Advance(len([]rune(menuEntries[m.cursor].label)))
		}
		return m, m.shimmer.Tick()

	case tea.KeyMsg:
		if m.prompting {
			return m.handlePromptKeys(msg)
		}
		return m.handleMenuKeys(msg)
	}

	return m, nil
}

func (m MenuModel) handleMenuKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc", "q":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.shimmer.Reset()
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(menuEntries)-1 {
			m.cursor++
			m.shimmer.Reset()
		}
		return m, nil

	case "enter":
		return m.selectEntry()
	}
	return m, nil
}

func (m MenuModel) selectEntry() (tea.Model, tea.Cmd) {
	entry := menuEntries[m.cursor]
	if entry.prompt != "" {
		m.prompting = true
		m.input.Reset()
		m.input.Placeholder = entry.prompt
		cmd := m.input.Focus()
		return m, cmd
	}

	switch entry.action {
	case ActionView:
		m.showTable = !m.showTable
		m.setStatus("", nil)
	case ActionClear:
		n := m.list.ClearCompleted()
		m.setStatus(fmt.Sprintf("Cleared %d completed task(s)", n), nil)
	case ActionSaveQuit:
		m.save = true
		m.quitting = true
		return m, tea.Quit
	case ActionQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m MenuModel) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "esc":
		m.prompting = false
		m.input.Blur()
		m.setStatus("Cancelled", nil)
		return m, nil

	case "enter":
		value := m.input.Value()
		m.prompting = false
		m.input.Blur()
		status, err := ApplyAction(m.list, menuEntries[m.cursor].action, value)
		m.setStatus(status, err)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *MenuModel) setStatus(status string, err error) {
	if err != nil {
		m.status = "Error: " + err.Error()
		m.statusErr = true
		return
	}
	m.status = status
	m.statusErr = false
}

// ApplyAction runs a menu action that takes text input against list and
// returns a message for the status line.
func ApplyAction(list *tasks.List, action Action, input string) (string, error) {
	input = strings.TrimSpace(input)

	switch action {
	case ActionAdd:
		parsed := parser.ParseDescription(input)
		task, err := list.Add(parsed.Description, parsed.Priority)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Added task #%d: %s", task.ID, task.Description), nil

	case ActionComplete:
		ids, errs := parser.ParseIDs(strings.Fields(input))
		var msgs []string
		for _, r := range list.Complete(ids...) {
			msgs = append(msgs, completeMessage(r))
		}
		return strings.Join(msgs, "; "), errors.Join(errs...)

	case ActionDelete:
		ids, errs := parser.ParseIDs(strings.Fields(input))
		n := list.Delete(ids...)
		return fmt.Sprintf("Deleted %d task(s)", n), errors.Join(errs...)

	case ActionEdit:
		idArg, text, _ := strings.Cut(input, " ")
		id, err := parser.ParseID(idArg)
		if err != nil {
			return "", err
		}
		task, err := list.Edit(id, text)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Task #%d changed: %s", task.ID, task.Description), nil

	case ActionPriority:
		fields := strings.Fields(input)
		if len(fields) != 2 {
			return "", fmt.Errorf("%w: expected <id> <level>", models.ErrNotValid)
		}
		id, err := parser.ParseID(fields[0])
		if err != nil {
			return "", err
		}
		priority, err := parser.ParsePriority(fields[1])
		if err != nil {
			return "", err
		}
		task, err := list.SetPriority(id, priority)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Task #%d priority set to %s", task.ID, task.Priority), nil

	case ActionSort:
		opt, err := parser.ParseSortOption(input)
		if err != nil {
			return "", err
		}
		if err := list.Sort(opt); err != nil {
			return "", err
		}
		return fmt.Sprintf("Sorted by %s", opt), nil
	}

	return "", fmt.Errorf("%w: action %d takes no input", models.ErrNotValid, action)
}

func completeMessage(r tasks.CompleteResult) string {
	switch {
	case !r.Found:
		return fmt.Sprintf("Task %d not found", r.ID)
	case r.Completed:
		return fmt.Sprintf("Task %d completed", r.ID)
	default:
		return fmt.Sprintf("Task %d marked as not completed", r.ID)
	}
}

// View renders the menu
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentMain)).
		MarginBottom(1)
	b.WriteString(titleStyle.Render("todo"))
	b.WriteString("\n")

	if m.showTable {
		b.WriteString(RenderTable(m.list.Tasks()))
		b.WriteString("\n\n")
	}

	itemStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	for i, entry := range menuEntries {
		if i == m.cursor {
			b.WriteString("> " + m.shimmer.Render(entry.label))
		} else {
			b.WriteString("  " + itemStyle.Render(entry.label))
		}
		b.WriteString("\n")
	}

	if m.prompting {
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	if m.status != "" {
		color := ColorDone
		if m.statusErr {
			color = ColorPending
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(m.status))
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText)).MarginTop(1)
	help := "↑/↓ navigate • enter select • q quit without saving"
	if m.prompting {
		help = "enter confirm • esc cancel"
	}
	b.WriteString(helpStyle.Render(help))

	return b.String()
}

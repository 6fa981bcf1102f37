// Package tasks holds the in-memory task store and its mutations.
package tasks

import (
	"fmt"
	"slices"
	"strings"

	"github.com/balkashynov/todo/internal/models"
	"github.com/balkashynov/todo/internal/parser"
)

// List is the ordered in-memory store for one run
type List struct {
	tasks []models.Task
}

// NewList wraps loaded tasks. The slice is owned by the list afterwards.
func NewList(tasks []models.Task) *List {
	if tasks == nil {
		tasks = []models.Task{}
	}
	return &List{tasks: tasks}
}

// Tasks returns the tasks in store order
func (l *List) Tasks() []models.Task {
	return l.tasks
}

// Len returns the number of tasks
func (l *List) Len() int {
	return len(l.tasks)
}

// Get returns a copy of the task with the given id
func (l *List) Get(id uint32) (models.Task, error) {
	i := l.index(id)
	if i < 0 {
		return models.Task{}, fmt.Errorf("task #%d %w", id, models.ErrNotFound)
	}
	return l.tasks[i], nil
}

// Add appends a task with the next free id and returns it
func (l *List) Add(description string, priority models.Priority) (models.Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return models.Task{}, fmt.Errorf("%w: empty task description", models.ErrNotValid)
	}
	if !priority.Valid() {
		return models.Task{}, fmt.Errorf("%w: priority %d", models.ErrNotValid, int(priority))
	}

	task := models.Task{
		ID:          l.nextID(),
		Description: description,
		Priority:    priority,
	}
	l.tasks = append(l.tasks, task)
	return task, nil
}

// nextID probes upward from the current length until an id is free.
// A gap left by a deletion below the length is not refilled.
func (l *List) nextID() uint32 {
	id := uint32(len(l.tasks))
	for l.index(id) >= 0 {
		id++
	}
	return id
}

// CompleteResult reports the outcome of toggling one id
type CompleteResult struct {
	ID    uint32
	Found bool
	// Completed is the new state, only meaningful when Found
	Completed bool
}

// Complete toggles the completed flag of each matching id
func (l *List) Complete(ids ...uint32) []CompleteResult {
	results := make([]CompleteResult, 0, len(ids))
	for _, id := range ids {
		i := l.index(id)
		if i < 0 {
			results = append(results, CompleteResult{ID: id})
			continue
		}
		l.tasks[i].Completed = !l.tasks[i].Completed
		results = append(results, CompleteResult{ID: id, Found: true, Completed: l.tasks[i].Completed})
	}
	return results
}

// Delete removes every task matching one of ids and returns how many went.
// Unknown ids are ignored.
func (l *List) Delete(ids ...uint32) int {
	before := len(l.tasks)
	l.tasks = slices.DeleteFunc(l.tasks, func(t models.Task) bool {
		return slices.Contains(ids, t.ID)
	})
	return before - len(l.tasks)
}

// Edit replaces the description of a task
func (l *List) Edit(id uint32, description string) (models.Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return models.Task{}, fmt.Errorf("%w: empty task description", models.ErrNotValid)
	}
	i := l.index(id)
	if i < 0 {
		return models.Task{}, fmt.Errorf("task #%d %w", id, models.ErrNotFound)
	}
	l.tasks[i].Description = description
	return l.tasks[i], nil
}

// SetPriority replaces the priority of a task
func (l *List) SetPriority(id uint32, priority models.Priority) (models.Task, error) {
	if !priority.Valid() {
		return models.Task{}, fmt.Errorf("%w: priority %d", models.ErrNotValid, int(priority))
	}
	i := l.index(id)
	if i < 0 {
		return models.Task{}, fmt.Errorf("task #%d %w", id, models.ErrNotFound)
	}
	l.tasks[i].Priority = priority
	return l.tasks[i], nil
}

// ClearCompleted removes all completed tasks and returns the count removed
func (l *List) ClearCompleted() int {
	before := len(l.tasks)
	l.tasks = slices.DeleteFunc(l.tasks, func(t models.Task) bool {
		return t.Completed
	})
	return before - len(l.tasks)
}

// Sort reorders the store in place
func (l *List) Sort(opt parser.SortOption) error {
	switch opt {
	case parser.SortByID:
		slices.SortStableFunc(l.tasks, func(a, b models.Task) int {
			switch {
			case a.ID < b.ID:
				return -1
			case a.ID > b.ID:
				return 1
			}
			return 0
		})
	case parser.SortByPriority:
		// Higher level first; stable keeps insertion order inside a group
		slices.SortStableFunc(l.tasks, func(a, b models.Task) int {
			return int(b.Priority) - int(a.Priority)
		})
	default:
		return fmt.Errorf("%w: sort option %q", models.ErrNotValid, opt)
	}
	return nil
}

func (l *List) index(id uint32) int {
	return slices.IndexFunc(l.tasks, func(t models.Task) bool {
		return t.ID == id
	})
}

package storage

import (
	"context"
	"slices"

	"github.com/balkashynov/todo/internal/models"
)

// Memory keeps tasks in process, for tests.
type Memory struct {
	tasks []models.Task
	saves int
}

// NewMemory creates a memory storage seeded with tasks.
func NewMemory(tasks ...models.Task) *Memory {
	return &Memory{tasks: slices.Clone(tasks)}
}

// Load returns a copy of the stored tasks.
func (m *Memory) Load(context.Context) ([]models.Task, error) {
	if m.tasks == nil {
		return []models.Task{}, nil
	}
	return slices.Clone(m.tasks), nil
}

// Save replaces the stored tasks with a copy of tasks.
func (m *Memory) Save(_ context.Context, tasks []models.Task) error {
	m.tasks = slices.Clone(tasks)
	m.saves++
	return nil
}

// Saves returns how many times Save was called.
func (m *Memory) Saves() int { return m.saves }

// Close is a no-op, the tasks stay readable.
func (m *Memory) Close() error { return nil }

package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Priority is the urgency level of a task
type Priority int

const (
	PriorityLow Priority = iota + 1
	PriorityMedium
	PriorityHigh
)

// DefaultPriority is used for new tasks and for stored tasks without a priority
const DefaultPriority = PriorityMedium

func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	case PriorityLow:
		return "Low"
	default:
		return fmt.Sprintf("Priority(%d)", int(p))
	}
}

// Valid reports whether p is one of the known levels
func (p Priority) Valid() bool {
	return p >= PriorityLow && p <= PriorityHigh
}

// MarshalJSON writes the priority as its level name
func (p Priority) MarshalJSON() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: priority %d", ErrNotValid, int(p))
	}
	return json.Marshal(p.String())
}

// UnmarshalJSON accepts the level names written by MarshalJSON
func (p *Priority) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch strings.ToLower(s) {
	case "high":
		*p = PriorityHigh
	case "medium":
		*p = PriorityMedium
	case "low":
		*p = PriorityLow
	default:
		return fmt.Errorf("%w: unknown priority %q", ErrNotValid, s)
	}
	return nil
}

// Task represents a todo item
type Task struct {
	ID          uint32   `json:"id"`
	Description string   `json:"description"`
	Completed   bool     `json:"completed"`
	Priority    Priority `json:"priority,omitempty"`
}

// UnmarshalJSON fills in the default priority for records written before
// priorities existed.
func (t *Task) UnmarshalJSON(data []byte) error {
	type plain Task
	var raw plain
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Priority == 0 {
		raw.Priority = DefaultPriority
	}
	*t = Task(raw)
	return nil
}

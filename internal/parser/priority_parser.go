package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/balkashynov/todo/internal/models"
)

// Only named levels are recognised inline, "+1" reads as prose.
var priorityTokenRegex = regexp.MustCompile(`(?i)\+(high|medium|med|low)\b`)

// ParsedTask represents a task description with inline metadata extracted
type ParsedTask struct {
	Description string
	Priority    models.Priority
	// HasPriority is true when the input carried a priority token
	HasPriority bool
}

// ParseDescription extracts an inline priority from a task description.
// Syntax: "Fix the bike +high". Recognised tokens are removed from the
// description, any other text (including "+44" or "+someday") is kept as
// written. Without a token the default priority is used.
func ParseDescription(input string) ParsedTask {
	result := ParsedTask{Priority: models.DefaultPriority}

	matches := priorityTokenRegex.FindAllStringSubmatchIndex(input, -1)
	// Walk backwards so earlier offsets stay valid while cutting
	for i := len(matches) - 1; i >= 0; i-- {
		start, end := matches[i][0], matches[i][1]
		if !standsAlone(input, start, end) {
			continue
		}

		// Last token wins: "+low ... +high" is high
		if !result.HasPriority {
			p, err := ParsePriority(input[matches[i][2]:matches[i][3]])
			if err != nil {
				continue
			}
			result.Priority = p
			result.HasPriority = true
		}

		// Squeeze the single gap the token leaves behind
		switch {
		case start > 0 && isSpace(input[start-1]):
			start--
		case end < len(input) && isSpace(input[end]):
			end++
		}
		input = input[:start] + input[end:]
	}

	result.Description = strings.TrimSpace(input)
	return result
}

// standsAlone reports whether input[start:end] is a whole whitespace
// separated word.
func standsAlone(input string, start, end int) bool {
	if start > 0 && !isSpace(input[start-1]) {
		return false
	}
	return end == len(input) || isSpace(input[end])
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// ParsePriority converts a user supplied level to a Priority
func ParsePriority(priority string) (models.Priority, error) {
	switch strings.ToLower(strings.TrimSpace(priority)) {
	case "3", "high":
		return models.PriorityHigh, nil
	case "2", "medium", "med":
		return models.PriorityMedium, nil
	case "1", "low":
		return models.PriorityLow, nil
	default:
		return 0, fmt.Errorf("%w: priority %q, use high, medium or low", models.ErrNotValid, priority)
	}
}

package parser

import (
	"fmt"
	"strings"

	"github.com/balkashynov/todo/internal/models"
)

// SortOption selects how the store is reordered
type SortOption string

const (
	SortByID       SortOption = "id"
	SortByPriority SortOption = "priority"
)

// SortOptions lists the accepted values, used for shell completion
var SortOptions = []string{string(SortByID), string(SortByPriority)}

// ParseSortOption converts user input to a SortOption
func ParseSortOption(opt string) (SortOption, error) {
	switch strings.ToLower(strings.TrimSpace(opt)) {
	case "id":
		return SortByID, nil
	case "priority", "prio":
		return SortByPriority, nil
	default:
		return "", fmt.Errorf("%w: sort option %q, use id or priority", models.ErrNotValid, opt)
	}
}

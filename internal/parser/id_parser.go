package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/balkashynov/todo/internal/models"
)

// ParseID parses a single task id argument
func ParseID(arg string) (uint32, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(arg), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid task ID '%s'", models.ErrNotValid, arg)
	}
	return uint32(id), nil
}

// ParseIDs parses every argument it can and reports the rest.
// Invalid arguments do not stop the valid ones from being returned.
func ParseIDs(args []string) ([]uint32, []error) {
	ids := make([]uint32, 0, len(args))
	var errs []error
	for _, arg := range args {
		id, err := ParseID(arg)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		ids = append(ids, id)
	}
	return ids, errs
}

package storage

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/balkashynov/todo/internal/models"
)

const schemaURL = "store.schema.json"

//go:embed store.schema.json
var storeSchema string

var compiledSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, strings.NewReader(storeSchema)); err != nil {
		panic(fmt.Sprintf("adding store schema: %v", err))
	}
	return compiler.MustCompile(schemaURL)
}

// decodeTasks parses store file content. Any error means the content is
// unusable and should be treated as corrupt.
func decodeTasks(data []byte) ([]models.Task, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrNotValid, err)
	}
	if err := compiledSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrNotValid, err)
	}

	var tasks []models.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrNotValid, err)
	}

	seen := make(map[uint32]struct{}, len(tasks))
	for _, t := range tasks {
		if _, ok := seen[t.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate task id %d", models.ErrNotValid, t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	return tasks, nil
}

// encodeTasks renders the store file content.
func encodeTasks(tasks []models.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []models.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize tasks: %w", err)
	}
	return append(data, '\n'), nil
}

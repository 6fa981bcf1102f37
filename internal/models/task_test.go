package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/todo/internal/models"
)

func TestTaskUnmarshalJSON(t *testing.T) {
	tests := map[string]struct {
		data    string
		expTask models.Task
		expErr  bool
	}{
		"A record with priority should keep it": {
			data:    `{"id": 3, "description": "buy milk", "completed": true, "priority": "High"}`,
			expTask: models.Task{ID: 3, Description: "buy milk", Completed: true, Priority: models.PriorityHigh},
		},

		"A record without priority should get the default": {
			data:    `{"id": 0, "description": "walk dog", "completed": false}`,
			expTask: models.Task{ID: 0, Description: "walk dog", Priority: models.DefaultPriority},
		},

		"Priority names are case insensitive": {
			data:    `{"id": 1, "description": "x", "completed": false, "priority": "low"}`,
			expTask: models.Task{ID: 1, Description: "x", Priority: models.PriorityLow},
		},

		"An unknown priority should fail": {
			data:   `{"id": 1, "description": "x", "completed": false, "priority": "Urgent"}`,
			expErr: true,
		},

		"A negative id should fail": {
			data:   `{"id": -1, "description": "x", "completed": false}`,
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			var got models.Task
			err := json.Unmarshal([]byte(test.data), &got)

			if test.expErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expTask, got)
		})
	}
}

func TestTaskMarshalJSON(t *testing.T) {
	task := models.Task{ID: 7, Description: "ship it", Priority: models.PriorityLow}

	data, err := json.Marshal(task)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": 7, "description": "ship it", "completed": false, "priority": "Low"}`, string(data))
}

func TestPriorityMarshalInvalid(t *testing.T) {
	_, err := json.Marshal(models.Priority(9))
	assert.ErrorIs(t, err, models.ErrNotValid)
}

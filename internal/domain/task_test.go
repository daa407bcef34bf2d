package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneIsDeep(t *testing.T) {
	desc := "original"
	task := &Task{
		ID:          1,
		Title:       "title",
		Description: &desc,
		Completed:   false,
		CreatedAt:   "2025-01-01T00:00:00Z",
	}

	clone := task.Clone()
	require.Equal(t, task, clone)

	*clone.Description = "mutated"
	clone.Title = "mutated"

	assert.Equal(t, "original", *task.Description)
	assert.Equal(t, "title", task.Title)
}

func TestTaskJSONShape(t *testing.T) {
	t.Run("absent description serializes to null", func(t *testing.T) {
		task := &Task{ID: 1, Title: "t", CreatedAt: "2025-01-01T00:00:00Z"}

		data, err := json.Marshal(task)
		require.NoError(t, err)
		assert.JSONEq(t,
			`{"id":1,"title":"t","description":null,"completed":false,"created_at":"2025-01-01T00:00:00Z"}`,
			string(data))
	})

	t.Run("empty description is distinct from absent", func(t *testing.T) {
		empty := ""
		task := &Task{ID: 2, Title: "t", Description: &empty, CreatedAt: "2025-01-01T00:00:00Z"}

		data, err := json.Marshal(task)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"description":""`)
	})
}

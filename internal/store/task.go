package store

import (
	"context"

	"github.com/phrazzld/task-manager-api/internal/domain"
)

// TaskStore defines the interface for task data storage.
//
// Implementations must make every method atomic with respect to the others:
// concurrent creates must never assign duplicate ids, and a read that runs
// concurrently with a write must observe either the pre-write or post-write
// state, never a partially mutated task or a transient duplicate in the list.
type TaskStore interface {
	// List returns all tasks in creation order. It never fails; an empty
	// store yields an empty (non-nil) slice.
	List(ctx context.Context) []*domain.Task

	// GetByID retrieves a task by its id.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// Create assigns the next id from the monotonic counter, sets the
	// creation timestamp to the current UTC instant, stores the task and
	// returns it. It always succeeds given valid input; callers are expected
	// to have validated the fields before calling.
	Create(ctx context.Context, title string, description *string, completed bool) (*domain.Task, error)

	// Update replaces the task's title, description and completed flag
	// wholesale, leaving id and created_at untouched, and returns the
	// updated task.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, id int64, title string, description *string, completed bool) (*domain.Task, error)

	// Delete removes a task from the store by its id.
	// Returns ErrTaskNotFound if the task does not exist. Ids of deleted
	// tasks are never reassigned.
	Delete(ctx context.Context, id int64) error
}

// Package memory provides in-memory implementations of the store interfaces.
// State lives for the lifetime of the process: a restart discards all tasks
// and resets the id counter to 1.
package memory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/phrazzld/task-manager-api/internal/domain"
	"github.com/phrazzld/task-manager-api/internal/store"
)

// TaskStore is a mutex-guarded in-memory task store.
//
// A single lock covers the full read-modify-write sequence of every
// operation, so concurrent creates never reuse an id and List never observes
// a half-applied update. Tasks are held in a slice for creation order plus a
// map for id lookup; both structures are mutated inside the same critical
// section. All returned tasks are clones, so callers can never mutate
// store-owned state.
type TaskStore struct {
	mu     sync.Mutex
	tasks  []*domain.Task
	byID   map[int64]*domain.Task
	nextID int64
	logger *slog.Logger
	now    func() time.Time
}

// NewTaskStore creates an empty TaskStore with the id counter at 1.
func NewTaskStore(logger *slog.Logger) *TaskStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskStore{
		tasks:  make([]*domain.Task, 0),
		byID:   make(map[int64]*domain.Task),
		nextID: 1,
		logger: logger.With(slog.String("component", "task_store")),
		now:    time.Now,
	}
}

// List returns all tasks in creation order.
func (s *TaskStore) List(ctx context.Context) []*domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.Task, len(s.tasks))
	for i, t := range s.tasks {
		out[i] = t.Clone()
	}
	return out
}

// GetByID retrieves a task by its id.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *TaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.byID[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	return t.Clone(), nil
}

// Create assigns the next id and the current UTC creation timestamp, appends
// the task and returns it.
func (s *TaskStore) Create(
	ctx context.Context,
	title string,
	description *string,
	completed bool,
) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &domain.Task{
		ID:        s.nextID,
		Title:     title,
		Completed: completed,
		CreatedAt: s.now().UTC().Format(time.RFC3339),
	}
	if description != nil {
		d := *description
		t.Description = &d
	}

	s.tasks = append(s.tasks, t)
	s.byID[t.ID] = t
	s.nextID++

	s.logger.Debug("task created", slog.Int64("task_id", t.ID))
	return t.Clone(), nil
}

// Update replaces the task's title, description and completed flag, leaving
// id and created_at untouched.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *TaskStore) Update(
	ctx context.Context,
	id int64,
	title string,
	description *string,
	completed bool,
) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.byID[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}

	t.Title = title
	t.Completed = completed
	if description != nil {
		d := *description
		t.Description = &d
	} else {
		t.Description = nil
	}

	s.logger.Debug("task updated", slog.Int64("task_id", id))
	return t.Clone(), nil
}

// Delete removes a task from the store by its id. The id counter is not
// rewound, so deleted ids are never reassigned.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *TaskStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return store.ErrTaskNotFound
	}

	delete(s.byID, id)
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			break
		}
	}

	s.logger.Debug("task deleted", slog.Int64("task_id", id))
	return nil
}

package domain

// Field constraints for Task titles and descriptions. These are enforced at
// the API boundary before a task reaches the store.
const (
	TitleMinLen       = 1
	TitleMaxLen       = 100
	DescriptionMaxLen = 500
)

// Task represents a single managed task record.
//
// ID is assigned by the store and is strictly increasing for the lifetime of
// the process; ids are never reused, even after deletion. CreatedAt is an
// RFC 3339 UTC timestamp set once at creation and never mutated. Description
// is a pointer because an absent description is distinct from an empty one
// and serializes to JSON null.
type Task struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
	CreatedAt   string  `json:"created_at"`
}

// Clone returns a deep copy of the task. Stores hand out clones so callers
// never alias store-owned memory.
func (t *Task) Clone() *Task {
	c := *t
	if t.Description != nil {
		d := *t.Description
		c.Description = &d
	}
	return &c
}

package tasks

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type user struct {
	chatID int64
	tasks  []*Task
}

// Registry keeps per-chat task lists in memory.
// All methods are safe for concurrent use; read methods return copies,
// mutations go through ID-addressed setters.
type Registry struct {
	mu    sync.RWMutex
	users map[int64]*user
}

// NewRegistry creates an empty task registry.
func NewRegistry() *Registry {
	return &Registry{users: make(map[int64]*user)}
}

// Register ensures a user record exists for the chat.
func (r *Registry) Register(chatID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[chatID]; !ok {
		r.users[chatID] = &user{chatID: chatID}
	}
}

// Exists reports whether the chat has been registered.
func (r *Registry) Exists(chatID int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.users[chatID]
	return ok
}

// Create appends a new incomplete task with the given name and returns a copy of it.
// The chat is registered implicitly if needed.
func (r *Registry) Create(chatID int64, name string) Task {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[chatID]
	if !ok {
		u = &user{chatID: chatID}
		r.users[chatID] = u
	}
	t := &Task{
		ID:    uuid.New(),
		Owner: chatID,
		Name:  name,
	}
	u.tasks = append(u.tasks, t)
	return *t
}

func (r *Registry) find(chatID int64, id uuid.UUID) *Task {
	u, ok := r.users[chatID]
	if !ok {
		return nil
	}
	for _, t := range u.tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// SetCategory assigns the category of the identified task.
func (r *Registry) SetCategory(chatID int64, id uuid.UUID, category string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := r.find(chatID, id)
	if t == nil {
		return false
	}
	t.Category = category
	return true
}

// SetDescription assigns the description of the identified task.
func (r *Registry) SetDescription(chatID int64, id uuid.UUID, description string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := r.find(chatID, id)
	if t == nil {
		return false
	}
	t.Description = description
	return true
}

// SetDeadline assigns the deadline of the identified task.
func (r *Registry) SetDeadline(chatID int64, id uuid.UUID, deadline time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := r.find(chatID, id)
	if t == nil {
		return false
	}
	t.Deadline = deadline
	return true
}

// Complete marks the identified task completed.
// It returns the task after the call, whether it had already been completed,
// and whether the task was found at all. Re-completion is not reapplied.
func (r *Registry) Complete(chatID int64, id uuid.UUID) (Task, bool, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := r.find(chatID, id)
	if t == nil {
		return Task{}, false, false
	}
	if t.Completed {
		return *t, true, true
	}
	t.Completed = true
	return *t, false, true
}

// ByID returns a copy of the identified task.
func (r *Registry) ByID(chatID int64, id uuid.UUID) (Task, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t := r.find(chatID, id)
	if t == nil {
		return Task{}, false
	}
	return *t, true
}

// ByName returns the first task whose name matches exactly.
// Names are not unique; later tasks sharing a name are shadowed.
func (r *Registry) ByName(chatID int64, name string) (Task, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[chatID]
	if !ok {
		return Task{}, false
	}
	for _, t := range u.tasks {
		if t.Name == name {
			return *t, true
		}
	}
	return Task{}, false
}

// MoveToEnd shifts the identified task to the end of the list,
// marking it as most recently viewed.
func (r *Registry) MoveToEnd(chatID int64, id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[chatID]
	if !ok {
		return false
	}
	for i, t := range u.tasks {
		if t.ID == id {
			u.tasks = append(append(u.tasks[:i:i], u.tasks[i+1:]...), t)
			return true
		}
	}
	return false
}

// Active returns copies of the chat's incomplete tasks in list order.
func (r *Registry) Active(chatID int64) []Task {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[chatID]
	if !ok {
		return nil
	}
	var out []Task
	for _, t := range u.tasks {
		if !t.Completed {
			out = append(out, *t)
		}
	}
	return out
}

// Completed returns copies of the chat's completed tasks in list order.
func (r *Registry) Completed(chatID int64) []Task {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[chatID]
	if !ok {
		return nil
	}
	var out []Task
	for _, t := range u.tasks {
		if t.Completed {
			out = append(out, *t)
		}
	}
	return out
}

// AllCompleted reports whether every task of the chat is completed.
// It is vacuously true for an unknown chat or an empty list.
func (r *Registry) AllCompleted(chatID int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[chatID]
	if !ok {
		return true
	}
	for _, t := range u.tasks {
		if !t.Completed {
			return false
		}
	}
	return true
}

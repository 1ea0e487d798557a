package categories

import "sync"

// DefaultSet returns the categories every fresh registry starts with.
func DefaultSet() []string {
	return []string{"Разработка", "Аналитика", "Тестирование"}
}

// Registry is the shared, append-only list of task categories.
// A category added by any chat becomes selectable by all chats.
// Appends are permissive: duplicates are kept as typed.
type Registry struct {
	mu    sync.RWMutex
	names []string
}

// NewRegistry seeds a registry with the provided names, or the default set when empty.
func NewRegistry(seed ...string) *Registry {
	if len(seed) == 0 {
		seed = DefaultSet()
	}
	names := make([]string, len(seed))
	copy(names, seed)
	return &Registry{names: names}
}

// Add appends a category name.
func (r *Registry) Add(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.names = append(r.names, name)
}

// List returns a snapshot of the category names in insertion order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of registered categories.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.names)
}

package command

import (
	"sort"
	"sync"
)

// Registry looks commands up by id or by name.
type Registry struct {
	mu     sync.RWMutex
	byID   map[ID]*Command
	byName map[string]*Command
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:   make(map[ID]*Command),
		byName: make(map[string]*Command),
	}
}

// Register adds or replaces a command under both its id and its name.
func (r *Registry) Register(cmd *Command) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[cmd.ID] = cmd
	r.byName[cmd.Name] = cmd
}

// ByID looks a command up by id.
func (r *Registry) ByID(id ID) (*Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byID[id]
	return c, ok
}

// ByName looks a command up by name.
func (r *Registry) ByName(name string) (*Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byName[name]
	return c, ok
}

// Public returns every public command (exposed in the `:` prompt),
// sorted by name.
func (r *Registry) Public() []*Command {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Command, 0, len(r.byName))
	for _, c := range r.byName {
		if c.IsPublic {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

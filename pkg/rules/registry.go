package rules

import (
	"fmt"
	"sync"
)

// Registry maps filter names to routines, so rule pairs can reference
// filters by name instead of supplying the routine inline. A Registry is
// safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	filters map[string]Filter
}

// NewRegistry returns an empty registry. See the filters package for a
// registry pre-seeded with the built-in filters.
func NewRegistry() *Registry {
	return &Registry{filters: make(map[string]Filter)}
}

// Register adds a named filter, replacing any existing entry under the name.
func (r *Registry) Register(name string, fn Filter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.filters[name] = fn
}

// Resolve returns the filter registered under name. An unknown name is a
// configuration error wrapping ErrUnknownFilter.
func (r *Registry) Resolve(name string) (Filter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.filters[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
	}
	return fn, nil
}

package runner

import (
	"fmt"
	"slices"
	"sync"
)

// Registry maps solution names to Solutions. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	solutions map[string]Solution
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{solutions: make(map[string]Solution)}
}

// Register adds s. Names are unique.
func (r *Registry) Register(s Solution) error {
	if s.Name == "" || s.Generate == nil {
		return fmt.Errorf("%w: name %q, generator set: %t", ErrInvalidSolution, s.Name, s.Generate != nil)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.solutions[s.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateSolution, s.Name)
	}
	r.solutions[s.Name] = s
	return nil
}

// MustRegister is Register that panics on error, for static tables.
func (r *Registry) MustRegister(solutions ...Solution) {
	for _, s := range solutions {
		if err := r.Register(s); err != nil {
			panic(err)
		}
	}
}

// Lookup returns the Solution registered under name.
func (r *Registry) Lookup(name string) (Solution, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.solutions[name]
	if !ok {
		return Solution{}, fmt.Errorf("%w: %q", ErrUnknownSolution, name)
	}
	return s, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.solutions))
	for name := range r.solutions {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

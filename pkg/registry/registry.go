// Package registry provides case registration, lookup, and
// config-driven selection for a run.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"digital.vasic.assumptions/pkg/testcase"
)

// Registry defines the interface for managing cases.
type Registry interface {
	// Register adds a case.
	Register(c *testcase.Case) error

	// Get retrieves a case by ID.
	Get(id testcase.ID) (*testcase.Case, error)

	// List returns all registered cases sorted by ID.
	List() []*testcase.Case

	// ListByTag returns cases carrying the given tag.
	ListByTag(tag string) []*testcase.Case

	// Select returns the cases a config chooses: the explicit
	// ID list (all of which must exist), narrowed by tags.
	Select(cfg *testcase.Config) ([]*testcase.Case, error)

	// Clear removes all cases.
	Clear()

	// Count returns the number of registered cases.
	Count() int
}

// DefaultRegistry is the standard Registry implementation.
// It is safe for concurrent use.
type DefaultRegistry struct {
	mu    sync.RWMutex
	cases map[testcase.ID]*testcase.Case
}

// NewRegistry creates a new, empty DefaultRegistry.
func NewRegistry() *DefaultRegistry {
	return &DefaultRegistry{
		cases: make(map[testcase.ID]*testcase.Case),
	}
}

// Default is the package-level default registry instance.
var Default = NewRegistry()

// Register adds a case to the registry. Returns an error if the
// case is malformed or its ID is already taken.
func (r *DefaultRegistry) Register(c *testcase.Case) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid case: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.cases[c.ID]; exists {
		return fmt.Errorf(
			"case already registered: %s", c.ID,
		)
	}

	r.cases[c.ID] = c
	return nil
}

// Get retrieves a case by ID.
func (r *DefaultRegistry) Get(
	id testcase.ID,
) (*testcase.Case, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, exists := r.cases[id]
	if !exists {
		return nil, fmt.Errorf("case not found: %s", id)
	}
	return c, nil
}

// List returns all registered cases sorted by ID.
func (r *DefaultRegistry) List() []*testcase.Case {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*testcase.Case, 0, len(r.cases))
	for _, c := range r.cases {
		out = append(out, c)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

// ListByTag returns cases carrying the given tag, sorted by ID.
func (r *DefaultRegistry) ListByTag(
	tag string,
) []*testcase.Case {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*testcase.Case
	for _, c := range r.cases {
		if c.HasTag(tag) {
			out = append(out, c)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

// Select resolves the config's case selection. When the config
// names explicit IDs, every one of them must be registered; the
// tag filter then narrows the selection further.
func (r *DefaultRegistry) Select(
	cfg *testcase.Config,
) ([]*testcase.Case, error) {
	var selected []*testcase.Case

	if len(cfg.Cases) > 0 {
		for _, id := range cfg.Cases {
			c, err := r.Get(id)
			if err != nil {
				return nil, fmt.Errorf(
					"config selects unknown case: %w", err,
				)
			}
			selected = append(selected, c)
		}
	} else {
		selected = r.List()
	}

	if len(cfg.Tags) == 0 {
		return selected, nil
	}

	var tagged []*testcase.Case
	for _, c := range selected {
		for _, tag := range cfg.Tags {
			if c.HasTag(tag) {
				tagged = append(tagged, c)
				break
			}
		}
	}
	return tagged, nil
}

// Clear removes all cases.
func (r *DefaultRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cases = make(map[testcase.ID]*testcase.Case)
}

// Count returns the number of registered cases.
func (r *DefaultRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.cases)
}

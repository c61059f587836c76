package domain

import (
	"fmt"
	"sort"
	"sync"

	"taskrouter/internal/logging"
)

// Registry is the in-memory store mapping domain IDs to their specifications.
// It is constructed explicitly during application startup and passed by
// reference to consumers; there is no package-level instance.
//
// Duplicate registration is last-write-wins. The overwrite is logged at
// warning level so colliding domain files are visible in the audit trail
// instead of silently shadowing each other.
type Registry struct {
	mu    sync.RWMutex
	specs map[string]*DomainSpec
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{specs: make(map[string]*DomainSpec)}
}

// Register installs a spec. Returns whether an existing entry was replaced.
func (r *Registry) Register(spec *DomainSpec) (replaced bool, err error) {
	if spec == nil {
		return false, fmt.Errorf("domain: cannot register nil spec")
	}
	if err := spec.Validate(); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, replaced = r.specs[spec.ID]
	if replaced {
		logging.Get(logging.CategoryRegistry).Warn("Domain %q already registered, overwriting previous spec", spec.ID)
	}
	r.specs[spec.ID] = spec.Clone()
	return replaced, nil
}

// Get retrieves a copy of the spec for a domain ID.
func (r *Registry) Get(id string) (*DomainSpec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	spec, ok := r.specs[id]
	if !ok {
		return nil, false
	}
	return spec.Clone(), true
}

// Has reports whether a domain ID is registered.
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.specs[id]
	return ok
}

// IDs returns a sorted list of registered domain identifiers.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.specs))
	for id := range r.specs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of registered domains.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.specs)
}

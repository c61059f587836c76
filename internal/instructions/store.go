// Package instructions maps domain identifiers to their prompt instruction
// text. The mapping mirrors the domain registry: built-in instructions seeded
// from a static table, overlaid by files discovered in the workspace
// instructions directory, keyed by file stem (the stem IS the domain ID by
// convention).
package instructions

import (
	"sort"
	"sync"

	"taskrouter/internal/logging"
)

// DefaultInstruction is returned for any domain without a registered
// instruction. Unknown domains are deliberately not an error; lookups never
// fail.
const DefaultInstruction = "Follow the standard operating procedure for this domain and answer as helpfully and precisely as possible."

// Store is the in-memory instruction mapping. Populated during the discovery
// pass and read-only afterwards from the callers' point of view.
type Store struct {
	mu       sync.RWMutex
	byDomain map[string]string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{byDomain: make(map[string]string)}
}

// Set installs the instruction text for a domain ID. Returns whether an
// existing entry was replaced; the overwrite is logged at warning level.
func (s *Store) Set(id, text string) (replaced bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, replaced = s.byDomain[id]
	if replaced {
		logging.Get(logging.CategoryInstructions).Warn("Instruction for %q already registered, overwriting", id)
	}
	s.byDomain[id] = text
	return replaced
}

// For returns the instruction for a domain ID, or DefaultInstruction when the
// ID is unknown.
func (s *Store) For(id string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if text, ok := s.byDomain[id]; ok {
		return text
	}
	return DefaultInstruction
}

// Known reports whether a domain ID has a registered instruction.
func (s *Store) Known(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.byDomain[id]
	return ok
}

// IDs returns the sorted domain IDs with registered instructions.
func (s *Store) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.byDomain))
	for id := range s.byDomain {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of registered instructions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byDomain)
}

// Package domain implements domain configuration discovery and the in-memory
// domain registry. A domain is a named specialization profile (task category)
// with an associated specification and instruction text. Specs come from two
// sources: built-in providers registered statically (internal/domain/builtin)
// and YAML files discovered in the workspace domains directory.
package domain

import (
	"fmt"
	"strings"
)

// DomainSpec describes a single domain. It is created once at discovery time
// and treated as immutable after registration.
type DomainSpec struct {
	ID          string            `yaml:"id" json:"id"`
	DisplayName string            `yaml:"display_name" json:"display_name,omitempty"`
	Description string            `yaml:"description" json:"description,omitempty"`
	Model       string            `yaml:"model" json:"model,omitempty"`
	MaxTokens   int               `yaml:"max_tokens" json:"max_tokens,omitempty"`
	Temperature float64           `yaml:"temperature" json:"temperature,omitempty"`
	Tools       []string          `yaml:"tools" json:"tools,omitempty"`
	Metadata    map[string]string `yaml:"metadata" json:"metadata,omitempty"`
}

// Validate checks the spec for structural problems.
func (s *DomainSpec) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("domain: id is required")
	}
	if strings.TrimSpace(s.ID) != s.ID {
		return fmt.Errorf("domain: id %q has surrounding whitespace", s.ID)
	}
	for _, r := range s.ID {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			continue
		}
		return fmt.Errorf("domain: id %q contains invalid character %q (want lowercase, digits, - or _)", s.ID, r)
	}
	if s.MaxTokens < 0 {
		return fmt.Errorf("domain: %s: max_tokens must be >= 0, got %d", s.ID, s.MaxTokens)
	}
	if s.Temperature < 0 || s.Temperature > 2 {
		return fmt.Errorf("domain: %s: temperature must be in [0, 2], got %g", s.ID, s.Temperature)
	}
	return nil
}

// Clone returns a deep copy of the spec. Registry reads hand out clones so
// callers cannot mutate registered specs.
func (s *DomainSpec) Clone() *DomainSpec {
	if s == nil {
		return nil
	}
	out := *s
	if s.Tools != nil {
		out.Tools = append([]string(nil), s.Tools...)
	}
	if s.Metadata != nil {
		out.Metadata = make(map[string]string, len(s.Metadata))
		for k, v := range s.Metadata {
			out.Metadata[k] = v
		}
	}
	return &out
}

// Provider is the statically-checkable contract a built-in domain implements.
// Providers are enumerated via a fixed registration list rather than runtime
// reflection; the loader invokes Spec once per discovery pass.
type Provider interface {
	// DomainID reports the identifier the provider will register under.
	DomainID() string
	// Spec constructs the domain specification. Called once per discovery pass.
	Spec() (*DomainSpec, error)
}

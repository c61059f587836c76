// Package builtin holds the built-in domain providers. Providers are
// enumerated here in a fixed list; adding a domain means adding a type that
// implements domain.Provider and appending it below.
package builtin

import "taskrouter/internal/domain"

// Providers returns the static registration list of built-in domains.
func Providers() []domain.Provider {
	return []domain.Provider{
		generalProvider{},
		codingProvider{},
		researchProvider{},
	}
}

// coreTools are available to every built-in domain.
var coreTools = []string{
	"read_file",
	"search_code",
	"list_files",
	"glob",
	"grep",
}

type generalProvider struct{}

func (generalProvider) DomainID() string { return "general" }

func (generalProvider) Spec() (*domain.DomainSpec, error) {
	return &domain.DomainSpec{
		ID:          "general",
		DisplayName: "General",
		Description: "Fallback domain for requests that fit no specialization.",
		MaxTokens:   8192,
		Temperature: 0.7,
		Tools:       append([]string(nil), coreTools...),
	}, nil
}

type codingProvider struct{}

func (codingProvider) DomainID() string { return "coding" }

func (codingProvider) Spec() (*domain.DomainSpec, error) {
	tools := append(append([]string(nil), coreTools...),
		"write_file",
		"edit_file",
		"run_build",
		"run_tests",
		"git_operation",
	)
	return &domain.DomainSpec{
		ID:          "coding",
		DisplayName: "Coding",
		Description: "Code writing, modification, and build/test loops.",
		MaxTokens:   16384,
		Temperature: 0.2,
		Tools:       tools,
	}, nil
}

type researchProvider struct{}

func (researchProvider) DomainID() string { return "research" }

func (researchProvider) Spec() (*domain.DomainSpec, error) {
	tools := append(append([]string(nil), coreTools...),
		"web_search",
		"web_fetch",
		"write_file",
	)
	return &domain.DomainSpec{
		ID:          "research",
		DisplayName: "Research",
		Description: "Deep research and documentation tasks.",
		MaxTokens:   16384,
		Temperature: 0.5,
		Tools:       tools,
	}, nil
}

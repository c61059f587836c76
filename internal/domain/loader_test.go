package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goodDomain = `
domain:
  id: coding
  model: gemini-2.0-flash
  max_tokens: 8192
  tools: [read_file, write_file]
`

func TestLoader_LoadDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "coding.yaml", goodDomain)
	writeFile(t, dir, "broken.yaml", "domain: [not a mapping")
	writeFile(t, dir, "helper.yaml", "anchors:\n  shared: true\n")
	writeFile(t, dir, "research.yaml", "domain:\n  id: research\n")

	reg := NewRegistry()
	registered, err := NewLoader().LoadDirectory(reg, dir)
	require.NoError(t, err, "a malformed file must not abort the pass")

	// Exactly the well-formed factory files register, in discovery order.
	assert.Equal(t, []string{"coding", "research"}, registered)
	assert.Equal(t, 2, reg.Len())
	assert.False(t, reg.Has("helper"), "a file with no domain document is a skip, not a registration")
}

func TestLoader_IDDefaultsToStem(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "triage.yaml", "domain:\n  description: stem-named domain\n")

	reg := NewRegistry()
	registered, err := NewLoader().LoadDirectory(reg, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"triage"}, registered)
}

func TestLoader_InvalidSpecIsIsolated(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.yaml", "domain:\n  id: 'Has Spaces'\n")
	writeFile(t, dir, "good.yaml", "domain:\n  id: good\n")

	reg := NewRegistry()
	registered, err := NewLoader().LoadDirectory(reg, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"good"}, registered)
}

func TestLoader_RerunIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "coding.yaml", goodDomain)

	reg := NewRegistry()
	loader := NewLoader()

	first, err := loader.LoadDirectory(reg, dir)
	require.NoError(t, err)
	second, err := loader.LoadDirectory(reg, dir)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, reg.Len())
	spec, _ := reg.Get("coding")
	assert.Equal(t, "gemini-2.0-flash", spec.Model)
}

func TestLoader_DefaultsOverlay(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "defaults.yaml", "domain:\n  model: default-model\n  max_tokens: 4096\n  metadata:\n    team: platform\n")
	writeFile(t, dir, "custom.yaml", "domain:\n  id: custom\n  model: own-model\n")
	writeFile(t, dir, "plain.yaml", "domain:\n  id: plain\n")

	reg := NewRegistry()
	_, err := NewLoader().LoadDirectory(reg, dir)
	require.NoError(t, err)

	custom, _ := reg.Get("custom")
	assert.Equal(t, "own-model", custom.Model, "explicit values win over defaults")
	assert.Equal(t, 4096, custom.MaxTokens)

	plain, _ := reg.Get("plain")
	assert.Equal(t, "default-model", plain.Model)
	assert.Equal(t, "platform", plain.Metadata["team"])
}

type staticProvider struct {
	id   string
	spec *DomainSpec
	err  error
}

func (p staticProvider) DomainID() string           { return p.id }
func (p staticProvider) Spec() (*DomainSpec, error) { return p.spec, p.err }

type panickyProvider struct{}

func (panickyProvider) DomainID() string           { return "panicky" }
func (panickyProvider) Spec() (*DomainSpec, error) { panic("boom") }

func TestLoader_LoadProviders(t *testing.T) {
	reg := NewRegistry()
	registered, err := NewLoader().LoadProviders(reg, []Provider{
		staticProvider{id: "zeta", spec: &DomainSpec{ID: "zeta"}},
		staticProvider{id: "alpha", spec: &DomainSpec{ID: "alpha"}},
		staticProvider{id: "failing", err: errors.New("factory blew up")},
		panickyProvider{},
		staticProvider{id: "empty"},
	})
	require.NoError(t, err)

	// Sorted by ID, failures and empty results isolated.
	assert.Equal(t, []string{"alpha", "zeta"}, registered)
	assert.Equal(t, 2, reg.Len())
}

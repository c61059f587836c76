package instructions

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestLoadDirectory_MarkdownAndYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "coding.md", "# Coding\n\nBe careful.\n")
	writeFile(t, dir, "research.yaml", "instruction: Verify every claim.\n")

	store := NewStore()
	loaded, err := LoadDirectory(store, dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"coding", "research"}, loaded)
	assert.Equal(t, "# Coding\n\nBe careful.", store.For("coding"))
	assert.Equal(t, "Verify every claim.", store.For("research"))
}

func TestLoadDirectory_Exclusions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "README.md", "about this directory")
	writeFile(t, dir, "_draft.md", "not ready")
	writeFile(t, dir, "live.md", "ready")

	store := NewStore()
	loaded, err := LoadDirectory(store, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"live"}, loaded)
}

func TestLoadDirectory_PerFileIsolation(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.yaml", "instruction: [unclosed")
	writeFile(t, dir, "nokey.yaml", "something_else: text\n")
	writeFile(t, dir, "good.yaml", "instruction: works\n")

	store := NewStore()
	loaded, err := LoadDirectory(store, dir)
	require.NoError(t, err, "malformed files must not abort the pass")

	assert.Equal(t, []string{"good"}, loaded)
	assert.False(t, store.Known("nokey"), "a YAML file without the instruction key is a skip")
	assert.False(t, store.Known("broken"))
}

func TestLoadDirectory_OverlaysBuiltins(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "coding.md", "workspace override")

	store := NewStore()
	Seed(store)
	_, err := LoadDirectory(store, dir)
	require.NoError(t, err)

	assert.Equal(t, "workspace override", store.For("coding"), "workspace files win over builtins")
}

func TestLoadDirectory_MissingDirIsFatal(t *testing.T) {
	store := NewStore()
	_, err := LoadDirectory(store, filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

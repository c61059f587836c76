package domain

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

func TestDiscoverCandidates_SortedStems(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "zeta.yaml", "")
	writeFile(t, dir, "alpha.yaml", "")
	writeFile(t, dir, "mid.yml", "")

	candidates, err := DiscoverCandidates(dir)
	require.NoError(t, err)

	stems := make([]string, len(candidates))
	for i, c := range candidates {
		stems[i] = c.Stem
	}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, stems)
}

func TestDiscoverCandidates_Exclusions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.yaml", "")
	writeFile(t, dir, "_private.yaml", "")
	writeFile(t, dir, "defaults.yaml", "")
	writeFile(t, dir, "defaults.yml", "")
	writeFile(t, dir, "notes.txt", "")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0755))
	writeFile(t, filepath.Join(dir, "nested"), "skipped.yaml", "")

	candidates, err := DiscoverCandidates(dir)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "good", candidates[0].Stem)
}

func TestDiscoverCandidates_MissingDirIsFatal(t *testing.T) {
	_, err := DiscoverCandidates(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read domains directory")
}

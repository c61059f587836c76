package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "taskrouter", cfg.Name)
	assert.Equal(t, filepath.Join(".taskrouter", "domains"), cfg.Domains.Dir)
	assert.Equal(t, []string{"simple", "complex"}, cfg.Routing.Routes)
}

func TestLoad_FromFile(t *testing.T) {
	ws := t.TempDir()
	dir := filepath.Join(ws, ".taskrouter")
	require.NoError(t, os.MkdirAll(dir, 0755))
	content := `{
  "name": "custom",
  "domains": {"dir": "conf/domains", "instructions_dir": "conf/instructions", "watch": true},
  "routing": {"routes": ["fast", "slow"]}
}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(content), 0644))

	cfg, err := Load(ws)
	require.NoError(t, err)
	assert.Equal(t, "custom", cfg.Name)
	assert.True(t, cfg.Domains.Watch)
	assert.Equal(t, []string{"fast", "slow"}, cfg.Routing.Routes)
	assert.Equal(t, filepath.Join(ws, "conf", "domains"), cfg.DomainsPath(ws))
}

func TestLoad_MalformedFileIsError(t *testing.T) {
	ws := t.TempDir()
	dir := filepath.Join(ws, ".taskrouter")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte("{not json"), 0644))

	_, err := Load(ws)
	require.Error(t, err)
}

func TestLoad_EnvOverridesAPIKey(t *testing.T) {
	t.Setenv("TASKROUTER_API_KEY", "from-env")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.LLM.APIKey)
}

func TestSaveRoundTrip(t *testing.T) {
	ws := t.TempDir()
	cfg := Default()
	cfg.Name = "saved"
	require.NoError(t, cfg.Save(ws))

	loaded, err := Load(ws)
	require.NoError(t, err)
	assert.Equal(t, "saved", loaded.Name)
}

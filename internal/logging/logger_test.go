package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initWorkspace(t *testing.T, cfg string) string {
	t.Helper()
	ws := t.TempDir()
	dir := filepath.Join(ws, ".taskrouter")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(cfg), 0644))
	require.NoError(t, Initialize(ws))
	return ws
}

// readCategoryLog returns the concatenated log output for one category.
func readCategoryLog(t *testing.T, ws string, cat Category) string {
	t.Helper()
	entries, err := os.ReadDir(filepath.Join(ws, ".taskrouter", "logs"))
	require.NoError(t, err)

	var out strings.Builder
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), "_"+string(cat)+".log") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(ws, ".taskrouter", "logs", entry.Name()))
		require.NoError(t, err)
		out.Write(data)
	}
	return out.String()
}

func TestHelpersWriteToCategoryFiles(t *testing.T) {
	ws := initWorkspace(t, `{"logging":{"debug_mode":true,"level":"debug"}}`)
	defer Close()

	Boot("boot line %d", 1)
	Registry("registry line")
	Routing("routing line")
	Get(CategoryBoot).StructuredLog("info", "structured line", map[string]interface{}{"domains": 3})

	timer := StartTimer(CategoryBoot, "pass")
	timer.StopWithInfo()

	Close()

	boot := readCategoryLog(t, ws, CategoryBoot)
	assert.Contains(t, boot, "boot line 1")
	assert.Contains(t, boot, "structured line")
	assert.Contains(t, boot, "pass completed in")
	assert.Contains(t, readCategoryLog(t, ws, CategoryRegistry), "registry line")
	assert.Contains(t, readCategoryLog(t, ws, CategoryRouting), "routing line")
}

func TestGetIsNoOpWithoutDebugMode(t *testing.T) {
	ws := initWorkspace(t, `{"logging":{"debug_mode":false}}`)
	defer Close()

	Boot("should go nowhere")

	_, err := os.Stat(filepath.Join(ws, ".taskrouter", "logs"))
	assert.True(t, os.IsNotExist(err), "production mode must not create the logs directory")
}

package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWatcher_TriggersReloadAfterDebounce(t *testing.T) {
	dir := t.TempDir()

	var reloads atomic.Int32
	reloaded := make(chan struct{}, 8)
	w, err := New([]string{dir}, func(context.Context) {
		reloads.Add(1)
		reloaded <- struct{}{}
	})
	require.NoError(t, err)
	w.debounceDur = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "coding.yaml"), []byte("domain:\n  id: coding\n"), 0644))

	select {
	case <-reloaded:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher never triggered a reload")
	}

	stats := w.Stats()
	assert.GreaterOrEqual(t, stats.FilesCreated+stats.FilesModified, 1)
	assert.GreaterOrEqual(t, stats.ReloadsTriggered, 1)
}

func TestWatcher_IgnoresIrrelevantFiles(t *testing.T) {
	dir := t.TempDir()

	reloaded := make(chan struct{}, 8)
	w, err := New([]string{dir}, func(context.Context) {
		reloaded <- struct{}{}
	})
	require.NoError(t, err)
	w.debounceDur = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("scratch"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "_draft.yaml"), []byte("wip"), 0644))

	select {
	case <-reloaded:
		t.Fatal("watcher reloaded for files discovery would never consider")
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	w, err := New([]string{t.TempDir()}, nil)
	require.NoError(t, err)

	require.NoError(t, w.Start(context.Background()))
	w.Stop()
	w.Stop() // Second stop must not panic or deadlock.
}

// Package watch re-runs the discovery pass when domain or instruction files
// change on disk. Events are debounced so a burst of editor saves triggers a
// single reload.
package watch

import (
	"context"
	"strings"
	"sync"
	"time"

	"taskrouter/internal/files"
	"taskrouter/internal/logging"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors the configured directories and invokes the reload
// callback after changes settle.
type Watcher struct {
	mu          sync.RWMutex
	watcher     *fsnotify.Watcher
	dirs        []string
	reload      func(context.Context)
	debounceDur time.Duration
	pending     map[string]time.Time
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool

	stats Stats
}

// Stats tracks watcher activity for debugging and tests.
type Stats struct {
	FilesCreated     int
	FilesModified    int
	FilesDeleted     int
	ReloadsTriggered int
	Errors           int
	LastEventTime    time.Time
	LastEventPath    string
}

// New creates a Watcher over the given directories. reload is called from the
// watcher goroutine after the debounce window closes.
func New(dirs []string, reload func(context.Context)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		watcher:     fsw,
		dirs:        append([]string(nil), dirs...),
		reload:      reload,
		debounceDur: 500 * time.Millisecond, // Debounce rapid saves
		pending:     make(map[string]time.Time),
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}, nil
}

// Start begins watching. Non-blocking; the event loop runs in a goroutine.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil // Already running
	}
	w.running = true
	w.mu.Unlock()

	log := logging.Get(logging.CategoryWatch)
	for _, dir := range w.dirs {
		if err := w.watcher.Add(dir); err != nil {
			// Directory may not exist yet; keep watching the rest.
			log.Warn("Could not watch %s: %v", dir, err)
			continue
		}
		log.Info("Watching directory: %s", dir)
	}

	go w.run(ctx)
	return nil
}

// Stop stops the watcher and waits for the event loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		logging.Get(logging.CategoryWatch).Error("Error closing watcher: %v", err)
	}
	logging.Get(logging.CategoryWatch).Info("Watcher stopped")
}

// Stats returns a copy of the activity counters.
func (w *Watcher) Stats() Stats {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.stats
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	log := logging.Get(logging.CategoryWatch)
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("Context cancelled")
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Error("Watch error: %v", err)
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()

		case <-ticker.C:
			w.flushSettled(ctx)
		}
	}
}

// handleEvent records a relevant filesystem event for debounced processing.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !files.IsYAML(event.Name) && !files.IsMarkdown(event.Name) {
		return
	}
	// Private and editor scratch files never affect discovery.
	if strings.HasPrefix(files.Stem(event.Name), "_") {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	switch {
	case event.Op&fsnotify.Create != 0:
		w.stats.FilesCreated++
	case event.Op&fsnotify.Write != 0:
		w.stats.FilesModified++
	case event.Op&fsnotify.Remove != 0, event.Op&fsnotify.Rename != 0:
		w.stats.FilesDeleted++
	default:
		return // Ignore chmod, etc.
	}

	w.stats.LastEventTime = time.Now()
	w.stats.LastEventPath = event.Name
	w.pending[event.Name] = time.Now()
}

// flushSettled triggers one reload if any recorded event has settled past
// the debounce window.
func (w *Watcher) flushSettled(ctx context.Context) {
	w.mu.Lock()
	now := time.Now()
	settled := false
	for path, at := range w.pending {
		if now.Sub(at) >= w.debounceDur {
			delete(w.pending, path)
			settled = true
		}
	}
	if settled {
		w.stats.ReloadsTriggered++
	}
	w.mu.Unlock()

	if settled && w.reload != nil {
		logging.Get(logging.CategoryWatch).Info("Changes settled, re-running discovery")
		w.reload(ctx)
	}
}

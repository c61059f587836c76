// Package usage records token consumption per model, provider, domain,
// operation, and session, with debounced JSON persistence under .taskrouter/.
package usage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"taskrouter/internal/files"
	"taskrouter/internal/logging"

	"github.com/google/uuid"
)

const saveDebounce = 5 * time.Second

// Tracker manages token usage recording and persistence.
type Tracker struct {
	mu       sync.Mutex
	data     Data
	filePath string
	dirty    bool
}

// NewTracker creates a tracker persisting under workspacePath/.taskrouter/usage.json.
func NewTracker(workspacePath string) (*Tracker, error) {
	dir := filepath.Join(workspacePath, ".taskrouter")
	if err := files.EnsureDir(dir); err != nil {
		return nil, err
	}

	t := &Tracker{
		filePath: filepath.Join(dir, "usage.json"),
		data: Data{
			Version: "1.0",
			Aggregate: AggregatedStats{
				ByProvider:  make(map[string]TokenCounts),
				ByModel:     make(map[string]TokenCounts),
				ByDomain:    make(map[string]TokenCounts),
				ByOperation: make(map[string]TokenCounts),
				BySession:   make(map[string]TokenCounts),
			},
		},
	}

	if err := t.Load(); err != nil {
		logging.Get(logging.CategoryUsage).Warn("Could not load usage data, starting empty: %v", err)
	}

	return t, nil
}

// NewSessionID returns a fresh session identifier for usage attribution.
func NewSessionID() string {
	return uuid.NewString()
}

// Load reads the usage data from disk. A missing file is not an error.
func (t *Tracker) Load() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	data, err := os.ReadFile(t.filePath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, &t.data); err != nil {
		return fmt.Errorf("usage: corrupt usage file %s: %w", t.filePath, err)
	}

	// Ensure maps are initialized if file was empty/partial
	agg := &t.data.Aggregate
	if agg.ByProvider == nil {
		agg.ByProvider = make(map[string]TokenCounts)
	}
	if agg.ByModel == nil {
		agg.ByModel = make(map[string]TokenCounts)
	}
	if agg.ByDomain == nil {
		agg.ByDomain = make(map[string]TokenCounts)
	}
	if agg.ByOperation == nil {
		agg.ByOperation = make(map[string]TokenCounts)
	}
	if agg.BySession == nil {
		agg.BySession = make(map[string]TokenCounts)
	}

	return nil
}

// Save writes the usage data to disk.
func (t *Tracker) Save() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.saveLocked()
}

func (t *Tracker) saveLocked() error {
	data, err := json.MarshalIndent(t.data, "", "  ")
	if err != nil {
		return err
	}
	return files.WriteFileAtomic(t.filePath, data, 0644)
}

// Track records a new usage event and schedules a debounced save.
func (t *Tracker) Track(ctx context.Context, ev Event) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if ev.Domain == "" {
		ev.Domain = DomainFromContext(ctx)
	}
	if ev.SessionID == "" {
		ev.SessionID = SessionFromContext(ctx)
	}

	agg := &t.data.Aggregate
	agg.Total.Add(ev.InputTokens, ev.OutputTokens)
	addToMap(agg.ByProvider, ev.Provider, ev.InputTokens, ev.OutputTokens)
	addToMap(agg.ByModel, ev.Model, ev.InputTokens, ev.OutputTokens)
	addToMap(agg.ByDomain, ev.Domain, ev.InputTokens, ev.OutputTokens)
	addToMap(agg.ByOperation, ev.Operation, ev.InputTokens, ev.OutputTokens)
	addToMap(agg.BySession, ev.SessionID, ev.InputTokens, ev.OutputTokens)

	logging.Get(logging.CategoryUsage).Debug("Tracked %d in / %d out tokens (domain=%s op=%s)",
		ev.InputTokens, ev.OutputTokens, ev.Domain, ev.Operation)

	if !t.dirty {
		t.dirty = true
		time.AfterFunc(saveDebounce, func() {
			if err := t.Save(); err != nil {
				logging.Get(logging.CategoryUsage).Error("Autosave failed: %v", err)
			}
			t.mu.Lock()
			t.dirty = false
			t.mu.Unlock()
		})
	}
}

// Stats returns a copy of the aggregated stats.
func (t *Tracker) Stats() AggregatedStats {
	t.mu.Lock()
	defer t.mu.Unlock()
	stats := t.data.Aggregate
	stats.ByProvider = copyTokenCountsMap(stats.ByProvider)
	stats.ByModel = copyTokenCountsMap(stats.ByModel)
	stats.ByDomain = copyTokenCountsMap(stats.ByDomain)
	stats.ByOperation = copyTokenCountsMap(stats.ByOperation)
	stats.BySession = copyTokenCountsMap(stats.BySession)
	return stats
}

func copyTokenCountsMap(src map[string]TokenCounts) map[string]TokenCounts {
	if src == nil {
		return nil
	}
	dst := make(map[string]TokenCounts, len(src))
	for key, counts := range src {
		dst[key] = counts
	}
	return dst
}

func addToMap(m map[string]TokenCounts, key string, input, output int) {
	if key == "" {
		key = "unknown"
	}
	entry := m[key]
	entry.Add(input, output)
	m[key] = entry
}

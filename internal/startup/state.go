// Package startup tracks process initialization state. The state record is
// shared between the background initialization goroutine and status-reporting
// callers, so every read and write goes through the mutex and readers only
// ever see point-in-time copies.
package startup

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Status is the coarse lifecycle phase of the process.
type Status string

const (
	StatusIdle         Status = "idle"
	StatusInitializing Status = "initializing"
	StatusReady        Status = "ready"
	StatusError        Status = "error"
)

// Result is the outcome of one initialization/housekeeping run.
type Result struct {
	Success    bool
	Err        error
	Summary    string
	ResetCount int
}

// Snapshot is a point-in-time copy of the state record. It is a value, never
// a live view; callers may retain it freely.
type Snapshot struct {
	Status     Status    `json:"status"`
	Completed  bool      `json:"completed"`
	Success    bool      `json:"success"`
	LastError  string    `json:"last_error,omitempty"`
	Summary    string    `json:"summary,omitempty"`
	ResetCount int       `json:"reset_count"`
	RunID      string    `json:"run_id,omitempty"`
	StartedAt  time.Time `json:"started_at,omitempty"`
	FinishedAt time.Time `json:"finished_at,omitempty"`
}

// State is the shared startup state record.
type State struct {
	mu         sync.Mutex
	status     Status
	completed  bool
	success    bool
	lastError  string
	summary    string
	resetCount int
	runID      string
	startedAt  time.Time
	finishedAt time.Time
}

// NewState returns an idle state record.
func NewState() *State {
	return &State{status: StatusIdle}
}

// MarkInitializing resets every field and moves the record to
// StatusInitializing. Returns the run ID assigned to this pass.
func (s *State) MarkInitializing() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = StatusInitializing
	s.completed = false
	s.success = false
	s.lastError = ""
	s.summary = ""
	s.resetCount = 0
	s.runID = uuid.NewString()
	s.startedAt = time.Now()
	s.finishedAt = time.Time{}
	return s.runID
}

// RecordResult records the outcome of a completed run. The status becomes
// StatusReady on success and StatusError otherwise.
func (s *State) RecordResult(res Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.completed = true
	s.success = res.Success
	s.summary = res.Summary
	s.resetCount = res.ResetCount
	s.finishedAt = time.Now()

	if res.Err != nil {
		s.lastError = res.Err.Error()
	} else {
		s.lastError = ""
	}

	if res.Success {
		s.status = StatusReady
	} else {
		s.status = StatusError
	}
}

// Snapshot returns a copy of the current state.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Status:     s.status,
		Completed:  s.completed,
		Success:    s.success,
		LastError:  s.lastError,
		Summary:    s.summary,
		ResetCount: s.resetCount,
		RunID:      s.runID,
		StartedAt:  s.startedAt,
		FinishedAt: s.finishedAt,
	}
}

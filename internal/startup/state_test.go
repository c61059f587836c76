package startup

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_MarkInitializing(t *testing.T) {
	s := NewState()

	runID := s.MarkInitializing()
	require.NotEmpty(t, runID)

	snap := s.Snapshot()
	assert.Equal(t, StatusInitializing, snap.Status)
	assert.False(t, snap.Completed)
	assert.False(t, snap.Success)
	assert.Empty(t, snap.LastError)
	assert.Equal(t, runID, snap.RunID)
	assert.False(t, snap.StartedAt.IsZero())
	assert.True(t, snap.FinishedAt.IsZero())
}

func TestState_RecordSuccess(t *testing.T) {
	s := NewState()
	s.MarkInitializing()
	s.RecordResult(Result{Success: true, Summary: "2 tasks", ResetCount: 3})

	snap := s.Snapshot()
	assert.Equal(t, StatusReady, snap.Status)
	assert.True(t, snap.Completed)
	assert.True(t, snap.Success)
	assert.Equal(t, "2 tasks", snap.Summary)
	assert.Equal(t, 3, snap.ResetCount)
	assert.False(t, snap.FinishedAt.IsZero())
}

func TestState_RecordFailure(t *testing.T) {
	s := NewState()
	s.MarkInitializing()
	s.RecordResult(Result{Success: false, Err: errors.New("domains dir unreadable")})

	snap := s.Snapshot()
	assert.Equal(t, StatusError, snap.Status)
	assert.True(t, snap.Completed)
	assert.False(t, snap.Success)
	assert.Contains(t, snap.LastError, "domains dir unreadable")
}

func TestState_MarkInitializingResetsEverything(t *testing.T) {
	s := NewState()
	s.MarkInitializing()
	s.RecordResult(Result{Success: false, Err: errors.New("first run failed"), ResetCount: 7})

	s.MarkInitializing()
	snap := s.Snapshot()
	assert.Equal(t, StatusInitializing, snap.Status)
	assert.False(t, snap.Completed)
	assert.Empty(t, snap.LastError)
	assert.Zero(t, snap.ResetCount)
}

func TestState_SnapshotIsCopy(t *testing.T) {
	s := NewState()
	s.MarkInitializing()

	before := s.Snapshot()
	s.RecordResult(Result{Success: true})

	assert.Equal(t, StatusInitializing, before.Status, "a snapshot must not track later mutations")
	assert.Equal(t, StatusReady, s.Snapshot().Status)
}

func TestState_Run(t *testing.T) {
	s := NewState()
	var ran atomic.Int32
	snap := s.Run(context.Background(),
		Task{Name: "one", Run: func(context.Context) error { ran.Add(1); return nil }},
		Task{Name: "two", Run: func(context.Context) error { ran.Add(1); return nil }},
	)

	assert.Equal(t, int32(2), ran.Load())
	assert.Equal(t, StatusReady, snap.Status)
	assert.True(t, snap.Success)
}

func TestState_RunRecordsFirstFailure(t *testing.T) {
	s := NewState()
	snap := s.Run(context.Background(),
		Task{Name: "ok", Run: func(context.Context) error { return nil }},
		Task{Name: "bad", Run: func(context.Context) error { return fmt.Errorf("load failed") }},
	)

	assert.Equal(t, StatusError, snap.Status)
	assert.Contains(t, snap.LastError, "bad")
	assert.Contains(t, snap.LastError, "load failed")
}

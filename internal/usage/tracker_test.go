package usage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_TrackAndStats(t *testing.T) {
	tracker, err := NewTracker(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	tracker.Track(ctx, Event{Model: "gemini-2.0-flash", Provider: "gemini", Domain: "coding", Operation: "route", InputTokens: 100, OutputTokens: 10})
	tracker.Track(ctx, Event{Model: "gemini-2.0-flash", Provider: "gemini", Domain: "research", Operation: "chat", InputTokens: 50, OutputTokens: 25})

	stats := tracker.Stats()
	assert.Equal(t, int64(185), stats.Total.Total)
	assert.Equal(t, int64(150), stats.Total.Input)
	assert.Equal(t, int64(35), stats.Total.Output)
	assert.Equal(t, int64(110), stats.ByDomain["coding"].Total)
	assert.Equal(t, int64(75), stats.ByOperation["chat"].Total)
	assert.Equal(t, int64(185), stats.ByModel["gemini-2.0-flash"].Total)
}

func TestTracker_AttributionFromContext(t *testing.T) {
	tracker, err := NewTracker(t.TempDir())
	require.NoError(t, err)

	ctx := WithAttribution(context.Background(), "coding", "session-1")
	tracker.Track(ctx, Event{InputTokens: 10, OutputTokens: 5})

	stats := tracker.Stats()
	assert.Equal(t, int64(15), stats.ByDomain["coding"].Total)
	assert.Equal(t, int64(15), stats.BySession["session-1"].Total)
}

func TestTracker_StatsReturnsCopy(t *testing.T) {
	tracker, err := NewTracker(t.TempDir())
	require.NoError(t, err)
	tracker.Track(context.Background(), Event{Domain: "coding", InputTokens: 1, OutputTokens: 1})

	stats := tracker.Stats()
	stats.ByDomain["coding"] = TokenCounts{Total: 999}

	again := tracker.Stats()
	assert.Equal(t, int64(2), again.ByDomain["coding"].Total, "Stats must hand out copies")
}

func TestTracker_PersistenceRoundTrip(t *testing.T) {
	dir := t.TempDir()

	tracker, err := NewTracker(dir)
	require.NoError(t, err)
	tracker.Track(context.Background(), Event{Domain: "coding", Operation: "route", InputTokens: 40, OutputTokens: 2})
	require.NoError(t, tracker.Save())

	reloaded, err := NewTracker(dir)
	require.NoError(t, err)
	stats := reloaded.Stats()
	assert.Equal(t, int64(42), stats.Total.Total)
	assert.Equal(t, int64(42), stats.ByDomain["coding"].Total)
}

func TestTracker_ContextCarrier(t *testing.T) {
	tracker, err := NewTracker(t.TempDir())
	require.NoError(t, err)

	ctx := NewContext(context.Background(), tracker)
	assert.Same(t, tracker, FromContext(ctx))
	assert.Nil(t, FromContext(context.Background()))
}

func TestNewSessionID_Unique(t *testing.T) {
	a := NewSessionID()
	b := NewSessionID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

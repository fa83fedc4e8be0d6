package audit

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord(runID string) Record {
	return Record{RunID: runID, Timestamp: "2026-02-14T09:30:00Z", Source: "test"}
}

func TestMemorySink_NewestFirst(t *testing.T) {
	s := NewMemorySink(10)
	ctx := context.Background()

	require.NoError(t, s.Persist(ctx, testRecord("wm-1")))
	require.NoError(t, s.Persist(ctx, testRecord("wm-2")))
	require.NoError(t, s.Persist(ctx, testRecord("wm-3")))

	recent := s.Recent(0)
	require.Len(t, recent, 3)
	assert.Equal(t, "wm-3", recent[0].RunID)
	assert.Equal(t, "wm-2", recent[1].RunID)
	assert.Equal(t, "wm-1", recent[2].RunID)
}

func TestMemorySink_CapEvictsOldest(t *testing.T) {
	s := NewMemorySink(25)
	ctx := context.Background()

	for i := 1; i <= 30; i++ {
		require.NoError(t, s.Persist(ctx, testRecord(fmt.Sprintf("wm-%d", i))))
	}

	assert.Equal(t, 25, s.Len())
	recent := s.Recent(0)
	assert.Equal(t, "wm-30", recent[0].RunID, "newest record survives")
	assert.Equal(t, "wm-6", recent[24].RunID, "records 1-5 evicted")
}

func TestMemorySink_DefaultCap(t *testing.T) {
	s := NewMemorySink(0)
	ctx := context.Background()

	for i := 0; i < DefaultMaxRecords+5; i++ {
		require.NoError(t, s.Persist(ctx, testRecord(fmt.Sprintf("wm-%d", i))))
	}
	assert.Equal(t, DefaultMaxRecords, s.Len())
}

func TestMemorySink_RecentLimit(t *testing.T) {
	s := NewMemorySink(10)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.NoError(t, s.Persist(ctx, testRecord(fmt.Sprintf("wm-%d", i))))
	}

	assert.Len(t, s.Recent(2), 2)
	assert.Len(t, s.Recent(100), 5)
}

// failingSink always errors; used to prove best-effort swallowing.
type failingSink struct{ calls int }

func (s *failingSink) Persist(context.Context, Record) error {
	s.calls++
	return errors.New("storage unavailable")
}

func TestBestEffortPersist_SwallowsFailures(t *testing.T) {
	sink := &failingSink{}

	// Must not panic and must not surface the error.
	BestEffortPersist(context.Background(), sink, testRecord("wm-x"))
	assert.Equal(t, 1, sink.calls)
}

func TestBestEffortPersist_NilSinkIsNoop(t *testing.T) {
	assert.NotPanics(t, func() {
		BestEffortPersist(context.Background(), nil, testRecord("wm-x"))
	})
}

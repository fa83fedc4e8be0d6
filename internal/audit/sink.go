package audit

import (
	"context"
	"log/slog"
	"sync"
)

// DefaultMaxRecords is the retention cap shared by the bundled sinks:
// the most recent 25 records are kept, oldest evicted silently.
const DefaultMaxRecords = 25

// Sink accepts one audit record, best-effort. Implementations own their
// retention policy. A Sink must be safe for concurrent use.
type Sink interface {
	Persist(ctx context.Context, rec Record) error
}

// BestEffortPersist hands a record to the sink and swallows any failure.
//
// This is the ONLY way scoring callers should persist: a storage error is
// logged at Warn and discarded, never returned, so the scoring flow can
// treat persistence as fire-and-forget. A nil sink is a no-op.
func BestEffortPersist(ctx context.Context, sink Sink, rec Record) {
	if sink == nil {
		return
	}
	if err := sink.Persist(ctx, rec); err != nil {
		slog.Warn("audit record not persisted",
			"run_id", rec.RunID,
			"source", rec.Source,
			"error", err,
		)
	}
}

// MemorySink is an in-process bounded audit log: newest first, capped,
// oldest evicted silently on overflow.
//
// Thread-safety: all methods safe for concurrent use via internal mutex.
type MemorySink struct {
	mu      sync.Mutex
	max     int
	records []Record // newest at index 0
}

// NewMemorySink creates a MemorySink holding at most max records.
// max <= 0 means DefaultMaxRecords.
func NewMemorySink(max int) *MemorySink {
	if max <= 0 {
		max = DefaultMaxRecords
	}
	return &MemorySink{max: max}
}

// Persist prepends the record, evicting the oldest beyond the cap.
// Never fails; the error return satisfies Sink.
func (s *MemorySink) Persist(_ context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append([]Record{rec}, s.records...)
	if len(s.records) > s.max {
		s.records = s.records[:s.max]
	}
	return nil
}

// Recent returns up to n records, newest first. n <= 0 returns all retained
// records. The returned slice is a copy.
func (s *MemorySink) Recent(n int) []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n <= 0 || n > len(s.records) {
		n = len(s.records)
	}
	out := make([]Record, n)
	copy(out, s.records[:n])
	return out
}

// Len returns the number of retained records.
func (s *MemorySink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

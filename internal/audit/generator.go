package audit

import (
	"sync"

	"github.com/google/uuid"
)

// RunIDGenerator generates unique run IDs for audit records.
// Implemented by UUIDv7Generator (production) and FixedGenerator (tests).
type RunIDGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable run IDs of the form
// "wm-<uuidv7>". UUIDv7 embeds a timestamp in the most significant bits,
// so IDs sort by creation time - convenient when eyeballing the audit log.
//
// Collision probability is negligible even under concurrent invocation.
//
// Thread-safety: stateless, safe for concurrent use.
type UUIDv7Generator struct{}

// Generate returns a new run ID. Panics if UUID generation fails, which
// does not happen in practice.
func (g UUIDv7Generator) Generate() string {
	return "wm-" + uuid.Must(uuid.NewV7()).String()
}

// FixedGenerator returns predetermined run IDs for deterministic tests.
//
// Thread-safety: safe for concurrent use via internal mutex.
type FixedGenerator struct {
	mu  sync.Mutex
	ids []string
	idx int
}

// NewFixedGenerator creates a generator that returns ids in order.
// Generate panics once all ids are consumed - fail fast on test
// misconfiguration rather than silently reusing an ID.
func NewFixedGenerator(ids ...string) *FixedGenerator {
	return &FixedGenerator{ids: ids}
}

// Generate returns the next predetermined ID.
func (g *FixedGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.idx >= len(g.ids) {
		panic("FixedGenerator: all run IDs exhausted")
	}
	id := g.ids[g.idx]
	g.idx++
	return id
}

package testutil

import "sync"

// FixedRunIDGenerator returns the same run ID every time.
//
// A batch predicted with a FixedRunIDGenerator produces byte-identical
// reports, which golden comparisons rely on.
//
// Thread-safety: FixedRunIDGenerator is stateless and safe for concurrent use.
type FixedRunIDGenerator struct {
	id string
}

// NewFixedRunIDGenerator creates a generator that always returns id.
// If id is empty, Generate returns "test-run-default".
func NewFixedRunIDGenerator(id string) *FixedRunIDGenerator {
	if id == "" {
		id = "test-run-default"
	}
	return &FixedRunIDGenerator{id: id}
}

// Generate returns the fixed run ID.
func (g *FixedRunIDGenerator) Generate() string {
	return g.id
}

// SequenceRunIDGenerator returns predetermined run IDs in order.
//
//	gen := NewSequenceRunIDGenerator("run-1", "run-2")
//	gen.Generate() // "run-1"
//	gen.Generate() // "run-2"
//	gen.Generate() // panic: all run IDs exhausted
//
// Thread-safety: safe for concurrent use via internal mutex.
type SequenceRunIDGenerator struct {
	mu  sync.Mutex
	ids []string
	idx int
}

// NewSequenceRunIDGenerator creates a generator over ids.
func NewSequenceRunIDGenerator(ids ...string) *SequenceRunIDGenerator {
	return &SequenceRunIDGenerator{ids: ids}
}

// Generate returns the next run ID. It panics once every ID has been used,
// so a test that predicts more batches than it planned for fails loudly.
func (g *SequenceRunIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.idx >= len(g.ids) {
		panic("SequenceRunIDGenerator: all run IDs exhausted")
	}
	id := g.ids[g.idx]
	g.idx++
	return id
}

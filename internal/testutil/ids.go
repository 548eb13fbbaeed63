// Package testutil holds deterministic helpers shared by package tests.
package testutil

import (
	"fmt"
	"sync"
)

// FixedIDGenerator returns a predetermined sequence of IDs.
//
// This keeps batch IDs stable across test runs so assertions and golden
// files can name them. It panics once the sequence is exhausted, which
// surfaces a test that writes more batches than it declared.
//
// Thread-safety: Generate is safe for concurrent use.
type FixedIDGenerator struct {
	mu    sync.Mutex
	ids   []string
	index int
}

// NewFixedIDGenerator creates a generator that yields ids in order.
func NewFixedIDGenerator(ids ...string) *FixedIDGenerator {
	return &FixedIDGenerator{ids: ids}
}

// Generate returns the next ID in the sequence.
func (g *FixedIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.index >= len(g.ids) {
		panic(fmt.Sprintf("FixedIDGenerator: exhausted after %d ids", len(g.ids)))
	}
	id := g.ids[g.index]
	g.index++
	return id
}

// Remaining reports how many IDs are left.
func (g *FixedIDGenerator) Remaining() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.ids) - g.index
}

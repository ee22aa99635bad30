package testutil

import (
	"strconv"
	"sync"
)

// FixedLabelGenerator returns a fixed list of blank node labels, then
// falls back to "t0", "t1", ... once the list is used up.
//
// This enables deterministic rendering and golden snapshot comparison of
// queries that contain fresh blank nodes. The same scenario with the same
// labels produces byte-identical query text.
//
// Unlike rdf.SequenceLabelGenerator, FixedLabelGenerator can be reset for
// test reuse.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type FixedLabelGenerator struct {
	mu     sync.Mutex
	labels []string
	next   int
}

// NewFixedLabelGenerator creates a generator returning labels in order.
//
// The labels are typically set in the scenario YAML:
//
//	labels: [alice, bob]
func NewFixedLabelGenerator(labels ...string) *FixedLabelGenerator {
	return &FixedLabelGenerator{labels: append([]string(nil), labels...)}
}

// Next returns the next label.
//
// Implements rdf.LabelGenerator interface.
func (g *FixedLabelGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	i := g.next
	g.next++
	if i < len(g.labels) {
		return g.labels[i]
	}
	return "t" + strconv.Itoa(i-len(g.labels))
}

// Issued returns how many labels Next has returned.
func (g *FixedLabelGenerator) Issued() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.next
}

// Reset restarts the sequence from the first label.
func (g *FixedLabelGenerator) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next = 0
}

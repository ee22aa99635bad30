package rdf

import (
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// LabelGenerator produces fresh labels for blank nodes and generated
// variables. Labels must be valid SPARQL names (letters, digits, underscore).
type LabelGenerator interface {
	Next() string
}

// UUIDLabelGenerator generates labels from time-sortable UUIDv7 values.
//
// Thread-safety: stateless and safe for concurrent use.
type UUIDLabelGenerator struct{}

// Next returns "b" followed by the 32 hex digits of a new UUIDv7.
// The leading letter keeps the label valid where a digit may not start a name.
func (UUIDLabelGenerator) Next() string {
	return "b" + strings.ReplaceAll(uuid.Must(uuid.NewV7()).String(), "-", "")
}

// SequenceLabelGenerator returns prefix0, prefix1, ... in order.
//
// Thread-safety: safe for concurrent use via internal mutex.
type SequenceLabelGenerator struct {
	mu     sync.Mutex
	prefix string
	next   int
}

// NewSequenceLabelGenerator creates a counter-based generator.
// An empty prefix defaults to "b".
func NewSequenceLabelGenerator(prefix string) *SequenceLabelGenerator {
	if prefix == "" {
		prefix = "b"
	}
	return &SequenceLabelGenerator{prefix: prefix}
}

// Next returns the next label in the sequence.
func (g *SequenceLabelGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	label := g.prefix + strconv.Itoa(g.next)
	g.next++
	return label
}

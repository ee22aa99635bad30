package testutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/spanqit/internal/rdf"
)

var _ rdf.LabelGenerator = (*FixedLabelGenerator)(nil)

func TestFixedLabelGenerator_ReturnsLabelsInOrder(t *testing.T) {
	gen := NewFixedLabelGenerator("alice", "bob")

	assert.Equal(t, "alice", gen.Next())
	assert.Equal(t, "bob", gen.Next())
}

func TestFixedLabelGenerator_FallsBackToCounter(t *testing.T) {
	gen := NewFixedLabelGenerator("alice")

	assert.Equal(t, "alice", gen.Next())
	assert.Equal(t, "t0", gen.Next())
	assert.Equal(t, "t1", gen.Next())
}

func TestFixedLabelGenerator_NoLabels(t *testing.T) {
	gen := NewFixedLabelGenerator()

	assert.Equal(t, "t0", gen.Next())
	assert.Equal(t, 1, gen.Issued())
}

func TestFixedLabelGenerator_Reset(t *testing.T) {
	gen := NewFixedLabelGenerator("alice")
	gen.Next()
	gen.Next()
	assert.Equal(t, 2, gen.Issued())

	gen.Reset()

	// After reset, the list starts over
	assert.Equal(t, 0, gen.Issued())
	assert.Equal(t, "alice", gen.Next())
}

func TestFixedLabelGenerator_CopiesInput(t *testing.T) {
	labels := []string{"alice"}
	gen := NewFixedLabelGenerator(labels...)
	labels[0] = "mallory"

	assert.Equal(t, "alice", gen.Next())
}

func TestFixedLabelGenerator_ThreadSafe(t *testing.T) {
	gen := NewFixedLabelGenerator()

	var wg sync.WaitGroup
	seen := sync.Map{}
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_, dup := seen.LoadOrStore(gen.Next(), true)
				assert.False(t, dup, "labels must be unique")
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1000, gen.Issued())
}

package harness

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWithGolden_Things(t *testing.T) {
	scenario, err := LoadScenario(filepath.Join("testdata", "scenarios", "things.yaml"))
	require.NoError(t, err)

	result, err := RunWithGolden(t, scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
}

func TestSnapshot_KeepsIRIsReadable(t *testing.T) {
	result := NewResult()
	result.AddRender(RenderEvent{Seq: 1, Query: "q", Form: "select", Text: "SELECT ?x WHERE { ?x a <http://example.org/T> . }"})

	data, err := Snapshot("q", result)
	require.NoError(t, err)

	assert.Contains(t, string(data), "<http://example.org/T>")
	assert.Contains(t, string(data), `"scenario_name": "q"`)
	assert.NotContains(t, string(data), `"error"`)
	assert.Equal(t, byte('\n'), data[len(data)-1])
}

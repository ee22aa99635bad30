package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScenario_Valid(t *testing.T) {
	scenario, err := LoadScenario(filepath.Join("testdata", "scenarios", "things.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "things", scenario.Name)
	assert.Equal(t, []string{filepath.Join("testdata", "queries", "catalog.yaml")}, scenario.Documents)
	assert.Equal(t, []string{"alice"}, scenario.Labels)
	require.Len(t, scenario.Renders, 3)
	assert.Equal(t, "reference cycle", scenario.Renders[2].Expect.Error)
	require.Len(t, scenario.Assertions, 3)
	assert.Equal(t, AssertFinalState, scenario.Assertions[2].Type)
	assert.Equal(t, "things", scenario.Assertions[2].Where["name"])
}

func TestLoadScenario_DefaultDocuments(t *testing.T) {
	dir := t.TempDir()
	path := writeScenario(t, dir, `
name: defaults
description: "uses the documents given by the caller"
renders:
  - query: things
`)
	abs, err := filepath.Abs(catalogDoc)
	require.NoError(t, err)

	scenario, err := LoadScenarioWithDocuments(path, []string{abs})
	require.NoError(t, err)
	assert.Equal(t, []string{abs}, scenario.Documents)

	_, err = LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "documents list is required")
}

func TestLoadScenario_UnknownField(t *testing.T) {
	path := writeScenario(t, t.TempDir(), `
name: typo
description: "misspelled renders"
render:
  - query: things
`)

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadScenario_FileNotFound(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestValidateScenario(t *testing.T) {
	valid := func() *Scenario {
		return &Scenario{
			Name:        "s",
			Description: "d",
			Documents:   []string{catalogDoc},
			Renders:     []RenderStep{{Query: "things"}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(s *Scenario)
		wantErr string
	}{
		{"valid", func(s *Scenario) {}, ""},
		{"missing name", func(s *Scenario) { s.Name = "" }, "name is required"},
		{"missing description", func(s *Scenario) { s.Description = "" }, "description is required"},
		{"no renders", func(s *Scenario) { s.Renders = nil }, "renders list is required"},
		{"document not found", func(s *Scenario) { s.Documents = []string{"nope.yaml"} }, "document not found"},
		{"render without query", func(s *Scenario) { s.Renders = []RenderStep{{}} }, "renders[0]: query is required"},
		{
			"text and error",
			func(s *Scenario) { s.Renders[0].Expect = &ExpectClause{Text: "x", Error: "y"} },
			"mutually exclusive",
		},
		{
			"assertion without type",
			func(s *Scenario) { s.Assertions = []Assertion{{}} },
			"assertions[0]: type is required",
		},
		{
			"unknown assertion",
			func(s *Scenario) { s.Assertions = []Assertion{{Type: "trace_contains"}} },
			`unknown assertion type "trace_contains"`,
		},
		{
			"contains without text",
			func(s *Scenario) { s.Assertions = []Assertion{{Type: AssertRenderContains, Query: "things"}} },
			"query and text are required",
		},
		{
			"order without fragments",
			func(s *Scenario) { s.Assertions = []Assertion{{Type: AssertRenderOrder, Query: "things"}} },
			"query and fragments are required",
		},
		{
			"negative count",
			func(s *Scenario) {
				s.Assertions = []Assertion{{Type: AssertRenderCount, Query: "things", Text: "?x", Count: -1}}
			},
			"count must be non-negative",
		},
		{
			"final state without expect",
			func(s *Scenario) { s.Assertions = []Assertion{{Type: AssertFinalState}} },
			"expect is required for final_state",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(s)
			err := validateScenario(s)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

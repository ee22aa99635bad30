package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scenario defines a render test scenario.
// Scenarios compile named queries from one or more documents and assert on
// the rendered SPARQL text and on the catalog rows the renders produce.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Documents lists query document paths (.yaml, .json, .cue or a
	// directory). Relative paths resolve against the scenario file.
	Documents []string `yaml:"documents,omitempty"`

	// Labels are the blank node labels handed out, in order, for fresh
	// "_:" nodes. Once used up, labels continue as t0, t1, ...
	Labels []string `yaml:"labels,omitempty"`

	// Renders are the queries to compile, in order.
	Renders []RenderStep `yaml:"renders"`

	// Assertions validate the final trace and catalog.
	// Supported types: render_contains, render_order, render_count, final_state
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// RenderStep compiles and renders one named query.
type RenderStep struct {
	// Query is the name of a query in the scenario documents.
	Query string `yaml:"query"`

	// Pretty selects multi-line rendering.
	Pretty bool `yaml:"pretty,omitempty"`

	// Expect specifies the expected output.
	// If nil, the render only has to succeed.
	Expect *ExpectClause `yaml:"expect,omitempty"`
}

// ExpectClause specifies expected render behavior. Text and Error are
// mutually exclusive.
type ExpectClause struct {
	// Text is the exact expected query text.
	Text string `yaml:"text,omitempty"`

	// Error is a substring the compile error must contain.
	Error string `yaml:"error,omitempty"`
}

// Assertion validates the trace or the catalog.
type Assertion struct {
	// Type specifies the assertion type:
	// - "render_contains": Check the latest render of Query contains Text
	// - "render_order": Check Fragments appear in that order
	// - "render_count": Check Text appears exactly Count times
	// - "final_state": Query a catalog table and verify expected values
	Type string `yaml:"type"`

	// Query names the rendered query (render_* assertions).
	Query string `yaml:"query,omitempty"`

	// Text is the fragment to look for (render_contains, render_count).
	Text string `yaml:"text,omitempty"`

	// Fragments is the expected fragment order (render_order).
	Fragments []string `yaml:"fragments,omitempty"`

	// Count is the expected number of occurrences (render_count).
	Count int `yaml:"count,omitempty"`

	// Table is the catalog table name (final_state). Defaults to "queries".
	Table string `yaml:"table,omitempty"`

	// Where specifies query filters (used by final_state).
	// All fields must match exactly.
	Where map[string]interface{} `yaml:"where,omitempty"`

	// Expect contains expected field values (used by final_state).
	// Subset match - only specified fields are validated.
	Expect map[string]interface{} `yaml:"expect,omitempty"`
}

// Assertion type constants.
const (
	AssertRenderContains = "render_contains"
	AssertRenderOrder    = "render_order"
	AssertRenderCount    = "render_count"
	AssertFinalState     = "final_state"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
// Document paths resolve against the scenario file's directory.
func LoadScenario(path string) (*Scenario, error) {
	return LoadScenarioWithDocuments(path, nil)
}

// LoadScenarioWithDocuments is LoadScenario with default documents for
// scenarios that list none of their own. The defaults are used as given.
func LoadScenarioWithDocuments(path string, defaults []string) (*Scenario, error) {
	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Parse YAML with strict field validation (catches typos like "render:" vs "renders:")
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Resolve document paths BEFORE validation
	base := filepath.Dir(path)
	for i, doc := range scenario.Documents {
		if !filepath.IsAbs(doc) {
			scenario.Documents[i] = filepath.Join(base, doc)
		}
	}
	if len(scenario.Documents) == 0 {
		scenario.Documents = append([]string(nil), defaults...)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Documents) == 0 {
		return fmt.Errorf("documents list is required and must be non-empty")
	}

	if len(s.Renders) == 0 {
		return fmt.Errorf("renders list is required and must be non-empty")
	}

	for _, doc := range s.Documents {
		if _, err := os.Stat(doc); os.IsNotExist(err) {
			return fmt.Errorf("document not found: %s", doc)
		}
	}

	for i, step := range s.Renders {
		if step.Query == "" {
			return fmt.Errorf("renders[%d]: query is required", i)
		}
		if step.Expect != nil && step.Expect.Text != "" && step.Expect.Error != "" {
			return fmt.Errorf("renders[%d].expect: text and error are mutually exclusive", i)
		}
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertRenderContains:
		if a.Query == "" || a.Text == "" {
			return fmt.Errorf("assertions[%d]: query and text are required for render_contains", index)
		}
	case AssertRenderOrder:
		if a.Query == "" || len(a.Fragments) == 0 {
			return fmt.Errorf("assertions[%d]: query and fragments are required for render_order", index)
		}
	case AssertRenderCount:
		if a.Query == "" || a.Text == "" {
			return fmt.Errorf("assertions[%d]: query and text are required for render_count", index)
		}
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for render_count", index)
		}
	case AssertFinalState:
		if len(a.Expect) == 0 {
			return fmt.Errorf("assertions[%d]: expect is required for final_state", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}

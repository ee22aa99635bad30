package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/roach88/spanqit/internal/compiler"
	"github.com/roach88/spanqit/internal/queryir"
	"github.com/roach88/spanqit/internal/querysparql"
	"github.com/roach88/spanqit/internal/sparql"
	"github.com/roach88/spanqit/internal/store"
	"github.com/roach88/spanqit/internal/testutil"
)

// Harness is the test execution engine.
// It runs scenarios with deterministic blank node labels and a logical
// sequence, so identical scenarios produce identical traces.
type Harness struct {
	store    *store.Store
	compiler *querysparql.Compiler
	labels   *testutil.FixedLabelGenerator
	seq      int64
	source   string
	logger   *slog.Logger
}

// Option configures a harness run.
type Option func(*Harness)

// WithLogger sets the logger. Runs are silent by default.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Harness) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// Run executes a test scenario and returns the result.
//
// Each scenario runs in a fresh in-memory catalog for isolation.
// Deterministic helpers ensure reproducible results.
//
// Execution flow:
// 1. Create fresh in-memory catalog
// 2. Load and merge the scenario documents
// 3. Compile and render every step, saving successful renders
// 4. Check expect clauses, then assertions
//
// The returned error reports infrastructure failures only; failed
// expectations are recorded in the result.
func Run(scenario *Scenario, opts ...Option) (*Result, error) {
	doc, err := loadDocuments(scenario.Documents)
	if err != nil {
		return nil, fmt.Errorf("failed to load documents: %w", err)
	}

	// Create fresh in-memory SQLite catalog
	st, err := store.Open(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	labels := testutil.NewFixedLabelGenerator(scenario.Labels...)
	c := querysparql.NewCompiler(doc)
	c.Labels = labels

	h := &Harness{
		store:    st,
		compiler: c,
		labels:   labels,
		source:   "scenario:" + scenario.Name,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)), // Suppress logs in tests
	}
	for _, opt := range opts {
		opt(h)
	}

	ctx := context.Background()
	result := NewResult()
	if err := h.executeRenders(ctx, scenario.Renders, result); err != nil {
		return nil, fmt.Errorf("failed to execute renders: %w", err)
	}

	actx := &AssertionContext{
		Store: st,
		Ctx:   ctx,
	}
	for _, errMsg := range EvaluateAssertions(result, scenario.Assertions, actx) {
		result.AddError(errMsg)
	}

	h.logger.Info("scenario finished",
		"scenario", scenario.Name,
		"renders", len(result.Trace),
		"labels", h.labels.Issued(),
		"pass", result.Pass,
	)
	return result, nil
}

func loadDocuments(paths []string) (*queryir.Document, error) {
	docs := make([]*queryir.Document, 0, len(paths))
	for _, path := range paths {
		doc, err := compiler.Load(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		docs = append(docs, doc)
	}
	return compiler.Merge(docs...), nil
}

// executeRenders compiles each step in order.
//
// Each step:
// 1. Takes the next sequence number
// 2. Compiles the named query and renders it
// 3. Saves successful renders to the catalog
// 4. Checks the expect clause
// 5. Appends the event to the trace for golden comparison
func (h *Harness) executeRenders(ctx context.Context, steps []RenderStep, result *Result) error {
	for i, step := range steps {
		h.seq++
		ev := RenderEvent{Seq: h.seq, Query: step.Query, Pretty: step.Pretty}

		text, form, err := h.render(step)
		if err != nil {
			ev.Error = err.Error()
		} else {
			ev.Text = text
			ev.Form = form
			rec, inserted, err := h.store.Save(ctx, step.Query, form, text, h.source)
			if err != nil {
				return fmt.Errorf("render step %d: failed to save: %w", i, err)
			}
			h.logger.Debug("render saved",
				"step", i,
				"query", step.Query,
				"id", rec.ID,
				"inserted", inserted,
			)
		}
		result.AddRender(ev)

		if msg := checkExpect(i, step, ev); msg != "" {
			result.AddError(msg)
		}

		h.logger.Info("render step completed",
			"step", i,
			"query", step.Query,
			"ok", ev.Error == "",
		)
	}
	return nil
}

func (h *Harness) render(step RenderStep) (text, form string, err error) {
	if h.compiler.Doc == nil {
		return "", "", fmt.Errorf("no documents loaded")
	}
	q, ok := h.compiler.Doc.Lookup(step.Query)
	if !ok {
		return "", "", fmt.Errorf("query %s: query not found", step.Query)
	}
	elem, err := h.compiler.Compile(*q)
	if err != nil {
		return "", "", err
	}
	if step.Pretty {
		return sparql.Pretty(elem, 0), string(q.Form.Normalized()), nil
	}
	return elem.Render(), string(q.Form.Normalized()), nil
}

// checkExpect returns a failure message, or "" when the step behaved as
// expected.
func checkExpect(i int, step RenderStep, ev RenderEvent) string {
	expect := step.Expect
	switch {
	case expect != nil && expect.Error != "":
		if ev.Error == "" {
			return fmt.Sprintf("renders[%d] %s: expected error containing %q, got %q", i, step.Query, expect.Error, ev.Text)
		}
		if !strings.Contains(ev.Error, expect.Error) {
			return fmt.Sprintf("renders[%d] %s: expected error containing %q, got %q", i, step.Query, expect.Error, ev.Error)
		}
	case ev.Error != "":
		return fmt.Sprintf("renders[%d] %s: %s", i, step.Query, ev.Error)
	case expect != nil && expect.Text != "" && ev.Text != expect.Text:
		return fmt.Sprintf("renders[%d] %s:\n  expected: %s\n  actual:   %s", i, step.Query, expect.Text, ev.Text)
	}
	return ""
}

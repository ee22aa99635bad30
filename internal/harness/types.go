package harness

// RenderEvent records one render step of a scenario.
type RenderEvent struct {
	Seq    int64  `json:"seq"`
	Query  string `json:"query"`
	Form   string `json:"form,omitempty"`
	Pretty bool   `json:"pretty,omitempty"`

	// Text is the rendered query; empty when compilation failed.
	Text string `json:"text,omitempty"`

	// Error is the compile error message, if any.
	Error string `json:"error,omitempty"`
}

// Result is the outcome of a test scenario execution.
type Result struct {
	// Pass indicates overall test success.
	// True if every expect clause and assertion matched.
	Pass bool `json:"pass"`

	// Trace contains all render events in order.
	// Used for render assertions and golden comparison.
	Trace []RenderEvent `json:"trace"`

	// Errors contains validation error messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
// Used as the starting point for test execution.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []RenderEvent{},
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddRender appends a render event to the trace.
func (r *Result) AddRender(ev RenderEvent) {
	r.Trace = append(r.Trace, ev)
}

// Renders returns the successful render events for a query, in order.
func (r *Result) Renders(query string) []RenderEvent {
	var out []RenderEvent
	for _, ev := range r.Trace {
		if ev.Query == query && ev.Error == "" {
			out = append(out, ev)
		}
	}
	return out
}

package sparql

// ConstructQuery is a CONSTRUCT query.
type ConstructQuery struct {
	outerQuery[*ConstructQuery]
	template *GraphTemplate
}

// NewConstructQuery returns an empty CONSTRUCT query.
func NewConstructQuery() *ConstructQuery {
	q := &ConstructQuery{template: &GraphTemplate{}}
	q.setup(q)
	return q
}

// Construct appends template triples.
func (q *ConstructQuery) Construct(triples ...*TriplePattern) *ConstructQuery {
	q.template.Construct(triples...)
	return q
}

// WithTemplate replaces the template.
func (q *ConstructQuery) WithTemplate(t *GraphTemplate) *ConstructQuery {
	if t != nil {
		q.template = t
	}
	return q
}

// Render implements QueryElement.
func (q *ConstructQuery) Render() string {
	return q.render(q.template.Render(), false, 0, false)
}

// RenderPretty implements PrettyElement.
func (q *ConstructQuery) RenderPretty(indent int) string {
	return q.render(q.template.RenderPretty(indent), true, indent, false)
}

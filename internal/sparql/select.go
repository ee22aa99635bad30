package sparql

// SelectQuery is a SELECT query.
type SelectQuery struct {
	outerQuery[*SelectQuery]
	projection *Projection
}

// NewSelectQuery returns an empty SELECT query. With nothing added it
// renders "SELECT * WHERE {}".
func NewSelectQuery() *SelectQuery {
	q := &SelectQuery{projection: &Projection{}}
	q.setup(q)
	return q
}

// Select appends projected elements.
func (q *SelectQuery) Select(elements ...Projectable) *SelectQuery {
	q.projection.Select(elements...)
	return q
}

// WithProjection replaces the projection.
func (q *SelectQuery) WithProjection(p *Projection) *SelectQuery {
	if p != nil {
		q.projection = p
	}
	return q
}

// Distinct sets SELECT DISTINCT.
func (q *SelectQuery) Distinct(distinct bool) *SelectQuery {
	q.projection.Distinct(distinct)
	return q
}

// All requests SELECT *; explicit elements take precedence.
func (q *SelectQuery) All(all bool) *SelectQuery {
	q.projection.All(all)
	return q
}

// Render implements QueryElement.
func (q *SelectQuery) Render() string {
	return q.render(q.projection.Render(), false, 0, false)
}

// RenderPretty implements PrettyElement.
func (q *SelectQuery) RenderPretty(indent int) string {
	return q.render(q.projection.Render(), true, indent, false)
}

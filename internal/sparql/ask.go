package sparql

// AskQuery is an ASK query.
type AskQuery struct {
	outerQuery[*AskQuery]
}

// NewAskQuery returns an empty ASK query.
func NewAskQuery() *AskQuery {
	q := &AskQuery{}
	q.setup(q)
	return q
}

// Render implements QueryElement.
func (q *AskQuery) Render() string {
	return q.render("ASK", false, 0, false)
}

// RenderPretty implements PrettyElement.
func (q *AskQuery) RenderPretty(indent int) string {
	return q.render("ASK", true, indent, false)
}

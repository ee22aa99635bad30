package sparql

// DescribeQuery is a DESCRIBE query. Its WHERE clause is optional and is
// omitted while empty.
type DescribeQuery struct {
	outerQuery[*DescribeQuery]
	resources []VarOrIRI
}

// NewDescribeQuery returns a query that renders "DESCRIBE *" until
// resources are added.
func NewDescribeQuery() *DescribeQuery {
	q := &DescribeQuery{}
	q.setup(q)
	return q
}

// Describe appends resources to describe.
func (q *DescribeQuery) Describe(resources ...VarOrIRI) *DescribeQuery {
	q.resources = append(q.resources, resources...)
	return q
}

func (q *DescribeQuery) action() string {
	if len(q.resources) == 0 {
		return "DESCRIBE *"
	}
	return "DESCRIBE " + joinElements(q.resources, " ")
}

// Render implements QueryElement.
func (q *DescribeQuery) Render() string {
	return q.render(q.action(), false, 0, true)
}

// RenderPretty implements PrettyElement.
func (q *DescribeQuery) RenderPretty(indent int) string {
	return q.render(q.action(), true, indent, true)
}

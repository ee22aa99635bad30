package sparql

type groupKind int

const (
	plainGroup groupKind = iota
	optionalGroup
	minusGroup
	namedGraphGroup
)

// GroupGraphPattern is a braced sequence of graph patterns and filters. The
// optional, minus and graph variants prepend their keyword.
type GroupGraphPattern struct {
	kind     groupKind
	graph    VarOrIRI
	patterns []GraphPattern
	filters  []Operand
}

func newGroup(kind groupKind, patterns []GraphPattern) *GroupGraphPattern {
	g := &GroupGraphPattern{kind: kind}
	return g.And(patterns...)
}

// And appends child patterns in order. Nil children are skipped.
func (g *GroupGraphPattern) And(patterns ...GraphPattern) *GroupGraphPattern {
	for _, p := range patterns {
		if p != nil {
			g.patterns = append(g.patterns, p)
		}
	}
	return g
}

// Filter appends FILTER constraints. Filters render after the child
// patterns; their position inside a group does not change its meaning.
func (g *GroupGraphPattern) Filter(constraints ...Operand) *GroupGraphPattern {
	g.filters = append(g.filters, constraints...)
	return g
}

// Size returns the number of direct child patterns.
func (g *GroupGraphPattern) Size() int { return len(g.patterns) }

// IsEmpty reports whether the group holds neither patterns nor filters.
func (g *GroupGraphPattern) IsEmpty() bool {
	return len(g.patterns) == 0 && len(g.filters) == 0
}

func (g *GroupGraphPattern) keyword() string {
	switch g.kind {
	case optionalGroup:
		return "OPTIONAL "
	case minusGroup:
		return "MINUS "
	case namedGraphGroup:
		return "GRAPH " + g.graph.Render() + " "
	default:
		return ""
	}
}

func (g *GroupGraphPattern) lines(render renderer) []string {
	lines := make([]string, 0, len(g.patterns)+len(g.filters))
	for _, p := range g.patterns {
		lines = append(lines, render(p))
	}
	for _, f := range g.filters {
		lines = append(lines, "FILTER"+parenthesized(f.Render()))
	}
	return lines
}

// Render implements QueryElement.
func (g *GroupGraphPattern) Render() string {
	return g.keyword() + bracketed(joinParts(g.lines(compactRenderer()), " "))
}

// RenderPretty renders one child per line.
func (g *GroupGraphPattern) RenderPretty(indent int) string {
	return g.keyword() + bracketedLines(g.lines(prettyRenderer(indent+1)), indent)
}

func (*GroupGraphPattern) graphPattern() {}

// UnionPattern is a sequence of alternatives joined by UNION.
type UnionPattern struct {
	alternatives []*GroupGraphPattern
}

// Or appends alternatives, skipping nil ones. Anything that is not a plain
// group is wrapped in one.
func (u *UnionPattern) Or(patterns ...GraphPattern) *UnionPattern {
	for _, p := range patterns {
		if p == nil {
			continue
		}
		if g, ok := p.(*GroupGraphPattern); ok && g.kind == plainGroup {
			u.alternatives = append(u.alternatives, g)
			continue
		}
		u.alternatives = append(u.alternatives, newGroup(plainGroup, []GraphPattern{p}))
	}
	return u
}

// Size returns the number of alternatives.
func (u *UnionPattern) Size() int { return len(u.alternatives) }

// IsEmpty reports whether there are no alternatives.
func (u *UnionPattern) IsEmpty() bool { return len(u.alternatives) == 0 }

// Render implements QueryElement.
func (u *UnionPattern) Render() string {
	return joinElements(u.alternatives, " UNION ")
}

// RenderPretty renders each alternative as a pretty group.
func (u *UnionPattern) RenderPretty(indent int) string {
	parts := make([]string, len(u.alternatives))
	for i, a := range u.alternatives {
		parts[i] = a.RenderPretty(indent)
	}
	return joinParts(parts, " UNION ")
}

func (*UnionPattern) graphPattern() {}

// BindPattern assigns an expression to a variable inside a group:
// BIND(expr AS ?v).
type BindPattern struct {
	assignment *Assignment
}

// IsEmpty is always false.
func (b *BindPattern) IsEmpty() bool { return false }

// Render implements QueryElement.
func (b *BindPattern) Render() string {
	return "BIND" + b.assignment.Render()
}

func (*BindPattern) graphPattern() {}

// QueryPattern is the WHERE clause of a query: the keyword plus a root
// group.
type QueryPattern struct {
	root *GroupGraphPattern
}

func newQueryPattern() *QueryPattern {
	return &QueryPattern{root: &GroupGraphPattern{}}
}

// Where appends patterns to the root group.
func (q *QueryPattern) Where(patterns ...GraphPattern) *QueryPattern {
	q.root.And(patterns...)
	return q
}

// Filter appends constraints to the root group.
func (q *QueryPattern) Filter(constraints ...Operand) *QueryPattern {
	q.root.Filter(constraints...)
	return q
}

// Size returns the number of top-level patterns.
func (q *QueryPattern) Size() int { return q.root.Size() }

// IsEmpty reports whether the WHERE body is empty.
func (q *QueryPattern) IsEmpty() bool { return q.root.IsEmpty() }

// Render implements QueryElement.
func (q *QueryPattern) Render() string {
	return "WHERE " + q.root.Render()
}

// RenderPretty implements PrettyElement.
func (q *QueryPattern) RenderPretty(indent int) string {
	return "WHERE " + q.root.RenderPretty(indent)
}

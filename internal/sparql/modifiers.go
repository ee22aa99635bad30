package sparql

// GroupClause is GROUP BY with its grouping conditions.
type GroupClause struct {
	conditions []Groupable
}

// By appends grouping conditions.
func (g *GroupClause) By(conditions ...Groupable) *GroupClause {
	g.conditions = append(g.conditions, conditions...)
	return g
}

// IsEmpty reports whether no condition was added.
func (g *GroupClause) IsEmpty() bool { return len(g.conditions) == 0 }

// Render implements QueryElement.
func (g *GroupClause) Render() string {
	parts := make([]string, len(g.conditions))
	for i, c := range g.conditions {
		parts[i] = groupConditionText(c)
	}
	return keywordClause("GROUP BY", parts)
}

// groupConditionText wraps bare operator expressions, which GROUP BY only
// accepts in parentheses.
func groupConditionText(c Groupable) string {
	if e, ok := c.(*Expression); ok && e.kind != callExpression {
		return parenthesized(e.Render())
	}
	return c.Render()
}

// OrderCondition is one ASC(...) or DESC(...) sort key.
type OrderCondition struct {
	key        Orderable
	descending bool
}

// Render implements QueryElement.
func (o *OrderCondition) Render() string {
	if o.descending {
		return "DESC" + parenthesized(o.key.Render())
	}
	return "ASC" + parenthesized(o.key.Render())
}

func (*OrderCondition) orderable() {}

// OrderClause is ORDER BY with its sort keys.
type OrderClause struct {
	conditions []Orderable
}

// By appends sort keys.
func (o *OrderClause) By(conditions ...Orderable) *OrderClause {
	o.conditions = append(o.conditions, conditions...)
	return o
}

// IsEmpty reports whether no sort key was added.
func (o *OrderClause) IsEmpty() bool { return len(o.conditions) == 0 }

// Render implements QueryElement.
func (o *OrderClause) Render() string {
	parts := make([]string, len(o.conditions))
	for i, c := range o.conditions {
		if e, ok := c.(*Expression); ok && e.kind != callExpression {
			parts[i] = parenthesized(e.Render())
			continue
		}
		parts[i] = c.Render()
	}
	return keywordClause("ORDER BY", parts)
}

// HavingClause is HAVING with its constraints. Each constraint renders in
// parentheses.
type HavingClause struct {
	constraints []Operand
}

// By appends constraints.
func (h *HavingClause) By(constraints ...Operand) *HavingClause {
	h.constraints = append(h.constraints, constraints...)
	return h
}

// IsEmpty reports whether no constraint was added.
func (h *HavingClause) IsEmpty() bool { return len(h.constraints) == 0 }

// Render implements QueryElement.
func (h *HavingClause) Render() string {
	parts := make([]string, len(h.constraints))
	for i, c := range h.constraints {
		parts[i] = parenthesized(c.Render())
	}
	return keywordClause("HAVING", parts)
}

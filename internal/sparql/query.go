package sparql

import "strconv"

// queryCore holds the parts every query form shares with a sub-select: the
// WHERE pattern and the solution modifiers. Q is the embedding type, so the
// chain methods return it.
type queryCore[Q any] struct {
	self    Q
	where   *QueryPattern
	groupBy *GroupClause
	having  *HavingClause
	orderBy *OrderClause
	limit   int
	offset  int
}

func (c *queryCore[Q]) setup(self Q) {
	c.self = self
	c.where = newQueryPattern()
	c.groupBy = &GroupClause{}
	c.having = &HavingClause{}
	c.orderBy = &OrderClause{}
	c.limit = -1
	c.offset = -1
}

// Where appends patterns to the WHERE clause.
func (c *queryCore[Q]) Where(patterns ...GraphPattern) Q {
	c.where.Where(patterns...)
	return c.self
}

// WithWhere replaces the WHERE clause.
func (c *queryCore[Q]) WithWhere(where *QueryPattern) Q {
	if where != nil {
		c.where = where
	}
	return c.self
}

// Filter appends FILTER constraints to the WHERE clause.
func (c *queryCore[Q]) Filter(constraints ...Operand) Q {
	c.where.Filter(constraints...)
	return c.self
}

// GroupBy appends GROUP BY conditions.
func (c *queryCore[Q]) GroupBy(conditions ...Groupable) Q {
	c.groupBy.By(conditions...)
	return c.self
}

// WithGroupBy replaces the GROUP BY clause.
func (c *queryCore[Q]) WithGroupBy(groupBy *GroupClause) Q {
	if groupBy != nil {
		c.groupBy = groupBy
	}
	return c.self
}

// Having appends HAVING constraints.
func (c *queryCore[Q]) Having(constraints ...Operand) Q {
	c.having.By(constraints...)
	return c.self
}

// WithHaving replaces the HAVING clause.
func (c *queryCore[Q]) WithHaving(having *HavingClause) Q {
	if having != nil {
		c.having = having
	}
	return c.self
}

// OrderBy appends ORDER BY keys.
func (c *queryCore[Q]) OrderBy(conditions ...Orderable) Q {
	c.orderBy.By(conditions...)
	return c.self
}

// WithOrderBy replaces the ORDER BY clause.
func (c *queryCore[Q]) WithOrderBy(orderBy *OrderClause) Q {
	if orderBy != nil {
		c.orderBy = orderBy
	}
	return c.self
}

// Limit sets LIMIT. A negative value removes it.
func (c *queryCore[Q]) Limit(n int) Q {
	c.limit = n
	return c.self
}

// Offset sets OFFSET. A negative value removes it.
func (c *queryCore[Q]) Offset(n int) Q {
	c.offset = n
	return c.self
}

// bodyParts renders WHERE and the solution modifiers in their fixed order.
// Empty parts are "".
func (c *queryCore[Q]) bodyParts(pretty bool, indent int, omitEmptyWhere bool) []string {
	where := ""
	if !omitEmptyWhere || !c.where.IsEmpty() {
		if pretty {
			where = c.where.RenderPretty(indent)
		} else {
			where = c.where.Render()
		}
	}
	parts := []string{where, c.groupBy.Render(), c.having.Render(), c.orderBy.Render()}
	if c.limit >= 0 {
		parts = append(parts, "LIMIT "+strconv.Itoa(c.limit))
	}
	if c.offset >= 0 {
		parts = append(parts, "OFFSET "+strconv.Itoa(c.offset))
	}
	return parts
}

// outerQuery adds the prologue and dataset, which only a top-level query
// may declare.
type outerQuery[Q any] struct {
	queryCore[Q]
	prefixes *PrefixDeclarations
	base     Base
	dataset  *Dataset
}

func (q *outerQuery[Q]) setup(self Q) {
	q.queryCore.setup(self)
	q.prefixes = &PrefixDeclarations{}
	q.dataset = &Dataset{}
}

// Prefix declares namespace prefixes. Repeated declarations are ignored.
func (q *outerQuery[Q]) Prefix(prefixes ...Prefix) Q {
	q.prefixes.Add(prefixes...)
	return q.self
}

// WithPrefixes replaces the prefix declarations.
func (q *outerQuery[Q]) WithPrefixes(prefixes *PrefixDeclarations) Q {
	if prefixes != nil {
		q.prefixes = prefixes
	}
	return q.self
}

// Base sets the BASE IRI.
func (q *outerQuery[Q]) Base(iri IRI) Q {
	q.base = NewBase(iri)
	return q.self
}

// From appends dataset clauses.
func (q *outerQuery[Q]) From(clauses ...FromClause) Q {
	q.dataset.From(clauses...)
	return q.self
}

// WithDataset replaces the dataset.
func (q *outerQuery[Q]) WithDataset(dataset *Dataset) Q {
	if dataset != nil {
		q.dataset = dataset
	}
	return q.self
}

// render assembles prologue, action, dataset and body. Compact mode joins
// parts with a space, pretty mode puts each on its own line.
func (q *outerQuery[Q]) render(action string, pretty bool, indent int, omitEmptyWhere bool) string {
	sep := " "
	prefixes, dataset := q.prefixes.Render(), q.dataset.Render()
	if pretty {
		sep = "\n" + indentation(indent)
		prefixes, dataset = q.prefixes.RenderPretty(indent), q.dataset.RenderPretty(indent)
	}
	parts := []string{prefixes, q.base.Render(), action, dataset}
	parts = append(parts, q.bodyParts(pretty, indent, omitEmptyWhere)...)
	return joinParts(parts, sep)
}

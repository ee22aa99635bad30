package sparql

import "strings"

// Var returns the variable with the given name. A leading ? or $ is
// dropped, so Var("x"), Var("?x") and Var("$x") are the same variable.
func Var(name string) Variable {
	return Variable{name: strings.TrimLeft(name, "?$")}
}

// As assigns expression to v: (expression AS ?v).
func As(expression Assignable, v Variable) *Assignment {
	return &Assignment{expression: expression, variable: v}
}

// NewPrefix declares alias for the namespace iri.
func NewPrefix(alias string, iri IRI) Prefix {
	return Prefix{alias: alias, iri: iri}
}

// Prefixes returns a declaration list holding prefixes, deduplicated.
func Prefixes(prefixes ...Prefix) *PrefixDeclarations {
	return (&PrefixDeclarations{}).Add(prefixes...)
}

// NewBase returns a BASE declaration.
func NewBase(iri IRI) Base {
	return Base{iri: iri}
}

// From returns a FROM clause for the default graph.
func From(iri IRI) FromClause {
	return FromClause{iri: iri}
}

// FromNamed returns a FROM NAMED clause.
func FromNamed(iri IRI) FromClause {
	return FromClause{iri: iri, named: true}
}

// NewDataset returns a dataset holding clauses in order.
func NewDataset(clauses ...FromClause) *Dataset {
	return (&Dataset{}).From(clauses...)
}

// Select returns a projection of elements.
func Select(elements ...Projectable) *Projection {
	return (&Projection{}).Select(elements...)
}

// SelectDistinct returns a DISTINCT projection of elements.
func SelectDistinct(elements ...Projectable) *Projection {
	return Select(elements...).Distinct(true)
}

// Construct returns a CONSTRUCT template of triples.
func Construct(triples ...*TriplePattern) *GraphTemplate {
	return (&GraphTemplate{}).Construct(triples...)
}

// Where returns a WHERE clause holding patterns.
func Where(patterns ...GraphPattern) *QueryPattern {
	return newQueryPattern().Where(patterns...)
}

// GroupBy returns a GROUP BY clause.
func GroupBy(conditions ...Groupable) *GroupClause {
	return (&GroupClause{}).By(conditions...)
}

// OrderBy returns an ORDER BY clause.
func OrderBy(conditions ...Orderable) *OrderClause {
	return (&OrderClause{}).By(conditions...)
}

// Having returns a HAVING clause.
func Having(constraints ...Operand) *HavingClause {
	return (&HavingClause{}).By(constraints...)
}

// Asc sorts ascending by key.
func Asc(key Orderable) *OrderCondition {
	return &OrderCondition{key: key}
}

// Desc sorts descending by key.
func Desc(key Orderable) *OrderCondition {
	return &OrderCondition{key: key, descending: true}
}

// Group returns a plain group pattern { ... }.
func Group(patterns ...GraphPattern) *GroupGraphPattern {
	return newGroup(plainGroup, patterns)
}

// Optional returns OPTIONAL { ... }.
func Optional(patterns ...GraphPattern) *GroupGraphPattern {
	return newGroup(optionalGroup, patterns)
}

// Minus returns MINUS { ... }.
func Minus(patterns ...GraphPattern) *GroupGraphPattern {
	return newGroup(minusGroup, patterns)
}

// Graph returns GRAPH name { ... }.
func Graph(name VarOrIRI, patterns ...GraphPattern) *GroupGraphPattern {
	g := newGroup(namedGraphGroup, patterns)
	g.graph = name
	return g
}

// Union returns the alternatives joined by UNION.
func Union(alternatives ...GraphPattern) *UnionPattern {
	return (&UnionPattern{}).Or(alternatives...)
}

// Bind returns BIND(expression AS ?v).
func Bind(expression Assignable, v Variable) *BindPattern {
	return &BindPattern{assignment: As(expression, v)}
}

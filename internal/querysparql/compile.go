package querysparql

import (
	"fmt"
	"strings"

	"github.com/roach88/spanqit/internal/queryir"
	"github.com/roach88/spanqit/internal/rdf"
	"github.com/roach88/spanqit/internal/sparql"
)

// DefaultMaxDepth bounds pattern nesting when Compiler.MaxDepth is zero.
const DefaultMaxDepth = 32

// freshBlankNode is the token for a blank node with a generated label.
const freshBlankNode = "_:"

// Compiler turns queryir documents into sparql builders.
//
// Compilation is deterministic: the same document always yields the same
// query text.
type Compiler struct {
	// Doc resolves {subquery: name} references. Compiling a query that
	// references another fails when Doc is nil.
	Doc *queryir.Document

	// MaxDepth bounds the nesting of groups and sub-queries.
	MaxDepth int

	// Labels names the fresh blank nodes written as "_:". Nil uses
	// rdf.UUIDLabelGenerator.
	Labels rdf.LabelGenerator
}

// NewCompiler creates a compiler resolving references against doc.
func NewCompiler(doc *queryir.Document) *Compiler {
	return &Compiler{Doc: doc, MaxDepth: DefaultMaxDepth}
}

// CompileNamed compiles the query called name from the compiler's document.
func (c *Compiler) CompileNamed(name string) (sparql.PrettyElement, error) {
	if c.Doc == nil {
		return nil, &CompileError{Query: name, Message: "no document to look up query in"}
	}
	q, ok := c.Doc.Lookup(name)
	if !ok {
		return nil, &CompileError{Query: name, Message: "query not found"}
	}
	return c.Compile(*q)
}

// Compile converts q into a SelectQuery, ConstructQuery, AskQuery or
// DescribeQuery builder.
//
// Prefixed names must use an alias declared by q or by a query it
// references; rdf, rdfs, xsd and owl are declared on first use. Prefixes
// declared by referenced queries are added to q's prologue.
func (c *Compiler) Compile(q queryir.Query) (sparql.PrettyElement, error) {
	st := &compilation{
		c:        c,
		query:    q.Name,
		declared: make(map[string]string),
		stack:    []string{q.Name},
	}

	own, err := st.declare("prefixes", q.Prefixes)
	if err != nil {
		return nil, err
	}

	var result sparql.PrettyElement
	switch q.Form.Normalized() {
	case queryir.FormSelect:
		result, err = st.compileSelect(q)
	case queryir.FormConstruct:
		result, err = st.compileConstruct(q)
	case queryir.FormAsk:
		result, err = st.compileAsk(q)
	case queryir.FormDescribe:
		result, err = st.compileDescribe(q)
	default:
		return nil, st.fail("form", "unknown form %q", q.Form)
	}
	if err != nil {
		return nil, err
	}

	prefixes := append(own, st.extra...)
	switch query := result.(type) {
	case *sparql.SelectQuery:
		query.Prefix(prefixes...)
	case *sparql.ConstructQuery:
		query.Prefix(prefixes...)
	case *sparql.AskQuery:
		query.Prefix(prefixes...)
	case *sparql.DescribeQuery:
		query.Prefix(prefixes...)
	}
	return result, nil
}

// compilation is the state of one Compile call.
type compilation struct {
	c *Compiler

	// query names the query whose elements are being compiled.
	query string

	// declared maps every alias in scope to its namespace.
	declared map[string]string

	// extra holds prefixes declared by referenced queries or implied by
	// well-known aliases, in first-use order.
	extra []sparql.Prefix

	// stack is the chain of query names being expanded.
	stack []string

	depth int
}

func (st *compilation) fail(path, format string, args ...any) *CompileError {
	return &CompileError{Query: st.query, Path: path, Message: fmt.Sprintf(format, args...)}
}

func (st *compilation) wrap(path string, err error) *CompileError {
	return &CompileError{Query: st.query, Path: path, Message: "invalid term", Err: err}
}

func (st *compilation) maxDepth() int {
	if st.c.MaxDepth > 0 {
		return st.c.MaxDepth
	}
	return DefaultMaxDepth
}

func (st *compilation) enter(path string) error {
	st.depth++
	if st.depth > st.maxDepth() {
		return st.fail(path, "nesting exceeds maximum depth %d", st.maxDepth())
	}
	return nil
}

func (st *compilation) leave() { st.depth-- }

// declare brings prefixes into scope and returns them as sparql prefixes.
func (st *compilation) declare(path string, prefixes []queryir.Prefix) ([]sparql.Prefix, error) {
	out := make([]sparql.Prefix, 0, len(prefixes))
	for i, p := range prefixes {
		ppath := fmt.Sprintf("%s[%d]", path, i)
		if !rdf.ValidPrefixLabel(p.Alias) {
			return nil, st.fail(ppath, "invalid prefix alias %q", p.Alias)
		}
		iri, err := parseIRIString(p.IRI)
		if err != nil {
			return nil, st.wrap(ppath, err)
		}
		if existing, ok := st.declared[p.Alias]; ok && existing != iri.Render() {
			return nil, st.fail(ppath, "prefix %q already declared as %s", p.Alias, existing)
		}
		st.declared[p.Alias] = iri.Render()
		out = append(out, sparql.NewPrefix(p.Alias, iri))
	}
	return out, nil
}

// resolve checks that every alias is in scope, declaring well-known ones.
func (st *compilation) resolve(path string, aliases []string) error {
	for _, alias := range aliases {
		if _, ok := st.declared[alias]; ok {
			continue
		}
		ns, known := rdf.WellKnownPrefixes[alias]
		if !known {
			return st.fail(path, "undeclared prefix %q", alias)
		}
		iri := sparql.NewIRI(ns)
		st.declared[alias] = iri.Render()
		st.extra = append(st.extra, sparql.NewPrefix(alias, iri))
	}
	return nil
}

func (st *compilation) term(path string, t queryir.Term) (sparql.QueryElement, error) {
	if t.Kind == queryir.TermToken && t.Text == freshBlankNode {
		labels := st.c.Labels
		if labels == nil {
			labels = rdf.UUIDLabelGenerator{}
		}
		return sparql.FreshBlankNode(labels), nil
	}
	elem, aliases, err := parseTerm(t)
	if err != nil {
		return nil, st.wrap(path, err)
	}
	if err := st.resolve(path, aliases); err != nil {
		return nil, err
	}
	return elem, nil
}

func (st *compilation) subject(path string, t queryir.Term) (sparql.Subject, error) {
	elem, err := st.term(path, t)
	if err != nil {
		return nil, err
	}
	s, ok := elem.(sparql.Subject)
	if !ok {
		return nil, st.fail(path, "%s cannot be a subject", t.Text)
	}
	return s, nil
}

func (st *compilation) predicate(path string, t queryir.Term) (sparql.Predicate, error) {
	elem, err := st.term(path, t)
	if err != nil {
		return nil, err
	}
	p, ok := elem.(sparql.Predicate)
	if !ok {
		return nil, st.fail(path, "%s cannot be a predicate", t.Text)
	}
	return p, nil
}

func (st *compilation) objects(path string, list queryir.TermList) ([]sparql.Object, error) {
	objects := make([]sparql.Object, 0, len(list))
	for i, t := range list {
		opath := fmt.Sprintf("%s[%d]", path, i)
		elem, err := st.term(opath, t)
		if err != nil {
			return nil, err
		}
		o, ok := elem.(sparql.Object)
		if !ok {
			return nil, st.fail(opath, "%s cannot be an object", t.Text)
		}
		objects = append(objects, o)
	}
	return objects, nil
}

func (st *compilation) variable(path, token string) (sparql.Variable, error) {
	elem, err := st.term(path, queryir.Token(token))
	if err != nil {
		return sparql.Variable{}, err
	}
	v, ok := elem.(sparql.Variable)
	if !ok {
		return sparql.Variable{}, st.fail(path, "%s is not a variable", token)
	}
	return v, nil
}

func (st *compilation) varOrIRI(path string, t queryir.Term) (sparql.VarOrIRI, error) {
	elem, err := st.term(path, t)
	if err != nil {
		return nil, err
	}
	v, ok := elem.(sparql.VarOrIRI)
	if !ok {
		return nil, st.fail(path, "%s is neither a variable nor an IRI", t.Text)
	}
	return v, nil
}

func (st *compilation) triple(path string, t queryir.Triple) (*sparql.TriplePattern, error) {
	s, err := st.subject(path+".s", t.S)
	if err != nil {
		return nil, err
	}
	p, err := st.predicate(path+".p", t.P)
	if err != nil {
		return nil, err
	}
	objects, err := st.objects(path+".o", t.O)
	if err != nil {
		return nil, err
	}
	tp, err := sparql.NewTriplePattern(s, p, objects...)
	if err != nil {
		return nil, &CompileError{Query: st.query, Path: path, Message: "invalid triple", Err: err}
	}

	for i, po := range t.Also {
		apath := fmt.Sprintf("%s.also[%d]", path, i)
		ap, err := st.predicate(apath+".p", po.P)
		if err != nil {
			return nil, err
		}
		more, err := st.objects(apath+".o", po.O)
		if err != nil {
			return nil, err
		}
		if len(more) == 0 {
			_, err := sparql.NewTriplePattern(s, ap)
			return nil, &CompileError{Query: st.query, Path: apath, Message: "invalid triple", Err: err}
		}
		tp.AndHas(ap, more[0], more[1:]...)
	}
	return tp, nil
}

func (st *compilation) operand(path string, e queryir.Expr) (sparql.Operand, error) {
	if e.Term != nil {
		elem, err := st.term(path, *e.Term)
		if err != nil {
			return nil, err
		}
		o, ok := elem.(sparql.Operand)
		if !ok {
			return nil, st.fail(path, "%s cannot be used in an expression", e.Term.Text)
		}
		return o, nil
	}
	return st.expression(path, e)
}

func (st *compilation) expression(path string, e queryir.Expr) (*sparql.Expression, error) {
	if err := st.enter(path); err != nil {
		return nil, err
	}
	defer st.leave()

	args := make([]sparql.Operand, 0, len(e.Args))
	for i, a := range e.Args {
		arg, err := st.operand(fmt.Sprintf("%s.args[%d]", path, i), a)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	switch {
	case e.Op != "":
		return st.operator(path, e.Op, args)
	case e.Fn != "":
		return st.call(path, e, args)
	case e.Term != nil:
		return nil, st.fail(path, "%s is a term, not an expression", e.Term.Text)
	default:
		return nil, st.fail(path, "expression is empty")
	}
}

func (st *compilation) operator(path, symbol string, args []sparql.Operand) (*sparql.Expression, error) {
	switch len(args) {
	case 0:
		return nil, st.fail(path, "operator %q has no arguments", symbol)
	case 1:
		op, ok := sparql.ParseUnaryOperator(symbol)
		if !ok {
			return nil, st.fail(path, "operator %q takes two operands", symbol)
		}
		expr, err := sparql.Unary(op, args[0])
		if err != nil {
			return nil, &CompileError{Query: st.query, Path: path, Message: "invalid expression", Err: err}
		}
		return expr, nil
	}

	op, ok := sparql.ParseBinaryOperator(symbol)
	if !ok {
		return nil, st.fail(path, "unknown operator %q", symbol)
	}
	switch {
	case op == sparql.OpAnd:
		return sparql.And(args...), nil
	case op == sparql.OpOr:
		return sparql.Or(args...), nil
	case len(args) != 2:
		return nil, st.fail(path, "operator %q takes two operands, got %d", symbol, len(args))
	}
	expr, err := sparql.Binary(op, args[0], args[1])
	if err != nil {
		return nil, &CompileError{Query: st.query, Path: path, Message: "invalid expression", Err: err}
	}
	return expr, nil
}

func (st *compilation) call(path string, e queryir.Expr, args []sparql.Operand) (*sparql.Expression, error) {
	var expr *sparql.Expression
	name := strings.ToUpper(e.Fn)

	switch {
	case e.Star:
		if name != "COUNT" || len(args) > 0 {
			return nil, st.fail(path, "only COUNT accepts *")
		}
		expr = sparql.CountAll()
	case e.Separator != nil:
		if name != "GROUP_CONCAT" || len(args) != 1 {
			return nil, st.fail(path, "separator requires GROUP_CONCAT with one argument")
		}
		expr = sparql.GroupConcat(args[0], *e.Separator)
	case strings.HasPrefix(e.Fn, "<") || strings.Contains(e.Fn, ":"):
		iri, err := parseIRIToken(e.Fn)
		if err != nil {
			return nil, st.wrap(path, err)
		}
		if err := st.resolve(path, aliasesOf(iri)); err != nil {
			return nil, err
		}
		expr = sparql.CallIRI(iri, args...)
	default:
		if !validFunctionName(e.Fn) {
			return nil, st.fail(path, "invalid function name %q", e.Fn)
		}
		expr = sparql.Call(e.Fn, args...)
	}

	if e.Distinct {
		expr.Distinct()
	}
	return expr, nil
}

func validFunctionName(name string) bool {
	for i, r := range name {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r == '_':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return name != ""
}

func (st *compilation) projection(path string, items []queryir.Projection, distinct bool) (*sparql.Projection, error) {
	projection := sparql.Select().Distinct(distinct)
	for i, item := range items {
		ipath := fmt.Sprintf("%s[%d]", path, i)
		if item.As != "" {
			a, err := st.assignment(ipath, item.Expr, item.As)
			if err != nil {
				return nil, err
			}
			projection.Select(a)
			continue
		}
		elem, err := st.operand(ipath, item.Expr)
		if err != nil {
			return nil, err
		}
		p, ok := elem.(sparql.Projectable)
		if !ok {
			return nil, st.fail(ipath, "only variables and assignments can be projected")
		}
		projection.Select(p)
	}
	return projection, nil
}

func (st *compilation) assignment(path string, e queryir.Expr, as string) (*sparql.Assignment, error) {
	expr, err := st.operand(path+".expr", e)
	if err != nil {
		return nil, err
	}
	v, err := st.variable(path+".as", as)
	if err != nil {
		return nil, err
	}
	return sparql.As(expr, v), nil
}

func (st *compilation) groupBy(path string, items []queryir.Projection) (*sparql.GroupClause, error) {
	clause := sparql.GroupBy()
	for i, item := range items {
		ipath := fmt.Sprintf("%s[%d]", path, i)
		if item.As != "" {
			a, err := st.assignment(ipath, item.Expr, item.As)
			if err != nil {
				return nil, err
			}
			clause.By(a)
			continue
		}
		elem, err := st.operand(ipath, item.Expr)
		if err != nil {
			return nil, err
		}
		g, ok := elem.(sparql.Groupable)
		if !ok {
			return nil, st.fail(ipath, "cannot group by a constant")
		}
		clause.By(g)
	}
	return clause, nil
}

func (st *compilation) having(path string, items []queryir.Expr) (*sparql.HavingClause, error) {
	clause := sparql.Having()
	for i, item := range items {
		constraint, err := st.operand(fmt.Sprintf("%s[%d]", path, i), item)
		if err != nil {
			return nil, err
		}
		clause.By(constraint)
	}
	return clause, nil
}

func (st *compilation) orderBy(path string, items []queryir.Order) (*sparql.OrderClause, error) {
	clause := sparql.OrderBy()
	for i, item := range items {
		ipath := fmt.Sprintf("%s[%d]", path, i)
		elem, err := st.operand(ipath, item.Expr)
		if err != nil {
			return nil, err
		}
		key, ok := elem.(sparql.Orderable)
		if !ok {
			return nil, st.fail(ipath, "cannot order by a constant")
		}
		switch item.Direction {
		case "":
			clause.By(key)
		case queryir.Ascending:
			clause.By(sparql.Asc(key))
		case queryir.Descending:
			clause.By(sparql.Desc(key))
		default:
			return nil, st.fail(ipath, "unknown direction %q", item.Direction)
		}
	}
	return clause, nil
}

// patterns compiles a pattern list into graph patterns and the filters
// that apply to the enclosing group.
func (st *compilation) patterns(path string, items []queryir.Pattern) ([]sparql.GraphPattern, []sparql.Operand, error) {
	var patterns []sparql.GraphPattern
	var filters []sparql.Operand
	for i, item := range items {
		ipath := fmt.Sprintf("%s[%d]", path, i)
		if item.Kind() == queryir.PatternFilter {
			f, err := st.operand(ipath+".filter", *item.Filter)
			if err != nil {
				return nil, nil, err
			}
			filters = append(filters, f)
			continue
		}
		p, err := st.pattern(ipath, item)
		if err != nil {
			return nil, nil, err
		}
		patterns = append(patterns, p)
	}
	return patterns, filters, nil
}

func (st *compilation) group(path string, items []queryir.Pattern, build func(...sparql.GraphPattern) *sparql.GroupGraphPattern) (*sparql.GroupGraphPattern, error) {
	if err := st.enter(path); err != nil {
		return nil, err
	}
	defer st.leave()

	patterns, filters, err := st.patterns(path, items)
	if err != nil {
		return nil, err
	}
	return build(patterns...).Filter(filters...), nil
}

func (st *compilation) pattern(path string, item queryir.Pattern) (sparql.GraphPattern, error) {
	switch item.Kind() {
	case queryir.PatternTriple:
		return st.triple(path+".triple", *item.Triple)
	case queryir.PatternGroup:
		return st.group(path+".group", item.Group, sparql.Group)
	case queryir.PatternOptional:
		return st.group(path+".optional", item.Optional, sparql.Optional)
	case queryir.PatternMinus:
		return st.group(path+".minus", item.Minus, sparql.Minus)
	case queryir.PatternGraph:
		name, err := st.varOrIRI(path+".graph.name", item.Graph.Name)
		if err != nil {
			return nil, err
		}
		return st.group(path+".graph.patterns", item.Graph.Patterns, func(p ...sparql.GraphPattern) *sparql.GroupGraphPattern {
			return sparql.Graph(name, p...)
		})
	case queryir.PatternUnion:
		alternatives := make([]sparql.GraphPattern, 0, len(item.Union))
		for i, alt := range item.Union {
			g, err := st.group(fmt.Sprintf("%s.union[%d]", path, i), alt, sparql.Group)
			if err != nil {
				return nil, err
			}
			alternatives = append(alternatives, g)
		}
		return sparql.Union(alternatives...), nil
	case queryir.PatternBind:
		expr, err := st.operand(path+".bind.expr", item.Bind.Expr)
		if err != nil {
			return nil, err
		}
		v, err := st.variable(path+".bind.as", item.Bind.As)
		if err != nil {
			return nil, err
		}
		return sparql.Bind(expr, v), nil
	case queryir.PatternSubquery:
		return st.subquery(path+".subquery", item.Subquery)
	case queryir.PatternSubselect:
		return st.subselect(path+".subselect", *item.Subselect)
	case "":
		return nil, st.fail(path, "pattern must set exactly one kind")
	default:
		return nil, st.fail(path, "%s is not allowed here", item.Kind())
	}
}

func (st *compilation) subselect(path string, body queryir.Body) (*sparql.SubSelect, error) {
	if err := st.enter(path); err != nil {
		return nil, err
	}
	defer st.leave()

	parts, err := st.body(path, body)
	if err != nil {
		return nil, err
	}
	sub := sparql.NewSubSelect().WithProjection(parts.projection)
	applyBody[*sparql.SubSelect](sub, parts)
	return sub, nil
}

// subquery expands a reference to another query of the document as a
// sub-select. Its prefixes join the outer prologue.
func (st *compilation) subquery(path, name string) (*sparql.SubSelect, error) {
	for _, open := range st.stack {
		if open == name {
			chain := append(append([]string{}, st.stack...), name)
			return nil, st.fail(path, "reference cycle: %s", strings.Join(chain, " -> "))
		}
	}
	if st.c.Doc == nil {
		return nil, st.fail(path, "cannot resolve %q without a document", name)
	}
	ref, ok := st.c.Doc.Lookup(name)
	if !ok {
		return nil, st.fail(path, "unknown query %q", name)
	}
	if ref.Form.Normalized() != queryir.FormSelect {
		return nil, st.fail(path, "query %q is a %s query; only select queries can be embedded", name, ref.Form)
	}

	outer := st.query
	st.query = name
	st.stack = append(st.stack, name)
	defer func() {
		st.query = outer
		st.stack = st.stack[:len(st.stack)-1]
	}()

	prefixes, err := st.declare("prefixes", ref.Prefixes)
	if err != nil {
		return nil, err
	}
	st.extra = append(st.extra, prefixes...)
	return st.subselect("", ref.Body)
}

// compiledBody holds the clauses of a query body.
type compiledBody struct {
	projection *sparql.Projection
	where      *sparql.QueryPattern
	groupBy    *sparql.GroupClause
	having     *sparql.HavingClause
	orderBy    *sparql.OrderClause
	limit      int
	offset     int
}

func (st *compilation) body(path string, b queryir.Body) (compiledBody, error) {
	parts := compiledBody{limit: -1, offset: -1}
	var err error

	if parts.projection, err = st.projection(join(path, "select"), b.Select, b.Distinct); err != nil {
		return parts, err
	}

	patterns, filters, err := st.patterns(join(path, "where"), b.Where)
	if err != nil {
		return parts, err
	}
	parts.where = sparql.Where(patterns...).Filter(filters...)

	if parts.groupBy, err = st.groupBy(join(path, "group_by"), b.GroupBy); err != nil {
		return parts, err
	}
	if parts.having, err = st.having(join(path, "having"), b.Having); err != nil {
		return parts, err
	}
	if parts.orderBy, err = st.orderBy(join(path, "order_by"), b.OrderBy); err != nil {
		return parts, err
	}
	if b.Limit != nil {
		if *b.Limit < 0 {
			return parts, st.fail(join(path, "limit"), "limit must not be negative")
		}
		parts.limit = *b.Limit
	}
	if b.Offset != nil {
		if *b.Offset < 0 {
			return parts, st.fail(join(path, "offset"), "offset must not be negative")
		}
		parts.offset = *b.Offset
	}
	return parts, nil
}

// bodyTarget is the builder surface shared by top-level queries and
// sub-selects.
type bodyTarget[Q any] interface {
	WithWhere(*sparql.QueryPattern) Q
	WithGroupBy(*sparql.GroupClause) Q
	WithHaving(*sparql.HavingClause) Q
	WithOrderBy(*sparql.OrderClause) Q
	Limit(int) Q
	Offset(int) Q
}

func applyBody[Q any](target bodyTarget[Q], parts compiledBody) {
	target.WithWhere(parts.where)
	target.WithGroupBy(parts.groupBy)
	target.WithHaving(parts.having)
	target.WithOrderBy(parts.orderBy)
	target.Limit(parts.limit)
	target.Offset(parts.offset)
}

// outerTarget adds the base and dataset setters of top-level queries.
type outerTarget[Q any] interface {
	bodyTarget[Q]
	Base(sparql.IRI) Q
	From(...sparql.FromClause) Q
}

func applyOuter[Q any](st *compilation, target outerTarget[Q], q queryir.Query, parts compiledBody) error {
	if q.Base != "" {
		iri, err := parseIRIString(q.Base)
		if err != nil {
			return st.wrap("base", err)
		}
		target.Base(iri)
	}
	for i, s := range q.From {
		iri, err := parseIRIString(s)
		if err != nil {
			return st.wrap(fmt.Sprintf("from[%d]", i), err)
		}
		target.From(sparql.From(iri))
	}
	for i, s := range q.FromNamed {
		iri, err := parseIRIString(s)
		if err != nil {
			return st.wrap(fmt.Sprintf("from_named[%d]", i), err)
		}
		target.From(sparql.FromNamed(iri))
	}
	applyBody[Q](target, parts)
	return nil
}

func (st *compilation) compileSelect(q queryir.Query) (sparql.PrettyElement, error) {
	parts, err := st.body("", q.Body)
	if err != nil {
		return nil, err
	}
	query := sparql.NewSelectQuery().WithProjection(parts.projection)
	if err := applyOuter[*sparql.SelectQuery](st, query, q, parts); err != nil {
		return nil, err
	}
	return query, nil
}

func (st *compilation) compileConstruct(q queryir.Query) (sparql.PrettyElement, error) {
	if len(q.Select) > 0 || q.Distinct {
		return nil, st.fail("select", "projection is only valid for select queries")
	}
	parts, err := st.body("", q.Body)
	if err != nil {
		return nil, err
	}
	query := sparql.NewConstructQuery()
	for i, t := range q.Template {
		tp, err := st.triple(fmt.Sprintf("template[%d]", i), t)
		if err != nil {
			return nil, err
		}
		query.Construct(tp)
	}
	if err := applyOuter[*sparql.ConstructQuery](st, query, q, parts); err != nil {
		return nil, err
	}
	return query, nil
}

func (st *compilation) compileAsk(q queryir.Query) (sparql.PrettyElement, error) {
	if len(q.Select) > 0 || q.Distinct {
		return nil, st.fail("select", "projection is only valid for select queries")
	}
	parts, err := st.body("", q.Body)
	if err != nil {
		return nil, err
	}
	query := sparql.NewAskQuery()
	if err := applyOuter[*sparql.AskQuery](st, query, q, parts); err != nil {
		return nil, err
	}
	return query, nil
}

func (st *compilation) compileDescribe(q queryir.Query) (sparql.PrettyElement, error) {
	if len(q.Select) > 0 || q.Distinct {
		return nil, st.fail("select", "projection is only valid for select queries")
	}
	parts, err := st.body("", q.Body)
	if err != nil {
		return nil, err
	}
	query := sparql.NewDescribeQuery()
	for i, t := range q.Describe {
		r, err := st.varOrIRI(fmt.Sprintf("describe[%d]", i), t)
		if err != nil {
			return nil, err
		}
		query.Describe(r)
	}
	if err := applyOuter[*sparql.DescribeQuery](st, query, q, parts); err != nil {
		return nil, err
	}
	return query, nil
}

func join(path, field string) string {
	if path == "" {
		return field
	}
	return path + "." + field
}

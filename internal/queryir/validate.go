package queryir

import (
	"fmt"
	"strings"
)

// Problem is one structural defect found by Validate.
type Problem struct {
	// Query is the name of the query the problem belongs to.
	Query string

	// Path locates the defect inside the query, e.g. "where[2].optional[0]".
	Path string

	Message string
}

func (p Problem) String() string {
	if p.Path == "" {
		return fmt.Sprintf("%s: %s", p.Query, p.Message)
	}
	return fmt.Sprintf("%s: %s: %s", p.Query, p.Path, p.Message)
}

// ValidationResult lists the structural problems of a document.
type ValidationResult struct {
	// IsValid is true when no problem was found.
	IsValid bool

	Problems []Problem
}

// Validate checks a document for structural problems: missing or duplicate
// names, unknown forms, patterns with zero or several kinds, triples
// without objects, malformed expressions and unresolved sub-query
// references.
//
// Term tokens are not parsed here; package querysparql reports bad tokens.
// Reference cycles are detected by package compiler.
//
// Validate is a pure function with no side effects.
func Validate(doc *Document) ValidationResult {
	v := &validator{names: make(map[string]bool)}
	for _, q := range doc.Queries {
		if q.Name != "" {
			if v.names[q.Name] {
				v.query = q.Name
				v.add("", "duplicate query name")
			}
			v.names[q.Name] = true
		}
	}
	for _, q := range doc.Queries {
		v.validateQuery(q)
	}

	return ValidationResult{
		IsValid:  len(v.problems) == 0,
		Problems: v.problems,
	}
}

// validator accumulates problems during traversal.
type validator struct {
	names    map[string]bool
	query    string
	problems []Problem
}

func (v *validator) add(path, format string, args ...any) {
	v.problems = append(v.problems, Problem{
		Query:   v.query,
		Path:    path,
		Message: fmt.Sprintf(format, args...),
	})
}

func (v *validator) validateQuery(q Query) {
	v.query = q.Name
	if q.Name == "" {
		v.query = "<unnamed>"
		v.add("name", "query name is required")
	}
	if !q.Form.IsValid() {
		v.add("form", "unknown form %q", q.Form)
		return
	}

	form := q.Form.Normalized()
	if form != FormConstruct && len(q.Template) > 0 {
		v.add("template", "template is only valid for construct queries")
	}
	if form == FormConstruct && len(q.Template) == 0 {
		v.add("template", "construct query needs at least one template triple")
	}
	if form != FormDescribe && len(q.Describe) > 0 {
		v.add("describe", "describe is only valid for describe queries")
	}
	if form != FormSelect && (len(q.Select) > 0 || q.Distinct) {
		v.add("select", "projection is only valid for select queries")
	}

	for i, p := range q.Prefixes {
		if p.IRI == "" {
			v.add(fmt.Sprintf("prefixes[%d]", i), "prefix %q has no IRI", p.Alias)
		}
	}
	for i, t := range q.Template {
		v.validateTriple(fmt.Sprintf("template[%d]", i), t)
	}

	v.validateBody("", q.Body)
}

func (v *validator) validateBody(path string, b Body) {
	for i, p := range b.Select {
		v.validateProjection(join(path, fmt.Sprintf("select[%d]", i)), p, true)
	}
	v.validatePatterns(join(path, "where"), b.Where)
	for i, p := range b.GroupBy {
		v.validateProjection(join(path, fmt.Sprintf("group_by[%d]", i)), p, false)
	}
	for i, e := range b.Having {
		v.validateExpr(join(path, fmt.Sprintf("having[%d]", i)), e)
	}
	for i, o := range b.OrderBy {
		v.validateExpr(join(path, fmt.Sprintf("order_by[%d]", i)), o.Expr)
	}
	if b.Limit != nil && *b.Limit < 0 {
		v.add(join(path, "limit"), "limit must not be negative")
	}
	if b.Offset != nil && *b.Offset < 0 {
		v.add(join(path, "offset"), "offset must not be negative")
	}
}

func (v *validator) validatePatterns(path string, patterns []Pattern) {
	for i, p := range patterns {
		v.validatePattern(fmt.Sprintf("%s[%d]", path, i), p)
	}
}

func (v *validator) validatePattern(path string, p Pattern) {
	kinds := p.Kinds()
	switch len(kinds) {
	case 0:
		v.add(path, "pattern is empty")
		return
	case 1:
	default:
		names := make([]string, len(kinds))
		for i, k := range kinds {
			names[i] = string(k)
		}
		v.add(path, "pattern sets several kinds: %s", strings.Join(names, ", "))
		return
	}

	switch kinds[0] {
	case PatternTriple:
		v.validateTriple(path+".triple", *p.Triple)
	case PatternGroup:
		v.validatePatterns(path+".group", p.Group)
	case PatternOptional:
		v.validatePatterns(path+".optional", p.Optional)
	case PatternMinus:
		v.validatePatterns(path+".minus", p.Minus)
	case PatternGraph:
		if p.Graph.Name.Text == "" {
			v.add(path+".graph.name", "graph name is required")
		}
		v.validatePatterns(path+".graph.patterns", p.Graph.Patterns)
	case PatternUnion:
		if len(p.Union) < 2 {
			v.add(path+".union", "union needs at least two alternatives")
		}
		for i, alt := range p.Union {
			v.validatePatterns(fmt.Sprintf("%s.union[%d]", path, i), alt)
		}
	case PatternFilter:
		v.validateExpr(path+".filter", *p.Filter)
	case PatternBind:
		v.validateExpr(path+".bind.expr", p.Bind.Expr)
		if p.Bind.As == "" {
			v.add(path+".bind.as", "bind target variable is required")
		}
	case PatternSubquery:
		if !v.names[p.Subquery] {
			v.add(path+".subquery", "unknown query %q", p.Subquery)
		}
	case PatternSubselect:
		v.validateBody(path+".subselect", *p.Subselect)
	}
}

func (v *validator) validateTriple(path string, t Triple) {
	if t.S.Text == "" {
		v.add(path+".s", "subject is required")
	}
	if t.P.Text == "" {
		v.add(path+".p", "predicate is required")
	}
	if len(t.O) == 0 {
		v.add(path+".o", "at least one object is required")
	}
	for i, po := range t.Also {
		if po.P.Text == "" {
			v.add(fmt.Sprintf("%s.also[%d].p", path, i), "predicate is required")
		}
		if len(po.O) == 0 {
			v.add(fmt.Sprintf("%s.also[%d].o", path, i), "at least one object is required")
		}
	}
}

// validateProjection checks a SELECT or GROUP BY item. SELECT requires
// expressions to be bound to a variable; GROUP BY does not.
func (v *validator) validateProjection(path string, p Projection, requireAs bool) {
	v.validateExpr(path, p.Expr)
	if requireAs && p.As == "" && p.Expr.Term == nil {
		v.add(path, "expression must be bound with as")
	}
}

func (v *validator) validateExpr(path string, e Expr) {
	if e.Term != nil {
		return
	}
	switch {
	case e.Op != "" && len(e.Args) == 0:
		v.add(path, "operator %q has no arguments", e.Op)
	case e.Fn != "" && e.Star && len(e.Args) > 0:
		v.add(path, "function %q has both star and arguments", e.Fn)
	case e.Op == "" && e.Fn == "":
		v.add(path, "expression is empty")
	}
	for i, arg := range e.Args {
		v.validateExpr(fmt.Sprintf("%s.args[%d]", path, i), arg)
	}
}

func join(path, field string) string {
	if path == "" {
		return field
	}
	return path + "." + field
}

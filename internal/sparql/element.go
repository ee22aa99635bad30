package sparql

import "strings"

// QueryElement is anything that can be written as SPARQL text.
//
// Render returns the compact form: a single line with single-space
// separation. Render is a pure function of the element's current state.
type QueryElement interface {
	Render() string
}

// PrettyElement is a QueryElement with indentation-aware rendering.
//
// The first line of RenderPretty's output carries no leading indentation
// (the caller positions it); every following line is indented absolutely
// for the given depth.
type PrettyElement interface {
	QueryElement
	RenderPretty(indent int) string
}

// Pretty renders e at the given indent depth. Elements without pretty logic
// fall back to their compact form.
func Pretty(e QueryElement, indent int) string {
	if p, ok := e.(PrettyElement); ok {
		return p.RenderPretty(indent)
	}
	return e.Render()
}

// Capability interfaces. They are sealed: only types in this package
// implement them, so every slot accepts a closed, known set of fillers.

// Subject can fill the subject slot of a triple pattern.
type Subject interface {
	QueryElement
	subject()
}

// Predicate can fill the predicate slot of a triple pattern.
type Predicate interface {
	QueryElement
	predicate()
}

// Object can fill an object slot of a triple pattern.
type Object interface {
	QueryElement
	object()
}

// Projectable can appear in a SELECT list.
type Projectable interface {
	QueryElement
	projectable()
}

// Groupable can appear in a GROUP BY clause.
type Groupable interface {
	QueryElement
	groupable()
}

// Orderable can appear in an ORDER BY clause.
type Orderable interface {
	QueryElement
	orderable()
}

// Operand is anything usable inside an expression.
type Operand interface {
	QueryElement
	operand()
}

// Assignable is an expression whose value can be bound to a variable.
type Assignable = Operand

// VarOrIRI names a graph in GRAPH patterns or a resource in DESCRIBE.
type VarOrIRI interface {
	QueryElement
	varOrIRI()
}

// GraphPattern is one unit of a WHERE clause body.
type GraphPattern interface {
	QueryElement
	IsEmpty() bool
	graphPattern()
}

const indentUnit = "  "

func indentation(level int) string {
	if level <= 0 {
		return ""
	}
	return strings.Repeat(indentUnit, level)
}

// renderer renders one element in whichever mode the caller is in.
type renderer func(QueryElement) string

func compactRenderer() renderer {
	return func(e QueryElement) string { return e.Render() }
}

func prettyRenderer(indent int) renderer {
	return func(e QueryElement) string { return Pretty(e, indent) }
}

func joinElements[T QueryElement](elements []T, sep string) string {
	parts := make([]string, len(elements))
	for i, e := range elements {
		parts[i] = e.Render()
	}
	return strings.Join(parts, sep)
}

// joinParts joins the non-empty parts with sep.
func joinParts(parts []string, sep string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// keywordClause renders keyword followed by parts, or "" when there are none.
func keywordClause(keyword string, parts []string) string {
	if len(parts) == 0 {
		return ""
	}
	return keyword + " " + strings.Join(parts, " ")
}

func bracketed(content string) string {
	if content == "" {
		return "{}"
	}
	return "{ " + content + " }"
}

// bracketedLines renders lines inside braces, one per line at indent+1.
func bracketedLines(lines []string, indent int) string {
	if len(lines) == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteString("{\n")
	inner := indentation(indent + 1)
	for _, line := range lines {
		b.WriteString(inner)
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(indentation(indent))
	b.WriteString("}")
	return b.String()
}

func parenthesized(content string) string {
	return "(" + content + ")"
}

package sparql

import (
	"math"
	"strconv"
	"strings"

	"github.com/roach88/spanqit/internal/rdf"
)

// Variable is a named query variable, rendered as ?name.
// Variables compare and render by name, so one instance can be shared by
// any number of clauses.
type Variable struct {
	name string
}

// Name returns the variable name without its sigil.
func (v Variable) Name() string { return v.name }

// Render implements QueryElement.
func (v Variable) Render() string { return "?" + v.name }

// Has builds a triple pattern with v as subject.
func (v Variable) Has(p Predicate, o Object, more ...Object) *TriplePattern {
	return newTriple(v, p, o, more)
}

// IsA builds "v a o" using the rdf:type shortcut.
func (v Variable) IsA(o Object, more ...Object) *TriplePattern {
	return newTriple(v, A, o, more)
}

func (Variable) subject()     {}
func (Variable) predicate()   {}
func (Variable) object()      {}
func (Variable) projectable() {}
func (Variable) groupable()   {}
func (Variable) orderable()   {}
func (Variable) operand()     {}
func (Variable) varOrIRI()    {}

// IRI is an IRI reference, either absolute (<http://...>) or a prefixed
// name (ex:Thing). The zero IRI is empty and renders as "<>".
type IRI struct {
	value    string
	prefix   string
	prefixed bool
}

// NewIRI returns an absolute IRI reference. The value is NFC normalized
// but not validated; use ParseIRI for untrusted input.
func NewIRI(iri string) IRI {
	return IRI{value: rdf.NormalizeIRI(iri)}
}

// ParseIRI validates iri and returns it as an absolute IRI reference.
func ParseIRI(iri string) (IRI, error) {
	if err := rdf.ValidateIRI(iri); err != nil {
		return IRI{}, err
	}
	return NewIRI(iri), nil
}

// PrefixedName returns the IRI prefix:local. The prefix must be declared by
// the enclosing query for the result to resolve.
func PrefixedName(prefix, local string) IRI {
	return IRI{value: local, prefix: prefix, prefixed: true}
}

// PrefixLabel returns the alias of a prefixed name. ok is false for
// absolute IRIs.
func (i IRI) PrefixLabel() (alias string, ok bool) {
	return i.prefix, i.prefixed
}

// IsZero reports whether i is the zero IRI.
func (i IRI) IsZero() bool { return i == IRI{} }

// Render implements QueryElement.
func (i IRI) Render() string {
	if i.prefixed {
		return i.prefix + ":" + i.value
	}
	return rdf.FormatIRI(i.value)
}

// Has builds a triple pattern with i as subject.
func (i IRI) Has(p Predicate, o Object, more ...Object) *TriplePattern {
	return newTriple(i, p, o, more)
}

// IsA builds "i a o" using the rdf:type shortcut.
func (i IRI) IsA(o Object, more ...Object) *TriplePattern {
	return newTriple(i, A, o, more)
}

func (IRI) subject()   {}
func (IRI) predicate() {}
func (IRI) object()    {}
func (IRI) operand()   {}
func (IRI) varOrIRI()  {}

type rdfTypeShortcut struct{}

func (rdfTypeShortcut) Render() string { return "a" }
func (rdfTypeShortcut) predicate()     {}

// A is the reserved "a" predicate, shorthand for rdf:type.
var A Predicate = rdfTypeShortcut{}

// Literal is an RDF literal value.
type Literal struct {
	lexical  string
	lang     string
	datatype IRI
	bare     bool
}

// StringLiteral returns a plain string literal.
func StringLiteral(s string) Literal {
	return Literal{lexical: s}
}

// LangLiteral returns a language-tagged string literal.
func LangLiteral(s, lang string) Literal {
	return Literal{lexical: s, lang: lang}
}

// TypedLiteral returns a literal with an explicit datatype.
func TypedLiteral(s string, datatype IRI) Literal {
	return Literal{lexical: s, datatype: datatype}
}

// Int returns an integer literal in its unquoted short form.
func Int(n int64) Literal {
	return Literal{lexical: strconv.FormatInt(n, 10), bare: true}
}

// Float returns a decimal literal in its unquoted short form. NaN and the
// infinities have no short form and render typed as xsd:double.
func Float(f float64) Literal {
	switch {
	case math.IsNaN(f):
		return TypedLiteral("NaN", NewIRI(rdf.XSDDouble))
	case math.IsInf(f, 1):
		return TypedLiteral("INF", NewIRI(rdf.XSDDouble))
	case math.IsInf(f, -1):
		return TypedLiteral("-INF", NewIRI(rdf.XSDDouble))
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return Literal{lexical: s, bare: true}
}

// Bool returns a boolean literal in its unquoted short form.
func Bool(b bool) Literal {
	return Literal{lexical: strconv.FormatBool(b), bare: true}
}

// Render implements QueryElement.
func (l Literal) Render() string {
	if l.bare {
		return l.lexical
	}
	datatype := ""
	if !l.datatype.IsZero() {
		datatype = l.datatype.Render()
	}
	return rdf.FormatLiteral(l.lexical, l.lang, datatype)
}

func (Literal) object()  {}
func (Literal) operand() {}

// BlankNode is a labeled (_:label) or anonymous ([]) blank node.
type BlankNode struct {
	label string
}

// NewBlankNode returns the blank node _:label.
func NewBlankNode(label string) BlankNode {
	return BlankNode{label: label}
}

// FreshBlankNode returns a blank node labeled by gen.
func FreshBlankNode(gen rdf.LabelGenerator) BlankNode {
	return BlankNode{label: gen.Next()}
}

// Anon returns the anonymous blank node [].
func Anon() BlankNode {
	return BlankNode{}
}

// Render implements QueryElement.
func (b BlankNode) Render() string {
	if b.label == "" {
		return "[]"
	}
	return "_:" + b.label
}

// Has builds a triple pattern with b as subject.
func (b BlankNode) Has(p Predicate, o Object, more ...Object) *TriplePattern {
	return newTriple(b, p, o, more)
}

// IsA builds "b a o" using the rdf:type shortcut.
func (b BlankNode) IsA(o Object, more ...Object) *TriplePattern {
	return newTriple(b, A, o, more)
}

func (BlankNode) subject() {}
func (BlankNode) object()  {}

// predicateObjects is one predicate with its object list: "p o1, o2".
type predicateObjects struct {
	predicate Predicate
	objects   []Object
}

func (po predicateObjects) render() string {
	return po.predicate.Render() + " " + joinElements(po.objects, ", ")
}

func renderPredicateObjects(lists []predicateObjects) string {
	parts := make([]string, len(lists))
	for i, po := range lists {
		parts[i] = po.render()
	}
	return strings.Join(parts, " ; ")
}

// BlankNodePropertyList is a nested pattern "[ p o ; p2 o2 ]" that acts as
// a subject or object in an enclosing triple.
type BlankNodePropertyList struct {
	lists []predicateObjects
}

// PropertyList starts a blank node property list.
func PropertyList(p Predicate, o Object, more ...Object) *BlankNodePropertyList {
	return &BlankNodePropertyList{
		lists: []predicateObjects{{predicate: p, objects: append([]Object{o}, more...)}},
	}
}

// AndHas adds another predicate-object list.
func (pl *BlankNodePropertyList) AndHas(p Predicate, o Object, more ...Object) *BlankNodePropertyList {
	pl.lists = append(pl.lists, predicateObjects{predicate: p, objects: append([]Object{o}, more...)})
	return pl
}

// Render implements QueryElement.
func (pl *BlankNodePropertyList) Render() string {
	return "[ " + renderPredicateObjects(pl.lists) + " ]"
}

// Has builds a triple pattern with the property list as subject.
func (pl *BlankNodePropertyList) Has(p Predicate, o Object, more ...Object) *TriplePattern {
	return newTriple(pl, p, o, more)
}

// IsA builds "[ ... ] a o" using the rdf:type shortcut.
func (pl *BlankNodePropertyList) IsA(o Object, more ...Object) *TriplePattern {
	return newTriple(pl, A, o, more)
}

func (*BlankNodePropertyList) subject() {}
func (*BlankNodePropertyList) object()  {}

// Package queryir describes SPARQL queries as data.
//
// A Document holds named queries written in YAML, JSON or CUE. Each Query
// mirrors the builder surface of package sparql: prologue, query form,
// dataset, WHERE patterns and solution modifiers. Documents carry no
// behavior; package querysparql turns them into sparql builders and package
// compiler produces them from CUE.
//
// TERMS:
//
// RDF terms are written as single tokens and kept verbatim until
// compilation:
//
//	?x  $x                    variable
//	<http://example.org/a>    IRI
//	http://example.org/a      IRI (bare, http and https only)
//	ex:Thing                  prefixed name
//	a                         rdf:type shortcut
//	_:b1  []                  blank node
//	"text"  "text"@en         string literal
//	"5"^^xsd:integer          typed literal
//
// Bare YAML or JSON numbers and booleans become Integer, Decimal and
// Boolean terms.
//
// EXPRESSIONS:
//
// An expression is a term, an operator application or a function call:
//
//	{op: ">", args: ["?n", 3]}
//	{fn: COUNT, args: ["?x"], distinct: true}
//	{fn: COUNT, star: true}
//
// SUB-QUERIES:
//
// A pattern may inline a sub-select or reference another query of the same
// document by name ({subquery: other}). References are resolved at
// compile time; Validate and References expose them for cycle analysis.
package queryir

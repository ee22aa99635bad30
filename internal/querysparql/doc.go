// Package querysparql compiles query documents into sparql builders.
//
// Each queryir.Query becomes the matching top-level builder. Terms are
// parsed from their token form ("?x", "ex:Thing", "<http://...>", "\"a\"@en",
// "_:b") and every prefixed name must resolve to a declared alias. A bare
// "_:" is a fresh blank node named by Compiler.Labels. A
// {subquery: name} pattern embeds another select query of the same document
// as a sub-select, and reference cycles are reported as compile errors.
package querysparql

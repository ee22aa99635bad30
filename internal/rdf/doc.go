// Package rdf holds the term-level rules the query builder relies on but does
// not own: IRI validation and normalization, literal escaping, language tags,
// common vocabulary IRIs and blank-node label generation.
//
// Every string that reaches query text through this package is NFC
// normalized, so two visually identical IRIs always render to the same bytes.
// This package imports nothing internal.
package rdf

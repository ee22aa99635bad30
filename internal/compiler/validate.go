package compiler

import (
	"errors"
	"fmt"

	"github.com/roach88/spanqit/internal/queryir"
	"github.com/roach88/spanqit/internal/querysparql"
	"github.com/roach88/spanqit/internal/sparql"
)

// Validation error codes (E100-E199)
const (
	ErrDocumentStructure = "E101" // structural problem reported by queryir.Validate
	ErrReferenceCycle    = "E102" // query reaches itself through sub-queries
	ErrInvalidTerm       = "E103" // term, prefix or expression cannot be compiled
	ErrInvalidTriple     = "E104" // triple pattern without objects
)

// ValidationError represents a document validation error.
type ValidationError struct {
	Query   string `json:"query"`
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Query, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s: %s", e.Code, e.Query, e.Field, e.Message)
}

// Validate checks a query document in three passes: structure, reference
// cycles, then a trial compilation of every query the first two passes
// found nothing wrong with.
// Returns all errors found (does not fail-fast).
func Validate(doc *queryir.Document) []ValidationError {
	var errs []ValidationError

	broken := make(map[string]bool)
	for _, p := range queryir.Validate(doc).Problems {
		errs = append(errs, ValidationError{
			Query:   p.Query,
			Field:   p.Path,
			Message: p.Message,
			Code:    ErrDocumentStructure,
		})
		broken[p.Query] = true
	}

	for _, w := range AnalyzeCycles(doc) {
		errs = append(errs, ValidationError{
			Query:   w.Path[0],
			Message: w.Message,
			Code:    ErrReferenceCycle,
		})
		for _, name := range w.Path {
			broken[name] = true
		}
	}

	c := querysparql.NewCompiler(doc)
	for _, q := range doc.Queries {
		if broken[q.Name] || dependsOnBroken(doc, q.Name, broken, map[string]bool{}) {
			continue
		}
		if _, err := c.Compile(q); err != nil {
			errs = append(errs, compileFailure(q.Name, err))
		}
	}
	return errs
}

// dependsOnBroken reports whether name embeds, directly or not, a query
// that already failed validation.
func dependsOnBroken(doc *queryir.Document, name string, broken, seen map[string]bool) bool {
	if seen[name] {
		return false
	}
	seen[name] = true
	q, ok := doc.Lookup(name)
	if !ok {
		return false
	}
	for _, ref := range queryir.References(*q) {
		if broken[ref] || dependsOnBroken(doc, ref, broken, seen) {
			return true
		}
	}
	return false
}

func compileFailure(name string, err error) ValidationError {
	ve := ValidationError{Query: name, Message: err.Error(), Code: ErrInvalidTerm}

	var ce *querysparql.CompileError
	if errors.As(err, &ce) {
		ve.Query, ve.Field, ve.Message = ce.Query, ce.Path, ce.Message
		if ce.Err != nil {
			ve.Message = fmt.Sprintf("%s: %v", ce.Message, ce.Err)
		}
	}
	if sparql.IsInvalidPatternError(err) {
		ve.Code = ErrInvalidTriple
	}
	return ve
}

package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/spanqit/internal/queryir"
	"github.com/roach88/spanqit/internal/querysparql"
)

func decode(t *testing.T, src string) *queryir.Document {
	t.Helper()
	d, err := queryir.DecodeYAML([]byte(src))
	require.NoError(t, err)
	return d
}

func codes(errs []ValidationError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Code
	}
	return out
}

func TestValidate_Valid(t *testing.T) {
	d := decode(t, `
queries:
  - name: people
    prefixes: [{alias: ex, iri: "http://example.org/"}]
    select: ["?x"]
    where:
      - triple: {s: "?x", p: a, o: "ex:Person"}
      - subquery: adults
  - name: adults
    prefixes: [{alias: ex, iri: "http://example.org/"}]
    select: ["?x"]
    where:
      - triple: {s: "?x", p: "ex:age", o: "?age"}
`)
	assert.Empty(t, Validate(d), "valid document should have no errors")
}

func TestValidate_StructuralProblem(t *testing.T) {
	d := decode(t, `
queries:
  - name: q
    where:
      - {}
`)
	errs := Validate(d)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrDocumentStructure, errs[0].Code)
	assert.Equal(t, "q", errs[0].Query)
	assert.Equal(t, "where[0]", errs[0].Field)
}

func TestValidate_Cycle(t *testing.T) {
	d := decode(t, `
queries:
  - name: a
    where: [{subquery: b}]
  - name: b
    where: [{subquery: a}]
  - name: c
    where: [{subquery: a}]
`)
	errs := Validate(d)
	require.Len(t, errs, 1, "only the cycle is reported; c is skipped")
	assert.Equal(t, ErrReferenceCycle, errs[0].Code)
	assert.Equal(t, "a", errs[0].Query)
	assert.Contains(t, errs[0].Message, "a -> b -> a")
}

func TestValidate_InvalidTerm(t *testing.T) {
	d := decode(t, `
queries:
  - name: q
    where:
      - triple: {s: "?x", p: "nope:p", o: "?y"}
`)
	errs := Validate(d)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrInvalidTerm, errs[0].Code)
	assert.Equal(t, "where[0].triple.p", errs[0].Field)
	assert.Contains(t, errs[0].Message, `undeclared prefix "nope"`)
}

func TestValidate_InvalidTermInReferencedQuery(t *testing.T) {
	d := decode(t, `
queries:
  - name: outer
    where: [{subquery: inner}]
  - name: inner
    select: ["?x"]
    where:
      - triple: {s: "?x", p: "<http://example.org/p>", o: "?bad-var"}
`)
	errs := Validate(d)
	require.Len(t, errs, 2)
	assert.Equal(t, []string{ErrInvalidTerm, ErrInvalidTerm}, codes(errs))
	for _, e := range errs {
		assert.Equal(t, "inner", e.Query, "errors point at the query holding the term")
	}
}

func TestValidate_TripleWithoutObjects(t *testing.T) {
	d := &queryir.Document{Queries: []queryir.Query{{
		Name: "q",
		Body: queryir.Body{Where: []queryir.Pattern{{Triple: &queryir.Triple{
			S:    queryir.Token("?x"),
			P:    queryir.Token("<http://example.org/p>"),
			O:    queryir.TermList{queryir.Token("?y")},
			Also: []queryir.PredicateObject{{P: queryir.Token("<http://example.org/q>")}},
		}}}},
	}}}

	errs := Validate(d)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrDocumentStructure, errs[0].Code)
	assert.Equal(t, "where[0].triple.also[0].o", errs[0].Field)
}

func TestCompileFailure_InvalidPattern(t *testing.T) {
	q := queryir.Query{
		Name: "q",
		Body: queryir.Body{Where: []queryir.Pattern{{Triple: &queryir.Triple{
			S: queryir.Token("?x"),
			P: queryir.Token("<http://example.org/p>"),
		}}}},
	}
	_, err := querysparql.NewCompiler(nil).Compile(q)
	require.Error(t, err)

	ve := compileFailure("q", err)
	assert.Equal(t, ErrInvalidTriple, ve.Code)
	assert.Equal(t, "where[0].triple", ve.Field)
	assert.Contains(t, ve.Message, "at least one object is required")
}

func TestValidationError_Error(t *testing.T) {
	e := ValidationError{Query: "q", Field: "where[0]", Message: "pattern is empty", Code: ErrDocumentStructure}
	assert.Equal(t, "[E101] q: where[0]: pattern is empty", e.Error())

	e.Field = ""
	assert.Equal(t, "[E101] q: pattern is empty", e.Error())
}

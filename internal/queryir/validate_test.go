package queryir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func triple(s, p string, o ...string) Pattern {
	objects := make(TermList, len(o))
	for i, obj := range o {
		objects[i] = Token(obj)
	}
	return Pattern{Triple: &Triple{S: Token(s), P: Token(p), O: objects}}
}

func varExpr(name string) Expr {
	term := Token(name)
	return Expr{Term: &term}
}

func TestValidate_ValidDocument(t *testing.T) {
	doc := &Document{Queries: []Query{
		{
			Name: "things",
			Body: Body{
				Select: []Projection{{Expr: varExpr("?x")}},
				Where:  []Pattern{triple("?x", "a", "ex:Thing"), {Subquery: "named"}},
				Limit:  intPtr(3),
			},
		},
		{
			Name: "named",
			Body: Body{Where: []Pattern{triple("?x", "ex:name", "?n")}},
		},
		{
			Name:     "graph",
			Form:     FormConstruct,
			Template: []Triple{*triple("?x", "a", "ex:Copy").Triple},
			Body:     Body{Where: []Pattern{triple("?x", "a", "ex:Thing")}},
		},
	}}

	result := Validate(doc)
	assert.True(t, result.IsValid, "problems: %v", result.Problems)
	assert.Empty(t, result.Problems)
}

func TestValidate_Problems(t *testing.T) {
	testCases := []struct {
		name  string
		query Query
		path  string
		msg   string
	}{
		{
			name:  "missing name",
			query: Query{},
			path:  "name",
			msg:   "query name is required",
		},
		{
			name:  "unknown form",
			query: Query{Name: "q", Form: "update"},
			path:  "form",
			msg:   `unknown form "update"`,
		},
		{
			name:  "template on select",
			query: Query{Name: "q", Template: []Triple{*triple("?x", "a", "ex:T").Triple}},
			path:  "template",
			msg:   "template is only valid for construct queries",
		},
		{
			name:  "construct without template",
			query: Query{Name: "q", Form: FormConstruct},
			path:  "template",
			msg:   "construct query needs at least one template triple",
		},
		{
			name:  "select on ask",
			query: Query{Name: "q", Form: FormAsk, Body: Body{Select: []Projection{{Expr: varExpr("?x")}}}},
			path:  "select",
			msg:   "projection is only valid for select queries",
		},
		{
			name:  "describe on select",
			query: Query{Name: "q", Describe: []Term{Token("?x")}},
			path:  "describe",
			msg:   "describe is only valid for describe queries",
		},
		{
			name:  "empty pattern",
			query: Query{Name: "q", Body: Body{Where: []Pattern{{}}}},
			path:  "where[0]",
			msg:   "pattern is empty",
		},
		{
			name:  "two kinds",
			query: Query{Name: "q", Body: Body{Where: []Pattern{{Triple: &Triple{}, Minus: []Pattern{}}}}},
			path:  "where[0]",
			msg:   "pattern sets several kinds: triple, minus",
		},
		{
			name:  "triple without objects",
			query: Query{Name: "q", Body: Body{Where: []Pattern{triple("?x", "a")}}},
			path:  "where[0].triple.o",
			msg:   "at least one object is required",
		},
		{
			name:  "nested optional",
			query: Query{Name: "q", Body: Body{Where: []Pattern{{Optional: []Pattern{{}}}}}},
			path:  "where[0].optional[0]",
			msg:   "pattern is empty",
		},
		{
			name:  "union with one alternative",
			query: Query{Name: "q", Body: Body{Where: []Pattern{{Union: [][]Pattern{{triple("?x", "a", "ex:T")}}}}}},
			path:  "where[0].union",
			msg:   "union needs at least two alternatives",
		},
		{
			name:  "unknown subquery",
			query: Query{Name: "q", Body: Body{Where: []Pattern{{Subquery: "missing"}}}},
			path:  "where[0].subquery",
			msg:   `unknown query "missing"`,
		},
		{
			name:  "bind without target",
			query: Query{Name: "q", Body: Body{Where: []Pattern{{Bind: &Bind{Expr: varExpr("?x")}}}}},
			path:  "where[0].bind.as",
			msg:   "bind target variable is required",
		},
		{
			name: "unbound select expression",
			query: Query{Name: "q", Body: Body{Select: []Projection{
				{Expr: Expr{Fn: "COUNT", Args: []Expr{varExpr("?x")}}},
			}}},
			path: "select[0]",
			msg:  "expression must be bound with as",
		},
		{
			name:  "operator without args",
			query: Query{Name: "q", Body: Body{Having: []Expr{{Op: ">"}}}},
			path:  "having[0]",
			msg:   `operator ">" has no arguments`,
		},
		{
			name:  "negative limit",
			query: Query{Name: "q", Body: Body{Limit: intPtr(-1)}},
			path:  "limit",
			msg:   "limit must not be negative",
		},
		{
			name: "subselect body",
			query: Query{Name: "q", Body: Body{Where: []Pattern{
				{Subselect: &Body{Offset: intPtr(-2)}},
			}}},
			path: "where[0].subselect.offset",
			msg:  "offset must not be negative",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := Validate(&Document{Queries: []Query{tc.query}})
			assert.False(t, result.IsValid)
			require.NotEmpty(t, result.Problems)

			found := false
			for _, p := range result.Problems {
				if p.Path == tc.path && p.Message == tc.msg {
					found = true
				}
			}
			assert.True(t, found, "expected %s: %s in %v", tc.path, tc.msg, result.Problems)
		})
	}
}

func TestValidate_GroupByExpressionNeedsNoAs(t *testing.T) {
	doc := &Document{Queries: []Query{{
		Name: "q",
		Body: Body{GroupBy: []Projection{{Expr: Expr{Fn: "STR", Args: []Expr{varExpr("?x")}}}}},
	}}}
	assert.True(t, Validate(doc).IsValid)
}

func TestValidate_DuplicateNames(t *testing.T) {
	doc := &Document{Queries: []Query{{Name: "q"}, {Name: "q"}}}
	result := Validate(doc)
	require.Len(t, result.Problems, 1)
	assert.Equal(t, "q: duplicate query name", result.Problems[0].String())
}

func TestProblem_String(t *testing.T) {
	p := Problem{Query: "q", Path: "where[0]", Message: "pattern is empty"}
	assert.Equal(t, "q: where[0]: pattern is empty", p.String())
}

package queryir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullYAML = `
queries:
  - name: people
    description: named people with their friend count
    base: http://example.org/base/
    prefixes:
      - {alias: ex, iri: "http://example.org/"}
    from: ["http://example.org/g1"]
    from_named: ["http://example.org/g2"]
    distinct: true
    select:
      - "?name"
      - {expr: {fn: COUNT, args: ["?friend"], distinct: true}, as: "?friends"}
    where:
      - triple: {s: "?x", p: a, o: "ex:Person", also: [{p: "ex:name", o: ["?name"]}]}
      - optional:
          - triple: {s: "?x", p: "ex:knows", o: ["?friend"]}
      - filter: {op: ">", args: ["?age", 18]}
      - bind: {expr: {op: "*", args: ["?age", 1.5]}, as: "?scaled"}
      - subquery: adults
    group_by: ["?name"]
    having:
      - {op: ">", args: [{fn: COUNT, star: true}, 1]}
    order_by:
      - desc: "?friends"
      - "?name"
    limit: 10
    offset: 5
  - name: adults
    select: ["?x"]
    where:
      - triple: {s: "?x", p: "ex:age", o: "?age"}
`

func TestDecodeYAML_Full(t *testing.T) {
	doc, err := DecodeYAML([]byte(fullYAML))
	require.NoError(t, err)
	require.Len(t, doc.Queries, 2)

	q := doc.Queries[0]
	assert.Equal(t, "people", q.Name)
	assert.Equal(t, "http://example.org/base/", q.Base)
	assert.Equal(t, []Prefix{{Alias: "ex", IRI: "http://example.org/"}}, q.Prefixes)
	assert.Equal(t, []string{"http://example.org/g1"}, q.From)
	assert.Equal(t, []string{"http://example.org/g2"}, q.FromNamed)
	assert.True(t, q.Distinct)

	require.Len(t, q.Select, 2)
	assert.Equal(t, Token("?name"), *q.Select[0].Expr.Term)
	assert.Equal(t, "?friends", q.Select[1].As)
	assert.Equal(t, "COUNT", q.Select[1].Expr.Fn)
	assert.True(t, q.Select[1].Expr.Distinct)

	require.Len(t, q.Where, 5)
	triple := q.Where[0].Triple
	require.NotNil(t, triple)
	assert.Equal(t, Token("a"), triple.P)
	assert.Equal(t, TermList{Token("ex:Person")}, triple.O)
	require.Len(t, triple.Also, 1)
	assert.Equal(t, TermList{Token("?name")}, triple.Also[0].O)

	assert.Equal(t, PatternOptional, q.Where[1].Kind())

	filter := q.Where[2].Filter
	require.NotNil(t, filter)
	assert.Equal(t, ">", filter.Op)
	assert.Equal(t, Term{Kind: TermInteger, Text: "18"}, *filter.Args[1].Term)

	bind := q.Where[3].Bind
	require.NotNil(t, bind)
	assert.Equal(t, Term{Kind: TermDecimal, Text: "1.5"}, *bind.Expr.Args[1].Term)

	assert.Equal(t, "adults", q.Where[4].Subquery)

	require.Len(t, q.Having, 1)
	assert.True(t, q.Having[0].Args[0].Star)

	require.Len(t, q.OrderBy, 2)
	assert.Equal(t, Descending, q.OrderBy[0].Direction)
	assert.Equal(t, "", q.OrderBy[1].Direction)

	require.NotNil(t, q.Limit)
	assert.Equal(t, 10, *q.Limit)
	require.NotNil(t, q.Offset)
	assert.Equal(t, 5, *q.Offset)
}

func TestDecodeYAML_RejectsUnknownFields(t *testing.T) {
	_, err := DecodeYAML([]byte("queries:\n  - name: q\n    selct: [\"?x\"]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "selct")
}

func TestDecodeYAML_RejectsBadExpressions(t *testing.T) {
	testCases := []struct {
		name string
		expr string
		want string
	}{
		{name: "both op and fn", expr: `{op: "+", fn: STR, args: ["?x"]}`, want: "both op"},
		{name: "neither", expr: `{args: ["?x"]}`, want: "needs op or fn"},
		{name: "unknown key", expr: `{op: "+", argz: ["?x"]}`, want: "argz"},
		{name: "args not list", expr: `{op: "+", args: "?x"}`, want: "args must be a list"},
		{name: "null argument", expr: `{op: "+", args: [~]}`, want: "arg 0: term is null"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			src := "queries:\n  - name: q\n    where:\n      - filter: " + tc.expr + "\n"
			_, err := DecodeYAML([]byte(src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestDecodeJSON_Numbers(t *testing.T) {
	src := `{"queries": [{"name": "q", "where": [
		{"filter": {"op": "<", "args": ["?n", 3]}},
		{"filter": {"op": "<", "args": ["?n", 2.5]}},
		{"filter": {"fn": "BOUND", "args": ["?n"]}},
		{"triple": {"s": "?x", "p": "ex:flag", "o": true}}
	]}]}`

	doc, err := DecodeJSON([]byte(src))
	require.NoError(t, err)
	where := doc.Queries[0].Where

	assert.Equal(t, Term{Kind: TermInteger, Text: "3"}, *where[0].Filter.Args[1].Term)
	assert.Equal(t, Term{Kind: TermDecimal, Text: "2.5"}, *where[1].Filter.Args[1].Term)
	assert.Equal(t, "BOUND", where[2].Filter.Fn)
	assert.Equal(t, TermList{{Kind: TermBoolean, Text: "true"}}, where[3].Triple.O)
}

func TestDecodeJSON_RejectsUnknownFields(t *testing.T) {
	_, err := DecodeJSON([]byte(`{"queries": [{"name": "q", "limt": 3}]}`))
	require.Error(t, err)
}

func TestDecode_SubselectBody(t *testing.T) {
	src := `
queries:
  - name: q
    select: ["?x"]
    where:
      - subselect:
          select: ["?x"]
          where:
            - triple: {s: "?x", p: a, o: "ex:Thing"}
          limit: 1
`
	doc, err := DecodeYAML([]byte(src))
	require.NoError(t, err)

	sub := doc.Queries[0].Where[0].Subselect
	require.NotNil(t, sub)
	assert.Len(t, sub.Where, 1)
	require.NotNil(t, sub.Limit)
	assert.Equal(t, 1, *sub.Limit)
}

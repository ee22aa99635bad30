package sparql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClauses_EmptyRenderNothing(t *testing.T) {
	testCases := []struct {
		name    string
		element QueryElement
	}{
		{name: "prefixes", element: Prefixes()},
		{name: "base", element: NewBase(IRI{})},
		{name: "dataset", element: NewDataset()},
		{name: "group by", element: GroupBy()},
		{name: "having", element: Having()},
		{name: "order by", element: OrderBy()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, "", tc.element.Render())
			assert.Equal(t, "", Pretty(tc.element, 1))
		})
	}
}

func TestClauses_KeywordAndChildren(t *testing.T) {
	x, y, z := Var("x"), Var("y"), Var("z")
	foaf := NewPrefix("foaf", NewIRI("http://xmlns.com/foaf/0.1/"))

	testCases := []struct {
		name    string
		element QueryElement
		want    string
	}{
		{name: "prefix", element: ex, want: "PREFIX ex: <http://example.org/>"},
		{
			name:    "prefixes",
			element: Prefixes(ex, foaf),
			want:    "PREFIX ex: <http://example.org/> PREFIX foaf: <http://xmlns.com/foaf/0.1/>",
		},
		{name: "base", element: NewBase(NewIRI("http://example.org/base/")), want: "BASE <http://example.org/base/>"},
		{name: "from", element: From(NewIRI("http://example.org/g1")), want: "FROM <http://example.org/g1>"},
		{name: "from named", element: FromNamed(NewIRI("http://example.org/g2")), want: "FROM NAMED <http://example.org/g2>"},
		{
			name:    "dataset keeps order",
			element: NewDataset(FromNamed(NewIRI("http://example.org/g2")), From(NewIRI("http://example.org/g1"))),
			want:    "FROM NAMED <http://example.org/g2> FROM <http://example.org/g1>",
		},
		{name: "group by", element: GroupBy(x, As(Str(y), z)), want: "GROUP BY ?x (STR(?y) AS ?z)"},
		{name: "group by operator expression", element: GroupBy(Add(x, y)), want: "GROUP BY (?x + ?y)"},
		{name: "group by call", element: GroupBy(Str(x)), want: "GROUP BY STR(?x)"},
		{
			name:    "having",
			element: Having(GreaterThan(Sum(x), Int(10)), Bound(y)),
			want:    "HAVING (SUM(?x) > 10) (BOUND(?y))",
		},
		{name: "order by", element: OrderBy(x, Desc(y)), want: "ORDER BY ?x DESC(?y)"},
		{name: "order by asc expression", element: OrderBy(Asc(Add(x, y))), want: "ORDER BY ASC(?x + ?y)"},
		{name: "order by bare expression", element: OrderBy(Add(x, y)), want: "ORDER BY (?x + ?y)"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.element.Render())
		})
	}
}

func TestPrefixDeclarations_Dedup(t *testing.T) {
	d := Prefixes(ex, ex)
	assert.Equal(t, 1, d.Size())

	d.Add(NewPrefix("ex", NewIRI("http://example.org/")))
	assert.Equal(t, 1, d.Size())

	// Same alias, different namespace: not the same prefix.
	d.Add(NewPrefix("ex", NewIRI("http://example.com/")))
	assert.Equal(t, 2, d.Size())
}

func TestPrefixDeclarations_Pretty(t *testing.T) {
	foaf := NewPrefix("foaf", NewIRI("http://xmlns.com/foaf/0.1/"))
	d := Prefixes(ex, foaf)

	assert.Equal(t,
		"PREFIX ex: <http://example.org/>\nPREFIX foaf: <http://xmlns.com/foaf/0.1/>",
		d.RenderPretty(0))
	assert.Equal(t,
		"PREFIX ex: <http://example.org/>\n  PREFIX foaf: <http://xmlns.com/foaf/0.1/>",
		d.RenderPretty(1))
}

func TestProjection_Render(t *testing.T) {
	x, y := Var("x"), Var("y")

	testCases := []struct {
		name       string
		projection *Projection
		want       string
	}{
		{name: "empty is wildcard", projection: Select(), want: "SELECT *"},
		{name: "all", projection: Select().All(true), want: "SELECT *"},
		{name: "explicit", projection: Select(x, y), want: "SELECT ?x ?y"},
		{name: "duplicates kept", projection: Select(x, x), want: "SELECT ?x ?x"},
		{name: "explicit wins over all", projection: Select(x).All(true), want: "SELECT ?x"},
		{name: "all set before explicit", projection: Select().All(true).Select(y), want: "SELECT ?y"},
		{name: "distinct", projection: SelectDistinct(x), want: "SELECT DISTINCT ?x"},
		{name: "distinct all", projection: Select().Distinct(true).All(true), want: "SELECT DISTINCT *"},
		{name: "assignment", projection: Select(x, As(Count(y), Var("n"))), want: "SELECT ?x (COUNT(?y) AS ?n)"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.projection.Render())
		})
	}
}

func TestProjection_Flags(t *testing.T) {
	p := Select(Var("x")).All(true)
	assert.True(t, p.AllRequested())
	assert.False(t, p.IsAll())
	assert.Equal(t, 1, p.Size())
	assert.False(t, p.IsDistinct())
}

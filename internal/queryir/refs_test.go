package queryir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReferences_Nested(t *testing.T) {
	q := Query{Name: "root", Body: Body{Where: []Pattern{
		{Subquery: "b"},
		{Optional: []Pattern{{Subquery: "a"}}},
		{Graph: &GraphPattern{Name: Token("?g"), Patterns: []Pattern{{Subquery: "c"}}}},
		{Union: [][]Pattern{{{Subquery: "b"}}, {{Minus: []Pattern{{Subquery: "d"}}}}}},
		{Subselect: &Body{Where: []Pattern{{Group: []Pattern{{Subquery: "e"}}}}}},
	}}}

	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, References(q))
}

func TestReferences_None(t *testing.T) {
	assert.Empty(t, References(Query{Name: "q"}))
}

func TestReferenceGraph(t *testing.T) {
	doc := &Document{Queries: []Query{
		{Name: "a", Body: Body{Where: []Pattern{{Subquery: "b"}}}},
		{Name: "b"},
	}}

	graph := ReferenceGraph(doc)
	assert.Equal(t, []string{"b"}, graph["a"])
	assert.Empty(t, graph["b"])
}

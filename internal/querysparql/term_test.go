package querysparql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/spanqit/internal/queryir"
)

func TestParseTerm(t *testing.T) {
	tests := []struct {
		name string
		term queryir.Term
		want string
	}{
		{"variable", queryir.Token("?x"), "?x"},
		{"dollar variable", queryir.Token("$x"), "?x"},
		{"rdf type", queryir.Token("a"), "a"},
		{"anonymous blank node", queryir.Token("[]"), "[]"},
		{"blank node", queryir.Token("_:b1"), "_:b1"},
		{"prefixed name", queryir.Token("ex:Thing"), "ex:Thing"},
		{"default prefix", queryir.Token(":Thing"), ":Thing"},
		{"bracketed IRI", queryir.Token("<http://example.org/a>"), "<http://example.org/a>"},
		{"bare IRI", queryir.Token("http://example.org/a"), "<http://example.org/a>"},
		{"string", queryir.Token(`"Alice"`), `"Alice"`},
		{"language string", queryir.Token(`"Alice"@en`), `"Alice"@en`},
		{"typed literal", queryir.Token(`"5"^^xsd:integer`), `"5"^^xsd:integer`},
		{"escaped string", queryir.Token(`"say \"hi\""`), `"say \"hi\""`},
		{"integer", queryir.Term{Kind: queryir.TermInteger, Text: "42"}, "42"},
		{"decimal", queryir.Term{Kind: queryir.TermDecimal, Text: "1.5"}, "1.5"},
		{"whole decimal", queryir.Term{Kind: queryir.TermDecimal, Text: "2"}, "2.0"},
		{"boolean", queryir.Term{Kind: queryir.TermBoolean, Text: "true"}, "true"},
		{
			"big integer",
			queryir.Term{Kind: queryir.TermInteger, Text: "123456789012345678901234567890"},
			`"123456789012345678901234567890"^^<http://www.w3.org/2001/XMLSchema#integer>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			elem, err := ParseTerm(tt.term)
			require.NoError(t, err)
			assert.Equal(t, tt.want, elem.Render())
		})
	}
}

func TestParseTerm_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		message string
	}{
		{"empty", "", "empty term"},
		{"bad variable", "?x-y", "invalid variable"},
		{"bad blank node", "_:", "invalid blank node label"},
		{"unterminated IRI", "<http://example.org/", "unterminated IRI"},
		{"unterminated literal", `"abc`, "unterminated literal"},
		{"bad language tag", `"abc"@1-`, "invalid language tag"},
		{"junk after literal", `"abc"x`, "after literal"},
		{"bad escape", `"a\qb"`, "unknown escape"},
		{"plain word", "thing", "unrecognized term"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTerm(queryir.Token(tt.token))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestParseTerm_ReportsAliases(t *testing.T) {
	_, aliases, err := parseTerm(queryir.Token(`"5"^^xsd:integer`))
	require.NoError(t, err)
	assert.Equal(t, []string{"xsd"}, aliases)

	_, aliases, err = parseTerm(queryir.Token("<http://example.org/a>"))
	require.NoError(t, err)
	assert.Empty(t, aliases)
}

package rdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuoteString_Escapes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "hello", want: `"hello"`},
		{name: "double quote", in: `say "hi"`, want: `"say \"hi\""`},
		{name: "backslash", in: `a\b`, want: `"a\\b"`},
		{name: "newline and tab", in: "a\nb\tc", want: `"a\nb\tc"`},
		{name: "carriage return", in: "a\rb", want: `"a\rb"`},
		{name: "empty", in: "", want: `""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, QuoteString(tt.in))
		})
	}
}

func TestFormatLiteral(t *testing.T) {
	assert.Equal(t, `"chat"@fr`, FormatLiteral("chat", "FR", ""))
	assert.Equal(t, `"5"^^xsd:int`, FormatLiteral("5", "", "xsd:int"))
	assert.Equal(t, `"x"`, FormatLiteral("x", "", ""))
	// Language tag wins over datatype.
	assert.Equal(t, `"x"@en`, FormatLiteral("x", "en", "xsd:string"))
}

func TestValidLangTag(t *testing.T) {
	assert.True(t, ValidLangTag("en"))
	assert.True(t, ValidLangTag("en-US"))
	assert.True(t, ValidLangTag("zh-Hant-TW"))
	assert.False(t, ValidLangTag(""))
	assert.False(t, ValidLangTag("en_US"))
	assert.False(t, ValidLangTag("-en"))
}

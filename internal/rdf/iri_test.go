package rdf

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateIRI(t *testing.T) {
	tests := []struct {
		name    string
		iri     string
		wantErr bool
	}{
		{name: "absolute", iri: "http://example.org/thing"},
		{name: "fragment", iri: "http://example.org/ns#Thing"},
		{name: "relative", iri: "thing/1"},
		{name: "empty", iri: "", wantErr: true},
		{name: "space", iri: "http://example.org/a b", wantErr: true},
		{name: "angle bracket", iri: "http://example.org/<x>", wantErr: true},
		{name: "quote", iri: `http://example.org/"x"`, wantErr: true},
		{name: "backslash", iri: `http://example.org/a\b`, wantErr: true},
		{name: "newline", iri: "http://example.org/\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIRI(tt.iri)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var termErr *TermError
			assert.True(t, errors.As(err, &termErr))
			assert.Equal(t, tt.iri, termErr.Term)
		})
	}
}

func TestFormatIRI_NormalizesToNFC(t *testing.T) {
	// "e" + combining acute accent composes to U+00E9 under NFC.
	decomposed := "http://example.org/cafe\u0301"
	composed := "http://example.org/caf\u00e9"

	assert.Equal(t, "<"+composed+">", FormatIRI(decomposed))
	assert.Equal(t, FormatIRI(composed), FormatIRI(decomposed))
}

func TestSplitPrefixedName(t *testing.T) {
	tests := []struct {
		in    string
		alias string
		local string
		ok    bool
	}{
		{in: "ex:Thing", alias: "ex", local: "Thing", ok: true},
		{in: ":Thing", alias: "", local: "Thing", ok: true},
		{in: "ex:", alias: "ex", local: "", ok: true},
		{in: "foaf:name", alias: "foaf", local: "name", ok: true},
		{in: "ex:a.b", alias: "ex", local: "a.b", ok: true},
		{in: "ex:trailing.", ok: false},
		{in: "Thing", ok: false},
		{in: "1ex:Thing", ok: false},
		{in: "ex:has space", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			alias, local, ok := SplitPrefixedName(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.alias, alias)
				assert.Equal(t, tt.local, local)
			}
		})
	}
}

func TestValidPrefixLabel(t *testing.T) {
	assert.True(t, ValidPrefixLabel(""))
	assert.True(t, ValidPrefixLabel("ex"))
	assert.True(t, ValidPrefixLabel("my-ns.v2"))
	assert.False(t, ValidPrefixLabel("ex."))
	assert.False(t, ValidPrefixLabel("_ex"))
	assert.False(t, ValidPrefixLabel("e x"))
}

package querysparql

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"unicode"

	"github.com/roach88/spanqit/internal/queryir"
	"github.com/roach88/spanqit/internal/rdf"
	"github.com/roach88/spanqit/internal/sparql"
)

// ParseTerm turns a document term into a sparql term: Variable, IRI,
// Literal, BlankNode or the "a" predicate. Prefixed names are not checked
// against any declaration.
func ParseTerm(t queryir.Term) (sparql.QueryElement, error) {
	elem, _, err := parseTerm(t)
	return elem, err
}

// parseTerm also returns the prefix aliases the term uses.
func parseTerm(t queryir.Term) (sparql.QueryElement, []string, error) {
	switch t.Kind {
	case queryir.TermInteger:
		n, err := strconv.ParseInt(t.Text, 10, 64)
		if err != nil {
			if _, ok := new(big.Int).SetString(t.Text, 10); !ok {
				return nil, nil, fmt.Errorf("invalid integer %q", t.Text)
			}
			return sparql.TypedLiteral(t.Text, sparql.NewIRI(rdf.XSDInteger)), nil, nil
		}
		return sparql.Int(n), nil, nil
	case queryir.TermDecimal:
		f, err := strconv.ParseFloat(t.Text, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid decimal %q", t.Text)
		}
		return sparql.Float(f), nil, nil
	case queryir.TermBoolean:
		b, err := strconv.ParseBool(t.Text)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid boolean %q", t.Text)
		}
		return sparql.Bool(b), nil, nil
	}
	return parseToken(t.Text)
}

func parseToken(token string) (sparql.QueryElement, []string, error) {
	switch {
	case token == "":
		return nil, nil, fmt.Errorf("empty term")
	case token == "a":
		return sparql.A, nil, nil
	case token == "[]":
		return sparql.Anon(), nil, nil
	case token[0] == '?' || token[0] == '$':
		name := token[1:]
		if !validVarName(name) {
			return nil, nil, fmt.Errorf("invalid variable %q", token)
		}
		return sparql.Var(name), nil, nil
	case strings.HasPrefix(token, "_:"):
		label := token[2:]
		if !validVarName(label) {
			return nil, nil, fmt.Errorf("invalid blank node label %q", token)
		}
		return sparql.NewBlankNode(label), nil, nil
	case token[0] == '"':
		return parseLiteral(token)
	}
	iri, err := parseIRIToken(token)
	if err != nil {
		return nil, nil, err
	}
	return iri, aliasesOf(iri), nil
}

func aliasesOf(iri sparql.IRI) []string {
	if alias, ok := iri.PrefixLabel(); ok {
		return []string{alias}
	}
	return nil
}

// parseIRIToken accepts <iri>, a bare http(s) IRI or a prefixed name.
func parseIRIToken(token string) (sparql.IRI, error) {
	if strings.HasPrefix(token, "<") {
		if !strings.HasSuffix(token, ">") {
			return sparql.IRI{}, fmt.Errorf("unterminated IRI %q", token)
		}
		return sparql.ParseIRI(token[1 : len(token)-1])
	}
	if strings.HasPrefix(token, "http://") || strings.HasPrefix(token, "https://") {
		return sparql.ParseIRI(token)
	}
	prefix, local, ok := rdf.SplitPrefixedName(token)
	if !ok {
		return sparql.IRI{}, fmt.Errorf("unrecognized term %q", token)
	}
	return sparql.PrefixedName(prefix, local), nil
}

// parseIRIString parses a declaration IRI, with or without angle brackets.
func parseIRIString(s string) (sparql.IRI, error) {
	if strings.HasPrefix(s, "<") && strings.HasSuffix(s, ">") {
		s = s[1 : len(s)-1]
	}
	return sparql.ParseIRI(s)
}

func parseLiteral(token string) (sparql.QueryElement, []string, error) {
	end := -1
	for i := 1; i < len(token); i++ {
		if token[i] == '\\' {
			i++
			continue
		}
		if token[i] == '"' {
			end = i
			break
		}
	}
	if end < 0 {
		return nil, nil, fmt.Errorf("unterminated literal %s", token)
	}

	lexical, err := unescape(token[1:end])
	if err != nil {
		return nil, nil, fmt.Errorf("literal %s: %w", token, err)
	}

	rest := token[end+1:]
	switch {
	case rest == "":
		return sparql.StringLiteral(lexical), nil, nil
	case strings.HasPrefix(rest, "@"):
		if !rdf.ValidLangTag(rest[1:]) {
			return nil, nil, fmt.Errorf("invalid language tag %q", rest[1:])
		}
		return sparql.LangLiteral(lexical, rest[1:]), nil, nil
	case strings.HasPrefix(rest, "^^"):
		datatype, err := parseIRIToken(rest[2:])
		if err != nil {
			return nil, nil, fmt.Errorf("literal datatype: %w", err)
		}
		return sparql.TypedLiteral(lexical, datatype), aliasesOf(datatype), nil
	default:
		return nil, nil, fmt.Errorf("unexpected %q after literal", rest)
	}
}

var unescapes = map[byte]byte{
	't': '\t', 'n': '\n', 'r': '\r', 'b': '\b', 'f': '\f',
	'"': '"', '\'': '\'', '\\': '\\',
}

func unescape(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' {
			b.WriteByte(s[i])
			continue
		}
		if i+1 >= len(s) {
			return "", fmt.Errorf("trailing backslash")
		}
		r, ok := unescapes[s[i+1]]
		if !ok {
			return "", fmt.Errorf("unknown escape \\%c", s[i+1])
		}
		b.WriteByte(r)
		i++
	}
	return b.String(), nil
}

func validVarName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

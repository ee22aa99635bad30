package rdf

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var langTag = regexp.MustCompile(`^[A-Za-z]+(-[A-Za-z0-9]+)*$`)

// literalEscaper applies SPARQL's ECHAR escapes to a double-quoted string.
var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
	"\b", `\b`,
	"\f", `\f`,
)

// QuoteString renders s as a double-quoted SPARQL string literal.
func QuoteString(s string) string {
	return `"` + literalEscaper.Replace(norm.NFC.String(s)) + `"`
}

// ValidLangTag reports whether tag is a well-formed BCP47-style language tag.
func ValidLangTag(tag string) bool {
	return langTag.MatchString(tag)
}

// FormatLiteral renders a literal with an optional language tag or an
// already-rendered datatype. A language tag wins over a datatype since RDF
// forbids both.
func FormatLiteral(lexical, lang, datatype string) string {
	quoted := QuoteString(lexical)
	switch {
	case lang != "":
		return quoted + "@" + strings.ToLower(lang)
	case datatype != "":
		return quoted + "^^" + datatype
	default:
		return quoted
	}
}

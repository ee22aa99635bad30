package rdf

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// TermError reports a term that cannot be written into query text.
type TermError struct {
	Term    string
	Message string
}

func (e *TermError) Error() string {
	return fmt.Sprintf("invalid term %q: %s", e.Term, e.Message)
}

// iriForbidden lists the characters IRIREF excludes besides controls and space.
const iriForbidden = "<>\"{}|^`\\"

// prefixLabel matches PN_PREFIX restricted to ASCII. An empty label is valid
// and handled by the caller.
var prefixLabel = regexp.MustCompile(`^[A-Za-z]([A-Za-z0-9_.-]*[A-Za-z0-9_-])?$`)

// localName matches the ASCII subset of PN_LOCAL without escapes.
var localName = regexp.MustCompile(`^([A-Za-z0-9_:]|%[0-9A-Fa-f]{2})([A-Za-z0-9_.:-]|%[0-9A-Fa-f]{2})*$`)

// NormalizeIRI returns the NFC form of iri.
func NormalizeIRI(iri string) string {
	return norm.NFC.String(iri)
}

// ValidateIRI checks iri against the characters SPARQL's IRIREF forbids.
func ValidateIRI(iri string) error {
	if iri == "" {
		return &TermError{Term: iri, Message: "IRI is empty"}
	}
	for _, r := range iri {
		if r <= 0x20 {
			return &TermError{Term: iri, Message: fmt.Sprintf("control or space character %U", r)}
		}
		if strings.ContainsRune(iriForbidden, r) {
			return &TermError{Term: iri, Message: fmt.Sprintf("forbidden character %q", r)}
		}
	}
	return nil
}

// FormatIRI renders iri as an IRIREF: normalized and wrapped in angle brackets.
// No validation happens here; see ValidateIRI.
func FormatIRI(iri string) string {
	return "<" + NormalizeIRI(iri) + ">"
}

// ValidPrefixLabel reports whether alias can be used in a PREFIX declaration.
func ValidPrefixLabel(alias string) bool {
	return alias == "" || prefixLabel.MatchString(alias)
}

// ValidLocalName reports whether local can follow "alias:" unescaped.
func ValidLocalName(local string) bool {
	if local == "" {
		return true
	}
	if strings.HasSuffix(local, ".") {
		return false
	}
	return localName.MatchString(local)
}

// SplitPrefixedName splits "alias:local" into its parts.
// ok is false when s has no colon or either part is malformed.
func SplitPrefixedName(s string) (alias, local string, ok bool) {
	i := strings.IndexByte(s, ':')
	if i < 0 {
		return "", "", false
	}
	alias, local = s[:i], s[i+1:]
	if !ValidPrefixLabel(alias) || !ValidLocalName(local) {
		return "", "", false
	}
	return alias, local, true
}

package store

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/text/unicode/norm"
)

// Domain prefixes for content-addressed identity.
// Version suffix enables future algorithm migration.
const (
	DomainQuery = "spanqit/query/v1"
	DomainText  = "spanqit/text/v1"
)

// hashWithDomain computes SHA-256 hash with domain separation.
// Format: SHA256(domain + 0x00 + part1 + 0x00 + part2 ...)
// The null byte separators prevent boundary ambiguity between parts.
func hashWithDomain(domain string, parts ...string) string {
	h := sha256.New()
	h.Write([]byte(domain))
	for _, p := range parts {
		h.Write([]byte{0x00})
		h.Write([]byte(p))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// QueryID computes the content-addressed ID of a query revision. Text is
// NFC normalized first, so canonically equivalent texts share an ID.
func QueryID(name, text string) string {
	return hashWithDomain(DomainQuery, name, norm.NFC.String(text))
}

// TextHash computes the name-independent hash of a query text.
func TextHash(text string) string {
	return hashWithDomain(DomainText, norm.NFC.String(text))
}

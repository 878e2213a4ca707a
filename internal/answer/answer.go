// Package answer compares free-text answers against a card's canonical answer,
// ignoring case, accents and surrounding or repeated whitespace.
package answer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize lower-cases s, strips diacritics and collapses whitespace.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.Join(strings.Fields(strings.ToLower(out)), " ")
}

// Match reports whether input is the same answer as correct. A blank input never matches.
func Match(input, correct string) bool {
	in := Normalize(input)
	if in == "" {
		return false
	}
	return in == Normalize(correct)
}

package trie

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalise strips diacritics and lower-cases s, so that "Niño" and "NINO"
// both become "nino". It is the default transformation applied by a Trie to
// dictionary words and queries alike.
func Normalise(s string) string {
	return lower(stripDiacritics(s))
}

// stripDiacritics decomposes s and drops every nonspacing mark.
func stripDiacritics(s string) string {
	transformer := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normal, _, err := transform.String(transformer, s)
	if err != nil {
		return s
	}
	return normal
}

func lower(s string) string {
	return strings.ToLower(s)
}

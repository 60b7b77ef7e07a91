// Package vocab implements weighted domain vocabularies and the lexical
// compatibility scoring engine built on top of them.
package vocab

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalizer transforms a surface form before indexing or lookup.
type Normalizer func(string) string

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeToken trims, lowercases, and strips accents so that accented and
// unaccented spellings of a word collide (e.g. "  Cálculo " -> "calculo").
func NormalizeToken(s string) string {
	result, _, _ := transform.String(stripAccents, strings.ToLower(strings.TrimSpace(s)))
	return result
}

// NormalizeLowercaseUTF8 lowercases and trims but preserves accents.
func NormalizeLowercaseUTF8(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeNone returns the surface form unchanged.
func NormalizeNone(s string) string {
	return s
}

// GetNormalizer returns the normalizer for the given mode.
// Default is lowercase_ascii.
func GetNormalizer(mode string) Normalizer {
	switch mode {
	case "lowercase_ascii":
		return NormalizeToken
	case "lowercase_utf8":
		return NormalizeLowercaseUTF8
	case "none":
		return NormalizeNone
	default:
		return NormalizeToken
	}
}

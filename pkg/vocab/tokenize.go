package vocab

import (
	"strings"
	"unicode"
)

// Tokenize splits text into words and normalizes each with the default
// lowercase + accent-strip normalizer. Empty fragments are dropped; order and
// duplicates are preserved.
func Tokenize(text string) []string {
	return normalizeWords(SplitWords(text), NormalizeToken)
}

// SplitWords splits text on maximal runs of non-word runes without altering
// the runes themselves, so case and accents survive for normalizers that keep
// them. A word rune is a Unicode letter, digit, or underscore; combining
// marks also count, so decomposed accents stay attached to their word.
func SplitWords(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.Is(unicode.Mn, r) && r != '_'
	})
}

func normalizeWords(words []string, normalize Normalizer) []string {
	toks := make([]string, 0, len(words))
	for _, w := range words {
		if tk := normalize(w); tk != "" {
			toks = append(toks, tk)
		}
	}
	return toks
}

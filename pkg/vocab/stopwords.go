package vocab

// Stopwords is a closed set of function words excluded from the significant
// token count. Members are stored pre-normalized (lowercase, accent-stripped)
// so membership tests work directly on Tokenize output.
type Stopwords map[string]struct{}

// Spanish function words: articles, conjunctions, common prepositions,
// pronouns. Kept short on purpose; this is a density denominator, not NLP.
var stopwordsES = newStopwords(
	"de", "la", "las", "el", "los", "y", "o", "u", "en", "con", "por", "para",
	"a", "un", "una", "unos", "unas", "al", "del", "que", "se", "su", "sus",
	"es", "son", "como", "pero", "si", "no", "lo", "le", "me", "este",
	"estos", "esta", "estas",
)

var stopwordsEN = newStopwords(
	"a", "an", "the", "and", "or", "but", "to", "in", "of", "on", "for",
	"with", "as", "at", "by", "from", "is", "are", "was", "were", "be",
	"this", "that", "these", "those", "it", "its", "i", "we", "you", "he",
	"she", "they", "not", "no",
)

func newStopwords(words ...string) Stopwords {
	s := make(Stopwords, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// StopwordsFor returns the stopword set for a language code.
// Unknown languages get an empty set, so every token counts as significant.
func StopwordsFor(lang string) Stopwords {
	switch lang {
	case "es":
		return stopwordsES
	case "en":
		return stopwordsEN
	default:
		return Stopwords{}
	}
}

// Contains reports whether the normalized token is a stopword.
func (s Stopwords) Contains(token string) bool {
	_, ok := s[token]
	return ok
}

// FilterSignificant returns the subsequence of tokens not present in the set,
// preserving order and duplicates.
func FilterSignificant(tokens []string, stops Stopwords) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !stops.Contains(t) {
			out = append(out, t)
		}
	}
	return out
}

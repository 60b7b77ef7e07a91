package vocab

import "log/slog"

// IndexEntry is the value a normalized surface form resolves to.
type IndexEntry struct {
	Canonical string
	Weight    float64
}

// Index maps every normalized surface form (canonical term or synonym) to its
// canonical term and weight. It is built wholesale on load and read-only
// afterwards, so concurrent lookups need no locking.
type Index map[string]IndexEntry

// BuildIndex flattens terms into one key per canonical term plus one per
// synonym, all run through the normalizer. When two surface forms normalize
// to the same key the later one silently overwrites the earlier (last-write-
// wins, source iteration order); collisions are only counted and logged.
func BuildIndex(terms []Term, normalize Normalizer) Index {
	idx := make(Index, len(terms))
	var collisions int

	add := func(surface string, e IndexEntry) {
		key := normalize(surface)
		if key == "" {
			return
		}
		if _, exists := idx[key]; exists {
			collisions++
		}
		idx[key] = e
	}

	for _, t := range terms {
		entry := IndexEntry{Canonical: t.Canonical, Weight: t.Weight}
		add(t.Canonical, entry)
		for _, syn := range t.Synonyms {
			add(syn, entry)
		}
	}

	if collisions > 0 {
		slog.Warn("surface form collisions after normalization", "collisions", collisions)
	}
	return idx
}

// Lookup resolves a normalized token against the index.
func (idx Index) Lookup(token string) (IndexEntry, bool) {
	e, ok := idx[token]
	return e, ok
}

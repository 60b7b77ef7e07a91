package vocab

import (
	"math"
	"sort"
)

// Weighting of the two score components: average term weight vs lexical
// density. Changing these changes every score, so they are fixed.
const (
	weightShare  = 0.55
	densityShare = 0.45
)

// MatchRecord is the per-term breakdown of a score: how often a canonical
// term was hit, at what weight, and its count*weight contribution used for
// ranking the breakdown (not for the score itself).
type MatchRecord struct {
	Term         string  `json:"term"`
	Count        int     `json:"count"`
	Weight       float64 `json:"weight"`
	Contribution float64 `json:"contribution"`
}

// ScoreResult is the full auditable outcome of one scoring call.
type ScoreResult struct {
	Score             float64       `json:"score"`
	MatchedTokens     int           `json:"matched_tokens"`
	DistinctTerms     int           `json:"distinct_terms"`
	TotalTokens       int           `json:"total_tokens"`
	SignificantTokens int           `json:"significant_tokens"`
	AvgWeight         float64       `json:"avg_weight"`
	Density           float64       `json:"density"`
	Matches           []MatchRecord `json:"matches"`
}

// ScoreText computes the lexical compatibility of text with the vocabulary
// index, on a 0-100 scale:
//
//	score = 100 * (0.55*avgWeight + 0.45*density)
//
// avgWeight is the mean weight over every individual hit (once per
// occurrence), density is matched tokens over significant tokens (falling
// back to total tokens when the text is all stopwords). Every token is
// looked up, including stopwords, so a vocabulary term that is also a
// stopword still matches; as a consequence density can exceed 1 and the
// score can exceed 100. That is intentional and must not be clamped.
//
// Each word is run through normalize before the stopword check and the index
// lookup. It must be the same normalizer the index was built with, otherwise
// keys that kept their case or accents are unreachable.
//
// Pure function of its inputs: no side effects, deterministic, safe to call
// concurrently against a shared index.
func ScoreText(text string, idx Index, stops Stopwords, normalize Normalizer) ScoreResult {
	toks := normalizeWords(SplitWords(text), normalize)
	totalSig := len(FilterSignificant(toks, stops))

	// Count hits per (canonical, weight) pair, remembering first-encounter
	// order so the breakdown sort is stable on ties.
	counts := make(map[IndexEntry]int)
	var order []IndexEntry
	var weightSum float64
	matchedTokens := 0

	for _, tk := range toks {
		e, ok := idx.Lookup(tk)
		if !ok {
			continue
		}
		if counts[e] == 0 {
			order = append(order, e)
		}
		counts[e]++
		weightSum += e.Weight
		matchedTokens++
	}

	result := ScoreResult{
		TotalTokens:       len(toks),
		SignificantTokens: totalSig,
		Matches:           []MatchRecord{},
	}
	if matchedTokens == 0 {
		return result
	}

	avgWeight := weightSum / float64(matchedTokens)

	denom := totalSig
	if denom == 0 {
		denom = len(toks)
	}
	density := float64(matchedTokens) / float64(denom)

	result.Score = round2(100 * (weightShare*avgWeight + densityShare*density))
	result.MatchedTokens = matchedTokens
	result.DistinctTerms = len(order)
	result.AvgWeight = round4(avgWeight)
	result.Density = round4(density)

	for _, e := range order {
		cnt := counts[e]
		result.Matches = append(result.Matches, MatchRecord{
			Term:         e.Canonical,
			Count:        cnt,
			Weight:       e.Weight,
			Contribution: round4(float64(cnt) * e.Weight),
		})
	}
	sort.SliceStable(result.Matches, func(i, j int) bool {
		return result.Matches[i].Contribution > result.Matches[j].Contribution
	})

	return result
}

func round2(f float64) float64 { return math.Round(f*100) / 100 }
func round4(f float64) float64 { return math.Round(f*10000) / 10000 }

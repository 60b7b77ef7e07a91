package vocab

import (
	"fmt"
	"strconv"
	"strings"
)

// Term is a single weighted vocabulary entry. Canonical is the base word that
// matches are attributed to; Synonyms are alternate surface forms that map to
// the same canonical word and weight. Terms are immutable after load.
type Term struct {
	Canonical string   `json:"canonical"`
	Weight    float64  `json:"weight"`
	Synonyms  []string `json:"synonyms,omitempty"`
}

// DataError reports a vocabulary record whose weight field could not be
// interpreted as a number. It is fatal to the whole load: no partial
// vocabulary is ever returned.
type DataError struct {
	Term  string
	Field string
	Value string
}

func (e *DataError) Error() string {
	return fmt.Sprintf("vocab record %q: field %s: cannot parse %q as a number", e.Term, e.Field, e.Value)
}

// ParseTerm validates one raw vocabulary record. The identity percentage is
// on a 0-100 scale and becomes a weight in [0,1]; out-of-range values are
// clamped, non-numeric values fail with *DataError. The synonyms cell is
// comma-separated; fragments are trimmed and lowercased, empties discarded.
func ParseTerm(rawTerm, identityPercent, synonymsCsv string) (Term, error) {
	canonical := strings.ToLower(strings.TrimSpace(rawTerm))

	pct, err := strconv.ParseFloat(strings.TrimSpace(identityPercent), 64)
	if err != nil {
		return Term{}, &DataError{Term: canonical, Field: "identity_percent", Value: identityPercent}
	}

	return Term{
		Canonical: canonical,
		Weight:    clamp01(pct / 100),
		Synonyms:  splitSynonyms(synonymsCsv),
	}, nil
}

func splitSynonyms(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	var syns []string
	for _, part := range strings.Split(csv, ",") {
		if p := strings.ToLower(strings.TrimSpace(part)); p != "" {
			syns = append(syns, p)
		}
	}
	return syns
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

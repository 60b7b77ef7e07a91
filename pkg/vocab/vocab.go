package vocab

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// Vocabulary is one loaded domain vocabulary: its manifest, the parsed term
// list, and the flattened lookup index. Immutable after Load; rebuilt
// wholesale on reload, never mutated in place.
type Vocabulary struct {
	Manifest  *Manifest
	Terms     []Term
	Index     Index
	normalize Normalizer
	stopwords Stopwords
}

// Load reads a manifest.yaml and loads records from gob, sqlite, or csv.
// Any record with a non-numeric weight aborts the whole load with *DataError.
func Load(dir string) (*Vocabulary, error) {
	manifest, err := LoadManifest(filepath.Join(dir, "manifest.yaml"))
	if err != nil {
		return nil, err
	}

	v := &Vocabulary{
		Manifest:  manifest,
		normalize: GetNormalizer(manifest.Format.Normalize),
		stopwords: StopwordsFor(manifest.Language),
	}

	// Gob cache takes priority over the raw source.
	gobPath := filepath.Join(dir, "data.gob")
	if _, err := os.Stat(gobPath); err == nil {
		if v.Terms, err = loadGob(gobPath); err != nil {
			return nil, fmt.Errorf("vocab %s: %w", manifest.ID, err)
		}
		v.Index = BuildIndex(v.Terms, v.normalize)
		return v, nil
	}

	dataPath := filepath.Join(dir, manifest.DataFile)
	switch manifest.Method {
	case "sqlite":
		v.Terms, err = ReadSQLiteTerms(dataPath, manifest.Format)
	default:
		v.Terms, err = loadCSV(dataPath, manifest.Format)
	}
	if err != nil {
		return nil, fmt.Errorf("vocab %s: %w", manifest.ID, err)
	}

	v.Index = BuildIndex(v.Terms, v.normalize)
	return v, nil
}

// Score runs the scoring engine with this vocabulary's index, its normalizer,
// and the stopword set of its language.
func (v *Vocabulary) Score(text string) ScoreResult {
	return ScoreText(text, v.Index, v.stopwords, v.NormalizeTerm)
}

// NormalizeTerm applies this vocabulary's normalizer to a surface form.
func (v *Vocabulary) NormalizeTerm(term string) string {
	return v.normalize(term)
}

func loadCSV(path string, format FormatSpec) ([]Term, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	// Transcode non-UTF-8 encodings declared in the manifest.
	var reader io.Reader = f
	if enc := format.Encoding; enc != "" && !isUTF8(enc) {
		e, err := htmlindex.Get(enc)
		if err != nil {
			return nil, fmt.Errorf("unsupported encoding %q: %w", enc, err)
		}
		reader = transform.NewReader(f, e.NewDecoder())
	}

	r := csv.NewReader(reader)
	if delim := format.Delimiter; delim != "" {
		r.Comma = []rune(delim)[0]
	}
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1 // the synonyms cell may be absent entirely

	termIdx, weightIdx, synIdx := 0, 1, 2
	if format.HasHeader {
		header, err := r.Read()
		if err != nil {
			return nil, fmt.Errorf("read header: %w", err)
		}
		for i := range header {
			header[i] = strings.TrimSpace(header[i])
		}
		if termIdx, err = resolveColumn(header, format.TermColumn, 0); err != nil {
			return nil, err
		}
		if weightIdx, err = resolveColumn(header, format.WeightColumn, 1); err != nil {
			return nil, err
		}
		if synIdx, err = resolveColumn(header, format.SynonymsColumn, 2); err != nil {
			return nil, err
		}
	}

	var terms []Term
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if termIdx >= len(record) || weightIdx >= len(record) {
			continue
		}
		if strings.TrimSpace(record[termIdx]) == "" {
			continue
		}

		synonyms := ""
		if synIdx < len(record) {
			synonyms = record[synIdx]
		}
		t, err := ParseTerm(record[termIdx], record[weightIdx], synonyms)
		if err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}
	return terms, nil
}

func resolveColumn(header []string, name string, fallback int) (int, error) {
	if name == "" {
		return fallback, nil
	}
	for i, h := range header {
		if h == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("column %q not found in header %v", name, header)
}

func isUTF8(enc string) bool {
	e := strings.ToLower(strings.ReplaceAll(enc, "-", ""))
	return e == "utf8" || e == ""
}

package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hazyhaar/lexiscore/pkg/vocab"
)

func init() {
	Register(&vocabCSVAdapter{})
}

// vocabCSVAdapter imports a generic three-column CSV
// (term, identity percent 0-100, comma-separated synonyms) with a header row.
type vocabCSVAdapter struct{}

func (a *vocabCSVAdapter) ID() string          { return "vocab-csv" }
func (a *vocabCSVAdapter) VocabID() string     { return "custom-vocab" }
func (a *vocabCSVAdapter) Description() string { return "Generic weighted vocabulary from a term;percent;synonyms CSV" }
func (a *vocabCSVAdapter) DefaultURL() string  { return "vocab.csv" }
func (a *vocabCSVAdapter) License() string     { return "internal" }

func (a *vocabCSVAdapter) Import(ctx context.Context, sourceURL, outputDir string) error {
	dlDir := filepath.Join(outputDir, "_download")
	if err := ensureDir(dlDir); err != nil {
		return err
	}
	defer os.RemoveAll(dlDir)

	csvPath, err := fetchSource(ctx, sourceURL, filepath.Join(dlDir, "vocab.csv"))
	if err != nil {
		return fmt.Errorf("fetch source: %w", err)
	}

	terms, err := readVocabCSV(csvPath)
	if err != nil {
		return err
	}
	fmt.Printf("  %d vocabulary terms\n", len(terms))

	vocabDir := filepath.Join(outputDir, a.VocabID())
	if err := ensureDir(vocabDir); err != nil {
		return err
	}

	if err := vocab.SaveGob(terms, filepath.Join(vocabDir, "data.gob")); err != nil {
		return fmt.Errorf("save gob: %w", err)
	}

	return writeManifest(vocabDir, &vocab.Manifest{
		ID:        a.VocabID(),
		Version:   "1.0",
		Language:  "es",
		Domain:    "custom",
		Source:    "csv import",
		SourceURL: sourceURL,
		License:   a.License(),
		DataFile:  "data.gob",
		Format:    vocab.FormatSpec{Normalize: "lowercase_ascii"},
	})
}

func readVocabCSV(path string) ([]vocab.Term, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	if _, err := r.Read(); err != nil { // header
		return nil, fmt.Errorf("read header: %w", err)
	}

	var terms []vocab.Term
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if len(record) < 2 || strings.TrimSpace(record[0]) == "" {
			continue
		}
		synonyms := ""
		if len(record) > 2 {
			synonyms = record[2]
		}
		t, err := vocab.ParseTerm(record[0], record[1], synonyms)
		if err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}
	return terms, nil
}

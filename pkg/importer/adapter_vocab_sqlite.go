package importer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hazyhaar/lexiscore/pkg/vocab"
)

func init() {
	Register(&vocabSQLiteAdapter{})
}

// vocabSQLiteAdapter imports a keyword database in the palabras_clave layout
// (palabra, porcentaje_identidad, sinonimos) and converts it into a
// gob-cached vocabulary directory.
type vocabSQLiteAdapter struct{}

func (a *vocabSQLiteAdapter) ID() string          { return "vocab-sqlite" }
func (a *vocabSQLiteAdapter) VocabID() string     { return "matematicas-es" }
func (a *vocabSQLiteAdapter) Description() string { return "Mathematics vocabulary (Spanish) from a vocab.db keyword database" }
func (a *vocabSQLiteAdapter) DefaultURL() string  { return "vocab.db" }
func (a *vocabSQLiteAdapter) License() string     { return "internal" }

func (a *vocabSQLiteAdapter) Import(ctx context.Context, sourceURL, outputDir string) error {
	dlDir := filepath.Join(outputDir, "_download")
	if err := ensureDir(dlDir); err != nil {
		return err
	}
	defer os.RemoveAll(dlDir)

	dbPath, err := fetchSource(ctx, sourceURL, filepath.Join(dlDir, "vocab.db"))
	if err != nil {
		return fmt.Errorf("fetch source: %w", err)
	}

	terms, err := vocab.ReadSQLiteTerms(dbPath, vocab.FormatSpec{})
	if err != nil {
		return fmt.Errorf("read vocab db: %w", err)
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
		Domain:    "mathematics",
		Source:    "keyword database",
		SourceURL: sourceURL,
		License:   a.License(),
		DataFile:  "data.gob",
		Format:    vocab.FormatSpec{Normalize: "lowercase_ascii"},
	})
}

package vocab

import (
	"os"
	"path/filepath"
	"testing"
)

func setupRegistry(t *testing.T) (*Registry, string) {
	t.Helper()
	dir := t.TempDir()

	// Vocab 1: Spanish mathematics
	d1 := filepath.Join(dir, "matematicas-es")
	os.MkdirAll(d1, 0o755)
	os.WriteFile(filepath.Join(d1, "manifest.yaml"), []byte(`id: matematicas-es
version: "1.0"
language: es
domain: mathematics
source: test
data_file: data.csv
format:
  delimiter: ";"
  has_header: true
  term_column: "term"
  weight_column: "percent"
  synonyms_column: "synonyms"
  normalize: lowercase_ascii
`), 0o644)
	os.WriteFile(filepath.Join(d1, "data.csv"), []byte("term;percent;synonyms\ncalculo;90;\nalgebra;80;algebraica\n"), 0o644)

	// Vocab 2: Spanish biology
	d2 := filepath.Join(dir, "biologia-es")
	os.MkdirAll(d2, 0o755)
	os.WriteFile(filepath.Join(d2, "manifest.yaml"), []byte(`id: biologia-es
version: "1.0"
language: es
domain: biology
source: test
data_file: data.csv
format:
  delimiter: ";"
  has_header: true
  term_column: "term"
  weight_column: "percent"
  synonyms_column: "synonyms"
  normalize: lowercase_ascii
`), 0o644)
	os.WriteFile(filepath.Join(d2, "data.csv"), []byte("term;percent;synonyms\ncelula;85;\ncalculo;40;\n"), 0o644)

	reg := NewRegistry(dir)
	if err := reg.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return reg, dir
}

func TestRegistryLoad(t *testing.T) {
	reg, _ := setupRegistry(t)

	if reg.VocabCount() != 2 {
		t.Errorf("VocabCount = %d, want 2", reg.VocabCount())
	}
	if reg.TotalTerms() != 4 {
		t.Errorf("TotalTerms = %d, want 4", reg.TotalTerms())
	}
}

func TestScoreText_AllVocabs(t *testing.T) {
	reg, _ := setupRegistry(t)

	// "calculo" exists in both vocabularies at different weights.
	scores := reg.ScoreText("el calculo", nil)
	if len(scores) != 2 {
		t.Fatalf("scores = %d, want 2", len(scores))
	}
	// Sorted by vocab ID: biologia-es < matematicas-es
	if scores[0].VocabID != "biologia-es" || scores[1].VocabID != "matematicas-es" {
		t.Errorf("order = %q, %q, want biologia-es, matematicas-es", scores[0].VocabID, scores[1].VocabID)
	}
	if scores[0].Result.Matches[0].Weight != 0.4 {
		t.Errorf("biology weight = %v, want 0.4", scores[0].Result.Matches[0].Weight)
	}
	if scores[1].Result.Matches[0].Weight != 0.9 {
		t.Errorf("mathematics weight = %v, want 0.9", scores[1].Result.Matches[0].Weight)
	}
}

func TestScoreText_FilterDomain(t *testing.T) {
	reg, _ := setupRegistry(t)

	scores := reg.ScoreText("el calculo", &ScoreOptions{Domains: []string{"mathematics"}})
	if len(scores) != 1 {
		t.Fatalf("scores = %d, want 1 (mathematics only)", len(scores))
	}
	if scores[0].Domain != "mathematics" {
		t.Errorf("Domain = %q, want mathematics", scores[0].Domain)
	}
}

func TestScoreText_FilterVocab(t *testing.T) {
	reg, _ := setupRegistry(t)

	scores := reg.ScoreText("el calculo", &ScoreOptions{Vocabs: []string{"biologia-es"}})
	if len(scores) != 1 {
		t.Fatalf("scores = %d, want 1", len(scores))
	}
	if scores[0].VocabID != "biologia-es" {
		t.Errorf("VocabID = %q, want biologia-es", scores[0].VocabID)
	}
}

func TestScoreText_FilterNoResult(t *testing.T) {
	reg, _ := setupRegistry(t)

	scores := reg.ScoreText("el calculo", &ScoreOptions{Languages: []string{"en"}})
	if len(scores) != 0 {
		t.Errorf("scores = %d, want 0 (no en vocab)", len(scores))
	}
}

func TestRegistryGet(t *testing.T) {
	reg, _ := setupRegistry(t)

	v, ok := reg.Get("matematicas-es")
	if !ok {
		t.Fatal("expected matematicas-es")
	}
	if v.Manifest.Domain != "mathematics" {
		t.Errorf("Domain = %q, want mathematics", v.Manifest.Domain)
	}
	if _, ok := reg.Get("nonexistent"); ok {
		t.Error("expected miss for nonexistent vocab")
	}
}

func TestListVocabs(t *testing.T) {
	reg, _ := setupRegistry(t)

	infos := reg.ListVocabs()
	if len(infos) != 2 {
		t.Fatalf("ListVocabs = %d, want 2", len(infos))
	}
	// Sorted by ID
	if infos[0].ID != "biologia-es" || infos[1].ID != "matematicas-es" {
		t.Errorf("order = %q, %q, want biologia-es, matematicas-es", infos[0].ID, infos[1].ID)
	}
	if infos[1].Terms != 2 {
		t.Errorf("matematicas terms = %d, want 2", infos[1].Terms)
	}
	// 2 canonical keys + 1 synonym key
	if infos[1].Surfaces != 3 {
		t.Errorf("matematicas surfaces = %d, want 3", infos[1].Surfaces)
	}
}

func TestReload(t *testing.T) {
	reg, dir := setupRegistry(t)

	if reg.VocabCount() != 2 {
		t.Fatalf("before reload: %d vocabs", reg.VocabCount())
	}

	// Add a third vocabulary
	d3 := filepath.Join(dir, "fisica-es")
	os.MkdirAll(d3, 0o755)
	os.WriteFile(filepath.Join(d3, "manifest.yaml"), []byte(`id: fisica-es
version: "1.0"
language: es
domain: physics
source: test
data_file: data.csv
format:
  delimiter: ";"
  has_header: true
  term_column: "term"
  weight_column: "percent"
  synonyms_column: "synonyms"
  normalize: lowercase_ascii
`), 0o644)
	os.WriteFile(filepath.Join(d3, "data.csv"), []byte("term;percent;synonyms\nenergia;70;\n"), 0o644)

	if err := reg.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if reg.VocabCount() != 3 {
		t.Errorf("after reload: %d vocabs, want 3", reg.VocabCount())
	}
}

func TestEmptyRegistry(t *testing.T) {
	dir := t.TempDir()
	reg := NewRegistry(dir)
	if err := reg.Load(); err != nil {
		t.Fatalf("Load empty: %v", err)
	}
	if reg.VocabCount() != 0 {
		t.Errorf("VocabCount = %d, want 0", reg.VocabCount())
	}

	scores := reg.ScoreText("anything", nil)
	if len(scores) != 0 {
		t.Errorf("scores = %d, want 0", len(scores))
	}
}

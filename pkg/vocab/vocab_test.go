package vocab

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeTestVocab writes a minimal manifest + CSV in a temp directory and returns the dir.
func writeTestVocab(t *testing.T, id, normalize string, csvContent string) string {
	t.Helper()
	dir := t.TempDir()
	vocabDir := filepath.Join(dir, id)
	os.MkdirAll(vocabDir, 0o755)

	manifest := `id: ` + id + `
version: "1.0"
language: es
domain: mathematics
source: unit test
data_file: data.csv
format:
  delimiter: ";"
  encoding: utf-8
  has_header: true
  term_column: "term"
  weight_column: "percent"
  synonyms_column: "synonyms"
  normalize: ` + normalize + `
`
	os.WriteFile(filepath.Join(vocabDir, "manifest.yaml"), []byte(manifest), 0o644)
	os.WriteFile(filepath.Join(vocabDir, "data.csv"), []byte(csvContent), 0o644)
	return dir
}

func TestLoad(t *testing.T) {
	dir := writeTestVocab(t, "test-vocab", "lowercase_ascii",
		"term;percent;synonyms\nCálculo;90;calculito\nAlgebra;80;\nGeometría;75;geo, GEOM\n")

	v, err := Load(filepath.Join(dir, "test-vocab"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if v.Manifest.ID != "test-vocab" {
		t.Errorf("ID = %q, want test-vocab", v.Manifest.ID)
	}
	if len(v.Terms) != 3 {
		t.Errorf("terms = %d, want 3", len(v.Terms))
	}

	// Index keys: canonical terms plus synonyms, all normalized.
	for _, key := range []string{"calculo", "calculito", "algebra", "geometria", "geo", "geom"} {
		if _, ok := v.Index.Lookup(key); !ok {
			t.Errorf("expected index key %q", key)
		}
	}

	e, _ := v.Index.Lookup("geom")
	if e.Canonical != "geometría" || e.Weight != 0.75 {
		t.Errorf("geom -> (%q, %v), want (geometría, 0.75)", e.Canonical, e.Weight)
	}
}

func TestLoad_BadWeightAbortsWholeLoad(t *testing.T) {
	dir := writeTestVocab(t, "bad-weight", "lowercase_ascii",
		"term;percent;synonyms\nCálculo;90;\nAlgebra;abc;\n")

	_, err := Load(filepath.Join(dir, "bad-weight"))
	if err == nil {
		t.Fatal("expected error for non-numeric weight")
	}
	var de *DataError
	if !errors.As(err, &de) {
		t.Errorf("error = %T, want *DataError in chain", err)
	}
}

func TestLoad_EmptyTermsSkipped(t *testing.T) {
	dir := writeTestVocab(t, "empty-term", "lowercase_ascii",
		"term;percent;synonyms\n;50;\nvalid;60;\n")

	v, err := Load(filepath.Join(dir, "empty-term"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(v.Terms) != 1 {
		t.Errorf("terms = %d, want 1 (empty term rows skipped)", len(v.Terms))
	}
}

func TestLoad_MissingSynonymsCell(t *testing.T) {
	// Rows may omit the trailing synonyms field entirely.
	dir := writeTestVocab(t, "short-rows", "lowercase_ascii",
		"term;percent;synonyms\ncalculo;90\nalgebra;80;alg\n")

	v, err := Load(filepath.Join(dir, "short-rows"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(v.Terms) != 2 {
		t.Fatalf("terms = %d, want 2", len(v.Terms))
	}
	if len(v.Terms[0].Synonyms) != 0 {
		t.Errorf("synonyms = %v, want none for the short row", v.Terms[0].Synonyms)
	}
	if _, ok := v.Index.Lookup("calculo"); !ok {
		t.Error("expected index key calculo from the short row")
	}
	if _, ok := v.Index.Lookup("alg"); !ok {
		t.Error("expected synonym key alg from the full row")
	}
}

func TestLoad_MissingColumn(t *testing.T) {
	dir := writeTestVocab(t, "bad-col", "lowercase_ascii",
		"word;percent;synonyms\na;50;\n")

	_, err := Load(filepath.Join(dir, "bad-col"))
	if err == nil {
		t.Error("expected error for missing term column")
	}
}

func TestVocabulary_Score(t *testing.T) {
	dir := writeTestVocab(t, "score-vocab", "lowercase_ascii",
		"term;percent;synonyms\ncalculo;90;\n")

	v, err := Load(filepath.Join(dir, "score-vocab"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	res := v.Score("me gusta el calculo y la calculo")
	if !almostEqual(res.Score, 79.5) {
		t.Errorf("Score = %v, want 79.5", res.Score)
	}
}

func TestVocabulary_Score_AccentPreserving(t *testing.T) {
	// A lowercase_utf8 vocabulary indexes accented keys; scoring must reach
	// them through the same normalizer.
	dir := writeTestVocab(t, "utf8-vocab", "lowercase_utf8",
		"term;percent;synonyms\ncálculo;90;\n")

	v, err := Load(filepath.Join(dir, "utf8-vocab"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	res := v.Score("me gusta el cálculo")
	if res.MatchedTokens != 1 {
		t.Fatalf("MatchedTokens = %d, want 1", res.MatchedTokens)
	}
	if res.Matches[0].Term != "cálculo" {
		t.Errorf("match term = %q, want cálculo", res.Matches[0].Term)
	}
}

func TestLoad_SQLite(t *testing.T) {
	dir := t.TempDir()
	vocabDir := filepath.Join(dir, "sqlite-vocab")
	os.MkdirAll(vocabDir, 0o755)

	dbPath := filepath.Join(vocabDir, "vocab.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if _, err := db.Exec(`CREATE TABLE palabras_clave (palabra TEXT, porcentaje_identidad REAL, sinonimos TEXT)`); err != nil {
		t.Fatalf("create table: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO palabras_clave VALUES ('Cálculo', 90, 'calculito'), ('algebra', 80, '')`); err != nil {
		t.Fatalf("insert: %v", err)
	}
	db.Close()

	manifest := `id: sqlite-vocab
version: "1.0"
language: es
domain: mathematics
source: unit test
data_file: vocab.db
method: sqlite
format:
  normalize: lowercase_ascii
`
	os.WriteFile(filepath.Join(vocabDir, "manifest.yaml"), []byte(manifest), 0o644)

	v, err := Load(vocabDir)
	if err != nil {
		t.Fatalf("Load sqlite: %v", err)
	}
	if len(v.Terms) != 2 {
		t.Fatalf("terms = %d, want 2", len(v.Terms))
	}
	e, ok := v.Index.Lookup("calculito")
	if !ok {
		t.Fatal("expected synonym key calculito")
	}
	if e.Weight != 0.9 {
		t.Errorf("weight = %v, want 0.9", e.Weight)
	}
}

func TestReadSQLiteTerms_BadWeight(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "vocab.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	db.Exec(`CREATE TABLE palabras_clave (palabra TEXT, porcentaje_identidad TEXT, sinonimos TEXT)`)
	db.Exec(`INSERT INTO palabras_clave VALUES ('algebra', 'abc', '')`)
	db.Close()

	_, err = ReadSQLiteTerms(dbPath, FormatSpec{})
	if err == nil {
		t.Fatal("expected error for non-numeric weight")
	}
	var de *DataError
	if !errors.As(err, &de) {
		t.Errorf("error = %T, want *DataError in chain", err)
	}
}

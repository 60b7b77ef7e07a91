package vocab

import "testing"

func TestBuildIndex(t *testing.T) {
	terms := []Term{
		{Canonical: "cálculo", Weight: 0.9, Synonyms: []string{"calculito"}},
		{Canonical: "algebra", Weight: 0.8},
	}
	idx := BuildIndex(terms, NormalizeToken)

	if len(idx) != 3 {
		t.Fatalf("index size = %d, want 3", len(idx))
	}

	// Canonical term key is accent-stripped; the value keeps the original spelling.
	e, ok := idx.Lookup("calculo")
	if !ok {
		t.Fatal("expected key calculo")
	}
	if e.Canonical != "cálculo" || e.Weight != 0.9 {
		t.Errorf("calculo -> (%q, %v), want (cálculo, 0.9)", e.Canonical, e.Weight)
	}

	// Synonym maps to the same canonical term and weight.
	e, ok = idx.Lookup("calculito")
	if !ok {
		t.Fatal("expected key calculito")
	}
	if e.Canonical != "cálculo" || e.Weight != 0.9 {
		t.Errorf("calculito -> (%q, %v), want (cálculo, 0.9)", e.Canonical, e.Weight)
	}
}

func TestBuildIndex_LastWriteWins(t *testing.T) {
	// "algebra" appears as a term and later as another term's synonym; the
	// later entry silently overwrites the earlier one.
	terms := []Term{
		{Canonical: "algebra", Weight: 0.8},
		{Canonical: "geometria", Weight: 0.5, Synonyms: []string{"algebra"}},
	}
	idx := BuildIndex(terms, NormalizeToken)

	e, ok := idx.Lookup("algebra")
	if !ok {
		t.Fatal("expected key algebra")
	}
	if e.Canonical != "geometria" || e.Weight != 0.5 {
		t.Errorf("algebra -> (%q, %v), want (geometria, 0.5) — last write wins", e.Canonical, e.Weight)
	}
}

func TestBuildIndex_AccentCollision(t *testing.T) {
	// Two spellings that normalize identically collide into one key.
	terms := []Term{
		{Canonical: "calculo", Weight: 0.7},
		{Canonical: "cálculo", Weight: 0.9},
	}
	idx := BuildIndex(terms, NormalizeToken)

	if len(idx) != 1 {
		t.Fatalf("index size = %d, want 1", len(idx))
	}
	e, _ := idx.Lookup("calculo")
	if e.Weight != 0.9 {
		t.Errorf("weight = %v, want 0.9 (later record)", e.Weight)
	}
}

func TestBuildIndex_EmptySurfaceSkipped(t *testing.T) {
	terms := []Term{{Canonical: "", Weight: 0.5, Synonyms: []string{"ok"}}}
	idx := BuildIndex(terms, NormalizeToken)

	if _, ok := idx.Lookup(""); ok {
		t.Error("empty key should not be indexed")
	}
	if _, ok := idx.Lookup("ok"); !ok {
		t.Error("synonym of empty-canonical term should still be indexed")
	}
}

package vocab

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// Registry holds all loaded vocabularies and serves scoring queries.
// Vocabularies are swapped wholesale on (re)load; in-flight scoring calls
// keep reading the snapshot they started with.
type Registry struct {
	mu        sync.RWMutex
	vocabs    map[string]*Vocabulary
	vocabsDir string
}

// NewRegistry creates a new empty registry for the given directory.
func NewRegistry(vocabsDir string) *Registry {
	return &Registry{
		vocabs:    make(map[string]*Vocabulary),
		vocabsDir: vocabsDir,
	}
}

// Load scans the vocabs directory and loads every vocabulary.
func (r *Registry) Load() error {
	entries, err := os.ReadDir(r.vocabsDir)
	if err != nil {
		return fmt.Errorf("read vocabs dir %s: %w", r.vocabsDir, err)
	}

	newVocabs := make(map[string]*Vocabulary)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(r.vocabsDir, entry.Name())
		if _, err := os.Stat(filepath.Join(dir, "manifest.yaml")); err != nil {
			continue
		}
		v, err := Load(dir)
		if err != nil {
			return fmt.Errorf("load vocabulary %s: %w", entry.Name(), err)
		}
		newVocabs[v.Manifest.ID] = v
	}

	r.mu.Lock()
	r.vocabs = newVocabs
	r.mu.Unlock()
	return nil
}

// Reload reloads all vocabularies from disk (hot reload).
func (r *Registry) Reload() error {
	return r.Load()
}

// VocabScore is the scoring outcome of one text against one vocabulary.
type VocabScore struct {
	VocabID  string      `json:"vocab_id"`
	Domain   string      `json:"domain"`
	Language string      `json:"language"`
	Result   ScoreResult `json:"result"`
}

// ScoreOptions are optional filters for scoring.
type ScoreOptions struct {
	Languages []string
	Domains   []string
	Vocabs    []string
}

// ScoreText scores a text against all (or filtered) vocabularies.
// Vocabularies are iterated in sorted ID order for deterministic results.
func (r *Registry) ScoreText(text string, opts *ScoreOptions) []VocabScore {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.vocabs))
	for id := range r.vocabs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	scores := []VocabScore{}
	for _, id := range ids {
		v := r.vocabs[id]
		if opts != nil {
			if len(opts.Languages) > 0 && !contains(opts.Languages, v.Manifest.Language) {
				continue
			}
			if len(opts.Domains) > 0 && !contains(opts.Domains, v.Manifest.Domain) {
				continue
			}
			if len(opts.Vocabs) > 0 && !contains(opts.Vocabs, v.Manifest.ID) {
				continue
			}
		}
		scores = append(scores, VocabScore{
			VocabID:  v.Manifest.ID,
			Domain:   v.Manifest.Domain,
			Language: v.Manifest.Language,
			Result:   v.Score(text),
		})
	}
	return scores
}

// Get returns a loaded vocabulary by ID.
func (r *Registry) Get(id string) (*Vocabulary, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.vocabs[id]
	return v, ok
}

// VocabInfo is the public metadata for a loaded vocabulary.
type VocabInfo struct {
	ID        string `json:"id"`
	Version   string `json:"version"`
	Language  string `json:"language"`
	Domain    string `json:"domain"`
	Source    string `json:"source"`
	SourceURL string `json:"source_url,omitempty"`
	License   string `json:"license"`
	Terms     int    `json:"terms"`
	Surfaces  int    `json:"surfaces"`
}

// ListVocabs returns metadata for all loaded vocabularies, sorted by ID.
func (r *Registry) ListVocabs() []VocabInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]VocabInfo, 0, len(r.vocabs))
	for _, v := range r.vocabs {
		infos = append(infos, VocabInfo{
			ID:        v.Manifest.ID,
			Version:   v.Manifest.Version,
			Language:  v.Manifest.Language,
			Domain:    v.Manifest.Domain,
			Source:    v.Manifest.Source,
			SourceURL: v.Manifest.SourceURL,
			License:   v.Manifest.License,
			Terms:     len(v.Terms),
			Surfaces:  len(v.Index),
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}

// VocabCount returns the number of loaded vocabularies.
func (r *Registry) VocabCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.vocabs)
}

// TotalTerms returns the total number of terms across all vocabularies.
func (r *Registry) TotalTerms() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	total := 0
	for _, v := range r.vocabs {
		total += len(v.Terms)
	}
	return total
}

func contains(slice []string, s string) bool {
	for _, v := range slice {
		if v == s {
			return true
		}
	}
	return false
}

package vocab

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest describes a vocabulary: where its records come from and how to
// interpret them.
type Manifest struct {
	ID        string     `yaml:"id" json:"id"`
	Version   string     `yaml:"version" json:"version"`
	Language  string     `yaml:"language" json:"language"`
	Domain    string     `yaml:"domain" json:"domain"`
	Source    string     `yaml:"source" json:"source"`
	SourceURL string     `yaml:"source_url" json:"source_url,omitempty"`
	License   string     `yaml:"license" json:"license"`
	DataFile  string     `yaml:"data_file" json:"data_file"`
	Method    string     `yaml:"method" json:"method,omitempty"`
	Format    FormatSpec `yaml:"format" json:"-"`
}

// FormatSpec describes the record layout of the data file.
// For CSV sources the *_column fields name header columns; for SQLite
// sources they name table columns and Table names the table.
type FormatSpec struct {
	Delimiter      string `yaml:"delimiter"`
	Encoding       string `yaml:"encoding"`
	HasHeader      bool   `yaml:"has_header"`
	Table          string `yaml:"table"`
	TermColumn     string `yaml:"term_column"`
	WeightColumn   string `yaml:"weight_column"`
	SynonymsColumn string `yaml:"synonyms_column"`
	Normalize      string `yaml:"normalize"`
}

// LoadManifest reads and parses a manifest.yaml file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if m.ID == "" {
		return nil, fmt.Errorf("manifest %s: missing id", path)
	}
	if m.DataFile == "" {
		m.DataFile = "data.csv"
	}
	return &m, nil
}

package vocab

import (
	"encoding/gob"
	"fmt"
	"os"
)

// loadGob deserializes a parsed term list from a gob-encoded file.
func loadGob(path string) ([]Term, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gob file: %w", err)
	}
	defer f.Close()

	var terms []Term
	if err := gob.NewDecoder(f).Decode(&terms); err != nil {
		return nil, fmt.Errorf("decode gob: %w", err)
	}
	return terms, nil
}

// SaveGob serializes a term list to a gob-encoded file at path.
func SaveGob(terms []Term, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create gob file: %w", err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(terms); err != nil {
		return fmt.Errorf("encode gob: %w", err)
	}
	return nil
}

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/hazyhaar/lexiscore/pkg/vocab"
)

// cmdScore loads the vocabularies once and scores a single text read from a
// file or stdin, printing the full breakdown as JSON.
func cmdScore(args []string) {
	fs := flag.NewFlagSet("score", flag.ExitOnError)
	vocabsDir := fs.String("vocabs-dir", "vocabs", "vocabularies directory")
	file := fs.String("file", "", "text file to score (default: stdin)")
	vocabID := fs.String("vocab", "", "restrict scoring to one vocabulary ID")
	fs.Parse(args)

	var text []byte
	var err error
	if *file != "" {
		text, err = os.ReadFile(*file)
	} else {
		text, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading text: %v\n", err)
		os.Exit(1)
	}

	reg := vocab.NewRegistry(*vocabsDir)
	if err := reg.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading vocabularies: %v\n", err)
		os.Exit(1)
	}

	var opts *vocab.ScoreOptions
	if *vocabID != "" {
		opts = &vocab.ScoreOptions{Vocabs: []string{*vocabID}}
	}

	scores := reg.ScoreText(string(text), opts)
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(scores); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
		os.Exit(1)
	}
}

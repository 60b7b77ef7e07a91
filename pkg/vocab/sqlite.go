package vocab

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Default table layout of a vocab.db file, kept compatible with legacy
// keyword databases.
const (
	defaultTable          = "palabras_clave"
	defaultTermColumn     = "palabra"
	defaultWeightColumn   = "porcentaje_identidad"
	defaultSynonymsColumn = "sinonimos"
)

// ReadSQLiteTerms reads vocabulary records from a SQLite database. Table and
// column names come from the manifest format spec, defaulting to the
// palabras_clave layout. The weight column may be numeric or text; either
// way a value that does not parse as a number aborts the load.
func ReadSQLiteTerms(path string, format FormatSpec) ([]Term, error) {
	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open vocab db: %w", err)
	}
	defer db.Close()

	table := format.Table
	if table == "" {
		table = defaultTable
	}
	termCol := format.TermColumn
	if termCol == "" {
		termCol = defaultTermColumn
	}
	weightCol := format.WeightColumn
	if weightCol == "" {
		weightCol = defaultWeightColumn
	}
	synCol := format.SynonymsColumn
	if synCol == "" {
		synCol = defaultSynonymsColumn
	}

	q := fmt.Sprintf("SELECT %s, %s, %s FROM %s", termCol, weightCol, synCol, table)
	rows, err := db.Query(q)
	if err != nil {
		return nil, fmt.Errorf("query vocab table: %w", err)
	}
	defer rows.Close()

	var terms []Term
	for rows.Next() {
		var term string
		var weight, synonyms sql.NullString
		if err := rows.Scan(&term, &weight, &synonyms); err != nil {
			return nil, fmt.Errorf("scan vocab row: %w", err)
		}
		t, err := ParseTerm(term, weight.String, synonyms.String)
		if err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}
	return terms, rows.Err()
}

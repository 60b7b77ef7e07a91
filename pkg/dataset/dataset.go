// Package dataset loads a TSV corpus into memory and serves substring
// searches and group counts over its columns. It is a read-only companion to
// the scoring engine: scores tell you how compatible a text is, the dataset
// lets you find related records to eyeball.
package dataset

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Dataset is an immutable in-memory TSV table with a header.
type Dataset struct {
	columns []string
	colIdx  map[string]int
	rows    [][]string
}

// Row is one record keyed by column name. Missing cells are empty strings.
type Row map[string]string

// Load reads a tab-separated file, skipping skipRows preamble lines before
// the header. Rows shorter than the header are padded with empty cells.
func Load(path string, skipRows int) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	for i := 0; i < skipRows; i++ {
		if _, err := br.ReadString('\n'); err != nil {
			return nil, fmt.Errorf("skip preamble line %d: %w", i+1, err)
		}
	}

	r := csv.NewReader(br)
	r.Comma = '\t'
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	d := &Dataset{
		columns: header,
		colIdx:  make(map[string]int, len(header)),
	}
	for i, c := range header {
		d.colIdx[c] = i
	}

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		d.rows = append(d.rows, record)
	}
	return d, nil
}

// Columns returns the header column names in file order.
func (d *Dataset) Columns() []string {
	return d.columns
}

// Len returns the number of data rows.
func (d *Dataset) Len() int {
	return len(d.rows)
}

// Search returns all rows whose column contains substr, case-insensitive.
func (d *Dataset) Search(column, substr string) ([]Row, error) {
	idx, ok := d.colIdx[column]
	if !ok {
		return nil, fmt.Errorf("unknown column %q", column)
	}

	needle := strings.ToLower(substr)
	var out []Row
	for _, record := range d.rows {
		if idx >= len(record) {
			continue
		}
		if !strings.Contains(strings.ToLower(record[idx]), needle) {
			continue
		}
		out = append(out, d.rowMap(record))
	}
	return out, nil
}

// CountBy is one value of a grouped column with its occurrence count.
type CountBy struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// TopCounts groups rows by a column's value and returns the n most frequent
// values, counts descending, ties broken by value ascending.
func (d *Dataset) TopCounts(column string, n int) ([]CountBy, error) {
	idx, ok := d.colIdx[column]
	if !ok {
		return nil, fmt.Errorf("unknown column %q", column)
	}

	counts := make(map[string]int)
	for _, record := range d.rows {
		if idx >= len(record) {
			continue
		}
		counts[record[idx]]++
	}
	return rankCounts(counts, n), nil
}

// CountRows groups an already-selected row set (e.g. search results) by a
// column and returns the n most frequent values, same ordering as TopCounts.
func CountRows(rows []Row, column string, n int) []CountBy {
	counts := make(map[string]int)
	for _, row := range rows {
		counts[row[column]]++
	}
	return rankCounts(counts, n)
}

func rankCounts(counts map[string]int, n int) []CountBy {
	out := make([]CountBy, 0, len(counts))
	for v, c := range counts {
		out = append(out, CountBy{Value: v, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

func (d *Dataset) rowMap(record []string) Row {
	row := make(Row, len(d.columns))
	for i, c := range d.columns {
		if i < len(record) {
			row[c] = record[i]
		} else {
			row[c] = ""
		}
	}
	return row
}

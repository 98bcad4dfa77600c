// Package dataset loads the static CSV reference tables used to seed
// few-shot examples in prompts. Tables are read once at startup and are
// read-only afterwards. A missing or unreadable file degrades to an empty
// table rather than an error: reference examples are an enrichment, not a
// dependency.
package dataset

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strings"
)

// Row maps column name to cell value for one record.
type Row map[string]string

type Table struct {
	rows []Row
}

// Load reads a CSV file with a header row. A missing file or unreadable
// content yields an empty table.
func Load(path string) *Table {
	f, err := os.Open(path)
	if err != nil {
		return &Table{}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil || len(records) < 2 {
		return &Table{}
	}

	header := records[0]
	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(Row, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[strings.TrimSpace(col)] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return &Table{rows: rows}
}

func (t *Table) Len() int {
	return len(t.rows)
}

// Filter returns the rows matching every column=value predicate exactly.
// A predicate on a column the table does not have matches nothing.
func (t *Table) Filter(where map[string]string) *Table {
	var matched []Row
	for _, row := range t.rows {
		ok := true
		for col, want := range where {
			if got, present := row[col]; !present || got != want {
				ok = false
				break
			}
		}
		if ok {
			matched = append(matched, row)
		}
	}
	return &Table{rows: matched}
}

// Sample returns up to n rows in random order.
func (t *Table) Sample(n int) []Row {
	if n <= 0 || len(t.rows) == 0 {
		return nil
	}
	idx := rand.Perm(len(t.rows))
	if n > len(idx) {
		n = len(idx)
	}
	out := make([]Row, n)
	for i := 0; i < n; i++ {
		out[i] = t.rows[idx[i]]
	}
	return out
}

// FormatRecords renders rows for prompt embedding, one record per line
// with columns in stable order.
func FormatRecords(rows []Row) string {
	if len(rows) == 0 {
		return "No examples found"
	}

	var b strings.Builder
	for _, row := range rows {
		cols := make([]string, 0, len(row))
		for col := range row {
			cols = append(cols, col)
		}
		sort.Strings(cols)

		parts := make([]string, 0, len(cols))
		for _, col := range cols {
			parts = append(parts, fmt.Sprintf("%s: %s", col, row[col]))
		}
		b.WriteString("- ")
		b.WriteString(strings.Join(parts, " | "))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

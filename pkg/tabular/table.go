package tabular

import "strings"

// Header holds one name per column. Empty and duplicate names are kept.
type Header []string

// Row holds the cells of one line. It may be shorter or longer than the header.
type Row []string

// Cell returns the cell at index i, or false when the row has no such cell.
func (r Row) Cell(i int) (string, bool) {
	if i < 0 || i >= len(r) {
		return "", false
	}
	return r[i], true
}

type Table struct {
	Header Header
	Rows   []Row
}

// Columns returns the non-blank header names, trimmed, in header order.
func (t *Table) Columns() []string {
	cols := make([]string, 0, len(t.Header))
	for _, h := range t.Header {
		if name := strings.TrimSpace(h); name != "" {
			cols = append(cols, name)
		}
	}
	return cols
}

// ColumnIndex returns the index of the first header matching name once both are trimmed.
func (t *Table) ColumnIndex(name string) (int, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return -1, false
	}
	for i, h := range t.Header {
		if strings.TrimSpace(h) == name {
			return i, true
		}
	}
	return -1, false
}

// DistinctValues returns the trimmed non-empty values of column col in first-occurrence order.
func (t *Table) DistinctValues(col int) []string {
	seen := make(map[string]struct{})
	values := []string{}
	for _, row := range t.Rows {
		cell, ok := row.Cell(col)
		if !ok {
			continue
		}
		v := strings.TrimSpace(cell)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return values
}

// Preview returns a table with the same header and at most n rows.
func (t *Table) Preview(n int) *Table {
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	if n < 0 {
		n = 0
	}
	return &Table{Header: t.Header, Rows: t.Rows[:n]}
}

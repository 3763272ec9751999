package tabular

import (
	"strings"

	srvErrors "github.com/kubev2v/clause-builder/pkg/errors"
)

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Parse reads comma separated text. The first non-blank line is the header.
func Parse(text string) (*Table, error) {
	text = strings.TrimSpace(lineEndings.Replace(text))

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}

	if len(lines) == 0 {
		return nil, srvErrors.NewEmptyInputError()
	}

	t := &Table{
		Header: Header(SplitLine(lines[0])),
		Rows:   make([]Row, 0, len(lines)-1),
	}
	for _, line := range lines[1:] {
		t.Rows = append(t.Rows, Row(SplitLine(line)))
	}

	return t, nil
}

// SplitLine splits one line on commas that are outside double quotes.
// Fields are trimmed; "" inside quotes is a literal quote.
func SplitLine(line string) []string {
	var (
		fields   []string
		field    strings.Builder
		inQuotes bool
	)

	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == '"' && inQuotes && i+1 < len(line) && line[i+1] == '"':
			field.WriteByte('"')
			i++
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(field.String()))
			field.Reset()
		default:
			field.WriteByte(ch)
		}
	}

	return append(fields, strings.TrimSpace(field.String()))
}

// FromRows builds a table out of rows that are already split into cells.
// Cells are trimmed and rows with only blank cells are dropped.
func FromRows(rows [][]string) (*Table, error) {
	var kept []Row
	for _, row := range rows {
		r := make(Row, len(row))
		blank := true
		for i, cell := range row {
			r[i] = strings.TrimSpace(cell)
			if r[i] != "" {
				blank = false
			}
		}
		if blank {
			continue
		}
		kept = append(kept, r)
	}

	if len(kept) == 0 {
		return nil, srvErrors.NewEmptyInputError()
	}

	return &Table{Header: Header(kept[0]), Rows: kept[1:]}, nil
}

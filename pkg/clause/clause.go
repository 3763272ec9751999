package clause

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	srvErrors "github.com/kubev2v/clause-builder/pkg/errors"
	"github.com/kubev2v/clause-builder/pkg/tabular"
)

// DefaultTable is the table name used when the base query is empty.
const DefaultTable = "table_name"

type Request struct {
	Table     *tabular.Table
	Column    int
	Operator  Operator
	BaseQuery string
}

// Generate returns the base query of req filtered on the distinct values of the selected column.
func Generate(req Request) (string, error) {
	if req.Table == nil {
		return "", srvErrors.NewNoTableLoadedError()
	}
	if req.Column < 0 || req.Column >= len(req.Table.Header) {
		return "", srvErrors.NewNoColumnSelectedError("")
	}

	column := strings.TrimSpace(req.Table.Header[req.Column])

	values := req.Table.DistinctValues(req.Column)
	if len(values) == 0 {
		return "", srvErrors.NewEmptyColumnValuesError(column)
	}

	formatted, err := FormatValues(values, req.Operator, column)
	if err != nil {
		return "", err
	}

	return ComposeQuery(req.BaseQuery, req.Operator, column, formatted)
}

// FormatValues renders values for op: a comma separated list for IN and NOT IN,
// OR-joined column predicates for LIKE and NOT LIKE.
func FormatValues(values []string, op Operator, column string) (string, error) {
	if !op.Valid() {
		return "", srvErrors.NewUnsupportedOperatorError(string(op))
	}

	parts := make([]string, 0, len(values))

	if op.isList() {
		numeric := allNumeric(values)
		for _, v := range values {
			if numeric {
				parts = append(parts, strings.TrimSpace(v))
			} else {
				parts = append(parts, quote(v))
			}
		}
		return strings.Join(parts, ", "), nil
	}

	for _, v := range values {
		parts = append(parts, fmt.Sprintf("%s %s '%%%s%%'", column, op, escape(v)))
	}
	return strings.Join(parts, " OR "), nil
}

// ComposeQuery merges the formatted values into base. The merge is textual:
// base is only inspected for the word "where", and a terminator on base stays
// where it is.
func ComposeQuery(base string, op Operator, column, formatted string) (string, error) {
	var fragment string
	switch {
	case op.isList():
		fragment = fmt.Sprintf("%s %s (%s)", column, op, formatted)
	case op.Valid():
		fragment = fmt.Sprintf("(%s)", formatted)
	default:
		return "", srvErrors.NewUnsupportedOperatorError(string(op))
	}

	base = strings.TrimSpace(base)

	var query string
	switch {
	case base == "":
		query = fmt.Sprintf("SELECT * FROM %s WHERE %s", DefaultTable, fragment)
	case !strings.Contains(strings.ToLower(base), "where"):
		query = base + " WHERE " + fragment
	default:
		query = base + " AND " + fragment
	}

	if !strings.HasSuffix(query, ";") {
		query += ";"
	}
	return query, nil
}

func allNumeric(values []string) bool {
	for _, v := range values {
		if !isNumeric(v) {
			return false
		}
	}
	return true
}

// isNumeric rejects blanks and NaN/Inf, which ParseFloat accepts but SQL does not.
func isNumeric(v string) bool {
	v = strings.TrimSpace(v)
	if v == "" {
		return false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return false
	}
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func escape(v string) string {
	return strings.ReplaceAll(strings.TrimSpace(v), "'", "''")
}

func quote(v string) string {
	return "'" + escape(v) + "'"
}

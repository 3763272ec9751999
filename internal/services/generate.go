package services

import (
	"strings"

	"github.com/kubev2v/clause-builder/pkg/clause"
	srvErrors "github.com/kubev2v/clause-builder/pkg/errors"
	"github.com/kubev2v/clause-builder/pkg/tabular"
)

// generate resolves the column by header name and the operator by its text,
// then builds the query.
func generate(t *tabular.Table, column, operator, baseQuery string) (string, error) {
	if t == nil {
		return "", srvErrors.NewNoTableLoadedError()
	}
	if strings.TrimSpace(column) == "" {
		return "", srvErrors.NewNoColumnSelectedError("")
	}

	idx, ok := t.ColumnIndex(column)
	if !ok {
		return "", srvErrors.NewNoColumnSelectedError(column)
	}

	op, err := clause.ParseOperator(operator)
	if err != nil {
		return "", err
	}

	return clause.Generate(clause.Request{
		Table:     t,
		Column:    idx,
		Operator:  op,
		BaseQuery: baseQuery,
	})
}

// GenerateFromTable is generate for callers holding a table in memory.
func GenerateFromTable(t *tabular.Table, column, operator, baseQuery string) (string, error) {
	return generate(t, column, operator, baseQuery)
}

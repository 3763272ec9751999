package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	srvErrors "github.com/kubev2v/clause-builder/pkg/errors"
)

// Warehouse runs source queries and returns their result as string cells.
// The first row holds the column names.
type Warehouse struct {
	db      QueryInterceptor
	maxRows int
}

func NewWarehouse(db *sql.DB, maxRows int) *Warehouse {
	return &Warehouse{db: newQueryInterceptor(db, "warehouse"), maxRows: maxRows}
}

// Query passes query through unchanged. Reading stops after maxRows rows when maxRows > 0.
func (w *Warehouse) Query(ctx context.Context, query string) ([][]string, error) {
	rows, err := w.db.QueryContext(ctx, query)
	if err != nil {
		return nil, srvErrors.NewWarehouseError(err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, srvErrors.NewWarehouseError(err)
	}

	result := [][]string{columns}
	values := make([]any, len(columns))
	dest := make([]any, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}

	for rows.Next() {
		if w.maxRows > 0 && len(result) > w.maxRows {
			break
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, srvErrors.NewWarehouseError(err)
		}
		row := make([]string, len(values))
		for i, v := range values {
			row[i] = cellString(v)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, srvErrors.NewWarehouseError(err)
	}
	return result, nil
}

func cellString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(t)
	case string:
		return t
	case time.Time:
		return t.Format(time.RFC3339)
	default:
		return fmt.Sprint(t)
	}
}

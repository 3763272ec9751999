package tabular

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	srvErrors "github.com/kubev2v/clause-builder/pkg/errors"
)

// ParseExcel reads the first sheet of a workbook.
func ParseExcel(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, srvErrors.NewParseError(fmt.Sprintf("invalid workbook: %v", err))
	}
	defer func() {
		_ = f.Close()
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, srvErrors.NewParseError("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}

	return FromRows(rows)
}

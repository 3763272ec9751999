package tabular

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"

	srvErrors "github.com/kubev2v/clause-builder/pkg/errors"
)

type format int

const (
	formatUnknown format = iota
	formatCSV
	formatExcel
)

// ParseFile parses r according to the extension of name.
func ParseFile(name string, r io.Reader) (*Table, error) {
	base, compression := splitCompression(strings.ToLower(filepath.Base(name)))

	var f format
	switch filepath.Ext(base) {
	case ".csv", ".txt":
		f = formatCSV
	case ".xlsx", ".xlsm":
		f = formatExcel
	case ".xls":
		return nil, srvErrors.NewUnsupportedFormatError(name, "legacy .xls workbooks cannot be read, save the sheet as .xlsx or .csv")
	default:
		return nil, srvErrors.NewUnsupportedFormatError(name)
	}

	reader, closer, err := decompress(r, compression)
	if err != nil {
		return nil, err
	}
	defer closer()

	switch f {
	case formatExcel:
		return ParseExcel(reader)
	default:
		data, err := io.ReadAll(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		return Parse(string(data))
	}
}

func splitCompression(name string) (string, string) {
	for _, ext := range []string{".gz", ".zst", ".xz"} {
		if strings.HasSuffix(name, ext) {
			return strings.TrimSuffix(name, ext), ext
		}
	}
	return name, ""
}

func decompress(r io.Reader, ext string) (io.Reader, func(), error) {
	switch ext {
	case ".gz":
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, srvErrors.NewParseError(fmt.Sprintf("invalid gzip data: %v", err))
		}
		return gz, func() { _ = gz.Close() }, nil
	case ".zst":
		decoder, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, srvErrors.NewParseError(fmt.Sprintf("invalid zstd data: %v", err))
		}
		return decoder, decoder.Close, nil
	case ".xz":
		xzReader, err := xz.NewReader(r)
		if err != nil {
			return nil, nil, srvErrors.NewParseError(fmt.Sprintf("invalid xz data: %v", err))
		}
		return xzReader, func() {}, nil
	default:
		return r, func() {}, nil
	}
}

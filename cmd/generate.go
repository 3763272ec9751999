package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kubev2v/clause-builder/internal/config"
	"github.com/kubev2v/clause-builder/internal/logger"
	"github.com/kubev2v/clause-builder/internal/services"
	"github.com/kubev2v/clause-builder/pkg/clause"
	srvErrors "github.com/kubev2v/clause-builder/pkg/errors"
	"github.com/kubev2v/clause-builder/pkg/tabular"
)

type generateOptions struct {
	file      string
	column    string
	operator  string
	baseQuery string
	preview   int
}

func NewGenerateCommand(cfg *config.Configuration) *cobra.Command {
	opts := &generateOptions{}

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a filtered query from a local CSV or Excel file",
		Example: `  clause-builder generate --file users.csv --column country --operator "NOT IN"
  clause-builder generate --file export.xlsx.gz --column name --operator LIKE --base-query "SELECT * FROM users WHERE active = 1"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			undo, err := logger.Setup(cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			defer undo()

			return generate(cmd, opts)
		},
	}

	flags := generateCmd.Flags()
	flags.StringVarP(&opts.file, "file", "f", "", "CSV (.csv, .txt) or Excel (.xlsx, .xlsm) file, optionally .gz, .zst or .xz compressed")
	flags.StringVarP(&opts.column, "column", "c", "", "Header name of the column whose values filter the query")
	flags.StringVarP(&opts.operator, "operator", "o", string(clause.In), "IN, NOT IN, LIKE or NOT LIKE")
	flags.StringVarP(&opts.baseQuery, "base-query", "q", "", "Query the clause is merged into")
	flags.IntVar(&opts.preview, "preview", 0, "Print the header and the first n rows before the query")
	_ = generateCmd.MarkFlagRequired("file")

	return generateCmd
}

func generate(cmd *cobra.Command, opts *generateOptions) error {
	f, err := os.Open(opts.file)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", opts.file, err)
	}
	defer f.Close()

	t, err := tabular.ParseFile(filepath.Base(opts.file), f)
	if err != nil {
		return err
	}
	zap.S().Named("generate").Debugw("table loaded", "file", opts.file, "columns", len(t.Header), "rows", len(t.Rows))

	out := cmd.OutOrStdout()
	header := color.New(color.FgCyan, color.Bold)

	if opts.preview > 0 {
		p := t.Preview(opts.preview)
		_, _ = header.Fprintln(out, p.Header)
		for _, row := range p.Rows {
			fmt.Fprintln(out, row)
		}
		fmt.Fprintln(out)
	}

	sql, err := services.GenerateFromTable(t, opts.column, opts.operator, opts.baseQuery)
	if err != nil {
		if srvErrors.IsNoColumnSelectedError(err) {
			_, _ = header.Fprint(cmd.ErrOrStderr(), "available columns: ")
			fmt.Fprintln(cmd.ErrOrStderr(), t.Columns())
		}
		return err
	}

	_, _ = color.New(color.FgGreen).Fprintln(out, sql)
	return nil
}

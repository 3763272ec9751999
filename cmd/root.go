package cmd

import (
	"github.com/jzelinskie/cobrautil/v2"
	"github.com/spf13/cobra"

	"github.com/kubev2v/clause-builder/internal/config"
)

// envPrefix prefixes every environment variable mapped to a flag,
// e.g. --server-http-port is read from CLAUSE_SERVER_HTTP_PORT.
const envPrefix = "CLAUSE"

func NewRootCommand(cfg *config.Configuration) *cobra.Command {
	root := &cobra.Command{
		Use:               "clause-builder",
		Short:             "Generate SQL filter clauses from the values of a table column",
		SilenceUsage:      true,
		PersistentPreRunE: cobrautil.SyncViperPreRunE(envPrefix),
	}

	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (console, json)")

	root.AddCommand(
		NewRunCommand(cfg),
		NewGenerateCommand(cfg),
		NewVersionCommand(),
	)

	return root
}

package main

import (
	"os"

	"github.com/kubev2v/clause-builder/cmd"
	"github.com/kubev2v/clause-builder/internal/config"
)

func main() {
	cfg := config.NewConfigurationWithOptionsAndDefaults()
	if err := cmd.NewRootCommand(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

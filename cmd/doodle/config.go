package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-doodle/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in YAML configuration. Save it to
~/.doodle/configs/doodle.yaml or ./configs/doodle.yaml and edit it to
override the defaults, or pass it with --config.

Examples:
  doodle config > ~/.doodle/configs/doodle.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	//nolint:errcheck // Best-effort write to stdout
	os.Stdout.Write(config.DefaultYAML())
}

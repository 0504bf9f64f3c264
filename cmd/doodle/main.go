// doodle is a vertical-scrolling platform jumper for the terminal, a desktop
// window or remote players over SSH.
//
// Usage:
//
//	doodle play      - Play in the current terminal
//	doodle window    - Play in a desktop window
//	doodle serve     - Start SSH server for remote play
//	doodle config    - Print the default configuration
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Load a custom YAML configuration
//	--log-level <level>  - Set log verbosity (debug, info, warn, error)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-doodle/internal/config"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "doodle",
	Short: "Doodle - jump from platform to platform, don't fall",
	Long: `Doodle is a vertical-scrolling platform jumper. Steer the doodle left
and right while it bounces off platforms; the world scrolls as it climbs
and the game ends when it falls below the screen.

Available commands:
  play     - Play in the current terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  config   - Print the default configuration

Examples:
  doodle play
  doodle play --seed 42
  doodle window --config ./my-doodle.yaml
  doodle serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the stderr logger used by every command.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// loadConfig resolves the game configuration or exits.
func loadConfig(logger *log.Logger) config.DoodleConfig {
	cfg, source, err := config.LoadDoodle(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("configuration loaded", "source", source)
	return cfg
}

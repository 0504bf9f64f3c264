package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-doodle/internal/core"
	"github.com/vovakirdan/tui-doodle/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and start a doodle session. The play field is
drawn at its native size, one world unit per pixel.

Controls:
  Left/h/a   - Move left (hold to repeat)
  Right/l/d  - Move right (hold to repeat)
  Q/Esc      - Quit

Examples:
  doodle window
  doodle window --seed 42`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, _ []string) {
	logger := newLogger("doodle-window")
	cfg := loadConfig(logger)

	rc := core.RuntimeConfig{
		ScreenW: int(cfg.Viewport.Width),
		ScreenH: int(cfg.Viewport.Height),
		Seed:    flagSeed,
	}

	logger.Info("opening window", "tps", cfg.TicksPerSecond())
	if err := window.Run(cfg, rc, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Package config provides YAML-based game configuration loading and
// validation for the doodle game.
package config

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/tui-doodle/internal/core"
)

// DoodleConfig contains all tunables for a doodle session.
type DoodleConfig struct {
	Physics   Physics   `yaml:"physics"`
	Viewport  Viewport  `yaml:"viewport"`
	Doodle    Doodle    `yaml:"doodle"`
	Platforms Platforms `yaml:"platforms"`
	Colors    Colors    `yaml:"colors"`
}

// Physics defines the integration parameters.
type Physics struct {
	Gravity         float64 `yaml:"gravity"`
	ReboundVelocity float64 `yaml:"rebound_velocity"`
	TickDuration    float64 `yaml:"tick_duration"` // Seconds per fixed step
}

// Viewport defines the visible play field in world units.
type Viewport struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Doodle defines the character's size, start position and reach.
type Doodle struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	MoveX  float64 `yaml:"move_x"`
	JumpX  float64 `yaml:"jump_x"`
	JumpY  float64 `yaml:"jump_y"`
}

// Platforms defines platform size and placement.
type Platforms struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	StartX  float64 `yaml:"start_x"`
	StartY  float64 `yaml:"start_y"`
	CenterX float64 `yaml:"center_x"`
}

// Colors names the colors of the two visual kinds (see core.ParseColor).
type Colors struct {
	Doodle   string `yaml:"doodle"`
	Platform string `yaml:"platform"`
}

// MinRiseFactor is the minimum gap between consecutive generated platforms,
// measured in platform heights.
const MinRiseFactor = 4

// TickInterval returns the fixed step as a wall-clock duration.
func (c DoodleConfig) TickInterval() time.Duration {
	return time.Duration(math.Round(c.Physics.TickDuration * float64(time.Second)))
}

// TicksPerSecond returns the tick rate closest to the fixed step.
func (c DoodleConfig) TicksPerSecond() int {
	if c.Physics.TickDuration <= 0 {
		return 60
	}
	return int(math.Round(1 / c.Physics.TickDuration))
}

// Midline returns the y-coordinate above which the world scrolls.
func (c DoodleConfig) Midline() float64 {
	return c.Viewport.Height / 2
}

// DoodleColor resolves the character color, falling back to the default.
func (c DoodleConfig) DoodleColor() core.Color {
	col, err := core.ParseColor(c.Colors.Doodle)
	if err != nil {
		return core.ColorDefault
	}
	return col
}

// PlatformColor resolves the platform color, falling back to the default.
func (c DoodleConfig) PlatformColor() core.Color {
	col, err := core.ParseColor(c.Colors.Platform)
	if err != nil {
		return core.ColorDefault
	}
	return col
}

// Validate reports every setting that would make the simulation degenerate.
func (c DoodleConfig) Validate() error {
	var errs []error

	positive := []struct {
		name string
		val  float64
	}{
		{"physics.gravity", c.Physics.Gravity},
		{"physics.tick_duration", c.Physics.TickDuration},
		{"viewport.width", c.Viewport.Width},
		{"viewport.height", c.Viewport.Height},
		{"doodle.width", c.Doodle.Width},
		{"doodle.height", c.Doodle.Height},
		{"platforms.width", c.Platforms.Width},
		{"platforms.height", c.Platforms.Height},
	}
	for _, p := range positive {
		if p.val <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", p.name, p.val))
		}
	}

	if c.Physics.ReboundVelocity >= 0 {
		errs = append(errs, fmt.Errorf("physics.rebound_velocity must be negative, got %v", c.Physics.ReboundVelocity))
	}
	if c.Doodle.Width > c.Viewport.Width {
		errs = append(errs, fmt.Errorf("doodle.width %v exceeds viewport.width %v", c.Doodle.Width, c.Viewport.Width))
	}
	if c.Doodle.JumpY <= MinRiseFactor*c.Platforms.Height {
		errs = append(errs, fmt.Errorf("doodle.jump_y %v must exceed %d platform heights", c.Doodle.JumpY, MinRiseFactor))
	}
	if c.Doodle.JumpX < 0 || c.Doodle.MoveX < 0 {
		errs = append(errs, errors.New("doodle.jump_x and doodle.move_x must not be negative"))
	}
	if _, err := core.ParseColor(c.Colors.Doodle); err != nil {
		errs = append(errs, fmt.Errorf("colors.doodle: %w", err))
	}
	if _, err := core.ParseColor(c.Colors.Platform); err != nil {
		errs = append(errs, fmt.Errorf("colors.platform: %w", err))
	}

	return errors.Join(errs...)
}

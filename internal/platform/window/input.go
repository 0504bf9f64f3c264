package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-doodle/internal/core"
)

// Key repeat timing, in ticks.
const (
	repeatDelay    = 15
	repeatInterval = 3
)

type keyBinding struct {
	key    ebiten.Key
	action core.Action
}

// keyBindings mirrors the terminal key map.
var keyBindings = []keyBinding{
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyH, core.ActionLeft},
	{ebiten.KeyA, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyL, core.ActionRight},
	{ebiten.KeyD, core.ActionRight},
	{ebiten.KeyQ, core.ActionQuit},
	{ebiten.KeyEscape, core.ActionQuit},
}

// repeatFires reports whether a key held for duration ticks produces a
// press this tick: once on the first tick, then at a steady rate after
// the initial delay, like keyboard auto-repeat.
func repeatFires(duration int) bool {
	if duration == 1 {
		return true
	}
	return duration >= repeatDelay && (duration-repeatDelay)%repeatInterval == 0
}

package doodle

import (
	"math"

	"github.com/vovakirdan/tui-doodle/internal/config"
)

// generate appends platforms above the newest one until a platform sits at
// or above the top edge (y <= 0). Each new platform is placed within one
// jump of the previous: between MinRiseFactor platform heights and jump_y
// higher, and at most jump_x to either side.
func (g *Game) generate() {
	if len(g.platforms) == 0 {
		return
	}

	ph := g.cfg.Platforms.Height
	pw := g.cfg.Platforms.Width
	reach := g.cfg.Doodle

	last := g.platforms[len(g.platforms)-1]
	for last.y > 0 {
		lowY := last.y - config.MinRiseFactor*ph
		highY := last.y - reach.JumpY

		lowX := last.x - reach.JumpX
		highX := last.x + reach.JumpX
		// Near a side edge, fall back to the center so the platform stays on screen
		if lowX-pw <= 0 || highX+pw >= g.cfg.Viewport.Width {
			lowX, highX = g.cfg.Platforms.CenterX, g.cfg.Platforms.CenterX
		}

		y := g.randomInBand(lowY, highY)
		x := g.randomInBand(lowX, highX)

		last = g.newPlatform(x, y)
		g.platforms = append(g.platforms, last)
	}
}

// randomInBand returns a uniformly drawn value lo+k for a whole number k,
// staying within [lo, hi] inclusive. The bounds may be given in any order.
func (g *Game) randomInBand(a, b float64) float64 {
	lo, hi := math.Min(a, b), math.Max(a, b)
	span := int(math.Floor(hi - lo))
	return lo + float64(g.rng.Intn(span+1))
}

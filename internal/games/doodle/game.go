// Package doodle implements a Doodle Jump-style game.
// The doodle falls under gravity and rebounds off procedurally generated
// platforms; the world scrolls down while the doodle climbs past the
// midline, and the session ends when it drops below the viewport.
package doodle

import (
	"math/rand"

	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/core"
)

// Status label texts.
const (
	StatusPlaying  = "Use the arrow keys to move Mr. Doodle: don't let him fall!"
	StatusGameOver = "Game over"
)

// Game is the fixed-step simulation. It owns the character and the ordered
// platform set; the last platform is always the most recently generated.
// Game is not safe for concurrent use: hosts call Tick and deliver input
// from a single event loop.
type Game struct {
	cfg       config.DoodleConfig
	surface   Surface
	rng       *rand.Rand
	character *Character
	platforms []*Platform
	input     *InputController
	running   bool
	ticks     int
	shutdown  bool
}

// New creates a game drawing onto surface. cfg is expected to pass
// config.DoodleConfig.Validate; Reset must be called before the first Tick.
func New(cfg config.DoodleConfig, surface Surface) *Game {
	return &Game{
		cfg:     cfg,
		surface: surface,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "doodle"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Doodle Jump"
}

// Reset starts a new session: the doodle above the first platform and the
// screen filled with generated platforms up to the top edge.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.release()

	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.running = true
	g.ticks = 0
	g.shutdown = false

	d := g.cfg.Doodle
	visual := g.surface.CreateVisual(core.VisualCharacter,
		core.NewBounds(d.StartX, d.StartY, d.Width, d.Height), g.cfg.DoodleColor())
	g.character = newCharacter(d.StartX, d.StartY, d.Width, d.Height, visual)
	g.input = newInputController(g.character, d.MoveX)

	p := g.cfg.Platforms
	g.platforms = []*Platform{g.newPlatform(p.StartX, p.StartY)}
	g.generate()

	g.surface.SetStatusText(StatusPlaying)
}

// release drops every visual from a previous session.
func (g *Game) release() {
	for _, p := range g.platforms {
		p.Destroy()
	}
	g.platforms = nil
	if g.character != nil && g.character.visual != nil {
		g.surface.RemoveVisual(g.character.visual)
	}
	g.character = nil
}

// newPlatform creates a platform and its visual. The caller appends it.
func (g *Game) newPlatform(x, y float64) *Platform {
	p := g.cfg.Platforms
	return &Platform{
		x:       x,
		y:       y,
		width:   p.Width,
		height:  p.Height,
		surface: g.surface,
		visual: g.surface.CreateVisual(core.VisualPlatform,
			core.NewBounds(x, y, p.Width, p.Height), g.cfg.PlatformColor()),
	}
}

// Tick advances the simulation by one fixed step. It does nothing once the
// game is over.
func (g *Game) Tick() core.StepResult {
	if !g.running {
		return core.StepResult{State: g.State()}
	}
	g.ticks++

	// Integrate velocity, then position with the new velocity
	dt := g.cfg.Physics.TickDuration
	velocity := g.character.Velocity() + g.cfg.Physics.Gravity*dt
	y := g.character.Y() + velocity*dt
	g.character.SetVelocity(velocity)

	// Above the midline the doodle stays put and the world scrolls instead
	var scrolled float64
	if midline := g.cfg.Midline(); y < midline {
		scrolled = midline - y
		g.character.SetY(midline)
		g.scroll(scrolled)
	} else {
		g.character.SetY(y)
	}

	g.clampHorizontal()
	bounced := g.bounce()
	g.checkGameOver()

	return core.StepResult{
		State:    g.State(),
		Scrolled: scrolled,
		Bounced:  bounced,
	}
}

// scroll moves every platform down by delta, tops the set up with new
// platforms and drops the ones that left the bottom of the viewport.
func (g *Game) scroll(delta float64) {
	for _, p := range g.platforms {
		p.SetPosition(p.x, p.y+delta)
	}

	g.generate()

	// Rebuild in place; each platform is checked exactly once
	kept := g.platforms[:0]
	for _, p := range g.platforms {
		if p.Bounds().Bottom() > g.cfg.Viewport.Height {
			p.Destroy()
			continue
		}
		kept = append(kept, p)
	}
	clear(g.platforms[len(kept):])
	g.platforms = kept
}

// clampHorizontal keeps the doodle fully inside the viewport.
func (g *Game) clampHorizontal() {
	maxX := g.cfg.Viewport.Width - g.cfg.Doodle.Width
	if x := g.character.X(); x < 0 || x > maxX {
		g.character.SetX(core.ClampF(x, 0, maxX))
	}
}

// bounce rebounds the doodle off any platform it touches while not
// moving upward. Reports whether a rebound happened.
func (g *Game) bounce() bool {
	bounced := false
	for _, p := range g.platforms {
		if g.character.Velocity() < 0 {
			break
		}
		if g.character.Intersects(p.x, p.y, p.width, p.height) {
			g.character.SetVelocity(g.cfg.Physics.ReboundVelocity)
			bounced = true
		}
	}
	return bounced
}

// checkGameOver ends the session once the doodle is below the viewport.
func (g *Game) checkGameOver() {
	if g.character.Y() <= g.cfg.Viewport.Height {
		return
	}
	g.running = false
	g.input.Detach()
	g.surface.SetStatusText(StatusGameOver)
	g.surface.DetachInput()
}

// Input returns the controller that moves the doodle sideways.
func (g *Game) Input() *InputController {
	return g.input
}

// Character returns the doodle.
func (g *Game) Character() *Character {
	return g.character
}

// Platforms returns the live platforms, oldest first.
// The slice is owned by the game and must not be modified.
func (g *Game) Platforms() []*Platform {
	return g.platforms
}

// Running reports whether the session is still in play.
func (g *Game) Running() bool {
	return g.running
}

// RequestShutdown records that the player asked to quit. Hosts observe it
// through State and stop their loop; the game never exits the process.
func (g *Game) RequestShutdown() {
	g.shutdown = true
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Running:           g.running,
		Ticks:             g.ticks,
		ShutdownRequested: g.shutdown,
	}
}

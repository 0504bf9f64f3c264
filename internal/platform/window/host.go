// Package window runs the doodle game in a desktop window using Ebitengine.
package window

import (
	"fmt"
	"image"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/core"
	"github.com/vovakirdan/tui-doodle/internal/games/doodle"
)

// statusHeight is the height of the status strip below the play field.
const statusHeight = 24

// Host adapts a doodle session to ebiten.Game. World units map 1:1 to pixels.
type Host struct {
	cfg      config.DoodleConfig
	game     *doodle.Game
	canvas   *core.Canvas
	logger   *log.Logger
	reported bool
}

// NewHost creates a host and starts a fresh session.
func NewHost(cfg config.DoodleConfig, rc core.RuntimeConfig, logger *log.Logger) *Host {
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}

	canvas := core.NewCanvas(doodle.StatusPlaying)
	game := doodle.New(cfg, canvas)
	game.Reset(rc)

	return &Host{
		cfg:    cfg,
		game:   game,
		canvas: canvas,
		logger: logger,
	}
}

// Update reads input and advances the simulation one fixed step.
func (h *Host) Update() error {
	for _, b := range keyBindings {
		if repeatFires(inpututil.KeyPressDuration(b.key)) {
			h.apply(b.action)
		}
	}
	return h.step()
}

// apply routes one action to the session.
func (h *Host) apply(a core.Action) {
	switch a {
	case core.ActionQuit:
		h.game.RequestShutdown()
	case core.ActionLeft, core.ActionRight:
		if !h.canvas.InputDetached() {
			h.game.Input().Handle(a)
		}
	}
}

// step ticks the game, or stops the run loop once shutdown was requested.
func (h *Host) step() error {
	if h.game.State().ShutdownRequested {
		return ebiten.Termination
	}

	result := h.game.Tick()
	if !result.State.Running && !h.reported {
		h.reported = true
		h.logger.Info("game over", "ticks", result.State.Ticks)
	}
	return nil
}

// Draw renders the canvas and the status strip.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	for _, v := range h.canvas.VisualsOf(core.VisualPlatform) {
		fillRect(screen, toPixels(v.Bounds), v.Color)
	}
	for _, v := range h.canvas.VisualsOf(core.VisualCharacter) {
		fillRect(screen, toPixels(v.Bounds), v.Color)
	}

	fieldH := int(h.cfg.Viewport.Height)
	strip := image.Rect(0, fieldH, int(h.cfg.Viewport.Width), fieldH+statusHeight)
	screen.SubImage(strip).(*ebiten.Image).Fill(statusBarColor)
	ebitenutil.DebugPrintAt(screen, h.canvas.Status(), 4, fieldH+4)

	if !h.game.Running() {
		msg := fmt.Sprintf("%s - press q to quit", doodle.StatusGameOver)
		ebitenutil.DebugPrintAt(screen, msg, 4, fieldH/2)
	}
}

// Layout returns the fixed logical screen size.
func (h *Host) Layout(_, _ int) (int, int) {
	return int(h.cfg.Viewport.Width), int(h.cfg.Viewport.Height) + statusHeight
}

// Game returns the running session.
func (h *Host) Game() *doodle.Game {
	return h.game
}

// toPixels rounds world bounds outward to whole pixels.
func toPixels(b core.Bounds) image.Rectangle {
	return image.Rect(
		int(math.Floor(b.X)), int(math.Floor(b.Y)),
		int(math.Ceil(b.Right())), int(math.Ceil(b.Bottom())),
	)
}

// fillRect paints r clipped to dst. Rectangles entirely off screen are skipped.
func fillRect(dst *ebiten.Image, r image.Rectangle, c core.Color) {
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	dst.SubImage(r).(*ebiten.Image).Fill(rgba(c))
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(cfg config.DoodleConfig, rc core.RuntimeConfig, logger *log.Logger) error {
	h := NewHost(cfg, rc, logger)

	w, hgt := h.Layout(0, 0)
	ebiten.SetWindowTitle(h.game.Title())
	ebiten.SetWindowSize(w, hgt)
	ebiten.SetTPS(cfg.TicksPerSecond())

	if err := ebiten.RunGame(h); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/core"
	"github.com/vovakirdan/tui-doodle/internal/games/doodle"
)

// footerLines is the number of rows below the play field (status + help).
const footerLines = 2

// ModelOption customizes a Model.
type ModelOption func(*Model)

// WithGameOverHook registers a callback invoked once when the session ends.
func WithGameOverHook(fn func(core.GameState)) ModelOption {
	return func(m *Model) {
		m.onGameOver = fn
	}
}

// Model is the Bubble Tea model for a doodle session.
type Model struct {
	game       *doodle.Game
	canvas     *core.Canvas
	screen     *core.Screen
	cfg        config.DoodleConfig
	runtime    core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	onGameOver func(core.GameState)
	reported   bool
	quitting   bool
}

// NewModel creates a model and starts a fresh session.
func NewModel(cfg config.DoodleConfig, rc core.RuntimeConfig, opts ...ModelOption) Model {
	// Use time-based seed if not specified
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	canvas := core.NewCanvas(doodle.StatusPlaying)
	game := doodle.New(cfg, canvas)
	game.Reset(rc)

	m := Model{
		game:    game,
		canvas:  canvas,
		screen:  core.NewScreen(rc.ScreenW, max(rc.ScreenH-footerLines, 1)),
		cfg:     cfg,
		runtime: rc,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	m.help.Width = rc.ScreenW
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.cfg.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.game.RequestShutdown()
	case core.ActionLeft, core.ActionRight:
		if !m.canvas.InputDetached() {
			m.game.Input().Handle(action)
		}
	}

	if m.game.State().ShutdownRequested {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize rescales the field. The world keeps its fixed size, so the
// session carries on untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-footerLines, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation one fixed step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Tick()

	if !result.State.Running && !m.reported {
		m.reported = true
		m.keys.DisableMovement()
		if m.onGameOver != nil {
			m.onGameOver(result.State)
		}
	}

	// Keep ticking after game over so the final frame stays live until quit
	return m, tickCmd(m.cfg.TickInterval())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	layout := drawCanvas(m.screen, m.canvas, m.cfg.Viewport)
	if !m.game.Running() {
		drawBanner(m.screen, layout, doodle.StatusGameOver, "press q to quit")
	}

	style := statusStyle
	if !m.game.Running() {
		style = gameOverStyle
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen),
		style.Render(m.canvas.Status()),
		m.help.View(m.keys),
	)
}

// Game returns the running session.
func (m Model) Game() *doodle.Game {
	return m.game
}

// Canvas returns the surface the session draws onto.
func (m Model) Canvas() *core.Canvas {
	return m.canvas
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(cfg config.DoodleConfig, rc core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(cfg, rc, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

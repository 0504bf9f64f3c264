package core

// RuntimeConfig contains host-side settings passed to the game at reset.
// The play field itself is described by config.DoodleConfig.
type RuntimeConfig struct {
	ScreenW int   // Host screen width in characters
	ScreenH int   // Host screen height in characters
	Seed    int64 // RNG seed for deterministic platform generation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the host.
type GameState struct {
	Running           bool // False once the doodle has fallen off screen
	Ticks             int  // Ticks processed while running
	ShutdownRequested bool // Quit was requested by the player
}

// StepResult is returned by Game.Tick() after each simulation tick.
type StepResult struct {
	State GameState
	// Scrolled is the distance the world moved down this tick (0 if none).
	Scrolled float64
	// Bounced is true if the doodle rebounded off a platform this tick.
	Bounced bool
}

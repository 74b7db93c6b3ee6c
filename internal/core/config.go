package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The world extent is in world units; the screen size in cells only matters
// to the renderer, which projects world space onto whatever is available.
type RuntimeConfig struct {
	WorldW   float64 // World width in units
	WorldH   float64 // World height in units
	ScreenW  int     // Screen width in characters
	ScreenH  int     // Screen height in characters
	TickRate int     // Simulation ticks per second (default 60)
	Seed     int64   // RNG seed for deterministic layouts
}

// DefaultConfig returns a RuntimeConfig with the stock world size.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		WorldW:   1000,
		WorldH:   500,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a session.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	LevelsWon int  // Completed levels this session
	LivesLeft int  // Remaining lives (death budget minus deaths)
	GameOver  bool // Whether the session has ended
	Paused    bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

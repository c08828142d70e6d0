package core

// RuntimeConfig is passed to a game when it starts or restarts.
type RuntimeConfig struct {
	ScreenW    int    // Screen width in characters
	ScreenH    int    // Screen height in characters
	TickRate   int    // Simulation ticks per second
	Seed       int64  // RNG seed for deterministic gameplay (0 = pick one in the platform layer)
	ConfigPath string // Optional path to a game config file
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the coarse state the platform needs from a game.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the run has failed
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}

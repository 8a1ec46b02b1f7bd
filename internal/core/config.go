package core

// Speed multipliers offered by the speed selector.
var SpeedSteps = []float64{0.5, 1, 1.5, 2}

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int     // Screen width in characters
	ScreenH  int     // Screen height in characters
	TickRate int     // Simulation ticks per second (default 60)
	Seed     int64   // RNG seed for deterministic gameplay
	Speed    float64 // Gameplay speed multiplier (0 means 1)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
		Speed:    1,
	}
}

// SpeedOrDefault returns the configured multiplier, treating non-positive values as 1.
func (c RuntimeConfig) SpeedOrDefault() float64 {
	if c.Speed <= 0 {
		return 1
	}
	return c.Speed
}

// StepSpeed moves to the next (dir > 0) or previous speed step.
// Values outside the table snap to the nearest end.
func StepSpeed(current float64, dir int) float64 {
	idx := 0
	for i, s := range SpeedSteps {
		if s <= current {
			idx = i
		}
	}
	idx = Clamp(idx+dir, 0, len(SpeedSteps)-1)
	return SpeedSteps[idx]
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int     // Current score
	Progress int     // Wave reached or metres travelled
	GameOver bool    // Whether the game has ended
	Paused   bool    // Whether the game is paused
	Exited   bool    // Player left for the menu; the game has been torn down
	Speed    float64 // Speed multiplier in effect
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State GameState
	HUD   HUD
}

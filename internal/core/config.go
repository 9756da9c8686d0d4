package core

import "time"

// RuntimeConfig is what the platform tells a game when it starts one.
type RuntimeConfig struct {
	ScreenW  int   // terminal columns available to the game
	ScreenH  int   // terminal rows available to the game
	TickRate int   // ticks per second
	Seed     int64 // 0 asks the platform for a time-based seed
}

// DefaultConfig returns an 80x24, 60 Hz runtime with no fixed seed.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

// TickInterval returns the wall-clock time between ticks. A non-positive
// TickRate is treated as 60.
func (c RuntimeConfig) TickInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// GameState is the part of a game's state the platform cares about.
type GameState struct {
	Score    int
	Lives    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by every tick.
type StepResult struct {
	State GameState
}

package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed; 0 means the platform picks one
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// TicksToDuration converts a tick count to wall time at the configured rate.
func (c RuntimeConfig) TicksToDuration(ticks int) time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 30
	}
	return time.Duration(ticks) * time.Second / time.Duration(rate)
}

// GameState is the status a game reports to the platform.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// PuzzleResult summarises one finished puzzle for persistence.
type PuzzleResult struct {
	PuzzleID   string
	GameID     string
	Category   string
	Preset     string
	GridSize   int
	Level      int // campaign level (1-based), 0 outside campaign
	WordsFound int
	WordsTotal int
	HintsUsed  int
	Score      int
	Duration   time.Duration
	Completed  bool // every word found without giving up
}

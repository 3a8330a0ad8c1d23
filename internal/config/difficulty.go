package config

import "math"

// Progression calculates endless mode puzzle parameters from the round number.
type Progression struct {
	cfg          DifficultyConfig
	grid         GridConfig
	perPuzzle    int
	initialLevel float64
}

// NewProgression creates a progression for the given configuration.
func NewProgression(cfg WordSearchConfig) *Progression {
	return &Progression{
		cfg:          cfg.Difficulty,
		grid:         cfg.Grid,
		perPuzzle:    cfg.Words.PerPuzzle,
		initialLevel: clampF(cfg.Difficulty.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (p *Progression) SetInitialLevel(level float64) {
	p.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (p *Progression) SetEnabled(enabled bool) {
	p.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (p *Progression) IsEnabled() bool {
	return p.cfg.Enabled && p.cfg.Progression.Type != "none"
}

// Level returns the difficulty level (0.0 to 1.0) of a round. Rounds count
// from 1.
func (p *Progression) Level(round int) float64 {
	if !p.IsEnabled() || p.cfg.Progression.Type != "round" {
		return p.initialLevel
	}

	maxAt := float64(p.cfg.Progression.MaxAt)
	if maxAt <= 1 {
		return 1.0
	}

	// Round 1 sits at the initial level, MaxAt at 1.0.
	progress := clampF(float64(round-1)/(maxAt-1), 0.0, 1.0)
	return p.initialLevel + progress*(1.0-p.initialLevel)
}

// GridSize returns the grid size of a round, growing from MinSize to MaxSize.
func (p *Progression) GridSize(round int) int {
	level := p.Level(round)
	span := float64(p.grid.MaxSize - p.grid.MinSize)
	return p.grid.MinSize + int(math.Round(level*span))
}

// WordCount returns the number of words to hide in a round.
func (p *Progression) WordCount(round int) int {
	level := p.Level(round)
	return p.perPuzzle + int(math.Round(level*float64(p.cfg.Scaling.ExtraWords)))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

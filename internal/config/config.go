// Package config provides YAML-based game configuration loading and
// difficulty management for the word search game.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-wordsearch/internal/puzzle"
	"github.com/vovakirdan/tui-wordsearch/internal/session"
)

// WordSearchConfig contains all configuration for the word search game.
type WordSearchConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Generator  GeneratorConfig  `yaml:"generator"`
	Words      WordsConfig      `yaml:"words"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Scoring    ScoringConfig    `yaml:"scoring"`
}

// GridConfig defines the board dimensions.
type GridConfig struct {
	Size    int `yaml:"size"`     // Grid size for single puzzles
	MinSize int `yaml:"min_size"` // Endless mode starts here
	MaxSize int `yaml:"max_size"` // Endless mode grows up to here
}

// GeneratorConfig tunes word placement.
type GeneratorConfig struct {
	MaxAttempts        int    `yaml:"max_attempts"`
	Alphabet           string `yaml:"alphabet"`
	LongestFirst       bool   `yaml:"longest_first"`
	ExhaustiveFallback bool   `yaml:"exhaustive_fallback"`
}

// WordsConfig selects the words hidden in each puzzle.
type WordsConfig struct {
	PerPuzzle int    `yaml:"per_puzzle"`
	Category  string `yaml:"category"`  // Empty picks a random pack
	PacksDir  string `yaml:"packs_dir"` // Extra YAML packs
}

// DifficultyConfig defines the direction preset and endless progression.
type DifficultyConfig struct {
	Preset       DifficultyPreset  `yaml:"preset"`
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = smallest grid, 1.0 = largest
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over rounds.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "round" or "none"
	MaxAt int    `yaml:"max_at"` // Round at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	ExtraWords int `yaml:"extra_words"` // Words added on top of per_puzzle at max difficulty
}

// ScoringConfig defines point values.
type ScoringConfig struct {
	LetterPoints    int `yaml:"letter_points"`
	HintPenalty     int `yaml:"hint_penalty"`
	CompletionBonus int `yaml:"completion_bonus"`
}

// DifficultyPreset names a set of allowed word directions.
type DifficultyPreset string

const (
	DifficultyVeryEasy DifficultyPreset = "very-easy"
	DifficultyEasy     DifficultyPreset = "easy"
	DifficultyMedium   DifficultyPreset = "medium"
	DifficultyHard     DifficultyPreset = "hard"
)

// Presets lists the difficulty presets from easiest to hardest.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyVeryEasy, DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty accepts the same spellings as puzzle.ParsePreset.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	set, err := puzzle.ParsePreset(strings.TrimSpace(name))
	if err != nil {
		return "", err
	}
	return DifficultyPreset(set.Name()), nil
}

// Directions returns the direction set of the preset.
func (p DifficultyPreset) Directions() (puzzle.DirectionSet, error) {
	return puzzle.ParsePreset(string(p))
}

// Directions returns the configured direction set, falling back to medium
// for an unknown preset.
func (c WordSearchConfig) Directions() puzzle.DirectionSet {
	set, err := c.Difficulty.Preset.Directions()
	if err != nil {
		return puzzle.Medium
	}
	return set
}

// GeneratorOptions converts the generator section.
func (c WordSearchConfig) GeneratorOptions() puzzle.GeneratorOptions {
	return puzzle.GeneratorOptions{
		MaxAttempts:        c.Generator.MaxAttempts,
		Alphabet:           c.Generator.Alphabet,
		LongestFirst:       c.Generator.LongestFirst,
		ExhaustiveFallback: c.Generator.ExhaustiveFallback,
	}
}

// ScoringRules converts the scoring section.
func (c WordSearchConfig) ScoringRules() session.Scoring {
	return session.Scoring{
		LetterPoints:    c.Scoring.LetterPoints,
		HintPenalty:     c.Scoring.HintPenalty,
		CompletionBonus: c.Scoring.CompletionBonus,
	}
}

// Validate reports every inconsistent setting.
func (c WordSearchConfig) Validate() error {
	var errs []error
	if c.Grid.Size <= 0 {
		errs = append(errs, fmt.Errorf("grid.size must be positive, got %d", c.Grid.Size))
	}
	if c.Grid.MinSize <= 0 || c.Grid.MinSize > c.Grid.MaxSize {
		errs = append(errs, fmt.Errorf("grid.min_size %d and max_size %d are inconsistent", c.Grid.MinSize, c.Grid.MaxSize))
	}
	if c.Words.PerPuzzle <= 0 {
		errs = append(errs, fmt.Errorf("words.per_puzzle must be positive, got %d", c.Words.PerPuzzle))
	}
	if _, err := c.Difficulty.Preset.Directions(); err != nil {
		errs = append(errs, fmt.Errorf("difficulty.preset: %w", err))
	}
	if c.Scoring.LetterPoints < 0 || c.Scoring.HintPenalty < 0 || c.Scoring.CompletionBonus < 0 {
		errs = append(errs, errors.New("scoring values must not be negative"))
	}
	return errors.Join(errs...)
}

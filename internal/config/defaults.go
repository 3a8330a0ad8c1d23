package config

import (
	_ "embed"
)

//go:embed defaults/wordsearch.yaml
var defaultWordSearchYAML []byte

// DefaultWordSearchConfig returns the default word search configuration.
func DefaultWordSearchConfig() WordSearchConfig {
	return WordSearchConfig{
		Grid: GridConfig{
			Size:    12,
			MinSize: 8,
			MaxSize: 16,
		},
		Generator: GeneratorConfig{
			MaxAttempts:        100,
			Alphabet:           "ABCDEFGHIJKLMNOPQRSTUVWXYZ",
			LongestFirst:       true,
			ExhaustiveFallback: true,
		},
		Words: WordsConfig{
			PerPuzzle: 8,
		},
		Difficulty: DifficultyConfig{
			Preset:       DifficultyMedium,
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "round",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				ExtraWords: 6,
			},
		},
		Scoring: ScoringConfig{
			LetterPoints:    10,
			HintPenalty:     25,
			CompletionBonus: 100,
		},
	}
}

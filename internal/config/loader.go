package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory holding configs, packs and the database.
const AppDir = ".wordsearch"

// LoadWordSearch loads word search configuration.
// Search order: customPath -> ~/.wordsearch/configs/wordsearch.yaml ->
// ./configs/wordsearch.yaml -> embedded default.
// Keys missing from a file keep their default values.
func LoadWordSearch(customPath string) (WordSearchConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultWordSearchConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return DefaultWordSearchConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("wordsearch.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "wordsearch.yaml")); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultWordSearchYAML)
	if err != nil {
		return DefaultWordSearchConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes data over the defaults and validates the result.
func parse(data []byte) (WordSearchConfig, error) {
	cfg := DefaultWordSearchConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, "configs", filename)
}

// UserPacksDir returns ~/.wordsearch/packs, or empty if home is unavailable.
func UserPacksDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, "packs")
}

// ApplyPreset sets the direction preset and tunes grid size and word count
// to match it.
func ApplyPreset(cfg *WordSearchConfig, preset DifficultyPreset) {
	cfg.Difficulty.Preset = preset

	switch preset {
	case DifficultyVeryEasy:
		cfg.Grid.Size = 8
		cfg.Words.PerPuzzle = 5
		cfg.Difficulty.InitialLevel = 0.0
	case DifficultyEasy:
		cfg.Grid.Size = 10
		cfg.Words.PerPuzzle = 6
		cfg.Difficulty.InitialLevel = 0.1
	case DifficultyMedium:
		cfg.Grid.Size = 12
		cfg.Words.PerPuzzle = 8
		cfg.Difficulty.InitialLevel = 0.3
	case DifficultyHard:
		cfg.Grid.Size = 14
		cfg.Words.PerPuzzle = 10
		cfg.Difficulty.InitialLevel = 0.5
	}
}

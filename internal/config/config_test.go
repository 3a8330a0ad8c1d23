package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-wordsearch/internal/puzzle"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadWordSearch("")
	if err != nil {
		t.Fatalf("LoadWordSearch: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultWordSearchConfig()) {
		t.Errorf("embedded defaults drifted:\n got %+v\nwant %+v", cfg, DefaultWordSearchConfig())
	}
}

func TestLoadCustomPathKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ws.yaml")
	writeFile(t, path, "scoring:\n  letter_points: 5\ndifficulty:\n  preset: hard\n")

	cfg, err := LoadWordSearch(path)
	if err != nil {
		t.Fatalf("LoadWordSearch: %v", err)
	}
	if cfg.Scoring.LetterPoints != 5 {
		t.Errorf("letter_points = %d, expected 5", cfg.Scoring.LetterPoints)
	}
	if cfg.Scoring.CompletionBonus != 100 || cfg.Grid.Size != 12 {
		t.Error("unset keys should keep their defaults")
	}
	if cfg.Directions() != puzzle.Hard {
		t.Errorf("directions = %s, expected hard", cfg.Directions().Name())
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadWordSearch(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "difficulty:\n  preset: impossible\n")
	if _, err := LoadWordSearch(bad); err == nil {
		t.Error("unknown preset should fail validation")
	}

	garbage := filepath.Join(dir, "garbage.yaml")
	writeFile(t, garbage, "grid: [1, 2\n")
	if _, err := LoadWordSearch(garbage); err == nil {
		t.Error("malformed YAML should fail")
	}
}

func TestLoadUserConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, AppDir, "configs", "wordsearch.yaml"), "grid:\n  size: 9\n")

	cfg, err := LoadWordSearch("")
	if err != nil {
		t.Fatalf("LoadWordSearch: %v", err)
	}
	if cfg.Grid.Size != 9 {
		t.Errorf("grid size = %d, expected the user value 9", cfg.Grid.Size)
	}
}

func TestLoadInvalidUserConfigFallsBack(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, AppDir, "configs", "wordsearch.yaml"), "grid:\n  size: -3\n")

	cfg, err := LoadWordSearch("")
	if err != nil {
		t.Fatalf("LoadWordSearch: %v", err)
	}
	if cfg.Grid.Size != 12 {
		t.Errorf("invalid user config should be ignored, got size %d", cfg.Grid.Size)
	}
}

func TestUserPacksDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got := UserPacksDir(); got != filepath.Join(home, ".wordsearch", "packs") {
		t.Errorf("UserPacksDir = %q", got)
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"very-easy", DifficultyVeryEasy, false},
		{"veryeasy", DifficultyVeryEasy, false},
		{"Easy", DifficultyEasy, false},
		{"normal", DifficultyMedium, false},
		{" hard ", DifficultyHard, false},
		{"all", DifficultyHard, false},
		{"fixed", "", true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDifficulty(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseDifficulty(%q) = %q, expected %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		size      int
		words     int
		dirsCount int
	}{
		{DifficultyVeryEasy, 8, 5, 1},
		{DifficultyEasy, 10, 6, 2},
		{DifficultyMedium, 12, 8, 4},
		{DifficultyHard, 14, 10, 8},
	}
	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultWordSearchConfig()
			ApplyPreset(&cfg, tc.preset)

			if cfg.Grid.Size != tc.size || cfg.Words.PerPuzzle != tc.words {
				t.Errorf("size/words = %d/%d, expected %d/%d", cfg.Grid.Size, cfg.Words.PerPuzzle, tc.size, tc.words)
			}
			if cfg.Directions().Len() != tc.dirsCount {
				t.Errorf("directions = %d, expected %d", cfg.Directions().Len(), tc.dirsCount)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset config invalid: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultWordSearchConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}

	cfg.Grid.MinSize = 20
	cfg.Words.PerPuzzle = 0
	cfg.Scoring.HintPenalty = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation errors")
	}
}

func TestConversions(t *testing.T) {
	cfg := DefaultWordSearchConfig()

	opts := cfg.GeneratorOptions()
	if opts.MaxAttempts != 100 || !opts.LongestFirst || !opts.ExhaustiveFallback {
		t.Errorf("generator options = %+v", opts)
	}

	rules := cfg.ScoringRules()
	if rules.LetterPoints != 10 || rules.HintPenalty != 25 || rules.CompletionBonus != 100 {
		t.Errorf("scoring = %+v", rules)
	}

	cfg.Difficulty.Preset = "bogus"
	if cfg.Directions() != puzzle.Medium {
		t.Error("unknown preset should fall back to medium")
	}
}

func TestProgression(t *testing.T) {
	p := NewProgression(DefaultWordSearchConfig())

	tests := []struct {
		round int
		size  int
		words int
	}{
		{1, 8, 8},
		{5, 12, 11},
		{10, 16, 14},
		{50, 16, 14},
	}
	for _, tc := range tests {
		if got := p.GridSize(tc.round); got != tc.size {
			t.Errorf("GridSize(%d) = %d, expected %d", tc.round, got, tc.size)
		}
		if got := p.WordCount(tc.round); got != tc.words {
			t.Errorf("WordCount(%d) = %d, expected %d", tc.round, got, tc.words)
		}
	}
}

func TestProgressionDisabled(t *testing.T) {
	cfg := DefaultWordSearchConfig()
	cfg.Difficulty.Progression.Type = "none"
	p := NewProgression(cfg)

	if p.IsEnabled() {
		t.Error("type none should disable progression")
	}
	if p.GridSize(1) != p.GridSize(20) {
		t.Error("disabled progression should not grow the grid")
	}

	p.SetInitialLevel(2.0)
	if p.Level(1) != 1.0 {
		t.Errorf("initial level should clamp to 1.0, got %v", p.Level(1))
	}
	if p.GridSize(3) != 16 {
		t.Errorf("level 1.0 should use max size, got %d", p.GridSize(3))
	}
}

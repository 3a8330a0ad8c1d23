package wordsearch

import (
	"sync"
	"time"

	"github.com/vovakirdan/tui-wordsearch/internal/config"
)

// Package-level settings set by the CLI and menus before a game starts.
// SSH sessions read them concurrently, so access goes through the mutex.
var (
	settingsMu         sync.Mutex
	configPath         string
	difficultyPreset   config.DifficultyPreset
	selectedStartLevel int
	category           string
	gridSize           int
	packsDir           string
	dailyDate          time.Time
	dailySalt          = DefaultDailySalt
)

// SetConfigPath sets the config file path. Empty uses the search order.
func SetConfigPath(path string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	configPath = path
}

// SetDifficultyPreset overrides the allowed directions of every mode.
// Empty keeps the per-level and configured presets.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	difficultyPreset = preset
}

// SetStartLevel sets the starting campaign level (1-10). 0 means start from
// the beginning. The value is consumed by the next campaign Reset.
func SetStartLevel(level int) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	return selectedStartLevel
}

// SetCategory fixes the word pack of endless mode. Empty picks one per round.
func SetCategory(id string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	category = id
}

// SetGridSize fixes the grid size of endless and daily modes. 0 uses the
// configuration.
func SetGridSize(n int) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	gridSize = n
}

// SetPacksDir sets the directory of extra word packs.
func SetPacksDir(dir string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	packsDir = dir
}

// SetDailyDate pins the daily puzzle to a date. The zero time means today.
func SetDailyDate(t time.Time) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	dailyDate = t
}

// SetDailySalt changes the key of the daily seed.
func SetDailySalt(salt string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	if salt == "" {
		salt = DefaultDailySalt
	}
	dailySalt = salt
}

// settings is a consistent copy of the package-level values.
type settings struct {
	configPath string
	preset     config.DifficultyPreset
	startLevel int
	category   string
	gridSize   int
	packsDir   string
	dailyDate  time.Time
	dailySalt  string
}

// takeSettings copies the settings. consumeStart clears the start level so
// that a later restart begins at level 1.
func takeSettings(consumeStart bool) settings {
	settingsMu.Lock()
	defer settingsMu.Unlock()

	s := settings{
		configPath: configPath,
		preset:     difficultyPreset,
		startLevel: selectedStartLevel,
		category:   category,
		gridSize:   gridSize,
		packsDir:   packsDir,
		dailyDate:  dailyDate,
		dailySalt:  dailySalt,
	}
	if consumeStart {
		selectedStartLevel = 0
	}
	return s
}

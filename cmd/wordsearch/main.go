// wordsearch is a terminal word search game.
//
// Usage:
//
//	wordsearch list              - List game modes
//	wordsearch play [mode]       - Play a mode (default: campaign)
//	wordsearch menu              - Pick modes interactively
//	wordsearch serve             - Start SSH server for remote play
//	wordsearch scores [mode]     - Show scores and recent puzzles
//	wordsearch generate          - Print a puzzle without playing it
//	wordsearch packs             - List word packs
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible puzzles
//	--db <path>     - Set database path (default: ~/.wordsearch/scores.db)
//	--packs <dir>   - Directory of extra YAML word packs
//	--daily-salt    - Key of the daily puzzle seed
//	--verbose       - Debug logging
//
// WORDSEARCH_DB, WORDSEARCH_CONFIG, WORDSEARCH_PACKS and
// WORDSEARCH_DAILY_SALT (also read from a .env file) provide flag defaults.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-wordsearch/internal/config"
	"github.com/vovakirdan/tui-wordsearch/internal/core"
	"github.com/vovakirdan/tui-wordsearch/internal/games/wordsearch"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagPacksDir string
	flagSalt     string
	flagVerbose  bool

	// Loaded before any init so flag defaults see .env values.
	dotenvErr = godotenv.Load()

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "wordsearch",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordsearch",
	Short: "Word Search - find hidden words in your terminal",
	Long: `Word Search hides words in a grid of letters. Find them by selecting
the first and last letter with the keyboard or by dragging the mouse.

Available commands:
  list      - Show all game modes
  play      - Play a mode directly
  menu      - Interactive mode picker
  serve     - Start SSH server for remote play
  scores    - View scores and recent puzzles
  generate  - Print a generated puzzle
  packs     - List word packs

Examples:
  wordsearch play
  wordsearch play wordsearch_daily
  wordsearch menu
  wordsearch serve --ssh :2222
  wordsearch generate --size 12 --difficulty hard --answers`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
		if dotenvErr != nil && !errors.Is(dotenvErr, fs.ErrNotExist) {
			logger.Warn("could not read .env", "err", dotenvErr)
		}
		wordsearch.SetPacksDir(flagPacksDir)
		wordsearch.SetDailySalt(flagSalt)
	},
}

func init() {
	defaultDB := filepath.Join("~", config.AppDir, "scores.db")

	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", envOr("WORDSEARCH_DB", defaultDB), "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagPacksDir, "packs", os.Getenv("WORDSEARCH_PACKS"), "Directory of extra word packs (default: ~/.wordsearch/packs)")
	rootCmd.PersistentFlags().StringVar(&flagSalt, "daily-salt", os.Getenv("WORDSEARCH_DAILY_SALT"), "Key of the daily puzzle seed (default: built-in)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(packsCmd)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

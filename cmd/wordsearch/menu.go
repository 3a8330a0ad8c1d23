package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordsearch/internal/config"
	"github.com/vovakirdan/tui-wordsearch/internal/games/wordsearch"
	"github.com/vovakirdan/tui-wordsearch/internal/platform/tui"
	"github.com/vovakirdan/tui-wordsearch/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start word search in interactive menu mode.

Pick campaign, daily or endless; campaign opens the level list.
After a game ends, press B to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Change direction preset
  Enter/Space  - Select mode
  Tab          - Scoreboard
  Q            - Quit

With --verbose, session events are written to ~/.wordsearch/wordsearch.log.

Examples:
  wordsearch menu
  wordsearch menu --fps 60
  wordsearch menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", os.Getenv("WORDSEARCH_CONFIG"), "Path to custom game config YAML")
}

func runMenu(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "err", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	sessionLog, closeLog := menuLogger()
	defer closeLog()

	wordsearch.SetConfigPath(flagConfig)

	if err := tui.RunSession(store, runtimeConfig(), sessionLog); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// menuLogger returns a logger that stays off the terminal while the
// program owns it.
func menuLogger() (*log.Logger, func()) {
	discard := log.New(io.Discard)
	if !flagVerbose {
		return discard, func() {}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return discard, func() {}
	}
	path := filepath.Join(home, config.AppDir, "wordsearch.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return discard, func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return discard, func() {}
	}

	l := log.NewWithOptions(f, log.Options{ReportTimestamp: true, Prefix: "wordsearch"})
	l.SetLevel(log.DebugLevel)
	return l, func() { f.Close() }
}

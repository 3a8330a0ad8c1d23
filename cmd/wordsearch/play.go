package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordsearch/internal/config"
	"github.com/vovakirdan/tui-wordsearch/internal/games/wordsearch"
	"github.com/vovakirdan/tui-wordsearch/internal/platform/tui"
	"github.com/vovakirdan/tui-wordsearch/internal/registry"
	"github.com/vovakirdan/tui-wordsearch/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagCategory   string
	flagSize       int
	flagLevel      int
	flagDate       string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing the given mode (campaign when omitted).

Controls:
  Arrows/hjkl  - Move cursor
  Space/Enter  - Mark first letter, then last letter
  Mouse        - Drag from first to last letter
  Esc          - Cancel selection
  ?            - Hint (costs points)
  G            - Give up and reveal answers
  N            - Next level after a clear
  P            - Pause
  R            - Restart
  Q/Ctrl+C     - Quit

Difficulty presets set the allowed directions:
  very-easy  - right only
  easy       - right and down
  medium     - plus forward diagonals
  hard       - all eight directions

Examples:
  wordsearch play
  wordsearch play --level 4
  wordsearch play wordsearch_endless --category space --difficulty hard
  wordsearch play wordsearch_daily --date 2026-01-31
  wordsearch play --config ./my-wordsearch.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", os.Getenv("WORDSEARCH_CONFIG"), "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Direction preset: very-easy, easy, medium, hard")
	playCmd.Flags().StringVar(&flagCategory, "category", "", "Word pack for endless mode (default: random per round)")
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Grid size for endless and daily modes")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign start level (0 = pick interactively)")
	playCmd.Flags().StringVar(&flagDate, "date", "", "Daily puzzle date YYYY-MM-DD (default: today)")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := wordsearch.IDCampaign
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'wordsearch list' to see available modes.")
		os.Exit(1)
	}

	if err := applyPlayFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := runtimeConfig()

	// Open score storage
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

	if gameID == wordsearch.IDCampaign && flagLevel == 0 {
		level, selErr := tui.RunLevelSelector(store, cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		// User pressed back or quit
		if level == 0 {
			return
		}
		wordsearch.SetStartLevel(level)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("starting game", "mode", gameID, "seed", cfg.Seed, "fps", cfg.TickRate)

	if _, err := tui.Run(game, store, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// applyPlayFlags hands the play flags to the game before it is created.
func applyPlayFlags() error {
	var preset config.DifficultyPreset
	if flagDifficulty != "" {
		p, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			return err
		}
		preset = p
	}

	var date time.Time
	if flagDate != "" {
		d, err := time.Parse(time.DateOnly, flagDate)
		if err != nil {
			return fmt.Errorf("invalid --date %q: %w", flagDate, err)
		}
		date = d
	}

	if flagLevel < 0 || flagLevel > wordsearch.LevelCount() {
		return fmt.Errorf("--level must be between 1 and %d", wordsearch.LevelCount())
	}

	wordsearch.SetConfigPath(flagConfig)
	wordsearch.SetDifficultyPreset(preset)
	wordsearch.SetCategory(flagCategory)
	wordsearch.SetGridSize(flagSize)
	wordsearch.SetDailyDate(date)
	wordsearch.SetStartLevel(flagLevel)
	return nil
}

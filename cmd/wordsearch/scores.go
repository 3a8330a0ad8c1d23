package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordsearch/internal/games/wordsearch"
	"github.com/vovakirdan/tui-wordsearch/internal/registry"
	"github.com/vovakirdan/tui-wordsearch/internal/storage"
)

var (
	flagClear  bool
	flagRecent int
	flagAll    bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and recent puzzles",
	Long: `Display the top 10 scores, the latest puzzles and, for the campaign,
the best result on every cleared level.

Without a mode, shows a summary of every mode.

Examples:
  wordsearch scores
  wordsearch scores wordsearch_daily
  wordsearch scores wordsearch --recent 20
  wordsearch scores wordsearch_daily --all
  wordsearch scores wordsearch_endless --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and progress of the mode")
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 10, "Number of recent puzzles to show")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "List every score instead of the top 10")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagClear {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a mode")
			os.Exit(1)
		}
		printSummary(store)
		return
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'wordsearch list' to see available modes.")
		os.Exit(1)
	}

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared scores for %s.\n", gameID)
		return
	}

	if err := printModeScores(os.Stdout, store, gameID, flagAll, flagRecent); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

func printSummary(store *storage.Store) {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Scores by mode")
	fmt.Println()
	fmt.Printf("  %-20s  %-6s  %-6s  %-8s  %s\n", "Mode", "Games", "Best", "Average", "Last played")
	fmt.Printf("  %-20s  %-6s  %-6s  %-8s  %s\n", "----", "-----", "----", "-------", "-----------")

	for _, g := range registry.List() {
		gs, ok := stats[g.ID]
		if !ok {
			fmt.Printf("  %-20s  %-6d  %-6s  %-8s  %s\n", g.ID, 0, "-", "-", "never")
			continue
		}
		fmt.Printf("  %-20s  %-6d  %-6d  %-8.1f  %s\n",
			g.ID, gs.GamesCount, gs.HighScore, gs.AvgScore, gs.LastPlayed.Format("2006-01-02 15:04"))
	}
}

func printModeScores(w io.Writer, store *storage.Store, gameID string, all bool, recent int) error {
	info, _ := registry.Info(gameID)

	var scores []storage.ScoreEntry
	var err error
	if all {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, 10)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "High Scores - %s\n", info.Title)
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'wordsearch play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Fprintf(w, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if gameID == wordsearch.IDCampaign {
		if err := printCampaign(w, store); err != nil {
			return err
		}
	}

	records, err := store.RecentPuzzleResults(gameID, recent)
	if err != nil {
		return err
	}
	if len(records) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Recent puzzles")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  %-16s  %-10s  %-9s  %-5s  %-6s  %-5s  %-6s  %s\n",
			"Date", "Pack", "Preset", "Size", "Found", "Hints", "Time", "Score")
		for _, r := range records {
			found := fmt.Sprintf("%d/%d", r.WordsFound, r.WordsTotal)
			if !r.Completed {
				found += "*"
			}
			fmt.Fprintf(w, "  %-16s  %-10s  %-9s  %-5d  %-6s  %-5d  %-6s  %d\n",
				r.CreatedAt.Format("2006-01-02 15:04"), r.Category, r.Preset, r.GridSize,
				found, r.HintsUsed, r.Duration.Round(time.Second), r.Score)
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, "* gave up")
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d  Games: %d  Average: %.1f  Last played: %s\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.LastPlayed.Format("2006-01-02 15:04"))
	return nil
}

func printCampaign(w io.Writer, store *storage.Store) error {
	progress, err := store.CampaignProgress(wordsearch.IDCampaign)
	if err != nil {
		return err
	}
	unlocked, err := store.UnlockedLevel(wordsearch.IDCampaign)
	if err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Campaign - %d of %d levels cleared\n", len(progress), wordsearch.LevelCount())
	fmt.Fprintln(w)

	best := make(map[int]storage.LevelProgress, len(progress))
	for _, lp := range progress {
		best[lp.Level] = lp
	}

	for n := 1; n <= wordsearch.LevelCount(); n++ {
		lvl, _ := wordsearch.LevelAt(n)
		status := "locked"
		if lp, ok := best[n]; ok {
			status = fmt.Sprintf("%d pts in %s", lp.BestScore, lp.BestDuration.Round(time.Second))
		} else if n <= unlocked {
			status = "open"
		}
		fmt.Fprintf(w, "  %2d. %-15s  %s\n", n, lvl.Name, status)
	}
	return nil
}

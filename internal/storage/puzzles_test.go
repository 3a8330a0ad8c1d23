package storage

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-wordsearch/internal/core"
)

func sampleResult(level, score int, completed bool) core.PuzzleResult {
	return core.PuzzleResult{
		PuzzleID:   "p-1",
		GameID:     "wordsearch",
		Category:   "animals",
		Preset:     "easy",
		GridSize:   10,
		Level:      level,
		WordsFound: 6,
		WordsTotal: 6,
		HintsUsed:  1,
		Score:      score,
		Duration:   90 * time.Second,
		Completed:  completed,
	}
}

func TestSavePuzzleResult(t *testing.T) {
	store := openTestStore(t)

	in := sampleResult(2, 340, true)
	id, err := store.SavePuzzleResult(in)
	if err != nil {
		t.Fatalf("SavePuzzleResult() failed: %v", err)
	}
	if id == 0 {
		t.Error("expected a row ID")
	}

	recs, err := store.RecentPuzzleResults("wordsearch", 10)
	if err != nil {
		t.Fatalf("RecentPuzzleResults() failed: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d records, expected 1", len(recs))
	}
	if recs[0].PuzzleResult != in {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", recs[0].PuzzleResult, in)
	}

	// Completed campaign levels unlock the next one
	if lvl, _ := store.UnlockedLevel("wordsearch"); lvl != 3 {
		t.Errorf("UnlockedLevel = %d, expected 3", lvl)
	}
}

func TestSavePuzzleResultIncompleteDoesNotUnlock(t *testing.T) {
	store := openTestStore(t)

	store.SavePuzzleResult(sampleResult(1, 80, false))
	// Level 0 is outside the campaign
	store.SavePuzzleResult(sampleResult(0, 200, true))

	if lvl, _ := store.UnlockedLevel("wordsearch"); lvl != 1 {
		t.Errorf("UnlockedLevel = %d, expected 1", lvl)
	}
}

func TestRecentPuzzleResultsOrderAndFilter(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		r := sampleResult(0, i*10, false)
		if i%2 == 1 {
			r.GameID = "wordsearch_daily"
		}
		store.SavePuzzleResult(r)
	}

	recs, err := store.RecentPuzzleResults("", 3)
	if err != nil {
		t.Fatalf("RecentPuzzleResults() failed: %v", err)
	}
	if len(recs) != 3 || recs[0].Score != 40 || recs[2].Score != 20 {
		t.Errorf("recent across games = %+v", recs)
	}

	daily, _ := store.RecentPuzzleResults("wordsearch_daily", 0)
	if len(daily) != 2 {
		t.Errorf("daily results = %d, expected 2", len(daily))
	}
}

func TestCampaignProgressKeepsBest(t *testing.T) {
	store := openTestStore(t)

	steps := []struct {
		score int
		d     time.Duration
	}{
		{200, 60 * time.Second},
		{150, 45 * time.Second},
		{260, 80 * time.Second},
	}
	for _, st := range steps {
		r := sampleResult(4, st.score, true)
		r.Duration = st.d
		if _, err := store.SavePuzzleResult(r); err != nil {
			t.Fatalf("SavePuzzleResult() failed: %v", err)
		}
	}
	store.SavePuzzleResult(sampleResult(1, 90, true))

	progress, err := store.CampaignProgress("wordsearch")
	if err != nil {
		t.Fatalf("CampaignProgress() failed: %v", err)
	}
	if len(progress) != 2 || progress[0].Level != 1 || progress[1].Level != 4 {
		t.Fatalf("progress = %+v", progress)
	}
	if progress[1].BestScore != 260 || progress[1].BestDuration != 45*time.Second {
		t.Errorf("level 4 best = %d in %v", progress[1].BestScore, progress[1].BestDuration)
	}
	if lvl, _ := store.UnlockedLevel("wordsearch"); lvl != 5 {
		t.Errorf("UnlockedLevel = %d, expected 5", lvl)
	}
}

package session

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-wordsearch/internal/core"
	"github.com/vovakirdan/tui-wordsearch/internal/puzzle"
)

// catCow is a 4×4 puzzle with CAT running right and COW running down,
// both starting at the top-left corner.
func catCow() *puzzle.Puzzle {
	return &puzzle.Puzzle{
		ID:         "test",
		Size:       4,
		Category:   "animals",
		Directions: puzzle.Easy,
		Grid: puzzle.GridFromRows(
			"CATX",
			"OXXX",
			"WXXX",
			"XXXX",
		),
		Words: []puzzle.WordData{
			{Word: "CAT", Start: puzzle.P(0, 0), Direction: puzzle.Right},
			{Word: "COW", Start: puzzle.P(0, 0), Direction: puzzle.Down},
		},
	}
}

func TestMachineTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    State
		ev      Event
		want    State
		wantErr bool
	}{
		{"loaded", StateLoading, EventLoaded, StatePlaying, false},
		{"pause", StatePlaying, EventPause, StatePaused, false},
		{"resume", StatePaused, EventResume, StatePlaying, false},
		{"all found", StatePlaying, EventAllFound, StateCompleted, false},
		{"give up", StatePlaying, EventGiveUp, StateCompleted, false},
		{"restart from completed", StateCompleted, EventRestart, StateLoading, false},
		{"restart from paused", StatePaused, EventRestart, StateLoading, false},
		{"pause while loading", StateLoading, EventPause, StateLoading, true},
		{"give up while paused", StatePaused, EventGiveUp, StatePaused, true},
		{"resume while playing", StatePlaying, EventResume, StatePlaying, true},
		{"found after completion", StateCompleted, EventAllFound, StateCompleted, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := Machine{state: tc.from}
			got, err := m.Fire(tc.ev)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidTransition) {
					t.Fatalf("expected ErrInvalidTransition, got %v", err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want || m.State() != tc.want {
				t.Errorf("state = %s, expected %s", got, tc.want)
			}
			if tc.wantErr && m.Can(tc.ev) {
				t.Errorf("Can(%s) should be false in %s", tc.ev, m.State())
			}
		})
	}
}

func TestSubmitOutcomes(t *testing.T) {
	s := New(catCow(), DefaultScoring())

	if s.State() != StatePlaying {
		t.Fatalf("new session state = %s, expected playing", s.State())
	}

	steps := []struct {
		name       string
		start, end puzzle.Position
		want       Outcome
	}{
		{"diagonal not allowed", puzzle.P(0, 0), puzzle.P(1, 1), OutcomeInvalidPath},
		{"reverse not allowed", puzzle.P(0, 2), puzzle.P(0, 0), OutcomeInvalidPath},
		{"single cell", puzzle.P(0, 0), puzzle.P(0, 0), OutcomeInvalidPath},
		{"off the grid", puzzle.P(0, 0), puzzle.P(0, 4), OutcomeInvalidPath},
		{"no such word", puzzle.P(1, 0), puzzle.P(1, 2), OutcomeNotAWord},
		{"find CAT", puzzle.P(0, 0), puzzle.P(0, 2), OutcomeFound},
		{"CAT again", puzzle.P(0, 0), puzzle.P(0, 2), OutcomeAlreadyFound},
	}
	for _, st := range steps {
		if got := s.Submit(st.start, st.end); got != st.want {
			t.Errorf("%s: Submit = %s, expected %s", st.name, got, st.want)
		}
	}

	if s.Found() != 1 || s.Remaining() != 1 {
		t.Errorf("found/remaining = %d/%d, expected 1/1", s.Found(), s.Remaining())
	}
	if s.Score() != 30 {
		t.Errorf("score = %d, expected 30", s.Score())
	}
	if w, ok := s.LastFound(); !ok || w.Word != "CAT" {
		t.Errorf("LastFound = %+v, %v", w, ok)
	}

	if got := s.Submit(puzzle.P(0, 0), puzzle.P(2, 0)); got != OutcomeFound {
		t.Fatalf("find COW = %s", got)
	}
	if s.State() != StateCompleted || !s.Solved() {
		t.Errorf("state = %s, solved = %v after last word", s.State(), s.Solved())
	}
	// 3*10 + 3*10 + 100 bonus
	if s.Score() != 160 {
		t.Errorf("final score = %d, expected 160", s.Score())
	}
	if got := s.Submit(puzzle.P(0, 0), puzzle.P(0, 2)); got != OutcomeNotPlaying {
		t.Errorf("submit after completion = %s", got)
	}
}

func TestSubmitDuplicateWord(t *testing.T) {
	p := &puzzle.Puzzle{
		Size:       2,
		Directions: puzzle.VeryEasy,
		Grid:       puzzle.GridFromRows("AB", "AB"),
		Words: []puzzle.WordData{
			{Word: "AB", Start: puzzle.P(0, 0), Direction: puzzle.Right},
			{Word: "AB", Start: puzzle.P(1, 0), Direction: puzzle.Right},
		},
	}
	s := New(p, DefaultScoring())

	if got := s.Submit(puzzle.P(1, 0), puzzle.P(1, 1)); got != OutcomeFound {
		t.Fatalf("first AB = %s", got)
	}
	if !s.Words()[1].Found || s.Words()[0].Found {
		t.Error("the traced placement should be marked found")
	}
	if got := s.Submit(puzzle.P(1, 0), puzzle.P(1, 1)); got != OutcomeAlreadyFound {
		t.Errorf("retracing the same placement = %s", got)
	}
	if got := s.Submit(puzzle.P(0, 0), puzzle.P(0, 1)); got != OutcomeFound {
		t.Errorf("second AB = %s", got)
	}
	if !s.Solved() {
		t.Error("both copies found should complete the puzzle")
	}
}

func TestSessionDoesNotMutatePuzzle(t *testing.T) {
	p := catCow()
	s := New(p, DefaultScoring())
	s.Submit(puzzle.P(0, 0), puzzle.P(0, 2))

	if p.Words[0].Found {
		t.Error("session should track Found flags on its own copy")
	}
}

func TestHint(t *testing.T) {
	s := New(catCow(), DefaultScoring())

	pos, ok := s.Hint()
	if !ok || pos != puzzle.P(0, 0) {
		t.Fatalf("Hint = %v, %v", pos, ok)
	}
	if !s.IsHinted(pos) || s.HintsUsed() != 1 {
		t.Error("hint should be recorded")
	}
	if s.Score() != 0 {
		t.Errorf("score should not drop below zero, got %d", s.Score())
	}

	s.Submit(puzzle.P(0, 0), puzzle.P(0, 2))
	if s.Score() != 30 {
		t.Errorf("score = %d, expected 30", s.Score())
	}
}

func TestHintSharedStartCell(t *testing.T) {
	s := New(catCow(), Scoring{LetterPoints: 10, HintPenalty: 5})

	// CAT and COW both start at (0,0); each word gets its own hint.
	for i := 1; i <= 2; i++ {
		pos, ok := s.Hint()
		if !ok || pos != puzzle.P(0, 0) {
			t.Fatalf("hint %d = %v, %v; expected (0,0)", i, pos, ok)
		}
	}
	if s.HintsUsed() != 2 {
		t.Errorf("HintsUsed = %d, expected 2", s.HintsUsed())
	}
	if _, ok := s.Hint(); ok {
		t.Error("every word is hinted, a third hint should fail")
	}

	// Finding one word must not use up the other's hint.
	s = New(catCow(), DefaultScoring())
	s.Hint()
	s.Submit(puzzle.P(0, 0), puzzle.P(0, 2))
	if s.Remaining() != 1 {
		t.Fatalf("Remaining = %d, expected 1", s.Remaining())
	}
	if pos, ok := s.Hint(); !ok || pos != puzzle.P(0, 0) {
		t.Errorf("Hint = %v, %v; expected the start of COW", pos, ok)
	}
}

func TestHintPenalty(t *testing.T) {
	s := New(catCow(), Scoring{LetterPoints: 10, HintPenalty: 5})
	s.Submit(puzzle.P(0, 0), puzzle.P(0, 2))

	pos, ok := s.Hint()
	if !ok || pos != puzzle.P(0, 0) {
		t.Fatalf("Hint = %v, %v; expected the start of COW", pos, ok)
	}
	if s.Score() != 25 {
		t.Errorf("score = %d, expected 30 - 5", s.Score())
	}
}

func TestPauseResume(t *testing.T) {
	s := New(catCow(), DefaultScoring())

	s.Tick()
	if err := s.Pause(); err != nil {
		t.Fatalf("Pause: %v", err)
	}
	s.Tick()
	s.Tick()
	if s.Ticks() != 1 {
		t.Errorf("ticks while paused should not count, got %d", s.Ticks())
	}
	if got := s.Submit(puzzle.P(0, 0), puzzle.P(0, 2)); got != OutcomeNotPlaying {
		t.Errorf("submit while paused = %s", got)
	}
	if _, ok := s.Hint(); ok {
		t.Error("hint while paused should fail")
	}
	if err := s.Pause(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("double pause error = %v", err)
	}

	s.TogglePause()
	if s.State() != StatePlaying {
		t.Errorf("TogglePause should resume, state = %s", s.State())
	}
	s.Tick()
	if s.Ticks() != 2 {
		t.Errorf("ticks = %d, expected 2", s.Ticks())
	}
}

func TestGiveUp(t *testing.T) {
	s := New(catCow(), DefaultScoring())
	s.Submit(puzzle.P(0, 0), puzzle.P(0, 2))

	if s.IsFoundCell(puzzle.P(2, 0)) {
		t.Error("W of COW should be hidden before giving up")
	}
	if err := s.GiveUp(); err != nil {
		t.Fatalf("GiveUp: %v", err)
	}
	if !s.IsFoundCell(puzzle.P(2, 0)) {
		t.Error("giving up should reveal every word")
	}
	if s.IsFoundCell(puzzle.P(3, 3)) {
		t.Error("filler cell should never be revealed")
	}
	if s.Solved() || !s.GaveUp() {
		t.Error("a given-up puzzle is completed but not solved")
	}
	if err := s.GiveUp(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("second GiveUp error = %v", err)
	}
}

func TestEmptyPuzzleIsCompleted(t *testing.T) {
	p := catCow()
	p.Words = nil
	s := New(p, DefaultScoring())

	if s.State() != StateCompleted || !s.Solved() {
		t.Errorf("empty puzzle state = %s", s.State())
	}
}

func TestResult(t *testing.T) {
	s := New(catCow(), DefaultScoring())
	for range 60 {
		s.Tick()
	}
	s.Hint()
	s.Submit(puzzle.P(0, 0), puzzle.P(0, 2))

	r := s.Result("wordsearch", 3, core.RuntimeConfig{TickRate: 30})
	if r.PuzzleID != "test" || r.GameID != "wordsearch" || r.Level != 3 {
		t.Errorf("identity fields = %+v", r)
	}
	if r.Category != "animals" || r.Preset != "easy" || r.GridSize != 4 {
		t.Errorf("puzzle fields = %+v", r)
	}
	if r.WordsFound != 1 || r.WordsTotal != 2 || r.HintsUsed != 1 {
		t.Errorf("progress fields = %+v", r)
	}
	if r.Duration != 2*time.Second {
		t.Errorf("duration = %v, expected 2s", r.Duration)
	}
	if r.Completed {
		t.Error("unfinished puzzle should not be completed")
	}
}

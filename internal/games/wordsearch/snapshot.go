package wordsearch

import (
	"github.com/vovakirdan/tui-wordsearch/internal/puzzle"
	"github.com/vovakirdan/tui-wordsearch/internal/session"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StatePaused       GameStateType = "paused"
	StateLevelCleared GameStateType = "level_cleared"
	StateLevelFailed  GameStateType = "level_failed"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePausedSmall  GameStateType = "paused_small_window"
	StateError        GameStateType = "error"
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick       uint64
	Mode       string
	Level      int // campaign level, 1-indexed
	Round      int // endless round
	PuzzleID   string
	Category   string
	Size       int
	Rows       []string
	Words      []string
	Found      int
	Score      int
	HintsUsed  int
	Cursor     puzzle.Position
	Anchor     puzzle.Position
	HasAnchor  bool
	Message    string
	State      GameStateType
	Directions string
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		Level:     g.levelIndex + 1,
		Round:     g.round,
		Score:     g.Score(),
		Cursor:    g.cursor,
		Anchor:    g.anchor,
		HasAnchor: g.hasAnchor,
		Message:   g.message,
		State:     g.snapshotState(),
	}
	if g.sess == nil {
		return s
	}

	p := g.sess.Puzzle
	s.PuzzleID = p.ID
	s.Category = p.Category
	s.Size = p.Size
	s.Rows = p.Grid.Rows()
	s.Directions = p.Directions.Name()
	s.Found = g.sess.Found()
	s.HintsUsed = g.sess.HintsUsed()
	for _, w := range g.sess.Words() {
		s.Words = append(s.Words, w.Word)
	}
	return s
}

func (g *Game) snapshotState() GameStateType {
	switch {
	case g.loadErr != nil:
		return StateError
	case g.won:
		return StateWin
	case g.gameOver:
		return StateGameOver
	case g.tooSmall:
		return StatePausedSmall
	case g.levelCleared:
		return StateLevelCleared
	case g.levelFailed:
		return StateLevelFailed
	case g.sess != nil && g.sess.State() == session.StatePaused:
		return StatePaused
	}
	return StatePlaying
}

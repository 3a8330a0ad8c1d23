package session

import (
	"time"

	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/tui-wordsearch/internal/core"
	"github.com/vovakirdan/tui-wordsearch/internal/puzzle"
)

// Outcome is the result of submitting a selection.
type Outcome int

const (
	OutcomeFound Outcome = iota
	OutcomeAlreadyFound
	OutcomeNotAWord
	OutcomeInvalidPath
	OutcomeNotPlaying
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeAlreadyFound:
		return "already found"
	case OutcomeNotAWord:
		return "not a word"
	case OutcomeInvalidPath:
		return "invalid path"
	case OutcomeNotPlaying:
		return "not playing"
	default:
		return "unknown"
	}
}

// Scoring holds the point values of a session.
type Scoring struct {
	LetterPoints    int
	HintPenalty     int
	CompletionBonus int
}

// DefaultScoring returns the stock point values.
func DefaultScoring() Scoring {
	return Scoring{
		LetterPoints:    10,
		HintPenalty:     25,
		CompletionBonus: 100,
	}
}

// Session is the mutable play state of one puzzle.
type Session struct {
	Puzzle *puzzle.Puzzle

	machine   Machine
	validator puzzle.Validator
	scoring   Scoring

	words     []puzzle.WordData // copy of Puzzle.Words carrying Found flags
	remaining mapset.Set[string]
	hinted    mapset.Set[int]             // indexes into words
	hintCells mapset.Set[puzzle.Position] // revealed first letters

	score     int
	hintsUsed int
	gaveUp    bool
	ticks     int
	last      int // index of the most recently found word, -1 if none
}

// New starts a session on p in the playing state.
func New(p *puzzle.Puzzle, scoring Scoring) *Session {
	s := &Session{
		Puzzle:    p,
		validator: puzzle.NewValidator(p),
		scoring:   scoring,
		words:     make([]puzzle.WordData, len(p.Words)),
		remaining: mapset.New[string](),
		hinted:    mapset.New[int](),
		hintCells: mapset.New[puzzle.Position](),
		last:      -1,
	}
	copy(s.words, p.Words)
	for i := range s.words {
		s.words[i].Found = false
		s.remaining.Put(s.words[i].Word)
	}
	s.machine.Fire(EventLoaded)

	// A puzzle where nothing could be placed is already solved.
	if len(s.words) == 0 {
		s.machine.Fire(EventAllFound)
	}
	return s
}

// State returns the lifecycle state.
func (s *Session) State() State {
	return s.machine.State()
}

// Submit checks a selection from start to end against the hidden words.
func (s *Session) Submit(start, end puzzle.Position) Outcome {
	if s.machine.State() != StatePlaying {
		return OutcomeNotPlaying
	}

	sel, ok := s.validator.Select(s.Puzzle.Grid, start, end)
	if !ok {
		return OutcomeInvalidPath
	}
	if s.isFoundPath(sel) {
		return OutcomeAlreadyFound
	}
	if !s.remaining.Has(sel.Letters) {
		if s.isFoundWord(sel.Letters) {
			return OutcomeAlreadyFound
		}
		return OutcomeNotAWord
	}

	// Prefer the placement the player actually traced; a duplicate word
	// elsewhere in the grid is matched by its letters.
	idx := -1
	for i, w := range s.words {
		if w.Found || w.Word != sel.Letters {
			continue
		}
		if w.Start == sel.Start && w.End() == sel.End {
			idx = i
			break
		}
		if idx < 0 {
			idx = i
		}
	}
	s.words[idx].Found = true
	s.last = idx
	if !s.stillHidden(sel.Letters) {
		s.remaining.Remove(sel.Letters)
	}
	s.score += s.scoring.LetterPoints * len([]rune(sel.Letters))

	if s.remaining.Size() == 0 {
		s.score += s.scoring.CompletionBonus
		s.machine.Fire(EventAllFound)
	}
	return OutcomeFound
}

// stillHidden reports whether another unfound copy of word is placed.
func (s *Session) stillHidden(word string) bool {
	for _, w := range s.words {
		if !w.Found && w.Word == word {
			return true
		}
	}
	return false
}

func (s *Session) isFoundPath(sel puzzle.Selection) bool {
	for _, w := range s.words {
		if w.Found && w.Start == sel.Start && w.End() == sel.End {
			return true
		}
	}
	return false
}

func (s *Session) isFoundWord(word string) bool {
	for _, w := range s.words {
		if w.Found && w.Word == word {
			return true
		}
	}
	return false
}

// Hint reveals the first letter of the first unfound word not hinted yet.
// Words sharing a start cell are hinted one at a time.
// Each hint costs HintPenalty; the score never drops below zero.
func (s *Session) Hint() (puzzle.Position, bool) {
	if s.machine.State() != StatePlaying {
		return puzzle.Position{}, false
	}
	for i, w := range s.words {
		if w.Found || s.hinted.Has(i) {
			continue
		}
		s.hinted.Put(i)
		s.hintCells.Put(w.Start)
		s.hintsUsed++
		s.score = max(0, s.score-s.scoring.HintPenalty)
		return w.Start, true
	}
	return puzzle.Position{}, false
}

// IsHinted reports whether p was revealed by a hint.
func (s *Session) IsHinted(p puzzle.Position) bool {
	return s.hintCells.Has(p)
}

// GiveUp ends the puzzle and reveals every word.
func (s *Session) GiveUp() error {
	if _, err := s.machine.Fire(EventGiveUp); err != nil {
		return err
	}
	s.gaveUp = true
	return nil
}

// GaveUp reports whether the puzzle ended by giving up.
func (s *Session) GaveUp() bool {
	return s.gaveUp
}

// Pause suspends play and the clock.
func (s *Session) Pause() error {
	_, err := s.machine.Fire(EventPause)
	return err
}

// Resume continues a paused session.
func (s *Session) Resume() error {
	_, err := s.machine.Fire(EventResume)
	return err
}

// TogglePause flips between playing and paused; other states are left alone.
func (s *Session) TogglePause() {
	switch s.machine.State() {
	case StatePlaying:
		s.Pause()
	case StatePaused:
		s.Resume()
	}
}

// Tick advances the play clock by one simulation tick while playing.
func (s *Session) Tick() {
	if s.machine.State() == StatePlaying {
		s.ticks++
	}
}

// Ticks returns the number of ticks spent playing.
func (s *Session) Ticks() int {
	return s.ticks
}

// Words returns the placements with their Found flags.
func (s *Session) Words() []puzzle.WordData {
	return s.words
}

// Found returns the number of found words.
func (s *Session) Found() int {
	n := 0
	for _, w := range s.words {
		if w.Found {
			n++
		}
	}
	return n
}

// Remaining returns the number of words still hidden.
func (s *Session) Remaining() int {
	return len(s.words) - s.Found()
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// HintsUsed returns the number of hints taken.
func (s *Session) HintsUsed() int {
	return s.hintsUsed
}

// LastFound returns the most recently found word.
func (s *Session) LastFound() (puzzle.WordData, bool) {
	if s.last < 0 {
		return puzzle.WordData{}, false
	}
	return s.words[s.last], true
}

// Solved reports whether every word was found without giving up.
func (s *Session) Solved() bool {
	return s.machine.State() == StateCompleted && !s.gaveUp
}

// IsFoundCell reports whether p belongs to a found word, or to any word
// once the player gave up.
func (s *Session) IsFoundCell(p puzzle.Position) bool {
	for _, w := range s.words {
		if (w.Found || s.gaveUp) && w.Covers(p) {
			return true
		}
	}
	return false
}

// Result summarises the session for persistence. rt converts the tick
// count to wall time.
func (s *Session) Result(gameID string, level int, rt core.RuntimeConfig) core.PuzzleResult {
	var d time.Duration
	if s.ticks > 0 {
		d = rt.TicksToDuration(s.ticks)
	}
	return core.PuzzleResult{
		PuzzleID:   s.Puzzle.ID,
		GameID:     gameID,
		Category:   s.Puzzle.Category,
		Preset:     s.Puzzle.Directions.Name(),
		GridSize:   s.Puzzle.Size,
		Level:      level,
		WordsFound: s.Found(),
		WordsTotal: len(s.words),
		HintsUsed:  s.hintsUsed,
		Score:      s.score,
		Duration:   d,
		Completed:  s.Solved(),
	}
}

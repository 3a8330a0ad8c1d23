package puzzle

import (
	"errors"
	"math/rand"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Generator tuning defaults.
const (
	DefaultMaxAttempts = 100
	DefaultAlphabet    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Configuration errors. These are caller mistakes, not generation failures.
var (
	ErrInvalidGridSize = errors.New("puzzle: grid size must be positive")
	ErrNoDirections    = errors.New("puzzle: direction set is empty")
)

// Configuration describes one level to generate.
type Configuration struct {
	GridSize   int
	Words      []string
	Directions DirectionSet
	Category   string
}

// Validate checks the preconditions of Generate.
func (c Configuration) Validate() error {
	if c.GridSize <= 0 {
		return ErrInvalidGridSize
	}
	if c.Directions.Empty() {
		return ErrNoDirections
	}
	return nil
}

// Puzzle is a generated level. The grid and placements are built together
// and never modified afterward; Found flags are tracked by the session.
type Puzzle struct {
	ID         string
	Size       int
	Category   string
	Directions DirectionSet
	Grid       *Grid
	Words      []WordData
	Skipped    []string // words that were too long or found no slot
}

// GeneratorOptions tunes placement.
type GeneratorOptions struct {
	MaxAttempts        int    // random candidates tried per word (K)
	Alphabet           string // filler letters
	LongestFirst       bool   // place long words before short ones
	ExhaustiveFallback bool   // scan every slot once K random tries fail
}

// DefaultGeneratorOptions returns the baseline random placer settings.
func DefaultGeneratorOptions() GeneratorOptions {
	return GeneratorOptions{
		MaxAttempts: DefaultMaxAttempts,
		Alphabet:    DefaultAlphabet,
	}
}

// Generator places words into a grid using random candidates.
type Generator struct {
	rng      *rand.Rand
	opts     GeneratorOptions
	alphabet []rune
}

// NewGenerator creates a generator drawing from rng.
// Zero-valued options fall back to the defaults.
func NewGenerator(rng *rand.Rand, opts GeneratorOptions) *Generator {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	alphabet := []rune(strings.ToUpper(opts.Alphabet))
	if len(alphabet) == 0 {
		alphabet = []rune(DefaultAlphabet)
	}
	return &Generator{
		rng:      rng,
		opts:     opts,
		alphabet: alphabet,
	}
}

// Generate builds a grid and places every word it can.
//
// Words are uppercased. A word longer than the grid is never attempted.
// A word with no valid slot after the attempt budget is skipped; callers
// must tolerate fewer placements than requested.
func (g *Generator) Generate(cfg Configuration) (*Puzzle, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	n := cfg.GridSize
	grid := NewGrid(n)
	dirs := cfg.Directions.Directions()

	p := &Puzzle{
		ID:         g.newID(),
		Size:       n,
		Category:   cfg.Category,
		Directions: cfg.Directions,
		Grid:       grid,
		Words:      make([]WordData, 0, len(cfg.Words)),
	}

	for _, word := range g.order(cfg.Words) {
		if utf8.RuneCountInString(word) > n {
			p.Skipped = append(p.Skipped, word)
			continue
		}

		wd, ok := g.place(grid, word, dirs)
		if !ok {
			p.Skipped = append(p.Skipped, word)
			continue
		}
		p.Words = append(p.Words, wd)
	}

	g.fill(grid)
	return p, nil
}

// order normalises the word list and applies the placement order.
func (g *Generator) order(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		out = append(out, w)
	}
	if g.opts.LongestFirst {
		slices.SortStableFunc(out, func(a, b string) int {
			return utf8.RuneCountInString(b) - utf8.RuneCountInString(a)
		})
	}
	return out
}

// place tries random candidates, then optionally every slot, and commits
// the first valid one.
func (g *Generator) place(grid *Grid, word string, dirs []Direction) (WordData, bool) {
	letters := []rune(word)
	n := grid.Size()

	for range g.opts.MaxAttempts {
		start := P(g.rng.Intn(n), g.rng.Intn(n))
		d := dirs[g.rng.Intn(len(dirs))]
		if fits(grid, letters, start, d) {
			return commit(grid, word, letters, start, d), true
		}
	}

	if !g.opts.ExhaustiveFallback {
		return WordData{}, false
	}

	type slot struct {
		start Position
		dir   Direction
	}
	slots := make([]slot, 0, n*n*len(dirs))
	for r := range n {
		for c := range n {
			for _, d := range dirs {
				slots = append(slots, slot{P(r, c), d})
			}
		}
	}
	g.rng.Shuffle(len(slots), func(i, j int) {
		slots[i], slots[j] = slots[j], slots[i]
	})
	for _, s := range slots {
		if fits(grid, letters, s.start, s.dir) {
			return commit(grid, word, letters, s.start, s.dir), true
		}
	}
	return WordData{}, false
}

// fits reports whether letters can be written from start along d:
// every cell in bounds, and occupied cells already hold the same letter.
func fits(grid *Grid, letters []rune, start Position, d Direction) bool {
	end := start.Add(d, len(letters)-1)
	if !grid.InBounds(start) || !grid.InBounds(end) {
		return false
	}
	for i, ch := range letters {
		existing := grid.At(start.Add(d, i))
		if existing != 0 && existing != ch {
			return false
		}
	}
	return true
}

func commit(grid *Grid, word string, letters []rune, start Position, d Direction) WordData {
	for i, ch := range letters {
		grid.set(start.Add(d, i), ch)
	}
	return WordData{
		Word:      word,
		Start:     start,
		Direction: d,
	}
}

// fill writes a random filler letter into every empty cell.
func (g *Generator) fill(grid *Grid) {
	for i, ch := range grid.cells {
		if ch == 0 {
			grid.cells[i] = g.alphabet[g.rng.Intn(len(g.alphabet))]
		}
	}
}

// newID draws the puzzle ID from the generator's own source so that a
// seeded generator is reproducible end to end.
func (g *Generator) newID() string {
	id, err := uuid.NewRandomFromReader(g.rng)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

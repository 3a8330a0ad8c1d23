package puzzle

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func newTestGenerator(seed int64, opts GeneratorOptions) *Generator {
	return NewGenerator(rand.New(rand.NewSource(seed)), opts)
}

func TestGenerateCatDogBird(t *testing.T) {
	g := newTestGenerator(42, DefaultGeneratorOptions())

	p, err := g.Generate(Configuration{
		GridSize:   6,
		Words:      []string{"CAT", "DOG", "BIRD"},
		Directions: All,
		Category:   "animals",
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(p.Words) != 3 {
		t.Fatalf("expected 3 placed words, got %d (skipped %v)", len(p.Words), p.Skipped)
	}
	if err := p.Verify(); err != nil {
		t.Errorf("generated puzzle is inconsistent: %v", err)
	}
	for _, w := range p.Words {
		if w.Found {
			t.Errorf("%s should start unfound", w.Word)
		}
	}
	if p.Category != "animals" || p.Size != 6 || p.Grid.Size() != 6 {
		t.Errorf("puzzle metadata wrong: %+v", p)
	}
}

func TestGenerateInvariants(t *testing.T) {
	words := []string{"apple", "banana", "cherry", "grape", "lemon", "mango", "peach", "plum", "kiwi", "fig"}

	for _, set := range []DirectionSet{VeryEasy, Easy, Medium, Hard} {
		for seed := int64(1); seed <= 25; seed++ {
			g := newTestGenerator(seed, DefaultGeneratorOptions())
			p, err := g.Generate(Configuration{GridSize: 10, Words: words, Directions: set})
			if err != nil {
				t.Fatalf("Generate failed: %v", err)
			}

			if len(p.Words)+len(p.Skipped) != len(words) {
				t.Errorf("seed %d: %d placed + %d skipped != %d words", seed, len(p.Words), len(p.Skipped), len(words))
			}

			// consistency, bounds, direction legality, filled grid
			if err := p.Verify(); err != nil {
				t.Errorf("%s seed %d: %v", set.Name(), seed, err)
			}

			// every shared cell agrees under both words' indexing
			letterAt := make(map[Position]rune)
			for _, w := range p.Words {
				letters := []rune(w.Word)
				for i, pos := range w.Positions() {
					if prev, ok := letterAt[pos]; ok && prev != letters[i] {
						t.Errorf("%s seed %d: overlap at %s disagrees (%c vs %c)", set.Name(), seed, pos, prev, letters[i])
					}
					letterAt[pos] = letters[i]
				}
			}
		}
	}
}

func TestGenerateUppercasesWords(t *testing.T) {
	g := newTestGenerator(7, DefaultGeneratorOptions())
	p, err := g.Generate(Configuration{GridSize: 5, Words: []string{"  sun ", "Moon"}, Directions: Hard})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	for _, w := range p.Words {
		if w.Word != strings.ToUpper(w.Word) || strings.TrimSpace(w.Word) != w.Word {
			t.Errorf("word %q not normalised", w.Word)
		}
	}
	for _, row := range p.Grid.Rows() {
		if row != strings.ToUpper(row) {
			t.Errorf("row %q has lowercase letters", row)
		}
	}
}

func TestGenerateSkipsTooLong(t *testing.T) {
	g := newTestGenerator(3, DefaultGeneratorOptions())
	p, err := g.Generate(Configuration{
		GridSize:   4,
		Words:      []string{"ELEPHANT", "OWL"},
		Directions: Hard,
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	for _, w := range p.Words {
		if w.Word == "ELEPHANT" {
			t.Fatal("word longer than the grid must never be placed")
		}
	}
	if len(p.Skipped) == 0 || p.Skipped[0] != "ELEPHANT" {
		t.Errorf("ELEPHANT should be reported as skipped, got %v", p.Skipped)
	}
}

func TestGenerateEmptyWordList(t *testing.T) {
	g := newTestGenerator(9, DefaultGeneratorOptions())
	p, err := g.Generate(Configuration{
		GridSize:   5,
		Words:      []string{"", "   ", "TOOLONGWORD"},
		Directions: Easy,
	})
	if err != nil {
		t.Fatalf("empty word list should not be an error: %v", err)
	}
	if len(p.Words) != 0 {
		t.Errorf("expected no placements, got %d", len(p.Words))
	}
	if err := p.Verify(); err != nil {
		t.Errorf("grid should still be fully filled: %v", err)
	}
	for _, row := range p.Grid.Rows() {
		for _, ch := range row {
			if !strings.ContainsRune(DefaultAlphabet, ch) {
				t.Errorf("filler %q is outside the alphabet", ch)
			}
		}
	}
}

func TestGenerateConfigurationErrors(t *testing.T) {
	g := newTestGenerator(1, DefaultGeneratorOptions())

	if _, err := g.Generate(Configuration{GridSize: 0, Directions: Easy}); !errors.Is(err, ErrInvalidGridSize) {
		t.Errorf("grid size 0: got %v, want ErrInvalidGridSize", err)
	}
	if _, err := g.Generate(Configuration{GridSize: 5}); !errors.Is(err, ErrNoDirections) {
		t.Errorf("no directions: got %v, want ErrNoDirections", err)
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	cfg := Configuration{
		GridSize:   8,
		Words:      []string{"RIVER", "LAKE", "OCEAN", "POND"},
		Directions: Medium,
	}

	p1, _ := newTestGenerator(2024, DefaultGeneratorOptions()).Generate(cfg)
	p2, _ := newTestGenerator(2024, DefaultGeneratorOptions()).Generate(cfg)

	if !p1.Grid.Equal(p2.Grid) {
		t.Errorf("same seed should produce the same grid:\n%s\nvs\n%s", p1.Grid, p2.Grid)
	}
	if p1.ID != p2.ID {
		t.Errorf("same seed should produce the same ID: %s vs %s", p1.ID, p2.ID)
	}
	if len(p1.Words) != len(p2.Words) {
		t.Fatalf("placement count differs: %d vs %d", len(p1.Words), len(p2.Words))
	}
	for i := range p1.Words {
		if p1.Words[i] != p2.Words[i] {
			t.Errorf("placement %d differs: %+v vs %+v", i, p1.Words[i], p2.Words[i])
		}
	}
}

func TestGenerateExhaustiveFallback(t *testing.T) {
	// A 3x3 grid with only rightward placement fits three 3-letter words
	// exactly; random tries alone are unlikely to find the last row.
	opts := DefaultGeneratorOptions()
	opts.MaxAttempts = 1
	opts.ExhaustiveFallback = true

	g := newTestGenerator(11, opts)
	p, err := g.Generate(Configuration{
		GridSize:   3,
		Words:      []string{"ABC", "DEF", "GHI"},
		Directions: VeryEasy,
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(p.Words) != 3 {
		t.Errorf("fallback scan should place all three words, placed %d", len(p.Words))
	}
	if err := p.Verify(); err != nil {
		t.Error(err)
	}
}

func TestGenerateSkipsWhenNoSlot(t *testing.T) {
	opts := DefaultGeneratorOptions()
	opts.ExhaustiveFallback = true

	g := newTestGenerator(5, opts)
	p, err := g.Generate(Configuration{
		GridSize:   2,
		Words:      []string{"AB", "CD", "EF"},
		Directions: VeryEasy,
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(p.Words) != 2 || len(p.Skipped) != 1 {
		t.Errorf("expected 2 placed and 1 skipped, got %d and %v", len(p.Words), p.Skipped)
	}
}

func TestGenerateLongestFirst(t *testing.T) {
	opts := DefaultGeneratorOptions()
	opts.LongestFirst = true

	g := newTestGenerator(8, opts)
	p, err := g.Generate(Configuration{
		GridSize:   9,
		Words:      []string{"OX", "GIRAFFE", "CAT"},
		Directions: Hard,
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(p.Words) != 3 {
		t.Fatalf("expected 3 placements, got %d", len(p.Words))
	}
	if p.Words[0].Word != "GIRAFFE" || p.Words[2].Word != "OX" {
		t.Errorf("placement order = %s, %s, %s", p.Words[0].Word, p.Words[1].Word, p.Words[2].Word)
	}
}

func TestGenerateCustomAlphabet(t *testing.T) {
	opts := DefaultGeneratorOptions()
	opts.Alphabet = "xyz"

	g := newTestGenerator(4, opts)
	p, err := g.Generate(Configuration{GridSize: 4, Directions: Easy})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	for _, row := range p.Grid.Rows() {
		for _, ch := range row {
			if ch != 'X' && ch != 'Y' && ch != 'Z' {
				t.Fatalf("filler %q not from custom alphabet", ch)
			}
		}
	}
}

func TestWordDataPositions(t *testing.T) {
	w := WordData{Word: "BIRD", Start: P(3, 0), Direction: UpRight}
	want := []Position{P(3, 0), P(2, 1), P(1, 2), P(0, 3)}
	got := w.Positions()
	if len(got) != len(want) {
		t.Fatalf("Positions() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Positions()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
	if w.End() != P(0, 3) {
		t.Errorf("End() = %s, want (0,3)", w.End())
	}
	if !w.Covers(P(1, 2)) || w.Covers(P(1, 1)) {
		t.Error("Covers() mismatch")
	}
}

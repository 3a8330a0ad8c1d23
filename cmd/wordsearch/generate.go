package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-wordsearch/internal/config"
	"github.com/vovakirdan/tui-wordsearch/internal/puzzle"
	"github.com/vovakirdan/tui-wordsearch/internal/words"
)

var (
	genConfig     string
	genSize       int
	genDifficulty string
	genCategory   string
	genWords      []string
	genCount      int
	genFormat     string
	genAnswers    bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a generated puzzle",
	Long: `Generate one puzzle and print it instead of playing it.

Words come from --words, or else from a pack (--category, random when empty).
Words that do not fit are reported on stderr and left out of the word list.

Examples:
  wordsearch generate
  wordsearch generate --size 12 --difficulty hard --category space
  wordsearch generate --words cat,dog,bird --size 5 --answers
  wordsearch generate --seed 42 --format yaml > puzzle.yaml`,
	Run: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&genConfig, "config", os.Getenv("WORDSEARCH_CONFIG"), "Path to custom game config YAML")
	generateCmd.Flags().IntVar(&genSize, "size", 0, "Grid size (default: from config or preset)")
	generateCmd.Flags().StringVar(&genDifficulty, "difficulty", "", "Direction preset: very-easy, easy, medium, hard")
	generateCmd.Flags().StringVar(&genCategory, "category", "", "Word pack (default: random)")
	generateCmd.Flags().StringSliceVar(&genWords, "words", nil, "Comma separated words to hide instead of a pack")
	generateCmd.Flags().IntVar(&genCount, "count", 0, "Number of pack words (default: from config or preset)")
	generateCmd.Flags().StringVar(&genFormat, "format", "text", "Output format: text or yaml")
	generateCmd.Flags().BoolVar(&genAnswers, "answers", false, "Include word positions")
}

func runGenerate(_ *cobra.Command, _ []string) {
	p, err := generatePuzzle()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, w := range p.Skipped {
		logger.Warn("word left out", "word", w, "size", p.Size)
	}

	switch genFormat {
	case "yaml":
		err = writeYAML(os.Stdout, p, genAnswers)
	case "text":
		writeText(os.Stdout, p, genAnswers)
	default:
		err = fmt.Errorf("unknown format %q (want text or yaml)", genFormat)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func generatePuzzle() (*puzzle.Puzzle, error) {
	cfg, err := config.LoadWordSearch(genConfig)
	if err != nil {
		logger.Warn("using default config", "err", err)
	}
	if genDifficulty != "" {
		preset, perr := config.ParseDifficulty(genDifficulty)
		if perr != nil {
			return nil, perr
		}
		config.ApplyPreset(&cfg, preset)
	}
	if genSize > 0 {
		cfg.Grid.Size = genSize
	}
	if genCount > 0 {
		cfg.Words.PerPuzzle = genCount
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	logger.Debug("generating", "seed", seed, "size", cfg.Grid.Size, "preset", cfg.Difficulty.Preset)

	list, category, err := pickWords(rng, cfg)
	if err != nil {
		return nil, err
	}

	p, err := puzzle.NewGenerator(rng, cfg.GeneratorOptions()).Generate(puzzle.Configuration{
		GridSize:   cfg.Grid.Size,
		Words:      list,
		Directions: cfg.Directions(),
		Category:   category,
	})
	if err != nil {
		return nil, err
	}
	if err := p.Verify(); err != nil {
		return nil, fmt.Errorf("generated puzzle is inconsistent: %w", err)
	}
	return p, nil
}

func pickWords(rng *rand.Rand, cfg config.WordSearchConfig) ([]string, string, error) {
	if len(genWords) > 0 {
		return words.Normalize(genWords), "custom", nil
	}

	packsDir := flagPacksDir
	if packsDir == "" {
		packsDir = cfg.Words.PacksDir
	}
	if packsDir == "" {
		packsDir = config.UserPacksDir()
	}
	catalog, err := words.Load(packsDir)
	if err != nil {
		return nil, "", err
	}

	category := genCategory
	if category == "" {
		category = cfg.Words.Category
	}
	if category == "" {
		category = catalog.Random(rng)
	}

	list, err := catalog.Pick(rng, category, cfg.Words.PerPuzzle, cfg.Grid.Size)
	if err != nil {
		return nil, "", err
	}
	return list, category, nil
}

func writeText(w io.Writer, p *puzzle.Puzzle, answers bool) {
	fmt.Fprintf(w, "%s  %dx%d  %s %s\n\n", p.Category, p.Size, p.Size, p.Directions.Name(), p.Directions.Symbols())
	fmt.Fprintln(w, p.Grid.String())
	fmt.Fprintln(w)

	for _, wd := range p.Words {
		if answers {
			fmt.Fprintf(w, "  %-14s %s %s\n", wd.Word, wd.Start, wd.Direction)
		} else {
			fmt.Fprintf(w, "  %s\n", wd.Word)
		}
	}

	if answers {
		fmt.Fprintln(w)
		fmt.Fprintln(w, answerGrid(p))
	}
}

// answerGrid shows only the letters that belong to a placed word.
func answerGrid(p *puzzle.Puzzle) string {
	var b strings.Builder
	for r := range p.Size {
		if r > 0 {
			b.WriteRune('\n')
		}
		for c := range p.Size {
			if c > 0 {
				b.WriteRune(' ')
			}
			pos := puzzle.P(r, c)
			ch := '.'
			for _, wd := range p.Words {
				if wd.Covers(pos) {
					ch = p.Grid.At(pos)
					break
				}
			}
			b.WriteRune(ch)
		}
	}
	return b.String()
}

// puzzleDoc is the YAML form of a generated puzzle.
type puzzleDoc struct {
	ID         string    `yaml:"id"`
	Category   string    `yaml:"category"`
	Size       int       `yaml:"size"`
	Directions string    `yaml:"directions"`
	Rows       []string  `yaml:"rows"`
	Words      []wordDoc `yaml:"words"`
	Skipped    []string  `yaml:"skipped,omitempty"`
}

type wordDoc struct {
	Word      string `yaml:"word"`
	Row       *int   `yaml:"row,omitempty"`
	Col       *int   `yaml:"col,omitempty"`
	Direction string `yaml:"direction,omitempty"`
}

func writeYAML(w io.Writer, p *puzzle.Puzzle, answers bool) error {
	doc := puzzleDoc{
		ID:         p.ID,
		Category:   p.Category,
		Size:       p.Size,
		Directions: p.Directions.Name(),
		Rows:       p.Grid.Rows(),
		Words:      make([]wordDoc, 0, len(p.Words)),
		Skipped:    p.Skipped,
	}
	for _, wd := range p.Words {
		d := wordDoc{Word: wd.Word}
		if answers {
			row, col := wd.Start.Row, wd.Start.Col
			d.Row, d.Col = &row, &col
			d.Direction = wd.Direction.String()
		}
		doc.Words = append(doc.Words, d)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}

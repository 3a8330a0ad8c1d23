// Package wordsearch provides the word search game for the terminal
// platform: a ten level campaign, an endless mode and a daily puzzle.
package wordsearch

import (
	"fmt"
	"math/rand"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-wordsearch/internal/config"
	"github.com/vovakirdan/tui-wordsearch/internal/core"
	"github.com/vovakirdan/tui-wordsearch/internal/puzzle"
	"github.com/vovakirdan/tui-wordsearch/internal/registry"
	"github.com/vovakirdan/tui-wordsearch/internal/session"
	"github.com/vovakirdan/tui-wordsearch/internal/words"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
	ModeDaily    Mode = "daily"
)

// Registered game IDs.
const (
	IDCampaign = "wordsearch"
	IDEndless  = "wordsearch_endless"
	IDDaily    = "wordsearch_daily"
)

// messageSeconds is how long a feedback line stays visible.
const messageSeconds = 2

// Game implements the word search game.
type Game struct {
	mode Mode
	rng  *rand.Rand
	rt   core.RuntimeConfig
	cfg  config.WordSearchConfig
	opts settings

	// Per-game overrides of the package settings, used by SSH sessions
	startOverride  int
	presetOverride config.DifficultyPreset

	catalog     *words.Catalog
	progression *config.Progression

	levelIndex int // campaign level (0-indexed)
	round      int // endless round (1-indexed)
	sess       *session.Session
	layout     layout

	// Selection state
	cursor    puzzle.Position
	anchor    puzzle.Position
	hasAnchor bool
	dragging  bool

	tick         uint64
	runScore     int  // points banked from finished puzzles
	banked       bool // current session already counted in runScore
	message      string
	messageColor core.Color
	messageTicks int

	// Game state flags
	levelCleared bool
	levelFailed  bool
	gameOver     bool
	won          bool
	tooSmall     bool
	loadErr      error

	results  []core.PuzzleResult
	reported bool
}

// New creates a new campaign mode game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates a new endless mode game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// NewDaily creates a new daily puzzle game.
func NewDaily() *Game {
	return &Game{mode: ModeDaily}
}

func init() {
	registry.Register(IDCampaign, func() registry.Game { return New() })
	registry.Register(IDEndless, func() registry.Game { return NewEndless() })
	registry.Register(IDDaily, func() registry.Game { return NewDaily() })
}

// ID returns the game identifier.
func (g *Game) ID() string {
	switch g.mode {
	case ModeEndless:
		return IDEndless
	case ModeDaily:
		return IDDaily
	default:
		return IDCampaign
	}
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.mode {
	case ModeEndless:
		return "Word Search (Endless)"
	case ModeDaily:
		return "Word Search (Daily)"
	default:
		return "Word Search"
	}
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	switch g.mode {
	case ModeEndless:
		return "Growing grids, one round after another"
	case ModeDaily:
		return "One shared puzzle per day, all eight directions"
	default:
		return fmt.Sprintf("%d levels from one direction to all eight", LevelCount())
	}
}

// StartAt makes the next Reset begin at campaign level n (1-indexed).
func (g *Game) StartAt(level int) {
	g.startOverride = level
}

// SetDifficulty overrides the direction preset for this game only.
func (g *Game) SetDifficulty(preset config.DifficultyPreset) {
	g.presetOverride = preset
}

// Mode returns the game mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Reset initializes or restarts the game.
func (g *Game) Reset(rt core.RuntimeConfig) {
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}
	g.rt = rt
	g.opts = takeSettings(g.mode == ModeCampaign)
	if g.startOverride > 0 {
		g.opts.startLevel = g.startOverride
		g.startOverride = 0
	}
	if g.presetOverride != "" {
		g.opts.preset = g.presetOverride
	}
	g.tick = 0
	g.runScore = 0
	g.gameOver = false
	g.won = false
	g.loadErr = nil
	g.sess = nil

	g.cfg, g.loadErr = config.LoadWordSearch(g.opts.configPath)
	if g.loadErr != nil {
		return
	}
	if g.opts.preset != "" {
		config.ApplyPreset(&g.cfg, g.opts.preset)
	}
	g.progression = config.NewProgression(g.cfg)

	seed := rt.Seed
	if g.mode == ModeDaily {
		seed = DailySeed(g.dailyDate(), g.opts.dailySalt)
	}
	g.rng = rand.New(rand.NewSource(seed))

	g.catalog, g.loadErr = g.loadCatalog()
	if g.loadErr != nil {
		return
	}

	g.levelIndex = 0
	g.round = 1
	if g.mode == ModeCampaign && g.opts.startLevel > 0 && g.opts.startLevel <= LevelCount() {
		g.levelIndex = g.opts.startLevel - 1
	}

	g.loadPuzzle()
}

func (g *Game) dailyDate() time.Time {
	if g.opts.dailyDate.IsZero() {
		return time.Now()
	}
	return g.opts.dailyDate
}

// loadCatalog loads the word packs. The daily puzzle only draws from
// built-in packs so every player gets the same grid.
func (g *Game) loadCatalog() (*words.Catalog, error) {
	if g.mode == ModeDaily {
		return words.Load("")
	}
	dir := g.opts.packsDir
	if dir == "" {
		dir = g.cfg.Words.PacksDir
	}
	if dir == "" {
		dir = config.UserPacksDir()
	}
	return words.Load(dir)
}

// puzzleSpec describes the next puzzle to generate.
type puzzleSpec struct {
	category   string
	size       int
	directions puzzle.DirectionSet
	count      int
}

// nextSpec returns the puzzle parameters of the current level or round.
func (g *Game) nextSpec() puzzleSpec {
	override, err := g.opts.preset.Directions()
	hasOverride := g.opts.preset != "" && err == nil

	switch g.mode {
	case ModeEndless:
		spec := puzzleSpec{
			category:   g.opts.category,
			size:       g.progression.GridSize(g.round),
			directions: g.cfg.Directions(),
			count:      g.progression.WordCount(g.round),
		}
		if g.opts.gridSize > 0 {
			spec.size = g.opts.gridSize
		}
		if spec.category == "" {
			spec.category = g.catalog.Random(g.rng)
		}
		return spec

	case ModeDaily:
		return puzzleSpec{
			category:   g.catalog.Random(g.rng),
			size:       dailySize,
			directions: puzzle.Hard,
			count:      dailyWords,
		}

	default:
		lvl := levels[g.levelIndex]
		spec := puzzleSpec{
			category:   lvl.Category,
			size:       lvl.Size,
			directions: lvl.Directions,
			count:      lvl.Words,
		}
		if hasOverride {
			spec.directions = override
		}
		return spec
	}
}

// loadPuzzle generates the puzzle of the current level or round.
func (g *Game) loadPuzzle() {
	g.levelCleared = false
	g.levelFailed = false
	g.banked = false
	g.reported = false
	g.clearSelection()
	g.message = ""
	g.messageTicks = 0

	spec := g.nextSpec()
	list, err := g.catalog.Pick(g.rng, spec.category, spec.count, spec.size)
	if err != nil {
		g.loadErr = err
		return
	}

	opts := g.cfg.GeneratorOptions()
	if g.mode == ModeDaily {
		opts = dailyGeneratorOptions()
	}
	gen := puzzle.NewGenerator(g.rng, opts)
	p, err := gen.Generate(puzzle.Configuration{
		GridSize:   spec.size,
		Words:      list,
		Directions: spec.directions,
		Category:   spec.category,
	})
	if err != nil {
		g.loadErr = err
		return
	}

	g.sess = session.New(p, g.cfg.ScoringRules())
	g.cursor = puzzle.P(0, 0)
	g.relayout()
}

// relayout recomputes screen placement for the current puzzle.
func (g *Game) relayout() {
	if g.sess == nil {
		return
	}
	longest := 0
	for _, w := range g.sess.Words() {
		longest = max(longest, utf8.RuneCountInString(w.Word))
	}
	g.layout = computeLayout(g.rt.ScreenW, g.rt.ScreenH, g.sess.Puzzle.Size, len(g.sess.Words()), longest)
	g.tooSmall = g.layout.tooSmall
	if g.tooSmall {
		g.dragging = false
	}
}

// Resize adapts the layout to a new screen size without losing progress.
func (g *Game) Resize(w, h int) {
	g.rt.ScreenW = w
	g.rt.ScreenH = h
	g.relayout()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.Score(),
		GameOver: g.gameOver,
		Paused:   g.sess != nil && g.sess.State() == session.StatePaused,
	}
}

// Score returns banked points plus the running puzzle score.
func (g *Game) Score() int {
	if g.sess == nil || g.banked {
		return g.runScore
	}
	return g.runScore + g.sess.Score()
}

// Session exposes the current puzzle session.
func (g *Game) Session() *session.Session {
	return g.sess
}

// Err returns the error that stopped the game from building a puzzle.
func (g *Game) Err() error {
	return g.loadErr
}

// TakeResults returns finished puzzle results not yet handed out.
func (g *Game) TakeResults() []core.PuzzleResult {
	out := g.results
	g.results = nil
	return out
}

// level returns the 1-indexed campaign level, or 0 outside the campaign.
func (g *Game) level() int {
	if g.mode != ModeCampaign {
		return 0
	}
	return g.levelIndex + 1
}

// bank adds the current session score to the run.
func (g *Game) bank() {
	if !g.banked && g.sess != nil {
		g.runScore += g.sess.Score()
		g.banked = true
	}
}

// finishPuzzle records the result of a completed session and decides what
// comes next.
func (g *Game) finishPuzzle() {
	if g.reported {
		return
	}
	g.reported = true
	g.dragging = false
	g.clearSelection()
	g.results = append(g.results, g.sess.Result(g.ID(), g.level(), g.rt))

	if g.sess.Solved() {
		g.bank()
		switch g.mode {
		case ModeCampaign:
			if g.levelIndex+1 >= LevelCount() {
				g.won = true
				g.gameOver = true
			} else {
				g.levelCleared = true
			}
		case ModeEndless:
			g.levelCleared = true
		case ModeDaily:
			g.won = true
			g.gameOver = true
		}
		return
	}

	// Gave up: campaign levels can be retried, other modes end the run.
	if g.mode == ModeCampaign {
		g.levelFailed = true
		return
	}
	g.bank()
	g.gameOver = true
}

// advance moves to the next campaign level or endless round.
func (g *Game) advance() {
	if g.mode == ModeCampaign {
		g.levelIndex++
	} else {
		g.round++
	}
	g.loadPuzzle()
}

func (g *Game) clearSelection() {
	g.hasAnchor = false
}

func (g *Game) setMessage(text string, c core.Color) {
	g.message = text
	g.messageColor = c
	g.messageTicks = messageSeconds * g.rt.TickRate
}

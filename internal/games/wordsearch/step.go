package wordsearch

import (
	"fmt"

	"github.com/vovakirdan/tui-wordsearch/internal/core"
	"github.com/vovakirdan/tui-wordsearch/internal/puzzle"
	"github.com/vovakirdan/tui-wordsearch/internal/session"
)

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if g.messageTicks > 0 {
		g.messageTicks--
		if g.messageTicks == 0 {
			g.message = ""
		}
	}

	// Handle restart after the run ended
	if input.Has(core.ActionRestart) && g.gameOver {
		rt := g.rt
		if g.rng != nil {
			rt.Seed = g.rng.Int63()
		}
		g.Reset(rt)
		return core.StepResult{State: g.State()}
	}

	if g.loadErr != nil || g.sess == nil || g.gameOver || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.sess.TogglePause()
		g.dragging = false
	}
	if g.sess.State() == session.StatePaused {
		return core.StepResult{State: g.State()}
	}

	switch {
	case g.levelCleared:
		if input.Has(core.ActionNext) || input.Has(core.ActionSelect) {
			g.advance()
		}
		return core.StepResult{State: g.State()}
	case g.levelFailed:
		if input.Has(core.ActionRestart) || input.Has(core.ActionSelect) {
			g.loadPuzzle()
		}
		return core.StepResult{State: g.State()}
	}

	// Restart mid-puzzle deals a fresh grid for the same level.
	if input.Has(core.ActionRestart) {
		g.loadPuzzle()
		return core.StepResult{State: g.State()}
	}

	g.processKeys(input)
	g.processPointers(input.Pointers)

	if input.Has(core.ActionHint) {
		g.hint()
	}
	if input.Has(core.ActionGiveUp) {
		if err := g.sess.GiveUp(); err == nil {
			g.setMessage("Answers revealed", core.ColorBrightRed)
		}
	}

	g.sess.Tick()
	if g.sess.State() == session.StateCompleted {
		g.finishPuzzle()
	}

	return core.StepResult{State: g.State()}
}

// processKeys moves the cursor and anchors or commits a keyboard selection.
func (g *Game) processKeys(input core.InputFrame) {
	n := g.sess.Puzzle.Size
	switch {
	case input.Has(core.ActionUp):
		g.cursor.Row--
	case input.Has(core.ActionDown):
		g.cursor.Row++
	case input.Has(core.ActionLeft):
		g.cursor.Col--
	case input.Has(core.ActionRight):
		g.cursor.Col++
	}
	g.cursor.Row = core.Clamp(g.cursor.Row, 0, n-1)
	g.cursor.Col = core.Clamp(g.cursor.Col, 0, n-1)

	if input.Has(core.ActionCancel) {
		g.clearSelection()
		g.dragging = false
	}

	if input.Has(core.ActionSelect) {
		switch {
		case !g.hasAnchor:
			g.anchor = g.cursor
			g.hasAnchor = true
		case g.anchor == g.cursor:
			g.clearSelection()
		default:
			g.submit(g.anchor, g.cursor)
		}
	}
}

// processPointers handles mouse input. A drag from one letter to another
// submits on release; two separate clicks work too.
func (g *Game) processPointers(events []core.PointerEvent) {
	for _, ev := range events {
		p, onGrid := g.layout.cellAt(ev.X, ev.Y)

		switch ev.Kind {
		case core.PointerPress:
			if !onGrid {
				g.dragging = false
				continue
			}
			g.cursor = p
			if g.hasAnchor && !g.dragging && p != g.anchor {
				g.submit(g.anchor, p)
				continue
			}
			g.anchor = p
			g.hasAnchor = true
			g.dragging = true

		case core.PointerMotion:
			if onGrid {
				g.cursor = p
			}

		case core.PointerRelease:
			if !g.dragging {
				continue
			}
			g.dragging = false
			if onGrid {
				g.cursor = p
			}
			if g.cursor != g.anchor {
				g.submit(g.anchor, g.cursor)
			}
		}
	}
}

// submit checks the selection and reports the outcome on the message line.
func (g *Game) submit(start, end puzzle.Position) {
	g.clearSelection()
	g.dragging = false

	switch g.sess.Submit(start, end) {
	case session.OutcomeFound:
		w, _ := g.sess.LastFound()
		g.setMessage(fmt.Sprintf("Found %s!", w.Word), core.ColorBrightGreen)
	case session.OutcomeAlreadyFound:
		g.setMessage("Already found", core.ColorYellow)
	case session.OutcomeNotAWord:
		sel, _ := puzzle.NewValidator(g.sess.Puzzle).Select(g.sess.Puzzle.Grid, start, end)
		g.setMessage(fmt.Sprintf("%s is not hidden here", sel.Letters), core.ColorRed)
	case session.OutcomeInvalidPath:
		g.setMessage("Straight lines only: "+g.sess.Puzzle.Directions.Symbols(), core.ColorRed)
	}
}

func (g *Game) hint() {
	p, ok := g.sess.Hint()
	if !ok {
		g.setMessage("No hints left", core.ColorGray)
		return
	}
	g.cursor = p
	g.clearSelection()
	g.setMessage(fmt.Sprintf("A word starts here (-%d)", g.cfg.Scoring.HintPenalty), core.ColorMagenta)
}

package wordsearch

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-wordsearch/internal/core"
	"github.com/vovakirdan/tui-wordsearch/internal/puzzle"
	"github.com/vovakirdan/tui-wordsearch/internal/session"
)

const controlsHint = " ←↑→↓ move  Space mark  Esc cancel  ? hint  G give up  P pause  Q quit"

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	switch {
	case g.loadErr != nil:
		g.renderOverlay(dst, "Could not build puzzle", g.loadErr.Error())
		return
	case g.sess == nil:
		return
	case g.tooSmall:
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d, resize to continue", g.layout.minW, g.layout.minH))
		return
	}

	g.renderGrid(dst)
	g.renderWordList(dst)
	if g.message != "" {
		dst.DrawTextColored(g.layout.box.X, g.layout.msgY, g.message, g.messageColor)
	}

	switch {
	case g.won:
		g.renderOverlay(dst, "You Win!", fmt.Sprintf("Final Score: %d  R to play again", g.Score()))
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d  R to restart", g.Score()))
	case g.levelCleared:
		g.renderOverlay(dst, g.clearedTitle(), "Press N for the next puzzle")
	case g.levelFailed:
		g.renderOverlay(dst, "Answers revealed", "Press R to try a new grid")
	case g.sess.State() == session.StatePaused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) clearedTitle() string {
	if g.mode == ModeEndless {
		return fmt.Sprintf("Round %d cleared!", g.round)
	}
	return fmt.Sprintf("Level %d cleared!", g.levelIndex+1)
}

// renderHUD draws the status bar and the controls line.
func (g *Game) renderHUD(dst *core.Screen) {
	var hud string
	switch g.mode {
	case ModeEndless:
		hud = fmt.Sprintf(" %s | Round %d", g.Title(), g.round)
	case ModeDaily:
		hud = fmt.Sprintf(" %s | %s", g.Title(), DateKey(g.dailyDate()))
	default:
		hud = fmt.Sprintf(" %s | Level %d/%d", g.Title(), g.levelIndex+1, LevelCount())
		if lvl, ok := LevelAt(g.levelIndex + 1); ok {
			hud += " " + lvl.Name
		}
	}
	hud += fmt.Sprintf(" | Score: %d", g.Score())

	if g.sess != nil {
		elapsed := g.rt.TicksToDuration(g.sess.Ticks())
		hud += fmt.Sprintf(" | %s | %s %s", formatClock(elapsed), g.sess.Puzzle.Category, g.sess.Puzzle.Directions.Symbols())
	}

	dst.DrawTextColored(0, 0, hud, core.ColorHUD)
	dst.DrawTextColored(0, 2, controlsHint, core.ColorGray)
	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', core.ColorFrame)
		dst.SetColored(x, 3, '─', core.ColorFrame)
	}
}

// renderGrid draws the letters, highlighting found words, hints and the
// selection in progress.
func (g *Game) renderGrid(dst *core.Screen) {
	dst.DrawBox(g.layout.box, core.ColorFrame)

	colors := g.cellColors()
	paused := g.sess.State() == session.StatePaused
	n := g.sess.Puzzle.Size

	for row := range n {
		for col := range n {
			p := puzzle.P(row, col)
			x, y := g.layout.screenPos(p)
			r := g.sess.Puzzle.Grid.At(p)
			if paused {
				dst.SetColored(x, y, '·', core.ColorGray)
				continue
			}
			dst.SetColored(x, y, r, colors[p])
		}
	}
}

// cellColors returns the highlight of every styled cell, lowest priority
// first so later writes win.
func (g *Game) cellColors() map[puzzle.Position]core.Color {
	colors := make(map[puzzle.Position]core.Color)
	if g.sess.State() == session.StatePaused {
		return colors
	}

	gaveUp := g.sess.GaveUp()
	for _, w := range g.sess.Words() {
		if !w.Found && gaveUp {
			for _, p := range w.Positions() {
				colors[p] = core.ColorBrightRed
			}
		}
	}
	for _, w := range g.sess.Words() {
		if w.Found {
			for _, p := range w.Positions() {
				colors[p] = core.ColorFound
			}
		}
	}
	for _, w := range g.sess.Words() {
		if !w.Found && g.sess.IsHinted(w.Start) {
			colors[w.Start] = core.ColorHint
		}
	}

	if g.hasAnchor {
		colors[g.anchor] = core.ColorSelection
		for _, p := range puzzle.PositionsInPath(g.anchor, g.cursor, g.sess.Puzzle.Directions) {
			colors[p] = core.ColorSelection
		}
	}
	if g.sess.State() == session.StatePlaying {
		colors[g.cursor] = core.ColorCursor
	}
	return colors
}

// renderWordList draws the words to find beside the grid.
func (g *Game) renderWordList(dst *core.Screen) {
	x, y := g.layout.listX, g.layout.listY
	words := g.sess.Words()
	dst.DrawTextColored(x, y, fmt.Sprintf("Words %d/%d", g.sess.Found(), len(words)), core.ColorHeading)

	for i, w := range words {
		line := "  " + w.Word
		c := core.ColorWordPending
		switch {
		case w.Found:
			line = "✓ " + w.Word
			c = core.ColorWordFound
		case g.sess.GaveUp():
			c = core.ColorWordMissed
		}
		dst.DrawTextColored(x, y+2+i, line, c)
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(utf8.RuneCountInString(line1), utf8.RuneCountInString(line2)) + 4
	box := core.CenteredIn(dst.Bounds(), min(w, dst.Width()), 5)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}

// formatClock renders d as mm:ss.
func formatClock(d time.Duration) string {
	s := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}

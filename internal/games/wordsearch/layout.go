package wordsearch

import (
	"github.com/vovakirdan/tui-wordsearch/internal/core"
	"github.com/vovakirdan/tui-wordsearch/internal/puzzle"
)

const (
	hudHeight = 4
	cellW     = 2 // letter plus a space
	listGap   = 3
	minListW  = 14
)

// layout places the grid box and word list on screen.
type layout struct {
	size     int
	box      core.Rect // border around the letters
	originX  int       // screen x of column 0
	originY  int       // screen y of row 0
	listX    int
	listY    int
	msgY     int
	minW     int
	minH     int
	tooSmall bool
}

func computeLayout(screenW, screenH, size, wordCount, longest int) layout {
	boxW := cellW*size - 1 + 4
	boxH := size + 2
	listW := max(minListW, longest+4)
	listH := wordCount + 2
	contentH := max(boxH, listH)

	l := layout{
		size: size,
		minW: boxW + listGap + listW,
		minH: hudHeight + contentH + 2,
	}
	if screenW < l.minW || screenH < l.minH {
		l.tooSmall = true
		return l
	}

	left := (screenW - l.minW) / 2
	top := hudHeight + max(0, (screenH-hudHeight-2-contentH)/2)

	l.box = core.NewRect(left, top, boxW, boxH)
	l.originX = left + 2
	l.originY = top + 1
	l.listX = left + boxW + listGap
	l.listY = top
	l.msgY = top + contentH
	return l
}

// cellAt maps a screen coordinate to a grid cell. The space after a letter
// belongs to that letter.
func (l layout) cellAt(x, y int) (puzzle.Position, bool) {
	if l.tooSmall {
		return puzzle.Position{}, false
	}
	dx := x - l.originX
	row := y - l.originY
	if dx < 0 || row < 0 {
		return puzzle.Position{}, false
	}
	p := puzzle.P(row, dx/cellW)
	if !p.InBounds(l.size) {
		return puzzle.Position{}, false
	}
	return p, true
}

// screenPos returns where the letter of p is drawn.
func (l layout) screenPos(p puzzle.Position) (x, y int) {
	return l.originX + cellW*p.Col, l.originY + p.Row
}

package puzzle

import "unicode/utf8"

// WordData is one word committed to the grid.
type WordData struct {
	Word      string // uppercase canonical form
	Start     Position
	Direction Direction
	Found     bool
}

// Len returns the number of letters in the word.
func (w WordData) Len() int {
	return utf8.RuneCountInString(w.Word)
}

// Positions returns every cell the word occupies, from first to last letter.
func (w WordData) Positions() []Position {
	n := w.Len()
	out := make([]Position, n)
	for i := range n {
		out[i] = w.Start.Add(w.Direction, i)
	}
	return out
}

// End returns the position of the last letter.
func (w WordData) End() Position {
	return w.Start.Add(w.Direction, w.Len()-1)
}

// Covers reports whether p is one of the word's cells.
func (w WordData) Covers(p Position) bool {
	for _, q := range w.Positions() {
		if q == p {
			return true
		}
	}
	return false
}

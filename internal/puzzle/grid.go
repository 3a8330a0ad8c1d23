// Package puzzle holds the word-search core: grid generation and
// selection path validation. It is UI-agnostic and has no I/O; randomness
// comes only from the *rand.Rand handed to the Generator.
package puzzle

import "strings"

// Grid is a square board of single uppercase letters.
// Cells are stored in row-major order: index = row*size + col.
type Grid struct {
	size  int
	cells []rune
}

// NewGrid creates an n×n grid with every cell empty (zero rune).
func NewGrid(n int) *Grid {
	return &Grid{
		size:  n,
		cells: make([]rune, n*n),
	}
}

// GridFromRows builds a grid from equal-length rows of letters.
// Returns nil if the rows do not form a square.
func GridFromRows(rows ...string) *Grid {
	n := len(rows)
	g := NewGrid(n)
	for r, row := range rows {
		letters := []rune(row)
		if len(letters) != n {
			return nil
		}
		for c, ch := range letters {
			g.cells[r*n+c] = ch
		}
	}
	return g
}

// Size returns the grid dimension N.
func (g *Grid) Size() int {
	return g.size
}

// InBounds returns true if p is inside the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.InBounds(g.size)
}

// At returns the letter at p, or 0 if p is out of bounds or unfilled.
func (g *Grid) At(p Position) rune {
	if !g.InBounds(p) {
		return 0
	}
	return g.cells[p.Row*g.size+p.Col]
}

// set writes a letter; only the generator mutates grids.
func (g *Grid) set(p Position, r rune) {
	if g.InBounds(p) {
		g.cells[p.Row*g.size+p.Col] = r
	}
}

// Read returns the letters at the given positions, in order.
// Out-of-bounds positions yield an empty string.
func (g *Grid) Read(positions []Position) string {
	var b strings.Builder
	for _, p := range positions {
		if !g.InBounds(p) {
			return ""
		}
		b.WriteRune(g.At(p))
	}
	return b.String()
}

// Rows returns each row as a string of letters.
func (g *Grid) Rows() []string {
	rows := make([]string, g.size)
	for r := 0; r < g.size; r++ {
		rows[r] = string(g.cells[r*g.size : (r+1)*g.size])
	}
	return rows
}

// String renders the grid with letters separated by spaces.
func (g *Grid) String() string {
	var b strings.Builder
	for r := 0; r < g.size; r++ {
		if r > 0 {
			b.WriteRune('\n')
		}
		for c := 0; c < g.size; c++ {
			if c > 0 {
				b.WriteRune(' ')
			}
			ch := g.cells[r*g.size+c]
			if ch == 0 {
				ch = '.'
			}
			b.WriteRune(ch)
		}
	}
	return b.String()
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]rune, len(g.cells))
	copy(cells, g.cells)
	return &Grid{size: g.size, cells: cells}
}

// Equal returns true if both grids have the same size and letters.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.size != other.size {
		return false
	}
	for i, ch := range g.cells {
		if other.cells[i] != ch {
			return false
		}
	}
	return true
}

package puzzle

import "fmt"

// Position identifies a grid cell by row and column.
// Row increases downward, Col increases to the right.
type Position struct {
	Row int
	Col int
}

// P is a convenience constructor for Position.
func P(row, col int) Position {
	return Position{Row: row, Col: col}
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Add returns the position m steps away in direction d.
func (p Position) Add(d Direction, m int) Position {
	return Position{Row: p.Row + m*d.DY, Col: p.Col + m*d.DX}
}

// Step returns the neighbouring position in direction d.
func (p Position) Step(d Direction) Position {
	return p.Add(d, 1)
}

// InBounds returns true if the position lies inside an n×n grid.
func (p Position) InBounds(n int) bool {
	return p.Row >= 0 && p.Row < n && p.Col >= 0 && p.Col < n
}

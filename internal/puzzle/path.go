package puzzle

// ResolvePath finds the allowed direction connecting start to end.
// steps is the number of moves from start to end (≥ 1 when ok).
func ResolvePath(start, end Position, allowed DirectionSet) (d Direction, steps int, ok bool) {
	d, steps, ok = DirectionFromDelta(end.Row-start.Row, end.Col-start.Col)
	if !ok || !allowed.Has(d) {
		return Direction{}, 0, false
	}
	return d, steps, true
}

// IsValidPath reports whether start and end lie on one straight line along
// an allowed direction. A zero-length selection is never valid.
func IsValidPath(start, end Position, allowed DirectionSet) bool {
	_, _, ok := ResolvePath(start, end, allowed)
	return ok
}

// PositionsInPath returns every position from start to end inclusive, or
// nil when the path is not valid.
func PositionsInPath(start, end Position, allowed DirectionSet) []Position {
	d, steps, ok := ResolvePath(start, end, allowed)
	if !ok {
		return nil
	}
	out := make([]Position, steps+1)
	for i := range out {
		out[i] = start.Add(d, i)
	}
	return out
}

// Selection is a validated straight-line pick on a grid.
type Selection struct {
	Start     Position
	End       Position
	Direction Direction
	Positions []Position
	Letters   string
}

// Validator checks user selections for one puzzle.
type Validator struct {
	Directions DirectionSet
	Size       int
}

// NewValidator returns a validator for the puzzle's directions and size.
func NewValidator(p *Puzzle) Validator {
	return Validator{Directions: p.Directions, Size: p.Size}
}

// IsValidPath applies IsValidPath with the validator's directions.
func (v Validator) IsValidPath(start, end Position) bool {
	return IsValidPath(start, end, v.Directions)
}

// PositionsInPath applies PositionsInPath with the validator's directions.
func (v Validator) PositionsInPath(start, end Position) []Position {
	return PositionsInPath(start, end, v.Directions)
}

// Select validates a selection and reads its letters off the grid.
// Endpoints outside the grid are rejected.
func (v Validator) Select(grid *Grid, start, end Position) (Selection, bool) {
	if !start.InBounds(v.Size) || !end.InBounds(v.Size) {
		return Selection{}, false
	}
	d, _, ok := ResolvePath(start, end, v.Directions)
	if !ok {
		return Selection{}, false
	}
	positions := v.PositionsInPath(start, end)
	return Selection{
		Start:     start,
		End:       end,
		Direction: d,
		Positions: positions,
		Letters:   grid.Read(positions),
	}, true
}

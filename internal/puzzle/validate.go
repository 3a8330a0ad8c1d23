package puzzle

import "fmt"

// ValidationError describes a broken puzzle invariant.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Verify checks that every placement is in bounds, uses an allowed
// direction, reads back its own word from the grid, and that the grid has
// no empty cell.
func (p *Puzzle) Verify() error {
	if p.Grid == nil || p.Grid.Size() != p.Size {
		return ValidationError{Code: "GRID_SIZE", Message: "grid does not match puzzle size"}
	}

	for _, w := range p.Words {
		if !p.Directions.Has(w.Direction) {
			return ValidationError{
				Code:    "DIRECTION",
				Message: fmt.Sprintf("%s placed %s, which is not allowed", w.Word, w.Direction),
			}
		}
		for _, pos := range w.Positions() {
			if !pos.InBounds(p.Size) {
				return ValidationError{
					Code:    "BOUNDS",
					Message: fmt.Sprintf("%s leaves the grid at %s", w.Word, pos),
				}
			}
		}
		if got := p.Grid.Read(w.Positions()); got != w.Word {
			return ValidationError{
				Code:    "MISMATCH",
				Message: fmt.Sprintf("%s reads back as %q", w.Word, got),
			}
		}
	}

	for r := range p.Size {
		for c := range p.Size {
			if p.Grid.At(P(r, c)) == 0 {
				return ValidationError{
					Code:    "UNFILLED",
					Message: fmt.Sprintf("cell %s is empty", P(r, c)),
				}
			}
		}
	}
	return nil
}

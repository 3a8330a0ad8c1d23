package puzzle

import (
	"fmt"
	"math/bits"
	"strings"
)

// Direction is a unit step on the grid. DX steps columns, DY steps rows.
// Only the eight canonical values below are valid.
type Direction struct {
	DX int
	DY int
}

// Canonical directions.
var (
	Right     = Direction{DX: 1, DY: 0}
	Left      = Direction{DX: -1, DY: 0}
	Up        = Direction{DX: 0, DY: -1}
	Down      = Direction{DX: 0, DY: 1}
	DownRight = Direction{DX: 1, DY: 1}
	DownLeft  = Direction{DX: -1, DY: 1}
	UpRight   = Direction{DX: 1, DY: -1}
	UpLeft    = Direction{DX: -1, DY: -1}
)

// canonical lists the eight directions in their stable order.
// The index of a direction doubles as its bit in a DirectionSet.
var canonical = [8]Direction{Right, Down, DownRight, DownLeft, Left, Up, UpRight, UpLeft}

// AllDirections returns the eight canonical directions in stable order.
func AllDirections() []Direction {
	out := make([]Direction, len(canonical))
	copy(out, canonical[:])
	return out
}

// Valid returns true if d is one of the eight canonical directions.
func (d Direction) Valid() bool {
	return d.index() >= 0
}

func (d Direction) index() int {
	for i, c := range canonical {
		if c == d {
			return i
		}
	}
	return -1
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// String returns the name of the direction.
func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Left:
		return "left"
	case Up:
		return "up"
	case Down:
		return "down"
	case DownRight:
		return "down-right"
	case DownLeft:
		return "down-left"
	case UpRight:
		return "up-right"
	case UpLeft:
		return "up-left"
	default:
		return fmt.Sprintf("(%d,%d)", d.DX, d.DY)
	}
}

// Symbol returns the arrow glyph shown next to a direction in the UI.
func (d Direction) Symbol() string {
	switch d {
	case Right:
		return "→"
	case Left:
		return "←"
	case Up:
		return "↑"
	case Down:
		return "↓"
	case DownRight:
		return "↘"
	case DownLeft:
		return "↙"
	case UpRight:
		return "↗"
	case UpLeft:
		return "↖"
	default:
		return "?"
	}
}

// DirectionFromDelta returns the canonical direction d and the step count
// m ≥ 1 such that (drow, dcol) == m·(d.DY, d.DX).
//
// The sign of each component fixes d uniquely, and the delta must be
// horizontal, vertical or exactly diagonal. A zero delta has no direction.
func DirectionFromDelta(drow, dcol int) (Direction, int, bool) {
	if drow == 0 && dcol == 0 {
		return Direction{}, 0, false
	}
	ar, ac := abs(drow), abs(dcol)
	if ar != 0 && ac != 0 && ar != ac {
		return Direction{}, 0, false
	}
	d := Direction{DX: sign(dcol), DY: sign(drow)}
	return d, max(ar, ac), true
}

// DirectionSet is an immutable set of canonical directions.
type DirectionSet uint8

// Difficulty presets.
const (
	VeryEasy DirectionSet = 1 << 0                             // right
	Easy     DirectionSet = VeryEasy | 1<<1                    // + down
	Medium   DirectionSet = Easy | 1<<2 | 1<<3                 // + down-right, down-left
	Hard     DirectionSet = Medium | 1<<4 | 1<<5 | 1<<6 | 1<<7 // all eight
	All                   = Hard
)

// NewDirectionSet builds a set from the given directions.
// Non-canonical directions are ignored.
func NewDirectionSet(dirs ...Direction) DirectionSet {
	var s DirectionSet
	for _, d := range dirs {
		if i := d.index(); i >= 0 {
			s |= 1 << i
		}
	}
	return s
}

// Has reports whether d is in the set.
func (s DirectionSet) Has(d Direction) bool {
	i := d.index()
	return i >= 0 && s&(1<<i) != 0
}

// With returns a copy of the set with d added.
func (s DirectionSet) With(d Direction) DirectionSet {
	return s | NewDirectionSet(d)
}

// Len returns the number of directions in the set.
func (s DirectionSet) Len() int {
	return bits.OnesCount8(uint8(s))
}

// Empty reports whether the set holds no direction.
func (s DirectionSet) Empty() bool {
	return s == 0
}

// Directions returns the members in canonical order.
func (s DirectionSet) Directions() []Direction {
	out := make([]Direction, 0, s.Len())
	for i, d := range canonical {
		if s&(1<<i) != 0 {
			out = append(out, d)
		}
	}
	return out
}

// ClosedUnderOpposite reports whether every member's opposite is also a member.
func (s DirectionSet) ClosedUnderOpposite() bool {
	for _, d := range s.Directions() {
		if !s.Has(d.Opposite()) {
			return false
		}
	}
	return true
}

// Symbols returns the arrow glyphs of all members, in canonical order.
func (s DirectionSet) Symbols() string {
	var b strings.Builder
	for _, d := range s.Directions() {
		b.WriteString(d.Symbol())
	}
	return b.String()
}

// Name returns the preset name for s, or a list of members for custom sets.
func (s DirectionSet) Name() string {
	switch s {
	case VeryEasy:
		return "very-easy"
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	}
	names := make([]string, 0, s.Len())
	for _, d := range s.Directions() {
		names = append(names, d.String())
	}
	return strings.Join(names, ",")
}

// ParsePreset maps a preset name to its direction set.
func ParsePreset(name string) (DirectionSet, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "very-easy", "veryeasy", "very_easy":
		return VeryEasy, nil
	case "easy":
		return Easy, nil
	case "medium", "normal":
		return Medium, nil
	case "hard", "all":
		return Hard, nil
	default:
		return 0, fmt.Errorf("puzzle: unknown direction preset %q", name)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

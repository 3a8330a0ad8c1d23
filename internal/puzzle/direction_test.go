package puzzle

import "testing"

func TestPresetMembership(t *testing.T) {
	tests := []struct {
		name   string
		set    DirectionSet
		has    []Direction
		hasnt  []Direction
		length int
	}{
		{"very easy", VeryEasy, []Direction{Right}, []Direction{Down, Left}, 1},
		{"easy", Easy, []Direction{Right, Down}, []Direction{DownRight, Left}, 2},
		{"medium", Medium, []Direction{Right, Down, DownRight, DownLeft}, []Direction{Up, Left, UpRight, UpLeft}, 4},
		{"hard", Hard, AllDirections(), nil, 8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.set.Len() != tc.length {
				t.Errorf("Len() = %d, want %d", tc.set.Len(), tc.length)
			}
			for _, d := range tc.has {
				if !tc.set.Has(d) {
					t.Errorf("set should contain %s", d)
				}
			}
			for _, d := range tc.hasnt {
				if tc.set.Has(d) {
					t.Errorf("set should not contain %s", d)
				}
			}
		})
	}
}

func TestPresetsNested(t *testing.T) {
	if VeryEasy&^Easy != 0 || Easy&^Medium != 0 || Medium&^Hard != 0 {
		t.Error("each preset should include the easier ones")
	}
	if All != Hard {
		t.Error("All should equal Hard")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in   string
		want DirectionSet
	}{
		{"very-easy", VeryEasy},
		{"veryEasy", VeryEasy},
		{"EASY", Easy},
		{" medium ", Medium},
		{"hard", Hard},
		{"all", Hard},
	}
	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if err != nil {
			t.Errorf("ParsePreset(%q) error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %s, want %s", tc.in, got.Name(), tc.want.Name())
		}
	}

	if _, err := ParsePreset("impossible"); err == nil {
		t.Error("ParsePreset should reject unknown names")
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := [][2]Direction{
		{Right, Left},
		{Up, Down},
		{DownRight, UpLeft},
		{DownLeft, UpRight},
	}
	for _, p := range pairs {
		if p[0].Opposite() != p[1] || p[1].Opposite() != p[0] {
			t.Errorf("%s and %s should be opposites", p[0], p[1])
		}
	}
}

func TestDirectionSymbolsUnique(t *testing.T) {
	seen := make(map[string]Direction)
	for _, d := range AllDirections() {
		sym := d.Symbol()
		if sym == "?" {
			t.Errorf("%s has no symbol", d)
		}
		if other, dup := seen[sym]; dup {
			t.Errorf("%s and %s share symbol %s", d, other, sym)
		}
		seen[sym] = d
	}
}

func TestDirectionFromDelta(t *testing.T) {
	tests := []struct {
		name       string
		drow, dcol int
		want       Direction
		steps      int
		ok         bool
	}{
		{"right", 0, 3, Right, 3, true},
		{"left", 0, -2, Left, 2, true},
		{"down", 4, 0, Down, 4, true},
		{"up", -1, 0, Up, 1, true},
		{"down-right", 2, 2, DownRight, 2, true},
		{"down-left", 3, -3, DownLeft, 3, true},
		{"up-right", -5, 5, UpRight, 5, true},
		{"up-left", -1, -1, UpLeft, 1, true},
		{"zero", 0, 0, Direction{}, 0, false},
		{"knight move", 1, 2, Direction{}, 0, false},
		{"skewed", -3, 2, Direction{}, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, steps, ok := DirectionFromDelta(tc.drow, tc.dcol)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if d != tc.want || steps != tc.steps {
				t.Errorf("got (%s, %d), want (%s, %d)", d, steps, tc.want, tc.steps)
			}
		})
	}
}

func TestDirectionSetHelpers(t *testing.T) {
	s := NewDirectionSet(Right, Left, Direction{DX: 2, DY: 0})
	if s.Len() != 2 {
		t.Errorf("non-canonical directions should be ignored, Len() = %d", s.Len())
	}
	if !s.ClosedUnderOpposite() {
		t.Error("{right, left} is closed under opposite")
	}
	if VeryEasy.ClosedUnderOpposite() {
		t.Error("{right} is not closed under opposite")
	}
	if !Hard.ClosedUnderOpposite() {
		t.Error("hard preset is closed under opposite")
	}
	if got := Easy.With(DownRight); got.Len() != 3 || !got.Has(DownRight) {
		t.Errorf("With() did not add direction, got %s", got.Name())
	}
	if DirectionSet(0).Empty() != true {
		t.Error("zero set should be empty")
	}
	if Easy.Symbols() != "→↓" {
		t.Errorf("Easy.Symbols() = %q", Easy.Symbols())
	}
	if NewDirectionSet(Up, Left).Name() != "left,up" {
		t.Errorf("custom set name = %q", NewDirectionSet(Up, Left).Name())
	}
}

func TestPositionAdd(t *testing.T) {
	p := P(2, 1)
	if got := p.Add(Right, 2); got != P(2, 3) {
		t.Errorf("Add(Right, 2) = %s, want (2,3)", got)
	}
	if got := p.Add(Down, 1); got != P(3, 1) {
		t.Errorf("Add(Down, 1) = %s, want (3,1)", got)
	}
	if got := p.Step(UpLeft); got != P(1, 0) {
		t.Errorf("Step(UpLeft) = %s, want (1,0)", got)
	}
	if P(0, 4).InBounds(4) {
		t.Error("(0,4) is outside a 4x4 grid")
	}
	if !P(3, 3).InBounds(4) {
		t.Error("(3,3) is inside a 4x4 grid")
	}
}

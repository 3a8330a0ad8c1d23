package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(20, 6)

	if s.Width() != 20 || s.Height() != 6 {
		t.Errorf("dimensions = %dx%d, expected 20x6", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(3, 4, 'Q', ColorFound)
	if c := s.GetCell(3, 4); c.Rune != 'Q' || c.Color != ColorFound {
		t.Errorf("GetCell(3, 4) = %+v", c)
	}

	// Out of bounds is silent
	s.SetColored(-1, 0, 'A', ColorRed)
	s.SetColored(0, 10, 'A', ColorRed)
	if s.Get(-1, 0) != ' ' || s.Get(0, 10) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(12, 3)

	end := s.DrawTextColored(2, 1, "WORD→", ColorCyan)
	if end != 7 {
		t.Errorf("DrawTextColored returned %d, expected 7", end)
	}
	if !strings.HasPrefix(s.Row(1), "  WORD→") {
		t.Errorf("row 1 = %q", s.Row(1))
	}
	if s.GetCell(6, 1).Color != ColorCyan {
		t.Error("multi-byte rune should keep the text colour")
	}

	// clipped at the right edge
	s.DrawText(10, 0, "ABCD")
	if s.Get(10, 0) != 'A' || s.Get(11, 0) != 'B' {
		t.Error("text should be clipped at the right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)
	s.DrawTextCentered(1, "ABC", ColorDefault)

	if s.Row(1) != "    ABC    " {
		t.Errorf("centred row = %q", s.Row(1))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(8, 6)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorGray)

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner at %v = %q, expected %q", pos, got, want)
		}
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("box edges not drawn")
	}
	if s.Get(3, 2) != ' ' {
		t.Error("box interior should stay blank")
	}
}

func TestScreenFillAndClear(t *testing.T) {
	s := NewScreen(5, 5)
	s.FillRect(NewRect(1, 1, 2, 2), '#', ColorRed)

	if s.Get(1, 1) != '#' || s.Get(2, 2) != '#' || s.Get(3, 3) != ' ' {
		t.Error("FillRect painted the wrong area")
	}

	s.Clear()
	if s.String() != strings.Repeat(strings.Repeat(" ", 5)+"\n", 4)+strings.Repeat(" ", 5) {
		t.Error("Clear should blank every cell")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Resize(4, 2)

	if s.Width() != 4 || s.Height() != 2 {
		t.Errorf("after resize dimensions = %dx%d", s.Width(), s.Height())
	}
	if len(s.Row(1)) != 4 {
		t.Errorf("row length = %d, expected 4", len(s.Row(1)))
	}
	if s.Row(-1) != "    " {
		t.Errorf("out of bounds row = %q", s.Row(-1))
	}
}

func TestRectHelpers(t *testing.T) {
	r := NewRect(2, 3, 10, 6)

	if r.Right() != 12 || r.Bottom() != 9 {
		t.Errorf("edges = %d,%d", r.Right(), r.Bottom())
	}
	if !r.Contains(2, 3) || r.Contains(12, 3) || r.Contains(2, 9) {
		t.Error("Contains should be inclusive at the origin and exclusive at the far edges")
	}

	in := r.Inset(1)
	if in != NewRect(3, 4, 8, 4) {
		t.Errorf("Inset(1) = %+v", in)
	}
	if NewRect(0, 0, 1, 1).Inset(2).W != 0 {
		t.Error("Inset should not produce negative sizes")
	}

	c := CenteredIn(NewRect(0, 0, 20, 10), 6, 4)
	if c.X != 7 || c.Y != 3 {
		t.Errorf("CenteredIn = %+v", c)
	}
	if big := CenteredIn(NewRect(0, 0, 4, 4), 10, 10); big.X != 0 || big.Y != 0 {
		t.Errorf("oversized content should anchor at the origin, got %+v", big)
	}
}

func TestScreenClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 9, 5},
		{-1, 0, 9, 0},
		{12, 0, 9, 9},
	}
	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("new frame should be empty")
	}

	f.Set(ActionHint)
	f.AddPointer(PointerEvent{Kind: PointerPress, X: 4, Y: 2})
	if !f.Has(ActionHint) || f.Has(ActionPause) {
		t.Error("Has() mismatch")
	}
	if len(f.Pointers) != 1 || f.Pointers[0].X != 4 {
		t.Errorf("pointers = %+v", f.Pointers)
	}

	f.Clear()
	if !f.Empty() {
		t.Error("frame should be empty after Clear")
	}

	var zero InputFrame
	if zero.Has(ActionSelect) {
		t.Error("zero frame has no actions")
	}
	zero.Set(ActionSelect)
	if !zero.Has(ActionSelect) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestTicksToDuration(t *testing.T) {
	cfg := RuntimeConfig{TickRate: 30}
	if got := cfg.TicksToDuration(90); got.Seconds() != 3 {
		t.Errorf("90 ticks at 30fps = %v, expected 3s", got)
	}
	if got := (RuntimeConfig{}).TicksToDuration(30); got.Seconds() != 1 {
		t.Errorf("zero tick rate should default to 30, got %v", got)
	}
}

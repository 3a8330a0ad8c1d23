package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-wordsearch/internal/core"
)

type stubGame struct {
	id    string
	state core.GameState
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) { g.state = core.GameState{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return g.state }
func (g *stubGame) Description() string { return "a test game" }
func (g *stubGame) Step(core.InputFrame) core.StepResult {
	g.state.Score++
	return core.StepResult{State: g.state}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_a", func() Game { return &stubGame{id: "stub_a"} })

	if !Exists("stub_a") {
		t.Fatal("stub_a should be registered")
	}

	info, ok := Info("stub_a")
	if !ok || info.Title != "Stub stub_a" || info.Description != "a test game" {
		t.Errorf("Info = %+v, %v", info, ok)
	}

	g1, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	g2, _ := Create("stub_a")
	g1.Step(core.NewInputFrame())
	if g2.State().Score != 0 {
		t.Error("Create should return independent instances")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("error = %v, expected ErrUnknownGame", err)
	}
	if Exists("no_such_game") {
		t.Error("unknown game should not exist")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
}

func TestListSorted(t *testing.T) {
	Register("stub_z", func() Game { return &stubGame{id: "stub_z"} })
	Register("stub_m", func() Game { return &stubGame{id: "stub_m"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List not sorted: %s >= %s", list[i-1].ID, list[i].ID)
		}
	}
}

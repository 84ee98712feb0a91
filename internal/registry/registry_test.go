package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

type stubGame struct {
	level string
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }
func (g *stubGame) LevelID() string { return g.level }

var errBroken = errors.New("broken")

func init() {
	Register("stub-test", "Stub", func(opts Options) (Game, error) {
		return &stubGame{level: opts.LevelID}, nil
	})
	Register("broken-test", "Broken", func(Options) (Game, error) {
		return nil, errBroken
	})
}

func TestCreatePassesOptions(t *testing.T) {
	g, err := Create("stub-test", Options{LevelID: "box"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	lv, ok := g.(Leveled)
	if !ok {
		t.Fatal("game does not implement Leveled")
	}
	if lv.LevelID() != "box" {
		t.Errorf("LevelID() = %q, expected box", lv.LevelID())
	}
}

func TestCreateErrors(t *testing.T) {
	if _, err := Create("nope", Options{}); err == nil {
		t.Error("expected error for unknown game")
	}
	if _, err := Create("broken-test", Options{}); !errors.Is(err, errBroken) {
		t.Errorf("Create() error = %v, expected to wrap %v", err, errBroken)
	}
}

func TestListSortedWithTitles(t *testing.T) {
	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
	found := false
	for _, info := range list {
		if info.ID == "stub-test" {
			found = true
			if info.Title != "Stub" {
				t.Errorf("Title = %q, expected Stub", info.Title)
			}
		}
	}
	if !found {
		t.Error("stub-test not listed")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("stub-test", "Again", func(Options) (Game, error) { return nil, nil })
}

func TestExists(t *testing.T) {
	if !Exists("stub-test") {
		t.Error("Exists(stub-test) = false")
	}
	if Exists("missing") {
		t.Error("Exists(missing) = true")
	}
}

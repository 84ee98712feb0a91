package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionPause) {
		t.Fatal("empty frame should not have actions")
	}

	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Has(ActionPause) should be true after Set")
	}
	if len(f.Moves) != 0 {
		t.Errorf("non-directional action should not queue a move, got %v", f.Moves)
	}
}

func TestInputFrameKeepsMoveOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionUp)
	f.Set(ActionLeft)

	expected := []Direction{DirLeft, DirUp, DirLeft}
	if len(f.Moves) != len(expected) {
		t.Fatalf("Moves = %v, expected %v", f.Moves, expected)
	}
	for i := range expected {
		if f.Moves[i] != expected[i] {
			t.Errorf("Moves[%d] = %v, expected %v", i, f.Moves[i], expected[i])
		}
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)
	clone := f.Clone()

	f.Clear()
	if f.Has(ActionRight) || len(f.Moves) != 0 {
		t.Error("Clear should drop actions and moves")
	}
	if !clone.Has(ActionRight) || len(clone.Moves) != 1 {
		t.Error("Clone should be independent of the original")
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("zero frame should report no actions")
	}
	f.Set(ActionDown)
	if !f.Has(ActionDown) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionDirection(t *testing.T) {
	if ActionUp.Direction() != DirUp || ActionRight.Direction() != DirRight {
		t.Error("directional actions should map to directions")
	}
	if ActionPause.Direction() != DirNone {
		t.Error("ActionPause should not map to a direction")
	}
	if ActionLeft.String() != "Left" {
		t.Errorf("ActionLeft.String() = %q", ActionLeft.String())
	}
}

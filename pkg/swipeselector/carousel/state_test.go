package carousel

import (
	"path/filepath"
	"testing"
)

func TestSaveRestoreRoundTrip(t *testing.T) {
	for position := range pizzaSizes() {
		original, _ := newTestSelector(t, pizzaSizes()...)
		if err := original.SelectItemAt(position, false); err != nil {
			t.Fatal(err)
		}
		state := original.SaveState()

		restored, _ := newTestSelector(t, pizzaSizes()...)
		calls := 0
		restored.SetOnItemSelectedListener(func(Item) { calls++ })

		if err := restored.RestoreState(state); err != nil {
			t.Fatalf("RestoreState(%+v) error = %v", state, err)
		}
		if restored.Position() != position {
			t.Errorf("Position() = %d, want %d", restored.Position(), position)
		}
		if calls != 0 {
			t.Errorf("listener fired %d times during restore", calls)
		}
		if !restored.Indicators().IsActive(position) {
			t.Errorf("indicator %d not active after restore", position)
		}
		if left := restored.Affordance(SideLeft); left.Visibility() == Transitioning {
			t.Error("left affordance fading after silent restore")
		}
		if got, want := restored.Affordance(SideRight).Enabled(), position != len(pizzaSizes())-1; got != want {
			t.Errorf("right enabled = %v, want %v", got, want)
		}
	}
}

func TestRestoreStateOutOfRange(t *testing.T) {
	s, _ := newTestSelector(t, pizzaSizes()[:2]...)
	if err := s.RestoreState(SavedState{CurrentPosition: 4}); !IsOutOfRange(err) {
		t.Errorf("RestoreState() error = %v, want ErrOutOfRange", err)
	}

	empty, _ := newTestSelector(t)
	if err := empty.RestoreState(SavedState{}); err != nil {
		t.Errorf("RestoreState(zero) on empty selector error = %v", err)
	}
}

func TestStateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "size.toml")

	if err := WriteStateFile(path, SavedState{CurrentPosition: 3}); err != nil {
		t.Fatalf("WriteStateFile() error = %v", err)
	}
	state, err := ReadStateFile(path)
	if err != nil {
		t.Fatalf("ReadStateFile() error = %v", err)
	}
	if state.CurrentPosition != 3 {
		t.Errorf("CurrentPosition = %d, want 3", state.CurrentPosition)
	}

	if _, err := ReadStateFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("ReadStateFile(missing) error = nil")
	}
}

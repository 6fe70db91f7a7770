package carousel

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// SavedState is the part of a selector that survives a host teardown.
type SavedState struct {
	CurrentPosition int `toml:"current_position"`
}

// SaveState snapshots the current position.
func (s *Selector) SaveState() SavedState {
	if s.store.count() == 0 {
		return SavedState{}
	}
	return SavedState{CurrentPosition: s.position}
}

// RestoreState moves to the saved position without animation and without
// notifying the listener. Restoring position 0 into an empty selector is a
// no-op.
func (s *Selector) RestoreState(state SavedState) error {
	count := s.store.count()
	if count == 0 && state.CurrentPosition == 0 {
		return nil
	}
	if state.CurrentPosition < 0 || state.CurrentPosition >= count {
		return fmt.Errorf("%w: saved position %d with %d items", ErrOutOfRange, state.CurrentPosition, count)
	}

	s.position = state.CurrentPosition
	s.strip.setActive(count, s.position)
	s.refreshAffordances(false)
	s.pager.JumpTo(s.position, false)

	s.logger.Debug("Selector state restored", "position", s.position)
	return nil
}

// WriteStateFile stores state as TOML, creating parent directories.
func WriteStateFile(path string, state SavedState) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create state file: %w", err)
	}

	if err := toml.NewEncoder(f).Encode(state); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode state: %w", err)
	}
	return f.Close()
}

// ReadStateFile loads state written by WriteStateFile.
func ReadStateFile(path string) (SavedState, error) {
	var state SavedState
	if _, err := toml.DecodeFile(path, &state); err != nil {
		return SavedState{}, fmt.Errorf("failed to read state: %w", err)
	}
	return state, nil
}

package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/BrandonKowalski/swipeselector/pkg/swipeselector/carousel"
)

// Run shows the selector full screen and blocks until the user confirms or
// backs out. Backing out returns ErrCancelled.
func Run(title string, items []carousel.Item, opts Options) (*Result, error) {
	model, err := New(title, items, opts)
	if err != nil {
		return nil, err
	}

	final, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	if err != nil {
		return nil, fmt.Errorf("run selector: %w", err)
	}

	m := final.(Model)
	switch {
	case m.Err() != nil:
		return nil, m.Err()
	case m.Cancelled() || m.Result() == nil:
		return nil, ErrCancelled
	}
	return m.Result(), nil
}

package swipeselector

import "github.com/BrandonKowalski/swipeselector/pkg/swipeselector/carousel"

// SwipeAction is how the user left a SwipeSelect screen.
type SwipeAction int

const (
	SwipeActionConfirmed SwipeAction = iota // User confirmed the current item (A or Start)
	SwipeActionTriggered                    // User pressed the configured action button
)

func (a SwipeAction) String() string {
	if a == SwipeActionTriggered {
		return "triggered"
	}
	return "confirmed"
}

// SwipeSelectResult is returned when the user leaves SwipeSelect without
// cancelling.
type SwipeSelectResult struct {
	Item   carousel.Item       // Item on screen when the user left
	Index  int                 // Position of Item
	Action SwipeAction         // How the user left
	State  carousel.SavedState // Pass back as InitialState to restore the position
}

// HasSelection reports whether Item is a real choice rather than the
// unselected sentinel.
func (r *SwipeSelectResult) HasSelection() bool {
	return r != nil && r.Item.IsReal()
}

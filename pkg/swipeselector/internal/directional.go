package internal

import (
	"time"

	"github.com/BrandonKowalski/swipeselector/pkg/swipeselector/constants"
)

// Direction is a horizontal paging direction.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return ""
	}
}

// DirectionalInput tracks a held left or right button and produces repeat
// steps while it stays down. Callers pass the frame time so repeats follow
// the same clock as the page animations.
type DirectionalInput struct {
	left, right    bool
	since          time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
}

// NewDirectionalInput creates a DirectionalInput with default timing.
func NewDirectionalInput() DirectionalInput {
	return NewDirectionalInputWithTiming(constants.DefaultRepeatDelay, constants.DefaultRepeatInterval)
}

// NewDirectionalInputWithTiming creates a DirectionalInput with custom timing.
func NewDirectionalInputWithTiming(delay, interval time.Duration) DirectionalInput {
	return DirectionalInput{
		repeatDelay:    delay,
		repeatInterval: interval,
	}
}

// SetHeld records a press or release. It returns true if the button was
// horizontal.
func (d *DirectionalInput) SetHeld(button constants.VirtualButton, held bool, now time.Time) bool {
	switch button {
	case constants.VirtualButtonLeft:
		d.left = held
	case constants.VirtualButtonRight:
		d.right = held
	default:
		return false
	}
	d.since = now
	d.hasRepeated = false
	return true
}

// HeldDirection returns the held direction, left winning over right.
func (d *DirectionalInput) HeldDirection() Direction {
	switch {
	case d.left:
		return DirectionLeft
	case d.right:
		return DirectionRight
	default:
		return DirectionNone
	}
}

// Update returns the direction to step in at now, or DirectionNone. The
// first repeat waits repeatDelay after the press, later ones repeatInterval.
func (d *DirectionalInput) Update(now time.Time) Direction {
	dir := d.HeldDirection()
	if dir == DirectionNone {
		d.hasRepeated = false
		return DirectionNone
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}

	if now.Sub(d.since) >= threshold {
		d.since = now
		d.hasRepeated = true
		return dir
	}
	return DirectionNone
}

// Reset clears held state.
func (d *DirectionalInput) Reset() {
	d.left, d.right = false, false
	d.hasRepeated = false
}

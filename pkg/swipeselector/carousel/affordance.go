package carousel

import "time"

// Visibility is the display state of a navigation affordance.
type Visibility int

const (
	Hidden        Visibility = iota // Fully transparent, not clickable
	Visible                         // Fully opaque, clickable
	Transitioning                   // Fading toward its target state
)

func (v Visibility) String() string {
	switch v {
	case Hidden:
		return "hidden"
	case Visible:
		return "visible"
	case Transitioning:
		return "transitioning"
	default:
		return "unknown"
	}
}

// Affordance is a previous/next control. Its enabled state follows the
// selector position; its alpha fades whenever it is shown or hidden.
type Affordance struct {
	side    Side
	state   Visibility
	shown   bool // target of the current or last transition
	enabled bool
	alpha   tween
	fade    time.Duration
}

func newAffordance(side Side, fade time.Duration) *Affordance {
	return &Affordance{side: side, state: Hidden, fade: fade}
}

// Side returns which control this is.
func (a *Affordance) Side() Side {
	return a.side
}

// Enabled reports whether a click on the affordance is honoured.
func (a *Affordance) Enabled() bool {
	return a.enabled
}

// Visibility returns the current display state.
func (a *Affordance) Visibility() Visibility {
	return a.state
}

// Shown reports the state the affordance is at or heading to.
func (a *Affordance) Shown() bool {
	return a.shown
}

// Alpha returns the opacity to draw with, in [0, 1].
func (a *Affordance) Alpha() float64 {
	return a.alpha.value
}

// show moves the affordance toward shown or hidden. The fade only starts on
// an actual change of target; repeated calls with the same target are
// ignored. With animate false the new state applies immediately.
func (a *Affordance) show(shown bool, animate bool, now time.Time) bool {
	a.enabled = shown

	if shown == a.shown {
		if a.state == Transitioning && !animate {
			a.alpha.set(a.targetAlpha())
			a.state = a.restingState()
		}
		return false
	}

	a.shown = shown
	target := a.targetAlpha()

	if !animate || a.fade <= 0 {
		a.alpha.set(target)
		a.state = a.restingState()
		return true
	}

	a.alpha.animate(a.alpha.value, target, now, a.fade, LinearCurve)
	a.state = Transitioning
	return true
}

// update advances the fade. It returns true while the affordance needs
// further frames.
func (a *Affordance) update(now time.Time) bool {
	if a.state != Transitioning {
		return false
	}
	if a.alpha.update(now) {
		a.state = a.restingState()
		return false
	}
	return true
}

func (a *Affordance) targetAlpha() float64 {
	if a.shown {
		return 1
	}
	return 0
}

func (a *Affordance) restingState() Visibility {
	if a.shown {
		return Visible
	}
	return Hidden
}

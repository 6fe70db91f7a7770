package carousel

import (
	"math"
	"time"
)

// Curve maps linear progress in [0, 1] to eased progress.
type Curve func(t float64) float64

// LinearCurve applies no easing.
func LinearCurve(t float64) float64 {
	return t
}

// EaseOut starts quickly and decelerates. Equivalent to CSS ease-out.
var EaseOut = CubicBezier(0.0, 0.0, 0.2, 1.0)

// CubicBezier returns an easing curve matching CSS cubic-bezier(x1, y1, x2, y2).
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		for range 8 {
			x := bezierSample(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return bezierSample(y1, y2, clampUnit(u))
			}
			dx := bezierDerivative(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for range 12 {
			x := bezierSample(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}
		return bezierSample(y1, y2, u)
	}
}

func bezierSample(a, b, t float64) float64 {
	return ((1-3*b+3*a)*t+(3*b-6*a))*t*t + 3*a*t
}

func bezierDerivative(a, b, t float64) float64 {
	return 3*(1-3*b+3*a)*t*t + 2*(3*b-6*a)*t + 3*a
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// tween interpolates a float from one value to another over a duration.
// It is driven by explicit timestamps so hosts and tests control time.
type tween struct {
	from     float64
	to       float64
	start    time.Time
	duration time.Duration
	curve    Curve
	value    float64
	running  bool
}

func (tw *tween) animate(from, to float64, now time.Time, duration time.Duration, curve Curve) {
	if duration <= 0 {
		tw.set(to)
		return
	}
	if curve == nil {
		curve = LinearCurve
	}
	tw.from = from
	tw.to = to
	tw.start = now
	tw.duration = duration
	tw.curve = curve
	tw.value = from
	tw.running = true
}

// set jumps to v and stops any running animation.
func (tw *tween) set(v float64) {
	tw.value = v
	tw.to = v
	tw.running = false
}

// update advances to now and reports whether the animation finished during
// this call.
func (tw *tween) update(now time.Time) (finished bool) {
	if !tw.running {
		return false
	}

	progress := float64(now.Sub(tw.start)) / float64(tw.duration)
	if progress >= 1 {
		tw.value = tw.to
		tw.running = false
		return true
	}
	if progress < 0 {
		progress = 0
	}

	tw.value = tw.from + (tw.to-tw.from)*tw.curve(progress)
	return false
}

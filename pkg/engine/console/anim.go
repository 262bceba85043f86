package console

import (
	"math"
	"time"
)

// SlideDuration is how long the show/hide slide takes.
const SlideDuration = 300 * time.Millisecond

// anim tracks the show/hide slide. Visibility is derived from the clock
// every time it is read, so the animation stays smooth regardless of the
// host frame rate.
type anim struct {
	shown bool
	start time.Time
}

// easeOutQuad decelerates toward the endpoint.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}

// easeOutQuadInv is the inverse of easeOutQuad on [0,1].
func easeOutQuadInv(v float64) float64 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 1
	}
	return 1 - math.Sqrt(1-v)
}

// Toggle flips the target state. A toggle mid-transition resumes from the
// current interpolated visibility rather than restarting: the start
// timestamp is backdated by the elapsed time the new transition would have
// needed to reach that same visibility, so the offset is continuous at the
// toggle instant.
func (a *anim) Toggle(now time.Time) {
	v := a.Visibility(now)
	a.shown = !a.shown
	eased := v
	if !a.shown {
		eased = 1 - v
	}
	elapsed := time.Duration(easeOutQuadInv(eased) * float64(SlideDuration))
	a.start = now.Add(-elapsed)
}

// Visibility returns the interpolated panel visibility in [0,1].
// 0 = fully hidden, 1 = fully shown.
func (a *anim) Visibility(now time.Time) float64 {
	t := float64(now.Sub(a.start)) / float64(SlideDuration)
	if t >= 1 {
		if a.shown {
			return 1
		}
		return 0
	}
	if t < 0 {
		t = 0
	}
	e := easeOutQuad(t)
	if a.shown {
		return e
	}
	return 1 - e
}

// Hidden reports whether the console is fully hidden, meaning the hide
// transition has completely elapsed and rendering can be skipped.
func (a *anim) Hidden(now time.Time) bool {
	return !a.shown && a.Visibility(now) <= 0
}

// Shown reports whether the console is targeting (or at) the open state.
func (a *anim) Shown() bool {
	return a.shown
}

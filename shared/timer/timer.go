// Package timer provides the countdown used by invincibility, knockback and
// the other timed effects. Durations are in seconds.
package timer

// Timer counts down to zero. The zero value is an inactive timer.
type Timer struct {
	duration  float64
	remaining float64
}

// Start (re)arms the timer. A non-positive duration leaves it inactive.
func (t *Timer) Start(d float64) {
	if d <= 0 {
		t.duration, t.remaining = 0, 0
		return
	}
	t.duration = d
	t.remaining = d
}

// Stop deactivates the timer without reporting an expiry.
func (t *Timer) Stop() {
	t.remaining = 0
}

func (t *Timer) Active() bool {
	return t.remaining > 0
}

func (t *Timer) Remaining() float64 {
	return t.remaining
}

func (t *Timer) Duration() float64 {
	return t.duration
}

// Tick advances the timer by dt and reports whether it expired on this call.
// Expiry is reported exactly once; ticking an inactive timer does nothing.
func (t *Timer) Tick(dt float64) bool {
	if t.remaining <= 0 {
		return false
	}
	t.remaining -= dt
	if t.remaining > 0 {
		return false
	}
	t.remaining = 0
	return true
}

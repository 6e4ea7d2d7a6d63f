package system

// Timer is a repeating interval timer driven by the simulation clock.
// It never reads wall time, so a paused or stopped timer simply does not
// accumulate.
type Timer struct {
	Interval float64 // Seconds between fires
	elapsed  float64
	paused   bool
	stopped  bool
}

// NewTimer creates a running timer with the given interval in seconds
func NewTimer(interval float64) *Timer {
	return &Timer{Interval: interval}
}

// Advance accumulates dt and returns how many times the timer fired
func (t *Timer) Advance(dt float64) int {
	if t.paused || t.stopped || t.Interval <= 0 || dt <= 0 {
		return 0
	}

	t.elapsed += dt
	fires := 0
	for t.elapsed >= t.Interval {
		t.elapsed -= t.Interval
		fires++
	}
	return fires
}

// SetInterval changes the cadence. Progress toward the next fire is kept
// but clamped so the new interval is never overshot.
func (t *Timer) SetInterval(interval float64) {
	t.Interval = interval
	if t.elapsed > interval {
		t.elapsed = interval
	}
}

// Reset restarts the timer from zero and clears any stop/pause
func (t *Timer) Reset(interval float64) {
	t.Interval = interval
	t.elapsed = 0
	t.paused = false
	t.stopped = false
}

// Pause suspends accumulation
func (t *Timer) Pause() { t.paused = true }

// Resume continues accumulation after Pause
func (t *Timer) Resume() { t.paused = false }

// Stop cancels the timer until the next Reset
func (t *Timer) Stop() {
	t.stopped = true
	t.elapsed = 0
}

// Running reports whether the timer is accumulating
func (t *Timer) Running() bool {
	return !t.paused && !t.stopped
}

// Progress returns the fraction of the current interval elapsed
func (t *Timer) Progress() float64 {
	if t.Interval <= 0 {
		return 0
	}
	return t.elapsed / t.Interval
}

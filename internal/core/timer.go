package core

import "time"

// FixedStep helps run scene updates at a steady ticks-per-second rate that is
// independent of the window refresh rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Step returns the duration of a single tick.
func (f *FixedStep) Step() time.Duration { return f.step }

// Reset discards accumulated time so the next call starts a fresh interval.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}

// Due reports how many ticks elapsed since the previous call, capped at max so
// a stalled window does not trigger a long catch-up burst.
func (f *FixedStep) Due(max int) int {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	n := 0
	for f.accumulator >= f.step && n < max {
		f.accumulator -= f.step
		n++
	}
	if f.accumulator >= f.step {
		f.accumulator = 0
	}
	return n
}

// ShouldStep reports whether the scene should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	return f.Due(1) == 1
}

package ui

import "time"

// FixedStep paces generations at a steady interval from inside a frame loop.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep that fires once per interval.
// The first call to ShouldStep fires immediately.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetInterval(interval)
	fs.accumulator = fs.step
	return fs
}

// SetInterval changes the step length. Non-positive intervals keep the current one.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		if f.step > 0 {
			return
		}
		interval = 200 * time.Millisecond
	}
	f.step = interval
}

// Interval returns the current step length
func (f *FixedStep) Interval() time.Duration {
	return f.step
}

// Reset forgets accumulated time so the next step is a full interval away
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}

// ShouldStep reports whether a generation is due. At most one step fires per call.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		// a stalled frame loop must not replay a backlog of generations
		f.accumulator = min(f.accumulator, f.step)
		return true
	}
	return false
}

package core

import "time"

// DefaultInterval is the tick cadence used when none is configured.
const DefaultInterval = 100 * time.Millisecond

// FixedStep helps run simulation updates at a steady rate independent of the
// host frame rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// NewFixedInterval constructs a FixedStep that fires once per interval. The
// first call to ShouldStep fires immediately.
func NewFixedInterval(d time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetInterval(d)
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

// SetInterval changes the tick period directly.
func (f *FixedStep) SetInterval(d time.Duration) {
	if d <= 0 {
		d = DefaultInterval
	}
	f.step = d
}

// Interval reports the current tick period.
func (f *FixedStep) Interval() time.Duration { return f.step }

// SetClock swaps the time source; tests use it to drive the accumulator.
func (f *FixedStep) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	f.now = now
	f.last = time.Time{}
}

// Pause drops the time accumulated so far so that resuming does not burst
// through missed ticks.
func (f *FixedStep) Pause() {
	f.last = time.Time{}
	f.accumulator = 0
}

// ShouldStep reports whether the simulation should advance by one tick.
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
		return true
	}
	return false
}

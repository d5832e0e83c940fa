package clock

import "time"

// Clock is the time source used for line AddedAt stamps, event
// timestamps and order placement times. Production code uses RealClock;
// tests pin time with a FixedClock so timestamps are deterministic.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system time.
type RealClock struct{}

// NewRealClock creates a new RealClock.
func NewRealClock() Clock {
	return &RealClock{}
}

// Now returns the current system time.
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock reports a pinned instant that only moves when Advance is
// called. Not safe for concurrent use; advance it from the test
// goroutine only.
type FixedClock struct {
	at time.Time
}

// NewFixedClock pins the clock at the given instant.
func NewFixedClock(at time.Time) *FixedClock {
	return &FixedClock{at: at}
}

// Now returns the pinned instant.
func (c *FixedClock) Now() time.Time {
	return c.at
}

// Advance moves the pinned instant forward by d.
func (c *FixedClock) Advance(d time.Duration) {
	c.at = c.at.Add(d)
}

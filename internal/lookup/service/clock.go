package service

import "time"

// Clock supplies the reference date for age and century decisions.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns At. Used when PNR_REFERENCE_DATE is set and in tests.
type FixedClock struct {
	At time.Time
}

// Now returns At.
func (c FixedClock) Now() time.Time { return c.At }

// ClockFor returns a FixedClock for a non-zero ref, else SystemClock.
func ClockFor(ref time.Time) Clock {
	if ref.IsZero() {
		return SystemClock{}
	}
	return FixedClock{At: ref}
}

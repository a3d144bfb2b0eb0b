package calendar

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// Age and future-date rules read "today" through it and never call time.Now directly.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Today returns the local calendar day of the clock.
func Today(c Clock) Date {
	return FromTime(c.Now())
}

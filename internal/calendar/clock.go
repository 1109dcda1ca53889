package calendar

import "time"

// Clock supplies the wall-clock time used for date defaulting.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the local system time.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Today returns the clock's current local calendar date as YYYY-MM-DD.
// A nil clock falls back to SystemClock.
func Today(c Clock) string {
	if c == nil {
		c = SystemClock{}
	}
	return c.Now().Local().Format(Layout)
}

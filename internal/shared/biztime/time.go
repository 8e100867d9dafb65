// Package biztime centralises clock access and the conversion between
// domain time values and the unix-millisecond columns used for storage.
// All values are UTC.
package biztime

import "time"

// nowFunc is swapped in tests that need a fixed clock.
var nowFunc = func() time.Time { return time.Now().UTC() }

// NowUTC returns current time in UTC, truncated to milliseconds so that a
// value survives a round trip through storage unchanged.
func NowUTC() time.Time {
	return nowFunc().Truncate(time.Millisecond)
}

// SetClock overrides the clock and returns a function restoring the previous one.
func SetClock(fn func() time.Time) (restore func()) {
	prev := nowFunc
	nowFunc = fn
	return func() { nowFunc = prev }
}

// FromMillis converts a storage timestamp into a UTC time.
func FromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// FromMillisPtr converts an optional storage timestamp.
func FromMillisPtr(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}
	t := FromMillis(*ms)
	return &t
}

// ToMillisPtr converts an optional time into an optional storage timestamp.
func ToMillisPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}

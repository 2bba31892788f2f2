// Package notification decides when course subscribers are told about
// updates and fans the resulting jobs out onto the task queue.
package notification

import "time"

// Debouncer suppresses repeated lesson-level notification cycles within
// a cooldown window. Timestamps are stored and compared in UTC; there is
// no timezone offset correction.
type Debouncer struct {
	window time.Duration
	now    func() time.Time
}

// NewDebouncer creates a debounce policy with the given cooldown window.
func NewDebouncer(window time.Duration) *Debouncer {
	return &Debouncer{
		window: window,
		now:    time.Now,
	}
}

// NewDebouncerWithClock creates a debounce policy with an injected clock,
// for tests.
func NewDebouncerWithClock(window time.Duration, now func() time.Time) *Debouncer {
	return &Debouncer{
		window: window,
		now:    now,
	}
}

// ShouldNotify reports whether a lesson-level change should trigger a
// course-level notification cycle. A course that has never notified
// (nil lastUpdated) always fires.
func (d *Debouncer) ShouldNotify(lastUpdated *time.Time) bool {
	if lastUpdated == nil {
		return true
	}
	return d.now().UTC().Sub(lastUpdated.UTC()) > d.window
}

// Stamp returns the timestamp to record for a fired cycle.
func (d *Debouncer) Stamp() time.Time {
	return d.now().UTC()
}

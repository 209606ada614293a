package core

import (
	"time"
)

// Timestamp represents a point in time with timezone awareness
type Timestamp time.Time

// NewTimestamp creates a new timestamp from time.Time
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp(t)
}

// Now returns the current timestamp
func Now() Timestamp {
	return Timestamp(time.Now())
}

// Time returns the underlying time.Time
func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

// IsZero checks if the timestamp is zero
func (t Timestamp) IsZero() bool {
	return time.Time(t).IsZero()
}

// Before returns true if t is before u
func (t Timestamp) Before(u Timestamp) bool {
	return time.Time(t).Before(time.Time(u))
}

// After returns true if t is after u
func (t Timestamp) After(u Timestamp) bool {
	return time.Time(t).After(time.Time(u))
}

// Elapsed is the wall-clock duration of a kernel evaluation or
// ingestion run.
type Elapsed time.Duration

// NewElapsed creates an elapsed duration
func NewElapsed(d time.Duration) Elapsed { return Elapsed(d) }

// Duration returns the underlying time.Duration
func (e Elapsed) Duration() time.Duration { return time.Duration(e) }

// Microseconds reports the elapsed time in whole microseconds, the unit
// used by timing output and benchmark reports.
func (e Elapsed) Microseconds() uint64 {
	us := e.Duration().Microseconds()
	if us < 0 {
		return 0
	}
	return uint64(us)
}

// JSON marshaling for Timestamp
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return time.Time(t).MarshalJSON()
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var tm time.Time
	if err := tm.UnmarshalJSON(data); err != nil {
		return err
	}
	*t = Timestamp(tm)
	return nil
}

func (e Elapsed) String() string { return e.Duration().String() }

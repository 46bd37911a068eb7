package clock

import "time"

type Clock interface {
	Now() time.Time
}

const Date = "2006-01-02"
const TimeHM = "15:04"
const DateTime = "2006-01-02 15:04:05"
const Display = "2006-01-02 15:04:05 MST"

type SystemClock struct{}

func NewSystemClock() Clock {
	return &SystemClock{}
}

func (r *SystemClock) Now() time.Time {
	return time.Now().UTC()
}

type FixedClock struct {
	now time.Time
}

// NewFixedClock returns a clock pinned to a single instant, for tests.
func NewFixedClock(t time.Time) Clock {
	return &FixedClock{now: t.UTC()}
}

func (r *FixedClock) Now() time.Time {
	return r.now
}

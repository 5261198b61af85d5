package profile

import "time"

// Clock supplies the timestamps used by the no-argument Tick form. Go's
// time.Time carries a monotonic reading, so intervals are immune to wall
// clock adjustments. Swap it out for a fake in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

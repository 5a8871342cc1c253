package flow

import "time"

// Clock abstracts wall-clock reads so sessions can be tested with a
// deterministic time source.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the real-time clock.
func SystemClock() Clock { return systemClock{} }

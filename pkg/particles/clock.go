package particles

import "time"

// Clock supplies the current time to emitters, groups and spawned
// particles. The default is the wall clock; tests inject a manual
// clock to drive deterministic elapsed times.
type Clock interface {
	Now() time.Time
}

type wallClock struct{}

func (wallClock) Now() time.Time { return time.Now() }

// SystemClock returns the wall-clock time source used by default.
func SystemClock() Clock { return wallClock{} }

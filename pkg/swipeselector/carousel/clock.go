package carousel

import "time"

// Clock provides time for fades and page slides. Hosts normally use
// SystemClock; tests inject a fake to step animations deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

package service

import "time"

// Clock schedules delayed callbacks. The preview cache takes one so tests can
// advance time by hand.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a scheduled callback that can be stopped before it fires
type Timer interface {
	Stop() bool
}

// SystemClock is the wall-clock Clock
type SystemClock struct{}

// AfterFunc calls f in its own goroutine after d
func (SystemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

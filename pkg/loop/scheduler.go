package loop

import "time"

// Scheduler runs a callback once after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Handle
}

// Handle is a scheduled callback.
type Handle interface {
	// Stop prevents the callback from running. It returns true if the call
	// stopped the callback, false if it already ran or was already stopped.
	Stop() bool
}

// SchedulerFunc adapts a function to the Scheduler interface.
type SchedulerFunc func(d time.Duration, fn func()) Handle

// AfterFunc implements Scheduler.
func (f SchedulerFunc) AfterFunc(d time.Duration, fn func()) Handle {
	return f(d, fn)
}

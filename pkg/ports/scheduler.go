package ports

import "time"

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop cancels the callback. It reports whether the call stopped the
	// timer, false meaning it had already fired or been stopped.
	Stop() bool
}

// Scheduler runs callbacks after a delay. The machine owns every timer it
// schedules and cancels them on Destroy.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

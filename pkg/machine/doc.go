// Package machine implements the toast lifecycle.
//
// A Machine is the only writer of its *domain.Snapshot. Items move through
// absent -> live -> exiting -> removed: Create and Update replace live items
// in place with a fresh instance id, Dismiss flags an item as exiting and
// schedules its removal after domain.ExitDuration, Clear removes items
// immediately and Destroy cancels every outstanding timer.
//
// Every operation runs synchronously and produces at most one store update.
// The only asynchronous work is timer callbacks, which are invalidated by
// Destroy before they can touch the state.
package machine

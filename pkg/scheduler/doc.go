// Package scheduler provides ports.Scheduler implementations: Realtime for
// production and Manual, a virtual clock for deterministic tests.
package scheduler

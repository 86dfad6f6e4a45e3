package scheduler

import (
	"time"

	"github.com/aretw0/fluix/pkg/ports"
)

// Realtime schedules callbacks on the Go runtime timer wheel.
type Realtime struct{}

// NewRealtime returns a scheduler backed by time.AfterFunc.
func NewRealtime() Realtime { return Realtime{} }

// AfterFunc runs fn in its own goroutine once d has elapsed.
func (Realtime) AfterFunc(d time.Duration, fn func()) ports.Timer {
	return time.AfterFunc(d, fn)
}

var _ ports.Scheduler = Realtime{}

package scheduler

import (
	"sort"
	"sync"
	"time"

	"github.com/aretw0/fluix/pkg/ports"
)

// Manual is a virtual-time scheduler. Nothing fires until Advance moves the
// clock past a callback's deadline; callbacks then run on the goroutine
// calling Advance, in deadline order.
type Manual struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	pending []*manualTimer
}

type manualTimer struct {
	owner    *Manual
	deadline time.Duration
	seq      int
	fn       func()
	stopped  bool
	fired    bool
}

// NewManual returns a manual scheduler at virtual time zero.
func NewManual() *Manual {
	return &Manual{}
}

// AfterFunc schedules fn to run once the virtual clock reaches now+d.
func (m *Manual) AfterFunc(d time.Duration, fn func()) ports.Timer {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	t := &manualTimer{owner: m, deadline: m.now + d, seq: m.seq, fn: fn}
	m.pending = append(m.pending, t)
	return t
}

// Stop cancels the timer if it has not fired yet.
func (t *manualTimer) Stop() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()

	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Advance moves the virtual clock forward by d, firing every callback whose
// deadline is reached. Callbacks scheduled while advancing fire too when
// their deadline falls inside the window.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	for {
		t := m.next(target)
		if t == nil {
			break
		}
		t.fn()
	}

	m.mu.Lock()
	m.now = target
	m.mu.Unlock()
}

// next pops the earliest live timer due at or before target and moves the
// clock to its deadline.
func (m *Manual) next(target time.Duration) *manualTimer {
	m.mu.Lock()
	defer m.mu.Unlock()

	live := m.pending[:0]
	for _, t := range m.pending {
		if !t.stopped && !t.fired {
			live = append(live, t)
		}
	}
	m.pending = live

	sort.SliceStable(m.pending, func(i, j int) bool {
		if m.pending[i].deadline != m.pending[j].deadline {
			return m.pending[i].deadline < m.pending[j].deadline
		}
		return m.pending[i].seq < m.pending[j].seq
	})

	if len(m.pending) == 0 || m.pending[0].deadline > target {
		return nil
	}
	t := m.pending[0]
	m.pending = m.pending[1:]
	t.fired = true
	m.now = t.deadline
	return t
}

// Now returns the virtual time elapsed since the scheduler was created.
func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Pending returns the number of timers that have neither fired nor been stopped.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, t := range m.pending {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

var _ ports.Scheduler = (*Manual)(nil)

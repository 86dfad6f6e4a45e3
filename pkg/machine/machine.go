package machine

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/aretw0/fluix/internal/logging"
	"github.com/aretw0/fluix/pkg/domain"
	"github.com/aretw0/fluix/pkg/ports"
	"github.com/aretw0/fluix/pkg/scheduler"
	"github.com/aretw0/fluix/pkg/store"
)

type timerKind int

const (
	exitTimer timerKind = iota
	dismissTimer
)

// timerKey identifies a scheduled callback by its role and the InstanceID it
// belongs to.
type timerKey struct {
	kind       timerKind
	instanceID string
}

// timerEntry is the registration of one scheduled callback. A callback only
// acts when its entry is still the one registered under its key.
type timerEntry struct {
	timer ports.Timer
}

// Machine owns one toast list and its timers.
type Machine struct {
	store     *store.Store[*domain.Snapshot]
	initial   domain.Snapshot
	scheduler ports.Scheduler
	logger    *slog.Logger
	hooks     domain.LifecycleHooks

	newInstanceID func() string
	autoDismiss   bool
	seq           atomic.Uint64

	timersMu sync.Mutex
	timers   map[timerKey]*timerEntry
	// generation is bumped by Destroy. Timers requested under an older
	// generation are never registered.
	generation uint64
}

// New creates a machine with an empty toast list positioned top-right.
func New(opts ...Option) *Machine {
	m := &Machine{
		initial: domain.Snapshot{
			Config: domain.Config{
				Position: domain.Defaults.Position,
				Layout:   domain.Defaults.Layout,
			},
		},
		scheduler: scheduler.NewRealtime(),
		logger:    logging.NewNop(),
		timers:    make(map[timerKey]*timerEntry),
	}
	m.newInstanceID = m.defaultInstanceID
	for _, opt := range opts {
		opt(m)
	}
	initial := m.initial
	m.store = store.New(&initial)
	return m
}

// defaultInstanceID combines a per-machine counter, the wall clock and a
// random suffix so ids stay distinct across restarts.
func (m *Machine) defaultInstanceID() string {
	n := m.seq.Add(1)
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	return fmt.Sprintf("%d-%s-%s", n, ts, uuid.NewString()[:8])
}

// Store exposes the underlying observable store.
func (m *Machine) Store() *store.Store[*domain.Snapshot] { return m.store }

// Snapshot returns the current state. Callers must not mutate it.
func (m *Machine) Snapshot() *domain.Snapshot { return m.store.Snapshot() }

// Subscribe registers a change listener. See store.Store.Subscribe.
func (m *Machine) Subscribe(listener func()) func() { return m.store.Subscribe(listener) }

// Create adds a toast, or replaces the live toast with the same id in place,
// and returns the resolved id. An item still exiting under that id is left
// alone and keeps its own removal timer.
func (m *Machine) Create(opts domain.Options) string {
	id := opts.ID
	if id == "" {
		id = domain.Defaults.ID
	}

	var item, old domain.Item
	var gen uint64
	replaced := false
	m.store.Update(func(prev *domain.Snapshot) *domain.Snapshot {
		gen = m.currentGeneration()
		idx := liveIndex(prev.Toasts, id)
		var fallback domain.Position
		if idx >= 0 {
			old = prev.Toasts[idx]
			fallback = old.Position
			replaced = true
		}
		item = m.build(opts, id, fallback, prev.Config)

		toasts := make([]domain.Item, len(prev.Toasts), len(prev.Toasts)+1)
		copy(toasts, prev.Toasts)
		if idx >= 0 {
			toasts[idx] = item
		} else {
			toasts = append(toasts, item)
		}
		return &domain.Snapshot{Toasts: toasts, Config: prev.Config}
	})

	if replaced {
		m.cancel(timerKey{dismissTimer, old.InstanceID})
	}
	m.scheduleAutoDismiss(gen, item)

	m.logger.Debug("toast created", "id", id, "instance_id", item.InstanceID, "state", item.State, "replaced", replaced)
	m.emit(m.hooks.OnCreate, &domain.ToastEvent{
		Type:       domain.EventCreate,
		ID:         id,
		InstanceID: item.InstanceID,
		State:      item.State,
		Position:   item.Position,
		Replaced:   replaced,
	})
	return id
}

// Update re-resolves the live toast with the given id from opts. It does
// nothing when no live toast has that id, which covers toasts the user
// already dismissed.
func (m *Machine) Update(id string, opts domain.Options) {
	var item, old domain.Item
	var gen uint64
	found := false
	m.store.Update(func(prev *domain.Snapshot) *domain.Snapshot {
		idx := liveIndex(prev.Toasts, id)
		if idx < 0 {
			return prev
		}
		gen = m.currentGeneration()
		found = true
		old = prev.Toasts[idx]
		item = m.build(opts, id, old.Position, prev.Config)

		toasts := make([]domain.Item, len(prev.Toasts))
		copy(toasts, prev.Toasts)
		toasts[idx] = item
		return &domain.Snapshot{Toasts: toasts, Config: prev.Config}
	})
	if !found {
		return
	}

	m.cancel(timerKey{dismissTimer, old.InstanceID})
	m.scheduleAutoDismiss(gen, item)

	m.logger.Debug("toast updated", "id", id, "instance_id", item.InstanceID, "state", item.State)
	m.emit(m.hooks.OnUpdate, &domain.ToastEvent{
		Type:       domain.EventUpdate,
		ID:         id,
		InstanceID: item.InstanceID,
		State:      item.State,
		Position:   item.Position,
	})
}

// Dismiss flags the live toast with the given id as exiting and removes it
// after domain.ExitDuration. Unknown or already exiting ids are ignored.
func (m *Machine) Dismiss(id string) {
	m.dismissWhere(func(t domain.Item) bool { return t.ID == id }, nil)
}

// dismissWhere flags the first live toast matching match. A non-nil guard
// runs under the store lock first; the dismissal is dropped when it fails.
func (m *Machine) dismissWhere(match func(domain.Item) bool, guard func() bool) {
	var item domain.Item
	var gen uint64
	found := false
	m.store.Update(func(prev *domain.Snapshot) *domain.Snapshot {
		if guard != nil && !guard() {
			return prev
		}
		gen = m.currentGeneration()
		idx := -1
		for i, t := range prev.Toasts {
			if !t.Exiting && match(t) {
				idx = i
				break
			}
		}
		if idx < 0 {
			return prev
		}
		found = true
		item = prev.Toasts[idx]
		item.Exiting = true

		toasts := make([]domain.Item, len(prev.Toasts))
		copy(toasts, prev.Toasts)
		toasts[idx] = item
		return &domain.Snapshot{Toasts: toasts, Config: prev.Config}
	})
	if !found {
		return
	}

	m.cancel(timerKey{dismissTimer, item.InstanceID})
	instanceID := item.InstanceID
	m.schedule(gen, timerKey{exitTimer, instanceID}, domain.ExitDuration, func(e *timerEntry) {
		m.remove(instanceID, e)
	})

	m.logger.Debug("toast dismissed", "id", item.ID, "instance_id", item.InstanceID)
	m.emit(m.hooks.OnDismiss, &domain.ToastEvent{
		Type:       domain.EventDismiss,
		ID:         item.ID,
		InstanceID: item.InstanceID,
		State:      item.State,
		Position:   item.Position,
	})
}

// remove drops the exiting instance once its exit delay has elapsed.
func (m *Machine) remove(instanceID string, e *timerEntry) {
	var item domain.Item
	found := false
	m.store.Update(func(prev *domain.Snapshot) *domain.Snapshot {
		if !m.release(timerKey{exitTimer, instanceID}, e) {
			return prev
		}
		toasts := make([]domain.Item, 0, len(prev.Toasts))
		for _, t := range prev.Toasts {
			if t.Exiting && t.InstanceID == instanceID {
				item, found = t, true
				continue
			}
			toasts = append(toasts, t)
		}
		if !found {
			return prev
		}
		return &domain.Snapshot{Toasts: toasts, Config: prev.Config}
	})
	if !found {
		return
	}

	m.logger.Debug("toast removed", "id", item.ID, "instance_id", instanceID)
	m.emit(m.hooks.OnRemove, &domain.ToastEvent{
		Type:       domain.EventRemove,
		ID:         item.ID,
		InstanceID: instanceID,
		State:      item.State,
		Position:   item.Position,
	})
}

// Clear removes every toast immediately, skipping the exit phase. With a
// position, only toasts anchored there are removed.
func (m *Machine) Clear(position ...domain.Position) {
	var removed []domain.Item
	m.store.Update(func(prev *domain.Snapshot) *domain.Snapshot {
		keep := make([]domain.Item, 0, len(prev.Toasts))
		for _, t := range prev.Toasts {
			if len(position) == 0 || t.Position == position[0] {
				removed = append(removed, t)
				continue
			}
			keep = append(keep, t)
		}
		if len(removed) == 0 {
			return prev
		}
		return &domain.Snapshot{Toasts: keep, Config: prev.Config}
	})
	if len(removed) == 0 {
		return
	}

	for _, t := range removed {
		m.cancel(timerKey{exitTimer, t.InstanceID})
		m.cancel(timerKey{dismissTimer, t.InstanceID})
	}

	event := &domain.ToastEvent{Type: domain.EventClear, Removed: len(removed)}
	if len(position) > 0 {
		event.Position = position[0]
	}
	m.logger.Debug("toasts cleared", "position", event.Position, "removed", len(removed))
	m.emit(m.hooks.OnClear, event)
}

// Configure merges the non-zero fields of patch into the configuration.
// Items already in the list keep their resolved fields.
func (m *Machine) Configure(patch domain.Config) {
	m.store.Update(func(prev *domain.Snapshot) *domain.Snapshot {
		next := prev.Config.Merge(patch)
		if next == prev.Config {
			return prev
		}
		return &domain.Snapshot{Toasts: prev.Toasts, Config: next}
	})
}

// Destroy cancels every outstanding timer. Callbacks already in flight find
// their registration gone and leave the state untouched, and operations
// racing with Destroy register no new timer. The emitted state is kept;
// Destroy is safe to call any number of times.
func (m *Machine) Destroy() {
	m.timersMu.Lock()
	timers := m.timers
	m.timers = make(map[timerKey]*timerEntry)
	m.generation++
	m.timersMu.Unlock()

	for _, e := range timers {
		e.timer.Stop()
	}
	if len(timers) > 0 {
		m.logger.Debug("machine destroyed", "cancelled_timers", len(timers))
	}
}

// Pending returns the number of scheduled, not yet fired timers.
func (m *Machine) Pending() int {
	m.timersMu.Lock()
	defer m.timersMu.Unlock()
	return len(m.timers)
}

// scheduleAutoDismiss arms the auto-dismiss of item. The callback releases
// its registration under the store lock, so a Destroy that already ran
// leaves the toast untouched; a replaced toast no longer matches.
func (m *Machine) scheduleAutoDismiss(gen uint64, item domain.Item) {
	if !m.autoDismiss || item.IsPersistent() {
		return
	}
	key := timerKey{dismissTimer, item.InstanceID}
	m.schedule(gen, key, item.Duration, func(e *timerEntry) {
		m.dismissWhere(
			func(t domain.Item) bool { return t.InstanceID == key.instanceID },
			func() bool { return m.release(key, e) },
		)
	})
}

func (m *Machine) currentGeneration() uint64 {
	m.timersMu.Lock()
	defer m.timersMu.Unlock()
	return m.generation
}

// schedule registers fn under key, replacing any previous registration. The
// entry is published before the timer can fire, so fn always finds it unless
// it was cancelled. Nothing is registered when Destroy ran after gen was read.
func (m *Machine) schedule(gen uint64, key timerKey, d time.Duration, fn func(*timerEntry)) {
	m.timersMu.Lock()
	defer m.timersMu.Unlock()

	if gen != m.generation {
		return
	}

	if prev, ok := m.timers[key]; ok {
		prev.timer.Stop()
	}
	e := &timerEntry{}
	e.timer = m.scheduler.AfterFunc(d, func() { fn(e) })
	m.timers[key] = e
}

// release unregisters e and reports whether it was still current.
func (m *Machine) release(key timerKey, e *timerEntry) bool {
	m.timersMu.Lock()
	defer m.timersMu.Unlock()

	if m.timers[key] != e {
		return false
	}
	delete(m.timers, key)
	return true
}

func (m *Machine) cancel(key timerKey) {
	m.timersMu.Lock()
	defer m.timersMu.Unlock()

	if e, ok := m.timers[key]; ok {
		e.timer.Stop()
		delete(m.timers, key)
	}
}

func (m *Machine) emit(hook func(context.Context, *domain.ToastEvent), e *domain.ToastEvent) {
	if hook == nil {
		return
	}
	e.Timestamp = time.Now()
	hook(context.Background(), e)
}

func liveIndex(toasts []domain.Item, id string) int {
	for i, t := range toasts {
		if t.ID == id && !t.Exiting {
			return i
		}
	}
	return -1
}

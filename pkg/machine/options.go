package machine

import (
	"log/slog"

	"github.com/aretw0/fluix/pkg/domain"
	"github.com/aretw0/fluix/pkg/ports"
)

// Option configures a Machine.
type Option func(*Machine)

// WithScheduler sets the timer source. Defaults to scheduler.NewRealtime().
func WithScheduler(s ports.Scheduler) Option {
	return func(m *Machine) {
		m.scheduler = s
	}
}

// WithLogger configures a logger for lifecycle debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
// Calling it more than once combines the hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(m *Machine) {
		m.hooks = domain.Combine(m.hooks, hooks)
	}
}

// WithConfig merges cfg into the initial toaster configuration.
func WithConfig(cfg domain.Config) Option {
	return func(m *Machine) {
		m.initial.Config = m.initial.Config.Merge(cfg)
	}
}

// WithInitialToasts seeds the item list, e.g. from a persisted snapshot.
// No timers are scheduled for the seeded items.
func WithInitialToasts(items []domain.Item) Option {
	return func(m *Machine) {
		m.initial.Toasts = append([]domain.Item(nil), items...)
	}
}

// WithInstanceIDs replaces the instance id generator. A nil generator keeps
// the default one.
func WithInstanceIDs(next func() string) Option {
	return func(m *Machine) {
		if next != nil {
			m.newInstanceID = next
		}
	}
}

// WithAutoDismiss makes the machine dismiss every item with a positive
// duration once that duration has elapsed. Without it, callers own the
// auto-dismiss timer.
func WithAutoDismiss(enabled bool) Option {
	return func(m *Machine) {
		m.autoDismiss = enabled
	}
}

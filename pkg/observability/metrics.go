package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/fluix/pkg/domain"
)

// Metrics holds the Prometheus collectors of one toaster.
type Metrics struct {
	created   *prometheus.CounterVec
	updated   *prometheus.CounterVec
	dismissed prometheus.Counter
	removed   prometheus.Counter
	cleared   prometheus.Counter
	visible   *prometheus.GaugeVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg skips registration.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		created: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fluix_toasts_created_total",
				Help: "Total number of toasts created, including in-place replacements",
			},
			[]string{"state", "replaced"},
		),
		updated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fluix_toasts_updated_total",
				Help: "Total number of toast updates",
			},
			[]string{"state"},
		),
		dismissed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fluix_toasts_dismissed_total",
			Help: "Total number of toasts that entered the exit phase",
		}),
		removed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fluix_toasts_removed_total",
			Help: "Total number of toasts removed after their exit delay or by a clear",
		}),
		cleared: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fluix_clears_total",
			Help: "Total number of clear operations that removed at least one toast",
		}),
		visible: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "fluix_toasts_visible",
				Help: "Toasts currently in the list, by phase",
			},
			[]string{"phase"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.created, m.updated, m.dismissed, m.removed, m.cleared, m.visible)
	}
	return m
}

// Hooks returns lifecycle hooks that feed the counters.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnCreate: func(_ context.Context, e *domain.ToastEvent) {
			replaced := "false"
			if e.Replaced {
				replaced = "true"
			}
			m.created.WithLabelValues(string(e.State), replaced).Inc()
		},
		OnUpdate: func(_ context.Context, e *domain.ToastEvent) {
			m.updated.WithLabelValues(string(e.State)).Inc()
		},
		OnDismiss: func(context.Context, *domain.ToastEvent) {
			m.dismissed.Inc()
		},
		OnRemove: func(context.Context, *domain.ToastEvent) {
			m.removed.Inc()
		},
		OnClear: func(_ context.Context, e *domain.ToastEvent) {
			m.cleared.Inc()
			m.removed.Add(float64(e.Removed))
		},
	}
}

// Observe sets the visibility gauges from a snapshot. Wire it to a store
// subscription.
func (m *Metrics) Observe(s *domain.Snapshot) {
	var live, exiting int
	for _, t := range s.Toasts {
		if t.Exiting {
			exiting++
		} else {
			live++
		}
	}
	m.visible.WithLabelValues("live").Set(float64(live))
	m.visible.WithLabelValues("exiting").Set(float64(exiting))
}

// Visible returns the visibility gauge of phase ("live" or "exiting").
func (m *Metrics) Visible(phase string) prometheus.Gauge {
	return m.visible.WithLabelValues(phase)
}

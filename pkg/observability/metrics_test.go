package observability_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/fluix/pkg/domain"
	"github.com/aretw0/fluix/pkg/machine"
	"github.com/aretw0/fluix/pkg/observability"
	"github.com/aretw0/fluix/pkg/scheduler"
)

func TestMetrics_CountLifecycle(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)
	clock := scheduler.NewManual()
	m := machine.New(
		machine.WithScheduler(clock),
		machine.WithLifecycleHooks(metrics.Hooks()),
	)
	defer m.Destroy()
	m.Subscribe(func() { metrics.Observe(m.Snapshot()) })

	m.Create(domain.Options{ID: "a", State: domain.StateSuccess})
	m.Create(domain.Options{ID: "a", State: domain.StateSuccess})
	m.Create(domain.Options{ID: "b", State: domain.StateError})
	m.Update("b", domain.Options{State: domain.StateInfo})
	m.Dismiss("a")

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Visible("live")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Visible("exiting")))

	clock.Advance(domain.ExitDuration)
	m.Clear()

	expected := `
# HELP fluix_toasts_created_total Total number of toasts created, including in-place replacements
# TYPE fluix_toasts_created_total counter
fluix_toasts_created_total{replaced="false",state="error"} 1
fluix_toasts_created_total{replaced="false",state="success"} 1
fluix_toasts_created_total{replaced="true",state="success"} 1
# HELP fluix_toasts_dismissed_total Total number of toasts that entered the exit phase
# TYPE fluix_toasts_dismissed_total counter
fluix_toasts_dismissed_total 1
# HELP fluix_toasts_removed_total Total number of toasts removed after their exit delay or by a clear
# TYPE fluix_toasts_removed_total counter
fluix_toasts_removed_total 2
# HELP fluix_toasts_updated_total Total number of toast updates
# TYPE fluix_toasts_updated_total counter
fluix_toasts_updated_total{state="info"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, bytes.NewBufferString(expected),
		"fluix_toasts_created_total",
		"fluix_toasts_dismissed_total",
		"fluix_toasts_removed_total",
		"fluix_toasts_updated_total",
	))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.Visible("live")))
}

func TestNewMetrics_NilRegisterer(t *testing.T) {
	assert.NotPanics(t, func() {
		observability.NewMetrics(nil).Hooks().OnDismiss(context.Background(), &domain.ToastEvent{})
	})
}

func TestLoggingHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	m := machine.New(
		machine.WithScheduler(scheduler.NewManual()),
		machine.WithLifecycleHooks(observability.LoggingHooks(logger)),
	)
	defer m.Destroy()

	m.Create(domain.Options{ID: "hello", State: domain.StateWarning})
	m.Clear()

	out := buf.String()
	assert.Contains(t, out, "msg=toast_create")
	assert.Contains(t, out, "id=hello")
	assert.Contains(t, out, "state=warning")
	assert.Contains(t, out, "msg=toast_clear")
	assert.Contains(t, out, "removed=1")
}

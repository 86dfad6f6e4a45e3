package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/fluix/pkg/domain"
)

// LoggingHooks returns lifecycle hooks that log every transition at Info.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	log := func(_ context.Context, e *domain.ToastEvent) {
		attrs := []any{"id", e.ID, "instance_id", e.InstanceID}
		if e.State != "" {
			attrs = append(attrs, "state", e.State)
		}
		if e.Position != "" {
			attrs = append(attrs, "position", e.Position)
		}
		switch e.Type {
		case domain.EventCreate:
			attrs = append(attrs, "replaced", e.Replaced)
		case domain.EventClear:
			attrs = append(attrs, "removed", e.Removed)
		}
		logger.Info("toast_"+string(e.Type), attrs...)
	}
	return domain.LifecycleHooks{
		OnCreate:  log,
		OnUpdate:  log,
		OnDismiss: log,
		OnRemove:  log,
		OnClear:   log,
	}
}

package domain

import (
	"context"
	"time"
)

// EventType defines the category of a lifecycle event.
type EventType string

const (
	EventCreate  EventType = "create"
	EventUpdate  EventType = "update"
	EventDismiss EventType = "dismiss"
	EventRemove  EventType = "remove"
	EventClear   EventType = "clear"
)

// ToastEvent describes one lifecycle transition of a toast.
type ToastEvent struct {
	Timestamp  time.Time `json:"timestamp"`
	Type       EventType `json:"type"`
	ID         string    `json:"id"`
	InstanceID string    `json:"instance_id,omitempty"`
	State      State     `json:"state,omitempty"`
	Position   Position  `json:"position,omitempty"`
	// Replaced is set on create when an existing live toast was swapped in place.
	Replaced bool `json:"replaced,omitempty"`
	// Removed counts the items dropped by a clear.
	Removed int `json:"removed,omitempty"`
}

// LifecycleHooks defines callbacks for machine observability.
// Hooks run synchronously after the corresponding store update.
type LifecycleHooks struct {
	OnCreate  func(context.Context, *ToastEvent)
	OnUpdate  func(context.Context, *ToastEvent)
	OnDismiss func(context.Context, *ToastEvent)
	OnRemove  func(context.Context, *ToastEvent)
	OnClear   func(context.Context, *ToastEvent)
}

// Combine returns hooks that call every non-nil hook of hs in order.
func Combine(hs ...LifecycleHooks) LifecycleHooks {
	pick := func(get func(LifecycleHooks) func(context.Context, *ToastEvent)) func(context.Context, *ToastEvent) {
		var fns []func(context.Context, *ToastEvent)
		for _, h := range hs {
			if fn := get(h); fn != nil {
				fns = append(fns, fn)
			}
		}
		if len(fns) == 0 {
			return nil
		}
		return func(ctx context.Context, e *ToastEvent) {
			for _, fn := range fns {
				fn(ctx, e)
			}
		}
	}
	return LifecycleHooks{
		OnCreate:  pick(func(h LifecycleHooks) func(context.Context, *ToastEvent) { return h.OnCreate }),
		OnUpdate:  pick(func(h LifecycleHooks) func(context.Context, *ToastEvent) { return h.OnUpdate }),
		OnDismiss: pick(func(h LifecycleHooks) func(context.Context, *ToastEvent) { return h.OnDismiss }),
		OnRemove:  pick(func(h LifecycleHooks) func(context.Context, *ToastEvent) { return h.OnRemove }),
		OnClear:   pick(func(h LifecycleHooks) func(context.Context, *ToastEvent) { return h.OnClear }),
	}
}
